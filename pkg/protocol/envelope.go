// Copyright (C) 2025 SAGE-X Project
//
// This file is part of shucang-go.
//
// shucang-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// shucang-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with shucang-go.  If not, see <https://www.gnu.org/licenses/>.

package protocol

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Envelope field names.
const (
	FieldAppID     = "app_id"
	FieldTimestamp = "timestamp"
	FieldNonce     = "nonce"
	FieldMethod    = "method"
	FieldCode      = "code"
	FieldMessage   = "message"
	FieldData      = "data"
	FieldSign      = "sign"
)

// SuccessCode is the response code of a successful call.
const SuccessCode = "200"

// ContentType is the content type of every envelope on the wire.
const ContentType = "application/json;charset=utf-8"

// Envelope is a signed message exchanged between client and server.
// Key order is irrelevant; see Canonicalize.
type Envelope map[string]string

// Get returns the value of field and whether it was present.
func (e Envelope) Get(field string) (string, bool) {
	v, ok := e[field]
	return v, ok
}

// Clone returns a shallow copy of the envelope.
func (e Envelope) Clone() Envelope {
	out := make(Envelope, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Marshal encodes the envelope as a JSON object.
func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(map[string]string(e))
}

// Canonicalize builds the signing string of an envelope: all fields except
// sign, sorted by key in byte order, joined as k=v pairs with '&'.
func Canonicalize(e Envelope) string {
	keys := make([]string, 0, len(e))
	for k := range e {
		if k == FieldSign {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(e[k])
	}
	return b.String()
}

// ParseEnvelope decodes a JSON object into an Envelope. Non-string values
// are converted with Stringify. Empty input, invalid JSON, non-object JSON
// and an object without fields all yield ErrEmptyBody.
func ParseEnvelope(raw []byte) (Envelope, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, ErrEmptyBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, ErrEmptyBody
	}
	if len(fields) == 0 {
		return nil, ErrEmptyBody
	}

	env := make(Envelope, len(fields))
	for k, v := range fields {
		env[k] = Stringify(v)
	}
	return env, nil
}

// Stringify renders a raw JSON value as envelope text.
func Stringify(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	case 'n':
		if string(raw) == "null" {
			return ""
		}
	}
	return string(raw)
}
