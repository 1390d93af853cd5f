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

package envelope

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sage-x-project/shucang-go/pkg/cipher"
	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// requiredRequestFields are checked in this order after app_id.
var requiredRequestFields = []string{
	protocol.FieldSign,
	protocol.FieldNonce,
	protocol.FieldTimestamp,
	protocol.FieldMethod,
}

// Request is a validated inbound request.
type Request struct {
	AppID     string
	Method    string
	Nonce     string
	Timestamp int64
	// Payload is the decrypted JSON params; nil when data was empty.
	Payload  json.RawMessage
	Envelope protocol.Envelope
}

// Decode unmarshals the payload into v. An empty payload leaves v untouched.
func (r *Request) Decode(v any) error {
	return decodeInto(r.Payload, v)
}

// Response is a validated successful response.
type Response struct {
	Code    string
	Message string
	// Payload is the decrypted JSON result; nil when data was empty.
	Payload  json.RawMessage
	Envelope protocol.Envelope
}

// Decode unmarshals the payload into v. An empty payload leaves v untouched.
func (r *Response) Decode(v any) error {
	return decodeInto(r.Payload, v)
}

// Validator parses and authenticates inbound envelopes. Requests are
// checked against the configured app id and replay window; responses are
// checked for a success code.
type Validator struct {
	appID string
	keys  *keys.Keyring
	guard ReplayGuard
	settings
}

// NewValidator creates a Validator that verifies with ring.VerifyKey and
// decrypts with ring.DecryptionKey.
func NewValidator(appID string, ring *keys.Keyring, opts ...Option) (*Validator, error) {
	if appID == "" {
		return nil, &protocol.ConfigurationError{Reason: "app id is empty"}
	}
	if err := ring.Validate(); err != nil {
		return nil, err
	}

	s := newSettings(opts)
	return &Validator{
		appID:    appID,
		keys:     ring,
		guard:    ReplayGuard{Window: s.window, Now: s.now},
		settings: s,
	}, nil
}

// ValidateRequest runs the inbound request checks in order: parse, app_id,
// required fields, freshness, signature, decryption. Each failure is a
// distinct *protocol.ProtocolError, except decryption failures which are
// *protocol.CryptoError.
func (v *Validator) ValidateRequest(raw []byte) (*Request, error) {
	env, err := protocol.ParseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	if appID, ok := env[protocol.FieldAppID]; !ok || appID != v.appID {
		return nil, protocol.ErrAppIDMismatch
	}

	for _, field := range requiredRequestFields {
		if env[field] == "" {
			return nil, protocol.MissingFieldError(field)
		}
	}
	if _, ok := env[protocol.FieldData]; !ok {
		return nil, protocol.ErrMissingData
	}

	if err := v.guard.Check(env[protocol.FieldTimestamp]); err != nil {
		return nil, err
	}

	if !v.verifier.Verify(protocol.Canonicalize(env), env[protocol.FieldSign], v.keys.VerifyKey) {
		return nil, protocol.ErrSignatureInvalid
	}

	payload, err := v.decrypt(env[protocol.FieldData])
	if err != nil {
		return nil, err
	}

	ts, _ := strconv.ParseInt(env[protocol.FieldTimestamp], 10, 64)
	return &Request{
		AppID:     env[protocol.FieldAppID],
		Method:    env[protocol.FieldMethod],
		Nonce:     env[protocol.FieldNonce],
		Timestamp: ts,
		Payload:   payload,
		Envelope:  env,
	}, nil
}

// ValidateResponse checks a response envelope. A non-success code returns
// *protocol.APIError before the signature is checked or data decrypted.
func (v *Validator) ValidateResponse(raw []byte) (*Response, error) {
	env, err := protocol.ParseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	code, ok := env[protocol.FieldCode]
	if !ok || code == "" {
		return nil, protocol.ErrMissingCode
	}
	message, ok := env[protocol.FieldMessage]
	if !ok {
		return nil, protocol.ErrMissingMessage
	}

	if code != protocol.SuccessCode {
		return nil, &protocol.APIError{Code: code, Message: message}
	}

	if env[protocol.FieldSign] == "" {
		return nil, protocol.ErrMissingSign
	}

	if !v.verifier.Verify(protocol.Canonicalize(env), env[protocol.FieldSign], v.keys.VerifyKey) {
		return nil, protocol.ErrSignatureInvalid
	}

	payload, err := v.decrypt(env[protocol.FieldData])
	if err != nil {
		return nil, err
	}

	return &Response{
		Code:     code,
		Message:  message,
		Payload:  payload,
		Envelope: env,
	}, nil
}

func (v *Validator) decrypt(data string) (json.RawMessage, error) {
	if data == "" {
		return nil, nil
	}
	return cipher.Decrypt(data, v.keys.DecryptionKey)
}

// DecodePayload unmarshals a payload into a new T. An empty payload yields
// the zero value.
func DecodePayload[T any](payload json.RawMessage) (T, error) {
	var out T
	err := decodeInto(payload, &out)
	return out, err
}

func decodeInto(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
