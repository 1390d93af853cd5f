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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sage-x-project/shucang-go/pkg/cipher"
	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// Builder assembles signed outbound envelopes: requests on the client side,
// responses on the server side.
type Builder struct {
	appID string
	keys  *keys.Keyring
	settings
}

// NewBuilder creates a Builder that stamps envelopes with appID, encrypts
// with ring.EncryptionKey and signs with ring.SigningKey.
func NewBuilder(appID string, ring *keys.Keyring, opts ...Option) (*Builder, error) {
	if appID == "" {
		return nil, &protocol.ConfigurationError{Reason: "app id is empty"}
	}
	if err := ring.Validate(); err != nil {
		return nil, err
	}

	return &Builder{
		appID:    appID,
		keys:     ring,
		settings: newSettings(opts),
	}, nil
}

// AppID returns the identity stamped on every envelope.
func (b *Builder) AppID() string {
	return b.appID
}

// BuildRequest assembles a request envelope for method. params is always
// encrypted, even when empty.
func (b *Builder) BuildRequest(method string, params any) (protocol.Envelope, error) {
	if method == "" {
		return nil, fmt.Errorf("build request: %w", protocol.ErrMissingMethod)
	}

	data, err := cipher.Encrypt(params, b.keys.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	env := b.base()
	env[protocol.FieldMethod] = method
	env[protocol.FieldData] = data

	if err := b.sign(env); err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return env, nil
}

// BuildResponse assembles a response envelope. An empty payload (nil, or
// JSON null, {}, [] or "") leaves data empty.
//
// Responses are signed like requests: over the canonical string of every
// assembled field except sign.
func (b *Builder) BuildResponse(code, message string, payload any) (protocol.Envelope, error) {
	if code == "" {
		return nil, fmt.Errorf("build response: %w", protocol.ErrMissingCode)
	}

	data := ""
	if payload != nil {
		plaintext, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("build response: %w", &protocol.CryptoError{Op: "encrypt", Err: err})
		}
		if !isEmptyJSON(plaintext) {
			data, err = cipher.EncryptBytes(plaintext, b.keys.EncryptionKey)
			if err != nil {
				return nil, fmt.Errorf("build response: %w", err)
			}
		}
	}

	env := b.base()
	env[protocol.FieldCode] = code
	env[protocol.FieldMessage] = message
	env[protocol.FieldData] = data

	if err := b.sign(env); err != nil {
		return nil, fmt.Errorf("build response: %w", err)
	}
	return env, nil
}

// BuildError assembles a failure response with no data.
func (b *Builder) BuildError(code, message string) (protocol.Envelope, error) {
	if code == protocol.SuccessCode {
		return nil, errors.New("build error: success code is not an error")
	}
	return b.BuildResponse(code, message, nil)
}

func (b *Builder) base() protocol.Envelope {
	return protocol.Envelope{
		protocol.FieldAppID:     b.appID,
		protocol.FieldTimestamp: strconv.FormatInt(b.now().Unix(), 10),
		protocol.FieldNonce:     b.nonce(),
	}
}

func (b *Builder) sign(env protocol.Envelope) error {
	sig, err := b.signer.Sign(protocol.Canonicalize(env), b.keys.SigningKey)
	if err != nil {
		return err
	}
	env[protocol.FieldSign] = sig
	return nil
}

func isEmptyJSON(raw []byte) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "{}", "[]", `""`:
		return true
	}
	return false
}
