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

package cipher

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// pkcs1v15Overhead is the padding cost of RSAES-PKCS1-v1_5 in bytes.
const pkcs1v15Overhead = 11

var (
	// ErrPayloadTooLarge is wrapped when the JSON plaintext does not fit in a
	// single RSA block.
	ErrPayloadTooLarge = errors.New("payload exceeds RSA plaintext limit")

	errNilKey           = errors.New("key is nil")
	errInvalidPlaintext = errors.New("plaintext is not valid JSON")
)

// MaxPlaintextSize returns the largest plaintext, in bytes, that key can
// encrypt. For a 2048-bit key this is 245.
func MaxPlaintextSize(key *rsa.PublicKey) int {
	if key == nil {
		return 0
	}
	return key.Size() - pkcs1v15Overhead
}

// Encrypt serializes payload as JSON, encrypts it with key using
// RSAES-PKCS1-v1_5 and returns the base64 ciphertext.
func Encrypt(payload any, key *rsa.PublicKey) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", &protocol.CryptoError{Op: "encrypt", Err: fmt.Errorf("marshal payload: %w", err)}
	}
	return EncryptBytes(plaintext, key)
}

// EncryptBytes encrypts plaintext as is. Plaintext above MaxPlaintextSize
// fails with ErrPayloadTooLarge before the RSA primitive is called.
func EncryptBytes(plaintext []byte, key *rsa.PublicKey) (string, error) {
	if key == nil {
		return "", &protocol.CryptoError{Op: "encrypt", Err: errNilKey}
	}

	if limit := MaxPlaintextSize(key); len(plaintext) > limit {
		return "", &protocol.CryptoError{
			Op:  "encrypt",
			Err: fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(plaintext), limit),
		}
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, key, plaintext)
	if err != nil {
		return "", &protocol.CryptoError{Op: "encrypt", Err: err}
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt and returns the JSON plaintext.
func Decrypt(ciphertext string, key *rsa.PrivateKey) (json.RawMessage, error) {
	if key == nil {
		return nil, &protocol.CryptoError{Op: "decrypt", Err: errNilKey}
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, &protocol.CryptoError{Op: "decrypt", Err: fmt.Errorf("decode base64: %w", err)}
	}

	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, key, raw)
	if err != nil {
		return nil, &protocol.CryptoError{Op: "decrypt", Err: err}
	}

	if !json.Valid(plaintext) {
		return nil, &protocol.CryptoError{Op: "decrypt", Err: errInvalidPlaintext}
	}

	return json.RawMessage(plaintext), nil
}
