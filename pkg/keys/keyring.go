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

package keys

import (
	"crypto/rsa"
	"errors"

	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// Keyring holds the four key roles one party needs. It is built once and
// never mutated, so it can be shared by concurrent callers.
//
// The party's own private key signs outbound envelopes and decrypts inbound
// data; the counterparty's public key verifies inbound signatures and
// encrypts outbound data.
type Keyring struct {
	SigningKey    *rsa.PrivateKey
	DecryptionKey *rsa.PrivateKey
	VerifyKey     *rsa.PublicKey
	EncryptionKey *rsa.PublicKey
}

// NewKeyring builds a Keyring from the party's own private key and the
// counterparty's public key.
func NewKeyring(own *rsa.PrivateKey, peer *rsa.PublicKey) (*Keyring, error) {
	k := &Keyring{
		SigningKey:    own,
		DecryptionKey: own,
		VerifyKey:     peer,
		EncryptionKey: peer,
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// LoadKeyring parses key text and builds a Keyring.
func LoadKeyring(ownPrivateKey, peerPublicKey string) (*Keyring, error) {
	own, err := LoadPrivateKey(ownPrivateKey)
	if err != nil {
		return nil, err
	}
	peer, err := LoadPublicKey(peerPublicKey)
	if err != nil {
		return nil, err
	}
	return NewKeyring(own, peer)
}

// LoadKeyringFiles reads both keys from disk and builds a Keyring.
func LoadKeyringFiles(ownPrivateKeyPath, peerPublicKeyPath string) (*Keyring, error) {
	own, err := LoadPrivateKeyFile(ownPrivateKeyPath)
	if err != nil {
		return nil, err
	}
	peer, err := LoadPublicKeyFile(peerPublicKeyPath)
	if err != nil {
		return nil, err
	}
	return NewKeyring(own, peer)
}

// Validate reports a ConfigurationError if any role is unset.
func (k *Keyring) Validate() error {
	switch {
	case k == nil:
		return &protocol.ConfigurationError{Reason: "keyring is nil"}
	case k.SigningKey == nil:
		return &protocol.ConfigurationError{Reason: "signing key missing", Err: errors.New("nil private key")}
	case k.DecryptionKey == nil:
		return &protocol.ConfigurationError{Reason: "decryption key missing", Err: errors.New("nil private key")}
	case k.VerifyKey == nil:
		return &protocol.ConfigurationError{Reason: "verify key missing", Err: errors.New("nil public key")}
	case k.EncryptionKey == nil:
		return &protocol.ConfigurationError{Reason: "encryption key missing", Err: errors.New("nil public key")}
	}
	return nil
}
