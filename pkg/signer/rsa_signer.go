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

package signer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// RSASigner implements Signer with RSASSA-PKCS1-v1_5 over SHA-256.
type RSASigner struct{}

// NewRSASigner creates a new RSASigner
func NewRSASigner() *RSASigner {
	return &RSASigner{}
}

// Sign signs the UTF-8 bytes of canonical with key
func (s *RSASigner) Sign(canonical string, key *rsa.PrivateKey) (string, error) {
	if key == nil {
		return "", &protocol.CryptoError{Op: "sign", Err: errors.New("private key is nil")}
	}

	digest := sha256.Sum256([]byte(canonical))
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", &protocol.CryptoError{Op: "sign", Err: err}
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}
