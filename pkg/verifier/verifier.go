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

package verifier

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
)

// Verifier checks signatures over canonical envelope strings.
//
// Verify never returns an error: a malformed signature, a nil key and a
// cryptographic mismatch all yield false, so callers cannot tell them apart.
type Verifier interface {
	Verify(canonical, signature string, key *rsa.PublicKey) bool
}

// RSAVerifier implements Verifier for RSASSA-PKCS1-v1_5 over SHA-256.
type RSAVerifier struct{}

// NewRSAVerifier creates a new RSAVerifier
func NewRSAVerifier() *RSAVerifier {
	return &RSAVerifier{}
}

// Verify reports whether signature (base64) is a valid signature of canonical
// under key.
func (v *RSAVerifier) Verify(canonical, signature string, key *rsa.PublicKey) bool {
	if key == nil || signature == "" {
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	digest := sha256.Sum256([]byte(canonical))
	return rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], raw) == nil
}
