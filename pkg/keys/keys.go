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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// Role tells Normalize which armor to apply to a bare key blob.
type Role int

const (
	RolePublic Role = iota
	RolePrivate
)

const (
	pemLineWidth = 64

	publicKeyType  = "PUBLIC KEY"
	privateKeyType = "RSA PRIVATE KEY"

	// MinKeyBits is the smallest modulus GenerateKeyPair accepts.
	MinKeyBits = 2048
)

var (
	errEmptyKey   = errors.New("key material is empty")
	errNoPEMBlock = errors.New("no PEM block found")
	errNotRSA     = errors.New("key is not an RSA key")
	errWrongRole  = errors.New("PEM block holds a key of the wrong role")
)

// Normalize returns raw key text in PEM form. Text that already carries
// armor is returned trimmed; a bare base64 blob is stripped of whitespace,
// wrapped at 64 characters per line and given the header and footer that
// match role.
func Normalize(raw string, role Role) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.Contains(trimmed, "-----BEGIN") {
		return trimmed
	}

	body := strings.Join(strings.Fields(trimmed), "")
	blockType := publicKeyType
	if role == RolePrivate {
		blockType = privateKeyType
	}

	var b strings.Builder
	b.WriteString("-----BEGIN " + blockType + "-----\n")
	for len(body) > pemLineWidth {
		b.WriteString(body[:pemLineWidth])
		b.WriteByte('\n')
		body = body[pemLineWidth:]
	}
	if body != "" {
		b.WriteString(body)
		b.WriteByte('\n')
	}
	b.WriteString("-----END " + blockType + "-----\n")
	return b.String()
}

// LoadPublicKey parses an RSA public key from PEM or bare base64 text.
// PKIX (SubjectPublicKeyInfo) and PKCS#1 encodings are accepted.
func LoadPublicKey(raw string) (*rsa.PublicKey, error) {
	block, err := decode(raw, RolePublic)
	if err != nil {
		return nil, &protocol.ConfigurationError{Reason: "invalid public key", Err: err}
	}
	if strings.Contains(block.Type, "PRIVATE") {
		return nil, &protocol.ConfigurationError{Reason: "invalid public key", Err: errWrongRole}
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		pub, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, &protocol.ConfigurationError{Reason: "invalid public key", Err: errNotRSA}
		}
		return pub, nil
	}

	pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, &protocol.ConfigurationError{Reason: "invalid public key", Err: err}
	}
	return pub, nil
}

// LoadPrivateKey parses an RSA private key from PEM or bare base64 text.
// PKCS#1 and PKCS#8 encodings are accepted.
func LoadPrivateKey(raw string) (*rsa.PrivateKey, error) {
	block, err := decode(raw, RolePrivate)
	if err != nil {
		return nil, &protocol.ConfigurationError{Reason: "invalid private key", Err: err}
	}
	if strings.Contains(block.Type, "PUBLIC") {
		return nil, &protocol.ConfigurationError{Reason: "invalid private key", Err: errWrongRole}
	}

	if priv, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return priv, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, &protocol.ConfigurationError{Reason: "invalid private key", Err: err}
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, &protocol.ConfigurationError{Reason: "invalid private key", Err: errNotRSA}
	}
	return priv, nil
}

// LoadPublicKeyFile reads and parses an RSA public key file.
func LoadPublicKeyFile(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &protocol.ConfigurationError{Reason: "read public key file", Err: err}
	}
	return LoadPublicKey(string(data))
}

// LoadPrivateKeyFile reads and parses an RSA private key file.
func LoadPrivateKeyFile(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &protocol.ConfigurationError{Reason: "read private key file", Err: err}
	}
	return LoadPrivateKey(string(data))
}

// GenerateKeyPair generates an RSA key pair and returns the private key as
// PKCS#1 PEM and the public key as PKIX PEM.
func GenerateKeyPair(bits int) ([]byte, []byte, error) {
	if bits < MinKeyBits {
		return nil, nil, fmt.Errorf("key size %d is below the %d-bit minimum", bits, MinKeyBits)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key: %w", err)
	}

	privateKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  privateKeyType,
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	publicKeyBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	publicKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  publicKeyType,
		Bytes: publicKeyBytes,
	})

	return privateKeyPEM, publicKeyPEM, nil
}

func decode(raw string, role Role) (*pem.Block, error) {
	text := Normalize(raw, role)
	if text == "" {
		return nil, errEmptyKey
	}
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, errNoPEMBlock
	}
	return block, nil
}
