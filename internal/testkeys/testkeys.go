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

// Package testkeys hands out cached RSA key pairs to tests. Generating a
// 2048-bit key takes long enough that every test package shares them.
package testkeys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"
)

// Bits is the modulus size of generated test keys.
const Bits = 2048

var (
	mu    sync.Mutex
	cache = map[string]*rsa.PrivateKey{}
)

// Key returns the private key registered under name, generating it on
// first use.
func Key(tb testing.TB, name string) *rsa.PrivateKey {
	tb.Helper()

	mu.Lock()
	defer mu.Unlock()

	if k, ok := cache[name]; ok {
		return k
	}
	k, err := rsa.GenerateKey(rand.Reader, Bits)
	if err != nil {
		tb.Fatalf("generate test key %q: %v", name, err)
	}
	cache[name] = k
	return k
}

// PrivatePEM returns the PKCS#1 PEM text of the named key.
func PrivatePEM(tb testing.TB, name string) string {
	tb.Helper()
	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(Key(tb, name)),
	}))
}

// PublicPEM returns the PKIX PEM text of the named key's public half.
func PublicPEM(tb testing.TB, name string) string {
	tb.Helper()
	der, err := x509.MarshalPKIXPublicKey(&Key(tb, name).PublicKey)
	if err != nil {
		tb.Fatalf("marshal test public key %q: %v", name, err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}
