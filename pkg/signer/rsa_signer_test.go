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
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/sage-x-project/shucang-go/internal/testkeys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSASigner_Sign(t *testing.T) {
	key := testkeys.Key(t, "signer")
	canonical := "app_id=10001&method=order.create&nonce=abc&timestamp=1717171717"

	sig, err := NewRSASigner().Sign(canonical, key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sig)
	require.NoError(t, err)
	assert.Len(t, raw, key.Size())

	digest := sha256.Sum256([]byte(canonical))
	assert.NoError(t, rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA256, digest[:], raw))
}

func TestRSASigner_Deterministic(t *testing.T) {
	// PKCS#1 v1.5 signatures carry no randomness.
	key := testkeys.Key(t, "signer")
	s := NewRSASigner()

	a, err := s.Sign("a=1", key)
	require.NoError(t, err)
	b, err := s.Sign("a=1", key)
	require.NoError(t, err)
	c, err := s.Sign("a=2", key)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRSASigner_EmptyCanonical(t *testing.T) {
	sig, err := NewRSASigner().Sign("", testkeys.Key(t, "signer"))
	require.NoError(t, err)
	assert.NotEmpty(t, sig)
}

func TestRSASigner_NilKey(t *testing.T) {
	_, err := NewRSASigner().Sign("a=1", nil)

	var cryptoErr *protocol.CryptoError
	require.True(t, errors.As(err, &cryptoErr))
	assert.Equal(t, "sign", cryptoErr.Op)
}

func TestRSASigner_ImplementsSigner(t *testing.T) {
	var _ Signer = NewRSASigner()
}
