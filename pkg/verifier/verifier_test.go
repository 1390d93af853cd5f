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
	"encoding/base64"
	"testing"

	"github.com/sage-x-project/shucang-go/internal/testkeys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
	"github.com/sage-x-project/shucang-go/pkg/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEnvelope() protocol.Envelope {
	return protocol.Envelope{
		protocol.FieldAppID:     "10001",
		protocol.FieldTimestamp: "1717171717",
		protocol.FieldNonce:     "5f0c3f1e9a5b4c1f8e2d7a6b3c4d5e6f",
		protocol.FieldMethod:    "order.create",
		protocol.FieldData:      "ZGF0YQ==",
	}
}

func TestRSAVerifier_RoundTrip(t *testing.T) {
	key := testkeys.Key(t, "verifier")
	env := sampleEnvelope()
	canonical := protocol.Canonicalize(env)

	sig, err := signer.NewRSASigner().Sign(canonical, key)
	require.NoError(t, err)
	env[protocol.FieldSign] = sig

	// sign is excluded from its own canonical string
	assert.True(t, NewRSAVerifier().Verify(protocol.Canonicalize(env), sig, &key.PublicKey))
}

func TestRSAVerifier_TamperDetection(t *testing.T) {
	key := testkeys.Key(t, "verifier")
	v := NewRSAVerifier()
	env := sampleEnvelope()

	sig, err := signer.NewRSASigner().Sign(protocol.Canonicalize(env), key)
	require.NoError(t, err)

	for field := range env {
		t.Run(field, func(t *testing.T) {
			tampered := env.Clone()
			tampered[field] += "x"
			assert.False(t, v.Verify(protocol.Canonicalize(tampered), sig, &key.PublicKey))
		})
	}

	t.Run("added field", func(t *testing.T) {
		tampered := env.Clone()
		tampered["extra"] = "1"
		assert.False(t, v.Verify(protocol.Canonicalize(tampered), sig, &key.PublicKey))
	})

	t.Run("removed field", func(t *testing.T) {
		tampered := env.Clone()
		delete(tampered, protocol.FieldNonce)
		assert.False(t, v.Verify(protocol.Canonicalize(tampered), sig, &key.PublicKey))
	})
}

func TestRSAVerifier_MalformedInputIsFalse(t *testing.T) {
	key := testkeys.Key(t, "verifier")
	other := testkeys.Key(t, "verifier-other")
	canonical := protocol.Canonicalize(sampleEnvelope())
	v := NewRSAVerifier()

	sig, err := signer.NewRSASigner().Sign(canonical, key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sig)
	require.NoError(t, err)
	raw[0] ^= 0xff

	cases := map[string]struct {
		sig string
		key bool
	}{
		"empty signature":   {sig: "", key: true},
		"invalid base64":    {sig: "%%%not-base64%%%", key: true},
		"truncated":         {sig: base64.StdEncoding.EncodeToString(raw[:10]), key: true},
		"flipped bits":      {sig: base64.StdEncoding.EncodeToString(raw), key: true},
		"nil key":           {sig: sig, key: false},
		"url-safe encoding": {sig: base64.URLEncoding.EncodeToString([]byte{0xfb, 0xff}), key: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			pub := &key.PublicKey
			if !tc.key {
				pub = nil
			}
			assert.False(t, v.Verify(canonical, tc.sig, pub))
		})
	}

	t.Run("wrong key", func(t *testing.T) {
		assert.False(t, v.Verify(canonical, sig, &other.PublicKey))
	})
}

func TestRSAVerifier_ImplementsVerifier(t *testing.T) {
	var _ Verifier = NewRSAVerifier()
}
