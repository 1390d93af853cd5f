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
	"crypto/rsa"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sage-x-project/shucang-go/internal/testkeys"
	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
	"github.com/sage-x-project/shucang-go/pkg/signer"
	"github.com/sage-x-project/shucang-go/pkg/verifier"
	"github.com/stretchr/testify/require"
)

const testAppID = "10001"

var testNow = time.Unix(1717171717, 0)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// countingVerifier records how often Verify is called.
type countingVerifier struct {
	calls atomic.Int32
	inner verifier.Verifier
}

func newCountingVerifier() *countingVerifier {
	return &countingVerifier{inner: verifier.NewRSAVerifier()}
}

func (c *countingVerifier) Verify(canonical, signature string, key *rsa.PublicKey) bool {
	c.calls.Add(1)
	return c.inner.Verify(canonical, signature, key)
}

// parties returns the client and server keyrings of one key exchange.
func parties(t *testing.T) (client, server *keys.Keyring) {
	t.Helper()
	clientKey := testkeys.Key(t, "envelope-client")
	serverKey := testkeys.Key(t, "envelope-server")

	client, err := keys.NewKeyring(clientKey, &serverKey.PublicKey)
	require.NoError(t, err)
	server, err = keys.NewKeyring(serverKey, &clientKey.PublicKey)
	require.NoError(t, err)
	return client, server
}

// requestPair returns a client-side Builder and server-side Validator.
func requestPair(t *testing.T, opts ...Option) (*Builder, *Validator) {
	t.Helper()
	client, server := parties(t)

	b, err := NewBuilder(testAppID, client, WithClock(fixedClock(testNow)))
	require.NoError(t, err)
	v, err := NewValidator(testAppID, server, append([]Option{WithClock(fixedClock(testNow))}, opts...)...)
	require.NoError(t, err)
	return b, v
}

// responsePair returns a server-side Builder and client-side Validator.
func responsePair(t *testing.T, opts ...Option) (*Builder, *Validator) {
	t.Helper()
	client, server := parties(t)

	b, err := NewBuilder(testAppID, server, WithClock(fixedClock(testNow)))
	require.NoError(t, err)
	v, err := NewValidator(testAppID, client, append([]Option{WithClock(fixedClock(testNow))}, opts...)...)
	require.NoError(t, err)
	return b, v
}

// resign recomputes sign over env with key, as a well-behaved but buggy
// peer would after changing a field.
func resign(t *testing.T, env protocol.Envelope, key *rsa.PrivateKey) protocol.Envelope {
	t.Helper()
	sig, err := signer.NewRSASigner().Sign(protocol.Canonicalize(env), key)
	require.NoError(t, err)
	env[protocol.FieldSign] = sig
	return env
}

func marshal(t *testing.T, env protocol.Envelope) []byte {
	t.Helper()
	raw, err := env.Marshal()
	require.NoError(t, err)
	return raw
}
