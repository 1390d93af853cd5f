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

package protocol

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_SortsAndExcludesSign(t *testing.T) {
	env := Envelope{
		FieldTimestamp: "1717171717",
		FieldAppID:     "10001",
		FieldSign:      "should-not-appear",
		FieldMethod:    "order.create",
		FieldNonce:     "abc",
		FieldData:      "ZGF0YQ==",
	}

	got := Canonicalize(env)

	assert.Equal(t, "app_id=10001&data=ZGF0YQ==&method=order.create&nonce=abc&timestamp=1717171717", got)
	assert.NotContains(t, got, "sign=")
}

func TestCanonicalize_Empty(t *testing.T) {
	assert.Equal(t, "", Canonicalize(Envelope{}))
	assert.Equal(t, "", Canonicalize(nil))
	assert.Equal(t, "", Canonicalize(Envelope{FieldSign: "x"}))
}

func TestCanonicalize_ByteOrder(t *testing.T) {
	// Uppercase sorts before lowercase, '_' (0x5f) sorts before lowercase.
	env := Envelope{"b": "2", "B": "1", "a_b": "3", "ab": "4"}
	assert.Equal(t, "B=1&a_b=3&ab=4&b=2", Canonicalize(env))
}

func TestCanonicalize_OrderIndependent(t *testing.T) {
	pairs := [][2]string{
		{FieldAppID, "10001"},
		{FieldTimestamp, "1717171717"},
		{FieldNonce, "n"},
		{FieldMethod, "order.create"},
		{FieldData, "cipher"},
		{FieldSign, "sig"},
		{"extra", "value"},
	}

	reference := Envelope{}
	for _, p := range pairs {
		reference[p[0]] = p[1]
	}
	want := Canonicalize(reference)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := append([][2]string(nil), pairs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		env := Envelope{}
		for _, p := range shuffled {
			env[p[0]] = p[1]
		}
		require.Equal(t, want, Canonicalize(env))
	}
}

func TestParseEnvelope(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{"app_id":"10001","code":200,"ok":true,"nothing":null,"obj":{"b": 1, "a": [1, 2]},"s":"a\"b"}`))
	require.NoError(t, err)

	assert.Equal(t, "10001", env[FieldAppID])
	assert.Equal(t, "200", env[FieldCode])
	assert.Equal(t, "true", env["ok"])
	assert.Equal(t, "", env["nothing"])
	assert.Equal(t, `{"b":1,"a":[1,2]}`, env["obj"])
	assert.Equal(t, `a"b`, env["s"])
}

func TestParseEnvelope_Empty(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"whitespace": "   \n",
		"invalid":    "{not json",
		"array":      `["a"]`,
		"string":     `"a"`,
		"null":       "null",
		"no fields":  "{}",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEnvelope([]byte(body))
			assert.True(t, errors.Is(err, ErrEmptyBody), "got %v", err)
		})
	}
}

func TestEnvelope_MarshalRoundTrip(t *testing.T) {
	env := Envelope{FieldAppID: "1", FieldMethod: "m"}

	raw, err := env.Marshal()
	require.NoError(t, err)

	parsed, err := ParseEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, env, parsed)
}

func TestEnvelope_Clone(t *testing.T) {
	env := Envelope{FieldAppID: "1"}
	clone := env.Clone()
	clone[FieldAppID] = "2"

	assert.Equal(t, "1", env[FieldAppID])
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "1.50", Stringify(json.RawMessage("1.50")))
	assert.Equal(t, "false", Stringify(json.RawMessage(" false ")))
	assert.Equal(t, "[]", Stringify(json.RawMessage("[ ]")))
}
