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

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sage-x-project/shucang-go/internal/testkeys"
	"github.com/sage-x-project/shucang-go/pkg/config"
	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"shucang"}, args...))
	return out.String(), err
}

func TestKeygen(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, "keygen", "--out-dir", dir, "--name", "app")
	require.NoError(t, err)
	assert.Contains(t, out, "app-private.pem")

	privPath := filepath.Join(dir, "app-private.pem")
	pubPath := filepath.Join(dir, "app-public.pem")

	info, err := os.Stat(privPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	priv, err := keys.LoadPrivateKeyFile(privPath)
	require.NoError(t, err)
	pub, err := keys.LoadPublicKeyFile(pubPath)
	require.NoError(t, err)
	assert.Equal(t, priv.N, pub.N)
}

func TestKeygen_RejectsSmallKeys(t *testing.T) {
	_, err := runApp(t, "keygen", "--out-dir", t.TempDir(), "--bits", "1024")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "shucang-go 1.0.0-dev")
}

func TestCallAgainstServe(t *testing.T) {
	dir := t.TempDir()
	write := func(name, pem string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(pem), 0o600))
		return path
	}
	appPriv := write("app-private.pem", testkeys.PrivatePEM(t, "cli-app"))
	platformPub := write("platform-public.pem", testkeys.PublicPEM(t, "cli-platform"))

	serverRing, err := keys.NewKeyring(testkeys.Key(t, "cli-platform"), &testkeys.Key(t, "cli-app").PublicKey)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	mux, err := newServeMux("10001", serverRing, config.NewLoggerTo(io.Discard, "info", "text"), reg)
	require.NoError(t, err)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	common := []string{
		"call",
		"--app-id", "10001",
		"--private-key-file", appPriv,
		"--peer-public-key-file", platformPub,
		"--base-url", ts.URL + APIPath,
	}

	out, err := runApp(t, append(common, "--params", `{"id":"A1"}`, "echo")...)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "A1"`)

	out, err = runApp(t, append(common, "ping")...)
	require.NoError(t, err)
	assert.Contains(t, out, `"pong"`)

	_, err = runApp(t, append(common, "order.delete")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=404")

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `shucang_server_requests_total{code="200",method="echo"} 1`)
	assert.Contains(t, string(body), `shucang_server_requests_total{code="404",method="unknown"} 1`)
	assert.NotContains(t, string(body), "order.delete")
}

func TestCall_RequiresConfig(t *testing.T) {
	_, err := runApp(t, "call", "ping")
	assert.Error(t, err)

	_, err = runApp(t, "call", "--params", "{not json", "ping")
	assert.Error(t, err)

	_, err = runApp(t, "call")
	assert.Error(t, err)
}
