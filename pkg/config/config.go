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

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
	"github.com/sage-x-project/shucang-go/pkg/transport"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvAppID             = "SHUCANG_APP_ID"
	EnvPrivateKeyFile    = "SHUCANG_PRIVATE_KEY_FILE"
	EnvPeerPublicKeyFile = "SHUCANG_PEER_PUBLIC_KEY_FILE"
	EnvEnvironment       = "SHUCANG_ENV"
	EnvBaseURL           = "SHUCANG_BASE_URL"
	EnvListenAddr        = "SHUCANG_LISTEN_ADDR"
	EnvLogLevel          = "SHUCANG_LOG_LEVEL"
	EnvLogFormat         = "SHUCANG_LOG_FORMAT"
)

// Config holds everything needed to build a client or a server endpoint.
type Config struct {
	AppID string `yaml:"appId"`
	// PrivateKeyFile is our own RSA private key (signing, decryption).
	PrivateKeyFile string `yaml:"privateKeyFile"`
	// PeerPublicKeyFile is the other side's RSA public key (verification,
	// encryption).
	PeerPublicKeyFile string `yaml:"peerPublicKeyFile"`
	Env               string `yaml:"env"`
	// BaseURL overrides the endpoint selected by Env.
	BaseURL    string `yaml:"baseUrl"`
	ListenAddr string `yaml:"listenAddr"`
	LogLevel   string `yaml:"logLevel"`
	LogFormat  string `yaml:"logFormat"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Env:        string(transport.Sandbox),
		ListenAddr: ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &protocol.ConfigurationError{Reason: "cannot read config file", Err: err}
		}
		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, &protocol.ConfigurationError{Reason: "cannot parse config file", Err: err}
		}
		cfg.Merge(&parsed)
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// Merge copies every non-empty field of src into c.
func (c *Config) Merge(src *Config) {
	if src == nil {
		return
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.AppID, src.AppID)
	set(&c.PrivateKeyFile, src.PrivateKeyFile)
	set(&c.PeerPublicKeyFile, src.PeerPublicKeyFile)
	set(&c.Env, src.Env)
	set(&c.BaseURL, src.BaseURL)
	set(&c.ListenAddr, src.ListenAddr)
	set(&c.LogLevel, src.LogLevel)
	set(&c.LogFormat, src.LogFormat)
}

// ApplyEnv overrides fields from non-blank environment variables looked up
// with lookup (usually os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	env := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}
	c.Merge(&Config{
		AppID:             env(EnvAppID),
		PrivateKeyFile:    env(EnvPrivateKeyFile),
		PeerPublicKeyFile: env(EnvPeerPublicKeyFile),
		Env:               env(EnvEnvironment),
		BaseURL:           env(EnvBaseURL),
		ListenAddr:        env(EnvListenAddr),
		LogLevel:          env(EnvLogLevel),
		LogFormat:         env(EnvLogFormat),
	})
}

// Validate reports the first missing or malformed setting as a
// *protocol.ConfigurationError.
func (c *Config) Validate() error {
	switch {
	case c.AppID == "":
		return &protocol.ConfigurationError{Reason: "app id is required"}
	case c.PrivateKeyFile == "":
		return &protocol.ConfigurationError{Reason: "private key file is required"}
	case c.PeerPublicKeyFile == "":
		return &protocol.ConfigurationError{Reason: "peer public key file is required"}
	}
	if _, err := c.Environment(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return &protocol.ConfigurationError{Reason: "invalid log level", Err: err}
	}
	if _, err := parseFormat(c.LogFormat); err != nil {
		return &protocol.ConfigurationError{Reason: "invalid log format", Err: err}
	}
	return nil
}

// Environment parses Env.
func (c *Config) Environment() (transport.Environment, error) {
	env, err := transport.ParseEnvironment(c.Env)
	if err != nil {
		return "", &protocol.ConfigurationError{Reason: "invalid environment", Err: err}
	}
	return env, nil
}

// Keyring loads the two configured key files.
func (c *Config) Keyring() (*keys.Keyring, error) {
	ring, err := keys.LoadKeyringFiles(c.PrivateKeyFile, c.PeerPublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load keyring: %w", err)
	}
	return ring, nil
}

// Sender builds the HTTP transport for Env, honoring BaseURL.
func (c *Config) Sender() (*transport.HTTPSender, error) {
	env, err := c.Environment()
	if err != nil {
		return nil, err
	}
	return transport.NewSender(env, c.BaseURL, nil)
}
