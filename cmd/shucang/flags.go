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
	"log/slog"

	"github.com/sage-x-project/shucang-go/pkg/config"
	"github.com/urfave/cli/v2"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML config file",
		EnvVars: []string{"SHUCANG_CONFIG"},
	}

	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
	}

	LogFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format (text, json)",
	}

	AppIDFlag = &cli.StringFlag{
		Name:  "app-id",
		Usage: "App ID stamped on and expected in every envelope",
	}

	PrivateKeyFileFlag = &cli.StringFlag{
		Name:  "private-key-file",
		Usage: "Path to our RSA private key PEM file",
	}

	PeerPublicKeyFileFlag = &cli.StringFlag{
		Name:  "peer-public-key-file",
		Usage: "Path to the other side's RSA public key PEM file",
	}

	EnvFlag = &cli.StringFlag{
		Name:  "env",
		Usage: "Target environment (sandbox, production)",
	}

	BaseURLFlag = &cli.StringFlag{
		Name:  "base-url",
		Usage: "Override the environment's endpoint URL",
	}

	ListenAddrFlag = &cli.StringFlag{
		Name:  "listen-addr",
		Usage: "Address the test server listens on",
	}
)

var keyFlags = []cli.Flag{AppIDFlag, PrivateKeyFileFlag, PeerPublicKeyFileFlag}

// loadConfig layers flags over the config file and environment.
func loadConfig(c *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(c.String(ConfigFlag.Name))
	if err != nil {
		return nil, nil, err
	}

	flags := map[string]*string{
		LogLevelFlag.Name:          &cfg.LogLevel,
		LogFormatFlag.Name:         &cfg.LogFormat,
		AppIDFlag.Name:             &cfg.AppID,
		PrivateKeyFileFlag.Name:    &cfg.PrivateKeyFile,
		PeerPublicKeyFileFlag.Name: &cfg.PeerPublicKeyFile,
		EnvFlag.Name:               &cfg.Env,
		BaseURLFlag.Name:           &cfg.BaseURL,
		ListenAddrFlag.Name:        &cfg.ListenAddr,
	}
	for name, dst := range flags {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, config.NewLoggerTo(c.App.ErrWriter, cfg.LogLevel, cfg.LogFormat), nil
}
