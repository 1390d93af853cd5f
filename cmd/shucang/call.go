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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sage-x-project/shucang-go/pkg/client"
	"github.com/urfave/cli/v2"
)

var callCommand = &cli.Command{
	Name:      "call",
	Usage:     "Call an API method and print the decrypted result",
	ArgsUsage: "METHOD",
	Flags: append([]cli.Flag{
		EnvFlag,
		BaseURLFlag,
		&cli.StringFlag{Name: "params", Aliases: []string{"p"}, Usage: "JSON params, e.g. '{\"id\":\"A1\"}'"},
	}, keyFlags...),
	Action: runCall,
}

func runCall(c *cli.Context) error {
	method := c.Args().First()
	if method == "" {
		return fmt.Errorf("method is required")
	}

	var params any
	if raw := strings.TrimSpace(c.String("params")); raw != "" {
		if !json.Valid([]byte(raw)) {
			return fmt.Errorf("params are not valid JSON")
		}
		params = json.RawMessage(raw)
	}

	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	ring, err := cfg.Keyring()
	if err != nil {
		return err
	}
	sender, err := cfg.Sender()
	if err != nil {
		return err
	}

	cl, err := client.NewClient(cfg.AppID, ring, sender, client.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Debug("Calling API", "url", sender.URL(), "method", method)
	resp, err := cl.Call(c.Context, method, params)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}

	if len(resp.Payload) == 0 {
		fmt.Fprintln(c.App.Writer, resp.Message)
		return nil
	}
	pretty, err := json.MarshalIndent(resp.Payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "%s\n", pretty)
	return nil
}
