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
	"fmt"
	"os"
	"path/filepath"

	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/urfave/cli/v2"
)

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "Generate an RSA key pair as PEM files",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out-dir", Value: ".", Usage: "Directory to write the key files to"},
		&cli.StringFlag{Name: "name", Value: "shucang", Usage: "File name prefix"},
		&cli.IntFlag{Name: "bits", Value: keys.MinKeyBits, Usage: "RSA modulus size"},
	},
	Action: runKeygen,
}

func runKeygen(c *cli.Context) error {
	privPEM, pubPEM, err := keys.GenerateKeyPair(c.Int("bits"))
	if err != nil {
		return err
	}

	dir := c.String("out-dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	privPath := filepath.Join(dir, c.String("name")+"-private.pem")
	pubPath := filepath.Join(dir, c.String("name")+"-public.pem")

	if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Private key: %s\nPublic key:  %s\n", privPath, pubPath)
	return nil
}
