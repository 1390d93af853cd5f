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

	"github.com/sage-x-project/shucang-go/pkg/version"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "shucang",
		Usage:   "Signed, encrypted open API envelopes: client, test server and key tools",
		Version: version.Version,
		Flags: []cli.Flag{
			ConfigFlag,
			LogLevelFlag,
			LogFormatFlag,
		},
		Commands: []*cli.Command{
			keygenCommand,
			callCommand,
			serveCommand,
			versionCommand,
		},
	}
}

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print version information",
	Action: func(c *cli.Context) error {
		_, err := fmt.Fprintln(c.App.Writer, version.Get().String())
		return err
	},
}
