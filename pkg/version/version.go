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

// Package version reports build and protocol version information.
package version

import (
	"fmt"

	shucang "github.com/sage-x-project/shucang-go"
)

// Re-exported from the module root.
const (
	Version          = shucang.Version
	ProtocolVersion  = shucang.ProtocolVersion
	SignatureScheme  = shucang.SignatureScheme
	EncryptionScheme = shucang.EncryptionScheme
)

// Commit is set at build time with
// -ldflags "-X github.com/sage-x-project/shucang-go/pkg/version.Commit=<sha>".
var Commit = "unknown"

// Info contains detailed version information
type Info struct {
	Version          string `json:"version"`
	Commit           string `json:"commit"`
	ProtocolVersion  string `json:"protocolVersion"`
	SignatureScheme  string `json:"signatureScheme"`
	EncryptionScheme string `json:"encryptionScheme"`
}

// Get returns the version information of this build.
func Get() Info {
	return Info{
		Version:          Version,
		Commit:           Commit,
		ProtocolVersion:  ProtocolVersion,
		SignatureScheme:  SignatureScheme,
		EncryptionScheme: EncryptionScheme,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("shucang-go %s (commit %s, protocol %s, %s, %s)",
		i.Version, i.Commit, i.ProtocolVersion, i.SignatureScheme, i.EncryptionScheme)
}
