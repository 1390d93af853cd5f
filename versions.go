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

// Package shucang provides version information for shucang-go and the
// protocol it speaks.
package shucang

const (
	// Version is the current version of shucang-go
	Version = "1.0.0-dev"

	// ProtocolVersion is the open API envelope protocol version this library speaks
	ProtocolVersion = "v1"

	// SignatureScheme is the fixed signing algorithm
	SignatureScheme = "RSA-SHA256"

	// EncryptionScheme is the fixed payload encryption algorithm
	EncryptionScheme = "RSAES-PKCS1-v1_5"
)
