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

// Package verifier checks RSA-SHA256 signatures on Shucang envelopes.
//
// Verification is deliberately boolean. A bad base64 string, a missing key
// and a signature that simply does not match are all reported as false,
// so a caller (and therefore a remote peer) learns only "invalid":
//
//	v := verifier.NewRSAVerifier()
//	if !v.Verify(protocol.Canonicalize(env), env["sign"], peerPublicKey) {
//	    return protocol.ErrSignatureInvalid
//	}
//
// The envelope package depends on the Verifier interface rather than on
// RSAVerifier, so tests can count or stub verification calls.
package verifier
