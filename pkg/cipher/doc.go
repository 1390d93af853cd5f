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

// Package cipher encrypts envelope payloads.
//
// The data field of an envelope is the base64 encoding of a single
// RSAES-PKCS1-v1_5 block holding the JSON encoding of the payload. It is
// encrypted with the counterparty's public key and decrypted with the
// receiver's own private key.
//
// A single block bounds the payload size: at most k-11 bytes of JSON fit,
// where k is the modulus size in bytes (245 bytes for a 2048-bit key).
// Larger payloads fail with ErrPayloadTooLarge; they are never truncated.
package cipher
