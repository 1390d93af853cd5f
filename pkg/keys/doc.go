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

// Package keys loads RSA key material for the envelope protocol.
//
// Keys are usually distributed as PEM text, but the API console hands out
// bare base64 blobs without armor. Normalize turns such a blob into PEM by
// adding the header and footer for the expected role and wrapping the body
// at 64 characters per line:
//
//	priv, err := keys.LoadPrivateKey(os.Getenv("APP_PRIVATE_KEY"))
//	if err != nil {
//	    // *protocol.ConfigurationError; the client must not be used
//	}
//
// A Keyring groups the party's own private key with the counterparty's
// public key:
//
//	ring, err := keys.LoadKeyringFiles("app-private.pem", "today-public.pem")
//
// Key text is never logged and never copied into error messages.
package keys
