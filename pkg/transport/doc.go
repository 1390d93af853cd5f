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

// Package transport delivers serialized envelopes to the open API endpoint.
//
// The envelope core never performs I/O itself. It hands bytes to a Sender
// and gets bytes back, which keeps signing and encryption testable without
// a network.
//
// # Key Features
//
//   - Single endpoint, POST only, content-type application/json;charset=utf-8
//   - Fixed 30 second timeout, no retry or backoff
//   - TLS certificates and host names are always verified
//   - Sandbox and production base URLs selected by Environment
//
// # Usage
//
//	sender, err := transport.NewSender(transport.Sandbox, "", nil)
//	if err != nil {
//	    return err
//	}
//	reply, err := sender.Send(ctx, body)
//
// Tests and in-process callers can use SenderFunc:
//
//	sender := transport.SenderFunc(func(ctx context.Context, body []byte) ([]byte, error) {
//	    return handle(body), nil
//	})
//
// # Errors
//
// Network failures are wrapped with %w so errors.Is works on context and
// net errors. A non-2xx status yields *StatusError with the reply body.
package transport
