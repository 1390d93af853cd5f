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

package transport

import "context"

// Sender delivers one serialized envelope and returns the raw reply.
//
// Implementations must be safe for concurrent use. They report transport
// failures (network errors, timeouts, non-2xx statuses) as errors and never
// interpret the reply body.
type Sender interface {
	Send(ctx context.Context, body []byte) ([]byte, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, body []byte) ([]byte, error)

// Send calls f(ctx, body).
func (f SenderFunc) Send(ctx context.Context, body []byte) ([]byte, error) {
	return f(ctx, body)
}
