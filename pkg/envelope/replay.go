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

package envelope

import (
	"strconv"
	"time"

	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// ReplayGuard rejects requests whose timestamp is older than Window.
//
// Only the age is checked. Nonces are not recorded, so an envelope captured
// in transit can be replayed until it ages out.
type ReplayGuard struct {
	Window time.Duration
	Now    func() time.Time
}

// Check parses timestamp as decimal Unix seconds and reports
// ErrInvalidTimestamp or ErrRequestExpired. A request exactly Window old is
// still accepted.
func (g ReplayGuard) Check(timestamp string) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return protocol.ErrInvalidTimestamp
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	window := g.Window
	if window <= 0 {
		window = DefaultReplayWindow
	}

	// Compared against the cutoff so that extreme timestamps cannot overflow.
	if ts < now().Unix()-int64(window/time.Second) {
		return protocol.ErrRequestExpired
	}
	return nil
}
