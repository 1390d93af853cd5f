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
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sage-x-project/shucang-go/pkg/protocol"
	"github.com/stretchr/testify/assert"
)

func TestReplayGuard_Check(t *testing.T) {
	g := ReplayGuard{Window: DefaultReplayWindow, Now: fixedClock(testNow)}
	now := testNow.Unix()

	cases := []struct {
		name      string
		timestamp string
		want      error
	}{
		{"now", strconv.FormatInt(now, 10), nil},
		{"exactly 600s old", strconv.FormatInt(now-600, 10), nil},
		{"601s old", strconv.FormatInt(now-601, 10), protocol.ErrRequestExpired},
		{"far past", "0", protocol.ErrRequestExpired},
		{"min int64", "-9223372036854775808", protocol.ErrRequestExpired},
		{"near min int64", "-9223372036854775000", protocol.ErrRequestExpired},
		{"max int64", "9223372036854775807", nil},
		{"future", strconv.FormatInt(now+3600, 10), nil},
		{"not a number", "abc", protocol.ErrInvalidTimestamp},
		{"empty", "", protocol.ErrInvalidTimestamp},
		{"fractional", "1717171717.5", protocol.ErrInvalidTimestamp},
		{"padded", " 1717171717", protocol.ErrInvalidTimestamp},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.Check(tc.timestamp)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReplayGuard_Defaults(t *testing.T) {
	var g ReplayGuard
	now := time.Now().Unix()

	assert.NoError(t, g.Check(strconv.FormatInt(now-60, 10)))
	assert.ErrorIs(t, g.Check(strconv.FormatInt(now-3600, 10)), protocol.ErrRequestExpired)
}

func TestNewNonce(t *testing.T) {
	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)

	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := NewNonce()
				mu.Lock()
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 800)
	for n := range seen {
		assert.Regexp(t, hex32, n)
	}
}
