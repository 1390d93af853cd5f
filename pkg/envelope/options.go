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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sage-x-project/shucang-go/pkg/signer"
	"github.com/sage-x-project/shucang-go/pkg/verifier"
)

// DefaultReplayWindow is how old a request timestamp may be before the
// request is rejected. The boundary is inclusive.
const DefaultReplayWindow = 600 * time.Second

// Option customizes a Builder or Validator.
type Option func(*settings)

type settings struct {
	now      func() time.Time
	nonce    func() string
	signer   signer.Signer
	verifier verifier.Verifier
	window   time.Duration
}

func newSettings(opts []Option) settings {
	s := settings{
		now:      time.Now,
		nonce:    NewNonce,
		signer:   signer.NewRSASigner(),
		verifier: verifier.NewRSAVerifier(),
		window:   DefaultReplayWindow,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithClock replaces the wall clock used for timestamps and freshness.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithNonceSource replaces the nonce generator.
func WithNonceSource(nonce func() string) Option {
	return func(s *settings) {
		if nonce != nil {
			s.nonce = nonce
		}
	}
}

// WithSigner replaces the RSA signer.
func WithSigner(sg signer.Signer) Option {
	return func(s *settings) {
		if sg != nil {
			s.signer = sg
		}
	}
}

// WithVerifier replaces the RSA verifier.
func WithVerifier(v verifier.Verifier) Option {
	return func(s *settings) {
		if v != nil {
			s.verifier = v
		}
	}
}

// WithReplayWindow overrides DefaultReplayWindow. Non-positive values are
// ignored.
func WithReplayWindow(window time.Duration) Option {
	return func(s *settings) {
		if window > 0 {
			s.window = window
		}
	}
}

// NewNonce returns 32 lowercase hex characters from a random (version 4)
// UUID. It is safe for concurrent use.
func NewNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
