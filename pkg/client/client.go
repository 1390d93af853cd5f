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

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sage-x-project/shucang-go/pkg/envelope"
	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
	"github.com/sage-x-project/shucang-go/pkg/transport"
)

// Client calls the open API with signed, encrypted envelopes.
type Client struct {
	appID     string
	builder   *envelope.Builder
	validator *envelope.Validator
	sender    transport.Sender
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger       *slog.Logger
	envelopeOpts []envelope.Option
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEnvelopeOptions passes options to the envelope builder and validator,
// e.g. a fixed clock in tests.
func WithEnvelopeOptions(opts ...envelope.Option) Option {
	return func(o *clientOptions) {
		o.envelopeOpts = append(o.envelopeOpts, opts...)
	}
}

// NewClient creates a client for appID. ring holds the app's private key and
// the platform's public key; sender delivers envelopes. Bad key material is
// reported as *protocol.ConfigurationError and no client is returned.
func NewClient(appID string, ring *keys.Keyring, sender transport.Sender, opts ...Option) (*Client, error) {
	if sender == nil {
		return nil, &protocol.ConfigurationError{Reason: "sender is nil"}
	}

	o := clientOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	builder, err := envelope.NewBuilder(appID, ring, o.envelopeOpts...)
	if err != nil {
		return nil, err
	}
	validator, err := envelope.NewValidator(appID, ring, o.envelopeOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		appID:     appID,
		builder:   builder,
		validator: validator,
		sender:    sender,
		logger:    o.logger,
	}, nil
}

// Call sends method with params and returns the validated response.
//
// Transport errors are returned exactly as the Sender produced them. A
// non-success code is returned as *protocol.APIError.
func (c *Client) Call(ctx context.Context, method string, params any) (*envelope.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	env, err := c.builder.BuildRequest(method, params)
	if err != nil {
		return nil, err
	}

	body, err := env.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	start := time.Now()
	c.logger.Debug("Sending request", "method", method, "app_id", c.appID, "nonce", env[protocol.FieldNonce])

	reply, err := c.sender.Send(ctx, body)
	if err != nil {
		c.logger.Warn("Transport failed", "method", method, "error", err, "elapsed", time.Since(start))
		return nil, err
	}

	resp, err := c.validator.ValidateResponse(reply)
	if err != nil {
		var apiErr *protocol.APIError
		if errors.As(err, &apiErr) {
			c.logger.Info("API returned error", "method", method, "code", apiErr.Code, "message", apiErr.Message)
		} else {
			c.logger.Warn("Rejected response", "method", method, "error", err)
		}
		return nil, err
	}

	c.logger.Debug("Request completed", "method", method, "elapsed", time.Since(start))
	return resp, nil
}

// Do calls method and decodes the response payload into out. out may be
// nil when the caller does not need the result.
func (c *Client) Do(ctx context.Context, method string, params any, out any) error {
	resp, err := c.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

// AppID returns the app identity this client signs as.
func (c *Client) AppID() string {
	return c.appID
}
