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

package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sage-x-project/shucang-go/pkg/envelope"
	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// Response codes written for requests that never reach a handler, or whose
// handler failed.
const (
	CodeBadRequest     = "400"
	CodeUnauthorized   = "401"
	CodeMethodNotFound = "404"
	CodeInternalError  = "500"
)

// MaxBodySize caps the request body read from the wire.
const MaxBodySize = 1 << 20

type contextKey string

const requestKey contextKey = "shucang_request"

// HandlerFunc serves one API method. The returned value becomes the
// encrypted response data; nil leaves data empty. Returning a
// *protocol.APIError sends its code and message to the caller instead of
// the generic internal error.
type HandlerFunc func(ctx context.Context, req *envelope.Request) (any, error)

// Handler is an http.Handler that authenticates request envelopes,
// dispatches them by method and answers with signed response envelopes.
type Handler struct {
	validator *envelope.Validator
	builder   *envelope.Builder
	logger    *slog.Logger
	metrics   *metrics

	mu     sync.RWMutex
	routes map[string]HandlerFunc
}

// Option configures a Handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	logger       *slog.Logger
	registerer   prometheus.Registerer
	envelopeOpts []envelope.Option
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *handlerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRegisterer registers the handler's metrics on reg. Without it the
// metrics live on a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *handlerOptions) {
		if reg != nil {
			o.registerer = reg
		}
	}
}

// WithEnvelopeOptions passes options to the request validator and response
// builder.
func WithEnvelopeOptions(opts ...envelope.Option) Option {
	return func(o *handlerOptions) {
		o.envelopeOpts = append(o.envelopeOpts, opts...)
	}
}

// NewHandler creates a Handler for appID. ring holds the server's private
// key and the caller's public key.
func NewHandler(appID string, ring *keys.Keyring, opts ...Option) (*Handler, error) {
	o := handlerOptions{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		registerer: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	validator, err := envelope.NewValidator(appID, ring, o.envelopeOpts...)
	if err != nil {
		return nil, err
	}
	builder, err := envelope.NewBuilder(appID, ring, o.envelopeOpts...)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validator: validator,
		builder:   builder,
		logger:    o.logger,
		metrics:   m,
		routes:    make(map[string]HandlerFunc),
	}, nil
}

// Register binds fn to method, replacing any earlier binding.
func (h *Handler) Register(method string, fn HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes[method] = fn
}

func (h *Handler) lookup(method string) (HandlerFunc, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn, ok := h.routes[method]
	return fn, ok
}

// ServeHTTP implements http.Handler. Envelope-level outcomes are always
// reported with HTTP 200 and a response code; only non-POST requests and
// unreadable bodies get an HTTP error status.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.metrics.rejections.WithLabelValues("body_too_large").Inc()
			h.logger.Warn("Request body too large", "limit", tooLarge.Limit, "remote", r.RemoteAddr)
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Warn("Failed to read request body", "error", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	req, err := h.validator.ValidateRequest(body)
	if err != nil {
		code, reason := classify(err)
		h.metrics.rejections.WithLabelValues(reason).Inc()
		h.logger.Warn("Rejected request", "reason", reason, "remote", r.RemoteAddr)
		h.reply(w, "", code, err.Error(), nil, start)
		return
	}

	fn, ok := h.lookup(req.Method)
	if !ok {
		h.logger.Info("Unknown method", "method", req.Method)
		h.reply(w, "", CodeMethodNotFound, "method not found", nil, start)
		return
	}

	ctx := context.WithValue(r.Context(), requestKey, req)
	result, err := fn(ctx, req)
	if err != nil {
		var apiErr *protocol.APIError
		if errors.As(err, &apiErr) && apiErr.Code != "" && apiErr.Code != protocol.SuccessCode {
			h.reply(w, req.Method, apiErr.Code, apiErr.Message, nil, start)
			return
		}
		h.logger.Error("Handler failed", "method", req.Method, "error", err)
		h.reply(w, req.Method, CodeInternalError, "internal error", nil, start)
		return
	}

	h.reply(w, req.Method, protocol.SuccessCode, "success", result, start)
}

// reply writes a signed response. method becomes the metric label; pass ""
// for requests that matched no registered method.
func (h *Handler) reply(w http.ResponseWriter, method, code, message string, result any, start time.Time) {
	var (
		env protocol.Envelope
		err error
	)
	if code == protocol.SuccessCode {
		env, err = h.builder.BuildResponse(code, message, result)
	} else {
		env, err = h.builder.BuildError(code, message)
	}
	if err != nil && code == protocol.SuccessCode {
		// The result could not be encrypted; report it instead of the result.
		h.logger.Error("Failed to build response", "method", method, "error", err)
		code = CodeInternalError
		env, err = h.builder.BuildError(code, "internal error")
	}
	if err != nil {
		h.logger.Error("Failed to build error response", "method", method, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	body, err := env.Marshal()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	label := method
	if label == "" {
		label = "unknown"
	}
	h.metrics.requests.WithLabelValues(label, code).Inc()
	h.metrics.duration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	h.logger.Debug("Request served", "method", label, "code", code, "elapsed", time.Since(start))

	w.Header().Set("Content-Type", protocol.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// classify maps a validation failure to a response code and metric reason.
func classify(err error) (code, reason string) {
	var protoErr *protocol.ProtocolError
	if errors.As(err, &protoErr) {
		switch protoErr.Reason() {
		case protocol.ReasonSignatureInvalid, protocol.ReasonAppIDMismatch:
			return CodeUnauthorized, string(protoErr.Reason())
		default:
			return CodeBadRequest, string(protoErr.Reason())
		}
	}
	var cryptoErr *protocol.CryptoError
	if errors.As(err, &cryptoErr) {
		return CodeBadRequest, "decrypt_failed"
	}
	return CodeBadRequest, "invalid"
}

// RequestFromContext returns the validated request a HandlerFunc is serving.
func RequestFromContext(ctx context.Context) (*envelope.Request, bool) {
	req, ok := ctx.Value(requestKey).(*envelope.Request)
	return req, ok
}
