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

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sage-x-project/shucang-go/pkg/protocol"
)

// DefaultTimeout bounds a whole request/response exchange. There is no
// retry; a timeout is returned to the caller.
const DefaultTimeout = 30 * time.Second

// maxResponseSize caps how much of a reply body is read.
const maxResponseSize = 1 << 20

// ErrResponseTooLarge is returned when a successful reply exceeds the 1 MiB
// read cap.
var ErrResponseTooLarge = errors.New("response body too large")

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %s: %s", e.Status, string(e.Body))
}

// HTTPSender posts envelopes to a single HTTP endpoint.
type HTTPSender struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSender creates a sender for url. If httpClient is nil a client with
// DefaultTimeout and the default (verifying) TLS configuration is used.
func NewHTTPSender(url string, httpClient *http.Client) *HTTPSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &HTTPSender{
		url:        url,
		httpClient: httpClient,
	}
}

// URL returns the endpoint envelopes are posted to.
func (s *HTTPSender) URL() string {
	return s.url
}

// Send POSTs body as application/json and returns the response body.
func (s *HTTPSender) Send(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", protocol.ContentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	tooLarge := len(respBody) > maxResponseSize
	if tooLarge {
		respBody = respBody[:maxResponseSize]
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
		}
	}
	if tooLarge {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrResponseTooLarge, maxResponseSize)
	}

	return respBody, nil
}
