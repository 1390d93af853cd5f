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

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sage-x-project/shucang-go/pkg/envelope"
	"github.com/sage-x-project/shucang-go/pkg/keys"
	"github.com/sage-x-project/shucang-go/pkg/server"
	"github.com/sage-x-project/shucang-go/pkg/version"
	"github.com/urfave/cli/v2"
)

// APIPath is where the test server accepts envelopes.
const APIPath = "/api/v1/open"

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Run a test endpoint that answers ping and echo",
	Description: "The server holds the platform side of the key pair: --private-key-file is the\n" +
		"server's own key and --peer-public-key-file is the calling app's public key.",
	Flags:  append([]cli.Flag{ListenAddrFlag}, keyFlags...),
	Action: runServe,
}

func runServe(c *cli.Context) error {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	ring, err := cfg.Keyring()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux, err := newServeMux(cfg.AppID, ring, logger, reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", cfg.ListenAddr, "path", APIPath, "app_id", cfg.AppID)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newServeMux wires the envelope handler, /metrics and /healthz.
func newServeMux(appID string, ring *keys.Keyring, logger *slog.Logger, reg *prometheus.Registry) (*http.ServeMux, error) {
	h, err := server.NewHandler(appID, ring, server.WithLogger(logger), server.WithRegisterer(reg))
	if err != nil {
		return nil, err
	}

	h.Register("ping", func(ctx context.Context, req *envelope.Request) (any, error) {
		return map[string]string{"pong": version.Version}, nil
	})
	h.Register("echo", func(ctx context.Context, req *envelope.Request) (any, error) {
		return req.Payload, nil
	})

	mux := http.NewServeMux()
	mux.Handle(APIPath, h)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux, nil
}
