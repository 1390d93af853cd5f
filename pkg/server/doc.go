// Package server serves the envelope protocol over HTTP.
//
// A Handler authenticates every inbound request envelope, dispatches it to
// the HandlerFunc registered for its method and answers with a signed,
// encrypted response envelope:
//
//	ring, err := keys.LoadKeyringFiles("platform-private.pem", "app-public.pem")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h, err := server.NewHandler("10001", ring,
//	    server.WithLogger(logger),
//	    server.WithRegisterer(prometheus.DefaultRegisterer))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h.Register("order.create", func(ctx context.Context, req *envelope.Request) (any, error) {
//	    var order struct{ ID string `json:"id"` }
//	    if err := req.Decode(&order); err != nil {
//	        return nil, &protocol.APIError{Code: "400", Message: "bad order"}
//	    }
//	    return map[string]bool{"result": true}, nil
//	})
//
//	http.Handle("/api/v1/open", h)
//
// # Response Codes
//
// Rejected envelopes never reach a HandlerFunc. The response code tells the
// caller why:
//
//	400  malformed envelope, stale timestamp, undecryptable data
//	401  app_id mismatch or bad signature
//	404  no handler registered for the method
//	500  the handler failed
//
// Failure responses carry an empty data field. The HTTP status is 200 for
// every envelope response.
//
// # Metrics
//
// The handler records shucang_server_requests_total{method,code},
// shucang_server_rejections_total{reason} and
// shucang_server_request_duration_seconds{method} on the registerer given
// to WithRegisterer.
package server
