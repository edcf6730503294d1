package main

import (
	"context"
	"net"
	"net/http"
	"time"
)

// newServer builds the API server. Request contexts derive from ctx, so
// long-lived streams end as soon as ctx is cancelled.
func newServer(ctx context.Context, addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
