package server

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aty13/evolve/internal/adapter"
	"github.com/aty13/evolve/internal/handler"
	"github.com/aty13/evolve/internal/middleware"
)

// requestSlack is how much longer a whole request may run than its upstream call.
const requestSlack = 5 * time.Second

// Options configures SetupMux. Zero values fall back to defaults.
type Options struct {
	APIKey          string
	UpstreamTimeout time.Duration
	MaxBodyBytes    int64
	Logger          *slog.Logger
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(client adapter.CompletionClient, assets fs.FS, opts Options) http.Handler {
	hopts := handler.Options{UpstreamTimeout: opts.UpstreamTimeout, Logger: opts.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/improve-prompt", handler.Improve(client, hopts))
	mux.HandleFunc("/api/explain-improvements", handler.Explain(client, hopts))
	mux.HandleFunc("/api/health", handler.Health(client))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", handler.Static(assets))

	var timeout time.Duration
	if opts.UpstreamTimeout > 0 {
		timeout = opts.UpstreamTimeout + requestSlack
	}
	return middleware.Chain(mux, middleware.ChainOptions{
		APIKey:       opts.APIKey,
		MaxBodyBytes: opts.MaxBodyBytes,
		Timeout:      timeout,
		Logger:       opts.Logger,
	})
}
