package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/aty13/evolve/internal/adapter"
	"github.com/aty13/evolve/internal/metrics"
	"github.com/aty13/evolve/internal/middleware"
	"github.com/aty13/evolve/internal/relay"
)

const defaultUpstreamTimeout = 30 * time.Second

// Options carries what every relay handler shares.
type Options struct {
	UpstreamTimeout time.Duration
	Logger          *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.UpstreamTimeout <= 0 {
		o.UpstreamTimeout = defaultUpstreamTimeout
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// complete makes the single bounded upstream call for op. On failure it logs
// the underlying cause and returns the client-facing failure.
func complete(ctx context.Context, client adapter.CompletionClient, opts Options, op relay.Operation, systemPrompt, text string, maxTokens int) (string, *relay.Failure) {
	ctx, cancel := context.WithTimeout(ctx, opts.UpstreamTimeout)
	defer cancel()

	start := time.Now()
	out, err := client.Complete(ctx, systemPrompt, text, maxTokens)
	elapsed := time.Since(start)
	metrics.UpstreamDuration.WithLabelValues(string(op), client.Name()).Observe(elapsed.Seconds())

	if err != nil {
		f := relay.Classify(op, err)
		metrics.UpstreamErrors.WithLabelValues(string(op), f.Kind).Inc()
		opts.Logger.Error("upstream call failed",
			"request_id", middleware.RequestIDFromContext(ctx),
			"operation", op,
			"provider", client.Name(),
			"kind", f.Kind,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return "", &f
	}

	opts.Logger.Debug("upstream call",
		"request_id", middleware.RequestIDFromContext(ctx),
		"operation", op,
		"provider", client.Name(),
		"duration_ms", elapsed.Milliseconds(),
	)
	return out, nil
}
