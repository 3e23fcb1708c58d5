package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const timeoutBody = `{"success":false,"error":"request timeout"}`

// ChainOptions configures the middleware stack.
type ChainOptions struct {
	APIKey       string
	MaxBodyBytes int64
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → SecureHeaders → APIKey → MaxBytes → Timeout → mux
func Chain(handler http.Handler, opts ChainOptions) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 * 1024
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 35 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	h := handler
	h = http.TimeoutHandler(h, opts.Timeout, timeoutBody)
	h = jsonTimeoutType(h)
	h = MaxBytes(opts.MaxBodyBytes)(h)
	h = APIKey(opts.APIKey)(h)
	h = SecureHeaders(h)
	h = Metrics(h)
	h = Logging(opts.Logger)(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}

// jsonTimeoutType labels the TimeoutHandler envelope on API routes. A handler
// that sets its own Content-Type still overrides it on the normal path.
func jsonTimeoutType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}
