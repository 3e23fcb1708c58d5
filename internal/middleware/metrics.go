package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aty13/evolve/internal/metrics"
)

// Metrics records request count by method, route, and status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(sw.status)).Inc()
	})
}

var knownRoutes = map[string]bool{
	"/api/improve-prompt":       true,
	"/api/explain-improvements": true,
	"/api/health":               true,
	"/metrics":                  true,
}

// routeLabel keeps the known routes, folds other API paths into "other" and
// asset paths into "static", so arbitrary URLs cannot grow the series count.
func routeLabel(path string) string {
	switch {
	case knownRoutes[path]:
		return path
	case strings.HasPrefix(path, "/api/"):
		return "other"
	default:
		return "static"
	}
}
