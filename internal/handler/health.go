package handler

import (
	"net/http"

	"github.com/aty13/evolve/internal/adapter"
	"github.com/aty13/evolve/internal/metrics"
)

type providerStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string         `json:"status"`
	Provider providerStatus `json:"provider"`
}

func Health(client adapter.CompletionClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := providerStatus{Name: client.Name(), Available: client.Available()}
		if !s.Available {
			s.Reason = unavailableReason(client)
		}

		gauge := 0.0
		if s.Available {
			gauge = 1
		}
		metrics.ProviderAvailable.WithLabelValues(s.Name).Set(gauge)

		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Provider: s,
		})
	}
}

func unavailableReason(c adapter.CompletionClient) string {
	switch c.(type) {
	case *adapter.OpenAIAdapter, *adapter.ClaudeAdapter:
		return "no API key"
	default:
		return "unavailable"
	}
}
