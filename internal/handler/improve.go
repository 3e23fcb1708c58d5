package handler

import (
	"errors"
	"net/http"

	"github.com/aty13/evolve/internal/adapter"
	"github.com/aty13/evolve/internal/metrics"
	"github.com/aty13/evolve/internal/relay"
)

type improveRequest struct {
	Prompt string `json:"prompt"`
}

type improveResponse struct {
	Success        bool   `json:"success"`
	ImprovedPrompt string `json:"improvedPrompt"`
	OriginalLength int    `json:"originalLength"`
	ImprovedLength int    `json:"improvedLength"`
}

// Improve handles POST /api/improve-prompt.
func Improve(client adapter.CompletionClient, opts Options) http.HandlerFunc {
	opts = opts.withDefaults()

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req improveRequest
		ok, err := decodeBody(w, r, &req)
		if !ok {
			switch {
			case err == nil:
			case errors.Is(err, errWrongType):
				writeError(w, http.StatusBadRequest, relay.ErrEmptyPrompt.Error())
			default:
				writeError(w, http.StatusBadRequest, msgInvalidJSON)
			}
			return
		}

		prompt, err := relay.ValidatePrompt(req.Prompt)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		metrics.PromptChars.Observe(float64(relay.CharCount(prompt)))

		improved, fail := complete(r.Context(), client, opts, relay.OpImprove, relay.ImproveSystemPrompt, prompt, relay.ImproveMaxTokens)
		if fail != nil {
			writeError(w, fail.Status, fail.Message)
			return
		}

		writeJSON(w, http.StatusOK, improveResponse{
			Success:        true,
			ImprovedPrompt: improved,
			OriginalLength: relay.CharCount(req.Prompt),
			ImprovedLength: relay.CharCount(improved),
		})
	}
}
