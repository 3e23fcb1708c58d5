package handler

import (
	"errors"
	"net/http"

	"github.com/aty13/evolve/internal/adapter"
	"github.com/aty13/evolve/internal/metrics"
	"github.com/aty13/evolve/internal/middleware"
	"github.com/aty13/evolve/internal/relay"
)

type explainRequest struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

type explainResponse struct {
	Success      bool                `json:"success"`
	Improvements []relay.Improvement `json:"improvements"`
}

// Explain handles POST /api/explain-improvements. Output the model did not
// format as a list is returned as a single generic item, never as an error.
func Explain(client adapter.CompletionClient, opts Options) http.HandlerFunc {
	opts = opts.withDefaults()

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req explainRequest
		ok, err := decodeBody(w, r, &req)
		if !ok {
			switch {
			case err == nil:
			case errors.Is(err, errWrongType):
				writeError(w, http.StatusBadRequest, relay.ErrMissingExplainFields.Error())
			default:
				writeError(w, http.StatusBadRequest, msgInvalidJSON)
			}
			return
		}

		if err := relay.ValidateExplain(req.Original, req.Improved); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		text, fail := complete(r.Context(), client, opts, relay.OpExplain, relay.ExplainSystemPrompt,
			relay.ExplainUserMessage(req.Original, req.Improved), relay.ExplainMaxTokens)
		if fail != nil {
			writeError(w, fail.Status, fail.Message)
			return
		}

		explanation := relay.ParseExplanation(text)
		if explanation.IsFallback() {
			metrics.ExplainFallbacks.Inc()
			opts.Logger.Warn("explain output not a list, using fallback",
				"request_id", middleware.RequestIDFromContext(r.Context()),
				"chars", relay.CharCount(explanation.Raw()),
			)
		}

		writeJSON(w, http.StatusOK, explainResponse{
			Success:      true,
			Improvements: explanation.Items(),
		})
	}
}
