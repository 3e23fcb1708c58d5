package relay

import (
	"context"
	"errors"
	"net/http"

	"github.com/aty13/evolve/internal/adapter"
)

// Operation names a relay endpoint for messages and metric labels.
type Operation string

const (
	OpImprove Operation = "improve"
	OpExplain Operation = "explain"
)

const (
	msgConfigError = "API configuration error. Please check your API key."
	msgRateLimited = "Rate limit exceeded. Please try again in a moment."
)

// Failure is what the caller sees for an upstream error: a status code and a
// generic message. Kind is a low-cardinality label for logs and metrics.
type Failure struct {
	Status  int
	Message string
	Kind    string
}

// Classify maps an upstream error onto the client-facing failure. Provider
// messages and credentials never reach the returned Message. Explain always
// answers 500 with its generic message; Kind still records the cause.
func Classify(op Operation, err error) Failure {
	f := classify(op, err)
	if op == OpExplain {
		f.Status = http.StatusInternalServerError
		f.Message = genericMessage(op)
	}
	return f
}

func classify(op Operation, err error) Failure {
	switch {
	case errors.Is(err, adapter.ErrAuth):
		return Failure{Status: http.StatusInternalServerError, Message: msgConfigError, Kind: "auth"}
	case errors.Is(err, adapter.ErrRateLimited):
		return Failure{Status: http.StatusTooManyRequests, Message: msgRateLimited, Kind: "rate_limit"}
	case errors.Is(err, context.DeadlineExceeded):
		return Failure{Status: http.StatusInternalServerError, Message: genericMessage(op), Kind: "timeout"}
	default:
		return Failure{Status: http.StatusInternalServerError, Message: genericMessage(op), Kind: "upstream"}
	}
}

func genericMessage(op Operation) string {
	if op == OpExplain {
		return "Failed to explain improvements. Please try again."
	}
	return "Failed to improve prompt. Please try again."
}
