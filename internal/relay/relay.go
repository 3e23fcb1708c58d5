// Package relay holds the provider-independent contract of the prompt
// relay: input limits, instruction templates, parsing of explain output
// and the mapping of upstream failures onto client-facing messages.
package relay

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxPromptChars is the largest accepted prompt, in characters, after trimming.
	MaxPromptChars = 5000

	ImproveMaxTokens = 1000
	ExplainMaxTokens = 800
)

// ValidationError is rejected input. Its message is shown to the caller as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrEmptyPrompt          = &ValidationError{Message: "Please provide a valid prompt"}
	ErrPromptTooLong        = &ValidationError{Message: fmt.Sprintf("Prompt is too long. Please limit to %d characters.", MaxPromptChars)}
	ErrMissingExplainFields = &ValidationError{Message: "Missing original or improved prompt"}
)

// CharCount counts characters as Unicode code points.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ValidatePrompt returns the trimmed prompt or a validation error whose text
// is safe to show to the caller.
func ValidatePrompt(prompt string) (string, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return "", ErrEmptyPrompt
	}
	if CharCount(trimmed) > MaxPromptChars {
		return "", ErrPromptTooLong
	}
	return trimmed, nil
}

func ValidateExplain(original, improved string) error {
	if strings.TrimSpace(original) == "" || strings.TrimSpace(improved) == "" {
		return ErrMissingExplainFields
	}
	return nil
}

// IsValidation reports whether err is one of the input validation errors.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
