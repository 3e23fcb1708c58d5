package relay

import (
	"encoding/json"
	"strings"
)

const (
	// FallbackTitle names the single item produced when explain output is not a list.
	FallbackTitle = "General Improvements"
	// FallbackDescription stands in for raw text that has nothing to show,
	// such as an empty list.
	FallbackDescription = "The prompt was reworked for clarity and structure, but no individual changes were listed."
)

type Improvement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Explanation is either a parsed improvement list or the raw upstream text.
// The zero value is an empty fallback.
type Explanation struct {
	parsed    []Improvement
	raw       string
	emptyList bool
}

// IsFallback reports whether the upstream text could not be read as a list.
func (e Explanation) IsFallback() bool {
	return len(e.parsed) == 0
}

// Items returns the improvements to show. A fallback yields exactly one item
// carrying the raw text, or FallbackDescription when the text was a list
// with no usable entries.
func (e Explanation) Items() []Improvement {
	if e.IsFallback() {
		desc := e.raw
		if e.emptyList || desc == "" {
			desc = FallbackDescription
		}
		return []Improvement{{Title: FallbackTitle, Description: desc}}
	}
	out := make([]Improvement, len(e.parsed))
	copy(out, e.parsed)
	return out
}

func (e Explanation) Raw() string {
	return e.raw
}

// ParseExplanation reads the model's answer to ExplainSystemPrompt. It accepts
// a bare JSON array, an object with an "improvements" array, and either of
// those wrapped in a Markdown code fence. Anything else becomes a fallback.
func ParseExplanation(text string) Explanation {
	raw := strings.TrimSpace(text)
	items, ok := decodeImprovements(stripCodeFence(raw))
	return Explanation{parsed: items, raw: raw, emptyList: ok && len(items) == 0}
}

// decodeImprovements reports ok when s is a well-formed list, even one
// whose entries are all blank.
func decodeImprovements(s string) ([]Improvement, bool) {
	if s == "" {
		return nil, false
	}

	var list []Improvement
	switch s[0] {
	case '[':
		if err := json.Unmarshal([]byte(s), &list); err != nil {
			return nil, false
		}
	case '{':
		var wrapped struct {
			Improvements *[]Improvement `json:"improvements"`
		}
		if err := json.Unmarshal([]byte(s), &wrapped); err != nil || wrapped.Improvements == nil {
			return nil, false
		}
		list = *wrapped.Improvements
	default:
		return nil, false
	}

	kept := list[:0]
	for _, it := range list {
		it.Title = strings.TrimSpace(it.Title)
		it.Description = strings.TrimSpace(it.Description)
		if it.Title == "" && it.Description == "" {
			continue
		}
		kept = append(kept, it)
	}
	return kept, true
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := strings.TrimPrefix(s, "```")
	// drop the info string, e.g. ```json
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		return s
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}
