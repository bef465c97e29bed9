package swagger

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-apispec/pkg/spec"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func stripMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(trimmed))
}

// sanitizeOperation cleans the free-text fields of an operation's wire
// shape: summary, description, and each response description. Descriptor
// structure is left alone.
func sanitizeOperation(raw map[string]any) {
	for _, key := range []string{"summary", "description"} {
		if text, ok := raw[key].(string); ok {
			raw[key] = stripMarkup(text)
		}
	}
	responses, ok := raw["responses"].(map[string]spec.Response)
	if !ok {
		return
	}
	for code, response := range responses {
		if text, ok := response["description"].(string); ok {
			clean := response.Clone()
			clean["description"] = stripMarkup(text)
			responses[code] = clean
		}
	}
}
