// Package extract defines the structured-extraction provider boundary and
// the deadline-bounded task that absorbs provider failures.
package extract

import "context"

// Request describes one structured-extraction call: a target reference (URL
// or search query), a natural-language instruction, and the expected output
// schema as field name → description pairs.
type Request struct {
	Target      string
	Instruction string
	Schema      map[string]string
}

// Provider is the external structured-extraction service. Implementations
// return the schema-shaped object on success, and an error when the provider
// fails, returns no data, or the context expires.
type Provider interface {
	Name() string
	Extract(ctx context.Context, req Request) (map[string]any, error)
}

// jsonSchema renders the field-description pairs as a JSON-schema object for
// providers that accept one.
func jsonSchema(fields map[string]string) map[string]any {
	props := make(map[string]any, len(fields))
	for name, desc := range fields {
		props[name] = map[string]any{
			"type":        "string",
			"description": desc,
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}
