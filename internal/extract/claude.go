package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/cohort-intel/pkg/anthropic"
)

const claudeSystemPrompt = "You are a research analyst extracting structured data about companies. " +
	"Return a valid JSON object matching the requested schema. Use null for fields you cannot determine."

const claudeMaxTokens = 1024

// ClaudeProvider runs structured extraction through the Anthropic Messages
// API: the instruction and schema become a prompt, and the response is parsed
// as the schema-shaped JSON object.
type ClaudeProvider struct {
	client anthropic.Client
	model  string
}

// NewClaudeProvider wraps an Anthropic client as an extraction provider.
// An empty model falls back to the client default.
func NewClaudeProvider(client anthropic.Client, model string) *ClaudeProvider {
	return &ClaudeProvider{client: client, model: model}
}

// Name implements Provider.
func (p *ClaudeProvider) Name() string { return "claude" }

// Extract implements Provider.
func (p *ClaudeProvider) Extract(ctx context.Context, req Request) (map[string]any, error) {
	resp, err := p.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     p.model,
		MaxTokens: claudeMaxTokens,
		System:    claudeSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), &data); err != nil {
		return nil, eris.Wrap(err, "claude: parse extraction JSON")
	}
	if len(data) == 0 {
		return nil, eris.New("claude: extraction returned no data")
	}
	return data, nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(req.Instruction)
	b.WriteString("\n\nTarget: ")
	b.WriteString(req.Target)
	b.WriteString("\n\nReturn a JSON object with these fields:\n")

	fields := make([]string, 0, len(req.Schema))
	for name := range req.Schema {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	for _, name := range fields {
		fmt.Fprintf(&b, "- %q: %s\n", name, req.Schema[name])
	}
	return b.String()
}

// cleanJSON strips markdown code fences and surrounding prose from a model
// response, leaving the outermost JSON object.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			return text[start : end+1]
		}
	}
	return text
}
