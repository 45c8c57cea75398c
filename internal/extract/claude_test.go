package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/cohort-intel/pkg/anthropic"
)

type stubAnthropic struct {
	lastReq anthropic.MessageRequest
	text    string
	err     error
}

func (s *stubAnthropic) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: s.text}},
	}, nil
}

func TestClaudeProvider_Extract(t *testing.T) {
	client := &stubAnthropic{text: `{"products": "widgets", "value_prop": "cheap widgets"}`}
	provider := NewClaudeProvider(client, "test-model")

	data, err := provider.Extract(context.Background(), Request{
		Target:      "https://x.dev",
		Instruction: "analyze the site",
		Schema: map[string]string{
			"products":   "what they sell",
			"value_prop": "the pitch",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "widgets", data["products"])

	assert.Equal(t, "test-model", client.lastReq.Model)
	require.Len(t, client.lastReq.Messages, 1)
	prompt := client.lastReq.Messages[0].Content
	assert.Contains(t, prompt, "analyze the site")
	assert.Contains(t, prompt, "Target: https://x.dev")
	assert.Contains(t, prompt, `"products": what they sell`)
	assert.Contains(t, prompt, `"value_prop": the pitch`)
}

func TestClaudeProvider_Extract_StripsCodeFences(t *testing.T) {
	client := &stubAnthropic{text: "Here is the data:\n```json\n{\"products\": \"widgets\"}\n```\nHope that helps."}
	provider := NewClaudeProvider(client, "")

	data, err := provider.Extract(context.Background(), Request{Target: "https://x.dev"})
	require.NoError(t, err)
	assert.Equal(t, "widgets", data["products"])
}

func TestClaudeProvider_Extract_BadJSON(t *testing.T) {
	client := &stubAnthropic{text: "I could not find anything useful."}
	provider := NewClaudeProvider(client, "")

	_, err := provider.Extract(context.Background(), Request{Target: "https://x.dev"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse extraction JSON")
}

func TestClaudeProvider_Extract_EmptyObject(t *testing.T) {
	client := &stubAnthropic{text: "{}"}
	provider := NewClaudeProvider(client, "")

	_, err := provider.Extract(context.Background(), Request{Target: "https://x.dev"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}

func TestClaudeProvider_Extract_ProviderError(t *testing.T) {
	client := &stubAnthropic{err: assert.AnError}
	provider := NewClaudeProvider(client, "")

	_, err := provider.Extract(context.Background(), Request{Target: "https://x.dev"})
	require.Error(t, err)
}
