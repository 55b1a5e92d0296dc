package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type anthropicBody struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func anthropicServer(t *testing.T, got *anthropicBody) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-20250514",
			"content": [
				{"type": "text", "text": "# Report"},
				{"type": "tool_use", "id": "tu_1", "name": "web_search", "input": {}},
				{"type": "text", "text": "\n\nBody"}
			],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 21, "output_tokens": 8}
		}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnthropic_Generate(t *testing.T) {
	var got anthropicBody
	srv := anthropicServer(t, &got)

	c, err := NewAnthropic(AnthropicConfig{APIKey: "ak-test", Model: "claude-3-5-haiku-latest", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	resp, err := c.Generate(context.Background(), Request{System: "You are a reviewer", Prompt: "review it", MaxTokens: 512})
	require.NoError(t, err)

	assert.Equal(t, "# Report\n\nBody", resp.Text)
	assert.Equal(t, int64(21), resp.InputTokens)
	assert.Equal(t, int64(8), resp.OutputTokens)

	assert.Equal(t, "claude-3-5-haiku-latest", got.Model)
	assert.Equal(t, 512, got.MaxTokens)
	require.Len(t, got.System, 1)
	assert.Equal(t, "You are a reviewer", got.System[0].Text)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	require.Len(t, got.Messages[0].Content, 1)
	assert.Equal(t, "review it", got.Messages[0].Content[0].Text)
}

func TestAnthropic_Defaults(t *testing.T) {
	var got anthropicBody
	srv := anthropicServer(t, &got)

	c, err := NewAnthropic(AnthropicConfig{APIKey: "ak-test", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "claude-sonnet-4-20250514", got.Model)
	assert.Equal(t, DefaultMaxTokens, got.MaxTokens)
	assert.Empty(t, got.System)
}

func TestAnthropic_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "invalid_request_error", "message": "max_tokens too large"}}`))
	}))
	defer srv.Close()

	c, err := NewAnthropic(AnthropicConfig{APIKey: "ak-test", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorContains(t, err, "max_tokens too large")
}
