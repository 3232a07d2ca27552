package claude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/config"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor/claude"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/port"
)

func newClaudeTestExtractor(serverURL string) *claude.Extractor {
	cfg := &config.ProviderConfig{
		Provider:     "claude",
		APIKey:       "test-api-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return claude.NewExtractorWithEndpoint(cfg, serverURL)
}

var testInput = port.ExtractInput{Segments: []domain.TranscriptSegment{
	{Time: "00:00:01", Speaker: "Gydytojas", Text: "Ar turite alergijų?"},
	{Time: "00:00:02", Speaker: "Pacientas", Text: "Penicilinui."},
}}

func TestClaudeExtractor_Extract_Success(t *testing.T) {
	llmJSON := "```json\n{\"document\":{\"allergies\":[{\"type\":\"vaistai\",\"description\":\"Penicilinas\",\"source_segments\":[0,1]}]},\"references\":[]}\n```"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])
		assert.Contains(t, reqBody["system"], "<output_schema>")
		messages := reqBody["messages"].([]interface{})
		if !assert.Len(t, messages, 1) {
			return
		}
		assert.Contains(t, messages[0].(map[string]interface{})["content"], "[1] 00:00:02 | Pacientas: Penicilinui.")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content":     []map[string]interface{}{{"type": "text", "text": llmJSON}},
			"stop_reason": "end_turn",
		})
	}))
	defer server.Close()

	e := newClaudeTestExtractor(server.URL)

	out, err := e.Extract(context.Background(), testInput)

	require.NoError(t, err)
	assert.Equal(t, llmJSON, out.RawText)
	assert.Equal(t, "claude", out.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", out.ModelUsed)
}

func TestClaudeExtractor_Extract_MaxTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content":     []map[string]interface{}{{"type": "text", "text": `{"document":`}},
			"stop_reason": "max_tokens",
		})
	}))
	defer server.Close()

	e := newClaudeTestExtractor(server.URL)

	_, err := e.Extract(context.Background(), testInput)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
}

func TestClaudeExtractor_Extract_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	e := newClaudeTestExtractor(server.URL)

	_, err := e.Extract(context.Background(), testInput)

	var rlErr *extractor.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "claude", rlErr.Provider)
}
