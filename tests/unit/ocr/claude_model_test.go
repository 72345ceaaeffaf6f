package ocr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zollkie/internal/config"
	"zollkie/internal/ocr"
	"zollkie/internal/ocr/claude"
	"zollkie/internal/port"
)

func claudeConfig() *config.OCRProviderConfig {
	return &config.OCRProviderConfig{
		Provider:     "claude",
		APIKey:       "test-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  5,
	}
}

func TestClaudeModel_Extract_Success(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content":     []map[string]any{{"type": "text", "text": `{"lrn": "DE12345"}`}},
			"stop_reason": "end_turn",
		})
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(claudeConfig(), server.URL)

	out, err := m.Extract(context.Background(), port.VisionInput{
		PageBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"lrn": "DE12345"}`, out.RawText)
	assert.Equal(t, "claude-sonnet-4-20250514", out.ModelUsed)
	assert.NotEmpty(t, out.PromptUsed)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", gotHeaders.Get("anthropic-version"))
	assert.Equal(t, "claude-sonnet-4-20250514", gotBody["model"])
}

func TestClaudeModel_Extract_ImageInput(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"type": "text", "text": "ok"}},
		})
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(claudeConfig(), server.URL)

	_, err := m.Extract(context.Background(), port.VisionInput{
		PageBytes:   []byte{0x89, 0x50, 0x4E, 0x47},
		ContentType: "image/png",
	})
	require.NoError(t, err)

	messages := gotBody["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	first := content[0].(map[string]any)
	assert.Equal(t, "image", first["type"])
}

func TestClaudeModel_Extract_UnsupportedContentType(t *testing.T) {
	m := claude.NewModelWithEndpoint(claudeConfig(), "http://unused")

	_, err := m.Extract(context.Background(), port.VisionInput{
		PageBytes:   []byte("test"),
		ContentType: "application/zip",
	})

	assert.Error(t, err)
}

func TestClaudeModel_Extract_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(claudeConfig(), server.URL)

	_, err := m.Extract(context.Background(), port.VisionInput{
		PageBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	})

	var rlErr *ocr.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "claude", rlErr.Provider)
	assert.Equal(t, float64(30), rlErr.RetryAfter.Seconds())
}

func TestClaudeModel_Extract_Truncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content":     []map[string]any{{"type": "text", "text": "partial"}},
			"stop_reason": "max_tokens",
		})
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(claudeConfig(), server.URL)

	_, err := m.Extract(context.Background(), port.VisionInput{
		PageBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
}
