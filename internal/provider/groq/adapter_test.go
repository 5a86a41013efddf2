package groq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/provider/groq"
)

func TestNewProber_MissingAPIKey(t *testing.T) {
	prober, err := groq.NewProber(groq.Config{
		APIKey:  "",
		BaseURL: "https://api.groq.com/openai/v1",
	})

	require.Error(t, err)
	require.Nil(t, prober)
	require.Contains(t, err.Error(), "Groq API key is required")
}

func TestProber_Name(t *testing.T) {
	prober, err := groq.NewProber(groq.Config{APIKey: "test-key"})
	require.NoError(t, err)

	require.Equal(t, "groq", prober.Name())
}

func TestProber_Measure(t *testing.T) {
	var gotPath, gotAuth, gotModel string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var body struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "llama-3.3-70b-versatile",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "42"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 850, "completion_tokens": 150, "total_tokens": 1000}
		}`))
	}))
	defer srv.Close()

	prober, err := groq.NewProber(groq.Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		Timeout:    5,
		MaxRetries: 0,
	})
	require.NoError(t, err)

	sample, err := prober.Measure(context.Background(), "Llama 3.3 70B Versatile 128k", "What is the answer?")
	require.NoError(t, err)
	require.Equal(t, "/chat/completions", gotPath)
	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "llama-3.3-70b-versatile", gotModel)
	require.Equal(t, domain.ModelID("Llama 3.3 70B Versatile 128k"), sample.Model)
	require.Equal(t, int64(850), sample.PromptTokens)
	require.Equal(t, int64(150), sample.CompletionTokens)
	require.Equal(t, int64(1000), sample.TotalTokens)
}

func TestProber_MeasureUnknownModel(t *testing.T) {
	prober, err := groq.NewProber(groq.Config{APIKey: "test-key"})
	require.NoError(t, err)

	sample, err := prober.Measure(context.Background(), "gpt-4", "hello")
	require.ErrorIs(t, err, domain.ErrUnknownModel)
	require.Nil(t, sample)
}
