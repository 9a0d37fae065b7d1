package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"salesbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*GeminiClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGeminiClient("test-key", "gemini-2.5-flash", 500*time.Millisecond, time.Second, zap.NewNop())
	c.baseURL = srv.URL
	return c, srv
}

func envelope(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func history() []models.ChatMessage {
	return []models.ChatMessage{
		{Role: "assistant", Content: "Hi!"},
		{Role: "user", Content: "write me a poem about tires"},
	}
}

func TestChatJSONReturnsFirstCandidateText(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		// The request must carry contents, a system instruction and the
		// schema-constrained generation config.
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")
		assert.Contains(t, body, "system_instruction")
		gen := body["generationConfig"].(map[string]any)
		assert.Equal(t, "application/json", gen["response_mime_type"])
		assert.Contains(t, gen, "response_schema")

		// assistant roles are mapped to "model".
		contents := body["contents"].([]any)
		first := contents[0].(map[string]any)
		assert.Equal(t, "model", first["role"])

		w.Write([]byte(envelope(`{"reply":"ok"}`)))
	}))

	text := c.ChatJSON(context.Background(), "system", history(), 0.4, map[string]any{"type": "object"})
	assert.Equal(t, `{"reply":"ok"}`, text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChatJSONFallsBackOnHTTPError(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"message":"model not allowed"}}`))
			return
		}
		w.Write([]byte(envelope(`{"reply":"from fallback"}`)))
	}))

	text := c.ChatJSON(context.Background(), "system", history(), 0.4, nil)
	assert.Equal(t, `{"reply":"from fallback"}`, text)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestChatJSONSkipsEmptyAndMalformedEnvelopes(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		switch n {
		case 1:
			// empty body: recoverable
		case 2:
			// well-formed JSON but no candidates: recoverable
			w.Write([]byte(`{"candidates":[]}`))
		default:
			w.Write([]byte(envelope(`{"reply":"third time lucky"}`)))
		}
	}))

	text := c.ChatJSON(context.Background(), "system", history(), 0.4, nil)
	assert.Equal(t, `{"reply":"third time lucky"}`, text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestChatJSONParseErrorAbortsChain(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte("<html>definitely not the API</html>"))
	}))

	text := c.ChatJSON(context.Background(), "system", history(), 0.4, nil)

	// A malformed outer body is a protocol mismatch: no further candidates.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	var turn models.ChatResponse
	require.NoError(t, json.Unmarshal([]byte(text), &turn))
	assert.Contains(t, turn.Reply, "JSON parse error")
	assert.NotEmpty(t, turn.QuickReplies)
}

func TestChatJSONExhaustedChainReturnsErrorTurn(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"no such model"}}`))
	}))

	text := c.ChatJSON(context.Background(), "system", history(), 0.4, nil)

	// Primary plus both fallbacks, one attempt each.
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	var turn models.ChatResponse
	require.NoError(t, json.Unmarshal([]byte(text), &turn))
	assert.Contains(t, turn.Reply, "Could not reach Gemini")
	assert.NotEmpty(t, turn.QuickReplies)
}

func TestChatJSONTimeoutAdvancesCandidates(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			time.Sleep(2 * time.Second) // beyond the client read timeout
			return
		}
		w.Write([]byte(envelope(`{"reply":"recovered"}`)))
	}))

	text := c.ChatJSON(context.Background(), "system", history(), 0.4, nil)
	assert.Equal(t, `{"reply":"recovered"}`, text)
}

func TestNewGeminiClientRequiresAPIKey(t *testing.T) {
	assert.Panics(t, func() {
		NewGeminiClient("", "gemini-2.5-flash", time.Second, time.Second, zap.NewNop())
	})
}
