package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"salesbot/models"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Highly available fallbacks, tried in order after the configured model.
var fallbackModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
}

// GeminiClient calls the Gemini REST API directly. Short connect/read
// timeouts, a single attempt per candidate model and a quick hop to the next
// candidate on failure: the chat endpoint must degrade fast, not hang.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewGeminiClient(apiKey, model string, connectTimeout, readTimeout time.Duration, logger *zap.Logger) *GeminiClient {
	if strings.TrimSpace(apiKey) == "" {
		panic("Gemini API key missing. Set GEMINI_API_KEY.")
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: readTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
		logger: logger,
	}
}

func (c *GeminiClient) endpoint(model string) string {
	return c.baseURL + "/v1beta/models/" + model + ":generateContent?key=" + c.apiKey
}

// ChatJSON sends the history with a JSON response-schema constraint and
// returns the text of candidates[0].content.parts[0].
//
// Candidate models are tried strictly in sequence, one attempt each. Non-2xx
// statuses, empty bodies, unexpected envelopes and transport errors advance
// to the next candidate; a malformed outer JSON body aborts the chain since
// it signals a protocol mismatch rather than model unavailability. Every
// failure mode yields a fixed payload shaped as a valid turn response.
func (c *GeminiClient) ChatJSON(ctx context.Context, systemInstruction string, history []models.ChatMessage, temperature float64, responseSchema map[string]any) string {
	payload, err := json.Marshal(c.buildRequest(systemInstruction, history, temperature, responseSchema))
	if err != nil {
		c.logger.Error("gemini: failed to marshal request", zap.Error(err))
		return errorPayload("Gemini request build error.")
	}

	candidates := make([]string, 0, 1+len(fallbackModels))
	candidates = append(candidates, c.model)
	for _, fb := range fallbackModels {
		if fb != c.model {
			candidates = append(candidates, fb)
		}
	}

	for _, model := range candidates {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(model), bytes.NewReader(payload))
		if err != nil {
			c.logger.Error("gemini: failed to build request", zap.String("model", model), zap.Error(err))
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			// Timeouts, DNS and connect issues land here: next candidate.
			c.logger.Warn("gemini: transport error", zap.String("model", model), zap.Error(err))
			continue
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			c.logger.Warn("gemini: failed to read body", zap.String("model", model), zap.Error(err))
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			// 403/404 on a model: skip to the next candidate immediately.
			c.logger.Warn("gemini: non-2xx status",
				zap.String("model", model),
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", raw))
			continue
		}

		if len(bytes.TrimSpace(raw)) == 0 {
			c.logger.Warn("gemini: empty body", zap.String("model", model))
			continue
		}

		var envelope struct {
			Candidates []struct {
				Content struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"content"`
			} `json:"candidates"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			c.logger.Error("gemini: JSON parse error", zap.String("model", model), zap.Error(err))
			return errorPayload("Gemini JSON parse error.")
		}

		if len(envelope.Candidates) > 0 && len(envelope.Candidates[0].Content.Parts) > 0 {
			if text := envelope.Candidates[0].Content.Parts[0].Text; strings.TrimSpace(text) != "" {
				return text
			}
		}

		c.logger.Warn("gemini: unexpected response shape",
			zap.String("model", model),
			zap.ByteString("body", raw))
	}

	// No candidate model succeeded.
	return errorPayload("Could not reach Gemini (network/timeout).")
}

func (c *GeminiClient) buildRequest(systemInstruction string, history []models.ChatMessage, temperature float64, responseSchema map[string]any) map[string]any {
	contents := make([]map[string]any, 0, len(history))
	for _, m := range history {
		role := strings.ToLower(m.Role)
		if role != "user" && role != "assistant" && role != "model" {
			role = "user"
		}
		// The Gemini REST API expects "model", not "assistant".
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, map[string]any{
			"role":  role,
			"parts": []map[string]any{{"text": m.Content}},
		})
	}

	gen := map[string]any{
		"temperature":        temperature,
		"candidateCount":     1,
		"maxOutputTokens":    1024,
		"response_mime_type": "application/json",
	}
	if responseSchema != nil {
		gen["response_schema"] = responseSchema
	}

	return map[string]any{
		"contents": contents,
		"system_instruction": map[string]any{
			"role":  "system",
			"parts": []map[string]any{{"text": systemInstruction}},
		},
		"generationConfig": gen,
	}
}

// errorPayload renders a user-facing failure as valid turn-response JSON so
// the resolver and frontend treat it like any other assistant turn.
func errorPayload(msg string) string {
	b, _ := json.Marshal(map[string]any{
		"reply": "Gemini error: " + msg,
		"quickReplies": []map[string]string{
			{"label": "Show services", "value": "show services"},
		},
		"actions": map[string]any{},
	})
	return string(b)
}
