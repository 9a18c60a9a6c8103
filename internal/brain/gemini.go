package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abelbrown/tutoriais/internal/logging"
)

// Compile-time interface satisfaction check
var _ Provider = (*GeminiProvider)(nil)

const (
	// DefaultGeminiModel is the model used when none is configured.
	DefaultGeminiModel = "gemini-2.5-flash"
	// DefaultGeminiBaseURL is the public Generative Language API.
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
)

// GeminiProvider implements the Provider interface for Google's Gemini models
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiProvider creates a new Gemini provider. An empty baseURL selects
// the public endpoint; tests point it at an httptest server.
func NewGeminiProvider(apiKey, model, baseURL string) *GeminiProvider {
	if model == "" {
		model = DefaultGeminiModel
	}
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Available() bool {
	return g.apiKey != ""
}

// Model returns the configured model identifier.
func (g *GeminiProvider) Model() string {
	return g.model
}

func (g *GeminiProvider) Generate(ctx context.Context, req Request) (Response, error) {
	if !g.Available() {
		logging.Warn("Gemini provider not configured")
		return Response{}, fmt.Errorf("gemini provider not configured")
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	logging.Debug("Gemini API request starting", "model", g.model, "max_tokens", maxTokens)

	contents := []map[string]interface{}{
		{
			"role": "user",
			"parts": []map[string]string{
				{"text": req.UserPrompt},
			},
		},
	}

	body := map[string]interface{}{
		"contents": contents,
		"generationConfig": map[string]interface{}{
			"maxOutputTokens": maxTokens,
		},
	}

	if req.SystemPrompt != "" {
		body["systemInstruction"] = map[string]interface{}{
			"parts": []map[string]string{
				{"text": req.SystemPrompt},
			},
		}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return Response{}, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return Response{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logging.Error("Gemini API error", "status", resp.StatusCode, "body", string(respBody))
		return Response{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
		ModelVersion string `json:"modelVersion"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, fmt.Errorf("failed to parse response: %w", err)
	}

	// Gemini may split one answer across several text parts.
	var content strings.Builder
	finishReason := ""
	if len(result.Candidates) > 0 {
		for _, part := range result.Candidates[0].Content.Parts {
			content.WriteString(part.Text)
		}
		finishReason = result.Candidates[0].FinishReason
	}

	modelName := g.model
	if result.ModelVersion != "" {
		modelName = result.ModelVersion
	}

	if finishReason == "MAX_TOKENS" {
		logging.Warn("Gemini response truncated due to max tokens",
			"model", modelName,
			"max_tokens", maxTokens,
			"content_length", content.Len())
	}

	logging.Info("Gemini API response",
		"model", modelName,
		"content_length", content.Len(),
		"finish_reason", finishReason)

	return Response{
		Content:      content.String(),
		Model:        modelName,
		FinishReason: finishReason,
	}, nil
}
