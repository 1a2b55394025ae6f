package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"floodwatch_backend/internals/features/intel/model"
)

const openRouterChatURL = "https://api.openrouter.ai/v1/chat/completions"

// OpenRouterService turns a tweet batch into a structured flood summary.
// Failures never propagate as errors: the summary degrades to an object
// describing what went wrong, and the crawl record still gets saved.
type OpenRouterService struct {
	apiKey  string
	model   string
	chatURL string
	client  *http.Client
}

func NewOpenRouterService(apiKey, modelName string) *OpenRouterService {
	return &OpenRouterService{
		apiKey:  apiKey,
		model:   modelName,
		chatURL: openRouterChatURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *OpenRouterService) Summarize(ctx context.Context, tweets []model.Tweet) any {
	if s.apiKey == "" {
		return map[string]any{"error": "OPENROUTER_API_KEY not configured"}
	}

	var lines strings.Builder
	for _, t := range tweets {
		lines.WriteString("- ")
		lines.WriteString(t.Text)
		lines.WriteString("\n")
	}
	prompt := "Extract structured flood insights from posts. Return JSON with keys: " +
		"areas (array of strings), roads_impacted (array strings), depths_cm (array numbers if mentioned), " +
		"severity (low/medium/high), summary (string). Input posts:\n" + lines.String()

	payload, err := json.Marshal(map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are assisting disaster-response with concise extraction from social posts."},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
	})
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.chatURL, bytes.NewReader(payload))
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return map[string]any{"error": "OpenRouter error", "detail": string(raw)}
	}

	var body struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Choices) == 0 {
		return map[string]any{"error": fmt.Sprintf("OpenRouter response unparseable: %v", err)}
	}

	content := body.Choices[0].Message.Content
	var structured any
	if err := json.Unmarshal([]byte(content), &structured); err != nil {
		return map[string]any{"raw": content}
	}
	return structured
}
