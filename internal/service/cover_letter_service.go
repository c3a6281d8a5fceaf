package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sensai_backend/internal/config"
	"sensai_backend/internal/util"
)

// CoverLetterService is a stateless pass-through to an OpenAI-compatible
// chat-completions API. No retries, no streaming; failures surface directly.
type CoverLetterService struct {
	config config.AIConfig
	client *http.Client
}

func NewCoverLetterService(cfg config.AIConfig) *CoverLetterService {
	return &CoverLetterService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const coverLetterSystemPrompt = "You are SENSAI, a professional career assistant. Craft tailored, concise, compelling " +
	"cover letters with a confident, friendly tone. Keep to ~250-350 words."

// Generate builds the prompt pair and returns only the generated text from
// the upstream response. Upstream error bodies are truncated so a failing
// provider cannot balloon our error payloads.
func (s *CoverLetterService) Generate(ctx context.Context, companyName, jobTitle, jobDescription, userName string) (string, error) {
	if s.config.APIKey == "" {
		return "", util.ErrAPIKeyNotSet
	}

	candidate := userName
	if candidate == "" {
		candidate = "The candidate"
	}

	userPrompt := fmt.Sprintf(
		"Candidate: %s\nTarget Role: %s at %s.\nJob Description:\n%s\n\n"+
			"Write a cover letter that highlights relevant skills and impact. Use a clean structure: "+
			"intro, two short body paragraphs (skills + achievements), closing with a call to action.",
		candidate, jobTitle, companyName, jobDescription,
	)

	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: coverLetterSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrUpstreamAI, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w (status %d): %s", util.ErrUpstreamAI, resp.StatusCode, truncate(string(body), 200))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrUpstreamAI, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", util.ErrUpstreamAI, truncate(result.Error.Message, 200))
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", util.ErrUpstreamAI)
	}

	return result.Choices[0].Message.Content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
