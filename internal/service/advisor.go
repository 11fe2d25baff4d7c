package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go_rel_diary/internal/config"
	"go_rel_diary/internal/middleware"
	"go_rel_diary/internal/model"
)

// Advisor is the external language-model collaborator. It may fail or time
// out; callers surface that as a recoverable error and never lose state.
type Advisor interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// --- LogAdvisor ---
//
// Dev stand-in: logs the prompt and returns a canned reply.
type LogAdvisor struct{}

func (a *LogAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Generating advice (LogAdvisor) ---", "prompt_len", len(prompt))
	return "Análise indisponível no modo de desenvolvimento. Configure o advisor 'groq'.", nil
}

// --- GroqAdvisor ---
//
// Calls a Groq/OpenAI-style chat-completions endpoint.
type GroqAdvisor struct {
	cfg    *config.Config
	client *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (a *GroqAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	logger := middleware.GetLogger(ctx)

	body, err := json.Marshal(chatCompletionRequest{
		Model:       a.cfg.Advisor.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: a.cfg.Advisor.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("GroqAdvisor.Generate: %w", model.ErrAdvisor)
	}

	url := a.cfg.Advisor.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("GroqAdvisor.Generate: %w", model.ErrAdvisor)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.cfg.Advisor.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		logger.Error("Advisor request failed", "error", err, "url", url)
		return "", fmt.Errorf("GroqAdvisor.Generate: %w", model.ErrAdvisor)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Error("Advisor returned non-OK status",
			"status", resp.StatusCode,
			"body", string(payload),
		)
		return "", fmt.Errorf("GroqAdvisor.Generate: status %d: %w", resp.StatusCode, model.ErrAdvisor)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		logger.Error("Error decoding advisor response", "error", err)
		return "", fmt.Errorf("GroqAdvisor.Generate: %w", model.ErrAdvisor)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		logger.Error("Advisor response had no choices")
		return "", fmt.Errorf("GroqAdvisor.Generate: empty completion: %w", model.ErrAdvisor)
	}

	return completion.Choices[0].Message.Content, nil
}

// --- NewAdvisor factory ---
func NewAdvisor(cfg *config.Config) Advisor {
	logger := slog.Default()
	switch cfg.Advisor.Type {
	case "groq":
		logger.Info("Initializing Groq advisor...", "model", cfg.Advisor.Model)
		if cfg.Advisor.APIKey == "" {
			logger.Warn("Advisor type is 'groq' but no API key is set; requests will be rejected upstream.")
		}
		return &GroqAdvisor{
			cfg: cfg,
			client: &http.Client{
				Timeout: time.Duration(cfg.Advisor.TimeoutSeconds) * time.Second,
			},
		}
	case "log":
		logger.Info("Initializing Log advisor...")
		return &LogAdvisor{}
	default:
		logger.Warn("Unknown advisor type, defaulting to LogAdvisor", "type", cfg.Advisor.Type)
		return &LogAdvisor{}
	}
}
