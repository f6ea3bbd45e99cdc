// Package ai wraps the generative backend behind contract.Generator.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"manifesto-bot/errors"
)

// Gemini calls the Gemini API. One prompt in, one text out, no
// streaming, no conversation state on the backend side. Everything the
// model needs travels inside the prompt.
type Gemini struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, log *slog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.ErrEmptyGeneration
	}

	g.log.Debug("Generation completed",
		"model", g.model,
		"prompt_len", len(prompt),
		"response_len", len(text))
	return text, nil
}
