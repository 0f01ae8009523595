package llm

import (
	"context"
	"strings"
	"time"
)

type LLMClient interface {
	GenerateInference(
		ctx context.Context,
		messages []Message,
		callback func(chunk string) error,
		opts ...LLMOption,
	) error

	GetModel() string
}

type LLMSettings struct {
	model       string  // model name
	temperature float64 // randomness (0.0 to 1.0)
	maxTokens   int     // maximum tokens to generate
	system      string  // system prompt
}

type LLMOption func(*LLMSettings)

// Common options for all LLM providers
func WithTemperature(temp float64) LLMOption {
	return func(s *LLMSettings) { s.temperature = temp }
}

func WithMaxTokens(tokens int) LLMOption {
	return func(s *LLMSettings) { s.maxTokens = tokens }
}

func WithSystemPrompt(prompt string) LLMOption {
	return func(s *LLMSettings) { s.system = prompt }
}

type Message struct {
	Role    string `json:"role"`    // "user", "assistant", "system"
	Content string `json:"content"` // the message content
}

// Call records one request/response exchange with a model. The RAG flow
// accumulates these for auditing; nothing downstream consumes them.
type Call struct {
	Model      string `json:"model"`
	Prompt     string `json:"prompt"`
	Response   string `json:"response"`
	DurationMs int64  `json:"duration_ms"`
}

// Complete runs a single-prompt inference, accumulating streamed chunks
// into one response string.
func Complete(ctx context.Context, client LLMClient, prompt string, opts ...LLMOption) (*Call, error) {
	start := time.Now()

	var response strings.Builder
	err := client.GenerateInference(
		ctx,
		[]Message{{Role: "user", Content: prompt}},
		func(chunk string) error {
			response.WriteString(chunk)
			return nil
		},
		opts...,
	)
	if err != nil {
		return nil, err
	}

	return &Call{
		Model:      client.GetModel(),
		Prompt:     prompt,
		Response:   response.String(),
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}
