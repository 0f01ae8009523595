package prompts

import (
	"strings"
	"testing"
)

func TestRenderFineTunedPrompt(t *testing.T) {
	prompt, err := RenderFineTunedPrompt("How big is the economy of Brazil?")
	if err != nil {
		t.Fatalf("Failed to render fine tuned prompt: %v", err)
	}

	expectedContent := []string{
		"Question Generator",
		"Statistical Questions",
		"How big is the economy of Brazil?",
	}

	for _, expected := range expectedContent {
		if !strings.Contains(prompt, expected) {
			t.Errorf("Prompt should contain '%s'", expected)
		}
	}
}

func TestRenderInContextPrompt(t *testing.T) {
	prompt, err := RenderInContextPrompt("Tell me about health in Kenya")
	if err != nil {
		t.Fatalf("Failed to render in-context prompt: %v", err)
	}

	if !strings.Contains(prompt, "Tell me about health in Kenya") {
		t.Error("Prompt should contain the query")
	}

	// The in-context prompt carries the instructions the untuned model needs
	if !strings.Contains(prompt, "one per line") {
		t.Error("Prompt should contain formatting instructions")
	}
}

func TestRenderInContextWithVarsPrompt(t *testing.T) {
	metrics := "population\nmedian income\nlife expectancy"
	prompt, err := RenderInContextWithVarsPrompt(metrics, "Compare US states by income")
	if err != nil {
		t.Fatalf("Failed to render in-context-with-vars prompt: %v", err)
	}

	if !strings.Contains(prompt, "median income") {
		t.Error("Prompt should embed the metrics list")
	}

	if !strings.Contains(prompt, "Compare US states by income") {
		t.Error("Prompt should contain the query")
	}
}

func TestRenderFinalAnswerPrompt(t *testing.T) {
	tables := "Table 1: Population of France: 67 million (2023)"
	prompt, err := RenderFinalAnswerPrompt("What is the population of France?", tables)
	if err != nil {
		t.Fatalf("Failed to render final answer prompt: %v", err)
	}

	expectedContent := []string{
		"What is the population of France?",
		"Table 1: Population of France",
		"[NO ANSWER]",
	}

	for _, expected := range expectedContent {
		if !strings.Contains(prompt, expected) {
			t.Errorf("Prompt should contain '%s'", expected)
		}
	}
}

func TestRenderValidationPrompt(t *testing.T) {
	prompt, err := RenderValidationPrompt("What is the GDP of Japan?", "GDP of Japan: 4.2 trillion USD (2023)")
	if err != nil {
		t.Fatalf("Failed to render validation prompt: %v", err)
	}

	if !strings.Contains(prompt, "What is the GDP of Japan?") {
		t.Error("Prompt should contain the question")
	}

	if !strings.Contains(prompt, "YES") || !strings.Contains(prompt, "NO") {
		t.Error("Prompt should instruct a YES/NO judgement")
	}
}
