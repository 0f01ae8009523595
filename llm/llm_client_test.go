package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type chunkedClient struct {
	model  string
	chunks []string
	err    error

	lastMessages []Message
}

func (c *chunkedClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	c.lastMessages = messages
	if c.err != nil {
		return c.err
	}
	for _, chunk := range c.chunks {
		if err := callback(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (c *chunkedClient) GetModel() string {
	return c.model
}

func TestCompleteAccumulatesChunks(t *testing.T) {
	client := &chunkedClient{
		model:  "gemma-2b",
		chunks: []string{"France has ", "67 million ", "people."},
	}

	call, err := Complete(context.Background(), client, "What is the population of France?")
	assert.NoError(t, err)
	assert.Equal(t, "France has 67 million people.", call.Response)
	assert.Equal(t, "gemma-2b", call.Model)
	assert.Equal(t, "What is the population of France?", call.Prompt)
	assert.GreaterOrEqual(t, call.DurationMs, int64(0))

	// The prompt goes out as a single user message
	assert.Len(t, client.lastMessages, 1)
	assert.Equal(t, "user", client.lastMessages[0].Role)
}

func TestCompletePropagatesError(t *testing.T) {
	client := &chunkedClient{
		model: "gemma-2b",
		err:   errors.New("rate limited"),
	}

	call, err := Complete(context.Background(), client, "any prompt")
	assert.Error(t, err)
	assert.Nil(t, call)
}

func TestCompleteEmptyResponse(t *testing.T) {
	client := &chunkedClient{model: "gemma-2b"}

	call, err := Complete(context.Background(), client, "any prompt")
	assert.NoError(t, err)
	assert.Equal(t, "", call.Response)
}

func TestOptionsApply(t *testing.T) {
	settings := LLMSettings{}
	for _, opt := range []LLMOption{
		WithTemperature(0.2),
		WithMaxTokens(1024),
		WithSystemPrompt("You are a statistician."),
	} {
		opt(&settings)
	}

	assert.Equal(t, 0.2, settings.temperature)
	assert.Equal(t, 1024, settings.maxTokens)
	assert.Equal(t, "You are a statistician.", settings.system)
}
