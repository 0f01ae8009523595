package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/statgemma/statgemma/datacommons"
	"github.com/statgemma/statgemma/llm"
	"github.com/stretchr/testify/assert"
)

// judgeLLM answers YES or NO depending on the question inside the prompt.
type judgeLLM struct {
	noFor string
	err   error
	calls int
}

func (j *judgeLLM) GenerateInference(ctx context.Context, messages []llm.Message, callback func(chunk string) error, opts ...llm.LLMOption) error {
	j.calls++
	if j.err != nil {
		return j.err
	}
	if j.noFor != "" && strings.Contains(messages[0].Content, j.noFor) {
		return callback("NO")
	}
	return callback("YES")
}

func (j *judgeLLM) GetModel() string { return "judge" }

func tableResponse(title string) *datacommons.Response {
	return &datacommons.Response{
		Title: title,
		Table: &datacommons.Table{Rows: [][]string{{"France", "2023", "67000000"}}},
	}
}

func TestRunValidationDropsRejectedTables(t *testing.T) {
	q2resp := map[string]*datacommons.Response{
		"What is the population of France?": tableResponse("Population of France"),
		"What is the GDP of France?":        tableResponse("Irrelevant chart"),
	}

	judge := &judgeLLM{noFor: "What is the GDP of France?"}
	validated, calls, err := NewTableValidator().RunValidation(context.Background(), q2resp, judge)

	assert.NoError(t, err)
	assert.Len(t, validated, 1)
	assert.Contains(t, validated, "What is the population of France?")
	assert.Len(t, calls, 2)
	assert.Equal(t, 2, judge.calls)
}

func TestRunValidationPassesTablelessResponses(t *testing.T) {
	q2resp := map[string]*datacommons.Response{
		"What is the GDP of Atlantis?": {Query: "What is the GDP of Atlantis?"},
	}

	judge := &judgeLLM{}
	validated, calls, err := NewTableValidator().RunValidation(context.Background(), q2resp, judge)

	assert.NoError(t, err)
	assert.Len(t, validated, 1)
	// no table means no LLM judgement
	assert.Empty(t, calls)
	assert.Equal(t, 0, judge.calls)
}

func TestRunValidationPropagatesLLMError(t *testing.T) {
	q2resp := map[string]*datacommons.Response{
		"What is the population of France?": tableResponse("Population of France"),
	}

	judge := &judgeLLM{err: errors.New("overloaded")}
	_, _, err := NewTableValidator().RunValidation(context.Background(), q2resp, judge)
	assert.Error(t, err)
}

func TestIsAffirmative(t *testing.T) {
	assert.True(t, isAffirmative("YES"))
	assert.True(t, isAffirmative("  yes, the table answers it"))
	assert.False(t, isAffirmative("NO"))
	assert.False(t, isAffirmative("I cannot tell"))
	assert.False(t, isAffirmative(""))
}
