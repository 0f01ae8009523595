package rag

import (
	"errors"

	"github.com/statgemma/statgemma/llm"
	"github.com/statgemma/statgemma/validate"
)

type RAGFlowBuilder struct {
	flow       RAGFlow
	validation bool
}

func NewRAGFlowBuilder() *RAGFlowBuilder {
	return &RAGFlowBuilder{
		flow: RAGFlow{
			opts: Options{Verbose: true},
		},
	}
}

func (b *RAGFlowBuilder) WithQuestionModel(client llm.LLMClient) *RAGFlowBuilder {
	b.flow.llmQuestion = client
	return b
}

func (b *RAGFlowBuilder) WithAnswerModel(client llm.LLMClient) *RAGFlowBuilder {
	b.flow.llmAnswer = client
	return b
}

func (b *RAGFlowBuilder) WithDataFetcher(fetcher DataFetcher) *RAGFlowBuilder {
	b.flow.dataFetcher = fetcher
	return b
}

func (b *RAGFlowBuilder) WithVerbose(verbose bool) *RAGFlowBuilder {
	b.flow.opts.Verbose = verbose
	return b
}

// WithInContextPrompting switches question generation from the fine-tuned
// prompt to the instruction-heavy in-context prompt family.
func (b *RAGFlowBuilder) WithInContextPrompting(inContext bool) *RAGFlowBuilder {
	b.flow.inContext = inContext
	return b
}

// WithMetricsList embeds the supported metrics in the question prompt. Only
// used when in-context prompting is on.
func (b *RAGFlowBuilder) WithMetricsList(metricsList string) *RAGFlowBuilder {
	b.flow.metricsList = metricsList
	return b
}

func (b *RAGFlowBuilder) WithResponseValidation(validation bool) *RAGFlowBuilder {
	b.validation = validation
	return b
}

// WithValidator overrides the default table validator.
func (b *RAGFlowBuilder) WithValidator(validator Validator) *RAGFlowBuilder {
	b.flow.validator = validator
	return b
}

func (b *RAGFlowBuilder) Build() (*RAGFlow, error) {
	if b.flow.llmQuestion == nil {
		return nil, errors.New("question model is required")
	}
	if b.flow.llmAnswer == nil {
		return nil, errors.New("answer model is required")
	}
	if b.flow.dataFetcher == nil {
		return nil, errors.New("data fetcher is required")
	}

	if b.validation && b.flow.validator == nil {
		b.flow.validator = validate.NewTableValidator()
	}

	flow := b.flow
	return &flow, nil
}
