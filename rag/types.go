package rag

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/statgemma/statgemma/datacommons"
	"github.com/statgemma/statgemma/llm"
	"go.uber.org/zap"
)

// DataFetcher is the batch statistics lookup. Whether it fetches whole
// tables or single points is its own configuration.
type DataFetcher interface {
	Calln(ctx context.Context, questions []string) (map[string]*datacommons.Response, error)
}

// Validator filters the fetched mapping using the answer model. It returns
// the LLM calls it made; the flow merges them into its record.
type Validator interface {
	RunValidation(
		ctx context.Context,
		q2resp map[string]*datacommons.Response,
		answerLLM llm.LLMClient,
	) (map[string]*datacommons.Response, []*llm.Call, error)
}

// FlowResponse is the result of one RAG flow invocation. MainText and
// DataCalls are empty when the flow terminated early.
type FlowResponse struct {
	MainText     string                  `json:"main_text,omitempty"`
	TablesStr    string                  `json:"tables_str,omitempty"`
	LLMCalls     []*llm.Call             `json:"llm_calls"`
	DataDuration time.Duration           `json:"data_duration"`
	DataCalls    []*datacommons.Response `json:"data_calls,omitempty"`
}

type Options struct {
	Verbose bool
}

func (o Options) vlog(msg string, fields ...zap.Field) {
	if o.Verbose {
		logger.Info(msg, fields...)
	}
}
