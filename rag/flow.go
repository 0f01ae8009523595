package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/ds"
	"github.com/statgemma/statgemma/datacommons"
	"github.com/statgemma/statgemma/llm"
	"github.com/statgemma/statgemma/prompts"
	"go.uber.org/zap"
)

const (
	maxQuestions   = 25
	noAnswerMarker = "[NO ANSWER]"
)

// RAGFlow grounds a natural-language answer in retrieved statistics:
// generate sub-questions, fetch tables, optionally validate them, then
// answer with the tables in context.
type RAGFlow struct {
	llmQuestion llm.LLMClient
	llmAnswer   llm.LLMClient
	dataFetcher DataFetcher
	validator   Validator // nil when validation is disabled

	opts        Options
	inContext   bool
	metricsList string
}

func (f *RAGFlow) Query(ctx context.Context, query string) (*FlowResponse, error) {
	// Step 1: ask the question model for retrieval sub-questions.
	quesCall, err := f.generateQuestions(ctx, query)
	if err != nil {
		return nil, err
	}

	calls := []*llm.Call{quesCall}
	if quesCall.Response == "" {
		return &FlowResponse{LLMCalls: calls}, nil
	}

	// Step 2: one question per line, trimmed, deduplicated, capped.
	questions := extractQuestions(quesCall.Response)

	// Step 3: fetch tables. A fetcher failure is downgraded to "no results";
	// it never aborts the flow.
	f.opts.vlog("... [RAG] Making Data Commons calls", zap.Int("questions", len(questions)))
	start := time.Now()
	q2resp, err := f.dataFetcher.Calln(ctx, questions)
	if err != nil {
		logger.Error("Data fetch failed, continuing without tables", zap.Error(err))
		q2resp = map[string]*datacommons.Response{}
	}
	dataDuration := time.Since(start)

	// Step 4: optional validation of fetched tables.
	if f.validator != nil {
		validated, vcalls, verr := f.validator.RunValidation(ctx, q2resp, f.llmAnswer)
		calls = append(calls, vcalls...)
		if verr != nil {
			logger.Error("Validation failed, keeping unvalidated tables", zap.Error(verr))
		} else {
			q2resp = validated
		}
	}

	// Step 5: assemble table text. Responses are visited in question order;
	// the running index is 1-based and counts every response, table or not.
	var tableParts []string
	tableTitles := ds.NewSet[string]()
	var dataCalls []*datacommons.Response
	for _, question := range questions {
		resp, ok := q2resp[question]
		if !ok || resp == nil {
			continue
		}

		idx := len(dataCalls) + 1
		if resp.Table != nil && !tableTitles.Contains(resp.Title) {
			tableParts = append(tableParts, fmt.Sprintf("Table %d: %s", idx, resp.Answer()))
			tableTitles.Add(resp.Title)
		}
		resp.ID = idx
		dataCalls = append(dataCalls, resp)
	}

	var finalPrompt, tablesStr string
	if len(tableParts) > 0 {
		tablesStr = strings.Join(tableParts, "\n")
		finalPrompt, err = prompts.RenderFinalAnswerPrompt(query, tablesStr)
		if err != nil {
			return nil, err
		}
	} else {
		f.opts.vlog("... [RAG] No stats found!")
		finalPrompt = query
	}

	// Step 6: final answer, with one ungrounded retry on [NO ANSWER].
	f.opts.vlog("... [RAG] Calling UNTUNED model for final response")
	ansCall, err := llm.Complete(ctx, f.llmAnswer, finalPrompt)
	if err != nil {
		return nil, err
	}
	calls = append(calls, ansCall)

	if strings.Contains(ansCall.Response, noAnswerMarker) {
		f.opts.vlog("... [RAG] Retrying original query!")
		ansCall, err = llm.Complete(ctx, f.llmAnswer, query)
		if err != nil {
			return nil, err
		}
		calls = append(calls, ansCall)
	}

	if ansCall.Response == "" {
		return &FlowResponse{LLMCalls: calls, DataDuration: dataDuration}, nil
	}

	return &FlowResponse{
		MainText:     ansCall.Response,
		TablesStr:    tablesStr,
		LLMCalls:     calls,
		DataDuration: dataDuration,
		DataCalls:    dataCalls,
	}, nil
}

func (f *RAGFlow) generateQuestions(ctx context.Context, query string) (*llm.Call, error) {
	var prompt string
	var err error

	switch {
	case f.inContext && f.metricsList != "":
		f.opts.vlog("... [RAG] Calling UNTUNED model for questions with all metrics in prompt")
		prompt, err = prompts.RenderInContextWithVarsPrompt(f.metricsList, query)
	case f.inContext:
		f.opts.vlog("... [RAG] Calling UNTUNED model for questions")
		prompt, err = prompts.RenderInContextPrompt(query)
	default:
		f.opts.vlog("... [RAG] Calling FINETUNED model for questions")
		prompt, err = prompts.RenderFineTunedPrompt(query)
	}
	if err != nil {
		return nil, err
	}

	return llm.Complete(ctx, f.llmQuestion, prompt)
}

// extractQuestions keeps the first occurrence of each non-empty trimmed
// line, up to maxQuestions.
func extractQuestions(raw string) []string {
	seen := ds.NewSet[string]()
	var questions []string

	for _, line := range strings.Split(raw, "\n") {
		q := strings.TrimSpace(line)
		if q == "" || seen.Contains(q) {
			continue
		}
		seen.Add(q)
		questions = append(questions, q)
		if len(questions) == maxQuestions {
			break
		}
	}

	return questions
}
