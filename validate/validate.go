package validate

import (
	"context"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/statgemma/statgemma/datacommons"
	"github.com/statgemma/statgemma/llm"
	"github.com/statgemma/statgemma/prompts"
	"go.uber.org/zap"
)

// TableValidator asks the answer model whether each retrieved table actually
// answers the question it was fetched for, and drops the ones that do not.
type TableValidator struct{}

func NewTableValidator() *TableValidator {
	return &TableValidator{}
}

// RunValidation returns the filtered mapping together with the LLM calls it
// made; the caller merges the calls into its own record.
func (v *TableValidator) RunValidation(
	ctx context.Context,
	q2resp map[string]*datacommons.Response,
	answerLLM llm.LLMClient,
) (map[string]*datacommons.Response, []*llm.Call, error) {

	validated := make(map[string]*datacommons.Response, len(q2resp))
	var calls []*llm.Call

	for question, resp := range q2resp {
		if resp == nil {
			continue
		}

		// nothing to judge without a table
		if resp.Table == nil {
			validated[question] = resp
			continue
		}

		prompt, err := prompts.RenderValidationPrompt(question, resp.Answer())
		if err != nil {
			return nil, calls, err
		}

		call, err := llm.Complete(ctx, answerLLM, prompt,
			llm.WithTemperature(0.1),
			llm.WithMaxTokens(16),
		)
		if err != nil {
			return nil, calls, err
		}
		calls = append(calls, call)

		if isAffirmative(call.Response) {
			validated[question] = resp
		} else {
			logger.Info("Dropping table that does not answer its question",
				zap.String("question", question),
				zap.String("title", resp.Title))
		}
	}

	return validated, calls, nil
}

// isAffirmative tolerates judgements like "YES", "yes.", "Yes, it does".
func isAffirmative(judgement string) bool {
	j := strings.ToUpper(strings.TrimSpace(judgement))
	return strings.HasPrefix(j, "YES")
}
