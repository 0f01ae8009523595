package prompts

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

func loadPrompt(templatePath string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// RenderFineTunedPrompt renders the question-generation prompt for the
// fine-tuned model.
func RenderFineTunedPrompt(sentence string) (string, error) {
	return loadPrompt("templates/rag_fine_tuned_user.md", map[string]string{
		"Sentence": sentence,
	})
}

// RenderInContextPrompt renders the question-generation prompt for an
// untuned model, with instructions and examples in context.
func RenderInContextPrompt(sentence string) (string, error) {
	return loadPrompt("templates/rag_in_context_user.md", map[string]string{
		"Sentence": sentence,
	})
}

// RenderInContextWithVarsPrompt is the in-context variant that embeds the
// full list of supported statistical metrics in the prompt.
func RenderInContextWithVarsPrompt(metricsList, sentence string) (string, error) {
	return loadPrompt("templates/rag_in_context_with_vars_user.md", map[string]string{
		"MetricsList": metricsList,
		"Sentence":    sentence,
	})
}

// RenderFinalAnswerPrompt renders the grounded final-answer prompt with the
// retrieved tables.
func RenderFinalAnswerPrompt(sentence, tableStr string) (string, error) {
	return loadPrompt("templates/rag_final_answer_user.md", map[string]string{
		"Sentence": sentence,
		"TableStr": tableStr,
	})
}

// RenderValidationPrompt asks whether a retrieved table actually answers
// the question it was fetched for.
func RenderValidationPrompt(question, tableStr string) (string, error) {
	return loadPrompt("templates/validate_table_user.md", map[string]string{
		"Question": question,
		"TableStr": tableStr,
	})
}
