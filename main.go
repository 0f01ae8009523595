package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/statgemma/statgemma/appconfig"
	"github.com/statgemma/statgemma/datacommons"
	"github.com/statgemma/statgemma/llm"
	"github.com/statgemma/statgemma/rag"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	// load config file
	ccfg := &appconfig.AppConfig{}
	err := config.LoadConfig("config.ini", ccfg)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: statgemma <query>")
		os.Exit(2)
	}
	query := strings.Join(os.Args[1:], " ")

	// The fine-tuned question model is served locally; in-context mode uses
	// the untuned answer model family for question generation as well.
	var questionModel llm.LLMClient
	if ccfg.InContext {
		questionModel = llm.NewGeminiClient(ccfg.GeminiModel)
	} else {
		questionModel = llm.NewOllamaClient(ccfg.OllamaModel)
	}

	var answerModel llm.LLMClient
	if ccfg.ClaudeVersion != "" {
		answerModel = llm.NewAnthropicClient(ccfg.ClaudeVersion)
	} else {
		answerModel = llm.NewGeminiClient(ccfg.GeminiModel)
	}

	fetcherOpts := []datacommons.ClientOption{
		datacommons.WithAPIKey(os.Getenv("DC_API_KEY")),
		datacommons.WithTableMode(ccfg.DataCommonsTableMode),
	}
	if ccfg.DataCommonsURL != "" {
		fetcherOpts = append(fetcherOpts, datacommons.WithBaseURL(ccfg.DataCommonsURL))
	}
	if ccfg.DataCommonsIndex != "" {
		fetcherOpts = append(fetcherOpts, datacommons.WithIndex(ccfg.DataCommonsIndex))
	}
	fetcher := datacommons.NewClient(fetcherOpts...)

	metricsList := ""
	if ccfg.MetricsListPath != "" {
		data, err := os.ReadFile(ccfg.MetricsListPath)
		if err != nil {
			logger.Fatal("Failed to read metrics list", zap.Error(err))
		}
		metricsList = string(data)
	}

	flow, err := rag.NewRAGFlowBuilder().
		WithQuestionModel(questionModel).
		WithAnswerModel(answerModel).
		WithDataFetcher(fetcher).
		WithInContextPrompting(ccfg.InContext).
		WithMetricsList(metricsList).
		WithResponseValidation(ccfg.ValidateResponses).
		Build()
	if err != nil {
		logger.Fatal("Failed to build RAG flow", zap.Error(err))
	}

	resp, err := flow.Query(context.Background(), query)
	if err != nil {
		logger.Fatal("Query failed", zap.Error(err))
	}

	if resp.MainText == "" {
		fmt.Println("No answer.")
		return
	}

	fmt.Println(resp.MainText)
	if resp.TablesStr != "" {
		fmt.Println()
		fmt.Println(resp.TablesStr)
	}

	logger.Info("Flow finished",
		zap.Int("llm_calls", len(resp.LLMCalls)),
		zap.Duration("data_duration", resp.DataDuration))
}
