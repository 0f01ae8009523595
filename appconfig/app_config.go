package appconfig

import (
	"github.com/SaiNageswarS/go-api-boot/config"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	GeminiModel   string `ini:"gemini_model"`
	OllamaModel   string `ini:"ollama_model"`
	ClaudeVersion string `ini:"claude_version"`

	DataCommonsURL       string `ini:"datacommons_url"`
	DataCommonsIndex     string `ini:"datacommons_index"`
	DataCommonsTableMode bool   `ini:"datacommons_table_mode"`

	InContext         bool   `ini:"in_context"`
	ValidateResponses bool   `ini:"validate_responses"`
	MetricsListPath   string `ini:"metrics_list_path"`
}
