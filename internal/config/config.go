package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	// SupportChatID is the staff chat that receives support request
	// notifications. Zero disables forwarding.
	SupportChatID int64 `env:"SUPPORT_CHAT_ID"`
	AdminUserID   int64 `env:"ADMIN_USER"`

	// Google Sheets persistence. Empty credentials disable the Sheets
	// appender; submissions still land in the local file store.
	GoogleCredentials string `env:"GOOGLE_CREDENTIALS"`
	SpreadsheetID     string `env:"SPREADSHEET_ID"`

	// LLM settings for the free-text fallback
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH" envDefault:"prompts/system_prompt.txt"`

	// Storage
	SubmissionsFilePath string `env:"SUBMISSIONS_FILE_PATH" envDefault:"data/submissions.jsonl"`

	// Dedup retention windows, in seconds
	UpdateRetentionSeconds     int `env:"UPDATE_RETENTION_SECONDS" envDefault:"30"`
	SubmissionRetentionSeconds int `env:"SUBMISSION_RETENTION_SECONDS" envDefault:"60"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
