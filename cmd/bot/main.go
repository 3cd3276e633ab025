package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"launchpad-bot/internal/config"
	"launchpad-bot/internal/conversation"
	"launchpad-bot/internal/dedup"
	"launchpad-bot/internal/faq"
	"launchpad-bot/internal/form"
	"launchpad-bot/internal/llm"
	"launchpad-bot/internal/notify"
	"launchpad-bot/internal/scheduler"
	"launchpad-bot/internal/sheets"
	"launchpad-bot/internal/storage"
	"launchpad-bot/internal/submit"
	"launchpad-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	forms := form.All()
	sessions := conversation.NewManager(forms)

	updates := dedup.NewRegistry()
	defer updates.Stop()
	submissions := dedup.NewRegistry()
	defer submissions.Stop()

	fileStore, err := storage.NewFileStore(cfg.SubmissionsFilePath)
	if err != nil {
		log.Fatalf("failed to init submissions store: %v", err)
	}

	var appender storage.Appender = fileStore
	if cfg.GoogleCredentials != "" && cfg.SpreadsheetID != "" {
		sheetStore, err := sheets.New(ctx, []byte(cfg.GoogleCredentials), cfg.SpreadsheetID, sheetColumns(forms))
		if err != nil {
			log.Printf("failed to init sheets store, using file store only: %v", err)
		} else {
			appender = &storage.Fanout{Primary: fileStore, Secondary: []storage.Appender{sheetStore}}
		}
	}

	finalizer := submit.NewFinalizer(submissions, appender, nil, sessions, forms)
	finalizer.SetRetention(time.Duration(cfg.SubmissionRetentionSeconds) * time.Second)

	llmClient := newLLMClient(cfg)
	systemPrompt := readSystemPrompt(cfg.SystemPromptPath)

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		sessions,
		finalizer,
		updates,
		faq.Default(),
		llmClient,
		systemPrompt,
		cfg.AdminUserID,
		fileStore,
		time.Duration(cfg.UpdateRetentionSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.SupportChatID != 0 {
		finalizer.SetNotifier(notify.NewTelegramChat(bot.API(), cfg.SupportChatID))
	}

	sched := scheduler.New()
	if reportChatID := reportChat(cfg); reportChatID != 0 {
		sched.SetReportFunction(func(ctx context.Context) error {
			return bot.SendDailyReport(ctx, reportChatID)
		})
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		cancel()
	}()

	bot.Start(ctx)
}

// reportChat picks where the daily report goes: the staff chat when
// configured, otherwise the administrator's private chat.
func reportChat(cfg *config.Config) int64 {
	if cfg.SupportChatID != 0 {
		return cfg.SupportChatID
	}
	return cfg.AdminUserID
}

// sheetColumns maps each form kind to its field order, so spreadsheet rows
// line up with the form steps.
func sheetColumns(forms map[string]*form.Definition) map[string][]string {
	columns := make(map[string][]string, len(forms))
	for kind, def := range forms {
		fields := make([]string, 0, len(def.Steps))
		for _, step := range def.Steps {
			fields = append(fields, step.Field)
		}
		columns[kind] = fields
	}
	return columns
}

func newLLMClient(cfg *config.Config) llm.Client {
	factory := &llm.Factory{
		OpenAIAPIKey:       cfg.OpenAIAPIKey,
		OpenAIBaseURL:      cfg.OpenAIBaseURL,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexOAuthToken:   cfg.YandexOAuthToken,
		YandexFolderID:     cfg.YandexFolderID,
	}

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			log.Println("OPENAI_API_KEY not set, free-text fallback disabled")
			return nil
		}
	case config.ProviderYandex:
		if cfg.YandexOAuthToken == "" || cfg.YandexFolderID == "" {
			log.Println("Yandex credentials not set, free-text fallback disabled")
			return nil
		}
	}

	client, err := factory.CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Printf("failed to create llm client, free-text fallback disabled: %v", err)
		return nil
	}
	return client
}

func readSystemPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return string(data)
}
