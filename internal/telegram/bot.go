package telegram

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"launchpad-bot/internal/conversation"
	"launchpad-bot/internal/dedup"
	"launchpad-bot/internal/faq"
	"launchpad-bot/internal/llm"
	"launchpad-bot/internal/storage"
	"launchpad-bot/internal/submit"
)

// Bot is the event dispatcher: it receives inbound updates, deduplicates
// them by update id, and routes them to the conversation state machine or to
// the stateless menu/FAQ handlers. Every update yields at most one reply;
// errors never propagate past the handler boundary.
type Bot struct {
	api             *tgbotapi.BotAPI
	s               sender
	sessions        *conversation.Manager
	finalizer       *submit.Finalizer
	updates         *dedup.Registry
	updateRetention time.Duration
	kb              *faq.KnowledgeBase
	llmClient       llm.Client // nil disables the generative fallback
	systemPrompt    string
	adminUserID     int64
	store           storage.Loader // nil disables the daily report
}

func New(
	botToken string,
	sessions *conversation.Manager,
	finalizer *submit.Finalizer,
	updates *dedup.Registry,
	kb *faq.KnowledgeBase,
	llmClient llm.Client,
	systemPrompt string,
	adminUserID int64,
	store storage.Loader,
	updateRetention time.Duration,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:             api,
		s:               botAPISender{api: api},
		sessions:        sessions,
		finalizer:       finalizer,
		updates:         updates,
		updateRetention: updateRetention,
		kb:              kb,
		llmClient:       llmClient,
		systemPrompt:    systemPrompt,
		adminUserID:     adminUserID,
		store:           store,
	}, nil
}

// API exposes the underlying client for collaborators that send messages
// outside the dispatch loop, such as the staff notifier.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		b.dispatch(ctx, update)
	}
}

// dispatch guarantees at-most-once processing per update id, even when the
// transport redelivers. The id is completed (not aborted) on every handled
// path, including user-visible failures: a redelivery of a failed update
// must not replay its side effects.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	key := fmt.Sprintf("update:%d", update.UpdateID)
	if !b.updates.TryBegin(key) {
		log.Printf("duplicate update %d detected, skipping", update.UpdateID)
		return
	}
	defer b.updates.Complete(key, b.updateRetention)

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = kb
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
