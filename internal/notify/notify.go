package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier is the best-effort notification collaborator. Failures are logged
// by the caller and never roll back persistence.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramChat forwards notifications to a staff chat (e.g. the support
// team's group).
type TelegramChat struct {
	s      sender
	chatID int64
}

func NewTelegramChat(s sender, chatID int64) *TelegramChat {
	return &TelegramChat{s: s, chatID: chatID}
}

func (n *TelegramChat) Notify(_ context.Context, text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.s.Send(msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
