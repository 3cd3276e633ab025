package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"launchpad-bot/internal/analytics"
	"launchpad-bot/internal/conversation"
	"launchpad-bot/internal/form"
	"launchpad-bot/internal/llm"
	"launchpad-bot/internal/submit"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	// Group chats only answer the contract-address keyword; menus and
	// forms are private-chat only so group chatter never hits a session.
	if !msg.Chat.IsPrivate() {
		if strings.EqualFold(strings.TrimSpace(msg.Text), "ca") {
			if e, ok := b.kb.Match("ca"); ok {
				b.sendMessage(msg.Chat.ID, e.Answer)
			}
		}
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	log.Printf("incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	res := b.sessions.Submit(msg.From.ID, msg.Text)
	switch res.Outcome {
	case conversation.OutcomePrompt:
		b.sendMessage(msg.Chat.ID, res.Prompt)
	case conversation.OutcomeReprompt:
		b.sendMessage(msg.Chat.ID, res.Reason+"\n\n"+res.Prompt)
	case conversation.OutcomeFinalize:
		b.handleFinalize(ctx, msg, res.Session)
	case conversation.OutcomeStray:
		b.handleFreeText(ctx, msg)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendWithKeyboard(msg.Chat.ID,
			fmt.Sprintf("Hello %s! Welcome to the launchpad support bot.\n\n"+
				"For more information, check our docs: %s\n\n"+
				"Please select a category from the menu below:", msg.From.FirstName, docsURL),
			tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Show Main Menu", cbMainMenu)),
			))
	case "help":
		b.sendWithKeyboard(msg.Chat.ID,
			"Available commands:\n"+
				"/start - Start the bot and show main menu\n"+
				"/help - Show this help message\n"+
				"/cancel - Cancel current operation\n\n"+
				"How to use:\n"+
				"• Use the inline menu buttons to navigate\n"+
				"• Select 'Support Request' to submit a question\n"+
				"• Type 'ca' to get the token contract address",
			mainMenuButtonKeyboard())
	case "cancel":
		if b.sessions.Cancel(msg.From.ID) {
			b.sendWithKeyboard(msg.Chat.ID, "Operation cancelled. Your form progress has been discarded.", mainMenuButtonKeyboard())
		} else {
			b.sendWithKeyboard(msg.Chat.ID, "No active operation to cancel.", mainMenuButtonKeyboard())
		}
	case "report":
		if msg.From.ID != b.adminUserID {
			b.sendMessage(msg.Chat.ID, "This command is only available to the administrator.")
			return
		}
		if err := b.SendDailyReport(ctx, msg.Chat.ID); err != nil {
			log.Printf("report generation failed: %v", err)
			b.sendMessage(msg.Chat.ID, fmt.Sprintf("Report generation failed: %v", err))
		}
	default:
		b.sendWithKeyboard(msg.Chat.ID, "Unknown command. Use /help to see what I can do.", mainMenuButtonKeyboard())
	}
}

// handleFinalize runs the submission finalizer and renders its outcome.
// Every branch produces exactly one reply.
func (b *Bot) handleFinalize(ctx context.Context, msg *tgbotapi.Message, sess conversation.Session) {
	id := submit.Identity{UserID: msg.From.ID, Name: msg.From.FirstName, Handle: msg.From.UserName}

	rec, err := b.finalizer.Finalize(ctx, id, sess)
	var inc *submit.IncompleteError
	switch {
	case err == nil:
		b.sendWithKeyboard(msg.Chat.ID, successText(rec.Category, rec.Fields), mainMenuButtonKeyboard())
	case errors.Is(err, submit.ErrDuplicate):
		b.sendWithKeyboard(msg.Chat.ID, "This submission has already been processed.", mainMenuButtonKeyboard())
	case errors.As(err, &inc):
		b.sendWithKeyboard(msg.Chat.ID,
			fmt.Sprintf("Error: the following fields are missing: %s\n\n"+
				"Please start over by selecting the form from the menu again.",
				strings.Join(inc.Missing, ", ")),
			mainMenuButtonKeyboard())
	default:
		log.Printf("finalize failed for user %d: %v", msg.From.ID, err)
		b.sendMessage(msg.Chat.ID, "Sorry, we couldn't save your submission. Please re-send your last answer to try again.")
	}
}

func successText(category string, fields map[string]string) string {
	if category == form.KindGetListed {
		return fmt.Sprintf("Thank you for your submission! 🎉\n\n"+
			"Your project listing request has been received and will be reviewed by the team.\n\n"+
			"We'll contact you soon with next steps.\n\n"+
			"Project: %s (%s)", fields["token_name"], fields["token_ticker"])
	}
	return "Thank you for your submission! Our support team will review it and get back to you via email soon."
}

// handleFreeText answers stray input: curated FAQ first, then the LLM
// fallback with follow-up buttons inferred from keywords.
func (b *Bot) handleFreeText(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)

	if e, ok := b.kb.Match(text); ok {
		buttons := e.Buttons
		if len(buttons) == 0 {
			buttons = b.kb.SuggestButtons(text)
		}
		b.sendWithKeyboard(msg.Chat.ID, e.Answer, followupKeyboard(buttons))
		return
	}

	if b.llmClient == nil {
		b.sendWithKeyboard(msg.Chat.ID, "Please use the inline menu to select an option.", mainMenuButtonKeyboard())
		return
	}

	var contextMsgs []llm.Message
	if b.systemPrompt != "" {
		contextMsgs = append(contextMsgs, llm.Message{Role: "system", Content: b.systemPrompt})
	}
	contextMsgs = append(contextMsgs, llm.Message{Role: "user", Content: text})

	resp, err := b.llmClient.Generate(ctx, contextMsgs)
	if err != nil {
		log.Printf("failed to generate answer: %v", err)
		b.sendWithKeyboard(msg.Chat.ID, "Sorry, something went wrong. Please use the menu below.", mainMenuButtonKeyboard())
		return
	}

	buttons := b.kb.SuggestButtons(text + " " + resp.Content)
	b.sendWithKeyboard(msg.Chat.ID, resp.Content, followupKeyboard(buttons))
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.From == nil {
		return
	}
	if !cb.Message.Chat.IsPrivate() {
		return
	}
	chatID := cb.Message.Chat.ID

	switch cb.Data {
	case cbMainMenu:
		b.sendWithKeyboard(chatID, "Main Menu:", mainMenuKeyboard())
	case cbProposals:
		b.sendWithKeyboard(chatID, "Proposals Submenu:", proposalsKeyboard())
	case cbSupport:
		b.startForm(chatID, cb.From.ID, form.KindSupportRequest)
	case cbGetListed:
		b.sendWithKeyboard(chatID,
			"Would you like to submit your project to get listed?\n\n"+
				"You'll need to provide detailed information about your project including:\n"+
				"• Project name and description\n"+
				"• Token details\n"+
				"• Fundraising information\n"+
				"• Performance package configuration\n"+
				"• Intellectual property\n\n"+
				"This will take about 5-10 minutes to complete.",
			getListedConfirmKeyboard())
	case cbGetListedYes:
		b.startForm(chatID, cb.From.ID, form.KindGetListed)
	default:
		if link, ok := resourceLinks[cb.Data]; ok {
			b.sendWithKeyboard(chatID,
				fmt.Sprintf("Here is the resource for %s:\n%s", link[0], link[1]),
				tgbotapi.NewInlineKeyboardMarkup(
					tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Back to Main Menu", cbMainMenu)),
				))
		}
	}
}

func (b *Bot) startForm(chatID, userID int64, kind string) {
	prompt, err := b.sessions.Start(userID, kind)
	if err != nil {
		log.Printf("failed to start form %s for user %d: %v", kind, userID, err)
		b.sendWithKeyboard(chatID, "Sorry, something went wrong.", mainMenuButtonKeyboard())
		return
	}
	b.sendMessage(chatID, prompt)
}

// SendDailyReport renders submission stats for the current day and sends
// them to chatID. Used by the /report command and the cron schedule.
func (b *Bot) SendDailyReport(_ context.Context, chatID int64) error {
	if b.store == nil {
		return fmt.Errorf("submission store not configured")
	}
	records, err := b.store.Load()
	if err != nil {
		return fmt.Errorf("load submissions: %w", err)
	}
	stats := analytics.Daily(records, time.Now().UTC())
	b.sendMessage(chatID, stats.Format())
	return nil
}
