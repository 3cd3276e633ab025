package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"launchpad-bot/internal/faq"
)

// Callback ids for the inline menus. The form entry points (support_request,
// get_listed_yes) route into the conversation state machine; everything else
// is a stateless resource link.
const (
	cbMainMenu     = "main_menu"
	cbGetListed    = "get_listed"
	cbGetListedYes = "get_listed_yes"
	cbSupport      = "support_request"
	cbProposals    = "proposals"
)

// resourceLinks maps stateless menu callbacks to (title, URL).
var resourceLinks = map[string][2]string{
	"icos":               {"ICOs", "https://docs.metadao.fi/how-launches-work/sale"},
	"how_launches_work":  {"How Launches Work", "https://docs.metadao.fi/how-launches-work/sale"},
	"futarchy_intro":     {"Introduction to Futarchy", "https://docs.metadao.fi/governance/overview"},
	"entrepreneurs":      {"For Entrepreneurs", "https://docs.metadao.fi/benefits/founders"},
	"investors":          {"For Investors", "https://docs.metadao.fi/benefits/investors"},
	"proposals_create":   {"Creating Proposals", "https://docs.metadao.fi/governance/proposals"},
	"proposals_trade":    {"Trading Proposals", "https://docs.metadao.fi/governance/markets"},
	"proposals_finalize": {"Finalizing Proposals", "https://docs.metadao.fi/governance/twaps"},
}

const docsURL = "https://docs.metadao.fi/"

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Get Listed", cbGetListed)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("ICOs", "icos")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("How Launches Work", "how_launches_work")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Introduction to Futarchy", "futarchy_intro")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Proposals", cbProposals)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("For Entrepreneurs", "entrepreneurs")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("For Investors", "investors")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Support Request", cbSupport)),
	)
}

func proposalsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Creating Proposals", "proposals_create")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Trading Proposals", "proposals_trade")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Finalizing Proposals", "proposals_finalize")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Back to Main Menu", cbMainMenu)),
	)
}

func mainMenuButtonKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Main Menu", cbMainMenu)),
	)
}

func getListedConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Yes, I want to get listed", cbGetListedYes)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Back to Main Menu", cbMainMenu)),
	)
}

// followupKeyboard renders FAQ follow-up suggestions plus the main menu
// button.
func followupKeyboard(buttons []faq.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons)+1)
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data)))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Main Menu", cbMainMenu)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
