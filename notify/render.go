package notify

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"GameBot/model"
)

// The notify package renders engine outcomes into outbound Telegram
// message payloads. Delivery stays with the caller; nothing here talks
// to the network.

// CallbackPrefix tags option-button callback data so the bot router can
// match signup taps.
const CallbackPrefix = "signup|"

// SignupCallback encodes a signup button's callback data.
func SignupCallback(sessionID, optionID string) string {
	return CallbackPrefix + sessionID + "|" + optionID
}

// ParseSignupCallback decodes callback data produced by SignupCallback.
func ParseSignupCallback(data string) (sessionID, optionID string, ok bool) {
	rest, found := strings.CutPrefix(data, CallbackPrefix)
	if !found {
		return "", "", false
	}
	sessionID, optionID, found = strings.Cut(rest, "|")
	if !found || sessionID == "" || optionID == "" {
		return "", "", false
	}
	return sessionID, optionID, true
}

// SessionPicker renders the interactive option picker for a new or
// updated session.
func SessionPicker(chatID int64, view model.SessionView) *bot.SendMessageParams {
	return &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        pickerText(view),
		ReplyMarkup: pickerKeyboard(view),
	}
}

// SessionPickerEdit renders an in-place update of an already sent
// picker message.
func SessionPickerEdit(chatID int64, messageID int, view model.SessionView) *bot.EditMessageTextParams {
	return &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        pickerText(view),
		ReplyMarkup: pickerKeyboard(view),
	}
}

// FinalizedEdit replaces the picker of a finalized session with a
// closed summary, dropping the buttons.
func FinalizedEdit(chatID int64, messageID int, view model.SessionView) *bot.EditMessageTextParams {
	return &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      finalizedText(view),
	}
}

// FinalizedBroadcast renders the celebratory announcement for a session
// that just reached quorum.
func FinalizedBroadcast(chatID int64, view model.SessionView) *bot.SendMessageParams {
	return &bot.SendMessageParams{
		ChatID: chatID,
		Text:   finalizedText(view),
	}
}

func pickerText(view model.SessionView) string {
	var sb strings.Builder
	sb.WriteString("🀄 New game session\n")
	fmt.Fprintf(&sb, "Time: %s\n", view.ScheduledTime)
	sb.WriteString("Tap an option to join:")
	return sb.String()
}

func pickerKeyboard(view model.SessionView) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(view.Options))
	for _, opt := range view.Options {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%s +1 (%d)", opt.Label, len(opt.Participants)),
			CallbackData: SignupCallback(view.ID, opt.ID),
		}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func finalizedText(view model.SessionView) string {
	winning, ok := view.Winning()
	if !ok {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("🎉 Game on!\n")
	fmt.Fprintf(&sb, "%s is locked in for %s.\n", winning.Label, view.ScheduledTime)
	sb.WriteString("Players:\n")
	for _, participant := range winning.Participants {
		fmt.Fprintf(&sb, "• %s\n", participant)
	}
	return strings.TrimRight(sb.String(), "\n")
}
