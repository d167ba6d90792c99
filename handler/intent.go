package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"

	"GameBot/notify"
)

// Typed intents extracted from raw updates. The engine only ever sees
// these fields, never Telegram payloads.

type createSessionIntent struct {
	ScheduledTime string
}

type selectOptionIntent struct {
	SessionID      string
	OptionID       string
	ParticipantID  string
	IsGroupContext bool
	GroupID        string
}

// isCommand reports whether text starts with the given command, with or
// without an @BotName suffix.
func isCommand(text, command string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	if first == command {
		return true
	}
	name, suffix, found := strings.Cut(first, "@")
	return found && name == command && suffix != ""
}

// parseNewGame extracts the scheduled time from a /newgame message. The
// time is free text; only its presence is required.
func parseNewGame(text string) (createSessionIntent, bool) {
	_, rest, _ := strings.Cut(strings.TrimSpace(text), " ")
	scheduledTime := strings.TrimSpace(rest)
	if scheduledTime == "" {
		return createSessionIntent{}, false
	}
	return createSessionIntent{ScheduledTime: scheduledTime}, true
}

// parseSelectOption builds a signup intent from an option-button tap.
func parseSelectOption(cb *models.CallbackQuery, msg *models.Message) (selectOptionIntent, bool) {
	sessionID, optionID, ok := notify.ParseSignupCallback(cb.Data)
	if !ok {
		return selectOptionIntent{}, false
	}

	intent := selectOptionIntent{
		SessionID:     sessionID,
		OptionID:      optionID,
		ParticipantID: participantIdentifier(cb.From),
	}
	if msg.Chat.Type == models.ChatTypeGroup || msg.Chat.Type == models.ChatTypeSupergroup {
		intent.IsGroupContext = true
		intent.GroupID = strconv.FormatInt(msg.Chat.ID, 10)
	}
	return intent, true
}

// participantIdentifier resolves the tapping member to a stable,
// render-friendly identity. Telegram reports the individual sender even
// in group chats, so group members are never conflated. Usernames are
// unique platform-wide; first names are disambiguated with the numeric
// user id.
func participantIdentifier(user models.User) string {
	if user.Username != "" {
		return "@" + user.Username
	}
	if user.FirstName == "" {
		return strconv.FormatInt(user.ID, 10)
	}
	return fmt.Sprintf("%s (%d)", user.FirstName, user.ID)
}
