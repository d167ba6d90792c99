package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"GameBot/engine"
	"GameBot/model"
	"GameBot/notify"
)

const helpText = `I coordinate game sessions for this chat.

Commands:
/newgame <time> – open a session for the given time; everyone picks an option with the buttons.
/help – show this message.

A session locks in automatically once enough players pick the same option.`

// GameBotHandler is the Telegram ingestion adapter: it turns raw updates
// into typed intents, drives the quorum engine, and delivers whatever
// the notify package renders for the outcome.
type GameBotHandler struct {
	Engine *engine.Engine
}

func NewGameBotHandler(engine *engine.Engine) *GameBotHandler {
	return &GameBotHandler{Engine: engine}
}

// Handler processes text messages. Anything that is not one of our
// commands is ignored; group chats carry plenty of unrelated chatter.
func (g *GameBotHandler) Handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID

	var params *bot.SendMessageParams
	switch {
	case isCommand(update.Message.Text, "/start"), isCommand(update.Message.Text, "/help"):
		params = &bot.SendMessageParams{ChatID: chatID, Text: helpText}
	case isCommand(update.Message.Text, "/newgame"):
		intent, ok := parseNewGame(update.Message.Text)
		if !ok {
			params = &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "Usage: /newgame <time>, e.g. /newgame Saturday 19:00",
			}
			break
		}
		view := g.Engine.CreateSession(intent.ScheduledTime)
		params = notify.SessionPicker(chatID, view)
	default:
		return
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("sending message")
	}
}

// CallbackHandler processes option-button taps. The callback query is
// always acknowledged, whatever the engine decides: a duplicate tap or
// a tap on a finalized session is expected traffic, not an error the
// user should see.
func (g *GameBotHandler) CallbackHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	defer func() {
		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: cb.ID,
		}); err != nil {
			log.Warn().Err(err).Msg("answering callback query")
		}
	}()

	msg := cb.Message.Message
	if msg == nil {
		log.Warn().Msg("callback for inaccessible message ignored")
		return
	}

	intent, ok := parseSelectOption(cb, msg)
	if !ok {
		log.Debug().Str("data", cb.Data).Msg("unparseable callback data ignored")
		return
	}

	outcome := g.Engine.AttemptSignup(intent.SessionID, intent.ParticipantID, intent.OptionID)
	switch outcome.Kind {
	case model.OutcomeUpdated:
		if _, err := b.EditMessageText(ctx, notify.SessionPickerEdit(msg.Chat.ID, msg.ID, outcome.Session)); err != nil {
			log.Error().Err(err).Str("session_id", intent.SessionID).Msg("updating picker")
		}
	case model.OutcomeFinalized:
		// The engine already committed the finalization; delivery
		// failures are logged and never rolled back into it.
		if _, err := b.EditMessageText(ctx, notify.FinalizedEdit(msg.Chat.ID, msg.ID, outcome.Session)); err != nil {
			log.Error().Err(err).Str("session_id", intent.SessionID).Msg("closing picker")
		}
		if _, err := b.SendMessage(ctx, notify.FinalizedBroadcast(msg.Chat.ID, outcome.Session)); err != nil {
			log.Error().Err(err).Str("session_id", intent.SessionID).Msg("broadcasting finalized session")
		}
	}
}
