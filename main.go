package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"GameBot/config"
	"GameBot/engine"
	"GameBot/handler"
	"GameBot/notify"
	"GameBot/repo"
)

func main() {
	cfg, catalog, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := repo.NewSessionStore(catalog)
	eng := engine.New(store, catalog, cfg.Quorum)
	h := handler.NewGameBotHandler(eng)

	opts := []bot.Option{
		bot.WithDefaultHandler(h.Handler),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("creating bot")
	}
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, notify.CallbackPrefix, bot.MatchTypePrefix, h.CallbackHandler)

	log.Info().
		Int("quorum", cfg.Quorum).
		Int("options", len(catalog)).
		Msg("bot starting")

	b.Start(ctx)
	log.Info().Msg("bot stopped")
}
