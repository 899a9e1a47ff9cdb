// cmd/discord/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/server-wednesday/internal/app"
	"github.com/keshon/server-wednesday/internal/config"
	"github.com/keshon/server-wednesday/internal/discord"
	"github.com/keshon/server-wednesday/internal/logging"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		bootLog := logging.New("info", "console")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Info().Str("bot", cfg.BotName).Msg("starting Discord bot")

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("Discord bot error")
		os.Exit(1)
	}
	log.Info().Msg("Discord bot exited cleanly")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.New(cfg, log)
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Close()

	discordLog := logging.Component(log, "discord")
	bot, err := discord.New(cfg.DiscordToken, a.Dispatcher, discord.Options{
		MentionOnly: cfg.GuildMentionOnly,
		SendRate:    cfg.DiscordSendRate,
		Logger:      &discordLog,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		return <-errCh
	case err := <-errCh:
		return err
	}
}
