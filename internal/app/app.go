// Package app assembles the shared state and background jobs that every
// front end (Discord, console) drives.
package app

import (
	"context"
	"fmt"

	"github.com/keshon/server-wednesday/internal/chat"
	"github.com/keshon/server-wednesday/internal/command"
	"github.com/keshon/server-wednesday/internal/config"
	"github.com/keshon/server-wednesday/internal/games"
	"github.com/keshon/server-wednesday/internal/logging"
	"github.com/keshon/server-wednesday/internal/mind"
	"github.com/keshon/server-wednesday/pkg/cmd"
	"github.com/keshon/server-wednesday/pkg/jobmgr"
	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/rs/zerolog"
)

const sweepJob = "session-sweep"

type App struct {
	Persona    *mind.Persona
	Sessions   *games.Registry
	Dispatcher *chat.Dispatcher
	Jobs       *jobmgr.Manager

	cfg *config.Config
	log zerolog.Logger
}

// New builds the persona, session registry and dispatcher from cfg.
func New(cfg *config.Config, log zerolog.Logger) *App {
	src := newSource(cfg.RandomSeed, log)

	mindLog := logging.Component(log, "mind")
	gamesLog := logging.Component(log, "games")
	chatLog := logging.Component(log, "chat")
	jobsLog := logging.Component(log, "jobs")

	persona := mind.NewPersona(mind.Options{
		MoodInterval: cfg.MoodInterval,
		Rand:         src,
		Logger:       &mindLog,
	})
	sessions := games.NewRegistry(games.Options{
		Rand:        src,
		IdleTimeout: cfg.SessionIdleTimeout,
		Localize:    cmd.Localizer(cfg.CommandPrefix, command.Names()),
		Logger:      &gamesLog,
	})

	return &App{
		Persona:  persona,
		Sessions: sessions,
		Dispatcher: chat.New(persona, sessions, chat.Options{
			Prefix:               cfg.CommandPrefix,
			ProfileCommentChance: cfg.ProfileCommentChance,
			DarkFactChance:       cfg.DarkFactChance,
			Logger:               &chatLog,
		}),
		Jobs: jobmgr.NewManager(func(msg string) {
			jobsLog.Debug().Msg(msg)
		}),
		cfg: cfg,
		log: log,
	}
}

// Start launches the idle-session sweeper.
func (a *App) Start() error {
	err := a.Jobs.Every(sweepJob, a.cfg.SessionSweepInterval, func(context.Context) error {
		if n := a.Sessions.Sweep(); n > 0 {
			a.log.Info().Int("evicted", n).Msg("idle sessions swept")
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("start %s: %w", sweepJob, err)
	}
	return nil
}

// Close stops the sweeper and any other background job, waiting for them.
func (a *App) Close() {
	a.log.Info().Str("jobs", a.Jobs.Status()).Msg("stopping background jobs")
	if err := a.Jobs.Stop(sweepJob); err != nil {
		a.log.Debug().Err(err).Msg("sweeper not running")
	}
	a.Jobs.Shutdown()
}

// newSource seeds a source from seed, or from crypto/rand when seed is zero.
// The seed is logged so a run can be replayed with RANDOM_SEED.
func newSource(seed int64, log zerolog.Logger) random.Source {
	if seed == 0 {
		s, err := random.NewSeed()
		if err != nil {
			log.Warn().Err(err).Msg("falling back to the default random source")
			return random.Default()
		}
		seed = s
	}
	log.Info().Int64("seed", seed).Msg("random source seeded")
	return random.NewSeeded(seed)
}
