// Package config reads process configuration from the environment, after
// loading a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken     string  `env:"DISCORD_TOKEN"`
	DiscordSendRate  float64 `env:"DISCORD_SEND_RATE" envDefault:"5"`
	GuildMentionOnly bool    `env:"DISCORD_GUILD_MENTION_ONLY" envDefault:"true"`

	BotName       string `env:"BOT_NAME" envDefault:"Wednesday"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"/"`

	MoodInterval         time.Duration `env:"MOOD_INTERVAL" envDefault:"1h"`
	ProfileCommentChance float64       `env:"PROFILE_COMMENT_CHANCE" envDefault:"0.15"`
	DarkFactChance       float64       `env:"DARK_FACT_CHANCE" envDefault:"0.10"`
	// RandomSeed of 0 means a fresh nondeterministic source.
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`

	SessionIdleTimeout   time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotenv loads the given files (".env" when none) into the environment.
// Missing files are skipped and variables already set are left alone.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// New loads .env, parses the environment and validates the result.
func New() (*Config, error) {
	if err := LoadDotenv(); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that the env tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	for name, p := range map[string]float64{
		"PROFILE_COMMENT_CHANCE": c.ProfileCommentChance,
		"DARK_FACT_CHANCE":       c.DarkFactChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, p))
		}
	}
	for name, d := range map[string]time.Duration{
		"MOOD_INTERVAL":          c.MoodInterval,
		"SESSION_IDLE_TIMEOUT":   c.SessionIdleTimeout,
		"SESSION_SWEEP_INTERVAL": c.SessionSweepInterval,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}
	if c.DiscordSendRate <= 0 {
		errs = append(errs, fmt.Errorf("DISCORD_SEND_RATE must be positive, got %v", c.DiscordSendRate))
	}
	if strings.TrimSpace(c.CommandPrefix) == "" || strings.ContainsAny(c.CommandPrefix, " \t\n") {
		errs = append(errs, fmt.Errorf("COMMAND_PREFIX must be a non-blank token, got %q", c.CommandPrefix))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// RequireDiscord reports an error when the Discord transport cannot start.
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN is not set")
	}
	return nil
}
