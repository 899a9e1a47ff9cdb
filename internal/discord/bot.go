// Package discord connects the dispatcher to Discord: it turns message events
// into chat events and sends replies back in chunks.
package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/keshon/server-wednesday/internal/chat"
	"github.com/keshon/server-wednesday/pkg/retrylimit"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Responder answers one inbound event.
type Responder interface {
	Handle(ctx context.Context, ev chat.Event) (reply string, ok bool)
}

// Options configures a Bot.
type Options struct {
	// MentionOnly makes the bot ignore guild messages that do not mention it.
	// Direct messages are always handled.
	MentionOnly bool
	// SendRate is the initial outbound messages per second.
	SendRate float64
	Logger   *zerolog.Logger
}

// Bot is a Discord bot
type Bot struct {
	dg          *discordgo.Session
	responder   Responder
	limiter     *retrylimit.AdaptiveLimiter
	retry       retrylimit.RetryConfig
	mentionOnly bool
	log         zerolog.Logger

	mu      sync.RWMutex
	ctx     context.Context
	closing bool
	wg      sync.WaitGroup
}

// sendTimeout bounds delivery of one reply, including retries.
const sendTimeout = 30 * time.Second

// New creates a bot session for token. Nothing connects until Run.
func New(token string, responder Responder, opts Options) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	if opts.SendRate <= 0 {
		opts.SendRate = 5
	}
	initial := rate.Limit(opts.SendRate)
	retry := retrylimit.DefaultRetryConfig()
	retry.Logger = &log

	b := &Bot{
		dg:          dg,
		responder:   responder,
		limiter:     retrylimit.NewAdaptiveLimiter(initial, 1, initial*2, 1, 0.5),
		retry:       retry,
		mentionOnly: opts.MentionOnly,
		log:         log,
		ctx:         context.Background(),
	}
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	return b, nil
}

// Run opens the gateway connection and blocks until ctx is done. In-flight
// replies are allowed to finish before the session closes.
func (b *Bot) Run(ctx context.Context) error {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, cleaning up")
	b.mu.Lock()
	b.closing = true
	b.mu.Unlock()
	b.wg.Wait()
	if err := b.dg.Close(); err != nil {
		return fmt.Errorf("close Discord session: %w", err)
	}
	return nil
}

// begin registers an in-flight event. ok is false once shutdown has started.
func (b *Bot) begin() (ctx context.Context, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closing {
		return nil, false
	}
	b.wg.Add(1)
	return b.ctx, true
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("Discord bot is running")
}

// onMessageCreate runs on its own goroutine per event.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State == nil || s.State.User == nil {
		return
	}
	ev, ok := toEvent(m.Message, s.State.User.ID, b.mentionOnly)
	if !ok {
		return
	}

	ctx, ok := b.begin()
	if !ok {
		return
	}
	defer b.wg.Done()

	reply, ok := b.responder.Handle(ctx, ev)
	if !ok {
		return
	}

	// A computed reply is still delivered when shutdown begins mid-send.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()
	if err := sendChunks(sendCtx, s, b.limiter, b.retry, m.ChannelID, reply); err != nil {
		b.log.Error().Err(err).
			Str("channel", m.ChannelID).
			Str("user", ev.UserID).
			Msg("failed to send reply")
	}
}
