// Package chat routes inbound messages to commands, game sessions or the
// persona's chat reply.
package chat

import (
	"context"
	"strings"

	"github.com/keshon/server-wednesday/internal/command"
	"github.com/keshon/server-wednesday/internal/games"
	"github.com/keshon/server-wednesday/internal/mind"
	"github.com/keshon/server-wednesday/pkg/cmd"
	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/rs/zerolog"
)

const (
	DefaultPrefix               = cmd.DefaultPrefix
	DefaultProfileCommentChance = 0.15
	DefaultDarkFactChance       = 0.10
)

// GenericErrorReply is sent when a command fails.
const GenericErrorReply = "An error occurred. Even I, with my superior intellect, cannot predict all forms of digital chaos. Try again."

// Event is one inbound message as the transport sees it.
type Event struct {
	UserID        string
	DisplayName   string
	Text          string
	HasAttachment bool
}

// Options configures a Dispatcher. Chances are used as given; zero disables the aside.
//
// With a custom Prefix, fixed command texts are localized here. Game texts
// are localized by the games.Registry, which needs its own cmd.Localizer.
type Options struct {
	Prefix               string
	ProfileCommentChance float64
	DarkFactChance       float64
	// Commands defaults to every command in package command, logged.
	Commands *cmd.Registry
	Logger   *zerolog.Logger
}

// Dispatcher turns events into replies. Safe for concurrent use; all state
// lives in the persona and the session registry.
type Dispatcher struct {
	persona        *mind.Persona
	sessions       *games.Registry
	commands       *cmd.Registry
	prefix         string
	profileChance  float64
	darkFactChance float64
	localize       func(string) string
	log            zerolog.Logger
}

// New builds a dispatcher over the shared persona and session registry.
func New(persona *mind.Persona, sessions *games.Registry, opts Options) *Dispatcher {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if opts.Commands == nil {
		opts.Commands = cmd.NewRegistry()
		command.Register(opts.Commands, command.WithLogging(log.With().Str("component", "command").Logger()))
	}
	return &Dispatcher{
		persona:        persona,
		sessions:       sessions,
		commands:       opts.Commands,
		prefix:         opts.Prefix,
		profileChance:  opts.ProfileCommentChance,
		darkFactChance: opts.DarkFactChance,
		localize:       cmd.Localizer(opts.Prefix, opts.Commands.Names()),
		log:            log,
	}
}

// Handle answers one event. ok is false when nothing should be sent.
//
// Attachments get a photo critique. Otherwise a command token runs the
// command, an active game consumes the text, and anything else is a chat
// message that is recorded and classified.
func (d *Dispatcher) Handle(ctx context.Context, ev Event) (reply string, ok bool) {
	if ev.HasAttachment {
		return d.persona.PhotoCritique(), true
	}

	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return "", false
	}

	if inv, isCmd := cmd.Parse(text, d.prefix); isCmd {
		return d.runCommand(ctx, ev, inv)
	}
	if reply, ok = d.sessions.Advance(ev.UserID, text); ok {
		return reply, true
	}
	return d.chat(ev, text), true
}

func (d *Dispatcher) runCommand(ctx context.Context, ev Event, inv cmd.Invocation) (string, bool) {
	c := d.commands.Get(inv.Name)
	if c == nil {
		d.log.Debug().Str("user", ev.UserID).Str("command", inv.Name).Msg("unknown command")
		return "", false
	}

	cc := &command.Context{
		UserID:      ev.UserID,
		DisplayName: ev.DisplayName,
		Persona:     d.persona,
		Sessions:    d.sessions,
		Localize:    d.localize,
	}
	inv.Data = cc
	if err := c.Run(ctx, &inv); err != nil {
		d.log.Error().Err(err).Str("user", ev.UserID).Str("command", inv.Name).Msg("command failed")
		return GenericErrorReply, true
	}

	out := cc.Output()
	return out, out != ""
}

func (d *Dispatcher) chat(ev Event, text string) string {
	d.persona.Memory.RecordInteraction(ev.UserID, text, ev.DisplayName)

	reply := d.persona.Respond(text, ev.DisplayName)
	out := reply.Text
	rnd := d.persona.Rand()

	withComment := false
	if random.Chance(rnd, d.profileChance) {
		if comment, ok := d.persona.Memory.ProfileComment(ev.UserID); ok {
			out += "\n\n*" + comment + "*"
			withComment = true
		}
	}
	withFact := random.Chance(rnd, d.darkFactChance)
	if withFact {
		out += "\n\n" + d.persona.DarkFact()
	}

	d.log.Debug().
		Str("user", ev.UserID).
		Str("category", string(reply.Category)).
		Str("text", mind.TruncateForLog(text, 80)).
		Bool("profile_comment", withComment).
		Bool("dark_fact", withFact).
		Msg("chat reply")
	return out
}
