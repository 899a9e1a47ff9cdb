package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/keshon/server-wednesday/internal/command"
	"github.com/keshon/server-wednesday/internal/games"
	"github.com/keshon/server-wednesday/internal/mind"
	"github.com/keshon/server-wednesday/pkg/cmd"
	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

func newTestDispatcher(src random.Source, opts Options) *Dispatcher {
	persona := mind.NewPersona(mind.Options{Rand: src, Now: testNow})
	sessions := games.NewRegistry(games.Options{
		Rand:     src,
		Now:      testNow,
		Localize: cmd.Localizer(opts.Prefix, command.Names()),
	})
	return New(persona, sessions, opts)
}

func handle(t *testing.T, d *Dispatcher, userID, text string) string {
	t.Helper()
	reply, ok := d.Handle(context.Background(), Event{UserID: userID, DisplayName: "Ada", Text: text})
	require.True(t, ok, "no reply to %q", text)
	return reply
}

func TestAttachmentGetsCritique(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{})
	_, err := d.sessions.Start("u1", games.KindHideBody)
	require.NoError(t, err)

	reply, ok := d.Handle(context.Background(), Event{UserID: "u1", Text: "A", HasAttachment: true})
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(reply, "remove any smiles."), reply)

	s, active := d.sessions.Active("u1")
	require.True(t, active)
	assert.Equal(t, games.StateLocation, s.State, "attachments do not advance games")
	assert.Zero(t, d.persona.Memory.Len())
}

func TestEmptyTextIsIgnored(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{})
	for _, text := range []string{"", "   ", "\n\t"} {
		_, ok := d.Handle(context.Background(), Event{UserID: "u1", Text: text})
		assert.False(t, ok)
	}
	assert.Zero(t, d.persona.Memory.Len())
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{})
	_, ok := d.Handle(context.Background(), Event{UserID: "u1", Text: "/dance now"})
	assert.False(t, ok)
	assert.Zero(t, d.persona.Memory.Len())
}

func TestCommandWithBotSuffix(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{})
	reply := handle(t, d, "u1", "/mood@wednesday_bot")
	assert.Equal(t, "**CURRENT MOOD STATE:**\n\n"+mind.MoodPlotting.Description(), reply)
}

func TestCommandsAreNotRecorded(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{})
	handle(t, d, "u1", "/darkfact")
	handle(t, d, "u1", "/profile")
	_, ok := d.persona.Memory.Profile("u1")
	assert.False(t, ok)
}

func TestActiveSessionTakesTheMessage(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{ProfileCommentChance: 1, DarkFactChance: 1})

	intro := handle(t, d, "u1", "/hidebody")
	assert.True(t, strings.HasPrefix(intro, "**HIDE A BODY: SCENARIO INITIATED**"))

	reply := handle(t, d, "u1", "hello death")
	assert.Equal(t, "Invalid choice. Even hypothetical crimes require following instructions.", reply)

	_, active := d.sessions.Active("u1")
	assert.False(t, active)
	_, recorded := d.persona.Memory.Profile("u1")
	assert.False(t, recorded, "game input is not recorded")

	// With the session gone the same text is ordinary chat.
	handle(t, d, "u1", "hello death")
	p, recorded := d.persona.Memory.Profile("u1")
	require.True(t, recorded)
	assert.Equal(t, 1, p.MessageCount)
}

func TestCancelDuringGame(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{})
	handle(t, d, "u1", "/curse")
	handle(t, d, "u1", "my boss")

	assert.Equal(t, games.CancelledReply, handle(t, d, "u1", "/cancel"))
	assert.Zero(t, d.sessions.Len())
}

func TestChatWithoutAsides(t *testing.T) {
	// First float is the initial mood draw.
	src := random.NewScripted(nil, []float64{0, 0.15, 0.10})
	d := newTestDispatcher(src, Options{
		ProfileCommentChance: DefaultProfileCommentChance,
		DarkFactChance:       DefaultDarkFactChance,
	})

	reply := handle(t, d, "u1", "murder")
	assert.NotContains(t, reply, "\n\n")

	p, ok := d.persona.Memory.Profile("u1")
	require.True(t, ok)
	assert.Equal(t, []string{"murder"}, p.DarkInterests)
}

func TestChatWithBothAsides(t *testing.T) {
	base := newTestDispatcher(random.NewScripted(nil, nil), Options{})
	plain := handle(t, base, "u1", "murder")

	src := random.NewScripted(nil, []float64{0, 0.149, 0.099})
	d := newTestDispatcher(src, Options{
		ProfileCommentChance: DefaultProfileCommentChance,
		DarkFactChance:       DefaultDarkFactChance,
	})
	reply := handle(t, d, "u1", "murder")

	want := plain +
		"\n\n*I've noted your interests in: murder. Your psychological profile is becoming... less boring.*" +
		"\n\n" + base.persona.DarkFact()
	assert.Equal(t, want, reply)
}

func TestProfileAsideNeedsSomethingToSay(t *testing.T) {
	src := random.NewScripted(nil, []float64{0, 0, 0.5})
	d := newTestDispatcher(src, Options{ProfileCommentChance: 1})
	reply := handle(t, d, "u1", "ok fine")
	assert.NotContains(t, reply, "\n\n*")
}

type brokenCommand struct{}

func (brokenCommand) Name() string                                { return "broken" }
func (brokenCommand) Description() string                         { return "fails" }
func (brokenCommand) Run(context.Context, *cmd.Invocation) error { return errors.New("boom") }

func TestCommandErrorGetsGenericReply(t *testing.T) {
	reg := cmd.NewRegistry()
	reg.Register(brokenCommand{})
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{Commands: reg})

	assert.Equal(t, GenericErrorReply, handle(t, d, "u1", "/broken"))
}

func TestCustomPrefix(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{Prefix: "!"})

	_, ok := d.Handle(context.Background(), Event{UserID: "u1", Text: "/game"})
	require.True(t, ok, "plain text under a custom prefix is chat")

	menu := handle(t, d, "u1", "!game")
	for _, k := range games.Kinds {
		assert.Contains(t, menu, "!"+string(k))
		assert.NotContains(t, menu, "/"+string(k))
	}
	assert.Contains(t, handle(t, d, "u1", "!poison"), "**NAME THAT POISON**")
	assert.Contains(t, handle(t, d, "u1", "arsenic"), "Type !poison to")
}

func TestCustomPrefixKeepsUserTextVerbatim(t *testing.T) {
	d := newTestDispatcher(random.NewScripted(nil, nil), Options{Prefix: "!"})

	handle(t, d, "u1", "!curse")
	prompt := handle(t, d, "u1", "the /help desk")
	assert.True(t, strings.HasPrefix(prompt, "**TARGET IDENTIFIED:** the /help desk\n"), prompt)

	result := handle(t, d, "u1", "closing /poison tickets")
	assert.Contains(t, result, "**Target:** the /help desk\n**Transgression:** closing /poison tickets")
	assert.Contains(t, result, "May the /help desk's coffee always be lukewarm")
	assert.Contains(t, result, "closing /poison tickets demands no less.")
	assert.True(t, strings.HasSuffix(result, "Type !curse for more vengeance, or !game for other options."), result)

	start := handle(t, d, "u2", "!start")
	assert.Contains(t, start, "!help - If you need guidance")

	chat, ok := d.Handle(context.Background(), Event{UserID: "u3", DisplayName: "/help", Text: "hello"})
	require.True(t, ok)
	assert.NotContains(t, chat, "!help")
}

func TestConcurrentUsers(t *testing.T) {
	d := newTestDispatcher(random.NewSeeded(3), Options{
		ProfileCommentChance: DefaultProfileCommentChance,
		DarkFactChance:       DefaultDarkFactChance,
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for _, text := range []string{"hello", "/poison", "arsenic", "tell me about the cemetery at night", "/mood"} {
				if _, ok := d.Handle(context.Background(), Event{UserID: user, DisplayName: user, Text: text}); !ok {
					t.Errorf("no reply to %q", text)
				}
			}
		}(fmt.Sprintf("u%d", i))
	}
	wg.Wait()

	assert.Equal(t, 16, d.persona.Memory.Len())
	assert.Zero(t, d.sessions.Len())
	for i := 0; i < 16; i++ {
		p, _ := d.persona.Memory.Profile(fmt.Sprintf("u%d", i))
		assert.Equal(t, 2, p.MessageCount)
	}
}
