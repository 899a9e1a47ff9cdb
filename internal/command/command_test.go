package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/keshon/server-wednesday/internal/games"
	"github.com/keshon/server-wednesday/internal/mind"
	"github.com/keshon/server-wednesday/pkg/cmd"
	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }
	src := random.NewScripted(nil, nil)
	return &Context{
		UserID:      "u1",
		DisplayName: "Ada",
		Persona:     mind.NewPersona(mind.Options{Rand: src, Now: now}),
		Sessions:    games.NewRegistry(games.Options{Rand: src, Now: now}),
	}
}

func run(t *testing.T, c cmd.Command, ctx *Context) string {
	t.Helper()
	require.NoError(t, c.Run(context.Background(), &cmd.Invocation{Name: c.Name(), Data: ctx}))
	return ctx.Output()
}

func TestAllCommandNames(t *testing.T) {
	var names []string
	for _, c := range All() {
		names = append(names, c.Name())
		assert.NotEmpty(t, c.Description(), c.Name())
	}
	assert.Equal(t, []string{
		"start", "help", "profile", "darkfact", "mood", "game", "goodbye",
		"hidebody", "poison", "plotnovel", "curse", "cancel",
	}, names)
}

func TestWrongContextType(t *testing.T) {
	for _, c := range All() {
		err := c.Run(context.Background(), &cmd.Invocation{Data: "nope"})
		assert.Error(t, err, c.Name())
	}
}

func TestStartAddressesCaller(t *testing.T) {
	ctx := newTestContext(t)
	assert.Contains(t, run(t, &StartCommand{}, ctx), "Greetings, Ada.")

	ctx = newTestContext(t)
	ctx.DisplayName = ""
	assert.Contains(t, run(t, &StartCommand{}, ctx), "Greetings, Human.")
}

func TestProfile(t *testing.T) {
	ctx := newTestContext(t)
	assert.Equal(t, profileUnknown, run(t, &ProfileCommand{}, ctx))

	ctx = newTestContext(t)
	for i := 0; i < 11; i++ {
		ctx.Persona.Memory.RecordInteraction("u1", "hello", "Ada")
	}
	out := run(t, &ProfileCommand{}, ctx)
	assert.True(t, strings.HasPrefix(out, "**PSYCHOLOGICAL PROFILE ANALYSIS:**\n\nYou've contacted me 11 times."), out)
	assert.True(t, strings.HasSuffix(out, "*continues staring at you through the screen*"))
}

func TestProfileDoesNotRecord(t *testing.T) {
	ctx := newTestContext(t)
	run(t, &ProfileCommand{}, ctx)
	_, ok := ctx.Persona.Memory.Profile("u1")
	assert.False(t, ok)
}

func TestDarkFact(t *testing.T) {
	out := run(t, &DarkFactCommand{}, newTestContext(t))
	assert.True(t, strings.HasPrefix(out, "**TODAY'S MORBID EDUCATION:**\n\n"))
	assert.True(t, strings.HasSuffix(out, "I don't particularly care which."))
}

func TestMood(t *testing.T) {
	ctx := newTestContext(t)
	out := run(t, &MoodCommand{}, ctx)
	assert.Equal(t, fmt.Sprintf(moodReport, mind.MoodPlotting.Description()), out)
}

func TestGoodbye(t *testing.T) {
	out := run(t, &GoodbyeCommand{}, newTestContext(t))
	assert.Contains(t, out, "Wednesday fades into digital darkness.")
}

func TestGameEntryOpensSession(t *testing.T) {
	ctx := newTestContext(t)
	out := run(t, &GameCommand{Kind: games.KindPoison}, ctx)
	assert.True(t, strings.HasPrefix(out, "**NAME THAT POISON**"))

	s, ok := ctx.Sessions.Active("u1")
	require.True(t, ok)
	assert.Equal(t, games.KindPoison, s.Kind)
}

func TestGameEntryUnknownKind(t *testing.T) {
	ctx := newTestContext(t)
	err := (&GameCommand{Kind: "chess"}).Run(context.Background(), &cmd.Invocation{Data: ctx})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start chess")
}

func TestCancel(t *testing.T) {
	ctx := newTestContext(t)
	assert.Equal(t, nothingToCancel, run(t, &CancelCommand{}, ctx))

	ctx = newTestContext(t)
	_, err := ctx.Sessions.Start("u1", games.KindCurse)
	require.NoError(t, err)
	assert.Equal(t, games.CancelledReply, run(t, &CancelCommand{}, ctx))
	assert.Zero(t, ctx.Sessions.Len())
}

func TestGameMenuListsEveryGame(t *testing.T) {
	out := run(t, &GameMenuCommand{}, newTestContext(t))
	for _, k := range games.Kinds {
		assert.Contains(t, out, "/"+string(k))
	}
}

type failing struct{}

func (failing) Name() string                                { return "fail" }
func (failing) Description() string                         { return "always fails" }
func (failing) Run(context.Context, *cmd.Invocation) error { return errors.New("boom") }

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	reg := cmd.NewRegistry()
	Register(reg, WithLogging(log))
	reg.Register(cmd.Apply(failing{}, WithLogging(log)))

	ctx := newTestContext(t)
	mood := reg.Get("mood")
	require.NotNil(t, mood)
	require.NoError(t, mood.Run(context.Background(), &cmd.Invocation{Name: "mood", Data: ctx}))
	assert.IsType(t, &MoodCommand{}, cmd.Root(mood))

	err := reg.Get("fail").Run(context.Background(), &cmd.Invocation{Name: "fail", Data: ctx})
	assert.EqualError(t, err, "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[0], `"command":"mood"`)
	assert.Contains(t, lines[0], `"user":"u1"`)
	assert.Contains(t, lines[1], `"level":"error"`)
	assert.Contains(t, lines[1], `"error":"boom"`)
}

func TestLocalizedTextsKeepCallerName(t *testing.T) {
	ctx := newTestContext(t)
	ctx.DisplayName = "/help desk"
	ctx.Localize = cmd.Localizer("!", Names())

	out := run(t, &StartCommand{}, ctx)
	assert.Contains(t, out, "Greetings, /help desk.")
	assert.Contains(t, out, "!help - If you need guidance")
	assert.NotContains(t, out, "\n/start")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"start", "help", "profile", "darkfact", "mood", "game", "goodbye",
		"hidebody", "poison", "plotnovel", "curse", "cancel",
	}, Names())
}
