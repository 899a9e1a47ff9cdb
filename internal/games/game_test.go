package games

import (
	"fmt"
	"strings"
	"testing"

	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownKind(t *testing.T) {
	_, _, err := New(Kind("chess"), random.NewScripted(nil, nil), nil)
	require.Error(t, err)
}

func TestNewOpensEveryKind(t *testing.T) {
	for _, k := range Kinds {
		g, intro, err := New(k, random.NewScripted(nil, nil), nil)
		require.NoError(t, err, k)
		assert.Equal(t, k, g.Kind())
		assert.NotEmpty(t, intro, k)
		assert.NotEqual(t, StateDone, g.State(), k)
	}
}

func TestHideBodyInvalidLocationAborts(t *testing.T) {
	g, intro := newHideBody(random.NewScripted(nil, nil))
	require.Equal(t, hideBodyIntro, intro)

	reply, outcome := g.Advance("Z")
	assert.Equal(t, invalidChoiceReply, reply)
	assert.Equal(t, Aborted, outcome)
	assert.True(t, outcome.Ended())
}

func TestHideBodyFullRun(t *testing.T) {
	g, _ := newHideBody(random.NewScripted([]int{2}, nil))

	reply, outcome := g.Advance("A")
	require.Equal(t, Continue, outcome)
	assert.Equal(t, hideBodyLocations["A"]+hideBodyEvidencePrompt, reply)
	assert.Equal(t, StateMethod, g.State())

	reply, outcome = g.Advance("wear gloves and move to Peru")
	assert.Equal(t, Finished, outcome)
	assert.Equal(t, StateDone, g.State())
	assert.Contains(t, reply, "**YOUR PLAN:**\nwear gloves and move to Peru")
	assert.Contains(t, reply, hideBodyAssessments[2])
}

func TestHideBodyLocationIsCaseInsensitive(t *testing.T) {
	for _, in := range []string{"a", "b", " c ", "D"} {
		g, _ := newHideBody(random.NewScripted(nil, nil))
		_, outcome := g.Advance(in)
		assert.Equal(t, Continue, outcome, "input %q", in)
	}
	for _, in := range []string{"", "AB", "E", "bury it"} {
		g, _ := newHideBody(random.NewScripted(nil, nil))
		_, outcome := g.Advance(in)
		assert.Equal(t, Aborted, outcome, "input %q", in)
	}
}

func TestPoisonAnswerAnyCase(t *testing.T) {
	g, intro := newPoison(random.NewScripted([]int{1}, nil))
	require.Equal(t, "Cyanide", g.answer.Name)
	assert.Contains(t, intro, specimens[1].Symptoms)

	reply, outcome := g.Advance("  CYANIDE ")
	assert.Equal(t, Finished, outcome)
	assert.True(t, strings.HasPrefix(reply, "**CORRECT.**"))
	assert.Contains(t, reply, "The answer was indeed Cyanide. "+specimens[1].Trivia)
}

func TestPoisonWrongAnswer(t *testing.T) {
	g, _ := newPoison(random.NewScripted([]int{1}, nil))

	reply, outcome := g.Advance("ricin")
	assert.Equal(t, Finished, outcome)
	assert.Equal(t, StateDone, g.State())
	assert.True(t, strings.HasPrefix(reply, "**INCORRECT.**"))
	assert.Contains(t, reply, "The answer was Cyanide. "+specimens[1].Trivia)
}

func TestPlotNovelAcceptsAnything(t *testing.T) {
	for _, in := range []string{"", "Elena was the architect all along."} {
		g, intro := newPlotNovel(random.NewScripted([]int{4}, nil))
		require.Equal(t, plotNovelIntro, intro)

		reply, outcome := g.Advance(in)
		assert.Equal(t, Finished, outcome)
		assert.Equal(t, fmt.Sprintf(plotNovelAddition, plotNovelAssessments[4]), reply)
	}
}

func TestCurseSubstitutesVerbatim(t *testing.T) {
	want := []string{
		"May my boss's coffee always be lukewarm and their Wi-Fi perpetually buffer during crucial moments. stealing my lunch demands no less.",
		"I curse my boss to forever find single socks, never pairs. Their laundry shall know only chaos because stealing my lunch.",
		"Upon my boss, I bestow the curse of eternal autocorrect fails and phantom phone vibrations. stealing my lunch has earned this.",
		"May my boss's pillow always be warm on both sides, and may they stub their toe weekly. For stealing my lunch, this is fitting.",
		"I hex my boss with the curse of being forever interrupted mid-sentence and having their favorite shows canceled. stealing my lunch justifies this hex.",
	}
	for i := range curseTemplates {
		got := Curse(random.NewScripted([]int{i}, nil), "my boss", "stealing my lunch")
		assert.Equal(t, want[i], got)
	}

	seeded := random.NewSeeded(42)
	for i := 0; i < 50; i++ {
		assert.Contains(t, want, Curse(seeded, "my boss", "stealing my lunch"))
	}
}

func TestCurseRun(t *testing.T) {
	g, intro := newCurse(random.NewScripted([]int{3}, nil))
	require.Equal(t, curseIntro, intro)

	reply, outcome := g.Advance("   ")
	assert.Equal(t, Continue, outcome)
	assert.Equal(t, curseTargetMissing, reply)
	assert.Equal(t, StateTarget, g.State())

	reply, outcome = g.Advance(" my boss ")
	assert.Equal(t, Continue, outcome)
	assert.Equal(t, StateReason, g.State())
	assert.True(t, strings.HasPrefix(reply, "**TARGET IDENTIFIED:** my boss\n"))

	reply, outcome = g.Advance("")
	assert.Equal(t, Continue, outcome)
	assert.Equal(t, curseReasonMissing, reply)
	assert.Equal(t, StateReason, g.State())

	reply, outcome = g.Advance("stealing my lunch")
	assert.Equal(t, Finished, outcome)
	assert.Equal(t, StateDone, g.State())
	assert.Contains(t, reply, "**Target:** my boss\n**Transgression:** stealing my lunch")
	assert.Contains(t, reply, "May my boss's pillow always be warm on both sides, and may they stub their toe weekly. For stealing my lunch, this is fitting.")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "finished", Finished.String())
	assert.Equal(t, "aborted", Aborted.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}

func TestLocalizerSparesPlayerInput(t *testing.T) {
	loc := func(s string) string { return strings.ReplaceAll(s, "/", "!") }

	g, _, err := New(KindCurse, random.NewScripted([]int{0}, nil), loc)
	require.NoError(t, err)

	reply, _ := g.Advance("the /help desk")
	assert.True(t, strings.HasPrefix(reply, "**TARGET IDENTIFIED:** the /help desk\n"), reply)

	reply, outcome := g.Advance("closing /poison tickets")
	require.Equal(t, Finished, outcome)
	assert.Contains(t, reply, "**Target:** the /help desk\n**Transgression:** closing /poison tickets")
	assert.Contains(t, reply, "May the /help desk's coffee always be lukewarm")
	assert.Contains(t, reply, "closing /poison tickets demands no less.")
	assert.True(t, strings.HasSuffix(reply, "Type !curse for more vengeance, or !game for other options."), reply)

	g, _, err = New(KindHideBody, random.NewScripted(nil, nil), loc)
	require.NoError(t, err)
	g.Advance("A")
	reply, _ = g.Advance("burn the /game logs")
	assert.Contains(t, reply, "burn the /game logs")
	assert.True(t, strings.HasSuffix(reply, "Type !game for more torments."), reply)
}
