package games

import (
	"fmt"
	"strings"

	"github.com/keshon/server-wednesday/pkg/random"
)

// Curse fills one template with target and reason, substituted verbatim.
func Curse(src random.Source, target, reason string) string {
	r := strings.NewReplacer("{target}", target, "{reason}", reason)
	return r.Replace(random.Pick(src, curseTemplates))
}

// curse: Target -> Reason -> done. Blank input re-prompts in place.
type curse struct {
	rnd    random.Source
	loc    Localizer
	state  State
	target string
}

func newCurse(src random.Source) (*curse, string) {
	return &curse{rnd: src, state: StateTarget}, curseIntro
}

func (g *curse) Kind() Kind   { return KindCurse }
func (g *curse) State() State { return g.state }

func (g *curse) Advance(input string) (string, Outcome) {
	text := strings.TrimSpace(input)
	switch g.state {
	case StateTarget:
		if text == "" {
			return g.loc.apply(curseTargetMissing), Continue
		}
		g.target = text
		g.state = StateReason
		return fmt.Sprintf(g.loc.apply(curseReasonPrompt), text), Continue
	case StateReason:
		if text == "" {
			return g.loc.apply(curseReasonMissing), Continue
		}
		g.state = StateDone
		return fmt.Sprintf(g.loc.apply(curseResult), g.target, text, Curse(g.rnd, g.target, text)), Finished
	}
	return "", Finished
}
