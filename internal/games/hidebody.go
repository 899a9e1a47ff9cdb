package games

import (
	"fmt"
	"strings"

	"github.com/keshon/server-wednesday/pkg/random"
)

// hideBody: Location -> Method -> done. A location outside A-D aborts.
type hideBody struct {
	rnd   random.Source
	loc   Localizer
	state State
}

func newHideBody(src random.Source) (*hideBody, string) {
	return &hideBody{rnd: src, state: StateLocation}, hideBodyIntro
}

func (g *hideBody) Kind() Kind   { return KindHideBody }
func (g *hideBody) State() State { return g.state }

func (g *hideBody) Advance(input string) (string, Outcome) {
	switch g.state {
	case StateLocation:
		critique, ok := hideBodyLocations[strings.ToUpper(strings.TrimSpace(input))]
		if !ok {
			g.state = StateDone
			return g.loc.apply(invalidChoiceReply), Aborted
		}
		g.state = StateMethod
		return g.loc.apply(critique + hideBodyEvidencePrompt), Continue
	case StateMethod:
		g.state = StateDone
		return fmt.Sprintf(g.loc.apply(hideBodyVerdict), input, random.Pick(g.rnd, hideBodyAssessments)), Finished
	}
	return "", Finished
}
