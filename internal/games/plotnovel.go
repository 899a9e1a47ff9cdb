package games

import (
	"fmt"

	"github.com/keshon/server-wednesday/pkg/random"
)

// plotNovel accepts any contribution and answers with an assessment.
type plotNovel struct {
	rnd   random.Source
	loc   Localizer
	state State
}

func newPlotNovel(src random.Source) (*plotNovel, string) {
	return &plotNovel{rnd: src, state: StatePrompt}, plotNovelIntro
}

func (g *plotNovel) Kind() Kind   { return KindPlotNovel }
func (g *plotNovel) State() State { return g.state }

func (g *plotNovel) Advance(string) (string, Outcome) {
	if g.state != StatePrompt {
		return "", Finished
	}
	g.state = StateDone
	return fmt.Sprintf(g.loc.apply(plotNovelAddition), random.Pick(g.rnd, plotNovelAssessments)), Finished
}
