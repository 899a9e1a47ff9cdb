package games

import (
	"fmt"
	"strings"

	"github.com/keshon/server-wednesday/pkg/random"
)

// poison shows the symptoms of a specimen drawn at entry and judges one answer.
type poison struct {
	answer specimen
	loc    Localizer
	state  State
}

func newPoison(src random.Source) (*poison, string) {
	s := random.Pick(src, specimens)
	return &poison{answer: s, state: StateQuestion}, fmt.Sprintf(poisonQuestion, s.Symptoms)
}

func (g *poison) Kind() Kind   { return KindPoison }
func (g *poison) State() State { return g.state }

func (g *poison) Advance(input string) (string, Outcome) {
	if g.state != StateQuestion {
		return "", Finished
	}
	g.state = StateDone
	if strings.EqualFold(strings.TrimSpace(input), g.answer.Name) {
		return fmt.Sprintf(g.loc.apply(poisonCorrect), g.answer.Name, g.answer.Trivia), Finished
	}
	return fmt.Sprintf(g.loc.apply(poisonIncorrect), g.answer.Name, g.answer.Trivia), Finished
}
