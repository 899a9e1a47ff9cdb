// Package games hosts the multi-turn mini-games and the registry that keeps
// at most one active session per user.
package games

import (
	"fmt"

	"github.com/keshon/server-wednesday/pkg/random"
)

// Kind names a game. The value doubles as its entry command.
type Kind string

const (
	KindHideBody  Kind = "hidebody"
	KindPoison    Kind = "poison"
	KindPlotNovel Kind = "plotnovel"
	KindCurse     Kind = "curse"
)

// Kinds lists every game in menu order.
var Kinds = []Kind{KindHideBody, KindPoison, KindPlotNovel, KindCurse}

// State is the step a session is waiting on.
type State string

const (
	StateLocation State = "location" // hidebody
	StateMethod   State = "method"   // hidebody
	StateQuestion State = "question" // poison
	StatePrompt   State = "prompt"   // plotnovel
	StateTarget   State = "target"   // curse
	StateReason   State = "reason"   // curse
	StateDone     State = "done"
)

// Outcome reports what an Advance did to the session.
type Outcome int

const (
	Continue Outcome = iota // still waiting for input
	Finished                // reached the terminal state
	Aborted                 // invalid input ended the game early
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Ended reports whether the session should leave the registry.
func (o Outcome) Ended() bool { return o != Continue }

// Game is one state machine. Implementations are not safe for concurrent
// use; the Registry serialises access.
type Game interface {
	Kind() Kind
	State() State
	// Advance interprets input under the current state and returns the reply.
	Advance(input string) (string, Outcome)
}

// Localizer rewrites a game's fixed texts before player input is
// substituted into them. A nil Localizer leaves texts unchanged.
type Localizer func(string) string

func (l Localizer) apply(s string) string {
	if l == nil {
		return s
	}
	return l(s)
}

// New starts a game of the given kind and returns it with its opening text.
func New(kind Kind, src random.Source, loc Localizer) (Game, string, error) {
	switch kind {
	case KindHideBody:
		g, intro := newHideBody(src)
		g.loc = loc
		return g, loc.apply(intro), nil
	case KindPoison:
		g, intro := newPoison(src)
		g.loc = loc
		return g, loc.apply(intro), nil
	case KindPlotNovel:
		g, intro := newPlotNovel(src)
		g.loc = loc
		return g, loc.apply(intro), nil
	case KindCurse:
		g, intro := newCurse(src)
		g.loc = loc
		return g, loc.apply(intro), nil
	}
	return nil, "", fmt.Errorf("unknown game %q", kind)
}
