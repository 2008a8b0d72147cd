package game

import (
	rand "math/rand/v2"

	"github.com/felttable/holdem/internal/deck"
)

// Decision is an agent's chosen action. For raises, Amount is the
// increment beyond the call amount; Apply clamps the total to the
// player's stack.
type Decision struct {
	Action Action
	Amount int
}

// View is the read-only snapshot an agent decides from. It carries only
// what the acting player can see: their own hole cards, the board, and
// the betting numbers for this turn.
type View struct {
	Hole     []deck.Card
	Board    []deck.Card
	Pot      int
	Call     int
	MinRaise int
	Stack    int
}

// Agent is a decision source for a seat. The two variants are a bot
// policy, which always produces a decision, and a human seat, which
// reports ok=false so the driver suspends the hand until input arrives
// via SubmitHuman.
type Agent interface {
	Decide(view View, rng *rand.Rand) (Decision, bool)
}

// HumanAgent marks a seat whose decisions come from outside the engine
type HumanAgent struct{}

// Decide always reports that input is pending
func (HumanAgent) Decide(View, *rand.Rand) (Decision, bool) {
	return Decision{}, false
}
