package bot

import (
	rand "math/rand/v2"

	"github.com/felttable/holdem/internal/evaluator"
	"github.com/felttable/holdem/internal/game"
)

// DefaultTrials is the Monte Carlo sample count per bot decision. It is
// deliberately small: bots decide dozens of times per hand and a rough
// estimate is part of their fallibility.
const DefaultTrials = 120

// Agent is a bot seat: a fixed temperament plus a per-decision equity
// estimate. It implements game.Agent and always produces a decision.
type Agent struct {
	Profile Profile
	Trials  int // samples per decision; 0 selects DefaultTrials
}

// New builds a bot agent with the default trial count
func New(difficulty Difficulty, persona Persona) *Agent {
	return &Agent{Profile: Profile{Difficulty: difficulty, Persona: persona}}
}

// Decide estimates the hand's equity and runs the decision policy
func (a *Agent) Decide(view game.View, rng *rand.Rand) (game.Decision, bool) {
	trials := a.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	strength, err := evaluator.Estimate(view.Hole, view.Board, trials, rng)
	if err != nil {
		// the engine always hands us two hole cards and a legal board,
		// so this is unreachable; play tight if it ever happens
		if view.Call == 0 {
			return game.Decision{Action: game.Check}, true
		}
		return game.Decision{Action: game.Fold}, true
	}
	return a.Profile.decide(view, strength, rng), true
}
