package bot

import (
	rand "math/rand/v2"

	"github.com/felttable/holdem/internal/game"
)

const (
	// bluffBoost is added to perceived strength on a bluffing decision
	bluffBoost = 0.20

	// thresholds on effective strength
	openRaiseStrength = 0.72
	weakStrength      = 0.55
	strongStrength    = 0.75

	// raise frequencies when strength clears the thresholds
	openRaiseFreq   = 0.60
	strongRaiseFreq = 0.55

	// facing a bet with a weak hand, call only up to this stack fraction
	weakCallFraction = 0.10
)

// decide turns an estimated win probability into an action. The
// strength is first shaded by persona and difficulty skill, then a
// bluff roll may inflate it for this decision only. Facing a bet, the
// fold threshold is pot odds plus the difficulty's fold bias.
func (p Profile) decide(view game.View, strength float64, rng *rand.Rand) game.Decision {
	t := p.Difficulty.tuning()

	s := clamp01(strength + p.Persona.offset() + t.skill)
	bluffing := rng.Float64() < t.bluffRate
	eff := s
	if bluffing {
		eff = min(1.0, s+bluffBoost)
	}

	if view.Call == 0 {
		if eff > openRaiseStrength && view.Stack >= view.MinRaise && rng.Float64() < openRaiseFreq {
			return game.Decision{Action: game.Raise, Amount: p.raiseSize(view, t, rng)}
		}
		return game.Decision{Action: game.Check}
	}

	potOdds := 1.0
	if view.Pot+view.Call > 0 {
		potOdds = float64(view.Call) / float64(view.Pot+view.Call)
	}
	switch {
	case eff < potOdds+t.foldBias && !bluffing:
		return game.Decision{Action: game.Fold}
	case eff < weakStrength:
		if view.Call <= int(float64(view.Stack)*weakCallFraction) {
			return game.Decision{Action: game.Call}
		}
		return game.Decision{Action: game.Fold}
	case eff < strongStrength:
		return game.Decision{Action: game.Call}
	default:
		if view.Stack >= view.MinRaise && rng.Float64() < strongRaiseFreq {
			return game.Decision{Action: game.Raise, Amount: p.raiseSize(view, t, rng)}
		}
		return game.Decision{Action: game.Call}
	}
}

// raiseSize picks a raise between half and three quarters of the pot,
// capped by the difficulty's stack fraction, never below the minimum
// raise. The engine clamps the total to the stack, so an oversized
// minimum simply becomes an all-in.
func (p Profile) raiseSize(view game.View, t tuning, rng *rand.Rand) int {
	potBet := int(float64(view.Pot) * (0.5 + 0.25*rng.Float64()))
	capped := min(potBet, int(float64(view.Stack)*t.raiseCap), view.Stack)
	return max(view.MinRaise, capped)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
