// Package bot implements the rule-based opponents: a decision policy
// driven by Monte Carlo hand strength, tuned per difficulty and shaded
// per persona.
package bot

import "fmt"

// Difficulty selects a tuning row for the decision policy
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a config string to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// tuning holds the per-difficulty policy knobs: foldBias widens the
// fold threshold above pot odds, bluffRate is the chance a decision is
// made with inflated strength, raiseCap bounds raise sizing as a stack
// fraction, and skill shifts perceived strength up or down.
type tuning struct {
	foldBias  float64
	bluffRate float64
	raiseCap  float64
	skill     float64
}

var tunings = map[Difficulty]tuning{
	Easy:   {foldBias: 0.10, bluffRate: 0.04, raiseCap: 0.20, skill: -0.08},
	Medium: {foldBias: 0.05, bluffRate: 0.06, raiseCap: 0.30, skill: 0.00},
	Hard:   {foldBias: 0.00, bluffRate: 0.10, raiseCap: 0.45, skill: 0.08},
}

func (d Difficulty) tuning() tuning {
	if t, ok := tunings[d]; ok {
		return t
	}
	return tunings[Medium]
}

// Persona shades a bot's perceived hand strength to give each opponent
// a distinct temperament
type Persona string

const (
	PersonaNone       Persona = ""
	PersonaAggressive Persona = "aggressive"
	PersonaTight      Persona = "tight"
	PersonaLoose      Persona = "loose"
)

// ParsePersona maps a config string to a Persona; empty means none
func ParsePersona(s string) (Persona, error) {
	switch Persona(s) {
	case PersonaNone, PersonaAggressive, PersonaTight, PersonaLoose:
		return Persona(s), nil
	default:
		return "", fmt.Errorf("unknown persona %q (want aggressive, tight or loose)", s)
	}
}

func (p Persona) offset() float64 {
	switch p {
	case PersonaAggressive:
		return 0.10
	case PersonaTight:
		return -0.12
	case PersonaLoose:
		return 0.04
	default:
		return 0
	}
}

// Profile is one bot's fixed temperament
type Profile struct {
	Difficulty Difficulty
	Persona    Persona
}
