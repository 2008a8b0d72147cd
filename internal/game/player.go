package game

import "github.com/felttable/holdem/internal/deck"

// Player is one seat at the table. A Player persists across hands with
// its stack carried over; hole cards, the folded flag and the per-street
// bet are reset when a new hand starts.
type Player struct {
	Seat      int
	Name      string
	Chips     int
	HoleCards []deck.Card
	Folded    bool
	Bet       int // chips committed in the current street
	Human     bool
}

// Solvent reports whether the player has chips to play a hand with
func (p *Player) Solvent() bool {
	return p.Chips > 0
}

// Live reports whether the player is still contesting the current hand
func (p *Player) Live() bool {
	return !p.Folded
}

// AllIn reports whether the player has committed their entire stack.
// Players who busted before the hand are marked folded at deal time, so
// a live player with no chips can only be all-in.
func (p *Player) AllIn() bool {
	return !p.Folded && p.Chips == 0
}
