package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrExhausted is returned when dealing from an empty deck. A full hand of
// four players uses at most 13 of 52 cards, so seeing this error means the
// engine's card accounting is broken, not that the caller got unlucky.
var ErrExhausted = errors.New("deck exhausted")

// Deck is an ordered set of cards with an injected random source. It is
// mutated only by dealing; a fresh deck is built for every hand.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck in fixed enumeration order. The caller
// owns the rng; pass a seeded source from randutil for deterministic play.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// Shuffle applies a uniform random permutation
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card (the end of the slice). Once dealt
// a card is never seen again within the hand.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// DealN deals n cards
func (d *Deck) DealN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrExhausted
	}
	cards := make([]Card, n)
	for i := range cards {
		c, err := d.Deal()
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Pool returns every card of a standard deck except those in excluded.
// The equity estimator uses this to build the drawing pool for opponent
// and board completion: all 52 cards minus the hero's hand and the board.
func Pool(excluded []Card) []Card {
	out := make([]Card, 0, 52-len(excluded))
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			if !contains(excluded, c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func contains(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}
