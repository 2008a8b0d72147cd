package game

import (
	"github.com/felttable/holdem/internal/deck"
	"github.com/felttable/holdem/internal/evaluator"
)

// EventType identifies a game event
type EventType string

const (
	EventHandStarted   EventType = "hand_started"
	EventBlindPosted   EventType = "blind_posted"
	EventActionApplied EventType = "action_applied"
	EventStreetDealt   EventType = "street_dealt"
	EventHandEnded     EventType = "hand_ended"
	EventGameOver      EventType = "game_over"
)

// Event is a notification produced by the state machine for the
// rendering/input collaborator. Events are values; consumers must not
// retain the card slices beyond the current step if they mutate them.
type Event interface {
	Type() EventType
}

// HandStarted is emitted when cards have been dealt for a new hand
type HandStarted struct {
	Number  int
	Dealer  int
	Players []string // names of players dealt in
}

func (HandStarted) Type() EventType { return EventHandStarted }

// BlindPosted is emitted for each blind
type BlindPosted struct {
	Seat   int
	Name   string
	Kind   string // "small" or "big"
	Amount int
}

func (BlindPosted) Type() EventType { return EventBlindPosted }

// ActionApplied is emitted after a decision mutates the hand
type ActionApplied struct {
	Seat     int
	Name     string
	Action   Action
	Paid     int // chips moved from stack to pot by this action
	NewBet   int // the player's total bet this street after the action
	AllIn    bool
	PotAfter int
}

func (ActionApplied) Type() EventType { return EventActionApplied }

// StreetDealt is emitted when community cards hit the board
type StreetDealt struct {
	Street Street
	Cards  []deck.Card // the newly dealt cards
	Board  []deck.Card // the full board after dealing
}

func (StreetDealt) Type() EventType { return EventStreetDealt }

// ShowdownEntry describes one revealed hand at showdown
type ShowdownEntry struct {
	Seat     int
	Name     string
	Hole     []deck.Card
	Rank     evaluator.HandRank
	HandName string
}

// HandEnded is emitted when the pot has been awarded
type HandEnded struct {
	Winners     []int // seats, in table order
	Names       []string
	Share       int  // chips awarded to each winner
	Pot         int  // total pot before distribution
	Uncontested bool // everyone else folded; no showdown
	WinningHand string
	Showdown    []ShowdownEntry // empty for uncontested wins
}

func (HandEnded) Type() EventType { return EventHandEnded }

// GameOver is emitted by the session when play cannot continue
type GameOver struct {
	Standings []Standing
}

func (GameOver) Type() EventType { return EventGameOver }

// Standing is a final placement
type Standing struct {
	Seat  int
	Name  string
	Chips int
	Human bool
}
