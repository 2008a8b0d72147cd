package game

import "errors"

var (
	// ErrInvalidAction is returned when an action is illegal in the
	// current state: checking a live bet, raising below the minimum with
	// chips behind, acting out of turn. State is never mutated.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInsufficientPlayers is returned when fewer than two players
	// have chips; the hand does not start.
	ErrInsufficientPlayers = errors.New("not enough players with chips")

	// ErrAwaitingInput is returned by the session driver when the acting
	// seat is a human whose decision has not been submitted yet.
	ErrAwaitingInput = errors.New("awaiting human input")
)
