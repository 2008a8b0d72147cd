package game

import "fmt"

// Turn describes the pending decision: who acts and the betting bounds
// they face. Call is the amount needed to match the current bet, MinRaise
// the minimum raise increment beyond that call, and Stack the acting
// player's chips behind. An all-in for less than MinRaise is legal.
type Turn struct {
	Seat     int
	Call     int
	MinRaise int
	Stack    int
}

// CanCheck reports whether checking is legal on this turn
func (t *Turn) CanCheck() bool {
	return t.Call == 0
}

// MaxRaise returns the largest legal raise increment (all-in)
func (t *Turn) MaxRaise() int {
	return t.Stack
}

// Validate checks an action against this turn's legality rules without
// touching any state. It is applied to human input before the decision
// enters the state machine, so a rejected action costs nothing.
func (t *Turn) Validate(action Action, amount int) error {
	switch action {
	case Fold:
		return nil
	case Check:
		if t.Call != 0 {
			return fmt.Errorf("%w: cannot check, %d to call", ErrInvalidAction, t.Call)
		}
		return nil
	case Call:
		return nil
	case Raise:
		if amount < 1 {
			return fmt.Errorf("%w: raise amount must be positive", ErrInvalidAction)
		}
		if amount > t.Stack {
			return fmt.Errorf("%w: cannot raise %d with only %d behind", ErrInvalidAction, amount, t.Stack)
		}
		if amount < t.MinRaise && t.Call+amount < t.Stack {
			return fmt.Errorf("%w: minimum raise is %d", ErrInvalidAction, t.MinRaise)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidAction, action)
	}
}
