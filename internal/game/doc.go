// Package game implements the betting state machine for a four-player
// Texas Hold'em table.
//
// A Session owns the players, the dealer button and the random source,
// and persists across hands. Each hand is driven through an explicit step
// function: Hand.Next returns the pending Turn (or nil once the hand has
// resolved) and Hand.Apply feeds a decision back in. Both return the
// events they produced, so the driving loop (a terminal UI, a simulator,
// a test) renders or records them without the core knowing anything
// about timing or display.
//
//	events, _ := session.StartHand()
//	for {
//	    turn, events, _ := session.Advance()
//	    if turn == nil {
//	        break // hand settled, button rotated
//	    }
//	    // turn belongs to a human seat: collect input, then
//	    session.SubmitHuman(action, amount)
//	}
//
// The state machine never advances two turns at once: decisions may be
// computed off the driving goroutine, but they re-enter through Apply in
// strict queue order. Player and Hand state are mutated only by Apply and
// the street transitions inside Next.
//
// The pot is a single pot. Uneven all-in stacks all contend for the full
// amount; there is no side-pot accounting. Likewise a split pot divides
// by integer division and any remainder is simply not distributed.
package game
