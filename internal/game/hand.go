package game

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/felttable/holdem/internal/deck"
	"github.com/felttable/holdem/internal/evaluator"
)

// Hand is a single hand's state machine. Drive it by alternating Next
// and Apply: Next advances dealing and turn order until a seat must act
// (returning a Turn) or the hand settles (returning nil), and Apply
// feeds that seat's decision back in. Bets use a single shared pot;
// over-calls of a short all-in are not returned.
type Hand struct {
	players    []*Player
	dealer     int
	smallBlind int
	bigBlind   int
	rng        *rand.Rand

	deck       *deck.Deck
	board      []deck.Card
	pot        int
	currentBet int // highest total bet this street
	street     Street
	queue      []int // seats still owed an action this street
	pending    *Turn
	done       bool
	result     *Result
}

// Result records who took the pot once a hand is done
type Result struct {
	Winners     []int
	Share       int
	Pot         int
	Uncontested bool
}

func newHand(number int, players []*Player, dealer, smallBlind, bigBlind int, rng *rand.Rand) (*Hand, []Event) {
	h := &Hand{
		players:    players,
		dealer:     dealer,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		rng:        rng,
		deck:       deck.New(rng),
		street:     StreetPreflop,
	}
	h.deck.Shuffle()

	dealt := make([]string, 0, len(players))
	for _, p := range players {
		p.Bet = 0
		p.HoleCards = nil
		if p.Solvent() {
			p.Folded = false
			cards, err := h.deck.DealN(2)
			if err != nil {
				panic("deck exhausted dealing hole cards")
			}
			p.HoleCards = cards
			dealt = append(dealt, p.Name)
		} else {
			// busted seats sit out, marked folded so live checks skip them
			p.Folded = true
		}
	}

	events := []Event{HandStarted{Number: number, Dealer: dealer, Players: dealt}}

	sbSeat := h.nextSolvent(dealer)
	events = append(events, h.postBlind(sbSeat, "small", smallBlind))
	bbSeat := h.nextSolvent(sbSeat)
	events = append(events, h.postBlind(bbSeat, "big", bigBlind))
	h.currentBet = h.players[bbSeat].Bet

	// preflop action starts left of the big blind and comes back around
	// to the blind seats, giving the big blind the last option
	h.queue = h.queue[:0]
	n := len(h.players)
	for off := 1; off <= n; off++ {
		seat := (bbSeat + off) % n
		p := h.players[seat]
		if p.Live() && p.Chips > 0 {
			h.queue = append(h.queue, seat)
		}
	}
	return h, events
}

func (h *Hand) postBlind(seat int, kind string, blind int) Event {
	p := h.players[seat]
	paid := min(blind, p.Chips)
	p.Chips -= paid
	p.Bet += paid
	h.pot += paid
	return BlindPosted{Seat: seat, Name: p.Name, Kind: kind, Amount: paid}
}

// nextSolvent returns the first seat clockwise from the given one that
// still has chips. Panics if no such seat exists; the session never
// starts a hand with fewer than two solvent players.
func (h *Hand) nextSolvent(from int) int {
	n := len(h.players)
	for off := 1; off <= n; off++ {
		seat := (from + off) % n
		if h.players[seat].Solvent() {
			return seat
		}
	}
	panic("no solvent player at the table")
}

// Next advances the hand to the point where a decision is needed. It
// returns the pending Turn, or nil with the closing events when the
// hand has settled. Calling Next again while a turn is pending returns
// the same turn.
func (h *Hand) Next() (*Turn, []Event) {
	if h.done {
		return nil, nil
	}
	if h.pending != nil {
		return h.pending, nil
	}

	var events []Event
	for {
		if h.liveCount() <= 1 {
			return nil, append(events, h.settle()...)
		}
		for len(h.queue) > 0 {
			seat := h.queue[0]
			h.queue = h.queue[1:]
			p := h.players[seat]
			if !p.Live() || p.Chips == 0 {
				continue
			}
			h.pending = &Turn{
				Seat:     seat,
				Call:     max(0, h.currentBet-p.Bet),
				MinRaise: max(h.bigBlind, h.currentBet*2) - p.Bet,
				Stack:    p.Chips,
			}
			return h.pending, events
		}
		if len(h.board) == 5 {
			return nil, append(events, h.settle()...)
		}
		events = append(events, h.advanceStreet())
	}
}

func (h *Hand) advanceStreet() Event {
	for _, p := range h.players {
		p.Bet = 0
	}
	h.currentBet = 0
	h.street++

	var count int
	switch h.street {
	case StreetFlop:
		count = 3
	default:
		count = 1
	}
	cards, err := h.deck.DealN(count)
	if err != nil {
		panic("deck exhausted dealing the board")
	}
	h.board = append(h.board, cards...)

	h.queue = h.queue[:0]
	n := len(h.players)
	for off := 1; off <= n; off++ {
		seat := (h.dealer + off) % n
		p := h.players[seat]
		if p.Live() && p.Chips > 0 {
			h.queue = append(h.queue, seat)
		}
	}
	return StreetDealt{Street: h.street, Cards: cards, Board: h.Board()}
}

// Apply feeds the pending seat's decision into the hand. For raises,
// amount is the increment beyond the call; the total moved is clamped
// to the player's stack, so an all-in below the minimum raise is legal.
// On error nothing is mutated and the turn stays pending.
func (h *Hand) Apply(seat int, action Action, amount int) ([]Event, error) {
	if h.done {
		return nil, fmt.Errorf("%w: hand is over", ErrInvalidAction)
	}
	if h.pending == nil {
		return nil, fmt.Errorf("%w: no turn pending", ErrInvalidAction)
	}
	if seat != h.pending.Seat {
		return nil, fmt.Errorf("%w: seat %d acted out of turn (seat %d to act)", ErrInvalidAction, seat, h.pending.Seat)
	}
	if err := h.pending.Validate(action, amount); err != nil {
		return nil, err
	}

	p := h.players[seat]
	call := h.pending.Call
	var paid int
	switch action {
	case Fold:
		p.Folded = true
	case Check:
		// nothing moves
	case Call:
		paid = min(call, p.Chips)
	case Raise:
		paid = min(call+amount, p.Chips)
	}
	p.Chips -= paid
	p.Bet += paid
	h.pot += paid

	if action == Raise && p.Bet > h.currentBet {
		h.currentBet = p.Bet
		h.reopen(seat)
	}
	h.pending = nil

	return []Event{ActionApplied{
		Seat:     seat,
		Name:     p.Name,
		Action:   action,
		Paid:     paid,
		NewBet:   p.Bet,
		AllIn:    p.AllIn(),
		PotAfter: h.pot,
	}}, nil
}

// reopen re-queues every live, solvent player who is now below the
// raised bet and not already waiting to act
func (h *Hand) reopen(raiser int) {
	queued := make(map[int]bool, len(h.queue))
	for _, s := range h.queue {
		queued[s] = true
	}
	n := len(h.players)
	for off := 1; off < n; off++ {
		seat := (raiser + off) % n
		p := h.players[seat]
		if !p.Live() || p.Chips == 0 || queued[seat] || p.Bet >= h.currentBet {
			continue
		}
		h.queue = append(h.queue, seat)
	}
}

func (h *Hand) settle() []Event {
	h.done = true
	h.pending = nil

	var live []int
	for seat, p := range h.players {
		if p.Live() {
			live = append(live, seat)
		}
	}

	pot := h.pot
	if len(live) == 1 {
		seat := live[0]
		p := h.players[seat]
		p.Chips += pot
		h.pot = 0
		h.result = &Result{Winners: []int{seat}, Share: pot, Pot: pot, Uncontested: true}
		return []Event{HandEnded{
			Winners:     []int{seat},
			Names:       []string{p.Name},
			Share:       pot,
			Pot:         pot,
			Uncontested: true,
		}}
	}

	type ranked struct {
		seat int
		rank evaluator.HandRank
	}
	entries := make([]ranked, 0, len(live))
	for _, seat := range live {
		p := h.players[seat]
		cards := make([]deck.Card, 0, 7)
		cards = append(cards, p.HoleCards...)
		cards = append(cards, h.board...)
		rank, err := evaluator.Rank(cards)
		if err != nil {
			panic("showdown before the board was complete")
		}
		entries = append(entries, ranked{seat: seat, rank: rank})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].rank.Less(entries[i].rank)
	})

	best := entries[0].rank
	var winners []int
	var names []string
	for _, e := range entries {
		if e.rank.Compare(best) == 0 {
			winners = append(winners, e.seat)
			names = append(names, h.players[e.seat].Name)
		}
	}
	sort.Ints(winners)

	// integer split; any remainder stays off the stacks
	share := pot / len(winners)
	for _, seat := range winners {
		h.players[seat].Chips += share
	}
	h.pot = 0

	showdown := make([]ShowdownEntry, 0, len(entries))
	for _, e := range entries {
		p := h.players[e.seat]
		showdown = append(showdown, ShowdownEntry{
			Seat:     e.seat,
			Name:     p.Name,
			Hole:     append([]deck.Card(nil), p.HoleCards...),
			Rank:     e.rank,
			HandName: e.rank.Category.String(),
		})
	}

	h.result = &Result{Winners: winners, Share: share, Pot: pot}
	return []Event{HandEnded{
		Winners:     winners,
		Names:       names,
		Share:       share,
		Pot:         pot,
		WinningHand: best.Category.String(),
		Showdown:    showdown,
	}}
}

// SubmitHuman applies externally collected input to the pending turn.
// The action is validated first, so bad input leaves the hand unchanged
// and the same turn pending.
func (h *Hand) SubmitHuman(action Action, amount int) ([]Event, error) {
	if h.pending == nil {
		return nil, fmt.Errorf("%w: no turn pending", ErrInvalidAction)
	}
	return h.Apply(h.pending.Seat, action, amount)
}

// ViewFor builds the acting snapshot for a seat
func (h *Hand) ViewFor(seat int) View {
	p := h.players[seat]
	return View{
		Hole:     append([]deck.Card(nil), p.HoleCards...),
		Board:    h.Board(),
		Pot:      h.pot,
		Call:     max(0, h.currentBet-p.Bet),
		MinRaise: max(h.bigBlind, h.currentBet*2) - p.Bet,
		Stack:    p.Chips,
	}
}

// Board returns a copy of the community cards dealt so far
func (h *Hand) Board() []deck.Card {
	return append([]deck.Card(nil), h.board...)
}

// Pot returns the chips in the middle
func (h *Hand) Pot() int { return h.pot }

// Street returns the current betting street
func (h *Hand) Street() Street { return h.street }

// Done reports whether the pot has been awarded
func (h *Hand) Done() bool { return h.done }

// Result returns the settlement, or nil while the hand is running
func (h *Hand) Result() *Result { return h.result }

func (h *Hand) liveCount() int {
	n := 0
	for _, p := range h.players {
		if p.Live() {
			n++
		}
	}
	return n
}
