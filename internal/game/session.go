package game

import (
	"io"
	rand "math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
)

// Session runs hands back to back at one table: it owns the players,
// their decision agents, the dealer button, and the running stats.
// Drive it with StartHand then Advance; Advance plays every bot turn
// and either finishes the hand or stops on a Turn that needs human
// input, which the caller satisfies with SubmitHuman.
type Session struct {
	players    []*Player
	agents     []Agent
	rng        *rand.Rand
	log        *log.Logger
	smallBlind int
	bigBlind   int
	dealer     int
	handNum    int
	hand       *Hand
	settled    bool
	stats      *Stats
}

// NewSession seats the given players with their agents. The big blind
// is twice the small blind. A nil logger discards output.
func NewSession(players []*Player, agents []Agent, smallBlind int, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	if len(players) < 2 {
		return nil, ErrInsufficientPlayers
	}
	if len(players) != len(agents) {
		return nil, ErrInsufficientPlayers
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	humanSeat := -1
	for i, p := range players {
		p.Seat = i
		if p.Human {
			humanSeat = i
		}
	}
	return &Session{
		players:    players,
		agents:     agents,
		rng:        rng,
		log:        logger,
		smallBlind: smallBlind,
		bigBlind:   smallBlind * 2,
		stats:      newStats(humanSeat, players),
	}, nil
}

// StartHand deals a new hand. It fails with ErrInsufficientPlayers when
// fewer than two seats still have chips.
func (s *Session) StartHand() ([]Event, error) {
	if s.solventCount() < 2 {
		return nil, ErrInsufficientPlayers
	}
	s.handNum++
	s.settled = false
	var events []Event
	s.hand, events = newHand(s.handNum, s.players, s.dealer, s.smallBlind, s.bigBlind, s.rng)
	s.log.Debug("hand started", "hand", s.handNum, "dealer", s.players[s.dealer].Name)
	s.observe(events)
	return events, nil
}

// Advance plays bot turns until the hand needs human input or settles.
// A nil Turn means the hand is over; the returned events include the
// settlement and, when the table can no longer field a hand, GameOver.
func (s *Session) Advance() (*Turn, []Event, error) {
	var events []Event
	for {
		turn, evs := s.hand.Next()
		s.observe(evs)
		events = append(events, evs...)
		if turn == nil {
			events = append(events, s.finishHand()...)
			return nil, events, nil
		}

		decision, ok := s.agents[turn.Seat].Decide(s.hand.ViewFor(turn.Seat), s.rng)
		if !ok {
			return turn, events, nil
		}
		evs, err := s.hand.Apply(turn.Seat, decision.Action, decision.Amount)
		if err != nil {
			return turn, events, err
		}
		s.log.Debug("bot acted",
			"seat", turn.Seat,
			"name", s.players[turn.Seat].Name,
			"action", decision.Action.String(),
			"amount", decision.Amount)
		s.observe(evs)
		events = append(events, evs...)
	}
}

// SubmitHuman validates and applies the human's decision for the
// pending turn. Call Advance afterwards to resume bot play.
func (s *Session) SubmitHuman(action Action, amount int) ([]Event, error) {
	events, err := s.hand.SubmitHuman(action, amount)
	if err != nil {
		return nil, err
	}
	s.observe(events)
	return events, nil
}

// finishHand rotates the button to the next solvent seat and reports
// game over when the table is down to one stack or the human is felted
func (s *Session) finishHand() []Event {
	if s.settled {
		return nil
	}
	s.settled = true
	s.stats.handFinished()
	if s.solventCount() >= 2 {
		s.dealer = s.hand.nextSolvent(s.dealer)
	}
	if !s.GameOver() {
		return nil
	}
	s.log.Info("game over", "hands", s.handNum)
	return []Event{GameOver{Standings: s.Standings()}}
}

// GameOver reports whether another hand can be dealt. With a human at
// the table the game also ends the moment they bust.
func (s *Session) GameOver() bool {
	if seat := s.stats.humanSeat; seat >= 0 && !s.players[seat].Solvent() {
		return true
	}
	return s.solventCount() < 2
}

// Standings returns the seats ordered by chip count, richest first
func (s *Session) Standings() []Standing {
	out := make([]Standing, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, Standing{Seat: p.Seat, Name: p.Name, Chips: p.Chips, Human: p.Human})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Chips > out[j].Chips })
	return out
}

// Hand returns the hand in progress, or nil before the first deal
func (s *Session) Hand() *Hand { return s.hand }

// HandNumber returns how many hands have been dealt
func (s *Session) HandNumber() int { return s.handNum }

// Players returns the seats in table order
func (s *Session) Players() []*Player { return s.players }

// Stats returns the session's running statistics
func (s *Session) Stats() *Stats { return s.stats }

func (s *Session) observe(events []Event) {
	for _, ev := range events {
		s.stats.observe(s.handNum, ev)
	}
}

func (s *Session) solventCount() int {
	n := 0
	for _, p := range s.players {
		if p.Solvent() {
			n++
		}
	}
	return n
}
