package game

// Stats accumulates session statistics. The per-action counters track
// the human seat when one is present; pot records cover the whole
// table, so bot-only simulations still get the hand and pot totals.
type Stats struct {
	humanSeat  int
	startStack int

	HandsPlayed int
	HandsWon    int
	TotalWon    int

	BiggestPot     int
	BiggestPotHand int

	Folds  int
	Checks int
	Calls  int
	Raises int
	AllIns int

	Showdowns    int
	ShowdownsWon int
}

func newStats(humanSeat int, players []*Player) *Stats {
	s := &Stats{humanSeat: humanSeat}
	if humanSeat >= 0 {
		s.startStack = players[humanSeat].Chips
	}
	return s
}

// StartStack returns the human's buy-in, or zero for bot-only tables
func (s *Stats) StartStack() int { return s.startStack }

// Profit returns the human's net result given their current stack
func (s *Stats) Profit(currentStack int) int {
	return currentStack - s.startStack
}

func (s *Stats) observe(handNum int, ev Event) {
	switch e := ev.(type) {
	case ActionApplied:
		if e.Seat != s.humanSeat {
			return
		}
		switch e.Action {
		case Fold:
			s.Folds++
		case Check:
			s.Checks++
		case Call:
			s.Calls++
		case Raise:
			s.Raises++
		}
		if e.AllIn {
			s.AllIns++
		}
	case HandEnded:
		if e.Pot > s.BiggestPot {
			s.BiggestPot = e.Pot
			s.BiggestPotHand = handNum
		}
		if s.humanSeat < 0 {
			return
		}
		atShowdown := false
		for _, entry := range e.Showdown {
			if entry.Seat == s.humanSeat {
				atShowdown = true
			}
		}
		if atShowdown {
			s.Showdowns++
		}
		for _, seat := range e.Winners {
			if seat != s.humanSeat {
				continue
			}
			s.HandsWon++
			s.TotalWon += e.Share
			if atShowdown {
				s.ShowdownsWon++
			}
		}
	}
}

func (s *Stats) handFinished() {
	s.HandsPlayed++
}
