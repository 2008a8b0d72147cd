// Package evaluator scores poker hands and estimates win equity.
//
// The scorer is the exhaustive reference implementation: it evaluates
// every 5-card combination of up to 7 cards. That is 21 evaluations per
// hand at worst, which is plenty fast for a 4-player table. An indexed
// lookup evaluator could replace it but must produce identical rankings.
package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/felttable/holdem/internal/deck"
)

// Category is the class of a 5-card poker hand, ordered weakest to
// strongest.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Advice returns a short human-facing read on the category's strength,
// for display next to the player's hand.
func (c Category) Advice() string {
	switch c {
	case StraightFlush:
		return "Unbeatable!"
	case FourOfAKind:
		return "Monster hand!"
	case FullHouse:
		return "Very strong!"
	case Flush:
		return "Strong hand"
	case Straight, ThreeOfAKind:
		return "Decent hand"
	case TwoPair:
		return "Okay hand"
	case Pair:
		return "Weak — be careful"
	default:
		return "Trash — consider folding"
	}
}

// HandRank is a fully comparable hand ranking: category first, then the
// tiebreak key compared lexicographically. The tiebreak holds rank values
// ordered by (frequency desc, value desc) for grouped hands, or the full
// sorted rank sequence for straights, flushes and high cards. The wheel's
// ace appears as 1 so a 5-high straight sorts below a 6-high one.
type HandRank struct {
	Category Category
	Tiebreak []int
}

// Compare returns -1 if h ranks below other, 0 if equal, 1 if above.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	for i := 0; i < len(h.Tiebreak) && i < len(other.Tiebreak); i++ {
		if h.Tiebreak[i] != other.Tiebreak[i] {
			if h.Tiebreak[i] < other.Tiebreak[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether h ranks strictly below other
func (h HandRank) Less(other HandRank) bool {
	return h.Compare(other) < 0
}

// String returns e.g. "Full House [10 4]"
func (h HandRank) String() string {
	return fmt.Sprintf("%s %v", h.Category, h.Tiebreak)
}

// ErrTooFewCards is returned when ranking fewer than five cards
var ErrTooFewCards = errors.New("hand evaluation requires at least 5 cards")

// ScoreFive scores exactly five distinct cards.
func ScoreFive(cards []deck.Card) HandRank {
	if len(cards) != 5 {
		panic(fmt.Sprintf("ScoreFive needs exactly 5 cards, got %d", len(cards)))
	}

	vals := make([]int, 5)
	for i, c := range cards {
		vals[i] = c.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straight := isRunDown(vals)
	wheel := vals[0] == 14 && vals[1] == 5 && vals[2] == 4 && vals[3] == 3 && vals[4] == 2
	if wheel {
		straight = true
		// Ace plays low: rewrite so the wheel compares as 5-high.
		vals = []int{5, 4, 3, 2, 1}
	}

	counts := make(map[int]int, 5)
	for _, v := range vals {
		counts[v]++
	}
	freq := make([]int, 0, len(counts))
	grouped := make([]int, 0, len(counts))
	for v := range counts {
		grouped = append(grouped, v)
	}
	// Grouped tiebreak order: frequency first, then rank value.
	sort.Slice(grouped, func(i, j int) bool {
		if counts[grouped[i]] != counts[grouped[j]] {
			return counts[grouped[i]] > counts[grouped[j]]
		}
		return grouped[i] > grouped[j]
	})
	for _, v := range grouped {
		freq = append(freq, counts[v])
	}

	switch {
	case straight && flush:
		return HandRank{StraightFlush, vals}
	case freq[0] == 4:
		return HandRank{FourOfAKind, grouped}
	case freq[0] == 3 && freq[1] == 2:
		return HandRank{FullHouse, grouped}
	case flush:
		return HandRank{Flush, vals}
	case straight:
		return HandRank{Straight, vals}
	case freq[0] == 3:
		return HandRank{ThreeOfAKind, grouped}
	case freq[0] == 2 && freq[1] == 2:
		return HandRank{TwoPair, grouped}
	case freq[0] == 2:
		return HandRank{Pair, grouped}
	default:
		return HandRank{HighCard, vals}
	}
}

// Rank finds the best 5-card hand among 5 to 7 cards by scoring every
// 5-card subset and keeping the maximum.
func Rank(cards []deck.Card) (HandRank, error) {
	if len(cards) < 5 {
		return HandRank{}, ErrTooFewCards
	}
	if len(cards) == 5 {
		return ScoreFive(cards), nil
	}

	var best HandRank
	first := true
	combo := make([]deck.Card, 5)
	eachCombination(len(cards), 5, func(idx []int) {
		for i, j := range idx {
			combo[i] = cards[j]
		}
		score := ScoreFive(combo)
		if first || best.Less(score) {
			best = score
			first = false
		}
	})
	return best, nil
}

// BestHandName returns the category label of the best hand a player can
// make from their hole cards and the community cards.
func BestHandName(hole, community []deck.Card) (string, error) {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	rank, err := Rank(all)
	if err != nil {
		return "", err
	}
	return rank.Category.String(), nil
}

// Describe returns a preflop description of two hole cards,
// e.g. "A♠ K♠ suited" or "Q♥ Q♦ (pocket pair)".
func Describe(hole []deck.Card) string {
	if len(hole) != 2 {
		return ""
	}
	s := fmt.Sprintf("%s %s", hole[0], hole[1])
	if hole[0].Rank == hole[1].Rank {
		s += " (pocket pair)"
	} else if hole[0].Suit == hole[1].Suit {
		s += " suited"
	}
	return s
}

// isRunDown reports whether vals (sorted descending) form a contiguous
// descending run.
func isRunDown(vals []int) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[0]-i {
			return false
		}
	}
	return true
}

// eachCombination calls fn with every k-subset of indices [0,n).
func eachCombination(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// Advance to the next combination in lexicographic order.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
