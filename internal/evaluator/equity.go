package evaluator

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/felttable/holdem/internal/deck"
	"github.com/felttable/holdem/internal/randutil"
)

// parallelThreshold is the trial count above which the estimator fans out
// across workers. Below it, goroutine setup costs more than it saves.
const parallelThreshold = 512

// ErrInvalidTrials is returned for a non-positive trial count
var ErrInvalidTrials = errors.New("trial count must be at least 1")

// Estimate runs a Monte Carlo simulation of the hero's hand against one
// random opponent and returns the estimated win probability in [0,1].
//
// Each trial draws from the 52-card deck minus the hero's cards and the
// known board: the board is completed to 5 cards, the opponent receives 2
// disjoint cards, and both 7-card hands are ranked. Ties count as hero
// wins, so the estimate runs high, and the single-opponent
// approximation runs higher still with more than one live opponent.
// Callers pick the trial count to trade accuracy against latency.
func Estimate(hole, community []deck.Card, trials int, rng *rand.Rand) (float64, error) {
	if trials < 1 {
		return 0, ErrInvalidTrials
	}
	if len(hole) != 2 {
		return 0, fmt.Errorf("need exactly 2 hole cards, got %d", len(hole))
	}
	if len(community) > 5 {
		return 0, fmt.Errorf("board cannot exceed 5 cards, got %d", len(community))
	}

	known := make([]deck.Card, 0, len(hole)+len(community))
	known = append(known, hole...)
	known = append(known, community...)
	pool := deck.Pool(known)

	if trials < parallelThreshold {
		wins := simulate(hole, community, pool, trials, rng)
		return float64(wins) / float64(trials), nil
	}
	return estimateParallel(hole, community, pool, trials, rng)
}

func estimateParallel(hole, community, pool []deck.Card, trials int, rng *rand.Rand) (float64, error) {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > trials {
		workers = trials
	}

	perWorker := trials / workers
	remainder := trials % workers
	wins := make([]int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		n := perWorker
		if w < remainder {
			n++
		}
		// Each worker gets its own deterministic source forked from the
		// caller's rng, so results are reproducible for a fixed seed and
		// worker count.
		workerRng := randutil.Fork(rng)
		workerPool := make([]deck.Card, len(pool))
		copy(workerPool, pool)

		g.Go(func() error {
			wins[w] = simulate(hole, community, workerPool, n, workerRng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, w := range wins {
		total += w
	}
	return float64(total) / float64(trials), nil
}

// simulate runs trials on a private pool slice, returning hero wins.
// The pool is reordered in place by the partial shuffles; ownership must
// not be shared between goroutines.
func simulate(hole, community, pool []deck.Card, trials int, rng *rand.Rand) int {
	needed := 5 - len(community)
	draws := needed + 2

	board := make([]deck.Card, 5)
	hero := make([]deck.Card, 0, 7)
	opp := make([]deck.Card, 0, 7)

	wins := 0
	for t := 0; t < trials; t++ {
		// Partial Fisher-Yates: the first `draws` positions become a
		// uniform sample without shuffling the whole pool.
		for i := 0; i < draws; i++ {
			j := i + rng.IntN(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
		}

		copy(board, community)
		copy(board[len(community):], pool[:needed])
		oppHole := pool[needed : needed+2]

		hero = hero[:0]
		hero = append(hero, hole...)
		hero = append(hero, board...)
		opp = opp[:0]
		opp = append(opp, oppHole...)
		opp = append(opp, board...)

		heroRank, _ := Rank(hero)
		oppRank, _ := Rank(opp)
		if heroRank.Compare(oppRank) >= 0 {
			wins++
		}
	}
	return wins
}
