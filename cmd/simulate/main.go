// simulate runs bot-only tables to completion and aggregates results:
// how often each temperament wins, how long tournaments last, and a
// chip-conservation audit of the engine.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/felttable/holdem/internal/bot"
	"github.com/felttable/holdem/internal/game"
	"github.com/felttable/holdem/internal/randutil"
)

type CLI struct {
	Tournaments int    `short:"t" default:"100" help:"Number of tournaments to run"`
	MaxHands    int    `default:"2000" help:"Hand limit per tournament before calling it a draw"`
	Difficulty  string `short:"d" default:"medium" enum:"easy,medium,hard" help:"Bot difficulty"`
	Stack       int    `default:"1000" help:"Starting stack"`
	SmallBlind  int    `default:"25" help:"Small blind"`
	Trials      int    `default:"120" help:"Monte Carlo trials per bot decision"`
	Seed        int64  `default:"0" help:"RNG seed (0 picks one from the clock)"`
	Verbose     bool   `short:"v" help:"Verbose logging"`
}

// seat zero has no persona, giving a baseline to compare the shaded
// temperaments against
var personas = []bot.Persona{
	bot.PersonaNone,
	bot.PersonaAggressive,
	bot.PersonaTight,
	bot.PersonaLoose,
}

type results struct {
	tournaments int
	draws       int
	totalHands  int
	biggestPot  int
	chipsLost   int // split-pot remainders across all hands
	winsBySeat  [4]int
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting simulation",
		"tournaments", cli.Tournaments,
		"difficulty", cli.Difficulty,
		"seed", seed)

	difficulty, err := bot.ParseDifficulty(cli.Difficulty)
	if err != nil {
		logger.Fatal("bad difficulty", "error", err)
	}

	var res results
	start := time.Now()
	for i := 0; i < cli.Tournaments; i++ {
		if err := runTournament(&cli, difficulty, seed+int64(i), &res, logger); err != nil {
			logger.Fatal("tournament failed", "tournament", i, "error", err)
		}
	}
	report(&cli, &res, time.Since(start))
}

func runTournament(cli *CLI, difficulty bot.Difficulty, seed int64, res *results, logger *log.Logger) error {
	rng := randutil.New(seed)

	players := make([]*game.Player, len(personas))
	agents := make([]game.Agent, len(personas))
	for i, persona := range personas {
		name := string(persona)
		if name == "" {
			name = "baseline"
		}
		players[i] = &game.Player{Name: name, Chips: cli.Stack}
		agents[i] = &bot.Agent{
			Profile: bot.Profile{Difficulty: difficulty, Persona: persona},
			Trials:  cli.Trials,
		}
	}

	session, err := game.NewSession(players, agents, cli.SmallBlind, rng, logger)
	if err != nil {
		return err
	}

	startChips := cli.Stack * len(players)
	hands := 0
	for ; hands < cli.MaxHands && !session.GameOver(); hands++ {
		if _, err := session.StartHand(); err != nil {
			return err
		}
		if _, _, err := session.Advance(); err != nil {
			return err
		}

		result := session.Hand().Result()
		if result == nil {
			return fmt.Errorf("hand %d did not settle", session.HandNumber())
		}
		res.chipsLost += result.Pot - result.Share*len(result.Winners)
		if result.Pot > res.biggestPot {
			res.biggestPot = result.Pot
		}

		// the engine must never mint or burn chips beyond the audited
		// split remainders
		total := 0
		for _, p := range players {
			total += p.Chips
		}
		startChips -= result.Pot - result.Share*len(result.Winners)
		if total != startChips {
			return fmt.Errorf("chip conservation violated on hand %d: have %d want %d",
				session.HandNumber(), total, startChips)
		}
	}

	res.tournaments++
	res.totalHands += hands
	if session.GameOver() {
		res.winsBySeat[session.Standings()[0].Seat]++
		logger.Debug("tournament complete",
			"seed", seed,
			"hands", hands,
			"winner", session.Standings()[0].Name)
	} else {
		res.draws++
		logger.Debug("tournament hit the hand limit", "seed", seed)
	}
	return nil
}

func report(cli *CLI, res *results, elapsed time.Duration) {
	fmt.Printf("\nSimulated %d tournaments (%d hands) in %s\n\n",
		res.tournaments, res.totalHands, elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Seat\tPersona\tWins\tWin %%\n")
	for i, persona := range personas {
		name := string(persona)
		if name == "" {
			name = "baseline"
		}
		pct := 0.0
		if res.tournaments > 0 {
			pct = 100 * float64(res.winsBySeat[i]) / float64(res.tournaments)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.1f%%\n", i, name, res.winsBySeat[i], pct)
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Unfinished (hit %d-hand limit):\t%d\n", cli.MaxHands, res.draws)
	if res.tournaments > 0 {
		fmt.Fprintf(w, "Average tournament length:\t%.0f hands\n",
			float64(res.totalHands)/float64(res.tournaments))
	}
	fmt.Fprintf(w, "Biggest pot:\t$%d\n", res.biggestPot)
	fmt.Fprintf(w, "Chips lost to split remainders:\t$%d\n", res.chipsLost)
	w.Flush()
}
