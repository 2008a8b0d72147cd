// holdem-odds estimates win probability for a hole hand against one
// random opponent, the same Monte Carlo estimate the in-game bots and
// the player's odds readout use.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/felttable/holdem/internal/deck"
	"github.com/felttable/holdem/internal/evaluator"
	"github.com/felttable/holdem/internal/randutil"
)

type CLI struct {
	Hand   string `arg:"" help:"Hole cards, e.g. 'AsKd' or 'A♠K♦'" required:"true"`
	Board  string `short:"b" help:"Community cards so far, e.g. 'Td7s8h'"`
	Trials int    `short:"n" help:"Number of Monte Carlo trials" default:"100000"`
	Seed   *int64 `help:"Random seed for reproducible results"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true)
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	hole, err := deck.ParseCards(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(hole) != 2 {
		fmt.Fprintf(os.Stderr, "Hand must contain exactly 2 cards, got %d\n", len(hole))
		ctx.Exit(1)
	}

	var board []deck.Card
	if cli.Board != "" {
		board, err = deck.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
		if len(board) > 5 {
			fmt.Fprintf(os.Stderr, "Board cannot have more than 5 cards\n")
			ctx.Exit(1)
		}
	}
	if err := validateNoDuplicates(hole, board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	start := time.Now()
	equity, err := evaluator.Estimate(hole, board, cli.Trials, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	duration := time.Since(start)

	displayResults(hole, board, equity, cli.Trials, duration)
}

func validateNoDuplicates(hole, board []deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, card := range append(append([]deck.Card{}, hole...), board...) {
		if seen[card] {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}
	return nil
}

func displayResults(hole, board []deck.Card, equity float64, trials int, duration time.Duration) {
	fmt.Println(headerStyle.Render("Heads-Up Equity"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Hand:\t%s\t(%s)\n", handStyle.Render(cardString(hole)), evaluator.Describe(hole))
	if len(board) > 0 {
		fmt.Fprintf(w, "Board:\t%s\t\n", handStyle.Render(cardString(board)))
		if name, err := evaluator.BestHandName(hole, board); err == nil {
			fmt.Fprintf(w, "Made hand:\t%s\t\n", name)
		}
	}
	fmt.Fprintf(w, "Win vs one opponent:\t%s\t\n", winStyle.Render(fmt.Sprintf("%.1f%%", equity*100)))
	fmt.Fprintf(w, "Trials:\t%d\t(%.0fms)\n", trials, float64(duration.Milliseconds()))
	w.Flush()

	fmt.Println()
	fmt.Println(adviceStyle.Render(adviceFor(hole, board, equity)))
}

// adviceFor prefers the made-hand reading once a board is out, and
// falls back to raw equity preflop
func adviceFor(hole, board []deck.Card, equity float64) string {
	if len(board) >= 3 {
		rank, err := evaluator.Rank(append(append([]deck.Card{}, hole...), board...))
		if err == nil {
			return rank.Category.Advice()
		}
	}
	switch {
	case equity >= 0.75:
		return "Very strong!"
	case equity >= 0.60:
		return "Strong hand"
	case equity >= 0.45:
		return "Decent hand"
	default:
		return "Weak — be careful"
	}
}

func cardString(cards []deck.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
