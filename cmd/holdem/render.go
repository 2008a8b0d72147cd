package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/felttable/holdem/internal/deck"
	"github.com/felttable/holdem/internal/evaluator"
	"github.com/felttable/holdem/internal/game"
)

// oddsTrials is the sample count for the player's win-odds readout,
// larger than the bots' because it renders once per turn
const oddsTrials = 600

var (
	streetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	cardWhite = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	cardRed = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	oddsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Italic(true)

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
)

type renderer struct {
	session *game.Session
	rng     *rand.Rand
}

func newRenderer(session *game.Session, rng *rand.Rand) *renderer {
	return &renderer{session: session, rng: rng}
}

func (r *renderer) render(events []game.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case game.HandStarted:
			fmt.Println()
			fmt.Println(streetStyle.Render(fmt.Sprintf("─── Hand %d ───", e.Number)))
			fmt.Printf("Dealer: %s\n", r.name(e.Dealer))
		case game.BlindPosted:
			fmt.Printf("%s posts the %s blind $%d\n", r.name(e.Seat), e.Kind, e.Amount)
		case game.ActionApplied:
			r.renderAction(e)
		case game.StreetDealt:
			fmt.Println()
			fmt.Printf("%s  %s   %s\n",
				streetStyle.Render(strings.ToUpper(e.Street.String())),
				styledCards(e.Board),
				potStyle.Render(fmt.Sprintf("pot $%d", r.session.Hand().Pot())))
		case game.HandEnded:
			r.renderHandEnd(e)
		case game.GameOver:
			// the final summary prints the standings
		}
	}
}

func (r *renderer) renderAction(e game.ActionApplied) {
	desc := e.Action.String()
	switch e.Action {
	case game.Call:
		desc = fmt.Sprintf("calls $%d", e.Paid)
	case game.Raise:
		desc = fmt.Sprintf("raises to $%d", e.NewBet)
	case game.Fold:
		desc = "folds"
	case game.Check:
		desc = "checks"
	}
	if e.AllIn {
		desc += "  ALL-IN"
	}
	line := fmt.Sprintf("%s %s  (pot $%d)", r.name(e.Seat), desc, e.PotAfter)
	if r.session.Players()[e.Seat].Human {
		fmt.Println(line)
	} else {
		fmt.Println(botStyle.Render(line))
	}
}

func (r *renderer) renderHandEnd(e game.HandEnded) {
	fmt.Println()
	for _, entry := range e.Showdown {
		fmt.Printf("%s shows %s — %s\n", r.name(entry.Seat), styledCards(entry.Hole), entry.HandName)
	}
	if e.Uncontested {
		fmt.Println(winStyle.Render(fmt.Sprintf("%s wins $%d uncontested", e.Names[0], e.Share)))
	} else if len(e.Winners) == 1 {
		fmt.Println(winStyle.Render(fmt.Sprintf("%s wins $%d with %s", e.Names[0], e.Share, e.WinningHand)))
	} else {
		fmt.Println(winStyle.Render(fmt.Sprintf("Split pot: %s take $%d each with %s",
			strings.Join(e.Names, ", "), e.Share, e.WinningHand)))
	}
	r.stacks()
}

// showTurn prints the player's cards, odds readout and legal actions
func (r *renderer) showTurn(turn *game.Turn) {
	view := r.session.Hand().ViewFor(turn.Seat)

	fmt.Println()
	fmt.Printf("Your hand: %s  (%s)\n", styledCards(view.Hole), evaluator.Describe(view.Hole))
	if len(view.Board) > 0 {
		if name, err := evaluator.BestHandName(view.Hole, view.Board); err == nil {
			fmt.Printf("Made hand: %s\n", name)
		}
	}
	if odds, err := evaluator.Estimate(view.Hole, view.Board, oddsTrials, r.rng); err == nil {
		fmt.Println(oddsStyle.Render(fmt.Sprintf("Win odds vs one opponent: %.0f%%", odds*100)))
	}

	fmt.Printf("%s  stack $%d\n", potStyle.Render(fmt.Sprintf("Pot $%d", view.Pot)), view.Stack)
	if turn.CanCheck() {
		fmt.Printf("Actions: [k]check  [r]aise %d-%d  [a]ll-in  [f]old\n", turn.MinRaise, turn.MaxRaise())
	} else {
		fmt.Printf("Actions: [c]all $%d  [r]aise %d-%d  [a]ll-in  [f]old\n", turn.Call, turn.MinRaise, turn.MaxRaise())
	}
}

func (r *renderer) stacks() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range r.session.Players() {
		status := ""
		if !p.Solvent() {
			status = "ELIMINATED"
		}
		fmt.Fprintf(w, "  %s\t$%d\t%s\n", p.Name, p.Chips, status)
	}
	w.Flush()
}

func (r *renderer) finalSummary() {
	stats := r.session.Stats()

	fmt.Println()
	fmt.Println(streetStyle.Render("─── Final standings ───"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, st := range r.session.Standings() {
		marker := "  "
		if st.Human {
			marker = "→ "
		}
		fmt.Fprintf(w, "%s%d.\t%s\t$%d\n", marker, i+1, st.Name, st.Chips)
	}
	w.Flush()

	var human *game.Player
	for _, p := range r.session.Players() {
		if p.Human {
			human = p
		}
	}
	if human == nil {
		return
	}

	fmt.Println()
	fmt.Println(streetStyle.Render("─── Session stats ───"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Buy-in:\t$%d\n", stats.StartStack())
	fmt.Fprintf(w, "Hands played:\t%d\n", stats.HandsPlayed)
	fmt.Fprintf(w, "Hands won:\t%d\n", stats.HandsWon)
	fmt.Fprintf(w, "Total won:\t$%d\n", stats.TotalWon)
	fmt.Fprintf(w, "Net result:\t$%+d\n", stats.Profit(human.Chips))
	if stats.BiggestPot > 0 {
		fmt.Fprintf(w, "Biggest pot:\t$%d (hand %d)\n", stats.BiggestPot, stats.BiggestPotHand)
	}
	fmt.Fprintf(w, "Folds/Checks/Calls/Raises:\t%d/%d/%d/%d\n",
		stats.Folds, stats.Checks, stats.Calls, stats.Raises)
	fmt.Fprintf(w, "All-ins:\t%d\n", stats.AllIns)
	fmt.Fprintf(w, "Showdowns won:\t%d of %d\n", stats.ShowdownsWon, stats.Showdowns)
	w.Flush()
}

func (r *renderer) name(seat int) string {
	return r.session.Players()[seat].Name
}

func styledCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.IsRed() {
			parts = append(parts, cardRed.Render(c.String()))
		} else {
			parts = append(parts, cardWhite.Render(c.String()))
		}
	}
	return strings.Join(parts, " ")
}
