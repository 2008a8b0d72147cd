// holdem is the interactive table: you against three bots with
// distinct temperaments, played as a prompt loop in the terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/felttable/holdem/internal/bot"
	"github.com/felttable/holdem/internal/config"
	"github.com/felttable/holdem/internal/game"
	"github.com/felttable/holdem/internal/randutil"
)

// ErrMalformedInput marks human input that could not be parsed into an
// action; the turn is re-prompted with no state change
var ErrMalformedInput = errors.New("malformed input")

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B7340")).
			Padding(0, 1).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

type CLI struct {
	Config string `short:"c" help:"Path to table configuration" default:"table.hcl"`
	Name   string `help:"Override the configured player name"`
	Seed   *int64 `help:"Random seed for a reproducible session"`
	Debug  bool   `help:"Write debug logging to holdem.log"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}
	if cli.Name != "" {
		cfg.Player.Name = cli.Name
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if cli.Debug {
		debugFile, err := os.OpenFile("holdem.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
		if err != nil {
			log.Fatal("Failed to create debug log", "error", err)
		}
		defer debugFile.Close()
		logger = log.NewWithOptions(debugFile, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		logger.SetLevel(log.DebugLevel)
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Println()

	if err := play(cfg, seed, logger); err != nil {
		log.Fatal("Game failed", "error", err)
	}
	ctx.Exit(0)
}

func play(cfg *config.Config, seed int64, logger *log.Logger) error {
	rng := randutil.New(seed)

	profiles := cfg.BotProfiles()
	names := bot.PickNames(rng, len(profiles), cfg.Player.Name)

	players := []*game.Player{
		{Name: cfg.Player.Name, Chips: cfg.Table.StartingStack, Human: true},
	}
	agents := []game.Agent{game.HumanAgent{}}
	for i, profile := range profiles {
		players = append(players, &game.Player{Name: names[i], Chips: cfg.Table.StartingStack})
		agents = append(agents, &bot.Agent{Profile: profile, Trials: cfg.Bots.Trials})
	}

	session, err := game.NewSession(players, agents, cfg.Table.SmallBlind, rng, logger)
	if err != nil {
		return err
	}

	r := newRenderer(session, rng)
	input := bufio.NewScanner(os.Stdin)

	for !session.GameOver() {
		events, err := session.StartHand()
		if err != nil {
			return err
		}
		r.render(events)

		for {
			turn, events, err := session.Advance()
			if err != nil {
				return err
			}
			r.render(events)
			if turn == nil {
				break
			}
			if err := promptHuman(session, turn, r, input); err != nil {
				return err
			}
		}
	}

	r.finalSummary()
	return nil
}

// promptHuman keeps asking until a legal action is applied or stdin
// closes (which folds the hand and quits)
func promptHuman(session *game.Session, turn *game.Turn, r *renderer, input *bufio.Scanner) error {
	for {
		r.showTurn(turn)
		fmt.Print("> ")
		if !input.Scan() {
			if _, err := session.SubmitHuman(game.Fold, 0); err != nil {
				return err
			}
			return errors.New("input closed")
		}

		action, amount, err := parseAction(strings.TrimSpace(input.Text()), turn)
		if err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			continue
		}
		events, err := session.SubmitHuman(action, amount)
		if err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			continue
		}
		r.render(events)
		return nil
	}
}

// parseAction understands f(old), k (check), c(all), r(aise) N and
// a (all-in)
func parseAction(line string, turn *game.Turn) (game.Action, int, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("%w: enter f, k, c, r <amount> or a", ErrMalformedInput)
	}
	switch fields[0] {
	case "f", "fold":
		return game.Fold, 0, nil
	case "k", "check":
		return game.Check, 0, nil
	case "c", "call":
		return game.Call, 0, nil
	case "a", "allin", "all-in":
		if turn.Stack <= turn.Call {
			// the call itself takes the whole stack
			return game.Call, 0, nil
		}
		return game.Raise, turn.Stack - turn.Call, nil
	case "r", "raise", "bet":
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("%w: raise needs an amount, e.g. r %d", ErrMalformedInput, turn.MinRaise)
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, fields[1])
		}
		return game.Raise, amount, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown action %q", ErrMalformedInput, fields[0])
	}
}
