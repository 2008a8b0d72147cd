package game

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felttable/holdem/internal/randutil"
)

// callingAgent checks when free and calls otherwise
type callingAgent struct{}

func (callingAgent) Decide(view View, _ *rand.Rand) (Decision, bool) {
	if view.Call > 0 {
		return Decision{Action: Call}, true
	}
	return Decision{Action: Check}, true
}

// foldingAgent folds unless checking is free
type foldingAgent struct{}

func (foldingAgent) Decide(view View, _ *rand.Rand) (Decision, bool) {
	if view.Call > 0 {
		return Decision{Action: Fold}, true
	}
	return Decision{Action: Check}, true
}

func callingAgents(n int) []Agent {
	agents := make([]Agent, n)
	for i := range agents {
		agents[i] = callingAgent{}
	}
	return agents
}

func TestNewSessionValidation(t *testing.T) {
	t.Parallel()

	_, err := NewSession(testPlayers(100), callingAgents(1), 5, randutil.New(1), nil)
	require.ErrorIs(t, err, ErrInsufficientPlayers)

	_, err = NewSession(testPlayers(100, 100), callingAgents(3), 5, randutil.New(1), nil)
	require.ErrorIs(t, err, ErrInsufficientPlayers)
}

func TestBotOnlyHandCompletes(t *testing.T) {
	t.Parallel()

	players := testPlayers(100, 100, 100, 100)
	s, err := NewSession(players, callingAgents(4), 5, randutil.New(2), nil)
	require.NoError(t, err)

	_, err = s.StartHand()
	require.NoError(t, err)
	turn, _, err := s.Advance()
	require.NoError(t, err)
	assert.Nil(t, turn)

	require.True(t, s.Hand().Done())
	assert.Equal(t, 1, s.HandNumber())
	assert.Equal(t, 1, s.Stats().HandsPlayed)

	result := s.Hand().Result()
	require.NotNil(t, result)
	lost := result.Pot - result.Share*len(result.Winners)
	assert.Equal(t, 400-lost, chipTotal(players, 0))
}

func TestChipsConservedOverManyHands(t *testing.T) {
	t.Parallel()

	players := testPlayers(100, 100, 100, 100)
	s, err := NewSession(players, callingAgents(4), 5, randutil.New(3), nil)
	require.NoError(t, err)

	total := 400
	for i := 0; i < 50 && !s.GameOver(); i++ {
		_, err := s.StartHand()
		require.NoError(t, err)
		_, _, err = s.Advance()
		require.NoError(t, err)

		result := s.Hand().Result()
		require.NotNil(t, result)
		total -= result.Pot - result.Share*len(result.Winners)
		require.Equal(t, total, chipTotal(players, 0))
	}
}

func TestDealerRotatesPastBustedSeats(t *testing.T) {
	t.Parallel()

	players := testPlayers(100, 100, 100, 100)
	s, err := NewSession(players, callingAgents(4), 5, randutil.New(4), nil)
	require.NoError(t, err)

	_, err = s.StartHand()
	require.NoError(t, err)
	_, _, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, 1, s.dealer)

	// a busted seat never holds the button
	players[2].Chips = 0
	_, err = s.StartHand()
	require.NoError(t, err)
	_, _, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, 3, s.dealer)
}

func TestHumanTurnSuspendsTheHand(t *testing.T) {
	t.Parallel()

	players := testPlayers(100, 100, 100, 100)
	players[0].Human = true
	agents := callingAgents(4)
	agents[0] = HumanAgent{}
	s, err := NewSession(players, agents, 5, randutil.New(5), nil)
	require.NoError(t, err)

	_, err = s.StartHand()
	require.NoError(t, err)

	// seat 3 is under the gun; the bot acts, then seat 0 waits on us
	turn, _, err := s.Advance()
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.Equal(t, 0, turn.Seat)
	assert.Equal(t, 10, turn.Call)

	_, err = s.SubmitHuman(Fold, 0)
	require.NoError(t, err)
	turn, _, err = s.Advance()
	require.NoError(t, err)
	assert.Nil(t, turn)
	assert.True(t, s.Hand().Done())
	assert.Equal(t, 1, s.Stats().Folds)
	assert.Equal(t, 100, s.Stats().StartStack())
	assert.Equal(t, 0, s.Stats().Profit(players[0].Chips))
}

func TestSubmitHumanRejectsIllegalInput(t *testing.T) {
	t.Parallel()

	players := testPlayers(100, 100, 100, 100)
	players[0].Human = true
	agents := callingAgents(4)
	agents[0] = HumanAgent{}
	s, err := NewSession(players, agents, 5, randutil.New(6), nil)
	require.NoError(t, err)

	_, err = s.StartHand()
	require.NoError(t, err)
	turn, _, err := s.Advance()
	require.NoError(t, err)
	require.NotNil(t, turn)
	require.Equal(t, 0, turn.Seat)

	_, err = s.SubmitHuman(Check, 0)
	require.ErrorIs(t, err, ErrInvalidAction)

	// the same turn is still pending; a legal action goes through
	_, err = s.SubmitHuman(Call, 0)
	require.NoError(t, err)
}

func TestGameOverWhenHumanBusts(t *testing.T) {
	t.Parallel()

	players := testPlayers(100, 100, 100, 100)
	players[0].Human = true
	agents := callingAgents(4)
	agents[0] = HumanAgent{}
	s, err := NewSession(players, agents, 5, randutil.New(7), nil)
	require.NoError(t, err)

	players[0].Chips = 0
	assert.True(t, s.GameOver())
}

func TestGameOverWhenOneStackRemains(t *testing.T) {
	t.Parallel()

	players := testPlayers(400, 0, 0, 0)
	s, err := NewSession(players, callingAgents(4), 5, randutil.New(8), nil)
	require.NoError(t, err)

	assert.True(t, s.GameOver())
	_, err = s.StartHand()
	require.ErrorIs(t, err, ErrInsufficientPlayers)
}

func TestStandingsOrderedByChips(t *testing.T) {
	t.Parallel()

	players := testPlayers(50, 200, 100, 50)
	s, err := NewSession(players, callingAgents(4), 5, randutil.New(9), nil)
	require.NoError(t, err)

	standings := s.Standings()
	require.Len(t, standings, 4)
	assert.Equal(t, "Bix", standings[0].Name)
	assert.Equal(t, "Cleo", standings[1].Name)
	for i := 1; i < len(standings); i++ {
		assert.GreaterOrEqual(t, standings[i-1].Chips, standings[i].Chips)
	}
}

func TestFoldedTableEndsWithGameOverEvent(t *testing.T) {
	t.Parallel()

	// three folders give every pot to the big blind; eventually the
	// blinds alone felt someone and the session reports game over
	players := testPlayers(25, 25, 25, 25)
	s, err := NewSession(players, []Agent{foldingAgent{}, foldingAgent{}, foldingAgent{}, callingAgent{}}, 5, randutil.New(10), nil)
	require.NoError(t, err)

	sawGameOver := false
	for i := 0; i < 500 && !s.GameOver(); i++ {
		_, err := s.StartHand()
		require.NoError(t, err)
		_, events, err := s.Advance()
		require.NoError(t, err)
		for _, ev := range events {
			if over, ok := ev.(GameOver); ok {
				sawGameOver = true
				assert.Len(t, over.Standings, 4)
			}
		}
	}
	assert.True(t, s.GameOver())
	assert.True(t, sawGameOver)
}
