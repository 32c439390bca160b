package engine

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/HuXin0817/doots/pkg/assess"
	"github.com/HuXin0817/doots/pkg/models/chess"
	"github.com/HuXin0817/doots/pkg/models/message"
	"github.com/HuXin0817/doots/pkg/players"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

// scripted plays its edges in order, then falls back to the scoring heuristic.
type scripted struct {
	name  string
	edges []chess.Edge
}

func (s *scripted) Name() string { return s.name }

func (s *scripted) Play(b *chess.Board) (chess.Edge, error) {
	if len(s.edges) > 0 {
		e := s.edges[0]
		s.edges = s.edges[1:]
		return e, nil
	}
	return assess.BestEdge(b)
}

type failing struct{ err error }

func (f failing) Name() string { return "Failing" }

func (f failing) Play(*chess.Board) (chess.Edge, error) { return chess.Edge{}, f.err }

type mutating struct{}

func (mutating) Name() string { return "Mutating" }

func (mutating) Play(b *chess.Board) (chess.Edge, error) {
	for _, e := range b.FreeEdges() {
		_, _ = b.Draw(chess.Player1, e)
	}
	return chess.Edge{}, errors.New("gave up")
}

func seats(one, two players.Player) [2]players.Player {
	return [2]players.Player{one, two}
}

func TestDootAgainstBoox(t *testing.T) {
	var out bytes.Buffer
	g, err := New(3, seats(assess.NewDoot(chess.Player1), assess.NewBoox(chess.Player2)), WithOutput(&out), WithQuiet(true))
	require.NoError(t, err)

	result, err := g.Run()
	require.NoError(t, err)

	b := g.Board()
	assert.True(t, b.IsFull())
	assert.Equal(t, 9, b.OwnedBoxesCount(chess.Player1)+b.OwnedBoxesCount(chess.Player2))
	assert.NotEqual(t, chess.NoResult, result.Outcome)
	assert.True(t, result.Equal(b.Winner()))

	text := out.String()
	assert.Contains(t, text, "Doots & Booxes")
	assert.Contains(t, text, "Playing with 9 squares (4x4 dots)")
	assert.Contains(t, text, "GAME OVER")
	assert.NotContains(t, text, "Turn #")
}

func TestDeterministicHeuristicGame(t *testing.T) {
	play := func() chess.WinnerResult {
		g, err := New(4, seats(assess.NewDoot(chess.Player1), assess.NewDoot(chess.Player2)), WithOutput(io.Discard), WithQuiet(true))
		require.NoError(t, err)
		result, err := g.Run()
		require.NoError(t, err)
		return result
	}
	assert.True(t, play().Equal(play()))
}

func TestStreakKeepsTurn(t *testing.T) {
	one := &scripted{name: "Script One", edges: []chess.Edge{
		chess.E(0, 0, 0, 1),
		chess.E(1, 0, 1, 1),
	}}
	two := &scripted{name: "Script Two", edges: []chess.Edge{
		chess.E(0, 0, 1, 0),
		chess.E(0, 1, 1, 1),
		chess.E(0, 1, 0, 2),
	}}

	var out bytes.Buffer
	g, err := New(2, seats(one, two), WithOutput(&out))
	require.NoError(t, err)
	_, err = g.Run()
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Turn #1: Player One")
	assert.Contains(t, text, "Turn #4: Player Two")
	assert.Contains(t, text, "Player Two drew: (0, 1) -> (1, 1)")
	assert.Contains(t, text, "Player Two finished a box!")
	assert.Contains(t, text, "Streak 1! Player Two")
	assert.NotContains(t, text, "Turn #5:")
}

func TestIllegalMoveEndsGame(t *testing.T) {
	cheat := &scripted{name: "Cheat Two", edges: []chess.Edge{chess.E(0, 0, 0, 1)}}
	one := &scripted{name: "Script One", edges: []chess.Edge{chess.E(0, 0, 0, 1)}}

	g, err := New(2, seats(one, cheat), WithOutput(io.Discard))
	require.NoError(t, err)

	_, err = g.Run()
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, chess.Player2, illegal.ID)
	assert.Equal(t, "Cheat Two", illegal.Name)
	assert.Equal(t, chess.E(0, 0, 0, 1), illegal.Edge)
	assert.ErrorIs(t, err, chess.ErrAlreadyDrawn)
	assert.Contains(t, err.Error(), "Cheat Two")
	assert.Equal(t, 1, g.Board().Len())
}

func TestOutOfBoundsMove(t *testing.T) {
	far := &scripted{name: "Far One", edges: []chess.Edge{chess.E(5, 5, 5, 6)}}
	g, err := New(2, seats(far, assess.NewDoot(chess.Player2)), WithOutput(io.Discard))
	require.NoError(t, err)

	_, err = g.Run()
	assert.ErrorIs(t, err, chess.ErrOutOfBounds)
}

func TestPlayerErrorEndsGame(t *testing.T) {
	g, err := New(1, seats(failing{err: io.EOF}, assess.NewDoot(chess.Player2)), WithOutput(io.Discard))
	require.NoError(t, err)

	_, err = g.Run()
	var playerErr *PlayerError
	require.ErrorAs(t, err, &playerErr)
	assert.Equal(t, chess.Player1, playerErr.ID)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPlayersCannotTouchTheBoard(t *testing.T) {
	g, err := New(2, seats(mutating{}, assess.NewDoot(chess.Player2)), WithOutput(io.Discard))
	require.NoError(t, err)

	_, err = g.Run()
	require.Error(t, err)
	assert.Zero(t, g.Board().Len())
}

func TestNewRejects(t *testing.T) {
	_, err := New(0, seats(assess.NewDoot(chess.Player1), nil))
	assert.ErrorIs(t, err, ErrMissingPlayer)

	_, err = New(-1, seats(assess.NewDoot(chess.Player1), assess.NewDoot(chess.Player2)))
	assert.ErrorIs(t, err, chess.ErrBoardSize)
}

func TestGameOverSummary(t *testing.T) {
	g, err := New(1, seats(assess.NewDoot(chess.Player1), assess.NewDoot(chess.Player2)))
	require.NoError(t, err)

	assert.Equal(t, "Player Two (Doot Two) wins with 3 boxes!", g.summary(chess.NewWinner(chess.Player2, 3)))
	assert.Equal(t, "A tie between One and Two with 2 boxes each.", g.summary(chess.NewTie([]chess.PlayerID{chess.Player2, chess.Player1}, 2)))
	assert.Equal(t, "I think something went wrong...", g.summary(chess.WinnerResult{}))
}

func TestTranscript(t *testing.T) {
	var buf bytes.Buffer
	tr, err := NewTranscript(&buf, message.FormatJSON, time.Hour)
	require.NoError(t, err)

	g, err := New(2, seats(assess.NewDoot(chess.Player1), assess.NewBoox(chess.Player2)), WithOutput(io.Discard), WithQuiet(true), WithTranscript(tr))
	require.NoError(t, err)
	result, err := g.Run()
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 12+1)

	var first message.MoveRecord
	require.NoError(t, sonic.UnmarshalString(lines[0], &first))
	assert.Equal(t, g.Uid(), first.Game)
	assert.Equal(t, 1, first.Step)
	assert.Equal(t, chess.Player1, first.Player)
	assert.Equal(t, "Doot One", first.Name)

	var summary message.GameRecord
	require.NoError(t, sonic.UnmarshalString(lines[len(lines)-1], &summary))
	assert.Equal(t, g.Names(), summary.Players)
	assert.Equal(t, 12, summary.Steps)
	assert.Equal(t, result.Outcome.String(), summary.Outcome)
	assert.Equal(t, result.Boxes, summary.Boxes)
}

func TestOpenTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	tr, err := OpenTranscript(path, message.FormatYAML, time.Millisecond)
	require.NoError(t, err)

	g, err := New(1, seats(assess.NewDoot(chess.Player1), assess.NewDoot(chess.Player2)), WithOutput(io.Discard), WithQuiet(true), WithTranscript(tr))
	require.NoError(t, err)
	_, err = g.Run()
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "step:"))
	assert.Contains(t, string(data), "outcome: Winner")

	_, err = OpenTranscript(filepath.Join(t.TempDir(), "x.txt"), "xml", time.Second)
	assert.ErrorIs(t, err, message.ErrUnknownFormat)
}
