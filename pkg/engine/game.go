package engine

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HuXin0817/doots/pkg/models/chess"
	"github.com/HuXin0817/doots/pkg/models/message"
	"github.com/HuXin0817/doots/pkg/players"
	"github.com/HuXin0817/doots/pkg/render"
	"github.com/zeromicro/go-zero/core/logx"
)

const bannerWidth = 40

// Game drives two players over one board. Players only ever see copies of the
// board; the game's own board is the authority on legality.
type Game struct {
	uid        message.GameUid
	board      *chess.Board
	players    [2]players.Player
	out        io.Writer
	quiet      bool
	renderer   *render.Renderer
	transcript *Transcript
}

type Option func(*Game)

func WithOutput(w io.Writer) Option {
	return func(g *Game) {
		g.out = w
	}
}

// WithQuiet keeps the banner and the final board but skips per-turn output.
func WithQuiet(quiet bool) Option {
	return func(g *Game) {
		g.quiet = quiet
	}
}

func WithRenderer(r *render.Renderer) Option {
	return func(g *Game) {
		g.renderer = r
	}
}

func WithTranscript(t *Transcript) Option {
	return func(g *Game) {
		g.transcript = t
	}
}

func New(size int, seats [2]players.Player, options ...Option) (*Game, error) {
	if seats[0] == nil || seats[1] == nil {
		return nil, ErrMissingPlayer
	}

	board, err := chess.NewBoard(size)
	if err != nil {
		return nil, err
	}

	g := &Game{
		uid:      message.NewGameUid(),
		board:    board,
		players:  seats,
		out:      os.Stdout,
		renderer: render.New(false),
	}

	for _, option := range options {
		option(g)
	}

	return g, nil
}

func (g *Game) Uid() message.GameUid { return g.uid }

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board { return g.board.Clone() }

func (g *Game) Names() [2]string {
	return [2]string{g.players[0].Name(), g.players[1].Name()}
}

// Run plays until every edge is drawn. A completed box keeps the turn with the
// same player. Any player failure ends the game with the error.
func (g *Game) Run() (result chess.WinnerResult, err error) {
	fmt.Fprint(g.out, render.Frame(bannerWidth,
		"Doots & Booxes",
		fmt.Sprintf("Playing with %d squares (%dx%d dots)", g.board.BoxCount(), g.board.DotSize(), g.board.DotSize()),
	))

	seat, streak := 0, 0
	for turn := 0; !g.board.IsFull(); turn++ {
		id, player := chess.PlayerIDs[seat], g.players[seat]
		label := "Player " + g.renderer.Player(id, id.String())

		if !g.quiet {
			fmt.Fprintf(g.out, "\n\n%s\n\n", g.renderer.Board(g.board))
			if streak == 0 {
				fmt.Fprintf(g.out, "Turn #%d: %s\n", turn+1, label)
			} else {
				fmt.Fprintf(g.out, "Streak %d! %s\n", streak, label)
			}
		}

		before := g.board.OwnedBoxesCount(id)
		e, err := player.Play(g.board.Clone())
		if err != nil {
			return result, &PlayerError{ID: id, Name: player.Name(), Err: err}
		}

		drawn, err := g.board.Draw(id, e)
		if err != nil {
			logx.Errorf("game %s: player %v (%s) drew %v: %v", g.uid.Short(), id, player.Name(), e, err)
			return result, &IllegalMoveError{ID: id, Name: player.Name(), Edge: e, Err: err}
		}
		if !g.quiet {
			fmt.Fprintf(g.out, "%s drew: %v\n", label, drawn)
		}

		completed := g.board.OwnedBoxesCount(id) - before
		logx.Infow("move",
			logx.Field("game", g.uid),
			logx.Field("step", turn+1),
			logx.Field("player", player.Name()),
			logx.Field("edge", drawn.String()),
			logx.Field("completed", completed),
		)
		if g.transcript != nil {
			g.transcript.Record(message.NewMoveRecord(g.uid, turn+1, id, player.Name(), drawn, completed, g.board))
		}

		if completed > 0 {
			if !g.quiet {
				fmt.Fprintf(g.out, "%s finished a box!\n", label)
			}
			streak++
		} else {
			seat = (seat + 1) % len(g.players)
			streak = 0
		}
	}

	fmt.Fprintf(g.out, "\n\n%s\n\n", g.renderer.Board(g.board))

	result = g.board.Winner()
	summary := g.summary(result)
	fmt.Fprintln(g.out, render.Frame(0, "GAME OVER", summary))

	logx.Infow("game over",
		logx.Field("game", g.uid),
		logx.Field("outcome", result.Outcome.String()),
		logx.Field("boxes", result.Boxes),
	)
	if g.transcript != nil {
		g.transcript.Record(message.NewGameRecord(g.uid, g.Names(), g.board, result))
	}

	return result, nil
}

func (g *Game) summary(result chess.WinnerResult) string {
	switch result.Outcome {
	case chess.Winner:
		id, _ := result.Winner()
		return fmt.Sprintf("Player %v (%s) wins with %d boxes!", id, g.players[id-chess.Player1].Name(), result.Boxes)
	case chess.Tie:
		ids := make([]string, len(result.Players))
		for i, id := range result.Players {
			ids[i] = id.String()
		}
		return fmt.Sprintf("A tie between %s with %d boxes each.", strings.Join(ids, " and "), result.Boxes)
	}
	return "I think something went wrong..."
}
