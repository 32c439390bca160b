package players

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/HuXin0817/doots/pkg/assess"
	"github.com/HuXin0817/doots/pkg/models/chess"
)

// Player picks one edge. The board it receives is a private copy.
type Player interface {
	Name() string
	Play(board *chess.Board) (chess.Edge, error)
}

const (
	KindHoomin  = "hoomin"
	KindDoot    = "doot"
	KindBoox    = "boox"
	KindRollout = "rollout"
	KindFirst   = "first"
)

var Kinds = []string{KindHoomin, KindDoot, KindBoox, KindRollout, KindFirst}

var ErrUnknownKind = errors.New("unknown player kind")

var (
	_ Player = (*Hoomin)(nil)
	_ Player = (*assess.Doot)(nil)
	_ Player = (*assess.Boox)(nil)
	_ Player = (*assess.Rollout)(nil)
	_ Player = (*assess.First)(nil)
)

type Options struct {
	Input   io.Reader
	Output  io.Writer
	Rollout []assess.RolloutOption
}

// Choose builds the players for seats one and two. Interactive players share one
// input scanner.
func Choose(one, two string, opts Options) (players [2]Player, err error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	scanner := bufio.NewScanner(opts.Input)
	for i, kind := range []string{one, two} {
		id := chess.PlayerIDs[i]
		switch kind {
		case KindHoomin:
			players[i] = &Hoomin{id: id, scanner: scanner, out: opts.Output}
		case KindDoot:
			players[i] = assess.NewDoot(id)
		case KindBoox:
			players[i] = assess.NewBoox(id)
		case KindRollout:
			players[i] = assess.NewRollout(id, opts.Rollout...)
		case KindFirst:
			players[i] = assess.NewFirst(id)
		default:
			return players, fmt.Errorf("%w: %q for player %v", ErrUnknownKind, kind, id)
		}
	}
	return players, nil
}
