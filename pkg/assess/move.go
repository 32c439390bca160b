package assess

import (
	"errors"

	"github.com/HuXin0817/doots/pkg/models/chess"
)

// ErrNoFreeEdge is returned when a player is asked to move on a full board.
var ErrNoFreeEdge = errors.New("no free edge left")

type Move struct {
	Board *chess.Board
	Edge  chess.Edge
}

func (m Move) Score() int {
	return len(m.Board.ClaimableBoxes(m.Edge))
}

func (m Move) WillChangeTurn() bool {
	return m.Score() == 0
}

func name(family string, id chess.PlayerID) string {
	return family + " " + id.String()
}
