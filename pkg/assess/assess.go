package assess

import (
	"slices"

	"github.com/HuXin0817/doots/pkg/models/chess"
)

const (
	BaseScore   = 1
	ClaimBonus  = 2
	OpenPenalty = 1
	dootFamily  = "Doot"
)

// Doot takes a box whenever it can and otherwise avoids leaving a three-sided box
// behind. Among equal scores the last edge in scan order wins.
type Doot struct {
	id chess.PlayerID
}

func NewDoot(id chess.PlayerID) *Doot {
	return &Doot{id: id}
}

func (d *Doot) Name() string { return name(dootFamily, d.id) }

func (d *Doot) Play(b *chess.Board) (chess.Edge, error) {
	return BestEdge(b)
}

// BestEdge scores every free edge with Assess and returns the last maximum.
func BestEdge(b *chess.Board) (bestEdge chess.Edge, err error) {
	bestScore, found := 0, false
	for e := range b.Edges() {
		if b.IsDrawn(e) {
			continue
		}

		if score := Assess(b, e); !found || score >= bestScore {
			bestEdge, bestScore, found = e, score, true
		}
	}

	if !found {
		return bestEdge, ErrNoFreeEdge
	}
	return bestEdge, nil
}

// Assess scores a free edge: base 1, +2 when it completes a box, -1 when the board
// after it offers the next player a box.
func Assess(b *chess.Board, e chess.Edge) (score int) {
	score = BaseScore
	if b.WouldClaimBox(e) {
		score += ClaimBonus
	}
	if OpensBox(b, e) {
		score -= OpenPenalty
	}
	return
}

// OpensBox reports whether some free edge would complete a box once e is drawn,
// i.e. whether any box would be left with exactly three sides. e must be free.
func OpensBox(b *chess.Board, e chess.Edge) bool {
	touched := b.AssociatedBoxes(e)
	for box := range b.Boxes() {
		count := b.EdgesInBox(box)
		if slices.Contains(touched, box) {
			count++
		}
		if count == 3 {
			return true
		}
	}
	return false
}
