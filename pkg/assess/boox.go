package assess

import (
	"slices"

	"github.com/HuXin0817/doots/pkg/models/chess"
)

const booxFamily = "Boox"

// Boox answers near the opponent's latest edges: it looks at the boxes around them,
// newest first, and prefers a free side that completes one.
type Boox struct {
	id chess.PlayerID
}

func NewBoox(id chess.PlayerID) *Boox {
	return &Boox{id: id}
}

func (x *Boox) Name() string { return name(booxFamily, x.id) }

func (x *Boox) Play(b *chess.Board) (chess.Edge, error) {
	var opponentEdges []chess.Edge
	for _, oe := range b.OwnedEdges() {
		if oe.Owner != x.id {
			opponentEdges = append(opponentEdges, oe.Edge)
		}
	}
	slices.Reverse(opponentEdges)

	var claimers, others []chess.Edge
	for _, oe := range opponentEdges {
		for _, box := range b.AssociatedBoxes(oe) {
			for _, e := range box.Edges() {
				if b.IsDrawn(e) {
					continue
				}
				if b.WouldClaimBox(e) {
					claimers = append(claimers, e)
				} else {
					others = append(others, e)
				}
			}
		}
	}

	if len(claimers) > 0 {
		return claimers[0], nil
	}
	if len(others) > 0 {
		return others[0], nil
	}

	for e := range b.Edges() {
		if b.IsFree(e) {
			return e, nil
		}
	}
	return chess.Edge{}, ErrNoFreeEdge
}
