package assess

import "github.com/HuXin0817/doots/pkg/models/chess"

const firstFamily = "First"

// First draws the first free edge in scan order. It is a baseline to measure the
// other players against.
type First struct {
	id chess.PlayerID
}

func NewFirst(id chess.PlayerID) *First {
	return &First{id: id}
}

func (f *First) Name() string { return name(firstFamily, f.id) }

func (f *First) Play(b *chess.Board) (chess.Edge, error) {
	for e := range b.Edges() {
		if b.IsFree(e) {
			return e, nil
		}
	}
	return chess.Edge{}, ErrNoFreeEdge
}
