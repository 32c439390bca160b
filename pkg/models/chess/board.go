package chess

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Board is a size x size grid of boxes. Edges are kept in the order they were drawn;
// the owner of a box is whoever drew its last edge.
type Board struct {
	size  BoardSize
	edges []OwnedEdge
	index map[Edge]int
}

func NewBoard(size int) (*Board, error) {
	if size < 0 || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", ErrBoardSize, size)
	}

	return &Board{
		size:  BoardSize(size),
		index: make(map[Edge]int),
	}, nil
}

func MustNewBoard(size int) *Board {
	b, err := NewBoard(size)
	if err != nil {
		panic(err)
	}
	return b
}

// Clone returns a copy that shares no state with b.
func (b *Board) Clone() *Board {
	return &Board{
		size:  b.size,
		edges: slices.Clone(b.edges),
		index: maps.Clone(b.index),
	}
}

func (b *Board) Size() BoardSize { return b.size }

// DotSize is the number of dots in a row or a column.
func (b *Board) DotSize() int { return int(b.size) + 1 }

func (b *Board) DotCount() int { return b.DotSize() * b.DotSize() }

func (b *Board) EdgeCount() int { return 2 * int(b.size) * b.DotSize() }

func (b *Board) BoxCount() int { return int(b.size) * int(b.size) }

// Len is the number of drawn edges.
func (b *Board) Len() int { return len(b.edges) }

func (b *Board) IsFull() bool { return len(b.edges) >= b.EdgeCount() }

func (b *Board) DotFits(d Dot) bool {
	return int(d.Row) < b.DotSize() && int(d.Col) < b.DotSize()
}

func (b *Board) EdgeFits(e Edge) bool {
	return b.DotFits(e.From) && b.DotFits(e.To)
}

func (b *Board) boxFits(box DotBox) bool {
	return box.UpperLeft.Row < b.size && box.UpperLeft.Col < b.size
}

// ValidateDraw checks e against the current state and returns it normalized.
func (b *Board) ValidateDraw(e Edge) (Edge, error) {
	switch {
	case !e.IsValid():
		return e, fmt.Errorf("%w: %v", ErrInvalidEdge, e)
	case !b.EdgeFits(e):
		return e, fmt.Errorf("%w: %v does not fit in board of size %d", ErrOutOfBounds, e, b.size)
	case b.IsDrawn(e):
		return e, fmt.Errorf("%w: %v", ErrAlreadyDrawn, e)
	}
	return e.Normalize(), nil
}

func (b *Board) Draw(owner PlayerID, e Edge) (Edge, error) {
	if !owner.Valid() {
		return e, fmt.Errorf("%w: %d", ErrUnknownPlayer, owner)
	}

	e, err := b.ValidateDraw(e)
	if err != nil {
		return e, err
	}

	b.push(owner, e)
	return e, nil
}

// DrawMany validates the whole batch before committing any of it.
func (b *Board) DrawMany(edges ...OwnedEdge) (int, error) {
	normalized := make([]Edge, len(edges))
	pending := make(map[Edge]struct{}, len(edges))
	for i, oe := range edges {
		if !oe.Owner.Valid() {
			return 0, fmt.Errorf("edge #%d: %w: %d", i, ErrUnknownPlayer, oe.Owner)
		}

		e, err := b.ValidateDraw(oe.Edge)
		if err != nil {
			return 0, fmt.Errorf("edge #%d: %w", i, err)
		}

		if _, c := pending[e]; c {
			return 0, fmt.Errorf("edge #%d: %w: %v repeated in batch", i, ErrAlreadyDrawn, oe.Edge)
		}

		pending[e] = struct{}{}
		normalized[i] = e
	}

	for i, e := range normalized {
		b.push(edges[i].Owner, e)
	}
	return len(edges), nil
}

func (b *Board) push(owner PlayerID, e Edge) {
	b.index[e] = len(b.edges)
	b.edges = append(b.edges, Own(owner, e))
}

func (b *Board) position(e Edge) (int, bool) {
	i, c := b.index[e.Normalize()]
	return i, c
}

func (b *Board) IsDrawn(e Edge) bool {
	_, c := b.position(e)
	return c
}

func (b *Board) IsFree(e Edge) bool {
	return !b.IsDrawn(e)
}

func (b *Board) EdgeOwner(e Edge) (PlayerID, bool) {
	i, c := b.position(e)
	if !c {
		return 0, false
	}
	return b.edges[i].Owner, true
}

// BoxOwner returns the player who drew the last of the box's four edges. It reports
// false while the box is incomplete or when corner is on the right or bottom border.
func (b *Board) BoxOwner(corner Dot) (PlayerID, bool) {
	box := DotBox{UpperLeft: corner}
	if !b.boxFits(box) {
		return 0, false
	}

	last := -1
	for _, e := range box.Edges() {
		i, c := b.position(e)
		if !c {
			return 0, false
		}
		last = max(last, i)
	}
	return b.edges[last].Owner, true
}

// EdgesInBox counts the drawn edges of box.
func (b *Board) EdgesInBox(box DotBox) (count int) {
	for _, e := range box.Edges() {
		if b.IsDrawn(e) {
			count++
		}
	}
	return
}

// AssociatedBoxes returns the one or two boxes touching e: left then right for a
// vertical edge, above then below for a horizontal one.
func (b *Board) AssociatedBoxes(e Edge) (boxes []DotBox) {
	if !e.IsValid() || !b.EdgeFits(e) {
		return
	}

	d := e.Normalize().From
	if e.IsHorizontal() {
		if d.Row > 0 {
			boxes = append(boxes, NewDotBox(d.Row-1, d.Col))
		}
		if d.Row < b.size {
			boxes = append(boxes, DotBox{UpperLeft: d})
		}
		return
	}

	if d.Col > 0 {
		boxes = append(boxes, NewDotBox(d.Row, d.Col-1))
	}
	if d.Col < b.size {
		boxes = append(boxes, DotBox{UpperLeft: d})
	}
	return
}

// ClaimableBoxes returns the boxes drawing e would complete.
func (b *Board) ClaimableBoxes(e Edge) (boxes []DotBox) {
	if b.IsDrawn(e) {
		return
	}

	for _, box := range b.AssociatedBoxes(e) {
		if b.EdgesInBox(box) == 3 {
			boxes = append(boxes, box)
		}
	}
	return
}

func (b *Board) WouldClaimBox(e Edge) bool {
	return len(b.ClaimableBoxes(e)) > 0
}

// OwnerToBoxes groups completed boxes by owner.
func (b *Board) OwnerToBoxes() map[PlayerID][]DotBox {
	owned := make(map[PlayerID][]DotBox)
	for box := range b.Boxes() {
		if owner, c := b.BoxOwner(box.UpperLeft); c {
			owned[owner] = append(owned[owner], box)
		}
	}
	return owned
}

func (b *Board) OwnedBoxesCount(id PlayerID) int {
	return len(b.OwnerToBoxes()[id])
}

func (b *Board) Winner() WinnerResult {
	if !b.IsFull() {
		return WinnerResult{Outcome: NoResult}
	}

	owned := b.OwnerToBoxes()
	best := -1
	var leaders []PlayerID
	for _, id := range PlayerIDs {
		switch n := len(owned[id]); {
		case n > best:
			best = n
			leaders = []PlayerID{id}
		case n == best:
			leaders = append(leaders, id)
		}
	}

	if len(leaders) == 1 {
		return NewWinner(leaders[0], best)
	}
	return NewTie(leaders, best)
}

// Dots yields every dot, left to right, top to bottom.
func (b *Board) Dots() iter.Seq[Dot] {
	n := b.DotSize()
	return func(yield func(Dot) bool) {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if !yield(NewDot(BoardSize(row), BoardSize(col))) {
					return
				}
			}
		}
	}
}

// Edges yields every edge once in Dots order: for each dot its rightward edge, then
// its downward edge. Edges are yielded normalized.
func (b *Board) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for d := range b.Dots() {
			if d.Col < b.size && !yield(NewEdge(d, d.Add(NewDot(0, 1)))) {
				return
			}
			if d.Row < b.size && !yield(NewEdge(d, d.Add(NewDot(1, 0)))) {
				return
			}
		}
	}
}

func (b *Board) Boxes() iter.Seq[DotBox] {
	return func(yield func(DotBox) bool) {
		for row := BoardSize(0); row < b.size; row++ {
			for col := BoardSize(0); col < b.size; col++ {
				if !yield(NewDotBox(row, col)) {
					return
				}
			}
		}
	}
}

// OwnedEdges yields drawn edges in draw order.
func (b *Board) OwnedEdges() iter.Seq2[int, OwnedEdge] {
	return slices.All(b.edges)
}

func (b *Board) FreeEdges() (freeEdges []Edge) {
	for e := range b.Edges() {
		if b.IsFree(e) {
			freeEdges = append(freeEdges, e)
		}
	}
	return
}

// FindEdges returns the drawn edges touching d, in up, right, down, left order.
func (b *Board) FindEdges(d Dot) (edges []Edge) {
	neighbours := make([]Dot, 0, 4)
	if d.Row > 0 {
		neighbours = append(neighbours, NewDot(d.Row-1, d.Col))
	}
	neighbours = append(neighbours, NewDot(d.Row, d.Col+1), NewDot(d.Row+1, d.Col))
	if d.Col > 0 {
		neighbours = append(neighbours, NewDot(d.Row, d.Col-1))
	}

	for _, n := range neighbours {
		if e := NewEdge(d, n); b.IsDrawn(e) {
			edges = append(edges, e.Normalize())
		}
	}
	return
}

// FindConnected returns the dots joined to d by a drawn edge.
func (b *Board) FindConnected(d Dot) (dots []Dot) {
	for _, e := range b.FindEdges(d) {
		if e.From == d {
			dots = append(dots, e.To)
		} else {
			dots = append(dots, e.From)
		}
	}
	return
}
