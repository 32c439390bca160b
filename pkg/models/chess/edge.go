package chess

import "fmt"

// Edge connects two dots. Equality is order-insensitive, see Equal.
type Edge struct {
	From Dot `json:"from" yaml:"from"`
	To   Dot `json:"to" yaml:"to"`
}

func NewEdge(from, to Dot) Edge {
	return Edge{From: from, To: to}
}

// E builds an edge from (row, col) pairs.
func E(r1, c1, r2, c2 BoardSize) Edge {
	return Edge{From: NewDot(r1, c1), To: NewDot(r2, c2)}
}

// IsValid reports whether the two dots are exactly one grid step apart.
func (e Edge) IsValid() bool {
	diff := e.To.Sub(e.From)
	return int(diff.Row)+int(diff.Col) == 1
}

func (e Edge) HasDot(d Dot) bool {
	return e.From == d || e.To == d
}

func (e Edge) Equal(o Edge) bool {
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Normalize puts the row-major smaller dot first, so equal edges compare with ==.
func (e Edge) Normalize() Edge {
	if e.To.Less(e.From) {
		return e.Reverse()
	}
	return e
}

func (e Edge) IsHorizontal() bool {
	return e.From.Row == e.To.Row
}

func (e Edge) String() string {
	return fmt.Sprintf("%v -> %v", e.From, e.To)
}
