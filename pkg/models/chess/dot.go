package chess

import (
	"cmp"
	"fmt"
	"math"
)

// BoardSize is the coordinate type of the grid.
type BoardSize = uint16

// MaxBoardSize is the largest size whose dot coordinates still fit a BoardSize.
const MaxBoardSize = math.MaxUint16 - 1

type Dot struct {
	Row BoardSize `json:"row" yaml:"row"`
	Col BoardSize `json:"col" yaml:"col"`
}

func NewDot(row, col BoardSize) Dot {
	return Dot{Row: row, Col: col}
}

func (d Dot) Add(o Dot) Dot {
	return Dot{Row: d.Row + o.Row, Col: d.Col + o.Col}
}

// Sub returns the component-wise absolute difference.
func (d Dot) Sub(o Dot) Dot {
	return Dot{Row: absDiff(d.Row, o.Row), Col: absDiff(d.Col, o.Col)}
}

// Compare orders dots row-major.
func (d Dot) Compare(o Dot) int {
	if c := cmp.Compare(d.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(d.Col, o.Col)
}

func (d Dot) Less(o Dot) bool {
	return d.Compare(o) < 0
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.Row, d.Col)
}

func absDiff(a, b BoardSize) BoardSize {
	if a > b {
		return a - b
	}
	return b - a
}
