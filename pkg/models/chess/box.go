package chess

// DotBox is a unit square keyed by its upper-left dot.
type DotBox struct {
	UpperLeft Dot `json:"upperLeft" yaml:"upperLeft"`
}

func NewDotBox(row, col BoardSize) DotBox {
	return DotBox{UpperLeft: NewDot(row, col)}
}

func (b DotBox) UpperRight() Dot { return b.UpperLeft.Add(NewDot(0, 1)) }

func (b DotBox) LowerRight() Dot { return b.UpperLeft.Add(NewDot(1, 1)) }

func (b DotBox) LowerLeft() Dot { return b.UpperLeft.Add(NewDot(1, 0)) }

func (b DotBox) Dots() [4]Dot {
	return [...]Dot{
		b.UpperLeft,
		b.UpperRight(),
		b.LowerRight(),
		b.LowerLeft(),
	}
}

func (b DotBox) Top() Edge { return NewEdge(b.UpperLeft, b.UpperRight()) }

func (b DotBox) Right() Edge { return NewEdge(b.UpperRight(), b.LowerRight()) }

func (b DotBox) Bottom() Edge { return NewEdge(b.LowerLeft(), b.LowerRight()) }

func (b DotBox) Left() Edge { return NewEdge(b.UpperLeft, b.LowerLeft()) }

// Edges returns the boundary in the order top, right, bottom, left.
func (b DotBox) Edges() [4]Edge {
	return [...]Edge{
		b.Top(),
		b.Right(),
		b.Bottom(),
		b.Left(),
	}
}

func (b DotBox) String() string {
	return "box" + b.UpperLeft.String()
}
