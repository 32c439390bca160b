package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/HuXin0817/doots/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

const (
	cellWidth = 3
	Dot       = '·'
	LineH     = '─'
	LineV     = '│'
)

const (
	up = 1 << iota
	right
	down
	left
)

var glyphs = [16]rune{
	0:                        Dot,
	up:                       '╵',
	right:                    '╶',
	down:                     '╷',
	left:                     '╴',
	up | down:                '│',
	right | left:             '─',
	right | down:             '┌',
	down | left:              '┐',
	up | right:               '└',
	up | left:                '┘',
	up | right | down:        '├',
	right | down | left:      '┬',
	up | down | left:         '┤',
	up | right | left:        '┴',
	up | right | down | left: '┼',
}

type Renderer struct {
	au aurora.Aurora
}

func New(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors)}
}

// Player colours a player's label the way the board shows it.
func (r *Renderer) Player(id chess.PlayerID, s string) string {
	switch id {
	case chess.Player1:
		return r.au.Blue(s).String()
	case chess.Player2:
		return r.au.Red(s).String()
	}
	return s
}

// Glyph picks the box-drawing character for d from its drawn connections.
func Glyph(b *chess.Board, d chess.Dot) rune {
	mask := 0
	for _, n := range b.FindConnected(d) {
		switch {
		case n.Row < d.Row:
			mask |= up
		case n.Col > d.Col:
			mask |= right
		case n.Row > d.Row:
			mask |= down
		case n.Col < d.Col:
			mask |= left
		}
	}
	return glyphs[mask]
}

// Board draws the grid with row and column guides. Completed boxes carry their
// owner's number.
func (r *Renderer) Board(b *chess.Board) string {
	n := b.DotSize()
	grid := make([]string, 0, 2*n)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", cellWidth))
	for col := 0; col < n; col++ {
		sb.WriteString(PadEnd(strconv.Itoa(col), " ", cellWidth))
	}
	grid = append(grid, strings.TrimRight(sb.String(), " "))

	for row := 0; row < n; row++ {
		var dots, fill strings.Builder
		dots.WriteString(PadOut(strconv.Itoa(row), " ", cellWidth))
		fill.WriteString(strings.Repeat(" ", cellWidth))

		for col := 0; col < n; col++ {
			d := chess.NewDot(chess.BoardSize(row), chess.BoardSize(col))
			dots.WriteRune(Glyph(b, d))
			if col < n-1 {
				if b.IsDrawn(chess.NewEdge(d, d.Add(chess.NewDot(0, 1)))) {
					dots.WriteString(strings.Repeat(string(LineH), cellWidth-1))
				} else {
					dots.WriteString(strings.Repeat(" ", cellWidth-1))
				}
			}

			if row == n-1 {
				continue
			}
			if b.IsDrawn(chess.NewEdge(d, d.Add(chess.NewDot(1, 0)))) {
				fill.WriteRune(LineV)
			} else {
				fill.WriteByte(' ')
			}
			if col < n-1 {
				fill.WriteString(r.boxLabel(b, d))
			}
		}

		grid = append(grid, strings.TrimRight(dots.String(), " "))
		if row < n-1 {
			grid = append(grid, strings.TrimRight(fill.String(), " "))
		}
	}

	return strings.Join(grid, "\n")
}

func (r *Renderer) boxLabel(b *chess.Board, corner chess.Dot) string {
	owner, ok := b.BoxOwner(corner)
	if !ok {
		return strings.Repeat(" ", cellWidth-1)
	}
	label := strconv.Itoa(int(owner))
	return r.Player(owner, label) + strings.Repeat(" ", cellWidth-1-len(label))
}

// Frame centres lines inside a bordered box at least width runes wide.
func Frame(width int, lines ...string) string {
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	rule := "· " + strings.Repeat(string(LineH), width) + " ·"
	framed := []string{rule}
	for _, l := range lines {
		framed = append(framed, "│ "+PadOut(l, " ", width)+" │")
	}
	framed = append(framed, rule)
	return strings.Join(framed, "\n")
}

// PadEnd extends s to width runes by repeating fill.
func PadEnd(s, fill string, width int) string {
	n := utf8.RuneCountInString(s)
	if width <= n {
		return s
	}

	fillRunes := []rune(fill)
	if len(fillRunes) == 0 {
		fillRunes = []rune{' '}
	}

	var sb strings.Builder
	sb.WriteString(s)
	for i := 0; i < width-n; i++ {
		sb.WriteRune(fillRunes[i%len(fillRunes)])
	}
	return sb.String()
}

// PadOut centres s in width runes, putting the odd rune on the left.
func PadOut(s, fill string, width int) string {
	n := utf8.RuneCountInString(s)
	if width <= n {
		return s
	}

	fillRunes := []rune(fill)
	if len(fillRunes) == 0 {
		fillRunes = []rune{' '}
	}

	var l, r strings.Builder
	for i := 0; i < width-n; i++ {
		c := fillRunes[i%len(fillRunes)]
		if i%2 == 0 {
			l.WriteRune(c)
		} else {
			r.WriteRune(c)
		}
	}
	return l.String() + s + r.String()
}
