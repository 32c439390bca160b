package players

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/HuXin0817/doots/pkg/models/chess"
)

var (
	errBadInput = errors.New("please enter four numbers: row col row col")
	negative    = regexp.MustCompile(`-\s*\d`)
)

// Hoomin reads moves from a terminal until one is legal on the board.
type Hoomin struct {
	id      chess.PlayerID
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHoomin(id chess.PlayerID, in io.Reader, out io.Writer) *Hoomin {
	return &Hoomin{id: id, scanner: bufio.NewScanner(in), out: out}
}

func (h *Hoomin) Name() string { return "Hoomin " + h.id.String() }

func (h *Hoomin) Play(b *chess.Board) (chess.Edge, error) {
	for {
		fmt.Fprintln(h.out, "Draw an edge (row, col) -> (row, col):")
		e, err := h.readEdge()
		if errors.Is(err, errBadInput) {
			fmt.Fprintf(h.out, "! %v !\n", err)
			continue
		}
		if err != nil {
			return e, err
		}

		if _, err := b.ValidateDraw(e); err != nil {
			fmt.Fprintln(h.out, err)
			fmt.Fprintln(h.out, "Try again.")
			continue
		}
		return e, nil
	}
}

func (h *Hoomin) readEdge() (chess.Edge, error) {
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return chess.Edge{}, err
		}
		return chess.Edge{}, io.EOF
	}
	return ParseEdge(h.scanner.Text())
}

// ParseEdge reads four coordinates from a line; anything that is not a digit
// separates them, so "(0, 1) -> (1, 1)" and "0 1 1 1" are the same edge. A minus
// sign in front of a number is refused rather than dropped.
func ParseEdge(line string) (chess.Edge, error) {
	if negative.MatchString(line) {
		return chess.Edge{}, fmt.Errorf("%w: coordinates cannot be negative", errBadInput)
	}

	fields := strings.FieldsFunc(line, func(r rune) bool { return !unicode.IsDigit(r) })
	if len(fields) != 4 {
		return chess.Edge{}, errBadInput
	}

	var n [4]chess.BoardSize
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return chess.Edge{}, fmt.Errorf("%w: %v", errBadInput, err)
		}
		n[i] = chess.BoardSize(v)
	}
	return chess.E(n[0], n[1], n[2], n[3]), nil
}
