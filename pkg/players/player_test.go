package players

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/HuXin0817/doots/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdge(t *testing.T) {
	tests := []struct {
		line string
		want chess.Edge
		ok   bool
	}{
		{line: "0 0 0 1", want: chess.E(0, 0, 0, 1), ok: true},
		{line: "(1, 2) -> (2, 2)", want: chess.E(1, 2, 2, 2), ok: true},
		{line: "  3,4 3,5 ", want: chess.E(3, 4, 3, 5), ok: true},
		{line: "0 0 0", ok: false},
		{line: "", ok: false},
		{line: "1 2 3 4 5", ok: false},
		{line: "0 0 0 70000", ok: false},
		{line: "-1 0 0 0", ok: false},
		{line: "0 0 1 -0", ok: false},
		{line: "(0, 0) - 1, 0", ok: false},
		{line: "(0,0)->(1,0)", want: chess.E(0, 0, 1, 0), ok: true},
	}

	for _, tt := range tests {
		got, err := ParseEdge(tt.line)
		if !tt.ok {
			assert.ErrorIs(t, err, errBadInput, "line %q", tt.line)
			continue
		}
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.want, got)
	}
}

func TestHoominRetriesUntilLegal(t *testing.T) {
	b := chess.MustNewBoard(2)
	_, err := b.Draw(chess.Player1, chess.E(0, 0, 0, 1))
	require.NoError(t, err)

	in := strings.NewReader("nonsense\n0 0 1 1\n0 1 0 0\n5 5 5 6\n1 1 2 1\n")
	var out bytes.Buffer
	h := NewHoomin(chess.Player2, in, &out)

	e, err := h.Play(b)
	require.NoError(t, err)
	assert.Equal(t, chess.E(1, 1, 2, 1), e)
	assert.Equal(t, 5, strings.Count(out.String(), "Draw an edge"))
	assert.Equal(t, 3, strings.Count(out.String(), "Try again."))
	assert.Contains(t, out.String(), "already drawn")
	assert.Equal(t, "Hoomin Two", h.Name())
}

func TestHoominEOF(t *testing.T) {
	h := NewHoomin(chess.Player1, strings.NewReader("9 9 9\n"), io.Discard)
	_, err := h.Play(chess.MustNewBoard(2))
	require.ErrorIs(t, err, io.EOF)
}

func TestChoose(t *testing.T) {
	ps, err := Choose(KindDoot, KindBoox, Options{Input: strings.NewReader(""), Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "Doot One", ps[0].Name())
	assert.Equal(t, "Boox Two", ps[1].Name())

	ps, err = Choose(KindHoomin, KindRollout, Options{Input: strings.NewReader(""), Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "Hoomin One", ps[0].Name())
	assert.Equal(t, "Rollout Two", ps[1].Name())

	ps, err = Choose(KindFirst, KindDoot, Options{})
	require.NoError(t, err)
	assert.Equal(t, "First One", ps[0].Name())

	_, err = Choose(KindDoot, "sleepy", Options{})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestChooseSharesInput(t *testing.T) {
	ps, err := Choose(KindHoomin, KindHoomin, Options{Input: strings.NewReader("0 0 0 1\n0 0 1 0\n"), Output: io.Discard})
	require.NoError(t, err)

	b := chess.MustNewBoard(1)
	e1, err := ps[0].Play(b)
	require.NoError(t, err)
	e2, err := ps[1].Play(b)
	require.NoError(t, err)

	assert.Equal(t, chess.E(0, 0, 0, 1), e1)
	assert.Equal(t, chess.E(0, 0, 1, 0), e2)
}
