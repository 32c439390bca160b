package chess

import "slices"

// PlayerID identifies one of the two seats at the board.
type PlayerID int8

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

var PlayerIDs = [...]PlayerID{Player1, Player2}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return p
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "One"
	case Player2:
		return "Two"
	}
	return ""
}

// OwnedEdge is an edge tagged with the player who drew it.
type OwnedEdge struct {
	Owner PlayerID
	Edge  Edge
}

func Own(owner PlayerID, e Edge) OwnedEdge {
	return OwnedEdge{Owner: owner, Edge: e}
}

type Outcome int8

const (
	NoResult Outcome = iota
	Winner
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Winner:
		return "Winner"
	case Tie:
		return "Tie"
	}
	return "None"
}

// WinnerResult is derived from a full board. Players is sorted, so results compare
// with reflect.DeepEqual.
type WinnerResult struct {
	Outcome Outcome
	Players []PlayerID
	Boxes   int
}

func NewWinner(id PlayerID, boxes int) WinnerResult {
	return WinnerResult{Outcome: Winner, Players: []PlayerID{id}, Boxes: boxes}
}

func NewTie(ids []PlayerID, boxes int) WinnerResult {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return WinnerResult{Outcome: Tie, Players: sorted, Boxes: boxes}
}

func (w WinnerResult) Equal(o WinnerResult) bool {
	return w.Outcome == o.Outcome && w.Boxes == o.Boxes && slices.Equal(w.Players, o.Players)
}

// Winner returns the unique winner, ok is false for ties and unfinished boards.
func (w WinnerResult) Winner() (id PlayerID, ok bool) {
	if w.Outcome != Winner || len(w.Players) != 1 {
		return 0, false
	}
	return w.Players[0], true
}
