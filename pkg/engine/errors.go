package engine

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/doots/pkg/models/chess"
)

var ErrMissingPlayer = errors.New("both seats need a player")

// IllegalMoveError ends a game: the player offered an edge the board refused.
type IllegalMoveError struct {
	ID   chess.PlayerID
	Name string
	Edge chess.Edge
	Err  error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("player %v (%s) attempted to draw an invalid edge %v: %v", e.ID, e.Name, e.Edge, e.Err)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }

// PlayerError wraps a failure returned by a player instead of an edge.
type PlayerError struct {
	ID   chess.PlayerID
	Name string
	Err  error
}

func (e *PlayerError) Error() string {
	return fmt.Sprintf("player %v (%s): %v", e.ID, e.Name, e.Err)
}

func (e *PlayerError) Unwrap() error { return e.Err }
