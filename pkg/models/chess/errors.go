package chess

import "errors"

var (
	ErrInvalidEdge   = errors.New("invalid edge")
	ErrOutOfBounds   = errors.New("edge out of bounds")
	ErrAlreadyDrawn  = errors.New("edge already drawn")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrBoardSize     = errors.New("board size out of range")
)
