package message

import (
	"time"

	"github.com/HuXin0817/doots/pkg/models/chess"
)

// MoveRecord is one committed edge.
type MoveRecord struct {
	Game      GameUid        `json:"game" yaml:"game"`
	Time      TimeStamp      `json:"time" yaml:"time"`
	Step      int            `json:"step" yaml:"step"`
	Player    chess.PlayerID `json:"player" yaml:"player"`
	Name      string         `json:"name" yaml:"name"`
	Edge      chess.Edge     `json:"edge" yaml:"edge"`
	Completed int            `json:"completed" yaml:"completed"`
	Player1   int            `json:"player1" yaml:"player1"`
	Player2   int            `json:"player2" yaml:"player2"`
}

func NewMoveRecord(game GameUid, step int, player chess.PlayerID, name string, e chess.Edge, completed int, b *chess.Board) MoveRecord {
	return MoveRecord{
		Game:      game,
		Time:      NewTimeStamp(time.Now()),
		Step:      step,
		Player:    player,
		Name:      name,
		Edge:      e,
		Completed: completed,
		Player1:   b.OwnedBoxesCount(chess.Player1),
		Player2:   b.OwnedBoxesCount(chess.Player2),
	}
}

// GameRecord closes a transcript with the outcome.
type GameRecord struct {
	Game      GameUid          `json:"game" yaml:"game"`
	Time      TimeStamp        `json:"time" yaml:"time"`
	BoardSize int              `json:"board_size" yaml:"board_size"`
	Players   [2]string        `json:"players" yaml:"players"`
	Steps     int              `json:"steps" yaml:"steps"`
	Outcome   string           `json:"outcome" yaml:"outcome"`
	Winners   []chess.PlayerID `json:"winners,omitempty" yaml:"winners,omitempty"`
	Boxes     int              `json:"boxes" yaml:"boxes"`
}

func NewGameRecord(game GameUid, players [2]string, b *chess.Board, result chess.WinnerResult) GameRecord {
	return GameRecord{
		Game:      game,
		Time:      NewTimeStamp(time.Now()),
		BoardSize: int(b.Size()),
		Players:   players,
		Steps:     b.Len(),
		Outcome:   result.Outcome.String(),
		Winners:   result.Players,
		Boxes:     result.Boxes,
	}
}
