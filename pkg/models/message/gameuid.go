package message

import "github.com/google/uuid"

// GameUid tags every record written for one game.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func (g GameUid) Short() string {
	if len(g) < 8 {
		return string(g)
	}
	return string(g[:8])
}
