package message

import "github.com/google/uuid"

// GameUid identifies one bot session across the Redis stream and the
// Mongo collections.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}
