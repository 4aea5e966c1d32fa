package ws

import (
	"blockade/internal/game"
	"blockade/internal/room"
)

// RoomManager is what the hub needs from the room layer to act on incoming
// frames.
type RoomManager interface {
	Get(code string) (*room.Room, bool)
	ApplyTurn(r *room.Room, playerID string, t game.Turn) error
	BotTurn(r *room.Room, botID string) (game.Turn, error)
}
