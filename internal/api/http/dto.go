package http

import (
	"blockade/internal/config"
	"blockade/internal/game"
)

// CreateRoomRequest represents the payload for /create-room. Weights, when
// present, fix the room's heuristic coefficients at creation time.
type CreateRoomRequest struct {
	PlayerName string          `json:"playerName"`
	Weights    *config.Weights `json:"weights,omitempty"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// PlayRequest seats the bot on the open side of a room.
type PlayRequest struct {
	RoomCode string `json:"roomCode"`
}

// TurnRequest represents a player's complete turn: token step plus sealed cell.
type TurnRequest struct {
	RoomCode string     `json:"roomCode"`
	PlayerID string     `json:"playerId"`
	Dest     game.Coord `json:"dest"`
	Obstacle game.Coord `json:"obstacle"`
}

// BotTurnRequest asks the seated bot to play its turn.
type BotTurnRequest struct {
	RoomCode string `json:"roomCode"`
	BotID    string `json:"botId"`
}
