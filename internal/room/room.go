package room

import (
	"time"

	"blockade/internal/config"
	"blockade/internal/game"
)

// Player is a seat in a room: a human or the bot, bound to one side for the
// whole game.
type Player struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	IsBot bool        `json:"isBot"`
	Side  game.Player `json:"side"`
}

// Room is one game instance: the authoritative state plus the seats and the
// heuristic weights fixed when the room was created.
type Room struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	State     game.State     `json:"state"`
	Players   []Player       `json:"players"`
	Weights   config.Weights `json:"weights"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PlayerBySide returns the seat controlling side s, if taken.
func (r *Room) PlayerBySide(s game.Player) (*Player, bool) {
	for i := range r.Players {
		if r.Players[i].Side == s {
			return &r.Players[i], true
		}
	}
	return nil, false
}

// CurrentPlayer returns the seat whose turn it is.
func (r *Room) CurrentPlayer() (*Player, bool) {
	return r.PlayerBySide(r.State.Mover)
}

// Store persists rooms between requests.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}
