package room

// Broadcaster fans an event out to everyone watching a room.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}
