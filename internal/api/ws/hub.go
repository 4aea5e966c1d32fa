package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"blockade/internal/game"
)

// Hub tracks the WebSocket connections watching each room and relays turns
// between them and the room manager.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
	log         zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
		log:   log,
	}
}

// SetManager wires the room manager in after construction; the manager also
// holds the hub as its broadcaster, so one side has to be set late.
func (h *Hub) SetManager(rm RoomManager) {
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // allow all origins
	},
}

type frame struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	h.log.Debug().Str("room", roomCode).Msg("websocket connected")

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg frame
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Debug().Err(err).Str("room", roomCode).Msg("websocket closed")
			break
		}

		switch msg.Action {
		case "human_turn":
			h.handleHumanTurn(roomCode, msg.Data)
		case "bot_turn":
			h.handleBotTurn(roomCode)
		default:
			h.log.Warn().Str("action", msg.Action).Msg("unknown websocket action")
		}
	}
}

// Broadcast implements room.Broadcaster.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			h.log.Warn().Err(err).Msg("dropping websocket client")
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) handleHumanTurn(roomCode string, data json.RawMessage) {
	var payload struct {
		PlayerID string    `json:"player_id"`
		Turn     game.Turn `json:"turn"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.log.Warn().Err(err).Msg("invalid turn payload")
		return
	}

	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		h.log.Warn().Str("room", roomCode).Msg("room not found")
		return
	}
	if err := h.roomManager.ApplyTurn(rm, payload.PlayerID, payload.Turn); err != nil {
		h.log.Warn().Err(err).Str("room", roomCode).Msg("turn rejected")
		return
	}

	// If the bot is up next, let it answer right away.
	if cp, ok := rm.CurrentPlayer(); ok && cp.IsBot && rm.State.Status == game.InProgress {
		botID := cp.ID
		go func() {
			if _, err := h.roomManager.BotTurn(rm, botID); err != nil {
				h.log.Warn().Err(err).Str("room", roomCode).Msg("bot turn failed")
			}
		}()
	}
}

func (h *Hub) handleBotTurn(roomCode string) {
	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		h.log.Warn().Str("room", roomCode).Msg("room not found")
		return
	}
	cp, ok := rm.CurrentPlayer()
	if !ok || !cp.IsBot {
		return
	}
	if _, err := h.roomManager.BotTurn(rm, cp.ID); err != nil {
		h.log.Warn().Err(err).Str("room", roomCode).Msg("bot turn failed")
	}
}
