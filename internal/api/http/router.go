package http

import (
	"github.com/gin-gonic/gin"

	"blockade/internal/api/ws"
	"blockade/internal/config"
	"blockade/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join", JoinRoomHandler(rm))
	r.POST("/play", PlayHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/state", StateHandler(rm))
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.POST("/turn", TurnHandler(rm))
	r.POST("/turn-bot", BotTurnHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/weights", GetDefaultWeightsHandler(cfg))
	r.GET("/config/weights/room", GetRoomWeightsHandler(rm, cfg))

	return r
}
