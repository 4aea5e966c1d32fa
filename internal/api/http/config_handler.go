package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockade/internal/config"
	"blockade/internal/room"
)

// @Summary Get default heuristic weights
// @Description Returns the weight set used when a room carries no overrides
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/weights [get]
func GetDefaultWeightsHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"weights": cfg.Weights})
	}
}

// @Summary Get room heuristic weights
// @Description Returns the weights fixed when the room was created
// @Tags Config
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [get]
func GetRoomWeightsHandler(rm *room.Manager, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Query("room_code")
		if roomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_code is required"})
			return
		}
		rx, ok := rm.Get(roomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"room_code":     roomCode,
			"weights":       rx.Weights,
			"is_customized": rx.Weights != cfg.Weights,
		})
	}
}
