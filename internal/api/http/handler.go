package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blockade/internal/game"
	"blockade/internal/room"
)

// @Summary Create new room
// @Description Create a new room with a single human player seated as side A
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx, err := rm.CreateRoom(req.PlayerName, req.Weights)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "room": rx})
	}
}

// @Summary Join a room
// @Description Seat a second human as side B
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room and player info"
// @Success 200 {object} map[string]interface{}
// @Router /join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerName required"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		p, err := rm.Join(rx, req.PlayerName)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"player": p, "room": rx})
	}
}

// @Summary Seat the bot
// @Description Fill the open side of the room with the heuristic bot
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.PlayRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /play [post]
func PlayHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		p, err := rm.AddBot(rx)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bot": p, "room": rx})
	}
}

// @Summary Current room state
// @Description Full game state for rendering
// @Tags Game
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("room_code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx, "blocked": game.IsBlocked(rx.State)})
	}
}

// @Summary Possible moves
// @Description Legal token destinations for the side to move; pass dest_r and
// @Description dest_c to also get the legal obstacle cells for that destination
// @Tags Game
// @Produce json
// @Param room_code query string true "Room Code"
// @Param dest_r query int false "Chosen destination row"
// @Param dest_c query int false "Chosen destination column"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("room_code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		dests := game.LegalDestinations(rx.State)
		out := gin.H{"destinations": dests}

		if rs, cs := c.Query("dest_r"), c.Query("dest_c"); rs != "" && cs != "" {
			dr, err1 := strconv.Atoi(rs)
			dc, err2 := strconv.Atoi(cs)
			if err1 != nil || err2 != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "dest_r and dest_c must be integers"})
				return
			}
			dest := game.Coord{R: dr, C: dc}
			legal := false
			for _, d := range dests {
				if d == dest {
					legal = true
					break
				}
			}
			if !legal {
				c.JSON(http.StatusBadRequest, gin.H{"error": "destination is not legal"})
				return
			}
			out["obstacles"] = game.LegalObstacles(rx.State, dest)
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Player plays a turn
// @Description Submit the token destination and the cell to seal
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.TurnRequest true "Turn data"
// @Success 200 {object} map[string]interface{}
// @Router /turn [post]
func TurnHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		t := game.Turn{Dest: req.Dest, Obstacle: req.Obstacle}
		if err := rm.ApplyTurn(rx, req.PlayerID, t); err != nil {
			c.JSON(turnErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"room":   rx,
			"status": rx.State.Status.String(),
		})
	}
}

// @Summary Bot plays its turn
// @Description The bot picks its turn with the heuristic evaluator and plays it
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.BotTurnRequest true "Bot turn"
// @Success 200 {object} map[string]interface{}
// @Router /turn-bot [post]
func BotTurnHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BotTurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		t, err := rm.BotTurn(rx, req.BotID)
		if err != nil {
			c.JSON(turnErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"turn":   t,
			"room":   rx,
			"status": rx.State.Status.String(),
		})
	}
}

// turnErrorStatus maps engine failures onto HTTP statuses so the boundary can
// re-prompt on bad input instead of treating it as a server fault.
func turnErrorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNoMoves), errors.Is(err, room.ErrNotYourTurn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
