package room

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"blockade/internal/config"
	"blockade/internal/game"
)

var (
	ErrRoomFull    = errors.New("room is full")
	ErrNotYourTurn = errors.New("not your turn or player invalid")
)

// Manager owns the lifecycle of rooms: creating and joining them, and
// funnelling every turn (human or bot) through the rules engine. It is the
// single writer of each room's state.
type Manager struct {
	store Store
	cfg   config.Config
	bc    Broadcaster
	log   zerolog.Logger
}

func NewManager(s Store, cfg config.Config, bc Broadcaster, log zerolog.Logger) *Manager {
	return &Manager{store: s, cfg: cfg, bc: bc, log: log}
}

// CreateRoom starts a new game with the creator seated as side A. Custom
// weights, when given, are fixed for the lifetime of the room.
func (m *Manager) CreateRoom(creatorName string, weights *config.Weights) (*Room, error) {
	st, err := game.NewGame(m.cfg.BoardRows, m.cfg.BoardCols)
	if err != nil {
		return nil, err
	}
	w := m.cfg.Weights
	if weights != nil {
		w = *weights
	}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		State:     game.ResolveBlocked(st),
		Weights:   w,
		CreatedAt: time.Now(),
		Players: []Player{{
			ID:   uuid.NewString(),
			Name: creatorName,
			Side: game.PlayerA,
		}},
	}
	m.store.SaveRoom(r)
	m.log.Info().Str("room", r.Code).Str("creator", creatorName).Msg("room created")
	return r, nil
}

// Join seats a second human as side B.
func (m *Manager) Join(r *Room, name string) (*Player, error) {
	if _, taken := r.PlayerBySide(game.PlayerB); taken {
		return nil, ErrRoomFull
	}
	p := Player{ID: uuid.NewString(), Name: name, Side: game.PlayerB}
	r.Players = append(r.Players, p)
	m.store.SaveRoom(r)
	m.bc.Broadcast(r.Code, "player-joined", map[string]interface{}{"player": p})
	return &p, nil
}

// AddBot seats the bot on the open side.
func (m *Manager) AddBot(r *Room) (*Player, error) {
	side := game.PlayerB
	if _, taken := r.PlayerBySide(side); taken {
		if _, taken := r.PlayerBySide(game.PlayerA); taken {
			return nil, ErrRoomFull
		}
		side = game.PlayerA
	}
	p := Player{ID: "bot-" + uuid.NewString(), Name: "Bot", IsBot: true, Side: side}
	r.Players = append(r.Players, p)
	m.store.SaveRoom(r)
	m.bc.Broadcast(r.Code, "player-joined", map[string]interface{}{"player": p})
	return &p, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// ApplyTurn plays one validated turn for playerID and broadcasts the result.
func (m *Manager) ApplyTurn(r *Room, playerID string, t game.Turn) error {
	cp, ok := r.CurrentPlayer()
	if !ok || cp.ID != playerID {
		return ErrNotYourTurn
	}

	ns, err := game.ApplyTurn(r.State, t)
	if err != nil {
		return err
	}
	r.State = ns
	m.store.SaveRoom(r)

	m.log.Info().
		Str("room", r.Code).
		Stringer("side", cp.Side).
		Int("ply", ns.Ply).
		Msg("turn applied")

	if ns.Status != game.InProgress {
		m.bc.Broadcast(r.Code, "game-over", map[string]interface{}{
			"status": ns.Status.String(),
			"state":  ns,
		})
		return nil
	}
	m.bc.Broadcast(r.Code, "turn-applied", map[string]interface{}{
		"playerId": playerID,
		"turn":     t,
		"state":    ns,
	})
	return nil
}

// BotTurn lets the seated bot pick and play its turn.
func (m *Manager) BotTurn(r *Room, botID string) (game.Turn, error) {
	cp, ok := r.CurrentPlayer()
	if !ok || cp.ID != botID || !cp.IsBot {
		return game.Turn{}, ErrNotYourTurn
	}
	t, err := game.ChooseTurn(r.State, r.Weights)
	if err != nil {
		return game.Turn{}, err
	}
	if err := m.ApplyTurn(r, botID, t); err != nil {
		return game.Turn{}, err
	}
	return t, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
