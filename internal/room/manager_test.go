package room_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"blockade/internal/config"
	"blockade/internal/game"
	"blockade/internal/room"
	"blockade/internal/store"
)

type fakeBroadcaster struct {
	actions []string
}

func (f *fakeBroadcaster) Broadcast(roomCode, action string, data interface{}) {
	f.actions = append(f.actions, action)
}

func newManager(t *testing.T) (*room.Manager, *fakeBroadcaster) {
	t.Helper()
	cfg := config.Config{
		BoardRows: 7,
		BoardCols: 7,
		Weights:   config.DefaultWeights(),
	}
	bc := &fakeBroadcaster{}
	return room.NewManager(store.NewMemoryStore(), cfg, bc, zerolog.Nop()), bc
}

func TestCreateRoom(t *testing.T) {
	m, _ := newManager(t)

	r, err := m.CreateRoom("alice", nil)
	require.NoError(t, err)
	require.Len(t, r.Code, 6)
	require.Len(t, r.Players, 1)
	require.Equal(t, game.PlayerA, r.Players[0].Side)
	require.Equal(t, config.DefaultWeights(), r.Weights)
	require.Equal(t, game.InProgress, r.State.Status)

	got, ok := m.Get(r.Code)
	require.True(t, ok)
	require.Equal(t, r, got)

	t.Run("custom weights stick to the room", func(t *testing.T) {
		w := config.Weights{Mobility: 5, OppMobility: 1, Proximity: 2, Cutoff: 4, Center: 0}
		r, err := m.CreateRoom("bob", &w)
		require.NoError(t, err)
		require.Equal(t, w, r.Weights)
	})
}

func TestJoinAndAddBot(t *testing.T) {
	m, _ := newManager(t)

	r, err := m.CreateRoom("alice", nil)
	require.NoError(t, err)

	p, err := m.Join(r, "bob")
	require.NoError(t, err)
	require.Equal(t, game.PlayerB, p.Side)

	_, err = m.Join(r, "carol")
	require.ErrorIs(t, err, room.ErrRoomFull)

	_, err = m.AddBot(r)
	require.ErrorIs(t, err, room.ErrRoomFull)
}

func TestApplyTurn(t *testing.T) {
	m, bc := newManager(t)

	r, err := m.CreateRoom("alice", nil)
	require.NoError(t, err)
	bot, err := m.AddBot(r)
	require.NoError(t, err)
	human := r.Players[0]

	t.Run("rejects out-of-turn players", func(t *testing.T) {
		err := m.ApplyTurn(r, bot.ID, game.Turn{Dest: game.Coord{R: 5, C: 5}, Obstacle: game.Coord{R: 0, C: 0}})
		require.ErrorIs(t, err, room.ErrNotYourTurn)
		err = m.ApplyTurn(r, "nobody", game.Turn{})
		require.ErrorIs(t, err, room.ErrNotYourTurn)
	})

	t.Run("plays a full exchange", func(t *testing.T) {
		err := m.ApplyTurn(r, human.ID, game.Turn{Dest: game.Coord{R: 1, C: 1}, Obstacle: game.Coord{R: 0, C: 0}})
		require.NoError(t, err)
		require.Equal(t, 1, r.State.Ply)
		require.Contains(t, bc.actions, "turn-applied")

		turn, err := m.BotTurn(r, bot.ID)
		require.NoError(t, err)
		require.Equal(t, 2, r.State.Ply)
		require.Equal(t, game.Turn{Dest: game.Coord{R: 5, C: 5}, Obstacle: game.Coord{R: 0, C: 1}}, turn)
	})

	t.Run("illegal turns leave the room untouched", func(t *testing.T) {
		before := r.State
		err := m.ApplyTurn(r, human.ID, game.Turn{Dest: game.Coord{R: 6, C: 6}, Obstacle: game.Coord{R: 0, C: 1}})
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, before, r.State)
	})
}
