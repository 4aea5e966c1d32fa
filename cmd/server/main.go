package main

import (
	"os"

	"github.com/rs/zerolog"

	httpapi "blockade/internal/api/http"
	"blockade/internal/api/ws"
	"blockade/internal/config"
	"blockade/internal/room"
	"blockade/internal/store"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub(log)
	rm := room.NewManager(mem, cfg, hub, log)
	hub.SetManager(rm)

	r := httpapi.NewRouter(rm, hub, cfg)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
