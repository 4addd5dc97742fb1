package mux

import (
	"net/http"
	"time"

	"jacknine-server/internal/config"
	"jacknine-server/pkg/playable/jacknine"
	"jacknine-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	opts := jacknine.DefaultOptions()
	opts.RoundsPerGame = cfg.Game.RoundsPerGame
	opts.TrickDelay = time.Duration(cfg.Game.TrickDelaySeconds) * time.Second
	opts.RoundDelay = time.Duration(cfg.Game.RoundDelaySeconds) * time.Second

	pitBoss := room.NewPitBoss(cfg.Room.CodeLength, opts)
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	this.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})
	this.Router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, nil)
	})

	this.Router.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Router.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
