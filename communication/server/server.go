// Package server exposes the game master over HTTP and the broadcast hub
// over websockets.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"colonists/communication"
	"colonists/game"
	"colonists/gamemaster"
	"colonists/result"
	"colonists/storage"

	"github.com/rs/zerolog/log"
)

const maxBody = 1 << 20

type Server struct {
	gm  *gamemaster.GameMaster
	hub *communication.Hub
	mux *http.ServeMux
}

// NewServer initializes and returns a new Server. hub may be nil when no
// websocket endpoint is wanted.
func NewServer(gm *gamemaster.GameMaster, hub *communication.Hub) *Server {
	s := &Server{gm: gm, hub: hub, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /games", s.handleNewGame)
	s.mux.HandleFunc("GET /games/{id}", s.handleGetWorld)
	s.mux.HandleFunc("PUT /games/{id}", s.handleInitWorld)
	s.mux.HandleFunc("PUT /games/{id}/map", s.handleUpdateMap)
	s.mux.HandleFunc("POST /games/{id}/players", s.handleAddPlayer)
	s.mux.HandleFunc("POST /games/{id}/actions", s.handleApplyAction)
	if hub != nil {
		s.mux.HandleFunc("GET /games/{id}/ws", hub.Handler())
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type newGameResponse struct {
	ID     string                   `json:"id"`
	Result result.Result[game.World] `json:"result"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var tiles []game.Tile
	if err := decodeOptional(r, &tiles); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, res := s.gm.NewGame(r.Context(), tiles)
	writeJSON(w, statusOf(res.Err(), http.StatusCreated), newGameResponse{ID: id, Result: res})
}

func (s *Server) handleGetWorld(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.gm.GetWorld(r.Context(), r.PathValue("id")))
}

func (s *Server) handleInitWorld(w http.ResponseWriter, r *http.Request) {
	var world game.World
	if err := decode(r, &world); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.gm.InitWorld(r.Context(), r.PathValue("id"), world); err != nil {
		writeResult(w, result.FailWith[game.World](err))
		return
	}
	writeResult(w, result.Success(world))
}

func (s *Server) handleUpdateMap(w http.ResponseWriter, r *http.Request) {
	var tiles []game.Tile
	if err := decode(r, &tiles); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, s.gm.UpdateMap(r.Context(), r.PathValue("id"), tiles))
}

type addPlayerRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, s.gm.AddPlayer(r.Context(), r.PathValue("id"), req.Name))
}

func (s *Server) handleApplyAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a, err := game.DecodeAction(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, s.gm.ApplyAction(r.Context(), r.PathValue("id"), a))
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v)
}

// decodeOptional accepts an empty body and leaves v untouched.
func decodeOptional(r *http.Request, v any) error {
	err := decode(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// statusOf maps a failure to an HTTP status: rule violations are 422,
// unknown games 404, everything else 500.
func statusOf(err error, ok int) int {
	switch {
	case err == nil:
		return ok
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case game.KindOf(err) != 0:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeResult(w http.ResponseWriter, res result.Result[game.World]) {
	writeJSON(w, statusOf(res.Err(), http.StatusOK), res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug().Err(err).Msg("could not write response")
	}
}
