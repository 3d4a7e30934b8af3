// Package gamemaster runs games for remote participants: it loads the World,
// applies the engine, persists the outcome and broadcasts it.
package gamemaster

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"colonists/communication"
	"colonists/engine"
	"colonists/game"
	"colonists/result"
	"colonists/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GameMaster serializes all writes to one game id. Different games proceed
// in parallel.
type GameMaster struct {
	repo        storage.Repository
	engine      *engine.Engine
	broadcaster communication.Broadcaster
	locks       sync.Map
}

type Option func(*GameMaster)

func WithBroadcaster(b communication.Broadcaster) Option {
	return func(gm *GameMaster) {
		gm.broadcaster = b
	}
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(repo storage.Repository, eng *engine.Engine, opts ...Option) *GameMaster {
	gm := &GameMaster{
		repo:   repo,
		engine: eng,
	}
	for _, opt := range opts {
		opt(gm)
	}
	if gm.broadcaster == nil {
		gm.broadcaster = communication.NewNopBroadcaster()
	}
	return gm
}

func (gm *GameMaster) lock(id string) func() {
	m, _ := gm.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (gm *GameMaster) broadcast(id string, event communication.Event, payload any) {
	if err := gm.broadcaster.Broadcast(id, event, payload); err != nil {
		log.Error().Err(err).Str("game", id).Str("event", string(event)).Msg("broadcast failed")
	}
}

// persist stores w and turns a storage error into a failure.
func (gm *GameMaster) persist(id string) func(context.Context, game.World) result.Result[game.World] {
	return func(ctx context.Context, w game.World) result.Result[game.World] {
		if err := gm.repo.UpdateGame(ctx, id, w); err != nil {
			log.Error().Err(err).Str("game", id).Msg("could not store game")
			return result.FailWith[game.World](err)
		}
		return result.Success(w)
	}
}

// NewGame creates a game on the given board, or a random one when tiles is
// empty, and returns its id.
func (gm *GameMaster) NewGame(ctx context.Context, tiles []game.Tile) (string, result.Result[game.World]) {
	if len(tiles) == 0 {
		tiles = game.CreateMap(gm.engine.Random())
	} else if err := game.ValidateMap(tiles); err != nil {
		return "", result.FailWith[game.World](game.NewViolation(game.InvalidAction, "%s", err))
	}
	id := uuid.NewString()
	w := game.NewWorld(tiles)
	if err := gm.repo.CreateGame(ctx, id, w); err != nil {
		log.Error().Err(err).Str("game", id).Msg("could not create game")
		return "", result.FailWith[game.World](err)
	}
	log.Info().Str("game", id).Int("tiles", len(tiles)).Msg("created game")
	return id, result.Success(w)
}

// InitWorld stores w as the game's World. A game that does not exist yet is
// created; a game that is being played is never replaced.
func (gm *GameMaster) InitWorld(ctx context.Context, id string, w game.World) error {
	defer gm.lock(id)()

	err := game.ValidateWorld(w)
	if err == nil {
		err = gm.replace(ctx, id, w)
	}
	if err != nil {
		if game.KindOf(err) != 0 {
			log.Info().Err(err).Str("game", id).Msg("init world rejected")
		} else {
			log.Error().Err(err).Str("game", id).Msg("could not init world")
		}
		gm.broadcast(id, communication.NewWorld, result.FailWith[game.World](err))
		return err
	}
	log.Info().Str("game", id).Msg("initialized world")
	gm.broadcast(id, communication.NewWorld, result.Success(w))
	return nil
}

func (gm *GameMaster) replace(ctx context.Context, id string, w game.World) error {
	current := gm.repo.GetWorld(ctx, id)
	switch {
	case errors.Is(current.Err(), storage.ErrNotFound):
		return gm.repo.CreateGame(ctx, id, w)
	case current.IsFailure():
		return current.Err()
	case current.Value().GameState == game.Started:
		return game.NewViolation(game.PhaseViolation, "you cannot replace a game that is being played")
	}
	return gm.repo.UpdateGame(ctx, id, w)
}

// UpdateMap swaps the board while the game is being set up.
func (gm *GameMaster) UpdateMap(ctx context.Context, id string, tiles []game.Tile) result.Result[game.World] {
	defer gm.lock(id)()

	r := result.FlatMap(gm.repo.GetWorld(ctx, id), func(w game.World) result.Result[game.World] {
		if w.GameState != game.Pregame {
			return result.FailWith[game.World](game.NewViolation(game.PhaseViolation, "you cannot update the map once the game has started"))
		}
		if err := game.ValidateMap(tiles); err != nil {
			return result.FailWith[game.World](game.NewViolation(game.InvalidAction, "%s", err))
		}
		w.Map = slices.Clone(tiles)
		w.Thief = nil
		return result.Success(w)
	})
	r = result.FlatMapContext(ctx, r, gm.persist(id))
	r.OnFailure(func(reason string) {
		log.Info().Str("game", id).Str("reason", reason).Msg("map update rejected")
	})
	gm.broadcast(id, communication.NewMap, result.Map(r, func(w game.World) []game.Tile { return w.Map }))
	return r
}

// AddPlayer seats name in the game. After the game has started joining is a
// spectator visit: it succeeds and changes nothing.
func (gm *GameMaster) AddPlayer(ctx context.Context, id, name string) result.Result[game.World] {
	defer gm.lock(id)()

	name = strings.TrimSpace(name)
	changed := false
	r := result.FlatMap(gm.repo.GetWorld(ctx, id), func(w game.World) result.Result[game.World] {
		if w.GameState != game.Pregame {
			log.Info().Str("game", id).Str("player", name).Msg("joined as spectator")
			return result.Success(w)
		}
		if name == "" {
			return result.FailWith[game.World](game.NewViolation(game.InvalidAction, "a player needs a name"))
		}
		if _, ok := w.FindPlayer(name); ok {
			return result.FailWith[game.World](game.NewViolation(game.AuthorizationViolation, "a player called %q already joined", name))
		}
		if limit := gm.engine.Rules().MaxPlayers(); len(w.Players) >= limit {
			return result.FailWith[game.World](game.NewViolation(game.PhaseViolation, "the game is full with %d players", limit))
		}
		color := uint32(gm.engine.Random().Intn(0xFFFFFF))
		players := append(slices.Clone(w.Players), game.NewPlayer(name, color))
		slices.SortFunc(players, func(a, b game.Player) int { return strings.Compare(a.Name, b.Name) })
		w.Players = players
		changed = true
		return result.Success(w)
	})
	if changed {
		r = result.FlatMapContext(ctx, r, gm.persist(id))
	}
	if changed || r.IsFailure() {
		gm.broadcast(id, communication.NewWorld, r)
	}
	r.OnFailure(func(reason string) {
		log.Info().Str("game", id).Str("player", name).Str("reason", reason).Msg("join rejected")
	})
	return r
}

// ApplyAction runs a through the engine and stores the new World. Accepted
// and rejected actions are both broadcast.
func (gm *GameMaster) ApplyAction(ctx context.Context, id string, a game.Action) result.Result[game.World] {
	defer gm.lock(id)()

	kind := "<nil>"
	if a != nil {
		kind = string(a.Type())
	}
	logger := log.With().Str("game", id).Str("action", kind).Logger()
	logger.Debug().Msg("applying action")

	r := gm.repo.GetWorld(ctx, id)
	r = result.FlatMap(r, func(w game.World) result.Result[game.World] {
		return gm.engine.Apply(w, a)
	})
	r = result.FlatMapContext(ctx, r, gm.persist(id))
	r.OnFailure(func(reason string) {
		logger.Info().Str("reason", reason).Msg("action rejected")
	}).OnSuccess(func(w game.World) {
		if w.GameState == game.Finished {
			if winner, ok := w.Winner(); ok {
				logger.Info().Str("winner", winner.Name).Msg("game finished")
			}
		}
	})
	gm.broadcast(id, communication.NewWorld, r)
	return r
}

// GetWorld returns the current World of a game.
func (gm *GameMaster) GetWorld(ctx context.Context, id string) result.Result[game.World] {
	return gm.repo.GetWorld(ctx, id)
}
