package main

import (
	"context"
	"fmt"
	"time"

	"colonists/communication/client"
	"colonists/game"
	"colonists/meta"
	"colonists/player"

	"github.com/rs/zerolog/log"
)

// runBot joins a remote game as name and plays it with the random bot until
// the game is finished or ctx is cancelled.
func runBot(ctx context.Context, serverURL, gameID, name string, seed uint64) error {
	cc := client.NewClientCommunicator(serverURL)
	if gameID == "" {
		id, err := cc.NewGame(ctx)
		if err != nil {
			return err
		}
		gameID = id
		log.Info().Str("game", gameID).Msg("created game")
	}
	if err := cc.Join(ctx, gameID, name).Err(); err != nil {
		return fmt.Errorf("join %s: %w", gameID, err)
	}

	updates, err := cc.Subscribe(ctx, gameID)
	if err != nil {
		// Polling alone still works.
		log.Warn().Err(err).Msg("no live updates")
	}
	bot := player.NewPlayer(name)
	env := game.Env{Rules: game.NewStandardRules(), Rand: game.NewRandom(seed)}
	logger := log.With().Str("game", gameID).Str("player", name).Logger()

	poll := time.NewTicker(meta.BOT_POLL_INTERVAL)
	defer poll.Stop()
	for {
		w, err := cc.GetWorld(ctx, gameID).Unwrap()
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		if w.GameState == game.Finished {
			winner, _ := w.Winner()
			logger.Info().Str("winner", winner.Name).Msg("game over")
			return nil
		}
		if botMoves(w, name) {
			a := bot.TakeTurn(w, env)
			res := cc.SendAction(ctx, gameID, a).OnFailure(func(reason string) {
				logger.Debug().Str("action", string(a.Type())).Str("reason", reason).Msg("action rejected")
			})
			if res.IsSuccess() {
				continue
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-updates:
			if !ok {
				updates = nil
			}
		case <-poll.C:
		}
	}
}

// botMoves reports whether name should act on w. During setup everybody
// places their free buildings and the first player locks the map once all
// are placed.
func botMoves(w game.World, name string) bool {
	switch w.GameState {
	case game.Pregame:
		rules := game.NewStandardRules()
		if _, ok := w.Player(name); !ok || len(w.Players) < rules.MinPlayers() {
			return false
		}
		placed := func(p game.Player) bool {
			return len(p.Houses) >= rules.InitialHouses() && len(p.Roads) >= rules.InitialRoads()
		}
		me, _ := w.Player(name)
		if !placed(me) {
			return true
		}
		for _, p := range w.Players {
			if !placed(p) {
				return false
			}
		}
		return w.Players[0].Name == name
	case game.Started:
		active, ok := w.ActivePlayer()
		return ok && active.Name == name
	default:
		return false
	}
}
