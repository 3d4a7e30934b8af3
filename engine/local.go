package engine

import (
	"fmt"

	"colonists/game"
	"colonists/meta"

	"github.com/rs/zerolog/log"
)

// MaxTurns stops a local game that nobody manages to win.
const MaxTurns = meta.MAX_TURNS

// Update is one accepted action and the fingerprint of the World it produced.
type Update struct {
	Action game.Action
	Hash   uint64
}

// Agent picks the next action for the player whose turn it is.
type Agent interface {
	Name() string
	TakeTurn(w game.World, env game.Env) game.Action
}

// Local plays a whole game in process, without storage or transport.
type Local struct {
	engine  *Engine
	world   game.World
	agents  []Agent
	history []Update
}

func LocalEngine(e *Engine, tiles []game.Tile, agents []Agent) (*Local, error) {
	rules := e.Rules()
	if len(agents) < rules.MinPlayers() || len(agents) > rules.MaxPlayers() {
		return nil, fmt.Errorf("need between %d and %d agents, got %d", rules.MinPlayers(), rules.MaxPlayers(), len(agents))
	}
	w := game.NewWorld(tiles)
	for i, a := range agents {
		if _, ok := w.FindPlayer(a.Name()); ok {
			return nil, fmt.Errorf("duplicate agent name %q", a.Name())
		}
		w.Players = append(w.Players, game.NewPlayer(a.Name(), uint32(i)))
	}
	return &Local{engine: e, world: w, agents: agents}, nil
}

func (l *Local) World() game.World {
	return l.world.Copy()
}

func (l *Local) History() []Update {
	return l.history
}

// Play applies a single action. A rejected action leaves the game untouched.
func (l *Local) Play(a game.Action) error {
	if l.world.GameState == game.Finished {
		return fmt.Errorf("game is over - no actions allowed")
	}
	next, err := l.engine.Apply(l.world, a).Unwrap()
	if err != nil {
		return err
	}
	l.world = next
	l.history = append(l.history, Update{Action: a, Hash: next.Hash()})
	return nil
}

func (l *Local) agentFor(name string) Agent {
	for _, a := range l.agents {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Run lets every agent place its setup buildings, locks the map and plays
// until someone wins or MaxTurns is reached. It returns the winner's name,
// "" when there is none.
func (l *Local) Run() string {
	env := game.Env{Rules: l.engine.Rules(), Rand: l.engine.Random()}
	for _, a := range l.agents {
		for placed := 0; placed < env.Rules.InitialHouses()+env.Rules.InitialRoads(); placed++ {
			if err := l.Play(a.TakeTurn(l.world, env)); err != nil {
				log.Debug().Err(err).Str("player", a.Name()).Msg("setup action rejected")
			}
		}
	}
	if err := l.Play(game.LockMap{PlayerName: l.agents[0].Name()}); err != nil {
		log.Warn().Err(err).Msg("could not start local game")
		return ""
	}

	for l.world.GameState == game.Started && l.world.GameStatistics.Turns < MaxTurns {
		active, _ := l.world.ActivePlayer()
		agent := l.agentFor(active.Name)
		a := agent.TakeTurn(l.world, env)
		if err := l.Play(a); err != nil {
			log.Debug().Err(err).Str("player", active.Name).Str("action", kindOf(a)).Msg("action rejected")
			// A stuck agent must not stall the game.
			if err := l.Play(game.EndTurn{PlayerName: active.Name}); err != nil {
				log.Warn().Err(err).Msg("could not end turn")
				return ""
			}
		}
	}

	if winner, ok := l.world.Winner(); ok && l.world.GameState == game.Finished {
		log.Info().Str("winner", winner.Name).Int("turns", l.world.GameStatistics.Turns).Msg("local game over")
		return winner.Name
	}
	log.Info().Int("turns", l.world.GameStatistics.Turns).Msg("local game stopped without a winner")
	return ""
}
