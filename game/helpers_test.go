package game

import (
	"testing"

	"colonists/result"

	"github.com/stretchr/testify/require"
)

// scriptedRandom replays fixed draws. Intn wraps the next int into [0, n).
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

func testEnv(rng Random) Env {
	if rng == nil {
		rng = NewRandom(1)
	}
	return Env{Rules: NewStandardRules(), Rand: rng}
}

// startedWorld seats the named players on tiles with A to move.
func startedWorld(tiles []Tile, names ...string) World {
	w := NewWorld(tiles)
	for i, name := range names {
		w.Players = append(w.Players, NewPlayer(name, uint32(i)))
	}
	w.GameState = Started
	w.PointsToWin = 10
	return w
}

func withPlayer(t *testing.T, w World, name string, f func(p *Player)) World {
	t.Helper()
	i, ok := w.FindPlayer(name)
	require.True(t, ok, "player %s should exist", name)
	p := w.Players[i].Copy()
	f(&p)
	return w.withPlayer(i, p)
}

func mustPlayer(t *testing.T, w World, name string) Player {
	t.Helper()
	p, ok := w.Player(name)
	require.True(t, ok, "player %s should exist", name)
	return p
}

func apply(env Env, w World, a Action) result.Result[World] {
	return a.Rule(env)(result.Success(w))
}

func requireViolation(t *testing.T, r result.Result[World], kind Violation, reason string) {
	t.Helper()
	require.True(t, r.IsFailure(), "action should be rejected")
	require.Equal(t, kind, KindOf(r.Err()), "unexpected violation for %q", r.Reason())
	if reason != "" {
		require.Equal(t, reason, r.Reason())
	}
}

var grainTile = Tile{Type: Grain, DiceRoll: 8, Coord: HexCoordinate{X: 0, Y: 0}}
