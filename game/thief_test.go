package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveThief(t *testing.T) {
	tiles := []Tile{grainTile, {Type: Wood, DiceRoll: 5, Coord: HexCoordinate{X: 1, Y: 0}}}
	base := startedWorld(tiles, "A", "B")
	base.CurrentDie = ThiefRoll

	t.Run("after a seven", func(t *testing.T) {
		got := apply(testEnv(nil), base, MoveThief{PlayerName: "A", Coordinates: grainTile.Coord})

		require.True(t, got.IsSuccess(), got.Reason())
		require.True(t, got.Value().ThiefOn(grainTile.Coord))
		require.Equal(t, NoRoll, got.Value().CurrentDie, "a seven moves the thief once")
	})

	t.Run("not without a seven", func(t *testing.T) {
		w := base
		w.CurrentDie = 8
		got := apply(testEnv(nil), w, MoveThief{PlayerName: "A", Coordinates: grainTile.Coord})
		requireViolation(t, got, PhaseViolation, "you cannot move the thief if you have not rolled a 7")
	})

	t.Run("must move somewhere else", func(t *testing.T) {
		w := base
		w.Thief = &Thief{HexCoordinate: grainTile.Coord}
		got := apply(testEnv(nil), w, MoveThief{PlayerName: "A", Coordinates: grainTile.Coord})
		requireViolation(t, got, TopologicalViolation, "the thief is already on that tile")
	})

	t.Run("onto the map", func(t *testing.T) {
		got := apply(testEnv(nil), base, MoveThief{PlayerName: "A", Coordinates: HexCoordinate{X: 9, Y: 9}})
		requireViolation(t, got, TopologicalViolation, "")
	})

	t.Run("with a knight", func(t *testing.T) {
		w := base
		w.CurrentDie = 4
		w = withPlayer(t, w, "A", func(p *Player) { p.DevCards = []DevelopmentCard{{Type: Knight}} })

		got := apply(testEnv(nil), w, MoveThiefDevCard{PlayerName: "A", Coordinates: HexCoordinate{X: 1, Y: 0}})

		require.True(t, got.IsSuccess(), got.Reason())
		a := mustPlayer(t, got.Value(), "A")
		require.Equal(t, 1, a.Knights)
		require.True(t, a.DevCards[0].Played)
		require.True(t, got.Value().ThiefOn(HexCoordinate{X: 1, Y: 0}))
		require.False(t, mustPlayer(t, w, "A").DevCards[0].Played, "input world should be untouched")
	})

	t.Run("no knight to play", func(t *testing.T) {
		got := apply(testEnv(nil), base, MoveThiefDevCard{PlayerName: "A", Coordinates: grainTile.Coord})
		requireViolation(t, got, CardStateViolation, "you do not have that card")
	})
}

func TestStealFromPlayer(t *testing.T) {
	base := startedWorld([]Tile{grainTile}, "A", "B")
	base.Thief = &Thief{HexCoordinate: grainTile.Coord}
	base = withPlayer(t, base, "B", func(p *Player) {
		p.Houses = []House{{Position: corner00}}
		p.Resources = Resources{Wood: 1, Stone: 2}
	})

	t.Run("takes one unit", func(t *testing.T) {
		env := testEnv(&scriptedRandom{ints: []int{0}})

		got := apply(env, base, StealFromPlayer{PlayerName: "A", ToStealFrom: "B"})

		require.True(t, got.IsSuccess(), got.Reason())
		require.Equal(t, Resources{Wood: 1}, mustPlayer(t, got.Value(), "A").Resources)
		require.Equal(t, Resources{Stone: 2}, mustPlayer(t, got.Value(), "B").Resources)
	})

	t.Run("draw picks the unit", func(t *testing.T) {
		env := testEnv(&scriptedRandom{ints: []int{2}})
		got := apply(env, base, StealFromPlayer{PlayerName: "A", ToStealFrom: "B"})
		require.Equal(t, Resources{Stone: 1}, mustPlayer(t, got.Value(), "A").Resources)
	})

	t.Run("victim must touch the thief", func(t *testing.T) {
		w := base
		w.Thief = &Thief{HexCoordinate: HexCoordinate{X: 4, Y: 4}}
		got := apply(testEnv(nil), w, StealFromPlayer{PlayerName: "A", ToStealFrom: "B"})
		requireViolation(t, got, TopologicalViolation, "B has no building next to the thief")
	})

	t.Run("nothing to steal", func(t *testing.T) {
		w := withPlayer(t, base, "B", func(p *Player) { p.Resources = Resources{} })
		got := apply(testEnv(nil), w, StealFromPlayer{PlayerName: "A", ToStealFrom: "B"})
		requireViolation(t, got, EconomicViolation, "B has nothing to steal")
	})

	t.Run("not from yourself", func(t *testing.T) {
		got := apply(testEnv(nil), base, StealFromPlayer{PlayerName: "A", ToStealFrom: "A"})
		requireViolation(t, got, InvalidAction, "")
	})
}
