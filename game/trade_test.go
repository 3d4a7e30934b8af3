package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBankTrade(t *testing.T) {
	base := startedWorld(nil, "A", "B")
	base = withPlayer(t, base, "A", func(p *Player) { p.Resources = Resources{Wood: 8, Clay: 1} })

	t.Run("four for one", func(t *testing.T) {
		got := apply(testEnv(nil), base, BankTrade{PlayerName: "A", Transfer: Resources{Wood: 4}, Receive: Resources{Stone: 1}})

		require.True(t, got.IsSuccess(), got.Reason())
		require.Equal(t, Resources{Wood: 4, Clay: 1, Stone: 1}, mustPlayer(t, got.Value(), "A").Resources)
	})

	t.Run("multiples of the ratio", func(t *testing.T) {
		got := apply(testEnv(nil), base, BankTrade{PlayerName: "A", Transfer: Resources{Wood: 8}, Receive: Resources{Stone: 1, Grain: 1}})
		require.True(t, got.IsSuccess(), got.Reason())
		require.Equal(t, Resources{Clay: 1, Stone: 1, Grain: 1}, mustPlayer(t, got.Value(), "A").Resources)
	})

	t.Run("wrong ratio", func(t *testing.T) {
		got := apply(testEnv(nil), base, BankTrade{PlayerName: "A", Transfer: Resources{Wood: 3}, Receive: Resources{Stone: 1}})
		requireViolation(t, got, InvalidAction, "")
	})

	t.Run("mixed resources", func(t *testing.T) {
		w := withPlayer(t, base, "A", func(p *Player) { p.Resources = Resources{Wood: 4, Clay: 4} })
		got := apply(testEnv(nil), w, BankTrade{PlayerName: "A", Transfer: Resources{Wood: 2, Clay: 2}, Receive: Resources{Stone: 1}})
		requireViolation(t, got, InvalidAction, "")
	})

	t.Run("asking for too much", func(t *testing.T) {
		got := apply(testEnv(nil), base, BankTrade{PlayerName: "A", Transfer: Resources{Wood: 4}, Receive: Resources{Stone: 2}})
		requireViolation(t, got, InvalidAction, "you can receive 1 resources for this trade")
	})

	t.Run("cannot give what you lack", func(t *testing.T) {
		got := apply(testEnv(nil), base, BankTrade{PlayerName: "A", Transfer: Resources{Stone: 4}, Receive: Resources{Wood: 1}})
		requireViolation(t, got, EconomicViolation, "")
	})
}

func TestHarborTrade(t *testing.T) {
	// Setup A with a house touching a wood harbor at 0,0 and a 3:1 harbor at 1,0
	tiles := []Tile{
		{Type: WoodHarbor, Coord: HexCoordinate{X: 0, Y: 0}},
		{Type: ThreeToOneHarbor, Coord: HexCoordinate{X: 1, Y: 0}},
	}
	base := startedWorld(tiles, "A", "B")
	base = withPlayer(t, base, "A", func(p *Player) {
		p.Houses = []House{{Position: corner00}}
		p.Resources = Resources{Wood: 2, Clay: 3}
	})

	t.Run("specialised harbor trades two for one", func(t *testing.T) {
		got := apply(testEnv(nil), base, HarborTrade{PlayerName: "A", HarborType: WoodHarbor, Transfer: Resources{Wood: 2}, Receive: Resources{Grain: 1}})

		require.True(t, got.IsSuccess(), got.Reason())
		require.Equal(t, Resources{Clay: 3, Grain: 1}, mustPlayer(t, got.Value(), "A").Resources)
	})

	t.Run("specialised harbor only takes its resource", func(t *testing.T) {
		w := withPlayer(t, base, "A", func(p *Player) { p.Resources = Resources{Clay: 2} })
		got := apply(testEnv(nil), w, HarborTrade{PlayerName: "A", HarborType: WoodHarbor, Transfer: Resources{Clay: 2}, Receive: Resources{Grain: 1}})
		requireViolation(t, got, InvalidAction, "the given resources do not match the harbor")
	})

	t.Run("needs a building on the harbor", func(t *testing.T) {
		got := apply(testEnv(nil), base, HarborTrade{PlayerName: "A", HarborType: ThreeToOneHarbor, Transfer: Resources{Clay: 3}, Receive: Resources{Grain: 1}})
		requireViolation(t, got, TopologicalViolation, "you do not have a house on a harbor for this trade")
	})

	t.Run("three to one takes any resource", func(t *testing.T) {
		w := withPlayer(t, base, "A", func(p *Player) { p.Houses = []House{{Position: MatrixCoordinate{X: 2, Y: 0}}} })
		got := apply(testEnv(nil), w, HarborTrade{PlayerName: "A", HarborType: ThreeToOneHarbor, Transfer: Resources{Clay: 3}, Receive: Resources{Grain: 1}})
		require.True(t, got.IsSuccess(), got.Reason())
	})

	t.Run("not a harbor", func(t *testing.T) {
		got := apply(testEnv(nil), base, HarborTrade{PlayerName: "A", HarborType: Grain, Transfer: Resources{Wood: 2}, Receive: Resources{Grain: 1}})
		requireViolation(t, got, InvalidAction, "")
	})
}

func TestPlayerTrade(t *testing.T) {
	base := startedWorld(nil, "A", "B")
	base = withPlayer(t, base, "A", func(p *Player) { p.Resources = Resources{Wood: 2} })
	base = withPlayer(t, base, "B", func(p *Player) { p.Resources = Resources{Stone: 1} })

	t.Run("swaps both bundles", func(t *testing.T) {
		got := apply(testEnv(nil), base, PlayerTrade{PlayerName: "A", OtherPlayerName: "B", SentResources: Resources{Wood: 2}, ReceivedResources: Resources{Stone: 1}})

		require.True(t, got.IsSuccess(), got.Reason())
		require.Equal(t, Resources{Stone: 1}, mustPlayer(t, got.Value(), "A").Resources)
		require.Equal(t, Resources{Wood: 2}, mustPlayer(t, got.Value(), "B").Resources)
	})

	t.Run("the other side must afford it", func(t *testing.T) {
		got := apply(testEnv(nil), base, PlayerTrade{PlayerName: "A", OtherPlayerName: "B", SentResources: Resources{Wood: 1}, ReceivedResources: Resources{Stone: 2}})
		requireViolation(t, got, EconomicViolation, "B does not have the resources for this")
		require.Equal(t, Resources{Wood: 2}, mustPlayer(t, base, "A").Resources)
	})

	t.Run("unknown partner", func(t *testing.T) {
		got := apply(testEnv(nil), base, PlayerTrade{PlayerName: "A", OtherPlayerName: "Z"})
		requireViolation(t, got, AuthorizationViolation, "")
	})

	t.Run("not with yourself", func(t *testing.T) {
		got := apply(testEnv(nil), base, PlayerTrade{PlayerName: "A", OtherPlayerName: "A", SentResources: Resources{Wood: 1}})
		requireViolation(t, got, InvalidAction, "you cannot trade with yourself")
	})
}

func TestProposeTrade(t *testing.T) {
	base := startedWorld(nil, "A", "B")
	base = withPlayer(t, base, "A", func(p *Player) { p.Resources = Resources{Wood: 2} })

	got := apply(testEnv(nil), base, ProposeTrade{PlayerName: "A", Resources: Resources{Wood: 2}, WantsResources: Resources{Stone: 1}})
	require.True(t, got.IsSuccess(), got.Reason())
	require.Equal(t, base.Hash(), got.Value().Hash(), "an offer changes nothing")

	got = apply(testEnv(nil), base, ProposeTrade{PlayerName: "A", Resources: Resources{Wool: 1}})
	requireViolation(t, got, EconomicViolation, "")
}
