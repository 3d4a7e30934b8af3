package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sharedCorners(a, b HexCoordinate) int {
	n := 0
	for _, c := range HexCorners(a) {
		for _, d := range HexCorners(b) {
			if c == d {
				n++
			}
		}
	}
	return n
}

func TestHexCorners(t *testing.T) {
	t.Run("every corner touches its tile", func(t *testing.T) {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				h := HexCoordinate{X: x, Y: y}
				corners := HexCorners(h)
				require.Len(t, corners, 6)
				for _, c := range corners {
					require.Contains(t, NeighbouringHexCoords(c), h, "corner %v should touch %v", c, h)
				}
			}
		}
	})

	t.Run("corners of a tile form a ring", func(t *testing.T) {
		corners := HexCorners(HexCoordinate{X: 2, Y: 3})
		for _, c := range corners {
			adjacent := 0
			for _, d := range corners {
				if AreAdjacent(c, d) {
					adjacent++
				}
			}
			require.Equal(t, 2, adjacent, "corner %v should have two neighbours on the ring", c)
		}
	})

	t.Run("interior corner touches three tiles", func(t *testing.T) {
		got := NeighbouringHexCoords(MatrixCoordinate{X: 3, Y: 2})
		require.ElementsMatch(t, []HexCoordinate{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}, got)
	})

	t.Run("edge corner drops tiles off the grid", func(t *testing.T) {
		require.Equal(t, []HexCoordinate{{X: 0, Y: 0}}, NeighbouringHexCoords(MatrixCoordinate{X: 0, Y: 0}))
		require.Empty(t, NeighbouringHexCoords(MatrixCoordinate{X: -1, Y: 0}))
	})
}

func TestNeighbouringMatrixCoords(t *testing.T) {
	t.Run("adjacency is symmetric", func(t *testing.T) {
		for y := 0; y < 8; y++ {
			for x := 0; x < 14; x++ {
				c := MatrixCoordinate{X: x, Y: y}
				for _, n := range NeighbouringMatrixCoords(c) {
					require.True(t, AreAdjacent(n, c), "%v and %v should be adjacent both ways", c, n)
				}
			}
		}
	})

	t.Run("vertical neighbour alternates", func(t *testing.T) {
		require.Contains(t, NeighbouringMatrixCoords(MatrixCoordinate{X: 0, Y: 0}), MatrixCoordinate{X: 0, Y: 1})
		require.Contains(t, NeighbouringMatrixCoords(MatrixCoordinate{X: 1, Y: 1}), MatrixCoordinate{X: 1, Y: 2})
		require.Contains(t, NeighbouringMatrixCoords(MatrixCoordinate{X: 2, Y: 1}), MatrixCoordinate{X: 2, Y: 0})
	})

	t.Run("a corner is not its own neighbour", func(t *testing.T) {
		c := MatrixCoordinate{X: 4, Y: 4}
		require.False(t, AreAdjacent(c, c))
		require.False(t, AreAdjacent(c, MatrixCoordinate{X: 6, Y: 4}))
	})
}

func TestHexNeighbours(t *testing.T) {
	t.Run("neighbours share an edge", func(t *testing.T) {
		for y := 1; y < 6; y++ {
			for x := 1; x < 6; x++ {
				h := HexCoordinate{X: x, Y: y}
				neighbours := HexNeighbours(h)
				require.Len(t, neighbours, 6)
				for _, n := range neighbours {
					require.Equal(t, 2, sharedCorners(h, n), "%v and %v should share one edge", h, n)
					require.Contains(t, HexNeighbours(n), h)
				}
			}
		}
	})
}
