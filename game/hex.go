package game

// HexCoordinate addresses a tile on an offset hex grid: X is the column, Y the
// row. Odd rows are shifted half a tile to the right.
type HexCoordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MatrixCoordinate addresses a tile corner. Corners form zig-zag rows: row y
// runs between tile rows y-1 and y. The tile (c, r) owns the corners
// x = 2c+s, 2c+s+1, 2c+s+2 on rows r and r+1, where s = r mod 2.
type MatrixCoordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (h HexCoordinate) valid() bool    { return h.X >= 0 && h.Y >= 0 }
func (m MatrixCoordinate) valid() bool { return m.X >= 0 && m.Y >= 0 }

// NeighbouringHexCoords returns the tiles touching a corner: two in one tile
// row and one in the other. Coordinates off the grid are dropped.
func NeighbouringHexCoords(pos MatrixCoordinate) []HexCoordinate {
	hexes := make([]HexCoordinate, 0, 3)
	if !pos.valid() {
		return hexes
	}
	// The corner is a top corner of row pos.Y and a bottom corner of row pos.Y-1.
	for _, row := range []int{pos.Y - 1, pos.Y} {
		if row < 0 {
			continue
		}
		offset := pos.X - row&1
		if offset < 0 {
			continue
		}
		if offset%2 == 1 {
			hexes = append(hexes, HexCoordinate{X: (offset - 1) / 2, Y: row})
			continue
		}
		if offset >= 2 {
			hexes = append(hexes, HexCoordinate{X: offset/2 - 1, Y: row})
		}
		hexes = append(hexes, HexCoordinate{X: offset / 2, Y: row})
	}
	return hexes
}

// NeighbouringMatrixCoords returns the corners one edge away from pos: left and
// right along the zig-zag row, plus one vertical neighbour.
func NeighbouringMatrixCoords(pos MatrixCoordinate) []MatrixCoordinate {
	coords := make([]MatrixCoordinate, 0, 3)
	if !pos.valid() {
		return coords
	}
	vertical := MatrixCoordinate{X: pos.X, Y: pos.Y - 1}
	if (pos.X+pos.Y)%2 == 0 {
		vertical.Y = pos.Y + 1
	}
	for _, c := range []MatrixCoordinate{
		{X: pos.X - 1, Y: pos.Y},
		{X: pos.X + 1, Y: pos.Y},
		vertical,
	} {
		if c.valid() {
			coords = append(coords, c)
		}
	}
	return coords
}

// AreAdjacent reports whether two corners share an edge.
func AreAdjacent(a, b MatrixCoordinate) bool {
	for _, c := range NeighbouringMatrixCoords(a) {
		if c == b {
			return true
		}
	}
	return false
}

// HexCorners returns the six corners of a tile.
func HexCorners(h HexCoordinate) []MatrixCoordinate {
	s := h.Y & 1
	corners := make([]MatrixCoordinate, 0, 6)
	for _, row := range []int{h.Y, h.Y + 1} {
		for dx := 0; dx < 3; dx++ {
			corners = append(corners, MatrixCoordinate{X: 2*h.X + s + dx, Y: row})
		}
	}
	return corners
}

// HexNeighbours returns the six tiles sharing an edge with h. Coordinates off
// the grid are dropped.
func HexNeighbours(h HexCoordinate) []HexCoordinate {
	// Rows shifted right see their diagonal neighbours one column further on.
	shift := h.Y & 1
	candidates := []HexCoordinate{
		{X: h.X - 1, Y: h.Y},
		{X: h.X + 1, Y: h.Y},
		{X: h.X - 1 + shift, Y: h.Y - 1},
		{X: h.X + shift, Y: h.Y - 1},
		{X: h.X - 1 + shift, Y: h.Y + 1},
		{X: h.X + shift, Y: h.Y + 1},
	}
	out := candidates[:0]
	for _, c := range candidates {
		if c.valid() {
			out = append(out, c)
		}
	}
	return out
}
