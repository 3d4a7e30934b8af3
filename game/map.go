package game

import "fmt"

// Board layout of the standard game on a 7x7 offset grid. Land rows hold
// 3, 4, 5, 4 and 3 tiles and are wrapped by a ring of ocean tiles, some of
// which are harbors.

// landColumns maps a tile row to the columns holding land.
var landColumns = map[int][]int{
	1: {2, 3, 4},
	2: {2, 3, 4, 5},
	3: {1, 2, 3, 4, 5},
	4: {2, 3, 4, 5},
	5: {2, 3, 4},
}

// Land tile supply for one board, desert included.
var landSupply = []TileType{
	Wood, Wood, Wood, Wood,
	Wool, Wool, Wool, Wool,
	Grain, Grain, Grain, Grain,
	Clay, Clay, Clay,
	Stone, Stone, Stone,
	Desert,
}

// Production numbers handed out to every land tile but the desert.
var numberSupply = []DiceRoll{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

var harborSupply = []TileType{
	ThreeToOneHarbor, ThreeToOneHarbor, ThreeToOneHarbor, ThreeToOneHarbor,
	WoodHarbor, WoolHarbor, ClayHarbor, GrainHarbor, StoneHarbor,
}

// CreateMap builds a shuffled standard board. The desert never gets a
// production number; every other land tile gets one from numberSupply.
func CreateMap(rng Random) []Tile {
	land := shuffled(rng, landSupply)
	numbers := shuffled(rng, numberSupply)

	var tiles []Tile
	landSet := make(map[HexCoordinate]bool)
	for row := 1; row <= 5; row++ {
		for _, col := range landColumns[row] {
			coord := HexCoordinate{X: col, Y: row}
			landSet[coord] = true
			t := Tile{Type: land[0], Coord: coord}
			land = land[1:]
			if t.Type != Desert {
				t.DiceRoll = numbers[0]
				numbers = numbers[1:]
			}
			tiles = append(tiles, t)
		}
	}

	// Wrap the land in water, turning every other coastal cell into a harbor.
	harbors := shuffled(rng, harborSupply)
	coast := 0
	for row := 0; row <= 6; row++ {
		for col := 0; col <= 6; col++ {
			coord := HexCoordinate{X: col, Y: row}
			if landSet[coord] || !touchesLand(coord, landSet) {
				continue
			}
			t := Tile{Type: Ocean, Coord: coord}
			if coast%2 == 0 && len(harbors) > 0 {
				t.Type = harbors[0]
				harbors = harbors[1:]
			}
			coast++
			tiles = append(tiles, t)
		}
	}
	return tiles
}

func touchesLand(coord HexCoordinate, land map[HexCoordinate]bool) bool {
	for _, n := range HexNeighbours(coord) {
		if land[n] {
			return true
		}
	}
	return false
}

func shuffled[T any](rng Random, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ValidateMap checks a client supplied board: unique coordinates, and no
// production number of 7 or outside 2-12.
func ValidateMap(tiles []Tile) error {
	seen := make(map[HexCoordinate]bool, len(tiles))
	for _, t := range tiles {
		if seen[t.Coord] {
			return fmt.Errorf("the map has two tiles at %v", t.Coord)
		}
		seen[t.Coord] = true
		if t.DiceRoll == NoRoll {
			continue
		}
		if t.DiceRoll == ThiefRoll || t.DiceRoll < 2 || t.DiceRoll > 12 {
			return fmt.Errorf("tile %v cannot have the production number %d", t.Coord, t.DiceRoll)
		}
	}
	return nil
}
