package game

// TileType is what a board cell is made of.
type TileType string

const (
	Wood   TileType = "Wood"
	Wool   TileType = "Wool"
	Clay   TileType = "Clay"
	Grain  TileType = "Grain"
	Stone  TileType = "Stone"
	Desert TileType = "Desert"
	Ocean  TileType = "Ocean"

	WoodHarbor       TileType = "WoodHarbor"
	WoolHarbor       TileType = "WoolHarbor"
	ClayHarbor       TileType = "ClayHarbor"
	GrainHarbor      TileType = "GrainHarbor"
	StoneHarbor      TileType = "StoneHarbor"
	ThreeToOneHarbor TileType = "ThreeToOneHarbor"
)

var harborResource = map[TileType]TileType{
	WoodHarbor:  Wood,
	WoolHarbor:  Wool,
	ClayHarbor:  Clay,
	GrainHarbor: Grain,
	StoneHarbor: Stone,
}

func (t TileType) IsHarbor() bool {
	_, ok := harborResource[t]
	return ok || t == ThreeToOneHarbor
}

// Produces reports whether the tile type yields a resource on a dice roll.
func (t TileType) Produces() bool {
	switch t {
	case Wood, Wool, Clay, Grain, Stone:
		return true
	}
	return false
}

// HarborResource returns the resource a specialised harbor trades in.
func (t TileType) HarborResource() (TileType, bool) {
	r, ok := harborResource[t]
	return r, ok
}

// DiceRoll is the sum of two dice. NoRoll marks a tile without a production
// number or a world where nobody has rolled yet.
type DiceRoll int

const (
	NoRoll    DiceRoll = 0
	ThiefRoll DiceRoll = 7
)

// Tile is a static board cell.
type Tile struct {
	Type     TileType      `json:"type"`
	DiceRoll DiceRoll      `json:"diceRoll"`
	Coord    HexCoordinate `json:"coord"`
}

// FindTile returns the tile at coord.
func FindTile(tiles []Tile, coord HexCoordinate) (Tile, bool) {
	for _, t := range tiles {
		if t.Coord == coord {
			return t, true
		}
	}
	return Tile{}, false
}
