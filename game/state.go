package game

import (
	"encoding/binary"
	"hash/fnv"
	"slices"

	"colonists/utils"
)

type GameState string

const (
	Pregame  GameState = "Pregame"
	Started  GameState = "Started"
	Finished GameState = "Finished"
)

// Thief sits on a tile and stops it from producing.
type Thief struct {
	HexCoordinate HexCoordinate `json:"hexCoordinate"`
}

// Statistics aggregates what happened over the game.
type Statistics struct {
	Turns int `json:"turns"`
	// Rolls counts how often each dice sum came up, indexed by the sum.
	Rolls [13]int `json:"rolls"`
}

// World is the whole shared state of one game. Rules treat it as a value:
// they return a new World and never write through the one they were given.
type World struct {
	Players        []Player   `json:"players"`
	Map            []Tile     `json:"map"`
	CurrentPlayer  int        `json:"currentPlayer"`
	CurrentDie     DiceRoll   `json:"currentDie"`
	Thief          *Thief     `json:"thief,omitempty"`
	GameState      GameState  `json:"gameState"`
	GameStatistics Statistics `json:"gameStatistics"`
	PointsToWin    int        `json:"pointsToWin"`
}

// NewWorld returns an empty game in the setup phase on the given board.
func NewWorld(tiles []Tile) World {
	return World{
		Players:   []Player{},
		Map:       tiles,
		GameState: Pregame,
	}
}

// Copy returns a deep copy of the World.
func (w World) Copy() World {
	players := make([]Player, len(w.Players))
	for i, p := range w.Players {
		players[i] = p.Copy()
	}
	w.Players = players
	w.Map = slices.Clone(w.Map)
	if w.Thief != nil {
		thief := *w.Thief
		w.Thief = &thief
	}
	return w
}

// FindPlayer returns the index of the player called name.
func (w World) FindPlayer(name string) (int, bool) {
	i := utils.FindIndexFunc(w.Players, func(p Player) bool { return p.Name == name })
	return i, i >= 0
}

// Player returns the player called name.
func (w World) Player(name string) (Player, bool) {
	i, ok := w.FindPlayer(name)
	if !ok {
		return Player{}, false
	}
	return w.Players[i], true
}

// ActivePlayer returns the player whose turn it is.
func (w World) ActivePlayer() (Player, bool) {
	if w.CurrentPlayer < 0 || w.CurrentPlayer >= len(w.Players) {
		return Player{}, false
	}
	return w.Players[w.CurrentPlayer], true
}

// withPlayer returns a World whose players slice is new and holds p at index
// i. Every other player record is shared as is.
func (w World) withPlayer(i int, p Player) World {
	players := slices.Clone(w.Players)
	players[i] = p
	w.Players = players
	return w
}

// updatePlayer applies f to the player called name. The caller must have
// checked that the player exists.
func (w World) updatePlayer(name string, f func(Player) Player) World {
	i, ok := w.FindPlayer(name)
	if !ok {
		return w
	}
	return w.withPlayer(i, f(w.Players[i].Copy()))
}

// NextPlayer returns the index of the player after the current one.
func (w World) NextPlayer() int {
	if len(w.Players) == 0 {
		return 0
	}
	return (w.CurrentPlayer + 1) % len(w.Players)
}

// ThiefOn reports whether the thief blocks the tile at coord.
func (w World) ThiefOn(coord HexCoordinate) bool {
	return w.Thief != nil && w.Thief.HexCoordinate == coord
}

// Hash fingerprints the parts of the World a rule can change.
func (w World) Hash() uint64 {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}

	hasher.Write([]byte(w.GameState))
	write(w.CurrentPlayer)
	write(int(w.CurrentDie))
	write(w.PointsToWin)
	write(w.GameStatistics.Turns)
	if w.Thief != nil {
		write(w.Thief.HexCoordinate.X)
		write(w.Thief.HexCoordinate.Y)
	}
	for _, t := range w.Map {
		hasher.Write([]byte(t.Type))
		write(int(t.DiceRoll))
		write(t.Coord.X)
		write(t.Coord.Y)
	}
	for _, p := range w.Players {
		hasher.Write([]byte(p.Name))
		r := p.Resources
		for _, v := range []int{r.Wood, r.Wool, r.Clay, r.Grain, r.Stone, p.Knights, p.Points} {
			write(v)
		}
		for _, c := range p.BuildingPositions() {
			write(c.X)
			write(c.Y)
		}
		write(len(p.Houses))
		for _, r := range p.Roads {
			write(r.Start.X)
			write(r.Start.Y)
			write(r.End.X)
			write(r.End.Y)
		}
		for _, c := range p.DevCards {
			hasher.Write([]byte(c.Type))
			if c.Played {
				write(1)
			} else {
				write(0)
			}
		}
	}
	return hasher.Sum64()
}

// ValidateWorld checks a client supplied World before it replaces a game.
func ValidateWorld(w World) error {
	switch w.GameState {
	case Pregame, Started, Finished:
	default:
		return NewViolation(InvalidAction, "unknown game state %q", w.GameState)
	}
	if err := ValidateMap(w.Map); err != nil {
		return NewViolation(InvalidAction, "%s", err)
	}
	seen := make(map[string]bool, len(w.Players))
	for _, p := range w.Players {
		if p.Name == "" || seen[p.Name] {
			return NewViolation(InvalidAction, "player names must be unique and not empty")
		}
		seen[p.Name] = true
		if !ResourcesAreNonNegative(p.Resources) {
			return NewViolation(InvalidAction, "%s cannot hold negative resources", p.Name)
		}
	}
	if len(w.Players) > 0 && (w.CurrentPlayer < 0 || w.CurrentPlayer >= len(w.Players)) {
		return NewViolation(InvalidAction, "current player %d is not seated", w.CurrentPlayer)
	}
	if w.Thief != nil {
		if _, ok := FindTile(w.Map, w.Thief.HexCoordinate); !ok {
			return NewViolation(InvalidAction, "the thief is not on the map")
		}
	}
	return nil
}
