package game

import "slices"

// House is a settlement on a corner. A city replaces it in place.
type House struct {
	Position MatrixCoordinate `json:"position"`
}

type City struct {
	Position MatrixCoordinate `json:"position"`
}

// Road occupies the edge between two corners. Start and End are unordered.
type Road struct {
	Start MatrixCoordinate `json:"start"`
	End   MatrixCoordinate `json:"end"`
}

// SameEdge reports whether the road covers the edge a-b in either direction.
func (r Road) SameEdge(a, b MatrixCoordinate) bool {
	return (r.Start == a && r.End == b) || (r.Start == b && r.End == a)
}

// Touches reports whether c is one of the road's endpoints.
func (r Road) Touches(c MatrixCoordinate) bool {
	return r.Start == c || r.End == c
}

// Player is identified by Name everywhere in the engine.
type Player struct {
	Name      string            `json:"name"`
	Color     uint32            `json:"color"`
	Resources Resources         `json:"resources"`
	Knights   int               `json:"knights"`
	Houses    []House           `json:"houses"`
	Cities    []City            `json:"cities"`
	Roads     []Road            `json:"roads"`
	DevCards  []DevelopmentCard `json:"devCards"`
	Points    int               `json:"points"`
}

func NewPlayer(name string, color uint32) Player {
	return Player{
		Name:     name,
		Color:    color,
		Houses:   []House{},
		Cities:   []City{},
		Roads:    []Road{},
		DevCards: []DevelopmentCard{},
	}
}

// Copy returns a player that shares no slices with p.
func (p Player) Copy() Player {
	p.Houses = slices.Clone(p.Houses)
	p.Cities = slices.Clone(p.Cities)
	p.Roads = slices.Clone(p.Roads)
	p.DevCards = slices.Clone(p.DevCards)
	return p
}

// HasHouseAt reports whether the player has a house at c.
func (p Player) HasHouseAt(c MatrixCoordinate) bool {
	return slices.ContainsFunc(p.Houses, func(h House) bool { return h.Position == c })
}

// HasBuildingAt reports whether the player has a house or a city at c.
func (p Player) HasBuildingAt(c MatrixCoordinate) bool {
	return p.HasHouseAt(c) || slices.ContainsFunc(p.Cities, func(ct City) bool { return ct.Position == c })
}

// HasRoadTouching reports whether one of the player's roads ends at c.
func (p Player) HasRoadTouching(c MatrixCoordinate) bool {
	return slices.ContainsFunc(p.Roads, func(r Road) bool { return r.Touches(c) })
}

// BuildingPositions lists houses and cities in that order.
func (p Player) BuildingPositions() []MatrixCoordinate {
	out := make([]MatrixCoordinate, 0, len(p.Houses)+len(p.Cities))
	for _, h := range p.Houses {
		out = append(out, h.Position)
	}
	for _, c := range p.Cities {
		out = append(out, c.Position)
	}
	return out
}

// UnplayedCard returns the index of the first unplayed card of type t.
func (p Player) UnplayedCard(t CardType) (int, bool) {
	i := slices.IndexFunc(p.DevCards, func(c DevelopmentCard) bool { return c.Type == t && !c.Played })
	return i, i >= 0
}
