package game

import (
	"slices"

	"colonists/result"
)

// occupied reports whether a building of any player sits on pos or one edge
// away from it.
func (w World) occupied(pos MatrixCoordinate) bool {
	blocked := append(NeighbouringMatrixCoords(pos), pos)
	for _, p := range w.Players {
		for _, b := range p.BuildingPositions() {
			if slices.Contains(blocked, b) {
				return true
			}
		}
	}
	return false
}

func (w World) roadExists(start, end MatrixCoordinate) bool {
	for _, p := range w.Players {
		for _, r := range p.Roads {
			if r.SameEdge(start, end) {
				return true
			}
		}
	}
	return false
}

func appendHouse(name string, pos MatrixCoordinate) Step {
	return func(w World) result.Result[World] {
		return result.Success(w.updatePlayer(name, func(p Player) Player {
			p.Houses = append(p.Houses, House{Position: pos})
			return p
		}))
	}
}

// PlaceHouse builds a house on pos. The corner and its neighbours must be free
// and the player must own a road ending there.
func PlaceHouse(pos MatrixCoordinate, name string) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		if !p.HasRoadTouching(pos) {
			return fail(TopologicalViolation, "you have to place a house on a road")
		}
		if w.occupied(pos) {
			return fail(TopologicalViolation, "can't place a house here")
		}
		return appendHouse(name, pos)(w)
	}
}

// PlaceHouseInitial builds one of the free setup houses. It follows the same
// distance rule as PlaceHouse but needs no road.
func PlaceHouseInitial(pos MatrixCoordinate, name string, rules Rules) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		if len(p.Houses)+len(p.Cities) >= rules.InitialHouses() {
			return fail(TopologicalViolation, "you have already placed your %d initial houses", rules.InitialHouses())
		}
		if w.occupied(pos) {
			return fail(TopologicalViolation, "can't place a house here")
		}
		return appendHouse(name, pos)(w)
	}
}

// PlaceCity upgrades the player's house on pos.
func PlaceCity(pos MatrixCoordinate, name string) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		if !p.HasHouseAt(pos) {
			return fail(TopologicalViolation, "can't place a city here")
		}
		return result.Success(w.updatePlayer(name, func(p Player) Player {
			p.Houses = slices.DeleteFunc(p.Houses, func(h House) bool { return h.Position == pos })
			p.Cities = append(p.Cities, City{Position: pos})
			return p
		}))
	}
}

func checkRoad(w World, p Player, start, end MatrixCoordinate) result.Result[World] {
	if start == end || !AreAdjacent(start, end) {
		return fail(TopologicalViolation, "you can't place a road here")
	}
	if w.roadExists(start, end) {
		return fail(TopologicalViolation, "you can't place a road here")
	}
	connected := p.HasBuildingAt(start) || p.HasBuildingAt(end) ||
		p.HasRoadTouching(start) || p.HasRoadTouching(end)
	if !connected {
		return fail(TopologicalViolation, "you can't place a road here")
	}
	return result.Success(w)
}

func appendRoad(name string, start, end MatrixCoordinate) Step {
	return func(w World) result.Result[World] {
		return result.Success(w.updatePlayer(name, func(p Player) Player {
			p.Roads = append(p.Roads, Road{Start: start, End: end})
			return p
		}))
	}
}

// PlaceRoad builds a road on the edge start-end. The edge must be free and
// connect to one of the player's buildings or roads.
func PlaceRoad(start, end MatrixCoordinate, name string) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		return checkRoad(w, p, start, end).Then(appendRoad(name, start, end))
	}
}

// PlaceRoadInitial builds one of the free setup roads.
func PlaceRoadInitial(start, end MatrixCoordinate, name string, rules Rules) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		if len(p.Roads) >= rules.InitialRoads() {
			return fail(TopologicalViolation, "you have already placed your %d initial roads", rules.InitialRoads())
		}
		return checkRoad(w, p, start, end).Then(appendRoad(name, start, end))
	}
}
