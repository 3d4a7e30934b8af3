package game

import "colonists/result"

func DiceRollWasSeven(w World) result.Result[World] {
	if w.CurrentDie != ThiefRoll {
		return fail(PhaseViolation, "you cannot move the thief if you have not rolled a 7")
	}
	return result.Success(w)
}

// ConsumeSeven clears the roll so a single seven moves the thief once.
func ConsumeSeven(w World) result.Result[World] {
	w.CurrentDie = NoRoll
	return result.Success(w)
}

// PlaceThief puts the thief on the tile at coord. The thief has to move to a
// different tile of the map.
func PlaceThief(coord HexCoordinate) Step {
	return func(w World) result.Result[World] {
		if _, ok := FindTile(w.Map, coord); !ok {
			return fail(TopologicalViolation, "there is no tile at %d,%d", coord.X, coord.Y)
		}
		if w.ThiefOn(coord) {
			return fail(TopologicalViolation, "the thief is already on that tile")
		}
		w.Thief = &Thief{HexCoordinate: coord}
		return result.Success(w)
	}
}

// StealResource moves one random resource from victim to name. The victim
// needs a building next to the thief and something to steal.
func StealResource(name, victim string, rng Random) Step {
	return func(w World) result.Result[World] {
		if name == victim {
			return fail(InvalidAction, "you cannot steal from yourself")
		}
		if _, ok := w.FindPlayer(name); !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		v, ok := w.Player(victim)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", victim)
		}
		if w.Thief == nil || !touchesTile(v, w.Thief.HexCoordinate) {
			return fail(TopologicalViolation, "%s has no building next to the thief", victim)
		}
		total := v.Resources.Total()
		if total == 0 {
			return fail(EconomicViolation, "%s has nothing to steal", victim)
		}
		kind := v.Resources.unitAt(rng.Intn(total))
		w = w.updatePlayer(victim, func(p Player) Player {
			p.Resources = AddAmountOfType(-1, p.Resources, kind)
			return p
		})
		return result.Success(w.updatePlayer(name, func(p Player) Player {
			p.Resources = AddAmountOfType(1, p.Resources, kind)
			return p
		}))
	}
}

func touchesTile(p Player, coord HexCoordinate) bool {
	for _, pos := range p.BuildingPositions() {
		if touches(pos, coord) {
			return true
		}
	}
	return false
}
