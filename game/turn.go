package game

import "colonists/result"

// diceTable is the cumulative probability of each sum, ordered the way the
// draw walks it.
var diceTable = []struct {
	upTo float64
	roll DiceRoll
}{
	{0.03, 2},
	{0.06, 12},
	{0.12, 3},
	{0.18, 11},
	{0.26, 4},
	{0.34, 10},
	{0.45, 5},
	{0.56, 9},
	{0.70, 6},
	{0.84, 8},
}

// RandomGameDiceRoll draws the sum of two dice from a single uniform value.
func RandomGameDiceRoll(rng Random) DiceRoll {
	roll := rng.Float64()
	for _, entry := range diceTable {
		if roll <= entry.upTo {
			return entry.roll
		}
	}
	return ThiefRoll
}

// numberOfResourcesForPlayer is what the player's buildings around tile yield.
func numberOfResourcesForPlayer(p Player, tile Tile, rules Rules) int {
	amount := 0
	for _, h := range p.Houses {
		if touches(h.Position, tile.Coord) {
			amount += rules.HouseYield()
		}
	}
	for _, c := range p.Cities {
		if touches(c.Position, tile.Coord) {
			amount += rules.CityYield()
		}
	}
	return amount
}

func touches(pos MatrixCoordinate, coord HexCoordinate) bool {
	for _, h := range NeighbouringHexCoords(pos) {
		if h == coord {
			return true
		}
	}
	return false
}

// assignResources pays every player for the tiles that produce.
func assignResources(w World, rules Rules, produces func(Tile) bool) World {
	players := make([]Player, len(w.Players))
	for i, p := range w.Players {
		for _, tile := range w.Map {
			if !tile.Type.Produces() || w.ThiefOn(tile.Coord) || !produces(tile) {
				continue
			}
			if amount := numberOfResourcesForPlayer(p, tile, rules); amount > 0 {
				p.Resources = AddAmountOfType(amount, p.Resources, tile.Type)
			}
		}
		players[i] = p
	}
	w.Players = players
	return w
}

// AssignResourcesToPlayers pays out a roll. Nothing is produced before the
// game starts or on a seven.
func AssignResourcesToPlayers(w World, roll DiceRoll, rules Rules) World {
	if w.GameState != Started || roll == ThiefRoll {
		return w
	}
	return assignResources(w, rules, func(t Tile) bool { return t.DiceRoll == roll })
}

// AssignInitialResources pays every setup building once for each tile around
// it, regardless of the numbers.
func AssignInitialResources(rules Rules) Step {
	return func(w World) result.Result[World] {
		if w.GameState != Pregame {
			return result.Success(w)
		}
		return result.Success(assignResources(w, rules, func(Tile) bool { return true }))
	}
}

// AssignNextPlayerTurn rolls for the next player, pays out the roll and hands
// the turn over.
func AssignNextPlayerTurn(env Env) Step {
	return func(w World) result.Result[World] {
		if len(w.Players) == 0 {
			return fail(PhaseViolation, "there are no players in this game")
		}
		roll := RandomGameDiceRoll(env.Rand)
		w = AssignResourcesToPlayers(w, roll, env.Rules)
		w.CurrentPlayer = w.NextPlayer()
		w.CurrentDie = roll
		w.GameStatistics.Turns++
		w.GameStatistics.Rolls[roll]++
		return result.Success(w)
	}
}

// StartGame locks the board and seats the first player. The initial payout
// has to run before, while the game is still in Pregame.
func StartGame(pointsToWin int, rules Rules) Step {
	return func(w World) result.Result[World] {
		if len(w.Players) < rules.MinPlayers() {
			return fail(PhaseViolation, "you need at least %d players to start", rules.MinPlayers())
		}
		if pointsToWin < 0 {
			return fail(InvalidAction, "points to win cannot be negative")
		}
		if pointsToWin == 0 {
			pointsToWin = rules.PointsToWin()
		}
		w.GameState = Started
		w.PointsToWin = pointsToWin
		w.CurrentPlayer = 0
		w.CurrentDie = NoRoll
		return result.Success(w)
	}
}
