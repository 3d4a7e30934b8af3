// Package player holds a simple bot that plays legal actions at random.
package player

import (
	"colonists/game"
	"colonists/result"
	"colonists/utils"
)

// Player picks a random legal action, preferring the ones that score.
type Player struct {
	name string
}

// NewPlayer creates a bot playing as name.
func NewPlayer(name string) *Player {
	return &Player{name: name}
}

func (p *Player) Name() string {
	return p.name
}

// TakeTurn decides on the next action. It never returns nil: when nothing
// else is legal it ends the turn.
func (p *Player) TakeTurn(w game.World, env game.Env) game.Action {
	if w.GameState == game.Pregame {
		if a := pick(env, w, p.setupActions(w, env.Rules)); a != nil {
			return a
		}
		return game.LockMap{PlayerName: p.name}
	}

	// Cities first, then houses, roads and cards.
	for _, group := range [][]game.Action{
		p.thiefActions(w),
		p.cityActions(w),
		p.houseActions(w),
		p.roadActions(w),
		p.cardActions(w),
		p.tradeActions(w, env.Rules),
	} {
		if a := pick(env, w, group); a != nil {
			return a
		}
	}
	return game.EndTurn{PlayerName: p.name}
}

// pick returns a random legal action of the group, nil when none is legal.
func pick(env game.Env, w game.World, candidates []game.Action) game.Action {
	legal := utils.Filter(candidates, func(a game.Action) bool {
		return a.Rule(env)(result.Success(w)).IsSuccess()
	})
	if len(legal) == 0 {
		return nil
	}
	return legal[env.Rand.Intn(len(legal))]
}

func landCorners(w game.World) []game.MatrixCoordinate {
	seen := map[game.MatrixCoordinate]bool{}
	var corners []game.MatrixCoordinate
	for _, t := range w.Map {
		if !t.Type.Produces() && t.Type != game.Desert {
			continue
		}
		for _, c := range game.HexCorners(t.Coord) {
			if !seen[c] {
				seen[c] = true
				corners = append(corners, c)
			}
		}
	}
	return corners
}

func (p *Player) setupActions(w game.World, rules game.Rules) []game.Action {
	me, ok := w.Player(p.name)
	if !ok {
		return nil
	}
	var actions []game.Action
	buildings := len(me.Houses) + len(me.Cities)
	if buildings > len(me.Roads) && len(me.Roads) < rules.InitialRoads() {
		for _, pos := range me.BuildingPositions() {
			for _, n := range game.NeighbouringMatrixCoords(pos) {
				actions = append(actions, game.BuildRoadInitial{PlayerName: p.name, Start: pos, End: n})
			}
		}
		return actions
	}
	if buildings < rules.InitialHouses() {
		for _, c := range landCorners(w) {
			actions = append(actions, game.BuildHouseInitial{PlayerName: p.name, Coordinates: c})
		}
	}
	return actions
}

func (p *Player) thiefActions(w game.World) []game.Action {
	if w.CurrentDie != game.ThiefRoll {
		return nil
	}
	var actions []game.Action
	for _, t := range w.Map {
		if t.Type.Produces() {
			actions = append(actions, game.MoveThief{PlayerName: p.name, Coordinates: t.Coord})
		}
	}
	return actions
}

func (p *Player) cityActions(w game.World) []game.Action {
	me, _ := w.Player(p.name)
	actions := make([]game.Action, 0, len(me.Houses))
	for _, h := range me.Houses {
		actions = append(actions, game.BuildCity{PlayerName: p.name, Coordinates: h.Position})
	}
	return actions
}

func (p *Player) houseActions(w game.World) []game.Action {
	me, _ := w.Player(p.name)
	var actions []game.Action
	for _, r := range me.Roads {
		for _, c := range []game.MatrixCoordinate{r.Start, r.End} {
			actions = append(actions, game.BuildHouse{PlayerName: p.name, Coordinates: c})
		}
	}
	return actions
}

func (p *Player) roadActions(w game.World) []game.Action {
	me, _ := w.Player(p.name)
	ends := me.BuildingPositions()
	for _, r := range me.Roads {
		ends = append(ends, r.Start, r.End)
	}
	var actions []game.Action
	for _, c := range ends {
		for _, n := range game.NeighbouringMatrixCoords(c) {
			actions = append(actions, game.BuildRoad{PlayerName: p.name, Start: c, End: n})
		}
	}
	return actions
}

func (p *Player) cardActions(w game.World) []game.Action {
	me, _ := w.Player(p.name)
	actions := []game.Action{game.BuyCard{PlayerName: p.name}}
	for _, card := range me.DevCards {
		if card.Played {
			continue
		}
		switch card.Type {
		case game.Knight:
			for _, t := range w.Map {
				if t.Type.Produces() {
					actions = append(actions, game.MoveThiefDevCard{PlayerName: p.name, Coordinates: t.Coord})
				}
			}
		case game.YearOfPlenty:
			actions = append(actions, game.PlayCard{PlayerName: p.name, Card: card, ChosenResources: []game.TileType{game.Grain, game.Stone}})
		case game.Monopoly:
			actions = append(actions, game.PlayCard{PlayerName: p.name, Card: card, ChosenResources: []game.TileType{game.Wood}})
		default:
			actions = append(actions, game.PlayCard{PlayerName: p.name, Card: card})
		}
	}
	return actions
}

// tradeActions offers the bank its surplus for what the player has least of.
func (p *Player) tradeActions(w game.World, rules game.Rules) []game.Action {
	me, _ := w.Player(p.name)
	ratio := rules.TradeRatio("")
	scarce := game.ResourceTypes[0]
	for _, t := range game.ResourceTypes {
		if me.Resources.AmountOf(t) < me.Resources.AmountOf(scarce) {
			scarce = t
		}
	}
	var actions []game.Action
	for _, t := range game.ResourceTypes {
		if t == scarce || me.Resources.AmountOf(t) < ratio {
			continue
		}
		actions = append(actions, game.BankTrade{
			PlayerName: p.name,
			Transfer:   game.AddAmountOfType(ratio, game.Resources{}, t),
			Receive:    game.AddAmountOfType(1, game.Resources{}, scarce),
		})
	}
	return actions
}
