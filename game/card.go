package game

import (
	"colonists/result"
	"colonists/utils"
)

type CardType string

const (
	Knight       CardType = "Knight"
	VictoryPoint CardType = "Victory Point"
	RoadBuilding CardType = "Road Building"
	YearOfPlenty CardType = "Year of Plenty"
	Monopoly     CardType = "Monopoly"
)

// CardTypes is the closed set of development cards, in draw order.
var CardTypes = []CardType{Knight, VictoryPoint, RoadBuilding, YearOfPlenty, Monopoly}

func (c CardType) Valid() bool {
	return utils.FindIndex(CardTypes, c) >= 0
}

// DevelopmentCard is a card in a player's hand. Played flips to true exactly
// once, when the card is resolved.
type DevelopmentCard struct {
	Type   CardType `json:"type"`
	Played bool     `json:"played"`
}

// RandomDevelopmentCard draws a uniformly random card type.
func RandomDevelopmentCard(rng Random) DevelopmentCard {
	return DevelopmentCard{Type: CardTypes[rng.Intn(len(CardTypes))]}
}

// AssignDevelopmentCard adds a random card to the player's hand.
func AssignDevelopmentCard(name string, rng Random) Step {
	return func(w World) result.Result[World] {
		if _, ok := w.FindPlayer(name); !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		card := RandomDevelopmentCard(rng)
		return result.Success(w.updatePlayer(name, func(p Player) Player {
			p.DevCards = append(p.DevCards, card)
			return p
		}))
	}
}

// ResolveCard resolves the first unplayed card of type card in the player's
// hand. Year of Plenty takes two chosen resources, Monopoly one.
func ResolveCard(name string, card CardType, chosen []TileType, rules Rules) Step {
	return func(w World) result.Result[World] {
		if !card.Valid() {
			return fail(InvalidAction, "%q is not a development card", card)
		}
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		i, ok := p.UnplayedCard(card)
		if !ok {
			return fail(CardStateViolation, "you do not have that card")
		}
		effect, err := cardEffect(name, card, chosen, rules)
		if err != nil {
			return result.FailWith[World](err)
		}
		w = w.updatePlayer(name, func(p Player) Player {
			p.DevCards[i].Played = true
			return p
		})
		return result.Success(effect(w))
	}
}

func cardEffect(name string, card CardType, chosen []TileType, rules Rules) (func(World) World, error) {
	self := func(f func(Player) Player) func(World) World {
		return func(w World) World { return w.updatePlayer(name, f) }
	}
	switch card {
	case VictoryPoint:
		return self(func(p Player) Player {
			p.Points++
			return p
		}), nil
	case Knight:
		return self(func(p Player) Player {
			p.Knights++
			return p
		}), nil
	case RoadBuilding:
		return self(func(p Player) Player {
			p.Resources = AddResources(p.Resources, AddResources(rules.RoadCost(), rules.RoadCost()))
			return p
		}), nil
	case YearOfPlenty:
		if len(chosen) != 2 || !chosen[0].Produces() || !chosen[1].Produces() {
			return nil, NewViolation(InvalidAction, "choose two resources for Year of Plenty")
		}
		return self(func(p Player) Player {
			p.Resources = AddAmountOfType(1, p.Resources, chosen[0])
			p.Resources = AddAmountOfType(1, p.Resources, chosen[1])
			return p
		}), nil
	case Monopoly:
		if len(chosen) != 1 || !chosen[0].Produces() {
			return nil, NewViolation(InvalidAction, "choose one resource for Monopoly")
		}
		return func(w World) World { return monopolize(w, name, chosen[0]) }, nil
	}
	return nil, NewViolation(InvalidAction, "%q is not a development card", card)
}

// monopolize drains kind from every other player into name.
func monopolize(w World, name string, kind TileType) World {
	taken := 0
	players := make([]Player, len(w.Players))
	for i, p := range w.Players {
		if p.Name != name {
			taken += p.Resources.AmountOf(kind)
			p.Resources = DeleteAllOfType(kind, p.Resources)
		}
		players[i] = p
	}
	w.Players = players
	return w.updatePlayer(name, func(p Player) Player {
		p.Resources = AddAmountOfType(taken, p.Resources, kind)
		return p
	})
}
