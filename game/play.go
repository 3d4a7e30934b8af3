package game

import "colonists/result"

// Each action's Rule lists its checks in the order they are reported: phase,
// turn, cost, then board legality.

func (a BuildHouse) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		Purchase(a.PlayerName, env.Rules.HouseCost()),
		PlaceHouse(a.Coordinates, a.PlayerName),
		CheckVictory,
	)
}

func (a BuildHouseInitial) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Pregame),
		PlayerExists(a.PlayerName),
		PlaceHouseInitial(a.Coordinates, a.PlayerName, env.Rules),
	)
}

func (a BuildCity) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		Purchase(a.PlayerName, env.Rules.CityCost()),
		PlaceCity(a.Coordinates, a.PlayerName),
		CheckVictory,
	)
}

func (a BuildRoad) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		Purchase(a.PlayerName, env.Rules.RoadCost()),
		PlaceRoad(a.Start, a.End, a.PlayerName),
	)
}

func (a BuildRoadInitial) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Pregame),
		PlayerExists(a.PlayerName),
		PlaceRoadInitial(a.Start, a.End, a.PlayerName, env.Rules),
	)
}

func (a MoveThief) Rule(Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		DiceRollWasSeven,
		PlaceThief(a.Coordinates),
		ConsumeSeven,
	)
}

func (a MoveThiefDevCard) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		ResolveCard(a.PlayerName, Knight, nil, env.Rules),
		PlaceThief(a.Coordinates),
	)
}

func (a StealFromPlayer) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		StealResource(a.PlayerName, a.ToStealFrom, env.Rand),
	)
}

func (a PlayerTrade) Rule(Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		PlayerExists(a.OtherPlayerName),
		HasResources(a.PlayerName, a.SentResources),
		HasResources(a.OtherPlayerName, a.ReceivedResources),
		SwapResources(a.PlayerName, a.OtherPlayerName, a.SentResources, a.ReceivedResources),
	)
}

func (a ProposeTrade) Rule(Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		HasResources(a.PlayerName, a.Resources),
		nonNegative(a.WantsResources),
	)
}

func (a BankTrade) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		HasResources(a.PlayerName, a.Transfer),
		ResourcesMatchRatio(a.Transfer, a.Receive, env.Rules.TradeRatio(""), ""),
		TransferResources(a.PlayerName, a.Transfer, a.Receive),
	)
}

func (a HarborTrade) Rule(env Env) Rule {
	// A specialised harbor only takes its own resource.
	only, _ := a.HarborType.HarborResource()
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		PlayerHasHarbor(a.PlayerName, a.HarborType),
		HasResources(a.PlayerName, a.Transfer),
		ResourcesMatchRatio(a.Transfer, a.Receive, env.Rules.TradeRatio(a.HarborType), only),
		TransferResources(a.PlayerName, a.Transfer, a.Receive),
	)
}

func (a BuyCard) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		Purchase(a.PlayerName, env.Rules.CardCost()),
		AssignDevelopmentCard(a.PlayerName, env.Rand),
	)
}

func (a PlayCard) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		cardNotPlayed(a.Card),
		ResolveCard(a.PlayerName, a.Card.Type, a.ChosenResources, env.Rules),
		CheckVictory,
	)
}

func (a LockMap) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Pregame),
		PlayerExists(a.PlayerName),
		AssignInitialResources(env.Rules),
		StartGame(a.PointsToWin, env.Rules),
	)
}

func (a EndTurn) Rule(env Env) Rule {
	return Chain(
		EnsureGameState(Started),
		IsPlayersTurn(a.PlayerName),
		AssignNextPlayerTurn(env),
	)
}

func cardNotPlayed(card DevelopmentCard) Step {
	return func(w World) result.Result[World] {
		if card.Played {
			return fail(CardStateViolation, "this card has already been played")
		}
		return result.Success(w)
	}
}

func nonNegative(r Resources) Step {
	return func(w World) result.Result[World] {
		if !ResourcesAreNonNegative(r) {
			return fail(InvalidAction, "resource amounts cannot be negative")
		}
		return result.Success(w)
	}
}
