package game

import "encoding/json"

// ActionType is the discriminant of an action on the wire.
type ActionType string

const (
	BuildHouseAction        ActionType = "buildHouse"
	BuildHouseInitialAction ActionType = "buildHouseInitial"
	BuildCityAction         ActionType = "buildCity"
	BuildRoadAction         ActionType = "buildRoad"
	BuildRoadInitialAction  ActionType = "buildRoadInitial"
	MoveThiefAction         ActionType = "moveThief"
	MoveThiefDevCardAction  ActionType = "moveThiefDevelopmentCard"
	StealFromPlayerAction   ActionType = "stealFromPlayer"
	PlayerTradeAction       ActionType = "playerTrade"
	ProposeTradeAction      ActionType = "proposeTrade"
	BankTradeAction         ActionType = "bankTrade"
	HarborTradeAction       ActionType = "harborTrade"
	BuyCardAction           ActionType = "buyCard"
	PlayCardAction          ActionType = "playCard"
	LockMapAction           ActionType = "lockMap"
	EndTurnAction           ActionType = "endTurn"
)

// Action is a request from one player to change the World. Actions are plain
// values and carry only what their rule needs.
type Action interface {
	Type() ActionType
	Actor() string
	// Rule builds the pipeline that validates and applies the action.
	Rule(env Env) Rule
}

// decoders maps every known discriminant to the decoder of its parameters.
var decoders = map[ActionType]func(json.RawMessage) (Action, error){
	BuildHouseAction:        decode[BuildHouse],
	BuildHouseInitialAction: decode[BuildHouseInitial],
	BuildCityAction:         decode[BuildCity],
	BuildRoadAction:         decode[BuildRoad],
	BuildRoadInitialAction:  decode[BuildRoadInitial],
	MoveThiefAction:         decode[MoveThief],
	MoveThiefDevCardAction:  decode[MoveThiefDevCard],
	StealFromPlayerAction:   decode[StealFromPlayer],
	PlayerTradeAction:       decode[PlayerTrade],
	ProposeTradeAction:      decode[ProposeTrade],
	BankTradeAction:         decode[BankTrade],
	HarborTradeAction:       decode[HarborTrade],
	BuyCardAction:           decode[BuyCard],
	PlayCardAction:          decode[PlayCard],
	LockMapAction:           decode[LockMap],
	EndTurnAction:           decode[EndTurn],
}

// Known reports whether t names an action the engine can resolve.
func (t ActionType) Known() bool {
	_, ok := decoders[t]
	return ok
}

func decode[T Action](raw json.RawMessage) (Action, error) {
	var a T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
	}
	return a, nil
}
