package game

import (
	"encoding/json"
	"fmt"

	"colonists/result"
)

type BuildHouse struct {
	PlayerName  string           `json:"playerName"`
	Coordinates MatrixCoordinate `json:"coordinates"`
}

type BuildHouseInitial struct {
	PlayerName  string           `json:"playerName"`
	Coordinates MatrixCoordinate `json:"coordinates"`
}

type BuildCity struct {
	PlayerName  string           `json:"playerName"`
	Coordinates MatrixCoordinate `json:"coordinates"`
}

type BuildRoad struct {
	PlayerName string           `json:"playerName"`
	Start      MatrixCoordinate `json:"start"`
	End        MatrixCoordinate `json:"end"`
}

type BuildRoadInitial struct {
	PlayerName string           `json:"playerName"`
	Start      MatrixCoordinate `json:"start"`
	End        MatrixCoordinate `json:"end"`
}

// MoveThief is only legal right after a seven was rolled.
type MoveThief struct {
	PlayerName  string        `json:"playerName"`
	Coordinates HexCoordinate `json:"coordinates"`
}

// MoveThiefDevCard moves the thief by playing a Knight.
type MoveThiefDevCard struct {
	PlayerName  string        `json:"playerName"`
	Coordinates HexCoordinate `json:"coordinates"`
}

type StealFromPlayer struct {
	PlayerName  string `json:"playerName"`
	ToStealFrom string `json:"toStealFrom"`
}

// PlayerTrade swaps SentResources of the acting player for
// ReceivedResources of OtherPlayerName.
type PlayerTrade struct {
	PlayerName        string    `json:"playerName"`
	OtherPlayerName   string    `json:"otherPlayerName"`
	SentResources     Resources `json:"sentResources"`
	ReceivedResources Resources `json:"receivedResources"`
}

// ProposeTrade announces an offer. It changes nothing.
type ProposeTrade struct {
	PlayerName     string    `json:"playerName"`
	Resources      Resources `json:"resources"`
	WantsResources Resources `json:"wantsResources"`
}

type BankTrade struct {
	PlayerName string    `json:"playerName"`
	Transfer   Resources `json:"transfer"`
	Receive    Resources `json:"receive"`
}

type HarborTrade struct {
	PlayerName string    `json:"playerName"`
	HarborType TileType  `json:"harborType"`
	Transfer   Resources `json:"transfer"`
	Receive    Resources `json:"receive"`
}

type BuyCard struct {
	PlayerName string `json:"playerName"`
}

// PlayCard resolves a card from the player's hand. ChosenResources holds
// two types for Year of Plenty and one for Monopoly.
type PlayCard struct {
	PlayerName      string          `json:"playerName"`
	Card            DevelopmentCard `json:"card"`
	ChosenResources []TileType      `json:"chosenResources,omitempty"`
}

// LockMap ends the setup phase. A zero PointsToWin uses the rule default.
type LockMap struct {
	PlayerName  string `json:"playerName"`
	PointsToWin int    `json:"pointsToWin,omitempty"`
}

type EndTurn struct {
	PlayerName string `json:"playerName"`
}

func (a BuildHouse) Type() ActionType        { return BuildHouseAction }
func (a BuildHouseInitial) Type() ActionType { return BuildHouseInitialAction }
func (a BuildCity) Type() ActionType         { return BuildCityAction }
func (a BuildRoad) Type() ActionType         { return BuildRoadAction }
func (a BuildRoadInitial) Type() ActionType  { return BuildRoadInitialAction }
func (a MoveThief) Type() ActionType         { return MoveThiefAction }
func (a MoveThiefDevCard) Type() ActionType  { return MoveThiefDevCardAction }
func (a StealFromPlayer) Type() ActionType   { return StealFromPlayerAction }
func (a PlayerTrade) Type() ActionType       { return PlayerTradeAction }
func (a ProposeTrade) Type() ActionType      { return ProposeTradeAction }
func (a BankTrade) Type() ActionType         { return BankTradeAction }
func (a HarborTrade) Type() ActionType       { return HarborTradeAction }
func (a BuyCard) Type() ActionType           { return BuyCardAction }
func (a PlayCard) Type() ActionType          { return PlayCardAction }
func (a LockMap) Type() ActionType           { return LockMapAction }
func (a EndTurn) Type() ActionType           { return EndTurnAction }

func (a BuildHouse) Actor() string        { return a.PlayerName }
func (a BuildHouseInitial) Actor() string { return a.PlayerName }
func (a BuildCity) Actor() string         { return a.PlayerName }
func (a BuildRoad) Actor() string         { return a.PlayerName }
func (a BuildRoadInitial) Actor() string  { return a.PlayerName }
func (a MoveThief) Actor() string         { return a.PlayerName }
func (a MoveThiefDevCard) Actor() string  { return a.PlayerName }
func (a StealFromPlayer) Actor() string   { return a.PlayerName }
func (a PlayerTrade) Actor() string       { return a.PlayerName }
func (a ProposeTrade) Actor() string      { return a.PlayerName }
func (a BankTrade) Actor() string         { return a.PlayerName }
func (a HarborTrade) Actor() string       { return a.PlayerName }
func (a BuyCard) Actor() string           { return a.PlayerName }
func (a PlayCard) Actor() string          { return a.PlayerName }
func (a LockMap) Actor() string           { return a.PlayerName }
func (a EndTurn) Actor() string           { return a.PlayerName }

// UnknownAction is what DecodeAction yields for a discriminant it does not
// know. Its rule always fails.
type UnknownAction struct {
	Kind       ActionType      `json:"type"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

func (a UnknownAction) Type() ActionType { return a.Kind }
func (a UnknownAction) Actor() string    { return "" }

func (a UnknownAction) Rule(Env) Rule {
	err := NewViolation(UnrecognizedAction, "could not map action %q", a.Kind)
	return func(result.Result[World]) result.Result[World] {
		return result.FailWith[World](err)
	}
}

// Envelope is the wire form of an action.
type Envelope struct {
	Type       ActionType      `json:"type"`
	Parameters json.RawMessage `json:"parameters"`
}

// DecodeAction reads an action envelope. Unknown types decode to an
// UnknownAction; malformed JSON is an error.
func DecodeAction(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode action envelope: %w", err)
	}
	decoder, ok := decoders[env.Type]
	if !ok {
		return UnknownAction{Kind: env.Type, Parameters: env.Parameters}, nil
	}
	a, err := decoder(env.Parameters)
	if err != nil {
		return nil, fmt.Errorf("decode %s parameters: %w", env.Type, err)
	}
	return a, nil
}

// EncodeAction writes a in its envelope form.
func EncodeAction(a Action) ([]byte, error) {
	var params any = a
	if u, ok := a.(UnknownAction); ok {
		params = u.Parameters
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode %s parameters: %w", a.Type(), err)
	}
	return json.Marshal(Envelope{Type: a.Type(), Parameters: raw})
}
