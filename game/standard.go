package game

type StandardRules struct {
	Costs           map[Item]Resources
	SetupHouses     int
	SetupRoads      int
	BankRatio       int
	GenericRatio    int
	SpecialistRatio int
	WinningPoints   int
	MinPlayerCount  int
	MaxPlayerCount  int
	HouseProduction int
	CityProduction  int
}

// Item names something a player can pay for.
type Item string

const (
	ItemHouse Item = "house"
	ItemCity  Item = "city"
	ItemRoad  Item = "road"
	ItemCard  Item = "card"
)

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Costs: map[Item]Resources{
			ItemHouse: {Wood: 1, Clay: 1, Wool: 1, Grain: 1},
			ItemCity:  {Grain: 2, Stone: 3},
			ItemRoad:  {Wood: 1, Clay: 1},
			ItemCard:  {Wool: 1, Grain: 1, Stone: 1},
		},
		SetupHouses:     2,
		SetupRoads:      2,
		BankRatio:       4,
		GenericRatio:    3,
		SpecialistRatio: 2,
		WinningPoints:   10,
		MinPlayerCount:  2,
		MaxPlayerCount:  6,
		HouseProduction: 1,
		CityProduction:  2,
	}
}

func (sr *StandardRules) HouseCost() Resources { return sr.Costs[ItemHouse] }
func (sr *StandardRules) CityCost() Resources  { return sr.Costs[ItemCity] }
func (sr *StandardRules) RoadCost() Resources  { return sr.Costs[ItemRoad] }
func (sr *StandardRules) CardCost() Resources  { return sr.Costs[ItemCard] }

func (sr *StandardRules) InitialHouses() int { return sr.SetupHouses }
func (sr *StandardRules) InitialRoads() int  { return sr.SetupRoads }

func (sr *StandardRules) TradeRatio(harbor TileType) int {
	switch {
	case harbor == ThreeToOneHarbor:
		return sr.GenericRatio
	case harbor.IsHarbor():
		return sr.SpecialistRatio
	default:
		return sr.BankRatio
	}
}

func (sr *StandardRules) HouseYield() int  { return sr.HouseProduction }
func (sr *StandardRules) CityYield() int   { return sr.CityProduction }
func (sr *StandardRules) PointsToWin() int { return sr.WinningPoints }
func (sr *StandardRules) MinPlayers() int  { return sr.MinPlayerCount }
func (sr *StandardRules) MaxPlayers() int  { return sr.MaxPlayerCount }
