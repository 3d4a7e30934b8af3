package game

// Rules is the table of game constants a rule set is played with.
type Rules interface {
	HouseCost() Resources
	CityCost() Resources
	RoadCost() Resources
	CardCost() Resources
	// InitialHouses and InitialRoads bound what a player may place for free
	// during the setup phase.
	InitialHouses() int
	InitialRoads() int
	// TradeRatio returns how many units of one resource buy a single unit at
	// the given harbor. Any non-harbor tile type yields the bank ratio.
	TradeRatio(harbor TileType) int
	HouseYield() int
	CityYield() int
	PointsToWin() int
	MinPlayers() int
	MaxPlayers() int
}
