package game

// Resources is a bundle of the five producible resources. Components may go
// negative only inside a computation; a rule must reject such a bundle before
// it is committed to a Player.
type Resources struct {
	Wood  int `json:"wood"`
	Wool  int `json:"wool"`
	Clay  int `json:"clay"`
	Grain int `json:"grain"`
	Stone int `json:"stone"`
}

// ResourceTypes lists the tile types that produce a resource, in bundle order.
var ResourceTypes = []TileType{Wood, Wool, Clay, Grain, Stone}

func AddResources(a, b Resources) Resources {
	return Resources{
		Wood:  a.Wood + b.Wood,
		Wool:  a.Wool + b.Wool,
		Clay:  a.Clay + b.Clay,
		Grain: a.Grain + b.Grain,
		Stone: a.Stone + b.Stone,
	}
}

func SubtractResources(a, b Resources) Resources {
	return Resources{
		Wood:  a.Wood - b.Wood,
		Wool:  a.Wool - b.Wool,
		Clay:  a.Clay - b.Clay,
		Grain: a.Grain - b.Grain,
		Stone: a.Stone - b.Stone,
	}
}

// ResourcesAreNonNegative is the only gate in front of committing a bundle.
func ResourcesAreNonNegative(r Resources) bool {
	return r.Wood >= 0 && r.Wool >= 0 && r.Clay >= 0 && r.Grain >= 0 && r.Stone >= 0
}

func (r Resources) Total() int {
	return r.Wood + r.Wool + r.Clay + r.Grain + r.Stone
}

func (r Resources) IsZero() bool {
	return r == Resources{}
}

// AmountOf returns the component produced by the tile type, 0 for tile types
// that produce nothing.
func (r Resources) AmountOf(t TileType) int {
	switch t {
	case Wood:
		return r.Wood
	case Wool:
		return r.Wool
	case Clay:
		return r.Clay
	case Grain:
		return r.Grain
	case Stone:
		return r.Stone
	default:
		return 0
	}
}

// AddAmountOfType adds amount to the component produced by t. Tile types that
// produce nothing leave the bundle unchanged.
func AddAmountOfType(amount int, r Resources, t TileType) Resources {
	var add Resources
	switch t {
	case Wood:
		add.Wood = amount
	case Wool:
		add.Wool = amount
	case Clay:
		add.Clay = amount
	case Grain:
		add.Grain = amount
	case Stone:
		add.Stone = amount
	default:
		return r
	}
	return AddResources(r, add)
}

// DeleteAllOfType zeroes the component produced by t.
func DeleteAllOfType(t TileType, r Resources) Resources {
	return AddAmountOfType(-r.AmountOf(t), r, t)
}

// SingleType reports the only non-zero component of r. It returns false when
// r is empty or holds more than one resource type.
func (r Resources) SingleType() (TileType, int, bool) {
	var (
		found  TileType
		amount int
	)
	for _, t := range ResourceTypes {
		n := r.AmountOf(t)
		if n == 0 {
			continue
		}
		if found != "" {
			return "", 0, false
		}
		found, amount = t, n
	}
	return found, amount, found != ""
}

// unitAt returns the resource type of the i-th unit when the bundle is laid
// out in ResourceTypes order. i must be in [0, Total()).
func (r Resources) unitAt(i int) TileType {
	for _, t := range ResourceTypes {
		n := r.AmountOf(t)
		if i < n {
			return t
		}
		i -= n
	}
	return ""
}
