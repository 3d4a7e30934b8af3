package game

import "colonists/result"

// ResourcesMatchRatio checks a trade of transfer for receive at ratio-to-one.
// Transfer must be a single resource type in a multiple of ratio and receive
// must hold exactly one unit per ratio units given. When only is set the
// transfer must be of that resource.
func ResourcesMatchRatio(transfer, receive Resources, ratio int, only TileType) Step {
	return func(w World) result.Result[World] {
		if !ResourcesAreNonNegative(transfer) || !ResourcesAreNonNegative(receive) {
			return fail(InvalidAction, "resource amounts cannot be negative")
		}
		kind, amount, ok := transfer.SingleType()
		if !ok || amount%ratio != 0 {
			return fail(InvalidAction, "you have to trade %d of a single resource per resource received", ratio)
		}
		if only != "" && kind != only {
			return fail(InvalidAction, "the given resources do not match the harbor")
		}
		if receive.Total() != amount/ratio {
			return fail(InvalidAction, "you can receive %d resources for this trade", amount/ratio)
		}
		return result.Success(w)
	}
}

// PlayerHasHarbor checks the player has a house or city touching a tile of
// the harbor type.
func PlayerHasHarbor(name string, harbor TileType) Step {
	return func(w World) result.Result[World] {
		if !harbor.IsHarbor() {
			return fail(InvalidAction, "%s is not a harbor", harbor)
		}
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		for _, pos := range p.BuildingPositions() {
			for _, h := range NeighbouringHexCoords(pos) {
				if t, ok := FindTile(w.Map, h); ok && t.Type == harbor {
					return result.Success(w)
				}
			}
		}
		return fail(TopologicalViolation, "you do not have a house on a harbor for this trade")
	}
}

// TransferResources swaps remove for assign in the player's bundle.
func TransferResources(name string, remove, assign Resources) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		resources := AddResources(SubtractResources(p.Resources, remove), assign)
		if !ResourcesAreNonNegative(resources) {
			return fail(EconomicViolation, "you cannot afford this")
		}
		return result.Success(w.updatePlayer(name, func(p Player) Player {
			p.Resources = resources
			return p
		}))
	}
}

// SwapResources moves sent from one player to other and received back, both
// in the same World.
func SwapResources(name, other string, sent, received Resources) Step {
	return func(w World) result.Result[World] {
		if name == other {
			return fail(InvalidAction, "you cannot trade with yourself")
		}
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		o, ok := w.Player(other)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", other)
		}
		mine := AddResources(SubtractResources(p.Resources, sent), received)
		theirs := AddResources(SubtractResources(o.Resources, received), sent)
		if !ResourcesAreNonNegative(mine) || !ResourcesAreNonNegative(theirs) {
			return fail(EconomicViolation, "you cannot afford this")
		}
		w = w.updatePlayer(name, func(p Player) Player {
			p.Resources = mine
			return p
		})
		return result.Success(w.updatePlayer(other, func(p Player) Player {
			p.Resources = theirs
			return p
		}))
	}
}
