package game

import "colonists/result"

// EnsureGameState rejects the action unless the game is in state.
func EnsureGameState(state GameState) Step {
	return func(w World) result.Result[World] {
		if w.GameState != state {
			return fail(PhaseViolation, "you cannot do that action in state %s", w.GameState)
		}
		return result.Success(w)
	}
}

// PlayerExists rejects names that are not seated in the game.
func PlayerExists(name string) Step {
	return func(w World) result.Result[World] {
		if _, ok := w.FindPlayer(name); !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		return result.Success(w)
	}
}

// IsPlayersTurn rejects the action unless name holds the current turn.
func IsPlayersTurn(name string) Step {
	return func(w World) result.Result[World] {
		if _, ok := w.FindPlayer(name); !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		active, ok := w.ActivePlayer()
		if !ok || active.Name != name {
			return fail(AuthorizationViolation, "it is not your turn")
		}
		return result.Success(w)
	}
}

// Purchase deducts cost from the player's resources. A bundle that would go
// negative is discarded and the World is returned untouched as a failure.
func Purchase(name string, cost Resources) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		resources := SubtractResources(p.Resources, cost)
		if !ResourcesAreNonNegative(resources) {
			return fail(EconomicViolation, "you cannot afford this")
		}
		return result.Success(w.updatePlayer(name, func(p Player) Player {
			p.Resources = resources
			return p
		}))
	}
}

// HasResources checks the player holds check without spending it.
func HasResources(name string, check Resources) Step {
	return func(w World) result.Result[World] {
		p, ok := w.Player(name)
		if !ok {
			return fail(AuthorizationViolation, "there is no player called %q", name)
		}
		if !ResourcesAreNonNegative(check) {
			return fail(InvalidAction, "resource amounts cannot be negative")
		}
		if !ResourcesAreNonNegative(SubtractResources(p.Resources, check)) {
			return fail(EconomicViolation, "%s does not have the resources for this", name)
		}
		return result.Success(w)
	}
}
