package game

import "colonists/result"

// Score counts a player's victory points: one per house, two per city and
// one per victory point card played.
func Score(p Player) int {
	return len(p.Houses) + 2*len(p.Cities) + p.Points
}

// Winner returns the first player whose score reaches the target.
func (w World) Winner() (Player, bool) {
	if w.PointsToWin <= 0 {
		return Player{}, false
	}
	for _, p := range w.Players {
		if Score(p) >= w.PointsToWin {
			return p, true
		}
	}
	return Player{}, false
}

// CheckVictory finishes a started game once somebody has won.
func CheckVictory(w World) result.Result[World] {
	if w.GameState != Started {
		return result.Success(w)
	}
	if _, ok := w.Winner(); ok {
		w.GameState = Finished
	}
	return result.Success(w)
}
