// Package game holds the board, the world model and every rule that decides
// whether a player action is legal and what the next world looks like.
//
// Rules never mutate the World they receive. Each one returns a new World or
// a failure, so the caller can decide what to persist and broadcast.
package game

import (
	crand "crypto/rand"
	"encoding/binary"

	"colonists/result"

	"golang.org/x/exp/rand"
)

// Step is a single validation or effect over a World.
type Step func(World) result.Result[World]

// Rule is a complete action pipeline over the outcome of the previous rule.
type Rule func(result.Result[World]) result.Result[World]

// Chain lifts steps into a Rule. The first failing step stops the chain.
func Chain(steps ...Step) Rule {
	return func(r result.Result[World]) result.Result[World] {
		for _, step := range steps {
			r = r.Then(step)
		}
		return r
	}
}

// Random is the source of dice rolls, card draws and steals.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a Random safe for concurrent use. A zero seed draws one
// from crypto/rand.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
	}
	src := &rand.LockedSource{}
	src.Seed(seed)
	return rand.New(src)
}

// Env is what a rule needs besides the World: the rule table and randomness.
type Env struct {
	Rules Rules
	Rand  Random
}
