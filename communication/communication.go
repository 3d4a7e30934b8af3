// Package communication carries game results to connected participants and
// defines the ports the transport adapters implement.
package communication

import (
	"context"

	"colonists/game"
	"colonists/result"
)

// Event names what a broadcast message announces.
type Event string

const (
	NewWorld Event = "newWorld"
	NewMap   Event = "newMap"
)

// Broadcaster delivers a result to everyone watching a game. Failures are
// broadcast too so the submitting participant can show the reason.
type Broadcaster interface {
	Broadcast(gameID string, event Event, payload any) error
}

// Communicator is the participant side of a game: read the World, submit
// actions.
type Communicator interface {
	GetWorld(ctx context.Context, gameID string) result.Result[game.World]
	SendAction(ctx context.Context, gameID string, a game.Action) result.Result[game.World]
}

type nopBroadcaster struct{}

// NewNopBroadcaster returns a Broadcaster that drops every message.
func NewNopBroadcaster() Broadcaster {
	return nopBroadcaster{}
}

func (nopBroadcaster) Broadcast(string, Event, any) error { return nil }
