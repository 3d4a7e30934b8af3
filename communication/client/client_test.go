package client

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"colonists/communication"
	"colonists/communication/server"
	"colonists/engine"
	"colonists/game"
	"colonists/gamemaster"
	"colonists/result"
	"colonists/storage"

	"github.com/stretchr/testify/require"
)

func serve(t *testing.T) *ClientCommunicator {
	t.Helper()
	hub := communication.NewHub()
	gm := gamemaster.NewGameMaster(storage.NewMemory(), engine.New(engine.WithSeed(2)), gamemaster.WithBroadcaster(hub))
	srv := httptest.NewServer(server.NewServer(gm, hub))
	t.Cleanup(srv.Close)
	return NewClientCommunicator(srv.URL)
}

func TestClientCommunicator(t *testing.T) {
	ctx := context.Background()
	cc := serve(t)

	t.Run("create, join and read", func(t *testing.T) {
		id, err := cc.NewGame(ctx)
		require.NoError(t, err)

		require.True(t, cc.Join(ctx, id, "Alice").IsSuccess())
		require.True(t, cc.Join(ctx, id, "Bob").IsSuccess())

		w, err := cc.GetWorld(ctx, id).Unwrap()
		require.NoError(t, err)
		require.Len(t, w.Players, 2)
		require.Equal(t, game.Pregame, w.GameState)
	})

	t.Run("rejections carry the reason", func(t *testing.T) {
		id, err := cc.NewGame(ctx)
		require.NoError(t, err)
		require.True(t, cc.Join(ctx, id, "Alice").IsSuccess())

		r := cc.SendAction(ctx, id, game.EndTurn{PlayerName: "Alice"})

		require.True(t, r.IsFailure())
		require.Equal(t, "you cannot do that action in state Pregame", r.Reason())
	})

	t.Run("unknown game", func(t *testing.T) {
		r := cc.GetWorld(ctx, "nope")
		require.True(t, r.IsFailure())
		require.Contains(t, r.Reason(), "nope")
	})

	t.Run("server gone", func(t *testing.T) {
		r := NewClientCommunicator("http://127.0.0.1:1").GetWorld(ctx, "g")
		require.True(t, r.IsFailure())
	})
}

func TestSubscribe(t *testing.T) {
	cc := serve(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := cc.NewGame(ctx)
	require.NoError(t, err)
	updates, err := cc.Subscribe(ctx, id)
	require.NoError(t, err)

	// The hub registers the connection asynchronously, so keep joining until
	// the broadcast of a join comes through.
	var msg communication.Message
	for i := 0; ; i++ {
		require.Less(t, i, game.NewStandardRules().MaxPlayers(), "no broadcast arrived")
		require.True(t, cc.Join(ctx, id, "P"+string(rune('A'+i))).IsSuccess())
		select {
		case msg = <-updates:
		case <-time.After(100 * time.Millisecond):
			continue
		}
		break
	}

	require.Equal(t, communication.NewWorld, msg.Event)
	require.Equal(t, id, msg.Game)
	var got result.Result[game.World]
	require.NoError(t, json.Unmarshal(msg.Payload, &got))
	require.True(t, got.IsSuccess())
	require.NotEmpty(t, got.Value().Players)

	t.Run("closes when the context ends", func(t *testing.T) {
		cancel()
		require.Eventually(t, func() bool {
			for {
				select {
				case _, ok := <-updates:
					if !ok {
						return true
					}
				default:
					return false
				}
			}
		}, 2*time.Second, 10*time.Millisecond)
	})
}
