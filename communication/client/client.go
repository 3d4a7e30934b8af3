// Package client talks to a game server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"colonists/communication"
	"colonists/game"
	"colonists/result"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var _ communication.Communicator = (*ClientCommunicator)(nil)

type ClientCommunicator struct {
	serverURL string
	http      *http.Client
}

// NewClientCommunicator initializes and returns a new ClientCommunicator.
func NewClientCommunicator(serverURL string) *ClientCommunicator {
	return &ClientCommunicator{
		serverURL: serverURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (cc *ClientCommunicator) gameURL(gameID, suffix string) string {
	return cc.serverURL + "/games/" + url.PathEscape(gameID) + suffix
}

// do sends body to the server and decodes the result it answers with.
func (cc *ClientCommunicator) do(ctx context.Context, method, target string, body any) result.Result[game.World] {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return result.FailWith[game.World](fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return result.FailWith[game.World](err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := cc.http.Do(req)
	if err != nil {
		return result.FailWith[game.World](fmt.Errorf("%s %s: %w", method, target, err))
	}
	defer resp.Body.Close()

	var res result.Result[game.World]
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return result.FailWith[game.World](fmt.Errorf("decode response (%s): %w", resp.Status, err))
	}
	return res
}

// NewGame creates a game on a random board and returns its id.
func (cc *ClientCommunicator) NewGame(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cc.serverURL+"/games", nil)
	if err != nil {
		return "", err
	}
	resp, err := cc.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}
	defer resp.Body.Close()
	var out struct {
		ID     string                    `json:"id"`
		Result result.Result[game.World] `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response (%s): %w", resp.Status, err)
	}
	if out.Result.IsFailure() {
		return "", out.Result.Err()
	}
	return out.ID, nil
}

func (cc *ClientCommunicator) GetWorld(ctx context.Context, gameID string) result.Result[game.World] {
	return cc.do(ctx, http.MethodGet, cc.gameURL(gameID, ""), nil)
}

func (cc *ClientCommunicator) Join(ctx context.Context, gameID, name string) result.Result[game.World] {
	return cc.do(ctx, http.MethodPost, cc.gameURL(gameID, "/players"), map[string]string{"name": name})
}

func (cc *ClientCommunicator) SendAction(ctx context.Context, gameID string, a game.Action) result.Result[game.World] {
	data, err := game.EncodeAction(a)
	if err != nil {
		return result.FailWith[game.World](err)
	}
	return cc.do(ctx, http.MethodPost, cc.gameURL(gameID, "/actions"), json.RawMessage(data))
}

// Subscribe opens the websocket of a game and delivers its broadcasts until
// ctx is done or the server hangs up. The channel is closed afterwards.
func (cc *ClientCommunicator) Subscribe(ctx context.Context, gameID string) (<-chan communication.Message, error) {
	target := strings.Replace(cc.gameURL(gameID, "/ws"), "http", "ws", 1)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}

	out := make(chan communication.Message, 16)
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer close(out)
		defer conn.Close()
		for {
			var msg communication.Message
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil {
					log.Debug().Err(err).Str("game", gameID).Msg("subscription closed")
				}
				return
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
