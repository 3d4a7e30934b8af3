package communication

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 5 * time.Second
	readWait   = 60 * time.Second
	pingPeriod = readWait * 9 / 10
	outboxSize = 64
)

// Message is the frame every subscriber receives.
type Message struct {
	Event   Event           `json:"event"`
	Game    string          `json:"game"`
	Payload json.RawMessage `json:"payload"`
}

type subscriber struct {
	id  string
	out chan []byte
}

// Hub fans broadcasts out to the websocket connections of each game.
type Hub struct {
	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		subscribers: map[string]map[*subscriber]struct{}{},
	}
}

// Broadcast encodes payload once and queues it for every subscriber of the
// game. A subscriber whose queue is full misses the message.
func (h *Hub) Broadcast(gameID string, event Event, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event, err)
	}
	frame, err := json.Marshal(Message{Event: event, Game: gameID, Payload: raw})
	if err != nil {
		return fmt.Errorf("encode %s message: %w", event, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers[gameID] {
		select {
		case sub.out <- frame:
		default:
			log.Warn().Str("game", gameID).Str("subscriber", sub.id).Msg("dropping message for slow subscriber")
		}
	}
	return nil
}

func (h *Hub) subscribe(gameID string) (*subscriber, func()) {
	sub := &subscriber{
		id:  fmt.Sprintf("S%d", h.nextID.Add(1)),
		out: make(chan []byte, outboxSize),
	}
	h.mu.Lock()
	if h.subscribers[gameID] == nil {
		h.subscribers[gameID] = map[*subscriber]struct{}{}
	}
	h.subscribers[gameID][sub] = struct{}{}
	h.mu.Unlock()

	return sub, func() {
		h.mu.Lock()
		delete(h.subscribers[gameID], sub)
		if len(h.subscribers[gameID]) == 0 {
			delete(h.subscribers, gameID)
		}
		h.mu.Unlock()
	}
}

// Subscribers returns how many connections watch the game.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[gameID])
}

// Handler upgrades the request and streams the broadcasts of the game named
// by the "id" path value until the client goes away.
func (h *Hub) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		gameID := r.PathValue("id")
		if gameID == "" {
			http.Error(rw, "missing game id", http.StatusBadRequest)
			return
		}
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Debug().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		sub, unsubscribe := h.subscribe(gameID)
		defer unsubscribe()
		log.Debug().Str("game", gameID).Str("subscriber", sub.id).Msg("subscriber joined")

		// The reader only notices the client leaving.
		done := make(chan struct{})
		_ = conn.SetReadDeadline(time.Now().Add(readWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(readWait))
		})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(pingPeriod)
		defer ping.Stop()
		for {
			select {
			case <-done:
				return
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			case frame := <-sub.out:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					log.Debug().Err(err).Str("subscriber", sub.id).Msg("websocket write failed")
					return
				}
			}
		}
	}
}
