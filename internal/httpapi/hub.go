package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/output"
)

const (
	sendBuffer = 16
	writeWait  = 5 * time.Second
)

type spectator struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans game views out to websocket spectators. It implements
// service.Notifier.
type Hub struct {
	mu       sync.RWMutex
	games    map[string]map[*spectator]struct{}
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewHub creates a hub with no spectators.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		games: make(map[string]map[*spectator]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}
}

// Publish queues v for every spectator of gameID. A spectator whose queue
// is full misses the update.
func (h *Hub) Publish(gameID string, v *output.GameView) {
	msg, err := json.Marshal(v)
	if err != nil {
		h.log.Error().Err(err).Str("game_id", gameID).Msg("encoding view")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sp := range h.games[gameID] {
		select {
		case sp.send <- msg:
		default:
			h.log.Warn().Str("game_id", gameID).Stringer("remote", sp.conn.RemoteAddr()).Msg("spectator too slow, update dropped")
		}
	}
}

// Watcher runs fn with the current view of a game while the game is locked,
// so no update can be published between reading the view and fn returning.
type Watcher interface {
	Watch(gameID string, fn func(v *output.GameView)) error
}

// Serve upgrades the request to a websocket, then sends the current view of
// gameID followed by every published view until the client disconnects. The
// spectator is registered under the game lock before the current view is
// queued, so it cannot miss an update.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, gameID string, games Watcher) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		h.log.Debug().Err(err).Str("game_id", gameID).Msg("websocket upgrade failed")
		return
	}

	sp := &spectator{conn: conn, send: make(chan []byte, sendBuffer)}
	err = games.Watch(gameID, func(v *output.GameView) {
		h.add(gameID, sp)
		if msg, err := json.Marshal(v); err == nil {
			sp.send <- msg
		}
	})
	if err != nil {
		h.log.Debug().Err(err).Str("game_id", gameID).Msg("game gone before spectator registered")
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error()), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.log.Info().Str("game_id", gameID).Stringer("remote", conn.RemoteAddr()).Msg("spectator connected")

	go h.writeLoop(sp)
	go h.readLoop(gameID, sp)
}

func (h *Hub) add(gameID string, sp *spectator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.games[gameID] == nil {
		h.games[gameID] = make(map[*spectator]struct{})
	}
	h.games[gameID][sp] = struct{}{}
}

// readLoop discards client messages and unregisters the spectator when the
// connection fails.
func (h *Hub) readLoop(gameID string, sp *spectator) {
	for {
		if _, _, err := sp.conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.games[gameID], sp)
	if len(h.games[gameID]) == 0 {
		delete(h.games, gameID)
	}
	h.mu.Unlock()
	close(sp.send)
	h.log.Info().Str("game_id", gameID).Msg("spectator disconnected")
}

func (h *Hub) writeLoop(sp *spectator) {
	defer sp.conn.Close()
	for msg := range sp.send {
		_ = sp.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sp.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = sp.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = sp.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Spectators returns the number of spectators connected to gameID.
func (h *Hub) Spectators(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.games {
		for sp := range set {
			_ = sp.conn.Close()
		}
	}
}
