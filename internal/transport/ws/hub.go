package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Message is the WebSocket envelope format. Event names are the
// service.Event* constants; the hub just carries them.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per session: at most one participant
// connection driving the questionnaire, and any number of host watchers
// observing it.
type Hub struct {
	participantConns map[string]*Connection
	watcherConns     map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	SessionID string
	IsWatcher bool
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	SessionID     string
	ToParticipant bool
	Message       *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		participantConns: make(map[string]*Connection),
		watcherConns:     make(map[string]map[*Connection]bool),
		register:         make(chan *Connection),
		unregister:       make(chan *Connection),
		broadcast:        make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsWatcher {
				if h.watcherConns[conn.SessionID] == nil {
					h.watcherConns[conn.SessionID] = make(map[*Connection]bool)
				}
				h.watcherConns[conn.SessionID][conn] = true
				log.Printf("Watcher connected to session %s", conn.SessionID)
			} else {
				// A newer participant connection replaces the old one.
				if existing, ok := h.participantConns[conn.SessionID]; ok {
					close(existing.Send)
				}
				h.participantConns[conn.SessionID] = conn
				log.Printf("Participant connected to session %s", conn.SessionID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsWatcher {
				if watchers, ok := h.watcherConns[conn.SessionID]; ok && watchers[conn] {
					delete(watchers, conn)
					close(conn.Send)
					log.Printf("Watcher disconnected from session %s", conn.SessionID)
				}
			} else {
				if existing, ok := h.participantConns[conn.SessionID]; ok && existing == conn {
					delete(h.participantConns, conn.SessionID)
					close(conn.Send)
					log.Printf("Participant disconnected from session %s", conn.SessionID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToParticipant {
				if conn, ok := h.participantConns[msg.SessionID]; ok {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				for conn := range h.watcherConns[msg.SessionID] {
					select {
					case conn.Send <- data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToWatchers sends a message to every watcher of a session
// (implements service.Broadcaster)
func (h *Hub) BroadcastToWatchers(sessionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}

// BroadcastToParticipant sends a message to the session's participant
// (implements service.Broadcaster)
func (h *Hub) BroadcastToParticipant(sessionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID:     sessionID,
		ToParticipant: true,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}
