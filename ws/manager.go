package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager keeps track of active event feed subscribers.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[string]*websocket.Conn // subscriberID -> conn
}

func NewManager() *Manager {
	return &Manager{subscribers: make(map[string]*websocket.Conn)}
}

// Register registers a subscriber connection, replacing any existing one.
func (m *Manager) Register(id string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.subscribers[id]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.subscribers[id] = conn
}

// Unregister removes a subscriber connection.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.subscribers[id]; ok {
		_ = conn.Close()
		delete(m.subscribers, id)
	}
}

// Broadcast sends a text message to every subscriber. Connections that fail
// to accept the write are dropped; the write lock also serializes concurrent
// broadcasts so each connection sees one frame at a time.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, conn := range m.subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(m.subscribers, id)
		}
	}
}

// Count returns the number of connected subscribers.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}

// List returns a copy of current subscriber IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	return ids
}
