package ws

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type membership struct {
	client *Client
	join   bool
}

// Hub tracks the open mentor connections. Joins and leaves share one queue so
// they are applied in the order they were made.
type Hub struct {
	clients map[*Client]bool
	changes chan membership
	done    chan struct{}
	mutex   sync.RWMutex
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*Client]bool),
		changes: make(chan membership, 256),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// Run serves registrations until ctx ends, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				c.shutdown()
			}
			h.mutex.Unlock()
			return

		case m := <-h.changes:
			if m.client == nil {
				continue
			}
			h.mutex.Lock()
			_, known := h.clients[m.client]
			switch {
			case m.join:
				h.clients[m.client] = true
			case known:
				delete(h.clients, m.client)
				close(m.client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()

			event := "ws disconnected"
			if m.join {
				event = "ws connected"
			}
			h.logger.Info(event, zap.String("session_id", m.client.sessionID), zap.Int("total_clients", total))
		}
	}
}

// Register reports false when the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.changes <- membership{client: client, join: true}:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.changes <- membership{client: client}:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
