package websocket

import (
	"encoding/json"
	"sync"
	"time"
)

// EntryEvent is pushed to every connected admin dashboard whenever a
// ledger entry commits.
type EntryEvent struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FromUser  *int64    `json:"from_user,omitempty"`
	ToUser    *int64    `json:"to_user,omitempty"`
	AmountSLH string    `json:"amount_slh"`
	TxType    string    `json:"tx_type"`
}

// Hub fans committed ledger entries out to live admin feeds. There is
// one broadcast group; access control happens before the upgrade.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// BroadcastEntry never blocks the ledger path: slow clients drop
// events rather than holding up the committing transaction's caller.
func (h *Hub) BroadcastEntry(event EntryEvent) {
	payload, _ := json.Marshal(event)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}
