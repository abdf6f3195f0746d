package websocket

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBroadcastEntryDeliversToRegisteredClients(t *testing.T) {
	hub := NewHub()
	client := &Client{send: make(chan []byte, 1)}
	hub.register(client)

	from := int64(10)
	to := int64(20)
	hub.BroadcastEntry(EntryEvent{
		ID:        7,
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		FromUser:  &from,
		ToUser:    &to,
		AmountSLH: "25.500000",
		TxType:    "internal_transfer",
	})

	select {
	case payload := <-client.send:
		var event EntryEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if event.ID != 7 || event.TxType != "internal_transfer" || event.AmountSLH != "25.500000" {
			t.Errorf("unexpected event %+v", event)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestBroadcastEntrySkipsSlowClients(t *testing.T) {
	hub := NewHub()
	slow := &Client{send: make(chan []byte)}
	hub.register(slow)

	done := make(chan struct{})
	go func() {
		hub.BroadcastEntry(EntryEvent{ID: 1, TxType: "internal_transfer"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	client := &Client{send: make(chan []byte, 1)}
	hub.register(client)
	hub.unregister(client)

	hub.BroadcastEntry(EntryEvent{ID: 2, TxType: "internal_transfer"})
	if len(client.send) != 0 {
		t.Error("unregistered client still received an event")
	}
}
