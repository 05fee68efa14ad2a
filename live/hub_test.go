package live

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitForClients(t *testing.T, hub *Hub, room string, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if hub.RoomClientCount(room) == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("room %s never reached %d clients", room, want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestHubBroadcastToRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	room := TournamentRoom(5)
	first := &Client{Hub: hub, Send: make(chan []byte, 4), Room: room}
	second := &Client{Hub: hub, Send: make(chan []byte, 4), Room: room}
	outsider := &Client{Hub: hub, Send: make(chan []byte, 4), Room: TournamentRoom(6)}

	hub.Register <- first
	hub.Register <- second
	hub.Register <- outsider
	waitForClients(t, hub, room, 2)
	waitForClients(t, hub, TournamentRoom(6), 1)

	hub.BroadcastToRoom(room, Message{
		Type:    EventStandingsUpdated,
		RoomID:  room,
		Payload: map[string]int{"tournament_id": 5},
	})

	for _, client := range []*Client{first, second} {
		select {
		case raw := <-client.Send:
			var msg Message
			require.NoError(t, json.Unmarshal(raw, &msg))
			require.Equal(t, EventStandingsUpdated, msg.Type)
			require.Equal(t, room, msg.RoomID)
		case <-time.After(time.Second):
			t.Fatal("client did not receive the broadcast")
		}
	}

	select {
	case <-outsider.Send:
		t.Fatal("broadcast leaked into another room")
	default:
	}
}

func TestHubUnregisterClosesClientAndRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	room := TournamentRoom(9)
	client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: room}

	hub.Register <- client
	waitForClients(t, hub, room, 1)

	hub.Unregister <- client
	waitForClients(t, hub, room, 0)

	_, open := <-client.Send
	require.False(t, open, "send channel must be closed on unregister")

	// Рассылка в пустую комнату никого не трогает и не паникует.
	hub.BroadcastToRoom(room, Message{Type: EventRoundPaired})
}

func TestHubSkipsSlowClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	room := TournamentRoom(3)
	slow := &Client{Hub: hub, Send: make(chan []byte), Room: room} // без буфера

	hub.Register <- slow
	waitForClients(t, hub, room, 1)

	done := make(chan struct{})
	go func() {
		hub.BroadcastToRoom(room, Message{Type: EventTournamentStatus})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}
