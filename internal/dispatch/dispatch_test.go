package dispatch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/protocol"
)

type note struct {
	Text string `json:"text"`
}

func newRoom(ids ...string) (*models.Room, map[string]chan []byte) {
	room := &models.Room{Code: "ABCDEF"}
	outboxes := make(map[string]chan []byte)
	for _, id := range ids {
		outboxes[id] = make(chan []byte, 4)
		room.BindClient(id, outboxes[id])
	}
	return room, outboxes
}

func receive(t *testing.T, outbox chan []byte) (string, note) {
	t.Helper()
	select {
	case msg := <-outbox:
		env, err := protocol.DecodeEnvelope(msg)
		require.NoError(t, err)
		var n note
		require.NoError(t, json.Unmarshal(env.P, &n))
		return env.T, n
	default:
		t.Fatal("expected a message")
		return "", note{}
	}
}

func TestSendTo(t *testing.T) {
	room, out := newRoom("a", "b")

	SendTo(room, "a", "hello", note{Text: "hi"})
	event, n := receive(t, out["a"])
	assert.Equal(t, "hello", event)
	assert.Equal(t, "hi", n.Text)
	assert.Empty(t, out["b"])

	SendTo(room, "nobody", "hello", note{})
}

func TestBroadcastExcept(t *testing.T) {
	room, out := newRoom("a", "b", "c")

	BroadcastExcept(room, "b", "stroke", note{Text: "line"})
	assert.Len(t, out["a"], 1)
	assert.Empty(t, out["b"])
	assert.Len(t, out["c"], 1)

	Broadcast(room, "all", note{})
	for _, id := range []string{"a", "b", "c"} {
		assert.NotEmpty(t, out[id])
	}
}

func TestBroadcastPersonalized(t *testing.T) {
	room, out := newRoom("a", "b")

	BroadcastPersonalized(room, "view", func(viewerID string) any {
		return note{Text: "for " + viewerID}
	})
	_, n := receive(t, out["a"])
	assert.Equal(t, "for a", n.Text)
	_, n = receive(t, out["b"])
	assert.Equal(t, "for b", n.Text)

	BroadcastPersonalizedExcept(room, "a", "view", func(viewerID string) any {
		return note{Text: viewerID}
	})
	assert.Empty(t, out["a"])
	assert.Len(t, out["b"], 1)
}

func TestFullOutboxDoesNotBlock(t *testing.T) {
	room := &models.Room{Code: "ABCDEF"}
	full := make(chan []byte, 1)
	full <- []byte("backlog")
	room.BindClient("slow", full)
	fast := make(chan []byte, 1)
	room.BindClient("fast", fast)

	Broadcast(room, "tick", note{})
	assert.Len(t, full, 1)
	assert.Len(t, fast, 1)
}
