package models

import (
	"sync"
	"time"
)

// Task is a cancellable scheduled callback owned by a room
type Task interface {
	Stop() bool
}

// Room represents a live game instance of either mode
type Room struct {
	Code      string
	Mode      Mode
	Players   []*Player // seating order == turn order
	Started   bool
	CreatedAt time.Time
	Closed    bool // set once the room is removed from the registry

	Cards *CardTable // card mode only
	Draw  *DrawRound // drawing mode only

	// Pending timer and its generation. Callbacks compare the generation they
	// were scheduled with and no-op when it moved on.
	Task    Task
	TaskGen uint64

	mu      sync.Mutex
	clients map[string]chan []byte // playerID -> outbox
}

// Lock acquires the room's lock
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// PlayerByID returns the player and its seat index, or -1 when absent
func (r *Room) PlayerByID(id string) (*Player, int) {
	for i, p := range r.Players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// Host returns the current host (nil for an empty room)
func (r *Room) Host() *Player {
	for _, p := range r.Players {
		if p.IsHost {
			return p
		}
	}
	return nil
}

// CancelTask stops the pending timer, if any, and invalidates callbacks
// that already fired but have not acquired the lock yet.
func (r *Room) CancelTask() {
	if r.Task != nil {
		r.Task.Stop()
		r.Task = nil
	}
	r.TaskGen++
}

// Clients returns a copy of the outbox map (must be called with lock held)
func (r *Room) Clients() map[string]chan []byte {
	clients := make(map[string]chan []byte, len(r.clients))
	for k, v := range r.clients {
		clients[k] = v
	}
	return clients
}

// Client returns the outbox bound to a player
func (r *Room) Client(playerID string) (chan []byte, bool) {
	c, ok := r.clients[playerID]
	return c, ok
}

// BindClient attaches (or replaces) the outbox of a player
func (r *Room) BindClient(playerID string, outbox chan []byte) {
	if r.clients == nil {
		r.clients = make(map[string]chan []byte)
	}
	r.clients[playerID] = outbox
}

// UnbindClient detaches the outbox of a player
func (r *Room) UnbindClient(playerID string) {
	delete(r.clients, playerID)
}
