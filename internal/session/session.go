package session

import (
	"sync"

	"github.com/google/uuid"
)

// OutboxSize is the number of queued frames a connection may lag behind
const OutboxSize = 256

// Session is one live connection. It is bound to at most one player in one
// room at a time; the player id is issued when the room is created or joined.
type Session struct {
	ID     string
	Outbox chan []byte

	mu       sync.Mutex
	roomCode string
	playerID string
}

// New creates an unbound session with a fresh outbox
func New() *Session {
	return &Session{
		ID:     uuid.New().String(),
		Outbox: make(chan []byte, OutboxSize),
	}
}

// Binding returns the room code and player id the session is bound to
func (s *Session) Binding() (roomCode, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomCode, s.playerID
}

func (s *Session) bind(roomCode, playerID string) {
	s.mu.Lock()
	s.roomCode, s.playerID = roomCode, playerID
	s.mu.Unlock()
}

func (s *Session) unbind() {
	s.bind("", "")
}

// send queues a frame without blocking
func (s *Session) send(msg []byte) bool {
	select {
	case s.Outbox <- msg:
		return true
	default:
		return false
	}
}
