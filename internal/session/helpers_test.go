package session

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/protocol"
	"github.com/aaronzipp/party-rooms/internal/store"
)

type zeroRandom struct{}

func (zeroRandom) Intn(int) int { return 0 }

// manualClock records scheduled callbacks; tests fire them by hand
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) pending() []*manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fire runs the single pending timer and returns its delay
func (c *manualClock) fire(t *testing.T) time.Duration {
	t.Helper()
	pending := c.pending()
	require.Len(t, pending, 1, "expected exactly one pending timer")
	timer := pending[0]
	timer.fired = true
	timer.f()
	return timer.d
}

func newCardEngine() *CardEngine {
	return NewCardEngine(store.NewRoomStore(), zeroRandom{}, game.DefaultToiletLifetime)
}

func newDrawEngine(t *testing.T, roundSeconds, maxRounds int) (*DrawEngine, *manualClock) {
	t.Helper()
	lex, err := game.NewLexicon(map[string][]string{"Animals": {"cat"}})
	require.NoError(t, err)
	clock := &manualClock{}
	return NewDrawEngine(store.NewRoomStore(), zeroRandom{}, lex, clock, roundSeconds, maxRounds), clock
}

func act(e Engine, sess *Session, action string, payload any) {
	env := protocol.Envelope{T: action}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			panic(err)
		}
		env.P = b
	}
	e.Handle(sess, env)
}

// drain returns every queued envelope of sess
func drain(t *testing.T, sess *Session) []protocol.Envelope {
	t.Helper()
	var out []protocol.Envelope
	for {
		select {
		case msg := <-sess.Outbox:
			env, err := protocol.DecodeEnvelope(msg)
			require.NoError(t, err)
			out = append(out, env)
		default:
			return out
		}
	}
}

func eventNames(envs []protocol.Envelope) []string {
	names := make([]string, 0, len(envs))
	for _, e := range envs {
		names = append(names, e.T)
	}
	return names
}

// find decodes the first envelope of type event into v
func find(t *testing.T, envs []protocol.Envelope, event string, v any) {
	t.Helper()
	for _, e := range envs {
		if e.T == event {
			require.NoError(t, json.Unmarshal(e.P, v))
			return
		}
	}
	t.Fatalf("no %s among %v", event, eventNames(envs))
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type joinedPayload struct {
	Code   string `json:"code"`
	Player struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Strokes []json.RawMessage `json:"strokes"`
}

// createRoom opens a room for a fresh session and returns it with its code
func createRoom(t *testing.T, e Engine, name string) (*Session, string) {
	t.Helper()
	sess := New()
	act(e, sess, protocol.ActCreateRoom, protocol.CreateRoom{Name: name})
	var created joinedPayload
	find(t, drain(t, sess), protocol.EvtRoomCreated, &created)
	require.Len(t, created.Code, game.RoomCodeLength)
	return sess, created.Code
}

// joinRoom adds a fresh session to code
func joinRoom(t *testing.T, e Engine, code, name string) *Session {
	t.Helper()
	sess := New()
	act(e, sess, protocol.ActJoinRoom, protocol.JoinRoom{Code: code, Name: name})
	envs := drain(t, sess)
	var joined joinedPayload
	find(t, envs, protocol.EvtRoomJoined, &joined)
	return sess
}

func lookupRoom(t *testing.T, e Engine, code string) *models.Room {
	t.Helper()
	r, ok := e.Rooms().Get(code)
	require.True(t, ok, "room %s not found", code)
	return r
}
