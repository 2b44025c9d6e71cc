package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/store"
)

// Registry creates, joins and tears down the rooms of one mode
type Registry struct {
	mode     models.Mode
	rooms    *store.RoomStore
	capacity int
	lateJoin bool
	newRoom  func() *models.Room
}

// NewRegistry creates a registry. newRoom builds an empty room of the mode;
// its code is assigned on registration.
func NewRegistry(mode models.Mode, rooms *store.RoomStore, capacity int, lateJoin bool, newRoom func() *models.Room) *Registry {
	return &Registry{
		mode:     mode,
		rooms:    rooms,
		capacity: capacity,
		lateJoin: lateJoin,
		newRoom:  newRoom,
	}
}

// Rooms exposes the underlying store (read-only use)
func (r *Registry) Rooms() *store.RoomStore {
	return r.rooms
}

// Create registers a fresh room with sess as its host. The room is returned
// locked; the caller must Unlock it.
func (r *Registry) Create(sess *Session, name string) (*models.Room, *models.Player) {
	room := r.newRoom()
	room.Lock()
	code := game.RegisterRoom(r.rooms, room)
	player := r.seat(room, sess, name)
	log.Info().Str("mode", string(r.mode)).Str("room", code).Str("player", player.ID).Msg("room created")
	return room, player
}

// Lookup finds a live room by a user-typed code
func (r *Registry) Lookup(code string) (*models.Room, error) {
	room, ok := r.rooms.Get(game.NormalizeCode(code))
	if !ok {
		return nil, game.ErrRoomNotFound
	}
	return room, nil
}

// Join seats sess in room (lock held by the caller). Joining a room the
// session is already bound to returns the existing player.
func (r *Registry) Join(room *models.Room, sess *Session, name string) (player *models.Player, existing bool, err error) {
	if room.Closed {
		return nil, false, game.ErrRoomNotFound
	}
	if code, playerID := sess.Binding(); code == room.Code {
		if p, _ := room.PlayerByID(playerID); p != nil {
			room.BindClient(p.ID, sess.Outbox)
			return p, true, nil
		}
	}
	if room.Started && !r.lateJoin {
		return nil, false, game.ErrGameAlreadyStarted
	}
	if len(room.Players) >= r.capacity {
		return nil, false, game.ErrRoomFull
	}
	player = r.seat(room, sess, name)
	log.Info().Str("mode", string(r.mode)).Str("room", room.Code).Str("player", player.ID).Msg("player joined")
	return player, false, nil
}

func (r *Registry) seat(room *models.Room, sess *Session, name string) *models.Player {
	player := &models.Player{
		ID:       uuid.New().String(),
		Name:     game.CleanName(name, len(room.Players)+1),
		JoinedAt: time.Now(),
	}
	game.SeatPlayer(room, player)
	room.BindClient(player.ID, sess.Outbox)
	sess.bind(room.Code, player.ID)
	return player
}

// WithRoom runs fn under the lock of the room sess is bound to. A session
// without a live room gets game.ErrPlayerNotFound.
func (r *Registry) WithRoom(sess *Session, fn func(room *models.Room, playerID string) error) error {
	code, playerID := sess.Binding()
	if code == "" {
		return game.ErrPlayerNotFound
	}
	room, ok := r.rooms.Get(code)
	if !ok {
		return game.ErrPlayerNotFound
	}
	room.Lock()
	defer room.Unlock()
	if room.Closed {
		return game.ErrPlayerNotFound
	}
	return fn(room, playerID)
}

// Leave unbinds sess and lets remove take the player out of the room (lock
// held). A room left empty is cancelled and destroyed.
func (r *Registry) Leave(sess *Session, remove func(room *models.Room, playerID string)) {
	code, playerID := sess.Binding()
	sess.unbind()
	if code == "" {
		return
	}
	room, ok := r.rooms.Get(code)
	if !ok {
		return
	}
	room.Lock()
	defer room.Unlock()
	if room.Closed {
		return
	}
	room.UnbindClient(playerID)
	remove(room, playerID)
	log.Info().Str("mode", string(r.mode)).Str("room", code).Str("player", playerID).Msg("player left")

	if len(room.Players) == 0 {
		room.CancelTask()
		room.Closed = true
		r.rooms.Delete(code)
		log.Info().Str("mode", string(r.mode)).Str("room", code).Msg("room destroyed")
	}
}
