package session

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/party-rooms/internal/dispatch"
	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/protocol"
	"github.com/aaronzipp/party-rooms/internal/render"
	"github.com/aaronzipp/party-rooms/internal/store"
)

// DrawEngine runs draw-and-guess rooms and owns their round timers
type DrawEngine struct {
	reg   *Registry
	rng   game.Random
	lex   *game.Lexicon
	clock Clock
}

// NewDrawEngine creates the drawing-game engine. Players may join running games.
func NewDrawEngine(rooms *store.RoomStore, rng game.Random, lex *game.Lexicon, clock Clock, roundSeconds, maxRounds int) *DrawEngine {
	newRoom := func() *models.Room {
		return game.NewDrawRoom("", roundSeconds, maxRounds)
	}
	return &DrawEngine{
		reg:   NewRegistry(models.ModeDrawGuess, rooms, game.DrawRoomCapacity, true, newRoom),
		rng:   rng,
		lex:   lex,
		clock: clock,
	}
}

func (e *DrawEngine) Mode() models.Mode       { return models.ModeDrawGuess }
func (e *DrawEngine) Rooms() *store.RoomStore { return e.reg.Rooms() }

func viewDraw(room *models.Room) func(viewerID string) any {
	return func(viewerID string) any {
		return protocol.RoomSnapshot{Room: render.ProjectDraw(room, viewerID)}
	}
}

// Handle runs one inbound action
func (e *DrawEngine) Handle(sess *Session, env protocol.Envelope) {
	defer recoverAction(models.ModeDrawGuess, sess, env.T)

	var err error
	switch env.T {
	case protocol.ActCreateRoom:
		err = e.createRoom(sess, env)
	case protocol.ActJoinRoom:
		err = e.joinRoom(sess, env)
	case protocol.ActStartGame:
		err = e.reg.WithRoom(sess, e.startGame)
	case protocol.ActGetRoomState:
		err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
			dispatch.SendTo(room, playerID, protocol.EvtRoomState, viewDraw(room)(playerID))
			return nil
		})
	case protocol.ActSubmitStroke:
		if len(env.P) == 0 {
			err = errBadRequest
			break
		}
		err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
			if game.SubmitStroke(room, playerID, env.P) {
				dispatch.BroadcastExcept(room, playerID, protocol.EvtStroke, env.P)
			}
			return nil
		})
	case protocol.ActClearSurface:
		err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
			if game.ClearSurface(room, playerID) {
				dispatch.BroadcastExcept(room, playerID, protocol.EvtSurfaceCleared, struct{}{})
			}
			return nil
		})
	case protocol.ActSubmitGuess:
		var req protocol.SubmitGuess
		if req, err = decode[protocol.SubmitGuess](env, false); err == nil {
			err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
				return e.submitGuess(room, playerID, req.Text)
			})
		}
	case protocol.ActChat:
		var req protocol.Chat
		if req, err = decode[protocol.Chat](env, false); err == nil {
			err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
				return e.chat(room, playerID, req.Text)
			})
		}
	default:
		err = errUnknownAction
	}
	if err != nil {
		reportError(models.ModeDrawGuess, sess, env.T, err)
	}
}

func (e *DrawEngine) createRoom(sess *Session, env protocol.Envelope) error {
	req, err := decode[protocol.CreateRoom](env, true)
	if err != nil {
		return err
	}
	e.Disconnect(sess)

	room, player := e.reg.Create(sess, req.Name)
	defer room.Unlock()
	dispatch.SendTo(room, player.ID, protocol.EvtRoomCreated, protocol.RoomCreated{
		Code:   room.Code,
		Player: *render.Ref(player),
		Room:   render.ProjectDraw(room, player.ID),
	})
	return nil
}

func (e *DrawEngine) joinRoom(sess *Session, env protocol.Envelope) error {
	req, err := decode[protocol.JoinRoom](env, false)
	if err != nil {
		return err
	}
	room, err := e.reg.Lookup(req.Code)
	if err != nil {
		return err
	}
	if code, _ := sess.Binding(); code != "" && code != room.Code {
		e.Disconnect(sess)
	}

	room.Lock()
	defer room.Unlock()
	player, existing, err := e.reg.Join(room, sess, req.Name)
	if err != nil {
		return err
	}
	joined := protocol.RoomJoined{
		Code:   room.Code,
		Player: *render.Ref(player),
		Room:   render.ProjectDraw(room, player.ID),
	}
	if room.Draw.Active() {
		joined.Strokes = append(joined.Strokes, room.Draw.Strokes...)
	}
	dispatch.SendTo(room, player.ID, protocol.EvtRoomJoined, joined)
	if !existing {
		dispatch.BroadcastPersonalizedExcept(room, player.ID, protocol.EvtPlayerJoined, func(viewerID string) any {
			return protocol.PlayerPresence{Player: *render.Ref(player), Room: render.ProjectDraw(room, viewerID)}
		})
	}
	return nil
}

func (e *DrawEngine) startGame(room *models.Room, playerID string) error {
	if err := game.StartDrawGame(room, playerID, e.lex, e.rng); err != nil {
		return err
	}
	log.Info().Str("mode", string(models.ModeDrawGuess)).Str("room", room.Code).Int("players", len(room.Players)).Msg("game started")
	dispatch.BroadcastPersonalized(room, protocol.EvtGameStarted, viewDraw(room))
	e.schedule(room, game.TickInterval, e.tick)
	return nil
}

func (e *DrawEngine) submitGuess(room *models.Room, playerID, text string) error {
	res, err := game.SubmitGuess(room, playerID, text)
	if err != nil {
		return err
	}
	switch res.Outcome {
	case game.GuessDropped:
	case game.GuessChat:
		if res.Text != "" {
			dispatch.Broadcast(room, protocol.EvtChatMessage, protocol.ChatMessage{Player: *render.Ref(res.Player), Text: res.Text})
		}
	case game.GuessCorrect:
		dispatch.BroadcastPersonalized(room, protocol.EvtCorrectGuess, func(viewerID string) any {
			return protocol.CorrectGuess{
				Player:      *render.Ref(res.Player),
				Points:      res.Points,
				DrawerBonus: res.DrawerBonus,
				Room:        render.ProjectDraw(room, viewerID),
			}
		})
		if res.AllGuessed {
			e.schedule(room, game.EarlyEndDelay, e.advance)
		}
	}
	return nil
}

func (e *DrawEngine) chat(room *models.Room, playerID, text string) error {
	p, _ := room.PlayerByID(playerID)
	if p == nil {
		return game.ErrPlayerNotFound
	}
	if text = strings.TrimSpace(text); text == "" {
		return nil
	}
	dispatch.Broadcast(room, protocol.EvtChatMessage, protocol.ChatMessage{Player: *render.Ref(p), Text: text})
	return nil
}

// schedule replaces the room's pending task with fn after d. fn runs under
// the room lock and is skipped when a newer task superseded it or the room
// is gone. Must be called with the room lock held.
func (e *DrawEngine) schedule(room *models.Room, d time.Duration, fn func(room *models.Room)) {
	room.CancelTask()
	gen := room.TaskGen
	room.Task = e.clock.AfterFunc(d, func() {
		room.Lock()
		defer room.Unlock()
		if room.Closed || room.TaskGen != gen {
			return
		}
		room.Task = nil
		defer recoverTimer(room)
		fn(room)
	})
}

func recoverTimer(room *models.Room) {
	if r := recover(); r != nil {
		log.Error().Str("room", room.Code).Interface("panic", r).Msg("recovered from panic in round timer")
	}
}

func (e *DrawEngine) tick(room *models.Room) {
	secondsLeft, expired, ok := game.TickRound(room)
	if !ok {
		return
	}
	dispatch.Broadcast(room, protocol.EvtTimeUpdate, protocol.TimeUpdate{TimeLeft: secondsLeft})
	if !expired {
		e.schedule(room, game.TickInterval, e.tick)
		return
	}
	word := room.Draw.Word
	dispatch.BroadcastPersonalized(room, protocol.EvtTimeUp, func(viewerID string) any {
		return protocol.TimeUp{Word: word, Room: render.ProjectDraw(room, viewerID)}
	})
	e.schedule(room, game.TimeUpGrace, e.advance)
}

// advance moves a finished round on to the next drawer
func (e *DrawEngine) advance(room *models.Room) {
	if !room.Started || room.Draw.Phase != models.PhaseRoundEnd {
		return
	}
	res, err := game.AdvanceRound(room, e.lex, e.rng)
	if err != nil {
		return
	}
	e.announce(room, res)
}

func (e *DrawEngine) announce(room *models.Room, res *game.AdvanceResult) {
	if res.GameOver {
		room.CancelTask()
		rankings := render.Ranking(res.Ranking)
		log.Info().Str("mode", string(models.ModeDrawGuess)).Str("room", room.Code).Msg("game ended")
		dispatch.BroadcastPersonalized(room, protocol.EvtGameEnded, func(viewerID string) any {
			return protocol.GameEnded{Rankings: rankings, Room: render.ProjectDraw(room, viewerID)}
		})
		return
	}
	log.Debug().Str("room", room.Code).Int("round", room.Draw.RoundNumber).Str("word", room.Draw.Word).Msg("new round")
	dispatch.BroadcastPersonalized(room, protocol.EvtNewRound, viewDraw(room))
	e.schedule(room, game.TickInterval, e.tick)
}

// Disconnect removes the session's player and repairs the round: a departed
// drawer hands over to the next seat, and a lone survivor ends the game.
func (e *DrawEngine) Disconnect(sess *Session) {
	e.reg.Leave(sess, func(room *models.Room, playerID string) {
		res := game.RemoveDrawPlayer(room, playerID, e.lex, e.rng)
		if res == nil || len(room.Players) == 0 {
			return
		}
		dispatch.BroadcastPersonalized(room, protocol.EvtPlayerLeft, func(viewerID string) any {
			return protocol.PlayerPresence{Player: *render.Ref(res.Player), Room: render.ProjectDraw(room, viewerID)}
		})
		switch {
		case res.Advance != nil:
			e.announce(room, res.Advance)
		case res.AllGuessed:
			e.schedule(room, game.EarlyEndDelay, e.advance)
		}
	})
}
