package session

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/protocol"
	"github.com/aaronzipp/party-rooms/internal/store"
)

// Engine runs the actions of one game mode
type Engine interface {
	Mode() models.Mode
	Rooms() *store.RoomStore
	Handle(sess *Session, env protocol.Envelope)
	Disconnect(sess *Session)
}

var (
	errBadRequest    = errors.New("bad request")
	errUnknownAction = fmt.Errorf("%w: unknown action", errBadRequest)
)

// decode reads the payload of env. Optional payloads may be absent.
func decode[T any](env protocol.Envelope, optional bool) (T, error) {
	if optional && (len(env.P) == 0 || string(env.P) == "null") {
		var zero T
		return zero, nil
	}
	v, err := protocol.DecodePayload[T](env)
	if err != nil {
		return v, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return v, nil
}

// reportError sends err to the acting connection only. Disconnect races are
// dropped.
func reportError(mode models.Mode, sess *Session, action string, err error) {
	if game.IsSilent(err) {
		log.Debug().Str("mode", string(mode)).Str("session", sess.ID).Str("action", action).Err(err).Msg("ignored")
		return
	}
	sendError(sess, protocol.NewError(err))
}

func sendError(sess *Session, payload protocol.Error) {
	msg, err := protocol.Encode(protocol.EvtError, payload)
	if err != nil {
		log.Error().Err(err).Msg("encode error payload")
		return
	}
	if !sess.send(msg) {
		log.Warn().Str("session", sess.ID).Msg("outbox full, dropping error")
	}
}

// recoverAction keeps a panicking handler from taking the process down
func recoverAction(mode models.Mode, sess *Session, action string) {
	if r := recover(); r != nil {
		log.Error().
			Str("mode", string(mode)).
			Str("session", sess.ID).
			Str("action", action).
			Interface("panic", r).
			Bytes("stack", debug.Stack()).
			Msg("recovered from panic in action handler")
		sendError(sess, protocol.Error{Code: protocol.CodeInternal, Message: "internal error"})
	}
}
