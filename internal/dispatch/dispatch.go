package dispatch

import (
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/protocol"
)

// All functions here expect the room lock to be held by the caller. Sends
// never block: a full outbox drops the message.

// SendTo delivers an event to a single player
func SendTo(room *models.Room, playerID, event string, payload any) {
	outbox, ok := room.Client(playerID)
	if !ok {
		return
	}
	msg, err := protocol.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("room", room.Code).Str("event", event).Msg("encode failed")
		return
	}
	deliver(room, playerID, outbox, event, msg)
}

// Broadcast sends the same event to every connected player
func Broadcast(room *models.Room, event string, payload any) {
	BroadcastExcept(room, "", event, payload)
}

// BroadcastExcept sends the same event to everyone but exceptID
func BroadcastExcept(room *models.Room, exceptID, event string, payload any) {
	msg, err := protocol.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("room", room.Code).Str("event", event).Msg("encode failed")
		return
	}
	clients := room.Clients()
	sent := 0
	for playerID, outbox := range clients {
		if playerID == exceptID {
			continue
		}
		if deliver(room, playerID, outbox, event, msg) {
			sent++
		}
	}
	log.Debug().Str("room", room.Code).Str("event", event).Msgf("broadcast to %d/%d clients", sent, len(clients))
}

// BroadcastPersonalized renders a payload per recipient
func BroadcastPersonalized(room *models.Room, event string, renderFunc func(viewerID string) any) {
	BroadcastPersonalizedExcept(room, "", event, renderFunc)
}

// BroadcastPersonalizedExcept renders a payload per recipient, skipping exceptID
func BroadcastPersonalizedExcept(room *models.Room, exceptID, event string, renderFunc func(viewerID string) any) {
	for playerID, outbox := range room.Clients() {
		if playerID == exceptID {
			continue
		}
		msg, err := protocol.Encode(event, renderFunc(playerID))
		if err != nil {
			log.Error().Err(err).Str("room", room.Code).Str("event", event).Msg("encode failed")
			continue
		}
		deliver(room, playerID, outbox, event, msg)
	}
}

func deliver(room *models.Room, playerID string, outbox chan []byte, event string, msg []byte) bool {
	select {
	case outbox <- msg:
		return true
	default:
		log.Warn().Str("room", room.Code).Str("player", playerID).Str("event", event).Msg("outbox full, dropping message")
		return false
	}
}
