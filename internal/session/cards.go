package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/party-rooms/internal/dispatch"
	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/protocol"
	"github.com/aaronzipp/party-rooms/internal/render"
	"github.com/aaronzipp/party-rooms/internal/store"
)

// CardEngine runs card-game rooms
type CardEngine struct {
	reg *Registry
	rng game.Random
}

// NewCardEngine creates the card-game engine. Late joins are refused once a
// room started.
func NewCardEngine(rooms *store.RoomStore, rng game.Random, toiletLifetime int) *CardEngine {
	newRoom := func() *models.Room {
		return game.NewCardRoom("", toiletLifetime, rng)
	}
	return &CardEngine{
		reg: NewRegistry(models.ModeCards, rooms, game.CardRoomCapacity, false, newRoom),
		rng: rng,
	}
}

func (e *CardEngine) Mode() models.Mode       { return models.ModeCards }
func (e *CardEngine) Rooms() *store.RoomStore { return e.reg.Rooms() }

func viewCards(room *models.Room) func(viewerID string) any {
	return func(viewerID string) any {
		return protocol.RoomSnapshot{Room: render.ProjectCards(room, viewerID)}
	}
}

// Handle runs one inbound action
func (e *CardEngine) Handle(sess *Session, env protocol.Envelope) {
	defer recoverAction(models.ModeCards, sess, env.T)

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
			dispatch.SendTo(room, playerID, protocol.EvtRoomState, viewCards(room)(playerID))
			return nil
		})
	case protocol.ActDrawCard:
		err = e.reg.WithRoom(sess, e.drawCard)
	case protocol.ActSetKingRule:
		var req protocol.SetKingRule
		if req, err = decode[protocol.SetKingRule](env, false); err == nil {
			err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
				return e.setKingRule(room, playerID, req.Rule)
			})
		}
	case protocol.ActActivateHeldCard:
		var req protocol.ActivateHeldCard
		if req, err = decode[protocol.ActivateHeldCard](env, false); err == nil {
			err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
				return e.activateHeldCard(room, playerID, req.CardID)
			})
		}
	case protocol.ActTransferHeldCard:
		var req protocol.TransferHeldCard
		if req, err = decode[protocol.TransferHeldCard](env, false); err == nil {
			err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
				return e.transferHeldCard(room, playerID, req)
			})
		}
	case protocol.ActTriggerCrazyPenalty:
		var req protocol.TriggerCrazyPenalty
		if req, err = decode[protocol.TriggerCrazyPenalty](env, false); err == nil {
			err = e.reg.WithRoom(sess, func(room *models.Room, playerID string) error {
				return e.triggerCrazyPenalty(room, playerID, req.VictimID)
			})
		}
	case protocol.ActReshuffle:
		err = e.reg.WithRoom(sess, e.reshuffle)
	default:
		err = errUnknownAction
	}
	if err != nil {
		reportError(models.ModeCards, sess, env.T, err)
	}
}

func (e *CardEngine) createRoom(sess *Session, env protocol.Envelope) error {
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
		Room:   render.ProjectCards(room, player.ID),
	})
	return nil
}

func (e *CardEngine) joinRoom(sess *Session, env protocol.Envelope) error {
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
	dispatch.SendTo(room, player.ID, protocol.EvtRoomJoined, protocol.RoomJoined{
		Code:   room.Code,
		Player: *render.Ref(player),
		Room:   render.ProjectCards(room, player.ID),
	})
	if !existing {
		dispatch.BroadcastPersonalizedExcept(room, player.ID, protocol.EvtPlayerJoined, func(viewerID string) any {
			return protocol.PlayerPresence{Player: *render.Ref(player), Room: render.ProjectCards(room, viewerID)}
		})
	}
	return nil
}

func (e *CardEngine) startGame(room *models.Room, playerID string) error {
	if err := game.StartCardGame(room, playerID); err != nil {
		return err
	}
	log.Info().Str("mode", string(models.ModeCards)).Str("room", room.Code).Int("players", len(room.Players)).Msg("game started")
	dispatch.BroadcastPersonalized(room, protocol.EvtGameStarted, viewCards(room))
	return nil
}

func (e *CardEngine) drawCard(room *models.Room, playerID string) error {
	out, err := game.DrawCard(room, playerID)
	if errors.Is(err, game.ErrDeckEmpty) {
		dispatch.Broadcast(room, protocol.EvtDeckEmpty, protocol.DeckEmpty{
			Message: "The deck is empty, the host has to reshuffle",
		})
		return nil
	}
	if err != nil {
		return err
	}

	action := protocol.CardAction{
		Kind:          string(out.Kind),
		Special:       out.Special,
		Message:       out.Message,
		Target:        render.Ref(out.Target),
		NextPlayer:    render.Ref(out.Next),
		RoundFrozen:   out.Frozen,
		NeedsKingRule: out.NeedsKingRule,
	}
	for _, d := range out.DiscardedMiss {
		action.DiscardedMiss = append(action.DiscardedMiss, protocol.MissDiscard{Player: *render.Ref(d.Player), CardID: d.Card.ID})
	}
	log.Debug().Str("room", room.Code).Str("player", playerID).Str("card", out.Card.Display()).Msg("card drawn")

	dispatch.BroadcastPersonalized(room, protocol.EvtCardDrawn, func(viewerID string) any {
		return protocol.CardDrawn{
			Card:   render.ProjectDrawnCard(out.Card),
			Player: *render.Ref(out.Drawer),
			Action: action,
			Room:   render.ProjectCards(room, viewerID),
		}
	})
	return nil
}

func (e *CardEngine) setKingRule(room *models.Room, playerID, text string) error {
	p, err := game.SetKingRule(room, playerID, text)
	if err != nil {
		return err
	}
	dispatch.BroadcastPersonalized(room, protocol.EvtKingRuleSet, func(viewerID string) any {
		return protocol.KingRuleSet{Rule: room.Cards.KingRule, SetBy: *render.Ref(p), Room: render.ProjectCards(room, viewerID)}
	})
	return nil
}

func (e *CardEngine) activateHeldCard(room *models.Room, playerID, cardID string) error {
	card, err := game.ActivateHeldCard(room, playerID, cardID)
	if err != nil {
		return err
	}
	p, _ := room.PlayerByID(playerID)
	dispatch.BroadcastPersonalized(room, protocol.EvtCardActivated, func(viewerID string) any {
		return protocol.CardActivated{Card: render.ProjectDrawnCard(card), Player: *render.Ref(p), Room: render.ProjectCards(room, viewerID)}
	})
	return nil
}

func (e *CardEngine) transferHeldCard(room *models.Room, playerID string, req protocol.TransferHeldCard) error {
	card, from, to, err := game.TransferHeldCard(room, playerID, req.CardID, req.TargetPlayerID)
	if err != nil {
		return err
	}
	dispatch.BroadcastPersonalized(room, protocol.EvtCardTransferred, func(viewerID string) any {
		return protocol.CardTransferred{
			CardID:           card.ID,
			ToiletRoundsLeft: card.ToiletRoundsLeft,
			From:             *render.Ref(from),
			To:               *render.Ref(to),
			Room:             render.ProjectCards(room, viewerID),
		}
	})
	return nil
}

func (e *CardEngine) triggerCrazyPenalty(room *models.Room, playerID, victimID string) error {
	_, crazy, victim, err := game.TriggerCrazyPenalty(room, playerID, victimID)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("🤪 %s talked to %s and has to drink!", victim.Name, crazy.Name)
	dispatch.BroadcastPersonalized(room, protocol.EvtPenaltyTriggered, func(viewerID string) any {
		return protocol.PenaltyTriggered{
			Crazy:   *render.Ref(crazy),
			Victim:  *render.Ref(victim),
			Message: msg,
			Room:    render.ProjectCards(room, viewerID),
		}
	})
	return nil
}

func (e *CardEngine) reshuffle(room *models.Room, playerID string) error {
	if err := game.Reshuffle(room, playerID, e.rng); err != nil {
		return err
	}
	log.Info().Str("room", room.Code).Int("round", room.Cards.RoundNumber).Msg("deck reshuffled")
	dispatch.BroadcastPersonalized(room, protocol.EvtDeckReshuffled, func(viewerID string) any {
		return protocol.DeckReshuffled{RoundNumber: room.Cards.RoundNumber, Room: render.ProjectCards(room, viewerID)}
	})
	return nil
}

// Disconnect removes the session's player. Their hand goes to the discard
// pile and the turn index keeps pointing at the same player.
func (e *CardEngine) Disconnect(sess *Session) {
	e.reg.Leave(sess, func(room *models.Room, playerID string) {
		p, _ := game.RemoveCardPlayer(room, playerID)
		if p == nil || len(room.Players) == 0 {
			return
		}
		dispatch.BroadcastPersonalized(room, protocol.EvtPlayerLeft, func(viewerID string) any {
			return protocol.PlayerPresence{Player: *render.Ref(p), Room: render.ProjectCards(room, viewerID)}
		})
	})
}
