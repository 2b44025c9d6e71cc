package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/protocol"
)

type cardDrawnPayload struct {
	Card struct {
		ID   string      `json:"id"`
		Rank models.Rank `json:"rank"`
	} `json:"card"`
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
	Action struct {
		Type    string `json:"type"`
		Special string `json:"special"`
		Target  *struct {
			ID string `json:"id"`
		} `json:"target"`
	} `json:"action"`
	Room struct {
		CurrentPlayerIndex int `json:"currentPlayerIndex"`
		DeckRemaining      int `json:"deckRemaining"`
		Players            []struct {
			ID        string `json:"id"`
			HandCards []struct {
				ID   string      `json:"id"`
				Suit models.Suit `json:"suit"`
			} `json:"handCards"`
		} `json:"players"`
	} `json:"room"`
}

// startedCardRoom creates a started two-player room with the given cards on
// top of the deck, drawn in order
func startedCardRoom(t *testing.T, ranks ...models.Rank) (*CardEngine, *Session, *Session, *models.Room) {
	t.Helper()
	e := newCardEngine()
	host, code := createRoom(t, e, "Host")
	guest := joinRoom(t, e, code, "Guest")
	r := lookupRoom(t, e, code)

	r.Lock()
	deck := r.Cards.Deck
	for i := len(ranks) - 1; i >= 0; i-- {
		for j, c := range deck {
			if c.Rank == ranks[i] {
				deck = append(append(deck[:j:j], deck[j+1:]...), c)
				break
			}
		}
	}
	r.Cards.Deck = deck
	r.Unlock()

	act(e, host, protocol.ActStartGame, nil)
	require.Equal(t, []string{protocol.EvtPlayerJoined, protocol.EvtGameStarted}, eventNames(drain(t, host)))
	require.Equal(t, []string{protocol.EvtGameStarted}, eventNames(drain(t, guest)))
	return e, host, guest, r
}

func TestDrawQueenBroadcastsToEveryone(t *testing.T) {
	e, host, guest, r := startedCardRoom(t, models.Queen)
	_, guestID := guest.Binding()

	act(e, host, protocol.ActDrawCard, nil)

	for _, sess := range []*Session{host, guest} {
		var drawn cardDrawnPayload
		find(t, drain(t, sess), protocol.EvtCardDrawn, &drawn)
		assert.Equal(t, models.Queen, drawn.Card.Rank)
		require.NotNil(t, drawn.Action.Target)
		assert.Equal(t, guestID, drawn.Action.Target.ID)
		assert.Equal(t, 1, drawn.Room.CurrentPlayerIndex)
		assert.Equal(t, 51, drawn.Room.DeckRemaining)
	}
	assert.Len(t, r.Cards.DiscardPile, 1)
}

func TestHeldCardSuitOnlyVisibleToOwner(t *testing.T) {
	e, host, guest, _ := startedCardRoom(t, models.Five)
	_, hostID := host.Binding()

	act(e, host, protocol.ActDrawCard, nil)

	suitSeenBy := func(sess *Session) models.Suit {
		var drawn cardDrawnPayload
		find(t, drain(t, sess), protocol.EvtCardDrawn, &drawn)
		for _, p := range drawn.Room.Players {
			if p.ID == hostID {
				require.Len(t, p.HandCards, 1)
				return p.HandCards[0].Suit
			}
		}
		t.Fatal("host missing from view")
		return ""
	}
	assert.NotEmpty(t, suitSeenBy(host))
	assert.Empty(t, suitSeenBy(guest))
}

func TestTurnErrorsGoOnlyToActor(t *testing.T) {
	e, host, guest, _ := startedCardRoom(t)

	act(e, guest, protocol.ActDrawCard, nil)
	var perr errorPayload
	find(t, drain(t, guest), protocol.EvtError, &perr)
	assert.Equal(t, protocol.CodeNotYourTurn, perr.Code)
	assert.Empty(t, drain(t, host))

	act(e, guest, protocol.ActReshuffle, nil)
	find(t, drain(t, guest), protocol.EvtError, &perr)
	assert.Equal(t, protocol.CodeNotHost, perr.Code)
}

func TestEmptyDeckIsAnnouncedToRoom(t *testing.T) {
	e, host, guest, r := startedCardRoom(t)
	r.Lock()
	r.Cards.DiscardPile = append(r.Cards.DiscardPile, r.Cards.Deck...)
	r.Cards.Deck = nil
	r.Unlock()

	act(e, host, protocol.ActDrawCard, nil)
	assert.Equal(t, []string{protocol.EvtDeckEmpty}, eventNames(drain(t, host)))
	assert.Equal(t, []string{protocol.EvtDeckEmpty}, eventNames(drain(t, guest)))

	act(e, host, protocol.ActReshuffle, nil)
	var reshuffled struct {
		RoundNumber int `json:"roundNumber"`
	}
	find(t, drain(t, guest), protocol.EvtDeckReshuffled, &reshuffled)
	assert.Equal(t, 2, reshuffled.RoundNumber)
	assert.Len(t, r.Cards.Deck, 52)
}

func TestHeldCardActions(t *testing.T) {
	e, host, guest, r := startedCardRoom(t, models.Eight, models.Ten)
	_, hostID := host.Binding()
	_, guestID := guest.Binding()

	act(e, host, protocol.ActDrawCard, nil)
	act(e, guest, protocol.ActDrawCard, nil)
	drain(t, host)
	drain(t, guest)

	act(e, host, protocol.ActTransferHeldCard, protocol.TransferHeldCard{TargetPlayerID: guestID})
	var transferred struct {
		CardID           string `json:"cardId"`
		ToiletRoundsLeft int    `json:"toiletRoundsLeft"`
	}
	find(t, drain(t, guest), protocol.EvtCardTransferred, &transferred)
	assert.Equal(t, 3, transferred.ToiletRoundsLeft)
	drain(t, host)

	act(e, guest, protocol.ActTriggerCrazyPenalty, protocol.TriggerCrazyPenalty{VictimID: hostID})
	var penalty struct {
		Victim struct {
			ID string `json:"id"`
		} `json:"victim"`
		Message string `json:"message"`
	}
	find(t, drain(t, host), protocol.EvtPenaltyTriggered, &penalty)
	assert.Equal(t, hostID, penalty.Victim.ID)
	assert.NotEmpty(t, penalty.Message)
	drain(t, guest)

	act(e, guest, protocol.ActActivateHeldCard, protocol.ActivateHeldCard{CardID: transferred.CardID})
	assert.Equal(t, []string{protocol.EvtCardActivated}, eventNames(drain(t, host)))
	assert.Len(t, r.Cards.DiscardPile, 2)

	act(e, guest, protocol.ActActivateHeldCard, protocol.ActivateHeldCard{CardID: transferred.CardID})
	var perr errorPayload
	find(t, drain(t, guest), protocol.EvtError, &perr)
	assert.Equal(t, protocol.CodeCardNotHeld, perr.Code)
}

func TestKingRuleIsBroadcast(t *testing.T) {
	e, host, guest, r := startedCardRoom(t, models.King)

	act(e, host, protocol.ActDrawCard, nil)
	var drawn cardDrawnPayload
	find(t, drain(t, guest), protocol.EvtCardDrawn, &drawn)
	assert.Equal(t, "setKingRule", drawn.Action.Type)

	act(e, host, protocol.ActSetKingRule, protocol.SetKingRule{Rule: "sing"})
	var set struct {
		Rule *string `json:"rule"`
	}
	find(t, drain(t, guest), protocol.EvtKingRuleSet, &set)
	require.NotNil(t, set.Rule)
	assert.Equal(t, "sing", *set.Rule)
	assert.Equal(t, "sing", *r.Cards.KingRule)
}

func TestCardPlayerLeavingRepairsTurn(t *testing.T) {
	e, host, guest, r := startedCardRoom(t, models.Ace)
	act(e, host, protocol.ActDrawCard, nil)
	drain(t, guest)

	e.Disconnect(host)
	assert.Equal(t, []string{protocol.EvtPlayerLeft}, eventNames(drain(t, guest)))
	assert.Equal(t, 0, r.Cards.CurrentPlayerIndex)
	assert.True(t, r.Players[0].IsHost)
}

func TestPanicInHandlerIsRecovered(t *testing.T) {
	e, host, _, r := startedCardRoom(t)
	r.Lock()
	cards := r.Cards
	r.Cards = nil
	r.Unlock()

	act(e, host, protocol.ActDrawCard, nil)
	var perr errorPayload
	find(t, drain(t, host), protocol.EvtError, &perr)
	assert.Equal(t, protocol.CodeInternal, perr.Code)

	r.Lock()
	r.Cards = cards
	r.Unlock()
	act(e, host, protocol.ActDrawCard, nil)
	assert.Contains(t, eventNames(drain(t, host)), protocol.EvtCardDrawn, "room lock was released")
}
