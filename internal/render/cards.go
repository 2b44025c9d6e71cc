package render

import (
	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
)

// CardView is a held card as one viewer sees it. Suit and Display are only
// filled in for the card's owner.
type CardView struct {
	ID               string          `json:"id"`
	Rank             models.Rank     `json:"rank"`
	Rule             models.Rule     `json:"rule"`
	Type             string          `json:"type"`
	ToiletRoundsLeft int             `json:"toiletRoundsLeft,omitempty"`
	Suit             models.Suit     `json:"suit,omitempty"`
	Display          string          `json:"display,omitempty"`
	Hold             models.HoldKind `json:"holdKind,omitempty"`
}

// CardPlayerView is a seated player of a card room
type CardPlayerView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsHost    bool       `json:"isHost"`
	HandCount int        `json:"handCount"`
	Hand      []CardView `json:"handCards"`
}

// HolderView lists who holds cards of one hold kind
type HolderView struct {
	PlayerID   string     `json:"playerId"`
	PlayerName string     `json:"playerName"`
	Cards      []CardView `json:"cards"`
}

// CardRoomView is the per-viewer snapshot of a card room
type CardRoomView struct {
	Code               string                           `json:"id"`
	Players            []CardPlayerView                 `json:"players"`
	DeckRemaining      int                              `json:"deckRemaining"`
	DiscardPileCount   int                              `json:"discardPileCount"`
	CurrentPlayerIndex int                              `json:"currentPlayerIndex"`
	KingsDrawn         int                              `json:"kingsDrawn"`
	KingRule           *string                          `json:"currentKRule"`
	Started            bool                             `json:"gameStarted"`
	RoundNumber        int                              `json:"roundNumber"`
	ToiletLifetime     int                              `json:"toiletCardRounds"`
	Holders            map[models.HoldKind][]HolderView `json:"holders"`
}

// DrawnCardView is the card announced by cardDrawn. A drawn card is face up,
// so everyone sees the suit.
type DrawnCardView struct {
	ID      string      `json:"id"`
	Suit    models.Suit `json:"suit"`
	Rank    models.Rank `json:"rank"`
	Display string      `json:"display"`
	Rule    models.Rule `json:"rule"`
	Type    string      `json:"type"`
}

var holdKinds = []models.HoldKind{
	models.HoldMiss,
	models.HoldCamera,
	models.HoldNose,
	models.HoldToilet,
	models.HoldCrazy,
}

// ProjectCard shows a hand card to viewer. Only the owner sees the suit.
func ProjectCard(c *models.Card, owner bool) CardView {
	rule := game.RuleOf(c.Rank)
	v := CardView{
		ID:               c.ID,
		Rank:             c.Rank,
		Rule:             rule,
		Type:             string(game.BehaviorOf(c.Rank).Class),
		ToiletRoundsLeft: c.ToiletRoundsLeft,
		Hold:             rule.Hold,
	}
	if owner {
		v.Suit = c.Suit
		v.Display = c.Display()
	}
	return v
}

// ProjectDrawnCard shows a freshly drawn card to the whole table
func ProjectDrawnCard(c *models.Card) DrawnCardView {
	return DrawnCardView{
		ID:      c.ID,
		Suit:    c.Suit,
		Rank:    c.Rank,
		Display: c.Display(),
		Rule:    game.RuleOf(c.Rank),
		Type:    string(game.BehaviorOf(c.Rank).Class),
	}
}

// ProjectCards builds the snapshot of a card room for viewerID (must be
// called with the room lock held)
func ProjectCards(room *models.Room, viewerID string) CardRoomView {
	t := room.Cards
	view := CardRoomView{
		Code:               room.Code,
		Players:            make([]CardPlayerView, 0, len(room.Players)),
		DeckRemaining:      len(t.Deck),
		DiscardPileCount:   len(t.DiscardPile),
		CurrentPlayerIndex: t.CurrentPlayerIndex,
		KingsDrawn:         t.KingsDrawn,
		KingRule:           t.KingRule,
		Started:            room.Started,
		RoundNumber:        t.RoundNumber,
		ToiletLifetime:     t.ToiletLifetime,
		Holders:            make(map[models.HoldKind][]HolderView, len(holdKinds)),
	}

	for _, kind := range holdKinds {
		view.Holders[kind] = []HolderView{}
	}

	for _, p := range room.Players {
		owner := p.ID == viewerID
		pv := CardPlayerView{
			ID:        p.ID,
			Name:      p.Name,
			IsHost:    p.IsHost,
			HandCount: len(p.Hand),
			Hand:      make([]CardView, 0, len(p.Hand)),
		}
		byKind := make(map[models.HoldKind][]CardView)
		for _, c := range p.Hand {
			cv := ProjectCard(c, owner)
			pv.Hand = append(pv.Hand, cv)
			if cv.Hold != models.HoldNone {
				byKind[cv.Hold] = append(byKind[cv.Hold], cv)
			}
		}
		for _, kind := range holdKinds {
			if cards := byKind[kind]; len(cards) > 0 {
				view.Holders[kind] = append(view.Holders[kind], HolderView{
					PlayerID:   p.ID,
					PlayerName: p.Name,
					Cards:      cards,
				})
			}
		}
		view.Players = append(view.Players, pv)
	}
	return view
}
