package game

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aaronzipp/party-rooms/internal/models"
)

// ActionKind is the broad resolution of a drawn card
type ActionKind string

const (
	ActionInstant  ActionKind = "instant"
	ActionHold     ActionKind = "hold"
	ActionKingRule ActionKind = "setKingRule"
	ActionRoundEnd ActionKind = "roundEnd"
)

// Special events attached to a draw, used by clients for effects
const (
	SpecialNewMiss    = "newMiss"
	SpecialCamera     = "camera"
	SpecialNose       = "nose"
	SpecialToilet     = "toilet"
	SpecialCrazy      = "crazy"
	SpecialKingRule   = "kingRule"
	SpecialRoundEnd   = "roundEnd"
	SpecialPointKill  = "pointKill"
	SpecialDrinkSelf  = "drinkSelf"
	SpecialUpstream   = "upstream"
	SpecialDownstream = "downstream"
)

// MissDiscard records a miss card force-discarded from a previous holder
type MissDiscard struct {
	Player *models.Player
	Card   *models.Card
}

// DrawOutcome is everything a draw changed, for broadcasting
type DrawOutcome struct {
	Card          *models.Card
	Drawer        *models.Player
	Prev          *models.Player
	Next          *models.Player // nil when the round froze
	Kind          ActionKind
	Special       string
	Target        *models.Player // J and Q
	Message       string
	DiscardedMiss []MissDiscard
	Frozen        bool
	NeedsKingRule bool
}

// NewCardRoom creates a card-game room with a shuffled deck
func NewCardRoom(code string, toiletLifetime int, rng Random) *models.Room {
	if toiletLifetime <= 0 {
		toiletLifetime = DefaultToiletLifetime
	}
	return &models.Room{
		Code:      code,
		Mode:      models.ModeCards,
		CreatedAt: time.Now(),
		Cards: &models.CardTable{
			Deck:           Shuffle(NewDeck(), rng),
			RoundNumber:    1,
			ToiletLifetime: toiletLifetime,
		},
	}
}

// StartCardGame moves the room from lobby into play
func StartCardGame(room *models.Room, playerID string) error {
	p, _ := room.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.IsHost {
		return ErrNotHost
	}
	if room.Started {
		return ErrGameAlreadyStarted
	}
	if len(room.Players) < MinPlayers {
		return ErrInsufficientPlayers
	}
	room.Started = true
	room.Cards.CurrentPlayerIndex = 0
	return nil
}

// CurrentPlayer returns whose turn it is
func CurrentPlayer(room *models.Room) *models.Player {
	if len(room.Players) == 0 {
		return nil
	}
	return room.Players[room.Cards.CurrentPlayerIndex]
}

// DrawCard pops the top card for the player whose turn it is and resolves it
func DrawCard(room *models.Room, playerID string) (*DrawOutcome, error) {
	if !room.Started {
		return nil, ErrGameNotStarted
	}
	drawer, seat := room.PlayerByID(playerID)
	if drawer == nil {
		return nil, ErrPlayerNotFound
	}
	t := room.Cards
	if t.Frozen() {
		return nil, ErrRoundFrozen
	}
	if seat != t.CurrentPlayerIndex {
		return nil, ErrNotYourTurn
	}
	if len(t.Deck) == 0 {
		return nil, ErrDeckEmpty
	}

	card := t.Deck[len(t.Deck)-1]
	t.Deck = t.Deck[:len(t.Deck)-1]

	n := len(room.Players)
	prev := room.Players[(seat-1+n)%n]
	next := room.Players[(seat+1)%n]

	out := &DrawOutcome{Card: card, Drawer: drawer, Prev: prev, Kind: ActionInstant}

	behavior := BehaviorOf(card.Rank)
	switch behavior.Class {
	case models.BehaviorHold:
		if behavior.Kind == models.HoldMiss {
			out.DiscardedMiss = transferMiss(room, drawer)
		}
		drawer.Hand = append(drawer.Hand, card)
		out.Kind = ActionHold
		out.Special, out.Message = holdAnnouncement(drawer, behavior.Kind)
	case models.BehaviorToilet:
		card.ToiletRoundsLeft = t.ToiletLifetime
		drawer.Hand = append(drawer.Hand, card)
		out.Kind = ActionHold
		out.Special = SpecialToilet
		out.Message = fmt.Sprintf("%s got the toilet pass 🚽 (kept for %d rounds)", drawer.Name, t.ToiletLifetime)
	case models.BehaviorInstant:
		t.DiscardPile = append(t.DiscardPile, card)
		resolveInstant(room, out, next)
	}

	if !out.Frozen {
		t.CurrentPlayerIndex = (seat + 1) % n
		out.Next = room.Players[t.CurrentPlayerIndex]
	}
	return out, nil
}

func holdAnnouncement(drawer *models.Player, kind models.HoldKind) (string, string) {
	switch kind {
	case models.HoldMiss:
		return SpecialNewMiss, fmt.Sprintf("%s is the new Miss!", drawer.Name)
	case models.HoldCamera:
		return SpecialCamera, fmt.Sprintf("%s got the camera 📷, usable at any time!", drawer.Name)
	case models.HoldNose:
		return SpecialNose, fmt.Sprintf("%s got the nose 👃, usable at any time!", drawer.Name)
	case models.HoldCrazy:
		return SpecialCrazy, fmt.Sprintf("%s went crazy 🤪! Nobody may talk to them!", drawer.Name)
	}
	return "", ""
}

func resolveInstant(room *models.Room, out *DrawOutcome, next *models.Player) {
	t := room.Cards
	drawer := out.Drawer
	switch out.Card.Rank {
	case models.King:
		t.KingsDrawn++
		if t.Frozen() {
			out.Kind = ActionRoundEnd
			out.Special = SpecialRoundEnd
			out.Message = "👑 The fourth King is out! This round is over!"
			out.Frozen = true
			return
		}
		out.Kind = ActionKingRule
		out.Special = SpecialKingRule
		out.NeedsKingRule = true
		out.Message = fmt.Sprintf("👑 %s sets the punishment for the next King (%d/4 Kings drawn)", drawer.Name, t.KingsDrawn)
	case models.Jack:
		out.Target = out.Prev
		out.Special = SpecialUpstream
		out.Message = fmt.Sprintf("⬆️ Upstream %s drinks!", out.Prev.Name)
	case models.Queen:
		out.Target = next
		out.Special = SpecialDownstream
		out.Message = fmt.Sprintf("⬇️ Downstream %s drinks!", next.Name)
	case models.Ace:
		out.Special = SpecialPointKill
		out.Message = fmt.Sprintf("🎯 %s picks someone to drink!", drawer.Name)
	case models.Nine:
		out.Special = SpecialDrinkSelf
		out.Message = fmt.Sprintf("🍺 %s drinks!", drawer.Name)
	default:
		rule := RuleOf(out.Card.Rank)
		out.Message = rule.Icon + " " + rule.Name
	}
}

// transferMiss discards every miss card held by anyone but the new holder
func transferMiss(room *models.Room, holder *models.Player) []MissDiscard {
	var discarded []MissDiscard
	for _, p := range room.Players {
		if p == holder {
			continue
		}
		for i := p.FirstOfRank(models.Two); i != -1; i = p.FirstOfRank(models.Two) {
			card := p.TakeCard(i)
			room.Cards.DiscardPile = append(room.Cards.DiscardPile, card)
			discarded = append(discarded, MissDiscard{Player: p, Card: card})
		}
	}
	return discarded
}

// ActivateHeldCard plays a held camera, nose or toilet card
func ActivateHeldCard(room *models.Room, playerID, cardID string) (*models.Card, error) {
	p, _ := room.PlayerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	i := p.CardIndex(cardID)
	if i == -1 {
		return nil, ErrCardNotHeld
	}
	if !Activatable(p.Hand[i].Rank) {
		return nil, ErrCardNotActivatable
	}
	card := p.TakeCard(i)
	card.ToiletRoundsLeft = 0
	room.Cards.DiscardPile = append(room.Cards.DiscardPile, card)
	return card, nil
}

// TransferHeldCard hands a toilet card to another player, keeping its lifetime.
// An empty cardID picks the first toilet card in the hand.
func TransferHeldCard(room *models.Room, playerID, cardID, targetID string) (card *models.Card, from, to *models.Player, err error) {
	from, _ = room.PlayerByID(playerID)
	to, _ = room.PlayerByID(targetID)
	if from == nil || to == nil {
		return nil, nil, nil, ErrPlayerNotFound
	}
	i := from.FirstOfRank(models.Eight)
	if cardID != "" {
		i = from.CardIndex(cardID)
	}
	if i == -1 {
		return nil, nil, nil, ErrCardNotHeld
	}
	if from.Hand[i].Rank != models.Eight {
		return nil, nil, nil, ErrCardNotActivatable
	}
	card = from.TakeCard(i)
	to.Hand = append(to.Hand, card)
	return card, from, to, nil
}

// TriggerCrazyPenalty discards the caller's crazy card and names the victim
func TriggerCrazyPenalty(room *models.Room, playerID, victimID string) (card *models.Card, crazy, victim *models.Player, err error) {
	crazy, _ = room.PlayerByID(playerID)
	victim, _ = room.PlayerByID(victimID)
	if crazy == nil || victim == nil {
		return nil, nil, nil, ErrPlayerNotFound
	}
	i := crazy.FirstOfRank(models.Ten)
	if i == -1 {
		return nil, nil, nil, ErrCardNotHeld
	}
	card = crazy.TakeCard(i)
	room.Cards.DiscardPile = append(room.Cards.DiscardPile, card)
	return card, crazy, victim, nil
}

// SetKingRule stores the active punishment. Blank text clears it.
func SetKingRule(room *models.Room, playerID, text string) (*models.Player, error) {
	p, _ := room.PlayerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" {
		room.Cards.KingRule = nil
		return p, nil
	}
	if utf8.RuneCountInString(text) > MaxKingRuleLength {
		text = string([]rune(text)[:MaxKingRuleLength])
	}
	room.Cards.KingRule = &text
	return p, nil
}

// Reshuffle pools the deck, the discard pile and every held card except toilet
// cards that still have more than one round to live, then starts a new round.
func Reshuffle(room *models.Room, playerID string, rng Random) error {
	if !IsHost(room, playerID) {
		if p, _ := room.PlayerByID(playerID); p == nil {
			return ErrPlayerNotFound
		}
		return ErrNotHost
	}
	t := room.Cards
	pool := make([]*models.Card, 0, 52)
	pool = append(pool, t.Deck...)
	pool = append(pool, t.DiscardPile...)

	for _, p := range room.Players {
		kept := p.Hand[:0]
		for _, c := range p.Hand {
			if c.Rank == models.Eight && c.ToiletRoundsLeft > 1 {
				c.ToiletRoundsLeft--
				kept = append(kept, c)
				continue
			}
			c.ToiletRoundsLeft = 0
			pool = append(pool, c)
		}
		p.Hand = kept
	}

	t.Deck = Shuffle(pool, rng)
	t.DiscardPile = nil
	t.KingsDrawn = 0
	t.KingRule = nil
	t.CurrentPlayerIndex = 0
	t.RoundNumber++
	return nil
}

// RemoveCardPlayer unseats a player, discards their hand and repairs the turn index
func RemoveCardPlayer(room *models.Room, playerID string) (*models.Player, int) {
	p, seat := Unseat(room, playerID)
	if p == nil {
		return nil, -1
	}
	t := room.Cards
	for _, c := range p.Hand {
		c.ToiletRoundsLeft = 0
	}
	t.DiscardPile = append(t.DiscardPile, p.Hand...)
	p.Hand = nil
	t.CurrentPlayerIndex = RepairIndex(t.CurrentPlayerIndex, seat, len(room.Players))
	return p, seat
}
