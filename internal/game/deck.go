package game

import (
	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/google/uuid"
)

var rules = map[models.Rank]models.Rule{
	models.Ace:   {Name: "Point Kill", Text: "Pick anyone at the table to drink", Icon: "🎯"},
	models.Two:   {Name: "Miss", Text: "Keep others company when they drink until the next Miss shows up", Icon: "👸", Hold: models.HoldMiss},
	models.Three: {Name: "Three Gardens", Text: "Name things in the zoo, orchard or vegetable garden in turn; whoever repeats or stalls drinks", Icon: "🦁"},
	models.Four:  {Name: "Duel", Text: "Challenge someone to rock-paper-scissors; the loser drinks", Icon: "⚔️"},
	models.Five:  {Name: "Camera", Text: "Shout \"camera\" at any time; whoever moves drinks (held until used)", Icon: "📷", Hold: models.HoldCamera},
	models.Six:   {Name: "Nose", Text: "Touch your nose at any time; the last one to follow drinks (held until used)", Icon: "👃", Hold: models.HoldNose},
	models.Seven: {Name: "Skip Seven", Text: "Count up in turn, clap instead of any number with or divisible by 7; mistakes drink", Icon: "7️⃣"},
	models.Eight: {Name: "Toilet Pass", Text: "Only the holder may leave for the toilet; can be handed over and survives reshuffles", Icon: "🚽", Hold: models.HoldToilet},
	models.Nine:  {Name: "Drink Yourself", Text: "The drawer drinks", Icon: "🍺"},
	models.Ten:   {Name: "Crazy", Text: "Nobody may talk to you; whoever does drinks (held until someone slips)", Icon: "🤪", Hold: models.HoldCrazy},
	models.Jack:  {Name: "Upstream Drinks", Text: "The player seated before you drinks", Icon: "⬆️"},
	models.Queen: {Name: "Downstream Drinks", Text: "The player seated after you drinks", Icon: "⬇️"},
	models.King:  {Name: "King Rule", Text: "Set the punishment for the next King; the fourth King ends the round", Icon: "👑"},
}

// RuleOf returns the display rule of a rank
func RuleOf(rank models.Rank) models.Rule {
	return rules[rank]
}

// BehaviorOf maps a rank to how it resolves when drawn
func BehaviorOf(rank models.Rank) models.Behavior {
	switch rank {
	case models.Two:
		return models.Behavior{Class: models.BehaviorHold, Kind: models.HoldMiss}
	case models.Five:
		return models.Behavior{Class: models.BehaviorHold, Kind: models.HoldCamera}
	case models.Six:
		return models.Behavior{Class: models.BehaviorHold, Kind: models.HoldNose}
	case models.Ten:
		return models.Behavior{Class: models.BehaviorHold, Kind: models.HoldCrazy}
	case models.Eight:
		return models.Behavior{Class: models.BehaviorToilet, Kind: models.HoldToilet}
	default:
		return models.Behavior{Class: models.BehaviorInstant}
	}
}

// Activatable reports whether a held card of this rank can be played on demand
func Activatable(rank models.Rank) bool {
	return rank == models.Five || rank == models.Six || rank == models.Eight
}

// NewDeck builds an unshuffled 52-card deck with fresh card ids
func NewDeck() []*models.Card {
	deck := make([]*models.Card, 0, len(models.Suits)*len(models.Ranks))
	for _, s := range models.Suits {
		for _, r := range models.Ranks {
			deck = append(deck, &models.Card{ID: uuid.New().String(), Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes cards in place (Fisher-Yates) and returns them
func Shuffle(cards []*models.Card, rng Random) []*models.Card {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}
