package models

// Suit is one of the four card suits
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Rank is one of the thirteen card ranks
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Suits and Ranks list the deck composition in build order
var (
	Suits = []Suit{Spades, Hearts, Diamonds, Clubs}
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

// BehaviorClass tags how a drawn card is resolved
type BehaviorClass string

const (
	BehaviorInstant BehaviorClass = "instant"
	BehaviorHold    BehaviorClass = "hold"
	BehaviorToilet  BehaviorClass = "toilet"
)

// HoldKind names the effect of a card kept in hand
type HoldKind string

const (
	HoldNone   HoldKind = ""
	HoldMiss   HoldKind = "miss"
	HoldCamera HoldKind = "camera"
	HoldNose   HoldKind = "nose"
	HoldToilet HoldKind = "toilet"
	HoldCrazy  HoldKind = "crazy"
)

// Behavior is the resolved variant of a rank: Instant, Hold(kind) or Toilet.
// Kind is only meaningful for hold and toilet classes.
type Behavior struct {
	Class BehaviorClass
	Kind  HoldKind
}

// Rule is the display metadata of a rank
type Rule struct {
	Name string   `json:"name"`
	Text string   `json:"text"`
	Icon string   `json:"icon"`
	Hold HoldKind `json:"holdKind,omitempty"`
}

// Card is a single playing card. ToiletRoundsLeft is only set on held 8s.
type Card struct {
	ID               string
	Suit             Suit
	Rank             Rank
	ToiletRoundsLeft int
}

// Display returns the face of the card, e.g. "♠10"
func (c *Card) Display() string {
	return string(c.Suit) + string(c.Rank)
}
