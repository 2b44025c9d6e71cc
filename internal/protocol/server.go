package protocol

import (
	"encoding/json"

	"github.com/aaronzipp/party-rooms/internal/render"
)

// Event payloads going out to clients. Room carries the per-viewer
// snapshot (render.CardRoomView or render.DrawRoomView).

type RoomCreated struct {
	Code   string           `json:"code"`
	Player render.PlayerRef `json:"player"`
	Room   any              `json:"room"`
}

type RoomJoined struct {
	Code    string            `json:"code"`
	Player  render.PlayerRef  `json:"player"`
	Room    any               `json:"room"`
	Strokes []json.RawMessage `json:"strokes,omitempty"`
}

type PlayerPresence struct {
	Player render.PlayerRef `json:"player"`
	Room   any              `json:"room"`
}

// RoomSnapshot is the payload of gameStarted, roomState and newRound
type RoomSnapshot struct {
	Room any `json:"room"`
}

type MissDiscard struct {
	Player render.PlayerRef `json:"player"`
	CardID string           `json:"cardId"`
}

type CardAction struct {
	Kind          string            `json:"type"`
	Special       string            `json:"special,omitempty"`
	Message       string            `json:"message"`
	Target        *render.PlayerRef `json:"target,omitempty"`
	NextPlayer    *render.PlayerRef `json:"nextPlayer,omitempty"`
	DiscardedMiss []MissDiscard     `json:"discardedMiss,omitempty"`
	RoundFrozen   bool              `json:"roundFrozen,omitempty"`
	NeedsKingRule bool              `json:"needsKingRule,omitempty"`
}

type CardDrawn struct {
	Card   render.DrawnCardView `json:"card"`
	Player render.PlayerRef     `json:"player"`
	Action CardAction           `json:"action"`
	Room   any                  `json:"room"`
}

type DeckEmpty struct {
	Message string `json:"message"`
}

type KingRuleSet struct {
	Rule  *string          `json:"rule"`
	SetBy render.PlayerRef `json:"setBy"`
	Room  any              `json:"room"`
}

type CardActivated struct {
	Card   render.DrawnCardView `json:"card"`
	Player render.PlayerRef     `json:"player"`
	Room   any                  `json:"room"`
}

type CardTransferred struct {
	CardID           string           `json:"cardId"`
	ToiletRoundsLeft int              `json:"toiletRoundsLeft"`
	From             render.PlayerRef `json:"from"`
	To               render.PlayerRef `json:"to"`
	Room             any              `json:"room"`
}

type PenaltyTriggered struct {
	Crazy   render.PlayerRef `json:"crazyPlayer"`
	Victim  render.PlayerRef `json:"victim"`
	Message string           `json:"message"`
	Room    any              `json:"room"`
}

type DeckReshuffled struct {
	RoundNumber int `json:"roundNumber"`
	Room        any `json:"room"`
}

type CorrectGuess struct {
	Player      render.PlayerRef `json:"player"`
	Points      int              `json:"points"`
	DrawerBonus int              `json:"drawerBonus"`
	Room        any              `json:"room"`
}

type ChatMessage struct {
	Player render.PlayerRef `json:"player"`
	Text   string           `json:"message"`
}

type TimeUpdate struct {
	TimeLeft int `json:"timeLeft"`
}

type TimeUp struct {
	Word string `json:"word"`
	Room any    `json:"room"`
}

type GameEnded struct {
	Rankings []render.RankingEntry `json:"rankings"`
	Room     any                   `json:"room"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
