package models

import "encoding/json"

// CardTable is the card-game sub-state of a room
type CardTable struct {
	Deck               []*Card // draw from the end
	DiscardPile        []*Card
	CurrentPlayerIndex int
	KingsDrawn         int
	KingRule           *string
	RoundNumber        int
	ToiletLifetime     int
}

// Frozen reports whether the fourth King has been drawn this round
func (t *CardTable) Frozen() bool {
	return t.KingsDrawn >= 4
}

// DrawRound is the drawing-game sub-state of a room
type DrawRound struct {
	Phase        DrawPhase
	DrawerIndex  int
	Word         string
	Category     string
	RoundSeconds int
	SecondsLeft  int
	RoundNumber  int
	MaxRounds    int
	Correct      map[string]bool   // player ids that guessed this round
	CorrectOrder []string          // same ids, in guess order
	Strokes      []json.RawMessage // replayed to late joiners
}

// Active reports whether drawing and guessing are accepted
func (d *DrawRound) Active() bool {
	return d.Phase == PhaseRound
}
