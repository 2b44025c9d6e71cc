package game

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/aaronzipp/party-rooms/internal/models"
)

// GuessOutcome tells the caller how to relay a guess
type GuessOutcome int

const (
	GuessDropped GuessOutcome = iota // drawer, or already guessed this round
	GuessChat                        // wrong, or no round running: relay as chat
	GuessCorrect
)

// GuessResult describes a processed guess
type GuessResult struct {
	Outcome     GuessOutcome
	Player      *models.Player
	Text        string
	Points      int
	DrawerBonus int
	AllGuessed  bool // round moved to round_end early
}

// AdvanceResult describes what a round advance did
type AdvanceResult struct {
	GameOver bool
	Ranking  []*models.Player
}

// RemovalResult describes the repair after a player left a drawing room
type RemovalResult struct {
	Player     *models.Player
	Seat       int
	DrawerLeft bool
	Advance    *AdvanceResult // set when the round was force-advanced or the game ended
	AllGuessed bool           // the departure completed the guesser set
}

// NewDrawRoom creates a drawing-game room in the lobby phase
func NewDrawRoom(code string, roundSeconds, maxRounds int) *models.Room {
	if roundSeconds <= 0 {
		roundSeconds = DefaultRoundSeconds
	}
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &models.Room{
		Code:      code,
		Mode:      models.ModeDrawGuess,
		CreatedAt: time.Now(),
		Draw: &models.DrawRound{
			Phase:        models.PhaseLobby,
			RoundSeconds: roundSeconds,
			SecondsLeft:  roundSeconds,
			MaxRounds:    maxRounds,
			Correct:      make(map[string]bool),
		},
	}
}

// CurrentDrawer returns the player holding the pen
func CurrentDrawer(room *models.Room) *models.Player {
	d := room.Draw
	if !room.Started || d.DrawerIndex < 0 || d.DrawerIndex >= len(room.Players) {
		return nil
	}
	return room.Players[d.DrawerIndex]
}

// StartDrawGame resets scores and opens the first round with seat 0 drawing.
// A finished match can be started again.
func StartDrawGame(room *models.Room, playerID string, lex *Lexicon, rng Random) error {
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
	for _, pl := range room.Players {
		pl.Score = 0
	}
	room.Started = true
	room.Draw.DrawerIndex = 0
	room.Draw.RoundNumber = 1
	beginRound(room, lex, rng)
	return nil
}

func beginRound(room *models.Room, lex *Lexicon, rng Random) {
	d := room.Draw
	d.Category, d.Word = lex.Pick(rng)
	d.SecondsLeft = d.RoundSeconds
	d.Correct = make(map[string]bool)
	d.CorrectOrder = nil
	d.Strokes = nil
	d.Phase = models.PhaseRound
}

// TickRound counts one second down. Expired is true when the count reached
// zero, at which point the round is in round_end. ok is false when no round
// is running (stale tick).
func TickRound(room *models.Room) (secondsLeft int, expired, ok bool) {
	d := room.Draw
	if !room.Started || d.Phase != models.PhaseRound {
		return 0, false, false
	}
	if d.SecondsLeft > 0 {
		d.SecondsLeft--
	}
	if d.SecondsLeft == 0 {
		d.Phase = models.PhaseRoundEnd
		return 0, true, true
	}
	return d.SecondsLeft, false, true
}

func isDrawer(room *models.Room, playerID string) bool {
	drawer := CurrentDrawer(room)
	return drawer != nil && drawer.ID == playerID
}

// SubmitStroke records a stroke from the drawer. Anything else is dropped.
func SubmitStroke(room *models.Room, playerID string, stroke json.RawMessage) bool {
	if !room.Started || !room.Draw.Active() || !isDrawer(room, playerID) {
		return false
	}
	room.Draw.Strokes = append(room.Draw.Strokes, stroke)
	return true
}

// ClearSurface wipes the stroke log on behalf of the drawer
func ClearSurface(room *models.Room, playerID string) bool {
	if !room.Started || !room.Draw.Active() || !isDrawer(room, playerID) {
		return false
	}
	room.Draw.Strokes = nil
	return true
}

// SubmitGuess scores an exact match against the secret word
func SubmitGuess(room *models.Room, playerID, text string) (*GuessResult, error) {
	p, _ := room.PlayerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	text = strings.TrimSpace(text)
	res := &GuessResult{Player: p, Text: text, Outcome: GuessChat}
	d := room.Draw
	if !room.Started || !d.Active() {
		return res, nil
	}
	if isDrawer(room, playerID) || d.Correct[playerID] {
		res.Outcome = GuessDropped
		return res, nil
	}
	if text != d.Word {
		return res, nil
	}

	d.Correct[playerID] = true
	d.CorrectOrder = append(d.CorrectOrder, playerID)
	res.Outcome = GuessCorrect
	res.Points = GuessBasePoints + d.SecondsLeft/10
	res.DrawerBonus = DrawerBonus
	p.Score += res.Points
	CurrentDrawer(room).Score += res.DrawerBonus

	res.AllGuessed = closeIfAllGuessed(room)
	return res, nil
}

func closeIfAllGuessed(room *models.Room) bool {
	d := room.Draw
	if d.Phase != models.PhaseRound || len(room.Players) < MinPlayers {
		return false
	}
	if len(d.Correct) >= len(room.Players)-1 {
		d.Phase = models.PhaseRoundEnd
		return true
	}
	return false
}

// AdvanceRound hands the pen to the next seat. Wrapping past the last seat
// starts a new round number; exceeding the max ends the game.
func AdvanceRound(room *models.Room, lex *Lexicon, rng Random) (*AdvanceResult, error) {
	if !room.Started || len(room.Players) == 0 {
		return nil, ErrGameNotStarted
	}
	next := (room.Draw.DrawerIndex + 1) % len(room.Players)
	return advanceTo(room, next, next == 0, lex, rng), nil
}

func advanceTo(room *models.Room, next int, wrapped bool, lex *Lexicon, rng Random) *AdvanceResult {
	d := room.Draw
	d.DrawerIndex = next
	if wrapped {
		d.RoundNumber++
	}
	if d.RoundNumber > d.MaxRounds {
		return endGame(room)
	}
	beginRound(room, lex, rng)
	return &AdvanceResult{}
}

func endGame(room *models.Room) *AdvanceResult {
	d := room.Draw
	room.Started = false
	d.Phase = models.PhaseGameEnd
	d.Correct = make(map[string]bool)
	d.CorrectOrder = nil
	d.Strokes = nil
	return &AdvanceResult{GameOver: true, Ranking: Ranking(room.Players)}
}

// Ranking sorts players by score, highest first; ties keep seat order
func Ranking(players []*models.Player) []*models.Player {
	ranked := append([]*models.Player(nil), players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// RemoveDrawPlayer unseats a player and repairs the round: the drawer leaving
// force-advances to whoever now sits in their seat, fewer than two players
// ends the game, and a departing guesser may complete the guesser set.
func RemoveDrawPlayer(room *models.Room, playerID string, lex *Lexicon, rng Random) *RemovalResult {
	d := room.Draw
	wasDrawer := isDrawer(room, playerID)
	p, seat := Unseat(room, playerID)
	if p == nil {
		return nil
	}
	res := &RemovalResult{Player: p, Seat: seat}
	if d.Correct[playerID] {
		delete(d.Correct, playerID)
		for i, id := range d.CorrectOrder {
			if id == playerID {
				d.CorrectOrder = append(d.CorrectOrder[:i], d.CorrectOrder[i+1:]...)
				break
			}
		}
	}

	remaining := len(room.Players)
	if !room.Started || remaining == 0 {
		d.DrawerIndex = RepairIndex(d.DrawerIndex, seat, remaining)
		return res
	}
	if remaining < MinPlayers {
		res.DrawerLeft = wasDrawer
		res.Advance = endGame(room)
		d.DrawerIndex = 0
		return res
	}
	if wasDrawer {
		res.DrawerLeft = true
		wrapped := seat >= remaining
		res.Advance = advanceTo(room, seat%remaining, wrapped, lex, rng)
		return res
	}
	d.DrawerIndex = RepairIndex(d.DrawerIndex, seat, remaining)
	res.AllGuessed = closeIfAllGuessed(room)
	return res
}
