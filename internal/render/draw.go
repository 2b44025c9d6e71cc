package render

import (
	"strings"
	"unicode/utf8"

	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
)

// DrawPlayerView is a seated player of a drawing room
type DrawPlayerView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsHost    bool   `json:"isHost"`
	Score     int    `json:"score"`
	IsDrawing bool   `json:"isDrawing"`
}

// PlayerRef names a player without game state
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DrawRoomView is the per-viewer snapshot of a drawing room
type DrawRoomView struct {
	Code           string           `json:"id"`
	Players        []DrawPlayerView `json:"players"`
	Started        bool             `json:"gameStarted"`
	Phase          models.DrawPhase `json:"phase"`
	CurrentDrawer  *PlayerRef       `json:"currentDrawer"`
	Word           *string          `json:"currentWord"`
	Category       string           `json:"currentCategory,omitempty"`
	WordHint       string           `json:"wordHint,omitempty"`
	WordLength     int              `json:"wordLength"`
	RoundSeconds   int              `json:"roundTime"`
	SecondsLeft    int              `json:"timeLeft"`
	RoundNumber    int              `json:"roundNumber"`
	MaxRounds      int              `json:"maxRounds"`
	GuessedPlayers []string         `json:"guessedPlayers"`
}

// RankingEntry is one line of the final standings
type RankingEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// WordHint masks a word as one underscore per character, e.g. "_ _ _"
func WordHint(word string) string {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("_ ", n), " ")
}

// ProjectDraw builds the snapshot of a drawing room for viewerID (must be
// called with the room lock held). Only the drawer receives the word.
func ProjectDraw(room *models.Room, viewerID string) DrawRoomView {
	d := room.Draw
	drawer := game.CurrentDrawer(room)
	view := DrawRoomView{
		Code:           room.Code,
		Players:        make([]DrawPlayerView, 0, len(room.Players)),
		Started:        room.Started,
		Phase:          d.Phase,
		RoundSeconds:   d.RoundSeconds,
		SecondsLeft:    d.SecondsLeft,
		RoundNumber:    d.RoundNumber,
		MaxRounds:      d.MaxRounds,
		GuessedPlayers: append([]string{}, d.CorrectOrder...),
	}
	for _, p := range room.Players {
		view.Players = append(view.Players, DrawPlayerView{
			ID:        p.ID,
			Name:      p.Name,
			IsHost:    p.IsHost,
			Score:     p.Score,
			IsDrawing: drawer != nil && p.ID == drawer.ID,
		})
	}
	if drawer == nil {
		return view
	}

	view.CurrentDrawer = &PlayerRef{ID: drawer.ID, Name: drawer.Name}
	view.Category = d.Category
	view.WordHint = WordHint(d.Word)
	view.WordLength = utf8.RuneCountInString(d.Word)
	if drawer.ID == viewerID {
		word := d.Word
		view.Word = &word
	}
	return view
}

// Ranking projects the final standings, highest score first, ties by seat
func Ranking(players []*models.Player) []RankingEntry {
	ranked := game.Ranking(players)
	entries := make([]RankingEntry, 0, len(ranked))
	for _, p := range ranked {
		entries = append(entries, RankingEntry{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	return entries
}

// Ref projects a player reference, tolerating nil
func Ref(p *models.Player) *PlayerRef {
	if p == nil {
		return nil
	}
	return &PlayerRef{ID: p.ID, Name: p.Name}
}
