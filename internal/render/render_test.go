package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/models"
)

func cardRoom() *models.Room {
	room := &models.Room{
		Code:    "ABCDEF",
		Mode:    models.ModeCards,
		Started: true,
		Players: []*models.Player{
			{ID: "p1", Name: "Host", IsHost: true, Hand: []*models.Card{
				{ID: "c1", Suit: models.Hearts, Rank: models.Eight, ToiletRoundsLeft: 2},
			}},
			{ID: "p2", Name: "Guest", Hand: []*models.Card{
				{ID: "c2", Suit: models.Spades, Rank: models.Two},
				{ID: "c3", Suit: models.Clubs, Rank: models.Ten},
			}},
		},
		Cards: &models.CardTable{
			Deck:               []*models.Card{{ID: "c4", Suit: models.Diamonds, Rank: models.Ace}},
			CurrentPlayerIndex: 1,
			KingsDrawn:         2,
			RoundNumber:        3,
			ToiletLifetime:     3,
		},
	}
	return room
}

func TestProjectCardsHidesForeignSuits(t *testing.T) {
	view := ProjectCards(cardRoom(), "p1")

	own := view.Players[0].Hand[0]
	assert.Equal(t, models.Hearts, own.Suit)
	assert.Equal(t, "♥8", own.Display)

	for _, c := range view.Players[1].Hand {
		assert.Empty(t, c.Suit, "suit of %s leaked", c.ID)
		assert.Empty(t, c.Display)
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Rule.Text)
	}
	assert.Equal(t, models.HoldMiss, view.Players[1].Hand[0].Hold)
	assert.Equal(t, 2, view.Players[1].HandCount)
}

func TestProjectCardsSnapshot(t *testing.T) {
	view := ProjectCards(cardRoom(), "p2")

	want := CardRoomView{
		Code: "ABCDEF",
		Players: []CardPlayerView{
			{ID: "p1", Name: "Host", IsHost: true, HandCount: 1, Hand: []CardView{
				{ID: "c1", Rank: models.Eight, Rule: game.RuleOf(models.Eight), Type: "toilet", ToiletRoundsLeft: 2, Hold: models.HoldToilet},
			}},
			{ID: "p2", Name: "Guest", HandCount: 2, Hand: []CardView{
				{ID: "c2", Rank: models.Two, Rule: game.RuleOf(models.Two), Type: "hold", Suit: models.Spades, Display: "♠2", Hold: models.HoldMiss},
				{ID: "c3", Rank: models.Ten, Rule: game.RuleOf(models.Ten), Type: "hold", Suit: models.Clubs, Display: "♣10", Hold: models.HoldCrazy},
			}},
		},
		DeckRemaining:      1,
		CurrentPlayerIndex: 1,
		KingsDrawn:         2,
		Started:            true,
		RoundNumber:        3,
		ToiletLifetime:     3,
	}
	diff := cmp.Diff(want, view, cmpopts.IgnoreFields(CardRoomView{}, "Holders"))
	assert.Empty(t, diff)

	require.Len(t, view.Holders[models.HoldToilet], 1)
	assert.Equal(t, "p1", view.Holders[models.HoldToilet][0].PlayerID)
	assert.Empty(t, view.Holders[models.HoldToilet][0].Cards[0].Suit)
	require.Len(t, view.Holders[models.HoldMiss], 1)
	assert.Equal(t, "Guest", view.Holders[models.HoldMiss][0].PlayerName)
	require.Len(t, view.Holders[models.HoldCrazy], 1)
	assert.Empty(t, view.Holders[models.HoldCamera])
	assert.NotNil(t, view.Holders[models.HoldNose])
}

func drawRoom() *models.Room {
	return &models.Room{
		Code:    "ABCDEF",
		Mode:    models.ModeDrawGuess,
		Started: true,
		Players: []*models.Player{
			{ID: "p1", Name: "Drawer", IsHost: true, Score: 5},
			{ID: "p2", Name: "Guesser", Score: 13},
			{ID: "p3", Name: "Other"},
		},
		Draw: &models.DrawRound{
			Phase:        models.PhaseRound,
			DrawerIndex:  0,
			Word:         "ice cream",
			Category:     "Food",
			RoundSeconds: 60,
			SecondsLeft:  37,
			RoundNumber:  1,
			MaxRounds:    3,
			Correct:      map[string]bool{"p2": true},
			CorrectOrder: []string{"p2"},
		},
	}
}

func TestProjectDrawWordOnlyForDrawer(t *testing.T) {
	room := drawRoom()

	drawer := ProjectDraw(room, "p1")
	require.NotNil(t, drawer.Word)
	assert.Equal(t, "ice cream", *drawer.Word)

	for _, viewer := range []string{"p2", "p3", ""} {
		view := ProjectDraw(room, viewer)
		assert.Nil(t, view.Word, viewer)
		assert.Equal(t, "_ _ _ _ _ _ _ _ _", view.WordHint)
		assert.Equal(t, 9, view.WordLength)
	}
}

func TestProjectDrawSnapshot(t *testing.T) {
	view := ProjectDraw(drawRoom(), "p3")

	want := DrawRoomView{
		Code: "ABCDEF",
		Players: []DrawPlayerView{
			{ID: "p1", Name: "Drawer", IsHost: true, Score: 5, IsDrawing: true},
			{ID: "p2", Name: "Guesser", Score: 13},
			{ID: "p3", Name: "Other"},
		},
		Started:        true,
		Phase:          models.PhaseRound,
		CurrentDrawer:  &PlayerRef{ID: "p1", Name: "Drawer"},
		Category:       "Food",
		WordHint:       "_ _ _ _ _ _ _ _ _",
		WordLength:     9,
		RoundSeconds:   60,
		SecondsLeft:    37,
		RoundNumber:    1,
		MaxRounds:      3,
		GuessedPlayers: []string{"p2"},
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Errorf("ProjectDraw mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectDrawLobby(t *testing.T) {
	room := drawRoom()
	room.Started = false
	room.Draw.Phase = models.PhaseLobby

	view := ProjectDraw(room, "p1")
	assert.Nil(t, view.CurrentDrawer)
	assert.Nil(t, view.Word)
	assert.Empty(t, view.WordHint)
}

func TestWordHint(t *testing.T) {
	assert.Equal(t, "_ _ _", WordHint("cat"))
	assert.Equal(t, "_ _", WordHint("猫咪"))
	assert.Equal(t, "", WordHint(""))
}

func TestRanking(t *testing.T) {
	players := []*models.Player{
		{ID: "a", Name: "A", Score: 5},
		{ID: "b", Name: "B", Score: 20},
		{ID: "c", Name: "C", Score: 20},
	}
	want := []RankingEntry{
		{ID: "b", Name: "B", Score: 20},
		{ID: "c", Name: "C", Score: 20},
		{ID: "a", Name: "A", Score: 5},
	}
	assert.Empty(t, cmp.Diff(want, Ranking(players)))
}

func TestRef(t *testing.T) {
	assert.Nil(t, Ref(nil))
	assert.Equal(t, &PlayerRef{ID: "a", Name: "A"}, Ref(&models.Player{ID: "a", Name: "A"}))
}
