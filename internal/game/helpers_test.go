package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/party-rooms/internal/models"
)

// zeroRandom always picks index 0
type zeroRandom struct{}

func (zeroRandom) Intn(int) int { return 0 }

func seat(room *models.Room, names ...string) []*models.Player {
	players := make([]*models.Player, 0, len(names))
	for i, name := range names {
		p := &models.Player{ID: fmt.Sprintf("p%d", len(room.Players)+1), Name: CleanName(name, i+1)}
		SeatPlayer(room, p)
		players = append(players, p)
	}
	return players
}

func countHosts(room *models.Room) int {
	n := 0
	for _, p := range room.Players {
		if p.IsHost {
			n++
		}
	}
	return n
}

// newCardTable returns a started card room with the given players
func newCardTable(t *testing.T, names ...string) (*models.Room, []*models.Player) {
	t.Helper()
	room := NewCardRoom("ABCDEF", DefaultToiletLifetime, zeroRandom{})
	players := seat(room, names...)
	require.NoError(t, StartCardGame(room, players[0].ID))
	return room, players
}

// stackDeck moves cards of the given ranks to the top of the deck so they
// are drawn in the listed order
func stackDeck(t *testing.T, room *models.Room, ranks ...models.Rank) {
	t.Helper()
	deck := room.Cards.Deck
	var top []*models.Card
	for _, rank := range ranks {
		found := false
		for i, c := range deck {
			if c.Rank == rank {
				top = append(top, c)
				deck = append(deck[:i], deck[i+1:]...)
				found = true
				break
			}
		}
		require.True(t, found, "no %s left in deck", rank)
	}
	for i := len(top) - 1; i >= 0; i-- {
		deck = append(deck, top[i])
	}
	room.Cards.Deck = deck
}

// requireAllCards checks that deck, discard pile and hands hold exactly one
// full deck
func requireAllCards(t *testing.T, room *models.Room) {
	t.Helper()
	seen := make(map[string]bool, 52)
	add := func(cards []*models.Card) {
		for _, c := range cards {
			require.False(t, seen[c.ID], "card %s appears twice", c.Display())
			seen[c.ID] = true
		}
	}
	add(room.Cards.Deck)
	add(room.Cards.DiscardPile)
	for _, p := range room.Players {
		add(p.Hand)
	}
	require.Len(t, seen, 52)
}
