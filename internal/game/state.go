package game

import (
	"github.com/aaronzipp/party-rooms/internal/models"
)

// SeatPlayer appends a player to the seating order. The first player seated
// in an empty room becomes host.
func SeatPlayer(room *models.Room, p *models.Player) {
	p.IsHost = len(room.Players) == 0
	room.Players = append(room.Players, p)
}

// Unseat removes a player from the seating order and migrates the host flag
// to the new first seat. It returns the removed player and their seat, or
// (nil, -1) if the player is not in the room.
func Unseat(room *models.Room, playerID string) (*models.Player, int) {
	p, seat := room.PlayerByID(playerID)
	if p == nil {
		return nil, -1
	}
	room.Players = append(room.Players[:seat], room.Players[seat+1:]...)
	if p.IsHost && len(room.Players) > 0 {
		room.Players[0].IsHost = true
	}
	return p, seat
}

// RepairIndex keeps a turn index pointing at the same logical player after
// the player at seat left. When the current player left, the index now points
// at whoever took their seat, wrapping to 0 past the end.
func RepairIndex(index, seat, remaining int) int {
	if seat < index {
		index--
	}
	if remaining == 0 || index >= remaining {
		return 0
	}
	return index
}

// IsHost reports whether playerID is the room host
func IsHost(room *models.Room, playerID string) bool {
	p, _ := room.PlayerByID(playerID)
	return p != nil && p.IsHost
}
