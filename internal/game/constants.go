package game

import "time"

const (
	// MinPlayers is the minimum number of players required to start either game
	MinPlayers = 2

	// CardRoomCapacity is the seat limit of a card-game room
	CardRoomCapacity = 10

	// DrawRoomCapacity is the seat limit of a drawing-game room
	DrawRoomCapacity = 8

	// DefaultToiletLifetime is how many reshuffles a held 8 survives
	DefaultToiletLifetime = 3

	// DefaultRoundSeconds is the length of a drawing round
	DefaultRoundSeconds = 60

	// DefaultMaxRounds is the number of full drawer rotations in a match
	DefaultMaxRounds = 3

	// GuessBasePoints is awarded for every correct guess, plus one point per 10 seconds left
	GuessBasePoints = 10

	// DrawerBonus is awarded to the drawer for every correct guess
	DrawerBonus = 5

	// TimeUpGrace is the pause between revealing the word and the next round
	TimeUpGrace = 3 * time.Second

	// EarlyEndDelay is the pause before advancing once everybody guessed
	EarlyEndDelay = 2 * time.Second

	// TickInterval is the round timer resolution
	TickInterval = time.Second

	// MaxNameLength caps display names (in runes)
	MaxNameLength = 24

	// MaxKingRuleLength caps king rule text (in runes)
	MaxKingRuleLength = 200

	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// RoomCodeChars are the characters used for generating room codes (excluding ambiguous chars)
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)
