package game

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrGameAlreadyStarted  = errors.New("game already started")
	ErrRoomFull            = errors.New("room is full")
	ErrNotHost             = errors.New("only the host can do that")
	ErrInsufficientPlayers = errors.New("at least 2 players are needed")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrRoundFrozen         = errors.New("round is over, the host must reshuffle")
	ErrDeckEmpty           = errors.New("deck is empty, the host must reshuffle")
	ErrCardNotHeld         = errors.New("you do not hold that card")
	ErrCardNotActivatable  = errors.New("that card cannot be used this way")

	// Silent: the referenced room or player went away, or the game is not running.
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotStarted = errors.New("game not started")
)

// IsSilent reports whether err is an expected race that should not be
// surfaced to the acting connection.
func IsSilent(err error) bool {
	return errors.Is(err, ErrPlayerNotFound) || errors.Is(err, ErrGameNotStarted)
}
