package protocol

import (
	"errors"

	"github.com/aaronzipp/party-rooms/internal/game"
)

// Wire error codes
const (
	CodeRoomNotFound        = "RoomNotFound"
	CodeGameAlreadyStarted  = "GameAlreadyStarted"
	CodeRoomFull            = "RoomFull"
	CodeNotHost             = "NotHost"
	CodeInsufficientPlayers = "InsufficientPlayers"
	CodeNotYourTurn         = "NotYourTurn"
	CodeRoundFrozen         = "RoundFrozen"
	CodeDeckEmpty           = "DeckEmpty"
	CodeCardNotHeld         = "CardNotHeld"
	CodeCardNotActivatable  = "CardNotActivatable"
	CodeBadRequest          = "BadRequest"
	CodeInternal            = "Internal"
)

var codes = []struct {
	err  error
	code string
}{
	{game.ErrRoomNotFound, CodeRoomNotFound},
	{game.ErrGameAlreadyStarted, CodeGameAlreadyStarted},
	{game.ErrRoomFull, CodeRoomFull},
	{game.ErrNotHost, CodeNotHost},
	{game.ErrInsufficientPlayers, CodeInsufficientPlayers},
	{game.ErrNotYourTurn, CodeNotYourTurn},
	{game.ErrRoundFrozen, CodeRoundFrozen},
	{game.ErrDeckEmpty, CodeDeckEmpty},
	{game.ErrCardNotHeld, CodeCardNotHeld},
	{game.ErrCardNotActivatable, CodeCardNotActivatable},
}

// ErrorCode maps a game error to its wire code. Unknown errors are
// reported as bad requests.
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeBadRequest
}

// NewError builds the error payload sent to the acting connection
func NewError(err error) Error {
	return Error{Code: ErrorCode(err), Message: err.Error()}
}
