package protocol

import "encoding/json"

// Actions sent by clients
const (
	ActCreateRoom          = "createRoom"
	ActJoinRoom            = "joinRoom"
	ActStartGame           = "startGame"
	ActGetRoomState        = "getRoomState"
	ActDrawCard            = "drawCard"
	ActSetKingRule         = "setKingRule"
	ActActivateHeldCard    = "activateHeldCard"
	ActTransferHeldCard    = "transferHeldCard"
	ActTriggerCrazyPenalty = "triggerCrazyPenalty"
	ActReshuffle           = "reshuffle"
	ActSubmitStroke        = "submitStroke"
	ActClearSurface        = "clearSurface"
	ActSubmitGuess         = "submitGuess"
	ActChat                = "chat"
)

// Events sent by the server
const (
	EvtRoomCreated      = "roomCreated"
	EvtRoomJoined       = "roomJoined"
	EvtPlayerJoined     = "playerJoined"
	EvtPlayerLeft       = "playerLeft"
	EvtGameStarted      = "gameStarted"
	EvtRoomState        = "roomState"
	EvtCardDrawn        = "cardDrawn"
	EvtDeckEmpty        = "deckEmpty"
	EvtKingRuleSet      = "kingRuleSet"
	EvtCardActivated    = "cardActivated"
	EvtCardTransferred  = "cardTransferred"
	EvtPenaltyTriggered = "penaltyTriggered"
	EvtDeckReshuffled   = "deckReshuffled"
	EvtStroke           = "stroke"
	EvtSurfaceCleared   = "surfaceCleared"
	EvtCorrectGuess     = "correctGuess"
	EvtChatMessage      = "chatMessage"
	EvtTimeUpdate       = "timeUpdate"
	EvtTimeUp           = "timeUp"
	EvtNewRound         = "newRound"
	EvtGameEnded        = "gameEnded"
	EvtError            = "error"
)

// Envelope wraps every message on the wire
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"` // raw payload bytes
}
