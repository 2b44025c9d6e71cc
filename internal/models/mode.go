package models

// Mode identifies which game a room hosts
type Mode string

const (
	ModeCards     Mode = "cards"
	ModeDrawGuess Mode = "drawguess"
)

// DrawPhase represents the current state of a drawing game
type DrawPhase string

const (
	PhaseLobby    DrawPhase = "lobby"
	PhaseRound    DrawPhase = "round"
	PhaseRoundEnd DrawPhase = "round_end"
	PhaseGameEnd  DrawPhase = "game_end"
)
