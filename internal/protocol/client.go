package protocol

// Action payloads coming in from the client.

type CreateRoom struct {
	Name string `json:"name"`
}

type JoinRoom struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type SetKingRule struct {
	Rule string `json:"rule"`
}

type ActivateHeldCard struct {
	CardID string `json:"cardId"`
}

type TransferHeldCard struct {
	CardID         string `json:"cardId"`
	TargetPlayerID string `json:"targetPlayerId"`
}

type TriggerCrazyPenalty struct {
	VictimID string `json:"victimId"`
}

type SubmitGuess struct {
	Text string `json:"text"`
}

type Chat struct {
	Text string `json:"text"`
}
