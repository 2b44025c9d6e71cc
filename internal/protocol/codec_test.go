package protocol

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/party-rooms/internal/game"
)

func TestEncode(t *testing.T) {
	b, err := Encode(EvtTimeUpdate, TimeUpdate{TimeLeft: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"timeUpdate","p":{"timeLeft":42}}`, string(b))

	b, err = Encode(EvtSurfaceCleared, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"surfaceCleared","p":{}}`, string(b))

	_, err = Encode("", TimeUpdate{})
	assert.Error(t, err)
}

func TestEncodeRelaysRawStroke(t *testing.T) {
	raw := json.RawMessage(`{"points":[[1,2],[3,4]],"color":"#000"}`)
	b, err := Encode(EvtStroke, raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"stroke","p":{"points":[[1,2],[3,4]],"color":"#000"}}`, string(b))
}

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"t":"joinRoom","p":{"code":"abcdef","name":"Ann"}}`))
	require.NoError(t, err)
	assert.Equal(t, ActJoinRoom, env.T)

	req, err := DecodePayload[JoinRoom](env)
	require.NoError(t, err)
	assert.Equal(t, JoinRoom{Code: "abcdef", Name: "Ann"}, req)

	env, err = DecodeEnvelope([]byte(`{"t":"startGame"}`))
	require.NoError(t, err)
	_, err = DecodePayload[JoinRoom](env)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	for _, frame := range []string{``, `not json`, `{"p":{}}`} {
		_, err := DecodeEnvelope([]byte(frame))
		assert.Error(t, err, frame)
	}
}

func TestDecodePayloadTypeMismatch(t *testing.T) {
	env := Envelope{T: ActSubmitGuess, P: json.RawMessage(`{"text":42}`)}
	_, err := DecodePayload[SubmitGuess](env)
	assert.Error(t, err)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
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
		{fmt.Errorf("wrapped: %w", game.ErrNotHost), CodeNotHost},
		{fmt.Errorf("garbage"), CodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}

	payload := NewError(game.ErrRoomFull)
	assert.Equal(t, Error{Code: CodeRoomFull, Message: "room is full"}, payload)
}
