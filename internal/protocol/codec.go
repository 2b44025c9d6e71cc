package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when an action that needs arguments has none
var ErrEmptyPayload = errors.New("empty payload")

// Encode wraps payload into an envelope of type t
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("encoding envelope without a type")
	}
	if payload == nil {
		payload = struct{}{}
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope parses an inbound frame
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, errors.New("decoding empty frame")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, err
	}
	if e.T == "" {
		return Envelope{}, errors.New("envelope has no type")
	}
	return e, nil
}

// DecodePayload unmarshals the payload of env into a T
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 || string(env.P) == "null" {
		return out, fmt.Errorf("%w for %q", ErrEmptyPayload, env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
