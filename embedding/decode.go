package embedding

import (
	"bytes"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrDecodeMessage wraps every decoding failure of this package.
	ErrDecodeMessage = errors.New("decode message")

	// ErrNoPayload is returned by DecodePayload for a message without payload.
	ErrNoPayload = errors.New("message has no payload")
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode decodes one raw message. Unknown fields are ignored.
func Decode(data []byte) (Message, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Message{}, fmt.Errorf("%w: not a JSON object", ErrDecodeMessage)
	}

	var m Message
	if err := codec.Unmarshal(trimmed, &m); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrDecodeMessage, err)
	}
	return m, nil
}

// DecodeAll decodes a JSON array of messages. A single object decodes to a
// one-element slice.
func DecodeAll(data []byte) ([]Message, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		m, err := Decode(trimmed)
		if err != nil {
			return nil, err
		}
		return []Message{m}, nil
	}

	var raws []jsoniter.RawMessage
	if err := codec.Unmarshal(trimmed, &raws); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeMessage, err)
	}

	msgs := make([]Message, 0, len(raws))
	for i, raw := range raws {
		m, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// DecodePayload decodes the payload of m into P.
func DecodePayload[P any](m Message) (P, error) {
	var p P
	if !m.HasPayload() {
		return p, fmt.Errorf("%w: %s: %w", ErrDecodeMessage, m.TypeName(), ErrNoPayload)
	}
	if err := codec.Unmarshal(m.Payload, &p); err != nil {
		return p, fmt.Errorf("%w: %s payload: %w", ErrDecodeMessage, m.TypeName(), err)
	}
	return p, nil
}

// Encode encodes an envelope.
func Encode(e Envelope) ([]byte, error) {
	return codec.Marshal(e)
}

// ToMessage converts a typed envelope to its untyped form.
func ToMessage(e Envelope) (Message, error) {
	if m, ok := e.(Message); ok {
		return m, nil
	}
	data, err := Encode(e)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s: %w", e.TypeName(), err)
	}
	return Decode(data)
}
