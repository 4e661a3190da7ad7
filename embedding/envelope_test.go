package embedding_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/embedding"
)

type testCommand string
type testEvent string
type testError string

func TestIsCommandFailed_AnyErrorEnum(t *testing.T) {
	msg, err := embedding.Decode([]byte(
		`{"eventType":"appCommandFailed","payload":{"errorCode":"adError:invalidState","errorMessage":"no dashboard"}}`))
	require.NoError(t, err)
	assert.True(t, embedding.IsCommandFailed(msg))

	type otherError string
	payload, err := embedding.DecodePayload[embedding.CommandFailedPayload[otherError]](msg)
	require.NoError(t, err)
	assert.Equal(t, otherError("adError:invalidState"), payload.ErrorCode)
	assert.Equal(t, "no dashboard", payload.ErrorMessage)

	typed := embedding.NewCommandFailed(testError("kdError:runtime"), "boom", "c-9")
	assert.True(t, embedding.IsCommandFailed(typed))
	assert.Equal(t, "c-9", typed.Correlation())
}

func TestNewCommandFailed_WireShape(t *testing.T) {
	out, err := json.Marshal(embedding.NewCommandFailed(testError("adError:invalidArgument"), "bad title", ""))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"eventType":"appCommandFailed","payload":{"errorCode":"adError:invalidArgument","errorMessage":"bad title"}}`,
		string(out))
}

func TestIsCommand_IsEvent(t *testing.T) {
	tests := []struct {
		name    string
		env     embedding.Envelope
		command bool
		event   bool
	}{
		{"nil", nil, false, false},
		{"nil message pointer", (*embedding.Message)(nil), false, false},
		{"empty message", embedding.Message{}, false, false},
		{"command message", embedding.Message{CommandType: "x"}, true, false},
		{"event message", embedding.Message{EventType: "x"}, false, true},
		{"typed command", embedding.NewCommand(testCommand("x"), ""), true, false},
		{"typed command pointer", &embedding.Command[testCommand]{CommandType: "x"}, true, false},
		{"typed empty command", embedding.Command[testCommand]{}, false, false},
		{"typed event", embedding.NewEventWithPayload(testEvent("x"), 1, ""), false, true},
		{"typed empty event", embedding.Event[testEvent]{CorrelationID: "c"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.command, embedding.IsCommand(tt.env, "x"))
			assert.Equal(t, tt.event, embedding.IsEvent(tt.env, "x"))
			assert.False(t, embedding.IsCommand(tt.env, "y"))
			assert.False(t, embedding.IsEvent(tt.env, "y"))
			assert.False(t, embedding.IsCommandFailed(tt.env))
		})
	}
}

func TestMessage_Kind(t *testing.T) {
	assert.Equal(t, embedding.KindNone, embedding.Message{}.Kind())
	assert.Equal(t, embedding.KindCommand, embedding.Message{CommandType: "a", EventType: "b"}.Kind())
	assert.Equal(t, "a", embedding.Message{CommandType: "a", EventType: "b"}.TypeName())
	assert.Equal(t, embedding.KindEvent, embedding.Message{EventType: "b"}.Kind())
	assert.Equal(t, "event", embedding.KindEvent.String())
	assert.Equal(t, "none", embedding.KindNone.String())
}

func TestTypedEnvelopes_WireShape(t *testing.T) {
	tests := []struct {
		name string
		env  embedding.Envelope
		want string
	}{
		{"command without correlation", embedding.NewCommand(testCommand("adUndo"), ""),
			`{"commandType":"adUndo"}`},
		{"command with correlation", embedding.NewCommand(testCommand("adUndo"), "c-1"),
			`{"commandType":"adUndo","correlationId":"c-1"}`},
		{"command with payload", embedding.NewCommandWithPayload(testCommand("adSave"), map[string]string{"title": "T"}, ""),
			`{"commandType":"adSave","payload":{"title":"T"}}`},
		{"event", embedding.NewEvent(testEvent("kdSwitchedToView"), "c-2"),
			`{"eventType":"kdSwitchedToView","correlationId":"c-2"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := embedding.Encode(tt.env)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))

			msg, err := embedding.ToMessage(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.env.Kind(), msg.Kind())
			assert.Equal(t, tt.env.TypeName(), msg.TypeName())
			assert.Equal(t, tt.env.Correlation(), msg.Correlation())
		})
	}
}
