package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/embedding"
)

func TestDecode(t *testing.T) {
	msg, err := embedding.Decode([]byte(`  {"commandType":"adSave","correlationId":"c-1","payload":{"title":"My Insight"},"extra":1}`))
	require.NoError(t, err)
	assert.Equal(t, "adSave", msg.CommandType)
	assert.Equal(t, "c-1", msg.CorrelationID)
	assert.True(t, msg.HasPayload())
	assert.JSONEq(t, `{"title":"My Insight"}`, string(msg.Payload))
}

func TestDecode_Errors(t *testing.T) {
	for _, input := range []string{``, `null`, `[]`, `"adSave"`, `{"commandType":`, `{"commandType":1}`} {
		_, err := embedding.Decode([]byte(input))
		assert.ErrorIs(t, err, embedding.ErrDecodeMessage, "input %q", input)
	}
}

func TestDecodeAll(t *testing.T) {
	msgs, err := embedding.DecodeAll([]byte(`[{"commandType":"adUndo"},{"eventType":"adUndoFinished","payload":{"availableCommands":[]}}]`))
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, embedding.KindCommand, msgs[0].Kind())
	assert.Equal(t, embedding.KindEvent, msgs[1].Kind())

	single, err := embedding.DecodeAll([]byte(`{"commandType":"kdSave"}`))
	require.NoError(t, err)
	require.Len(t, single, 1)

	_, err = embedding.DecodeAll([]byte(`[{"commandType":"adUndo"}, 3]`))
	assert.ErrorIs(t, err, embedding.ErrDecodeMessage)
	assert.ErrorContains(t, err, "message 1")
}

func TestDecodePayload(t *testing.T) {
	type savePayload struct {
		Title string `json:"title"`
	}

	msg := embedding.Message{CommandType: "adSave", Payload: []byte(`{"title":"T"}`)}
	p, err := embedding.DecodePayload[savePayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "T", p.Title)

	_, err = embedding.DecodePayload[savePayload](embedding.Message{CommandType: "adUndo"})
	assert.ErrorIs(t, err, embedding.ErrNoPayload)
	assert.ErrorIs(t, err, embedding.ErrDecodeMessage)

	_, err = embedding.DecodePayload[savePayload](embedding.Message{CommandType: "adSave", Payload: []byte(`{"title":7}`)})
	assert.ErrorIs(t, err, embedding.ErrDecodeMessage)
}

func TestCorrelationIDs(t *testing.T) {
	a := embedding.NewCorrelationID()
	b := embedding.NewCorrelationID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)

	gen := embedding.NewFixedGenerator("c-1", "c-2")
	assert.Equal(t, "c-1", gen.Generate())
	assert.Equal(t, "c-2", gen.Generate())

	next := gen.Generate()
	assert.Len(t, next, 36)
	assert.NotContains(t, []string{"c-1", "c-2"}, next)
}
