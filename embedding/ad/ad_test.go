package ad_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/embedding"
	"github.com/roach88/afmkit/embedding/ad"
)

func TestSaveInsight(t *testing.T) {
	cmd := ad.SaveInsight("My Insight", "corr-1")

	out, err := json.Marshal(cmd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"commandType":"adSave","correlationId":"corr-1","payload":{"title":"My Insight"}}`, string(out))
	assert.True(t, ad.IsSaveCommand(cmd))
	assert.False(t, ad.IsSaveAsCommand(cmd))

	msg, err := embedding.Decode(out)
	require.NoError(t, err)
	assert.True(t, ad.IsSaveCommand(msg))
}

func TestCommandFactories(t *testing.T) {
	mergeHeaders := true
	tests := []struct {
		name    string
		cmd     embedding.Envelope
		literal ad.CommandType
		is      func(embedding.Envelope) bool
		want    string
	}{
		{"save", ad.SaveInsight("T", ""), ad.CommandSave, ad.IsSaveCommand,
			`{"commandType":"adSave","payload":{"title":"T"}}`},
		{"save as", ad.SaveAsInsight("T2", "c"), ad.CommandSaveAs, ad.IsSaveAsCommand,
			`{"commandType":"adSaveAs","correlationId":"c","payload":{"title":"T2"}}`},
		{"export", ad.ExportInsight(ad.ExportConfig{Format: ad.ExportXLSX, MergeHeaders: &mergeHeaders}, ""), ad.CommandExport, ad.IsExportCommand,
			`{"commandType":"adExport","payload":{"config":{"format":"xlsx","mergeHeaders":true}}}`},
		{"export defaults", ad.ExportInsight(ad.ExportConfig{}, ""), ad.CommandExport, ad.IsExportCommand,
			`{"commandType":"adExport","payload":{"config":{}}}`},
		{"undo", ad.Undo(""), ad.CommandUndo, ad.IsUndoCommand, `{"commandType":"adUndo"}`},
		{"redo", ad.Redo("c"), ad.CommandRedo, ad.IsRedoCommand, `{"commandType":"adRedo","correlationId":"c"}`},
	}
	preds := []func(embedding.Envelope) bool{
		ad.IsSaveCommand, ad.IsSaveAsCommand, ad.IsExportCommand, ad.IsUndoCommand, ad.IsRedoCommand,
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.literal), tt.cmd.TypeName())
			assert.Equal(t, embedding.KindCommand, tt.cmd.Kind())
			assert.True(t, tt.is(tt.cmd))

			matches := 0
			for _, p := range preds {
				if p(tt.cmd) {
					matches++
				}
			}
			assert.Equal(t, 1, matches)

			out, err := json.Marshal(tt.cmd)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestEventFactories(t *testing.T) {
	insight := embedding.ObjectMeta{Identifier: "aaQ1", URI: "/gdc/md/p1/obj/5", Title: "Revenue"}
	next := []ad.CommandType{ad.CommandSave, ad.CommandUndo}

	tests := []struct {
		name    string
		evt     embedding.Envelope
		literal ad.EventType
		is      func(embedding.Envelope) bool
	}{
		{"new insight", ad.NewInsightInitialized(next, ""), ad.EventNewInsightInitialized, ad.IsNewInsightInitializedEvent},
		{"opened", ad.InsightOpened(insight, next, ""), ad.EventInsightOpened, ad.IsInsightOpenedEvent},
		{"saved", ad.InsightSaved(insight, next, "c-1"), ad.EventInsightSaved, ad.IsInsightSavedEvent},
		{"undo", ad.UndoFinished(nil, ""), ad.EventUndoFinished, ad.IsUndoFinishedEvent},
		{"redo", ad.RedoFinished(next, ""), ad.EventRedoFinished, ad.IsRedoFinishedEvent},
		{"export", ad.ExportFinished("/gdc/exporter/result/1", next, ""), ad.EventExportFinished, ad.IsExportFinishedEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.literal), tt.evt.TypeName())
			assert.True(t, tt.is(tt.evt))
			assert.False(t, ad.IsSaveCommand(tt.evt))
			assert.False(t, embedding.IsCommandFailed(tt.evt))

			msg, err := embedding.ToMessage(tt.evt)
			require.NoError(t, err)
			assert.True(t, tt.is(msg))

			payload, err := embedding.DecodePayload[ad.AvailableCommandsPayload](msg)
			require.NoError(t, err)
			assert.NotNil(t, payload.AvailableCommands)
		})
	}
}

func TestInsightSaved_WireShape(t *testing.T) {
	evt := ad.InsightSaved(embedding.ObjectMeta{Identifier: "aaQ1", URI: "/gdc/md/p1/obj/5", Title: "Revenue"},
		[]ad.CommandType{ad.CommandSave}, "corr-1")

	out, err := json.Marshal(evt)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"eventType": "adInsightSaved",
		"correlationId": "corr-1",
		"payload": {
			"insight": {"identifier": "aaQ1", "uri": "/gdc/md/p1/obj/5", "title": "Revenue"},
			"availableCommands": ["adSave"]
		}
	}`, string(out))
}

func TestCommandFailed(t *testing.T) {
	evt := ad.NewCommandFailed(ad.ErrorInvalidState, "insight is empty", "corr-1")
	assert.True(t, embedding.IsCommandFailed(evt))
	assert.Equal(t, ad.ErrorInvalidState, evt.Payload.ErrorCode)

	_, ok := ad.Classify(evt)
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		env  embedding.Envelope
		want string
	}{
		{ad.SaveInsight("T", ""), "ad.command.save"},
		{ad.SaveAsInsight("T", ""), "ad.command.saveAs"},
		{ad.ExportInsight(ad.ExportConfig{}, ""), "ad.command.export"},
		{ad.Undo(""), "ad.command.undo"},
		{ad.Redo(""), "ad.command.redo"},
		{ad.NewInsightInitialized(nil, ""), "ad.event.newInsightInitialized"},
		{ad.InsightOpened(embedding.ObjectMeta{}, nil, ""), "ad.event.insightOpened"},
		{ad.InsightSaved(embedding.ObjectMeta{}, nil, ""), "ad.event.insightSaved"},
		{ad.UndoFinished(nil, ""), "ad.event.undoFinished"},
		{ad.RedoFinished(nil, ""), "ad.event.redoFinished"},
		{ad.ExportFinished("", nil, ""), "ad.event.exportFinished"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := ad.Classify(tt.env)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, env := range []embedding.Envelope{
		nil,
		embedding.Message{},
		embedding.Message{CommandType: "kdSave"},
		embedding.Message{EventType: "adSave"},
		embedding.Message{CommandType: "adInsightSaved"},
	} {
		_, ok := ad.Classify(env)
		assert.False(t, ok, "%#v", env)
	}
}
