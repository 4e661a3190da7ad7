package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/internal/schema"
)

func TestInspectMessages(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(newTestOptions("json"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/messages.json"})
	require.NoError(t, cmd.Execute())

	var result InspectResult
	resp := decodeData(t, buf.String(), &result)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, result.Messages, 6)

	classes := make([]string, 0, len(result.Messages))
	for _, m := range result.Messages {
		classes = append(classes, m.Class)
		assert.Empty(t, m.Issues)
	}
	assert.Equal(t, []string{
		"kd.event.dashboardLoaded",
		"kd.command.switchToEdit",
		"kd.event.switchedToEdit",
		"kd.command.save",
		"app.event.commandFailed",
		"ad.command.undo",
	}, classes)

	assert.Nil(t, result.Messages[0].Resolves)
	require.NotNil(t, result.Messages[2].Resolves)
	assert.Equal(t, 1, *result.Messages[2].Resolves)
	require.NotNil(t, result.Messages[4].Resolves)
	assert.Equal(t, 3, *result.Messages[4].Resolves)
	assert.Equal(t, 1, result.Pending)
}

func TestInspectMessagesText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(newTestOptions("text"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/messages.json"})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "[0] kd.event.dashboardLoaded\n")
	assert.Contains(t, output, "[2] kd.event.switchedToEdit (c1) -> answers [1]\n")
	assert.Contains(t, output, "[4] app.event.commandFailed (c2) -> answers [3]\n")
	assert.Contains(t, output, "6 message(s), 1 unanswered command(s)")
}

func TestInspectSingleMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"commandType":"adRedo"}`), 0o644))

	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(newTestOptions("text"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "[0] ad.command.redo\n")
	assert.Contains(t, buf.String(), "1 message(s), 0 unanswered command(s)")
}

func TestInspectSchemaIssues(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(newTestOptions("json"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/bad_messages.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var result InspectResult
	resp := decodeData(t, buf.String(), &result)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, schema.ErrSchemaViolation, resp.Error.Code)

	require.Len(t, result.Messages, 2)
	assert.Empty(t, result.Messages[0].Issues)
	assert.Equal(t, "empty", result.Messages[1].Class)
	assert.Equal(t, "none", result.Messages[1].Kind)
	assert.NotEmpty(t, result.Messages[1].Issues)
	assert.Equal(t, 1, result.Pending)
}

func TestInspectUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalars.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2]`), 0o644))

	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(newTestOptions("text"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeDecode)
}
