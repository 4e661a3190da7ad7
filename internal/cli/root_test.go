package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/internal/config"
)

// execute runs afmctl with args and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand(config.Default())
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeData unmarshals the data of a JSON CLIResponse into v.
func decodeData(t *testing.T, output string, v any) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
	return resp
}

func newTestOptions(format string) *RootOptions {
	return &RootOptions{Format: format, Config: config.Default(), Log: zerolog.Nop()}
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(nil)
	require.NotNil(t, cmd)
	assert.Equal(t, "afmctl", cmd.Use)
	assert.Contains(t, cmd.Long, "Analytical Designer")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil)
	commands := []string{"validate", "fingerprint", "canonical", "inspect", "command", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(nil)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestConfigSeedsFormatDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "json"
	cmd := NewRootCommand(cfg)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "json", formatFlag.DefValue)
}

func TestCommandCommandSubcommands(t *testing.T) {
	cmd := NewRootCommand(nil)

	adCmd, _, err := cmd.Find([]string{"command", "ad"})
	require.NoError(t, err)
	assert.NotNil(t, adCmd.Flags().Lookup("export-format"))
	assert.Equal(t, "true", adCmd.Flags().Lookup("merge-headers").DefValue)
	assert.Nil(t, adCmd.Flags().Lookup("identifier"))

	kdCmd, _, err := cmd.Find([]string{"command", "kd"})
	require.NoError(t, err)
	assert.NotNil(t, kdCmd.Flags().Lookup("identifier"))
	assert.NotNil(t, kdCmd.Flags().Lookup("uri"))
	assert.Nil(t, kdCmd.Flags().Lookup("export-format"))
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand(nil)
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	assert.NotNil(t, testCmd.Flags().Lookup("update"))
	assert.NotNil(t, testCmd.Flags().Lookup("filter"))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "fingerprint", "testdata/execution.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "-v", "fingerprint", "testdata/execution.json")
	require.NoError(t, err)
	assert.NotContains(t, out, "fingerprinted execution")
	assert.Contains(t, errOut, "fingerprinted execution")
	assert.Contains(t, errOut, "component=fingerprint")
}
