package cli

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/internal/canonical"
)

var hexFingerprint = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestFingerprintCommand(t *testing.T) {
	out, _, err := execute(t, "fingerprint", "testdata/execution.json")
	require.NoError(t, err)

	fp := strings.TrimSpace(out)
	assert.Regexp(t, hexFingerprint, fp)

	yamlOut, _, err := execute(t, "fingerprint", "testdata/execution.yaml")
	require.NoError(t, err)
	assert.Equal(t, fp, strings.TrimSpace(yamlOut))
}

func TestFingerprintCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewFingerprintCommand(newTestOptions("json"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/execution.json"})
	require.NoError(t, cmd.Execute())

	var result FingerprintResult
	decodeData(t, buf.String(), &result)
	assert.Equal(t, "testdata/execution.json", result.File)
	assert.Equal(t, canonical.DomainExecution, result.Domain)
	assert.Regexp(t, hexFingerprint, result.Fingerprint)
}

func TestFingerprintCommandMissingFile(t *testing.T) {
	_, _, err := execute(t, "fingerprint", "testdata/missing.json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
}

func TestCanonicalCommand(t *testing.T) {
	out, _, err := execute(t, "canonical", "testdata/execution.json")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "\n"))

	data := strings.TrimSuffix(out, "\n")
	assert.True(t, json.Valid([]byte(data)))
	assert.True(t, strings.HasPrefix(data, `{"afm":{"attributes":[`))
	assert.NotContains(t, data, " ")

	yamlOut, _, err := execute(t, "canonical", "testdata/execution.yaml")
	require.NoError(t, err)
	assert.Equal(t, out, yamlOut)
}

func TestCanonicalCommandJSONEmbedsDocument(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "canonical", "testdata/execution.json")
	require.NoError(t, err)

	var doc map[string]any
	resp := decodeData(t, out, &doc)
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, doc, "afm")
	assert.Contains(t, doc, "resultSpec")
}
