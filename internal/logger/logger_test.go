package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"nonsense", zerolog.WarnLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseLevel(c.in), "ParseLevel(%q)", c.in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Format: "json", Component: "validate", Writer: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("file", "a.json").Msg("checked")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"component":"validate"`)
	assert.Contains(t, out, `"file":"a.json"`)
	assert.Contains(t, out, `"message":"checked"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "debug", Format: "console", Writer: &buf})

	log.Debug().Str("k", "v").Msg("console-msg")

	out := buf.String()
	assert.Contains(t, out, "console-msg")
	assert.Contains(t, out, "k=v")
	assert.NotContains(t, out, `"message"`)
}
