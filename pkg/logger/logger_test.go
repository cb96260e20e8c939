package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestWithRun(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithRun(NewWithWriter(buf))

	log.Info().Msg("hello")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.NotEmpty(t, entry["run_id"])
}

func TestNewLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("debug", true).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("", false).GetLevel())
}
