package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONWithServiceField(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug")

	Get().Info().Str("k", "v").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "teampulse-api", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "warn")

	Get().Info().Msg("dropped")
	assert.Empty(t, buf.String())

	Get().Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "loud")

	Get().Debug().Msg("dropped")
	Get().Info().Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithMember(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info")

	l := WithMember("tm-1")
	l.Info().Msg("mood")

	assert.Contains(t, buf.String(), `"member_id":"tm-1"`)
}
