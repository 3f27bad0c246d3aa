package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "json", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Error().Str("surface", "ordersChart").Msg("error fetching or rendering chart")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "ordersChart", entry["surface"])
	require.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("DEBUG", "console", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("chart rendered")
	require.Contains(t, buf.String(), "chart rendered")
	require.False(t, json.Valid(buf.Bytes()))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "json", &bytes.Buffer{})
	require.ErrorContains(t, err, "invalid log level")
}
