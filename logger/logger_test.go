package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestInitWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitWriter(&buf, "warn", FormatJSON))
		log.Info().Msg("hidden")
		log.Warn().Str("agent", "pacman").Msg("shown")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "shown", entry["message"])
		require.Equal(t, "pacman", entry["agent"])
		require.Contains(t, entry, "time")
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitWriter(&buf, "DEBUG", ""))
		log.Debug().Msg("hello")
		require.Contains(t, buf.String(), "hello")
	})

	t.Run("invalid", func(t *testing.T) {
		require.Error(t, InitWriter(&bytes.Buffer{}, "loud", FormatJSON))
		require.Error(t, InitWriter(&bytes.Buffer{}, "info", "xml"))
	})
}
