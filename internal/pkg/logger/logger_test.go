package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstock/internal/pkg/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []logger.LogEntry {
	t.Helper()
	var entries []logger.LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logger.LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_WritesJSONEntries(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("debug", &buf)

	log.Info("Consumo registrado.", map[string]interface{}{"item_id": 3})
	log.Error("Falha ao registrar consumo.", errors.New("item inexistente"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "Consumo registrado.", entries[0].Message)
	assert.EqualValues(t, 3, entries[0].Fields["item_id"])
	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "item inexistente", entries[1].Error)
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("WARN", &buf)

	log.Debug("debug", nil)
	log.Info("info", nil)
	log.Warn("warn", nil)
	log.Error("error", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "ERROR", entries[1].Level)
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("verbose", &buf)

	log.Debug("debug", nil)
	log.Info("info", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0].Level)
}
