package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLogFileDataCollector(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "analytics.log")
	c, err := NewDataCollector(DataCollectorConfig{FileName: fileName, CollectorType: LOG_FILE_DATA_COLLECTOR})
	require.NoError(t, err)

	sel := model.NewSelection()
	sel.SetMode(model.MODE_DIGITAL)
	c.RecordChoice("fobi", "s-1", "mode", "digital", sel)
	c.RecordQuote("fobi", "s-1", &model.Quote{Currency: "EUR", Total: decimal.NewFromInt(350)})
	require.NoError(t, c.(*LogFileDataCollector).Sync())

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var choice map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &choice))
	require.Equal(t, "choice", choice["msg"])
	require.Equal(t, "mode", choice["step"])
	require.Equal(t, "digital", choice["selection"].(map[string]any)["mode"])

	var quote map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &quote))
	require.Equal(t, "350.00", quote["total"])
}

func TestNewDataCollector(t *testing.T) {
	c, err := NewDataCollector(DataCollectorConfig{})
	require.NoError(t, err)
	require.Equal(t, Noop, c)

	_, err = NewDataCollector(DataCollectorConfig{CollectorType: "ELASTIC"})
	require.Error(t, err)
}
