package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataWriterWrite(t *testing.T) {
	dir := t.TempDir()
	writer := NewDataWriter(dir, testLogger())

	path, err := writer.Write(testReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, MetricsFileName), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"hero", "benchmark", "equity_curve", "annual_returns",
		"monthly_returns", "drawdown", "generated_at",
	} {
		assert.Contains(t, decoded, key)
	}

	var hero map[string]interface{}
	require.NoError(t, json.Unmarshal(decoded["hero"], &hero))
	assert.Equal(t, 24.8, hero["cagr"])
	assert.Equal(t, float64(65), hero["win_rate"])
}

func TestDataWriterCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	writer := NewDataWriter(dir, testLogger())

	path, err := writer.Write(testReport())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
