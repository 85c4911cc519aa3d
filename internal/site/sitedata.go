package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/efpwealth/platform/internal/analytics"
	"github.com/efpwealth/platform/pkg/logger"
)

// MetricsFileName is the JSON data file the web templates read.
const MetricsFileName = "site_metrics.json"

// DataWriter persists a performance report as site_metrics.json.
type DataWriter struct {
	outputDir string
	logger    *logger.Logger
}

// NewDataWriter creates a new DataWriter targeting outputDir.
func NewDataWriter(outputDir string, log *logger.Logger) *DataWriter {
	return &DataWriter{outputDir: outputDir, logger: log}
}

// Write marshals the report and writes it to the output directory, returning
// the written path.
func (w *DataWriter) Write(report *analytics.Report) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal site metrics: %w", err)
	}

	outPath := filepath.Join(w.outputDir, MetricsFileName)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", MetricsFileName, err)
	}

	w.logger.WithFields(map[string]interface{}{
		"path":    outPath,
		"size_kb": len(data) / 1024,
	}).Info("Site metrics written")

	return outPath, nil
}
