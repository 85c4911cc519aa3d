package site

import (
	"fmt"
	"os"
	"path/filepath"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/efpwealth/platform/internal/analytics"
	"github.com/efpwealth/platform/pkg/logger"
)

// PreviewFileName is the static PNG used for link previews and emails,
// rendered from the same weekly curves the landing page charts.
const PreviewFileName = "equity_preview.png"

// ChartRenderer renders a static PNG of the weekly normalized equity curves.
type ChartRenderer struct {
	outputDir string
	logger    *logger.Logger
}

// NewChartRenderer creates a new ChartRenderer targeting outputDir.
func NewChartRenderer(outputDir string, log *logger.Logger) *ChartRenderer {
	return &ChartRenderer{outputDir: outputDir, logger: log}
}

// Render writes equity_preview.png and returns the written path.
func (r *ChartRenderer) Render(report *analytics.Report) (string, error) {
	strategy := report.EquityCurve.Strategy
	benchmark := report.EquityCurve.Benchmark
	if len(strategy.Values) < 2 {
		return "", fmt.Errorf("not enough points for preview chart: %d", len(strategy.Values))
	}

	// The benchmark can be a week short at either edge; clip both curves to
	// a common length so the x axis labels stay aligned.
	n := len(strategy.Values)
	if len(benchmark.Values) < n {
		n = len(benchmark.Values)
	}

	painter, err := charts.LineRender(
		[][]float64{strategy.Values[:n], benchmark.Values[:n]},
		charts.TitleTextOptionFunc(fmt.Sprintf("EFP Wealth vs NIFTY 50 (growth of 100, %s - %s)",
			report.Hero.PeriodStart, report.Hero.PeriodEnd)),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        strategy.Dates[:n],
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 8,
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{"EFP Wealth", "NIFTY 50"},
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return "", fmt.Errorf("render preview chart: %w", err)
	}

	img, err := painter.Bytes()
	if err != nil {
		return "", fmt.Errorf("encode preview chart: %w", err)
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	outPath := filepath.Join(r.outputDir, PreviewFileName)
	if err := os.WriteFile(outPath, img, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", PreviewFileName, err)
	}

	r.logger.WithFields(map[string]interface{}{
		"path":    outPath,
		"size_kb": len(img) / 1024,
	}).Info("Preview chart written")

	return outPath, nil
}
