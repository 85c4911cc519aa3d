package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/efpwealth/platform/internal/analytics"
	"github.com/efpwealth/platform/pkg/logger"
)

// LandingFileName is the baked landing page file.
const LandingFileName = "landing.html"

var landingTmpl = template.Must(template.New("landing").Parse(landingTemplate))

// LandingRenderer bakes the public landing page: hero metrics, equity and
// annual-return charts, and the marketing sections, with Chart.js inlined so
// the page is a single self-contained file.
type LandingRenderer struct {
	outputDir string
	logger    *logger.Logger
}

// NewLandingRenderer creates a new LandingRenderer targeting outputDir.
func NewLandingRenderer(outputDir string, log *logger.Logger) *LandingRenderer {
	return &LandingRenderer{outputDir: outputDir, logger: log}
}

type landingData struct {
	Hero        analytics.HeroStats
	ChartData   template.JS
	AnnualData  template.JS
	ChartJS     template.JS
	AdapterJS   template.JS
	GeneratedAt string
}

// Render writes landing.html from the report, inlining the provided Chart.js
// sources, and returns the written path.
func (r *LandingRenderer) Render(report *analytics.Report, chartJS, adapterJS string) (string, error) {
	chartJSON, err := json.Marshal(report.EquityCurve)
	if err != nil {
		return "", fmt.Errorf("marshal chart data: %w", err)
	}
	annualJSON, err := json.Marshal(report.AnnualReturns)
	if err != nil {
		return "", fmt.Errorf("marshal annual data: %w", err)
	}

	data := landingData{
		Hero:        report.Hero,
		ChartData:   template.JS(chartJSON),
		AnnualData:  template.JS(annualJSON),
		ChartJS:     template.JS(chartJS),
		AdapterJS:   template.JS(adapterJS),
		GeneratedAt: report.GeneratedAt,
	}

	var buf bytes.Buffer
	if err := landingTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render landing template: %w", err)
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	outPath := filepath.Join(r.outputDir, LandingFileName)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", LandingFileName, err)
	}

	r.logger.WithFields(map[string]interface{}{
		"path":    outPath,
		"size_kb": buf.Len() / 1024,
	}).Info("Landing page written")

	return outPath, nil
}
