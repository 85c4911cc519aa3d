package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efpwealth/platform/internal/analytics"
	"github.com/efpwealth/platform/pkg/config"
	"github.com/efpwealth/platform/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func testReport() *analytics.Report {
	return &analytics.Report{
		Hero: analytics.HeroStats{
			CAGR:        24.8,
			MaxDrawdown: -13.9,
			Sharpe:      1.71,
			Calmar:      1.78,
			Alpha:       12.4,
			Beta:        0.59,
			Multiple:    9.2,
			WinRate:     65,
			PeriodStart: "Jan 2015",
			PeriodEnd:   "Jun 2025",
			Years:       10.5,
			Trades:      2722,
			Windows:     17,
		},
		Benchmark: analytics.BenchmarkStats{CAGR: 12.4, Sharpe: 0.81, MaxDrawdown: -38.4, Multiple: 3.4},
		EquityCurve: analytics.CurvePair{
			Strategy: analytics.SeriesData{
				Dates:  []string{"2015-01-04", "2015-01-11", "2015-01-18"},
				Values: []float64{100, 101.2, 103.5},
			},
			Benchmark: analytics.SeriesData{
				Dates:  []string{"2015-01-04", "2015-01-11", "2015-01-18"},
				Values: []float64{100, 100.4, 101.1},
			},
		},
		AnnualReturns: analytics.AnnualReturnTable{
			Years:     []int{2016, 2017},
			Strategy:  map[string]float64{"2016": 18.2, "2017": 31.5},
			Benchmark: map[string]float64{"2016": 3.0, "2017": 28.6},
		},
		MonthlyReturns: map[string]float64{"2015-02": 1.25},
		Drawdown: analytics.SeriesData{
			Dates:  []string{"2015-01-04", "2015-01-11"},
			Values: []float64{0, -1.3},
		},
		GeneratedAt: "2025-06-30 12:00",
	}
}

func TestLandingRender(t *testing.T) {
	dir := t.TempDir()
	renderer := NewLandingRenderer(dir, testLogger())

	path, err := renderer.Render(testReport(), "window.__chart = 1;", "window.__adapter = 1;")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, LandingFileName), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)

	// Hero metric strip: CAGR, Sharpe, max drawdown, alpha.
	boxes := doc.Find(".metric-strip .metric-box .val")
	require.Equal(t, 4, boxes.Length())
	assert.Equal(t, "24.8%", strings.TrimSpace(boxes.Eq(0).Text()))
	assert.Equal(t, "1.71", strings.TrimSpace(boxes.Eq(1).Text()))
	assert.Equal(t, "-13.9%", strings.TrimSpace(boxes.Eq(2).Text()))
	assert.Equal(t, "+12.4%", strings.TrimSpace(boxes.Eq(3).Text()))

	period := doc.Find(".hero-period").Text()
	assert.Contains(t, period, "Jan 2015 - Jun 2025")
	assert.Contains(t, period, "10.5 years")

	// Stats row below the charts.
	stats := doc.Find(".stats-row .stat-card .val")
	require.Equal(t, 4, stats.Length())
	assert.Equal(t, "9.2x", strings.TrimSpace(stats.Eq(0).Text()))
	assert.Equal(t, "65%", strings.TrimSpace(stats.Eq(3).Text()))

	// Window count appears in the methodology copy.
	assert.Contains(t, doc.Find(".pillars").Text(), "17 non-overlapping")

	assert.Contains(t, doc.Find(".footer-disc").Text(), "Generated 2025-06-30 12:00")
}

func TestLandingRenderEmbedsChartData(t *testing.T) {
	dir := t.TempDir()
	renderer := NewLandingRenderer(dir, testLogger())

	path, err := renderer.Render(testReport(), "", "")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)

	// The inline chart code reads these two JSON blobs back by id; they must
	// round-trip through the template unescaped.
	var curve analytics.CurvePair
	require.NoError(t, json.Unmarshal([]byte(doc.Find("#chartData").Text()), &curve))
	assert.Equal(t, []float64{100, 101.2, 103.5}, curve.Strategy.Values)
	assert.Equal(t, "2015-01-04", curve.Benchmark.Dates[0])

	var annual analytics.AnnualReturnTable
	require.NoError(t, json.Unmarshal([]byte(doc.Find("#annualData").Text()), &annual))
	assert.Equal(t, []int{2016, 2017}, annual.Years)
	assert.Equal(t, 18.2, annual.Strategy["2016"])
}

func TestLandingRenderInlinesScripts(t *testing.T) {
	dir := t.TempDir()
	renderer := NewLandingRenderer(dir, testLogger())

	path, err := renderer.Render(testReport(), "window.__chartBundle = true;", "window.__dateAdapter = true;")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	html := string(raw)
	assert.Contains(t, html, "window.__chartBundle = true;")
	assert.Contains(t, html, "window.__dateAdapter = true;")
	// No external script references; the page is self-contained.
	assert.NotContains(t, html, "src=\"http")
}
