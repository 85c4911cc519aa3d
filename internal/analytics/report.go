package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/efpwealth/platform/pkg/logger"
)

// Report is the structured record consumed by the site templates. It mirrors
// site_metrics.json: all numbers are rounded once, here at the boundary, to
// their metric-specific precision (percentages 1 dp, monthly returns 2 dp,
// ratios 2 dp).
type Report struct {
	Hero           HeroStats          `json:"hero"`
	Benchmark      BenchmarkStats     `json:"benchmark"`
	EquityCurve    CurvePair          `json:"equity_curve"`
	AnnualReturns  AnnualReturnTable  `json:"annual_returns"`
	MonthlyReturns map[string]float64 `json:"monthly_returns"`
	Drawdown       SeriesData         `json:"drawdown"`
	GeneratedAt    string             `json:"generated_at"`
}

// HeroStats is the headline metric strip.
type HeroStats struct {
	CAGR        float64 `json:"cagr"`     // percent
	MaxDrawdown float64 `json:"max_dd"`   // percent, negative
	Sharpe      float64 `json:"sharpe"`
	Calmar      float64 `json:"calmar"`
	Alpha       float64 `json:"alpha"` // percent
	Beta        float64 `json:"beta"`
	Multiple    float64 `json:"multiple"`
	WinRate     int     `json:"win_rate"` // whole percent
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Years       float64 `json:"years"`
	Trades      int     `json:"trades"`
	Windows     int     `json:"windows"`
}

// BenchmarkStats summarizes the passive benchmark for comparison tables.
type BenchmarkStats struct {
	CAGR        float64 `json:"cagr"`   // percent
	Sharpe      float64 `json:"sharpe"`
	MaxDrawdown float64 `json:"max_dd"` // percent, negative
	Multiple    float64 `json:"multiple"`
}

// SeriesData is a parallel pair of date strings and values.
type SeriesData struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// CurvePair holds the weekly normalized equity curves for strategy and
// benchmark. The wf/nifty keys are part of the template contract.
type CurvePair struct {
	Strategy  SeriesData `json:"wf"`
	Benchmark SeriesData `json:"nifty"`
}

// AnnualReturnTable holds year-by-year returns (percent) for both curves,
// keyed by year string, plus the sorted union of years for chart labels.
type AnnualReturnTable struct {
	Years     []int              `json:"years"`
	Strategy  map[string]float64 `json:"wf"`
	Benchmark map[string]float64 `json:"nifty"`
}

// ReportOptions carries the facts about the external walk-forward run that
// the analytics cannot derive.
type ReportOptions struct {
	TradeCount  int
	WindowCount int
	GeneratedAt time.Time
}

// Analyzer derives a Report from a strategy/benchmark equity series pair.
type Analyzer struct {
	logger *logger.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(log *logger.Logger) *Analyzer {
	return &Analyzer{logger: log}
}

// BuildReport runs the full batch computation: benchmark truncation to the
// strategy window, core metrics, weekly curves, annual/monthly aggregates and
// the drawdown series. Degenerate inputs surface as a DomainError wrapped in
// "insufficient data"; ratio denominators of zero resolve to 0 per metric.
func (a *Analyzer) BuildReport(strategy, benchmark Series, opts ReportOptions) (*Report, error) {
	if strategy.Len() == 0 {
		return nil, fmt.Errorf("insufficient data: %w",
			newDomainError("report", "empty strategy series"))
	}

	start, end := strategy.First().Date, strategy.Last().Date
	bench := benchmark.Slice(start, end)
	if bench.Len() == 0 {
		return nil, fmt.Errorf("insufficient data: %w",
			newDomainError("report", "benchmark has no points in %s..%s",
				start.Format("2006-01-02"), end.Format("2006-01-02")))
	}

	cagr, err := AnnualizedReturn(strategy)
	if err != nil {
		return nil, fmt.Errorf("insufficient data: %w", err)
	}

	years := end.Sub(start).Hours() / 24 / 365.25
	dd := Drawdown(strategy)
	maxDD := MaxDrawdown(strategy)
	sharpe := SharpeRatio(strategy, TradingDaysPerYear)
	calmar := CalmarRatio(cagr, maxDD)
	multiple := strategy.Last().Value / strategy.First().Value

	// Benchmark CAGR over the strategy's period, as published.
	benchTotal := bench.Last().Value/bench.First().Value - 1
	benchCAGR := math.Pow(1+benchTotal, 1/years) - 1
	alpha := Alpha(cagr, benchCAGR)

	stratMonthly := MonthlyReturns(strategy)
	benchMonthly := MonthlyReturns(bench)
	beta := Beta(stratMonthly, benchMonthly)
	winRate := WinRate(stratMonthly, benchMonthly)

	stratAnnual := AnnualReturns(strategy)
	benchAnnual := AnnualReturns(bench)

	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	report := &Report{
		Hero: HeroStats{
			CAGR:        round(cagr*100, 1),
			MaxDrawdown: round(maxDD*100, 1),
			Sharpe:      round(sharpe, 2),
			Calmar:      round(calmar, 2),
			Alpha:       round(alpha*100, 1),
			Beta:        round(beta, 2),
			Multiple:    round(multiple, 1),
			WinRate:     int(math.Round(winRate * 100)),
			PeriodStart: start.Format("Jan 2006"),
			PeriodEnd:   end.Format("Jan 2006"),
			Years:       round(years, 1),
			Trades:      opts.TradeCount,
			Windows:     opts.WindowCount,
		},
		Benchmark: BenchmarkStats{
			CAGR:        round(benchCAGR*100, 1),
			Sharpe:      round(SharpeRatio(bench, TradingDaysPerYear), 2),
			MaxDrawdown: round(MaxDrawdown(bench)*100, 1),
			Multiple:    round(bench.Last().Value/bench.First().Value, 1),
		},
		EquityCurve: CurvePair{
			Strategy:  toSeriesData(strategy.Resample(Weekly).Normalize(100), 1, 1),
			Benchmark: toSeriesData(bench.Resample(Weekly).Normalize(100), 1, 1),
		},
		AnnualReturns:  buildAnnualTable(stratAnnual, benchAnnual),
		MonthlyReturns: roundReturnMap(stratMonthly, 2),
		Drawdown:       toSeriesData(dd.Resample(Weekly), 100, 1),
		GeneratedAt:    generatedAt.Format("2006-01-02 15:04"),
	}

	a.logger.WithFields(map[string]interface{}{
		"period_start": report.Hero.PeriodStart,
		"period_end":   report.Hero.PeriodEnd,
		"cagr":         report.Hero.CAGR,
		"sharpe":       report.Hero.Sharpe,
		"max_dd":       report.Hero.MaxDrawdown,
		"alpha":        report.Hero.Alpha,
	}).Info("Performance report built")

	return report, nil
}

// toSeriesData flattens a series into the dates/values JSON shape, scaling
// and rounding each value.
func toSeriesData(s Series, scale float64, decimals int) SeriesData {
	data := SeriesData{
		Dates:  make([]string, len(s)),
		Values: make([]float64, len(s)),
	}
	for i, p := range s {
		data.Dates[i] = p.Date.Format("2006-01-02")
		data.Values[i] = round(p.Value*scale, decimals)
	}
	return data
}

// buildAnnualTable merges per-year returns into chart-ready form: sorted
// union of years plus percent values rounded to 1 dp.
func buildAnnualTable(strategy, benchmark map[int]float64) AnnualReturnTable {
	yearSet := make(map[int]bool, len(strategy)+len(benchmark))
	for y := range strategy {
		yearSet[y] = true
	}
	for y := range benchmark {
		yearSet[y] = true
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	table := AnnualReturnTable{
		Years:     years,
		Strategy:  make(map[string]float64, len(strategy)),
		Benchmark: make(map[string]float64, len(benchmark)),
	}
	for y, v := range strategy {
		table.Strategy[strconv.Itoa(y)] = round(v*100, 1)
	}
	for y, v := range benchmark {
		table.Benchmark[strconv.Itoa(y)] = round(v*100, 1)
	}
	return table
}

// roundReturnMap converts fractional returns to rounded percents.
func roundReturnMap(returns map[string]float64, decimals int) map[string]float64 {
	out := make(map[string]float64, len(returns))
	for k, v := range returns {
		out[k] = round(v*100, decimals)
	}
	return out
}

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
