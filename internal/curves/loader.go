package curves

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/efpwealth/platform/internal/analytics"
	"github.com/efpwealth/platform/pkg/logger"
)

// Columns names the CSV columns to extract. An empty Date falls back to the
// first column of the file, which is where the exporter writes the index.
type Columns struct {
	Date      string
	Strategy  string
	Benchmark string
}

// Loader reads the walk-forward equity curve CSV into an aligned pair of
// equity series. The CSV holds one row per trading day with a date index and
// one column per curve; curves covering different ranges leave empty cells,
// which are dropped per column.
type Loader struct {
	logger *logger.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log}
}

// LoadFile reads the CSV at path. See Load.
func (l *Loader) LoadFile(path string, cols Columns) (analytics.Series, analytics.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open equity curves: %w", err)
	}
	defer f.Close()

	return l.Load(f, cols)
}

// Load parses the CSV and returns (strategy, benchmark) series. The
// benchmark is truncated to the strategy's observed date range; rows with
// missing values are discarded per column, with no interpolation. Malformed
// input is rejected with a ValidationError before any analytics run.
func (l *Loader) Load(r io.Reader, cols Columns) (analytics.Series, analytics.Series, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			cols.Strategy:  series.Float,
			cols.Benchmark: series.Float,
		}),
	)
	if df.Err != nil {
		return nil, nil, &analytics.ValidationError{Reason: fmt.Sprintf("read CSV: %v", df.Err)}
	}
	if df.Nrow() == 0 {
		return nil, nil, &analytics.ValidationError{Reason: "equity curve CSV has no rows"}
	}

	names := df.Names()
	dateCol := cols.Date
	if dateCol == "" {
		dateCol = names[0]
	}

	for _, required := range []string{dateCol, cols.Strategy, cols.Benchmark} {
		if !hasColumn(names, required) {
			return nil, nil, &analytics.ValidationError{
				Reason: fmt.Sprintf("missing column %q (have %v)", required, names),
			}
		}
	}

	dates, err := parseDates(df.Col(dateCol).Records())
	if err != nil {
		return nil, nil, err
	}

	strategy, err := buildSeries(dates, df.Col(cols.Strategy).Float())
	if err != nil {
		return nil, nil, fmt.Errorf("column %q: %w", cols.Strategy, err)
	}

	benchmark, err := buildSeries(dates, df.Col(cols.Benchmark).Float())
	if err != nil {
		return nil, nil, fmt.Errorf("column %q: %w", cols.Benchmark, err)
	}

	// Restrict the benchmark to the strategy's window before analysis.
	if strategy.Len() > 0 {
		benchmark = benchmark.Slice(strategy.First().Date, strategy.Last().Date)
	}

	l.logger.WithFields(map[string]interface{}{
		"strategy_points":  strategy.Len(),
		"benchmark_points": benchmark.Len(),
	}).Debug("Equity curves loaded")

	return strategy, benchmark, nil
}

func hasColumn(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func parseDates(records []string) ([]time.Time, error) {
	dates := make([]time.Time, len(records))
	for i, rec := range records {
		d, err := time.Parse("2006-01-02", rec)
		if err != nil {
			return nil, &analytics.ValidationError{
				Reason: fmt.Sprintf("unparseable date %q at row %d", rec, i+1),
			}
		}
		dates[i] = d
	}
	return dates, nil
}

// buildSeries pairs dates with one curve's values, dropping rows where the
// curve has no observation.
func buildSeries(dates []time.Time, values []float64) (analytics.Series, error) {
	points := make([]analytics.Point, 0, len(dates))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		points = append(points, analytics.Point{Date: dates[i], Value: v})
	}
	return analytics.NewEquitySeries(points)
}
