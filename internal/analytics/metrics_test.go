package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawdown(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 100},
		{Date: day(2023, 1, 2), Value: 120}, // new peak
		{Date: day(2023, 1, 3), Value: 90},  // -25% from peak
		{Date: day(2023, 1, 4), Value: 120}, // back at peak
		{Date: day(2023, 1, 5), Value: 150}, // new peak
	})

	dd := Drawdown(s)
	require.Equal(t, s.Len(), dd.Len())

	assert.Equal(t, 0.0, dd[0].Value)
	assert.Equal(t, 0.0, dd[1].Value)
	assert.InDelta(t, -0.25, dd[2].Value, 1e-12)
	assert.Equal(t, 0.0, dd[3].Value)
	assert.Equal(t, 0.0, dd[4].Value)

	for _, p := range dd {
		assert.LessOrEqual(t, p.Value, 0.0)
	}
}

func TestMaxDrawdown(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 100},
		{Date: day(2023, 1, 2), Value: 150},
		{Date: day(2023, 1, 3), Value: 75}, // -50%
		{Date: day(2023, 1, 4), Value: 140},
	})

	assert.InDelta(t, -0.50, MaxDrawdown(s), 1e-12)

	// Monotone rising series never draws down.
	rising := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 100},
		{Date: day(2023, 1, 2), Value: 110},
	})
	assert.Equal(t, 0.0, MaxDrawdown(rising))

	assert.Equal(t, 0.0, MaxDrawdown(nil))
}

func TestAnnualizedReturn(t *testing.T) {
	// Doubling over one calendar year annualizes to ~100%.
	s := mustSeries(t, []Point{
		{Date: day(2022, 1, 1), Value: 100},
		{Date: day(2023, 1, 1), Value: 200},
	})

	cagr, err := AnnualizedReturn(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cagr, 0.01)
}

func TestAnnualizedReturnTwoYears(t *testing.T) {
	// +21% over two years is 10% a year.
	s := mustSeries(t, []Point{
		{Date: day(2020, 12, 31), Value: 100},
		{Date: day(2022, 12, 31), Value: 121},
	})

	cagr, err := AnnualizedReturn(s)
	require.NoError(t, err)
	assert.InDelta(t, 0.10, cagr, 0.001)
}

func TestAnnualizedReturnInsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{name: "empty", points: nil},
		{name: "single point", points: []Point{{Date: day(2023, 1, 1), Value: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSeries(t, tt.points)
			_, err := AnnualizedReturn(s)
			require.Error(t, err)

			var dErr *DomainError
			require.ErrorAs(t, err, &dErr)
			assert.Equal(t, "annualized_return", dErr.Metric)
		})
	}
}

func TestSharpeRatio(t *testing.T) {
	// A constant series has zero return variance; the ratio is defined as 0
	// instead of dividing by zero.
	flat := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 100},
		{Date: day(2023, 1, 2), Value: 100},
		{Date: day(2023, 1, 3), Value: 100},
	})
	assert.Equal(t, 0.0, SharpeRatio(flat, TradingDaysPerYear))

	// Too few observations also resolve to 0.
	assert.Equal(t, 0.0, SharpeRatio(nil, TradingDaysPerYear))

	// A steadily rising series has a positive ratio.
	rising := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 100},
		{Date: day(2023, 1, 2), Value: 101},
		{Date: day(2023, 1, 3), Value: 102.5},
		{Date: day(2023, 1, 4), Value: 103},
	})
	assert.Greater(t, SharpeRatio(rising, TradingDaysPerYear), 0.0)
}

func TestCalmarRatio(t *testing.T) {
	assert.InDelta(t, 2.0, CalmarRatio(0.30, -0.15), 1e-12)
	assert.Equal(t, 0.0, CalmarRatio(0.30, 0))
	assert.InDelta(t, -1.0, CalmarRatio(-0.10, -0.10), 1e-12)
}

func TestAlpha(t *testing.T) {
	assert.InDelta(t, 0.05, Alpha(0.15, 0.10), 1e-12)
	assert.InDelta(t, -0.03, Alpha(0.07, 0.10), 1e-12)
}

func TestBeta(t *testing.T) {
	benchmark := map[string]float64{
		"2023-01": 0.02,
		"2023-02": -0.01,
		"2023-03": 0.04,
		"2023-04": -0.03,
	}

	t.Run("identical series", func(t *testing.T) {
		assert.InDelta(t, 1.0, Beta(benchmark, benchmark), 1e-12)
	})

	t.Run("doubled strategy", func(t *testing.T) {
		strategy := make(map[string]float64, len(benchmark))
		for k, v := range benchmark {
			strategy[k] = 2 * v
		}
		assert.InDelta(t, 2.0, Beta(strategy, benchmark), 1e-12)
	})

	t.Run("zero variance benchmark", func(t *testing.T) {
		flat := map[string]float64{"2023-01": 0.01, "2023-02": 0.01}
		strategy := map[string]float64{"2023-01": 0.05, "2023-02": -0.02}
		assert.Equal(t, 0.0, Beta(strategy, flat))
	})

	t.Run("no common months", func(t *testing.T) {
		strategy := map[string]float64{"2020-01": 0.05, "2020-02": 0.02}
		assert.Equal(t, 0.0, Beta(strategy, benchmark))
	})
}

func TestWinRate(t *testing.T) {
	strategy := map[string]float64{
		"2023-01": 0.03,  // win
		"2023-02": -0.01, // loss
		"2023-03": 0.02,  // win
		"2023-04": 0.0,   // flat months do not count as wins
		"2023-05": 0.10,  // no benchmark month, excluded
	}
	benchmark := map[string]float64{
		"2023-01": 0.05, // beating the benchmark is not required
		"2023-02": -0.04,
		"2023-03": 0.01,
		"2023-04": 0.02,
	}

	assert.InDelta(t, 0.5, WinRate(strategy, benchmark), 1e-12)
	assert.Equal(t, 0.0, WinRate(map[string]float64{}, benchmark))
}

func TestMonthlyReturns(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 10), Value: 100},
		{Date: day(2023, 1, 31), Value: 110},
		{Date: day(2023, 2, 15), Value: 99},
		{Date: day(2023, 3, 20), Value: 108.9},
	})

	monthly := MonthlyReturns(s)
	require.Len(t, monthly, 2)

	// The first month has no predecessor.
	_, ok := monthly["2023-01"]
	assert.False(t, ok)

	assert.InDelta(t, -0.10, monthly["2023-02"], 1e-12)
	assert.InDelta(t, 0.10, monthly["2023-03"], 1e-12)
}

func TestAnnualReturns(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2020, 6, 30), Value: 90},
		{Date: day(2020, 12, 31), Value: 100},
		{Date: day(2021, 12, 31), Value: 120},
		{Date: day(2022, 12, 30), Value: 90},
	})

	annual := AnnualReturns(s)
	require.Len(t, annual, 2)

	// 2020 is the base year and carries no return.
	_, ok := annual[2020]
	assert.False(t, ok)

	assert.InDelta(t, 0.20, annual[2021], 1e-12)
	assert.InDelta(t, -0.25, annual[2022], 1e-12)
}

func TestAnnualReturnsEmpty(t *testing.T) {
	assert.Empty(t, AnnualReturns(nil))

	single := mustSeries(t, []Point{{Date: day(2023, 5, 1), Value: 100}})
	assert.Empty(t, AnnualReturns(single))
}

func TestAlignMonthsSorted(t *testing.T) {
	a := map[string]float64{"2023-03": 3, "2023-01": 1, "2023-02": 2}
	b := map[string]float64{"2023-01": 10, "2023-02": 20, "2023-03": 30, "2023-04": 40}

	av, bv := alignMonths(a, b)
	assert.Equal(t, []float64{1, 2, 3}, av)
	assert.Equal(t, []float64{10, 20, 30}, bv)
}
