package analytics

import (
	"math"
	"sort"
)

// TradingDaysPerYear is the annualization factor for daily return series.
const TradingDaysPerYear = 252

const monthKeyFormat = "2006-01"

// Drawdown derives the running-peak drawdown series from an equity series.
// Every value is <= 0, and exactly 0 at each new running maximum. Inputs are
// expected to be positive; NewEquitySeries rejects anything else.
func Drawdown(s Series) Series {
	out := make(Series, len(s))
	peak := 0.0
	for i, p := range s {
		if p.Value > peak {
			peak = p.Value
		}
		dd := 0.0
		if peak > 0 {
			dd = (p.Value - peak) / peak
		}
		out[i] = Point{Date: p.Date, Value: dd}
	}
	return out
}

// MaxDrawdown returns the deepest (most negative) drawdown of an equity
// series, or 0 for an empty series.
func MaxDrawdown(s Series) float64 {
	maxDD := 0.0
	for _, p := range Drawdown(s) {
		if p.Value < maxDD {
			maxDD = p.Value
		}
	}
	return maxDD
}

// AnnualizedReturn computes the CAGR over the series' observed period:
// (1 + total_return)^(1/years) - 1 with years measured in days/365.25.
// Returns a DomainError when the period has zero length or the series is
// degenerate, since no annualized figure exists.
func AnnualizedReturn(s Series) (float64, error) {
	if len(s) < 2 {
		return 0, newDomainError("annualized_return", "need at least two observations, got %d", len(s))
	}

	first, last := s.First(), s.Last()
	years := last.Date.Sub(first.Date).Hours() / 24 / 365.25
	if years <= 0 {
		return 0, newDomainError("annualized_return", "zero-length period %s to %s",
			first.Date.Format("2006-01-02"), last.Date.Format("2006-01-02"))
	}
	if first.Value <= 0 {
		return 0, newDomainError("annualized_return", "non-positive initial value %v", first.Value)
	}

	totalReturn := last.Value/first.Value - 1
	return math.Pow(1+totalReturn, 1/years) - 1, nil
}

// SharpeRatio computes mean/stdev of the series' simple period returns,
// annualized by sqrt(periodsPerYear). A constant series (zero variance)
// yields 0 rather than an error.
func SharpeRatio(s Series, periodsPerYear int) float64 {
	returns := s.Returns()
	if len(returns) < 2 {
		return 0
	}

	m := mean(returns)
	sd := sampleStdev(returns, m)
	if sd == 0 {
		return 0
	}

	return m / sd * math.Sqrt(float64(periodsPerYear))
}

// CalmarRatio is CAGR over the absolute max drawdown; 0 when the drawdown
// is 0.
func CalmarRatio(cagr, maxDrawdown float64) float64 {
	if maxDrawdown == 0 {
		return 0
	}
	return cagr / math.Abs(maxDrawdown)
}

// Alpha is the plain CAGR difference between strategy and benchmark. This is
// deliberately not a beta-adjusted (Jensen's) alpha, matching the published
// figure.
func Alpha(strategyCAGR, benchmarkCAGR float64) float64 {
	return strategyCAGR - benchmarkCAGR
}

// Beta regresses strategy monthly returns on benchmark monthly returns over
// the months present in both maps: cov(s,b)/var(b). A benchmark with zero
// variance yields 0.
func Beta(strategyMonthly, benchmarkMonthly map[string]float64) float64 {
	s, b := alignMonths(strategyMonthly, benchmarkMonthly)
	if len(s) < 2 {
		return 0
	}

	meanS, meanB := mean(s), mean(b)
	var cov, varB float64
	for i := range s {
		cov += (s[i] - meanS) * (b[i] - meanB)
		varB += (b[i] - meanB) * (b[i] - meanB)
	}
	if varB == 0 {
		return 0
	}
	return cov / varB
}

// WinRate is the fraction of months, restricted to months shared with the
// benchmark, where the strategy's monthly return is strictly positive. The
// benchmark only restricts the month set; the test is against zero, not
// relative outperformance.
func WinRate(strategyMonthly, benchmarkMonthly map[string]float64) float64 {
	s, _ := alignMonths(strategyMonthly, benchmarkMonthly)
	if len(s) == 0 {
		return 0
	}

	wins := 0
	for _, r := range s {
		if r > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(s))
}

// MonthlyReturns resamples to calendar months (last observation) and returns
// the month-over-month percent changes keyed by "YYYY-MM". The first month
// has no predecessor and is absent.
func MonthlyReturns(s Series) map[string]float64 {
	monthly := s.Resample(Monthly)
	out := make(map[string]float64, len(monthly))
	for i := 1; i < len(monthly); i++ {
		prev := monthly[i-1].Value
		if prev == 0 {
			continue
		}
		out[monthly[i].Date.Format(monthKeyFormat)] = monthly[i].Value/prev - 1
	}
	return out
}

// AnnualReturns resamples to year ends and returns the year-over-year percent
// changes keyed by year. The first year is intentionally absent: there is no
// prior year end to diff against.
func AnnualReturns(s Series) map[int]float64 {
	annual := s.Resample(Annual)
	out := make(map[int]float64, len(annual))
	for i := 1; i < len(annual); i++ {
		prev := annual[i-1].Value
		if prev == 0 {
			continue
		}
		out[annual[i].Date.Year()] = annual[i].Value/prev - 1
	}
	return out
}

// alignMonths returns the two return vectors over the sorted intersection of
// month keys.
func alignMonths(a, b map[string]float64) ([]float64, []float64) {
	keys := make([]string, 0, len(a))
	for k := range a {
		if _, ok := b[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	av := make([]float64, len(keys))
	bv := make([]float64, len(keys))
	for i, k := range keys {
		av[i] = a[k]
		bv[i] = b[k]
	}
	return av, bv
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleStdev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}
