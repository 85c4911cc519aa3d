package analytics

import (
	"time"
)

// Point is a single (date, value) observation.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is an ordered sequence of observations. Derived series (drawdowns,
// resampled curves) reuse the type; only equity series carry the positivity
// invariant, enforced by NewEquitySeries.
type Series []Point

// Frequency selects the calendar bucket used by Resample.
type Frequency int

const (
	Weekly Frequency = iota // weeks ending Sunday
	Monthly
	Annual
)

// NewEquitySeries validates points as an equity curve: strictly increasing
// dates and strictly positive values. Empty and single-point series are
// allowed here; operations that cannot handle them return a DomainError.
func NewEquitySeries(points []Point) (Series, error) {
	for i, p := range points {
		if p.Value <= 0 {
			return nil, newValidationError("non-positive value %v at %s",
				p.Value, p.Date.Format("2006-01-02"))
		}
		if i > 0 && !points[i-1].Date.Before(p.Date) {
			return nil, newValidationError("dates not strictly increasing at %s",
				p.Date.Format("2006-01-02"))
		}
	}
	return Series(points), nil
}

// First returns the first observation. Panics on empty series; callers guard
// with Len.
func (s Series) First() Point { return s[0] }

// Last returns the final observation.
func (s Series) Last() Point { return s[len(s)-1] }

// Len returns the number of observations.
func (s Series) Len() int { return len(s) }

// Values returns the observation values in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Slice returns the observations within [from, to] inclusive. Points outside
// the window are discarded; no interpolation is performed.
func (s Series) Slice(from, to time.Time) Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Returns computes simple period-over-period percentage returns at the
// series' native frequency. A series with fewer than two points yields an
// empty slice.
func (s Series) Returns() []float64 {
	if len(s) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		prev := s[i-1].Value
		if prev == 0 {
			continue
		}
		returns = append(returns, s[i].Value/prev-1)
	}
	return returns
}

// Normalize rescales the series so its first value equals base.
func (s Series) Normalize(base float64) Series {
	if len(s) == 0 || s[0].Value == 0 {
		return s
	}
	scale := base / s[0].Value
	out := make(Series, len(s))
	for i, p := range s {
		out[i] = Point{Date: p.Date, Value: p.Value * scale}
	}
	return out
}

// Resample coarsens the series to the given calendar frequency, keeping the
// last observation in each period and labelling it with the period end
// (Sunday, month end, or Dec 31). Periods without observations produce no
// point.
func (s Series) Resample(freq Frequency) Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		end := periodEnd(p.Date, freq)
		if n := len(out); n > 0 && out[n-1].Date.Equal(end) {
			out[n-1].Value = p.Value
			continue
		}
		out = append(out, Point{Date: end, Value: p.Value})
	}
	return out
}

// periodEnd maps a date to its calendar period end label.
func periodEnd(d time.Time, freq Frequency) time.Time {
	y, m, day := d.Date()
	switch freq {
	case Weekly:
		offset := (7 - int(d.Weekday())) % 7
		return time.Date(y, m, day+offset, 0, 0, 0, 0, time.UTC)
	case Monthly:
		return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
}
