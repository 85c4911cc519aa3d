package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustSeries(t *testing.T, points []Point) Series {
	t.Helper()
	s, err := NewEquitySeries(points)
	require.NoError(t, err)
	return s
}

func TestNewEquitySeries(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		wantErr string
	}{
		{
			name: "valid ascending",
			points: []Point{
				{Date: day(2023, 1, 2), Value: 100},
				{Date: day(2023, 1, 3), Value: 101.5},
			},
		},
		{
			name:   "empty allowed",
			points: nil,
		},
		{
			name: "single point allowed",
			points: []Point{
				{Date: day(2023, 1, 2), Value: 100},
			},
		},
		{
			name: "zero value rejected",
			points: []Point{
				{Date: day(2023, 1, 2), Value: 0},
			},
			wantErr: "non-positive value",
		},
		{
			name: "negative value rejected",
			points: []Point{
				{Date: day(2023, 1, 2), Value: -5},
			},
			wantErr: "non-positive value",
		},
		{
			name: "duplicate date rejected",
			points: []Point{
				{Date: day(2023, 1, 2), Value: 100},
				{Date: day(2023, 1, 2), Value: 101},
			},
			wantErr: "strictly increasing",
		},
		{
			name: "out of order rejected",
			points: []Point{
				{Date: day(2023, 1, 3), Value: 100},
				{Date: day(2023, 1, 2), Value: 101},
			},
			wantErr: "strictly increasing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewEquitySeries(tt.points)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.points), s.Len())
		})
	}
}

func TestSeriesSlice(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 100},
		{Date: day(2023, 2, 1), Value: 110},
		{Date: day(2023, 3, 1), Value: 120},
		{Date: day(2023, 4, 1), Value: 130},
	})

	got := s.Slice(day(2023, 2, 1), day(2023, 3, 1))
	require.Equal(t, 2, got.Len())
	assert.Equal(t, 110.0, got.First().Value)
	assert.Equal(t, 120.0, got.Last().Value)

	// Window outside the series yields an empty slice, not an error.
	assert.Equal(t, 0, s.Slice(day(2024, 1, 1), day(2024, 12, 31)).Len())
}

func TestSeriesReturns(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 100},
		{Date: day(2023, 1, 2), Value: 110},
		{Date: day(2023, 1, 3), Value: 99},
	})

	returns := s.Returns()
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-12)
	assert.InDelta(t, -0.10, returns[1], 1e-12)

	assert.Nil(t, Series(nil).Returns())
	assert.Nil(t, mustSeries(t, []Point{{Date: day(2023, 1, 1), Value: 100}}).Returns())
}

func TestSeriesNormalize(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 1), Value: 250},
		{Date: day(2023, 1, 2), Value: 500},
	})

	norm := s.Normalize(100)
	assert.Equal(t, 100.0, norm.First().Value)
	assert.Equal(t, 200.0, norm.Last().Value)

	// Original is untouched.
	assert.Equal(t, 250.0, s.First().Value)
}

func TestSeriesResampleWeekly(t *testing.T) {
	// Wed Jan 4 and Fri Jan 6 share a week ending Sun Jan 8; Mon Jan 9
	// starts the next week.
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 4), Value: 100},
		{Date: day(2023, 1, 6), Value: 105},
		{Date: day(2023, 1, 9), Value: 110},
	})

	weekly := s.Resample(Weekly)
	require.Equal(t, 2, weekly.Len())
	assert.Equal(t, day(2023, 1, 8), weekly[0].Date)
	assert.Equal(t, 105.0, weekly[0].Value) // last observation wins
	assert.Equal(t, day(2023, 1, 15), weekly[1].Date)
	assert.Equal(t, 110.0, weekly[1].Value)
}

func TestSeriesResampleWeeklySundayMapsToItself(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 8), Value: 100}, // a Sunday
	})

	weekly := s.Resample(Weekly)
	require.Equal(t, 1, weekly.Len())
	assert.Equal(t, day(2023, 1, 8), weekly[0].Date)
}

func TestSeriesResampleMonthly(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2023, 1, 5), Value: 100},
		{Date: day(2023, 1, 25), Value: 102},
		{Date: day(2023, 2, 10), Value: 98},
	})

	monthly := s.Resample(Monthly)
	require.Equal(t, 2, monthly.Len())
	assert.Equal(t, day(2023, 1, 31), monthly[0].Date)
	assert.Equal(t, 102.0, monthly[0].Value)
	assert.Equal(t, day(2023, 2, 28), monthly[1].Date)
	assert.Equal(t, 98.0, monthly[1].Value)
}

func TestSeriesResampleAnnualThenNormalize(t *testing.T) {
	s := mustSeries(t, []Point{
		{Date: day(2021, 3, 1), Value: 80},
		{Date: day(2021, 11, 30), Value: 90},
		{Date: day(2022, 6, 15), Value: 120},
	})

	annual := s.Resample(Annual).Normalize(100)
	require.Equal(t, 2, annual.Len())
	assert.Equal(t, day(2021, 12, 31), annual[0].Date)
	assert.Equal(t, 100.0, annual[0].Value)
	assert.Equal(t, day(2022, 12, 31), annual[1].Date)
	assert.InDelta(t, 100.0*120/90, annual[1].Value, 1e-9)
}
