package contracts

import "time"

// MinAnalyzableBars is the minimum series length required before any
// indicator can be computed for a ticker.
const MinAnalyzableBars = 20

// Bar represents one daily OHLCV bar.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// TimeSeries is an ordered daily price history for one ticker.
// Bars are sorted chronologically ascending with no duplicate dates.
type TimeSeries struct {
	Ticker string `json:"ticker"`
	Bars   []Bar  `json:"bars"`
}

// Len returns the number of bars in the series.
func (s *TimeSeries) Len() int {
	return len(s.Bars)
}

// Analyzable reports whether the series is long enough to analyze.
func (s *TimeSeries) Analyzable() bool {
	return len(s.Bars) >= MinAnalyzableBars
}

// Closes returns the closing prices in chronological order.
func (s *TimeSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes returns the volumes in chronological order.
func (s *TimeSeries) Volumes() []int64 {
	volumes := make([]int64, len(s.Bars))
	for i, b := range s.Bars {
		volumes[i] = b.Volume
	}
	return volumes
}

// Last returns the most recent bar. The second return is false for an
// empty series.
func (s *TimeSeries) Last() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}
