package indicator

import (
	"fmt"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// SMA calculates the Simple Moving Average
// SMA = Sum of closes over period / period
type SMA struct {
	period    int
	name      string
	window    *rolling.Window
	processed int
}

// NewSMA creates a new SMA calculator with the specified period
func NewSMA(period int) (*SMA, error) {
	if period < 1 {
		return nil, invalidParamf("SMA", "period must be at least 1, got %d", period)
	}

	return &SMA{
		period: period,
		name:   fmt.Sprintf("SMA_%d", period),
		window: rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator name
func (s *SMA) Name() string {
	return s.name
}

// Update processes a new observation and updates the SMA calculation
func (s *SMA) Update(c Candle) (float64, error) {
	s.window.Push(c.Close)
	s.processed++

	if !s.window.Full() {
		return 0, ErrNotEnoughData
	}
	return s.window.Mean(), nil
}

// Value returns the current SMA value
func (s *SMA) Value() (float64, error) {
	if !s.window.Full() {
		return 0, ErrNotEnoughData
	}
	return s.window.Mean(), nil
}

// Collect adds the SMA value to dst once the window is full
func (s *SMA) Collect(dst map[string]float64) {
	if v, err := s.Value(); err == nil {
		dst[s.name] = v
	}
}

// Reset clears the SMA state
func (s *SMA) Reset() {
	s.window.Reset()
	s.processed = 0
}

// IsReady returns true if the SMA has enough data
func (s *SMA) IsReady() bool {
	return s.window.Full()
}

// WindowSize returns the period (number of observations required)
func (s *SMA) WindowSize() int {
	return s.period
}

// BarsProcessed returns the number of observations processed
func (s *SMA) BarsProcessed() int {
	return s.processed
}
