package indicator

import (
	"fmt"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// EMA calculates the Exponential Moving Average
// EMA = (Close - Previous EMA) * Multiplier + Previous EMA
// Multiplier = 2 / (Period + 1)
// The first value is seeded with the SMA of the first period closes.
type EMA struct {
	period     int
	name       string
	multiplier float64
	seed       *rolling.Window
	value      float64
	ready      bool
	processed  int
}

// NewEMA creates a new EMA calculator with the specified period
func NewEMA(period int) (*EMA, error) {
	if period < 1 {
		return nil, invalidParamf("EMA", "period must be at least 1, got %d", period)
	}

	return &EMA{
		period:     period,
		name:       fmt.Sprintf("EMA_%d", period),
		multiplier: 2.0 / float64(period+1),
		seed:       rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator name
func (e *EMA) Name() string {
	return e.name
}

// Update processes a new observation and updates the EMA calculation
func (e *EMA) Update(c Candle) (float64, error) {
	e.processed++
	price := c.Close

	if !e.ready {
		e.seed.Push(price)
		if !e.seed.Full() {
			return 0, ErrNotEnoughData
		}
		e.value = e.seed.Mean()
		e.ready = true
		return e.value, nil
	}

	e.value = (price-e.value)*e.multiplier + e.value
	return e.value, nil
}

// Value returns the current EMA value
func (e *EMA) Value() (float64, error) {
	if !e.ready {
		return 0, ErrNotEnoughData
	}
	return e.value, nil
}

// Collect adds the EMA value to dst once the seed window is full
func (e *EMA) Collect(dst map[string]float64) {
	if v, err := e.Value(); err == nil {
		dst[e.name] = v
	}
}

// Reset clears the EMA state
func (e *EMA) Reset() {
	e.seed.Reset()
	e.value = 0
	e.ready = false
	e.processed = 0
}

// IsReady returns true if the EMA has enough data
func (e *EMA) IsReady() bool {
	return e.ready
}

// WindowSize returns the period (observations required to seed the EMA)
func (e *EMA) WindowSize() int {
	return e.period
}

// BarsProcessed returns the number of observations processed
func (e *EMA) BarsProcessed() int {
	return e.processed
}
