package indicator

import (
	"fmt"
	"math"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// ATR calculates the Average True Range
// TR = max(High-Low, |High-PrevClose|, |Low-PrevClose|)
// The first TR has no previous close and falls back to High-Low.
// The first ATR is the simple average of the first period TRs; after that
// Wilder's smoothing is applied:
// ATR = (Previous ATR * (Period-1) + TR) / Period
type ATR struct {
	period    int
	name      string
	seed      *rolling.Window
	prevClose float64
	hasPrev   bool
	value     float64
	ready     bool
	processed int
}

// NewATR creates a new ATR calculator with the specified period (typically 14)
func NewATR(period int) (*ATR, error) {
	if period < 1 {
		return nil, invalidParamf("ATR", "period must be at least 1, got %d", period)
	}

	return &ATR{
		period: period,
		name:   fmt.Sprintf("ATR_%d", period),
		seed:   rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator name
func (a *ATR) Name() string {
	return a.name
}

// Update processes a new observation and updates the ATR calculation
func (a *ATR) Update(c Candle) (float64, error) {
	a.processed++

	tr := c.High - c.Low
	if a.hasPrev {
		if hc := math.Abs(c.High - a.prevClose); hc > tr {
			tr = hc
		}
		if lc := math.Abs(c.Low - a.prevClose); lc > tr {
			tr = lc
		}
	}
	a.prevClose = c.Close
	a.hasPrev = true

	if !a.ready {
		a.seed.Push(tr)
		if !a.seed.Full() {
			return 0, ErrNotEnoughData
		}
		a.value = a.seed.Mean()
		a.ready = true
		return a.value, nil
	}

	a.value = (a.value*float64(a.period-1) + tr) / float64(a.period)
	return a.value, nil
}

// Value returns the current ATR value
func (a *ATR) Value() (float64, error) {
	if !a.ready {
		return 0, ErrNotEnoughData
	}
	return a.value, nil
}

// Collect adds the ATR value to dst once ready
func (a *ATR) Collect(dst map[string]float64) {
	if v, err := a.Value(); err == nil {
		dst[a.name] = v
	}
}

// Reset clears the ATR state
func (a *ATR) Reset() {
	a.seed.Reset()
	a.prevClose = 0
	a.hasPrev = false
	a.value = 0
	a.ready = false
	a.processed = 0
}

// IsReady returns true if the ATR has enough data
func (a *ATR) IsReady() bool {
	return a.ready
}

// WindowSize returns the period (observations required)
func (a *ATR) WindowSize() int {
	return a.period
}

// BarsProcessed returns the number of observations processed
func (a *ATR) BarsProcessed() int {
	return a.processed
}
