package indicator

import (
	"fmt"
)

// RSI calculates the Relative Strength Index
// RSI = 100 - (100 / (1 + RS))
// where RS = Average Gain / Average Loss over the period.
// The first averages are simple means of the first period changes; after
// that Wilder's smoothing is applied. A window with no losses reads 100.
type RSI struct {
	period    int
	name      string
	prevClose float64
	hasPrev   bool
	seeded    int
	sumGain   float64
	sumLoss   float64
	avgGain   float64
	avgLoss   float64
	ready     bool
	processed int
}

// NewRSI creates a new RSI calculator with the specified period (typically 14)
func NewRSI(period int) (*RSI, error) {
	if period < 1 {
		return nil, invalidParamf("RSI", "period must be at least 1, got %d", period)
	}

	return &RSI{
		period: period,
		name:   fmt.Sprintf("RSI_%d", period),
	}, nil
}

// Name returns the indicator name
func (r *RSI) Name() string {
	return r.name
}

// Update processes a new observation and updates the RSI calculation
func (r *RSI) Update(c Candle) (float64, error) {
	r.processed++

	// First observation only establishes the reference close.
	if !r.hasPrev {
		r.prevClose = c.Close
		r.hasPrev = true
		return 0, ErrNotEnoughData
	}

	change := c.Close - r.prevClose
	r.prevClose = c.Close

	var gain, loss float64
	if change > 0 {
		gain = change
	} else {
		loss = -change
	}

	if !r.ready {
		r.sumGain += gain
		r.sumLoss += loss
		r.seeded++
		if r.seeded < r.period {
			return 0, ErrNotEnoughData
		}
		r.avgGain = r.sumGain / float64(r.period)
		r.avgLoss = r.sumLoss / float64(r.period)
		r.ready = true
		return r.calculateRSI(), nil
	}

	// Wilder's smoothing:
	// New Avg = ((Old Avg * (Period - 1)) + New Value) / Period
	r.avgGain = (r.avgGain*float64(r.period-1) + gain) / float64(r.period)
	r.avgLoss = (r.avgLoss*float64(r.period-1) + loss) / float64(r.period)
	return r.calculateRSI(), nil
}

func (r *RSI) calculateRSI() float64 {
	if r.avgLoss == 0 {
		return 100.0
	}
	rs := r.avgGain / r.avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}

// Value returns the current RSI value
func (r *RSI) Value() (float64, error) {
	if !r.ready {
		return 0, ErrNotEnoughData
	}
	return r.calculateRSI(), nil
}

// Collect adds the RSI value to dst once ready
func (r *RSI) Collect(dst map[string]float64) {
	if v, err := r.Value(); err == nil {
		dst[r.name] = v
	}
}

// Reset clears the RSI state
func (r *RSI) Reset() {
	r.prevClose = 0
	r.hasPrev = false
	r.seeded = 0
	r.sumGain = 0
	r.sumLoss = 0
	r.avgGain = 0
	r.avgLoss = 0
	r.ready = false
	r.processed = 0
}

// IsReady returns true if the RSI has enough data
func (r *RSI) IsReady() bool {
	return r.ready
}

// WindowSize returns the number of observations required (period + 1,
// because the first observation produces no change)
func (r *RSI) WindowSize() int {
	return r.period + 1
}

// BarsProcessed returns the number of observations processed
func (r *RSI) BarsProcessed() int {
	return r.processed
}
