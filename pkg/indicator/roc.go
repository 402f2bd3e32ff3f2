package indicator

import (
	"fmt"
	"math"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// ROC calculates the Rate of Change: the percentage move of the close
// against the close period observations earlier.
//
//	ROC = 100 * (Close / Close[period ago] - 1)
//
// The first value therefore requires period+1 observations. A zero
// reference close makes the ratio undefined; the value is NaN and Collect
// omits it.
type ROC struct {
	period    int
	name      string
	closes    *rolling.Window
	lastClose float64
	processed int
}

// NewROC creates a new rate-of-change calculator with the specified period
func NewROC(period int) (*ROC, error) {
	if period < 1 {
		return nil, invalidParamf("ROC", "period must be at least 1, got %d", period)
	}

	return &ROC{
		period: period,
		name:   fmt.Sprintf("ROC_%d", period),
		closes: rolling.NewWindow(period + 1),
	}, nil
}

// Name returns the indicator name
func (r *ROC) Name() string {
	return r.name
}

// Update processes a new observation and returns the rate of change
func (r *ROC) Update(c Candle) (float64, error) {
	r.closes.Push(c.Close)
	r.lastClose = c.Close
	r.processed++

	if !r.closes.Full() {
		return 0, ErrNotEnoughData
	}
	return r.roc(), nil
}

func (r *ROC) roc() float64 {
	ref := r.closes.Oldest()
	if ref == 0 {
		return math.NaN()
	}
	return (r.lastClose/ref - 1) * 100.0
}

// Value returns the current rate of change
func (r *ROC) Value() (float64, error) {
	if !r.closes.Full() {
		return 0, ErrNotEnoughData
	}
	return r.roc(), nil
}

// Collect adds the rate of change to dst once ready, skipping a non-finite value
func (r *ROC) Collect(dst map[string]float64) {
	val, err := r.Value()
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return
	}
	dst[r.name] = val
}

// Reset clears the ROC state
func (r *ROC) Reset() {
	r.closes.Reset()
	r.lastClose = 0
	r.processed = 0
}

// IsReady returns true if a full period of history is available
func (r *ROC) IsReady() bool {
	return r.closes.Full()
}

// WindowSize returns the observations required for the first value
func (r *ROC) WindowSize() int {
	return r.period + 1
}

// BarsProcessed returns the number of observations processed
func (r *ROC) BarsProcessed() int {
	return r.processed
}
