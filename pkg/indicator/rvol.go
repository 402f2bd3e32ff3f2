package indicator

import (
	"fmt"
	"math"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// RelativeVolume measures the current volume against its recent average,
// the surge signal behind "trading at 3x normal volume".
//
//	RVOL = Volume / Mean(Volume over period)
//
// The average includes the current observation. An all-zero window makes
// the ratio undefined; the value is NaN and Collect omits it.
type RelativeVolume struct {
	period     int
	name       string
	window     *rolling.Window
	lastVolume float64
	processed  int
}

// NewRelativeVolume creates a new relative volume calculator with the
// specified averaging period
func NewRelativeVolume(period int) (*RelativeVolume, error) {
	if period < 1 {
		return nil, invalidParamf("RVOL", "period must be at least 1, got %d", period)
	}

	return &RelativeVolume{
		period: period,
		name:   fmt.Sprintf("RVOL_%d", period),
		window: rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator name
func (r *RelativeVolume) Name() string {
	return r.name
}

// Update processes a new observation and returns the relative volume
func (r *RelativeVolume) Update(c Candle) (float64, error) {
	r.window.Push(c.Volume)
	r.lastVolume = c.Volume
	r.processed++

	if !r.window.Full() {
		return 0, ErrNotEnoughData
	}
	return r.rvol(), nil
}

func (r *RelativeVolume) rvol() float64 {
	mean := r.window.Mean()
	if mean == 0 {
		return math.NaN()
	}
	return r.lastVolume / mean
}

// Value returns the current relative volume
func (r *RelativeVolume) Value() (float64, error) {
	if !r.window.Full() {
		return 0, ErrNotEnoughData
	}
	return r.rvol(), nil
}

// Collect adds the relative volume to dst once ready, skipping a non-finite value
func (r *RelativeVolume) Collect(dst map[string]float64) {
	val, err := r.Value()
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return
	}
	dst[r.name] = val
}

// Reset clears the relative volume state
func (r *RelativeVolume) Reset() {
	r.window.Reset()
	r.lastVolume = 0
	r.processed = 0
}

// IsReady returns true if the window is full
func (r *RelativeVolume) IsReady() bool {
	return r.window.Full()
}

// WindowSize returns the period (observations required)
func (r *RelativeVolume) WindowSize() int {
	return r.period
}

// BarsProcessed returns the number of observations processed
func (r *RelativeVolume) BarsProcessed() int {
	return r.processed
}
