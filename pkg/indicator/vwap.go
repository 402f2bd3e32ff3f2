package indicator

import (
	"fmt"
	"math"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// VWAP calculates the Volume Weighted Average Price over the last period
// observations. Each observation contributes its typical price (H+L+C)/3
// weighted by volume:
//
//	VWAP = Sum(typical * volume) / Sum(volume)
//
// When every volume in the window is zero the ratio is undefined; the
// value is NaN and Collect omits it.
type VWAP struct {
	period      int
	name        string
	priceVolume *rolling.Window
	volume      *rolling.Window
	processed   int
}

// NewVWAP creates a new VWAP calculator with the specified period
func NewVWAP(period int) (*VWAP, error) {
	if period < 1 {
		return nil, invalidParamf("VWAP", "period must be at least 1, got %d", period)
	}

	return &VWAP{
		period:      period,
		name:        fmt.Sprintf("VWAP_%d", period),
		priceVolume: rolling.NewWindow(period),
		volume:      rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator name
func (v *VWAP) Name() string {
	return v.name
}

// Update processes a new observation and returns the VWAP over the window
func (v *VWAP) Update(c Candle) (float64, error) {
	typical := (c.High + c.Low + c.Close) / 3.0
	v.priceVolume.Push(typical * c.Volume)
	v.volume.Push(c.Volume)
	v.processed++

	if !v.volume.Full() {
		return 0, ErrNotEnoughData
	}
	return v.vwap(), nil
}

func (v *VWAP) vwap() float64 {
	total := v.volume.Sum()
	if total == 0 {
		return math.NaN()
	}
	return v.priceVolume.Sum() / total
}

// Value returns the current VWAP
func (v *VWAP) Value() (float64, error) {
	if !v.volume.Full() {
		return 0, ErrNotEnoughData
	}
	return v.vwap(), nil
}

// Collect adds the VWAP to dst once ready, skipping a non-finite value
func (v *VWAP) Collect(dst map[string]float64) {
	val, err := v.Value()
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return
	}
	dst[v.name] = val
}

// Reset clears the VWAP state
func (v *VWAP) Reset() {
	v.priceVolume.Reset()
	v.volume.Reset()
	v.processed = 0
}

// IsReady returns true if the window is full
func (v *VWAP) IsReady() bool {
	return v.volume.Full()
}

// WindowSize returns the period (observations required)
func (v *VWAP) WindowSize() int {
	return v.period
}

// BarsProcessed returns the number of observations processed
func (v *VWAP) BarsProcessed() int {
	return v.processed
}
