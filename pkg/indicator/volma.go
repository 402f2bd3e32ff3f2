package indicator

import (
	"fmt"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// VolumeSMA calculates the Simple Moving Average of volume rather than
// price, used to spot volume surges relative to the recent baseline.
type VolumeSMA struct {
	period    int
	name      string
	window    *rolling.Window
	processed int
}

// NewVolumeSMA creates a new volume SMA calculator with the specified period
func NewVolumeSMA(period int) (*VolumeSMA, error) {
	if period < 1 {
		return nil, invalidParamf("VOLMA", "period must be at least 1, got %d", period)
	}

	return &VolumeSMA{
		period: period,
		name:   fmt.Sprintf("VOLMA_%d", period),
		window: rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator name
func (v *VolumeSMA) Name() string {
	return v.name
}

// Update processes a new observation and updates the volume average
func (v *VolumeSMA) Update(c Candle) (float64, error) {
	v.window.Push(c.Volume)
	v.processed++

	if !v.window.Full() {
		return 0, ErrNotEnoughData
	}
	return v.window.Mean(), nil
}

// Value returns the current volume average
func (v *VolumeSMA) Value() (float64, error) {
	if !v.window.Full() {
		return 0, ErrNotEnoughData
	}
	return v.window.Mean(), nil
}

// Collect adds the volume average to dst once the window is full
func (v *VolumeSMA) Collect(dst map[string]float64) {
	if val, err := v.Value(); err == nil {
		dst[v.name] = val
	}
}

// Reset clears the volume SMA state
func (v *VolumeSMA) Reset() {
	v.window.Reset()
	v.processed = 0
}

// IsReady returns true if the window is full
func (v *VolumeSMA) IsReady() bool {
	return v.window.Full()
}

// WindowSize returns the period (observations required)
func (v *VolumeSMA) WindowSize() int {
	return v.period
}

// BarsProcessed returns the number of observations processed
func (v *VolumeSMA) BarsProcessed() int {
	return v.processed
}
