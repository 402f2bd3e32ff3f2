package indicator

import (
	"fmt"
	"math"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// BollingerValue holds the full Bollinger band output for one observation.
// PercentB and Bandwidth are NaN when the band is degenerate (zero width).
type BollingerValue struct {
	Middle    float64
	Upper     float64
	Lower     float64
	PercentB  float64
	Bandwidth float64
}

// Bollinger calculates Bollinger Bands
// Middle = SMA(period)
// Upper/Lower = Middle +/- multiplier * population standard deviation
// PercentB = (Close - Lower) / (Upper - Lower)
// Bandwidth = (Upper - Lower) / Middle
// The bands are never clamped; Lower may go negative for wide multipliers.
type Bollinger struct {
	period     int
	multiplier float64
	name       string
	window     *rolling.Window
	lastClose  float64
	processed  int
}

// NewBollinger creates a new Bollinger band calculator with the specified
// period and standard deviation multiplier (typically 20, 2)
func NewBollinger(period int, multiplier float64) (*Bollinger, error) {
	if period < 1 {
		return nil, invalidParamf("BOLL", "period must be at least 1, got %d", period)
	}
	if multiplier <= 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return nil, invalidParamf("BOLL", "multiplier must be positive and finite, got %v", multiplier)
	}

	return &Bollinger{
		period:     period,
		multiplier: multiplier,
		name:       fmt.Sprintf("BOLL_%d_%g", period, multiplier),
		window:     rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator name
func (b *Bollinger) Name() string {
	return b.name
}

// Update processes a new observation and returns the middle band value
func (b *Bollinger) Update(c Candle) (float64, error) {
	b.window.Push(c.Close)
	b.lastClose = c.Close
	b.processed++

	if !b.window.Full() {
		return 0, ErrNotEnoughData
	}
	return b.window.Mean(), nil
}

func (b *Bollinger) bands() BollingerValue {
	middle := b.window.Mean()
	width := b.multiplier * b.window.StdDev()
	upper := middle + width
	lower := middle - width

	percentB := math.NaN()
	bandwidth := math.NaN()
	if upper > lower {
		percentB = (b.lastClose - lower) / (upper - lower)
		bandwidth = (upper - lower) / middle
	}

	return BollingerValue{
		Middle:    middle,
		Upper:     upper,
		Lower:     lower,
		PercentB:  percentB,
		Bandwidth: bandwidth,
	}
}

// Value returns the current middle band value
func (b *Bollinger) Value() (float64, error) {
	if !b.window.Full() {
		return 0, ErrNotEnoughData
	}
	return b.window.Mean(), nil
}

// Bands returns the full band output for the current window
func (b *Bollinger) Bands() (BollingerValue, error) {
	if !b.window.Full() {
		return BollingerValue{}, ErrNotEnoughData
	}
	return b.bands(), nil
}

// Collect adds the band lines to dst once ready, skipping non-finite values
func (b *Bollinger) Collect(dst map[string]float64) {
	bands, err := b.Bands()
	if err != nil {
		return
	}
	dst[b.name] = bands.Middle
	dst[b.name+"_UPPER"] = bands.Upper
	dst[b.name+"_LOWER"] = bands.Lower
	if !math.IsNaN(bands.PercentB) && !math.IsInf(bands.PercentB, 0) {
		dst[b.name+"_PCTB"] = bands.PercentB
	}
	if !math.IsNaN(bands.Bandwidth) && !math.IsInf(bands.Bandwidth, 0) {
		dst[b.name+"_WIDTH"] = bands.Bandwidth
	}
}

// Reset clears the Bollinger state
func (b *Bollinger) Reset() {
	b.window.Reset()
	b.lastClose = 0
	b.processed = 0
}

// IsReady returns true if the window is full
func (b *Bollinger) IsReady() bool {
	return b.window.Full()
}

// WindowSize returns the period (observations required)
func (b *Bollinger) WindowSize() int {
	return b.period
}

// BarsProcessed returns the number of observations processed
func (b *Bollinger) BarsProcessed() int {
	return b.processed
}
