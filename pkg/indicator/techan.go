package indicator

import (
	"fmt"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

// techanEpoch anchors the synthetic minute periods used to index candles in
// the wrapped TimeSeries. The wrapped indicators never read wall-clock time.
var techanEpoch = time.Unix(0, 0).UTC()

// TechanCalculator adapts an indicator from the techan library over an
// internally owned TimeSeries to the Calculator interface. It exists as an
// alternate backend for cross-checking the native calculators; construct it
// via NewTechanSMA or NewTechanEMA.
//
// The series is rebuilt from its most recent half whenever it outgrows its
// cap, so a long-lived stream does not grow without bound. The moving
// average is exact across rebuilds; the exponential recursion restarts from
// the kept tail, which differs from an untrimmed series by a factor that
// decays exponentially in the kept length and is negligible for caps far
// above the window.
type TechanCalculator struct {
	name       string
	window     int
	maxCandles int
	series     *techan.TimeSeries
	indicator  techan.Indicator
	build      func(*techan.TimeSeries) techan.Indicator
	processed  int
}

// NewTechanSMA creates a techan-backed Simple Moving Average. Output matches
// the native SMA for every ready observation.
func NewTechanSMA(period int) (*TechanCalculator, error) {
	if period < 1 {
		return nil, invalidParamf("TECHAN_SMA", "period must be at least 1, got %d", period)
	}
	return newTechanCalculator(
		fmt.Sprintf("TECHAN_SMA_%d", period),
		period,
		func(series *techan.TimeSeries) techan.Indicator {
			return techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(series), period)
		},
	), nil
}

// NewTechanEMA creates a techan-backed Exponential Moving Average. techan
// seeds its EMA from the first close rather than the first-period mean, so
// early values differ from the native EMA and the two converge as the seed
// influence decays.
func NewTechanEMA(period int) (*TechanCalculator, error) {
	if period < 1 {
		return nil, invalidParamf("TECHAN_EMA", "period must be at least 1, got %d", period)
	}
	return newTechanCalculator(
		fmt.Sprintf("TECHAN_EMA_%d", period),
		period,
		func(series *techan.TimeSeries) techan.Indicator {
			return techan.NewEMAIndicator(techan.NewClosePriceIndicator(series), period)
		},
	), nil
}

func newTechanCalculator(name string, window int, build func(*techan.TimeSeries) techan.Indicator) *TechanCalculator {
	maxCandles := 8 * window
	if maxCandles < 512 {
		maxCandles = 512
	}
	series := techan.NewTimeSeries()
	return &TechanCalculator{
		name:       name,
		window:     window,
		maxCandles: maxCandles,
		series:     series,
		indicator:  build(series),
		build:      build,
	}
}

// Name returns the indicator name
func (t *TechanCalculator) Name() string {
	return t.name
}

// Update converts the observation to a techan candle, appends it to the
// owned series and returns the backend's latest value.
func (t *TechanCalculator) Update(c Candle) (float64, error) {
	period := techan.NewTimePeriod(techanEpoch.Add(time.Duration(t.processed)*time.Minute), time.Minute)
	candle := techan.NewCandle(period)
	candle.OpenPrice = big.NewDecimal(c.Close)
	candle.MaxPrice = big.NewDecimal(c.High)
	candle.MinPrice = big.NewDecimal(c.Low)
	candle.ClosePrice = big.NewDecimal(c.Close)
	candle.Volume = big.NewDecimal(c.Volume)

	t.series.AddCandle(candle)
	t.processed++

	if len(t.series.Candles) > t.maxCandles {
		t.rebuild()
	}

	if t.processed < t.window {
		return 0, ErrNotEnoughData
	}
	return t.indicator.Calculate(t.series.LastIndex()).Float(), nil
}

// rebuild replaces the series with its most recent half and rebinds the
// indicator to it.
func (t *TechanCalculator) rebuild() {
	keep := t.series.Candles[len(t.series.Candles)-t.maxCandles/2:]
	series := techan.NewTimeSeries()
	for _, candle := range keep {
		series.AddCandle(candle)
	}
	t.series = series
	t.indicator = t.build(series)
}

// Value returns the backend's current value
func (t *TechanCalculator) Value() (float64, error) {
	if t.processed < t.window {
		return 0, ErrNotEnoughData
	}
	return t.indicator.Calculate(t.series.LastIndex()).Float(), nil
}

// Collect adds the backend's value to dst once ready
func (t *TechanCalculator) Collect(dst map[string]float64) {
	if v, err := t.Value(); err == nil {
		dst[t.name] = v
	}
}

// Reset discards the series and starts over
func (t *TechanCalculator) Reset() {
	t.series = techan.NewTimeSeries()
	t.indicator = t.build(t.series)
	t.processed = 0
}

// IsReady returns true if the backend has enough data
func (t *TechanCalculator) IsReady() bool {
	return t.processed >= t.window
}

// WindowSize returns the configured window
func (t *TechanCalculator) WindowSize() int {
	return t.window
}

// BarsProcessed returns the number of observations processed
func (t *TechanCalculator) BarsProcessed() int {
	return t.processed
}
