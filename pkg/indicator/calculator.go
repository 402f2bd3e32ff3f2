package indicator

// Candle is a single finalized observation. Price-only indicators read
// Close; KDJ, ATR and SAR also use High and Low, and OBV and VolumeSMA use
// Volume. Observations must be fed in increasing time order.
type Candle struct {
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// ValueCandle wraps a bare value as a flat candle so that price-only series
// can drive any calculator.
func ValueCandle(v float64) Candle {
	return Candle{High: v, Low: v, Close: v}
}

// Calculator is the interface for computing technical indicators
// Each indicator type implements this interface
type Calculator interface {
	// Name returns the unique name of this indicator (e.g. "RSI_14")
	Name() string

	// Update processes the next observation and returns the new value of
	// the indicator's primary line, or ErrNotEnoughData while warming up
	Update(c Candle) (float64, error)

	// Value returns the current primary-line value without consuming an
	// observation, or ErrNotEnoughData while warming up
	Value() (float64, error)

	// Collect writes every ready component line into dst, keyed by name.
	// Multi-line indicators add suffixed keys next to their primary name.
	// Lines that are not ready or not finite are left absent.
	Collect(dst map[string]float64)

	// Reset clears the indicator state (useful for rehydration or testing)
	Reset()

	// IsReady returns true if the indicator has enough data to produce a valid value
	IsReady() bool
}

// WindowedCalculator extends Calculator for indicators with a fixed warm-up
type WindowedCalculator interface {
	Calculator

	// WindowSize returns the number of observations required before the
	// first value
	WindowSize() int

	// BarsProcessed returns the number of observations processed so far
	BarsProcessed() int
}
