package indicator

import (
	"fmt"
)

// MACDValue holds all three MACD lines for one observation.
type MACDValue struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD calculates Moving Average Convergence Divergence
// MACD line = EMA(fast) - EMA(slow)
// Signal line = EMA(signal) of the MACD line
// Histogram = MACD line - Signal line
// The signal EMA starts seeding only once the slow EMA is ready, so the
// first full output appears after slow + signal - 1 observations.
type MACD struct {
	name      string
	fast      *EMA
	slow      *EMA
	signal    *EMA
	last      MACDValue
	ready     bool
	processed int
}

// NewMACD creates a new MACD calculator with the given fast, slow and
// signal periods (typically 12, 26, 9)
func NewMACD(fastPeriod, slowPeriod, signalPeriod int) (*MACD, error) {
	if fastPeriod < 1 || slowPeriod < 1 || signalPeriod < 1 {
		return nil, invalidParamf("MACD", "periods must be at least 1, got %d/%d/%d",
			fastPeriod, slowPeriod, signalPeriod)
	}
	if fastPeriod >= slowPeriod {
		return nil, invalidParamf("MACD", "fast period %d must be less than slow period %d",
			fastPeriod, slowPeriod)
	}

	fast, _ := NewEMA(fastPeriod)
	slow, _ := NewEMA(slowPeriod)
	signal, _ := NewEMA(signalPeriod)

	return &MACD{
		name:   fmt.Sprintf("MACD_%d_%d_%d", fastPeriod, slowPeriod, signalPeriod),
		fast:   fast,
		slow:   slow,
		signal: signal,
	}, nil
}

// Name returns the indicator name
func (m *MACD) Name() string {
	return m.name
}

// Update processes a new observation and returns the MACD line value
func (m *MACD) Update(c Candle) (float64, error) {
	m.processed++

	fastVal, fastErr := m.fast.Update(c)
	slowVal, slowErr := m.slow.Update(c)
	if fastErr != nil || slowErr != nil {
		return 0, ErrNotEnoughData
	}

	line := fastVal - slowVal
	signalVal, err := m.signal.Update(ValueCandle(line))
	if err != nil {
		return 0, ErrNotEnoughData
	}

	m.last = MACDValue{
		MACD:      line,
		Signal:    signalVal,
		Histogram: line - signalVal,
	}
	m.ready = true
	return line, nil
}

// Value returns the current MACD line value
func (m *MACD) Value() (float64, error) {
	if !m.ready {
		return 0, ErrNotEnoughData
	}
	return m.last.MACD, nil
}

// Lines returns all three MACD lines
func (m *MACD) Lines() (MACDValue, error) {
	if !m.ready {
		return MACDValue{}, ErrNotEnoughData
	}
	return m.last, nil
}

// Collect adds the MACD, signal and histogram lines to dst once ready
func (m *MACD) Collect(dst map[string]float64) {
	if !m.ready {
		return
	}
	dst[m.name] = m.last.MACD
	dst[m.name+"_SIGNAL"] = m.last.Signal
	dst[m.name+"_HIST"] = m.last.Histogram
}

// Reset clears the MACD state
func (m *MACD) Reset() {
	m.fast.Reset()
	m.slow.Reset()
	m.signal.Reset()
	m.last = MACDValue{}
	m.ready = false
	m.processed = 0
}

// IsReady returns true if all three lines have values
func (m *MACD) IsReady() bool {
	return m.ready
}

// WindowSize returns the observations required for the first full output
func (m *MACD) WindowSize() int {
	return m.slow.WindowSize() + m.signal.WindowSize() - 1
}

// BarsProcessed returns the number of observations processed
func (m *MACD) BarsProcessed() int {
	return m.processed
}
