package indicator

// OBV calculates On-Balance Volume
// The running total starts at 0 on the first observation. Each later close
// above the previous close adds the bar's volume, each close below subtracts
// it, and an unchanged close leaves the total alone.
type OBV struct {
	name      string
	prevClose float64
	hasPrev   bool
	value     float64
	processed int
}

// NewOBV creates a new OBV calculator
func NewOBV() *OBV {
	return &OBV{name: "OBV"}
}

// Name returns the indicator name
func (o *OBV) Name() string {
	return o.name
}

// Update processes a new observation and returns the running OBV total
func (o *OBV) Update(c Candle) (float64, error) {
	o.processed++

	if !o.hasPrev {
		o.prevClose = c.Close
		o.hasPrev = true
		return 0, ErrNotEnoughData
	}

	switch {
	case c.Close > o.prevClose:
		o.value += c.Volume
	case c.Close < o.prevClose:
		o.value -= c.Volume
	}
	o.prevClose = c.Close
	return o.value, nil
}

// Value returns the current OBV total
func (o *OBV) Value() (float64, error) {
	if o.processed < 2 {
		return 0, ErrNotEnoughData
	}
	return o.value, nil
}

// Collect adds the OBV total to dst once ready
func (o *OBV) Collect(dst map[string]float64) {
	if v, err := o.Value(); err == nil {
		dst[o.name] = v
	}
}

// Reset clears the OBV state
func (o *OBV) Reset() {
	o.prevClose = 0
	o.hasPrev = false
	o.value = 0
	o.processed = 0
}

// IsReady returns true once a close-to-close comparison exists
func (o *OBV) IsReady() bool {
	return o.processed >= 2
}

// WindowSize returns 2 (the first comparison needs two observations)
func (o *OBV) WindowSize() int {
	return 2
}

// BarsProcessed returns the number of observations processed
func (o *OBV) BarsProcessed() int {
	return o.processed
}
