package indicator

import (
	"fmt"

	"github.com/tickerlab/indicator-engine/pkg/rolling"
)

// KDJValue holds the three stochastic lines for one observation.
type KDJValue struct {
	K float64
	D float64
	J float64
}

// KDJ calculates the KDJ stochastic oscillator
// RSV = 100 * (Close - LowestLow) / (HighestHigh - LowestLow) over rsvPeriod
// %K = previous %K * (m1-1)/m1 + RSV/m1, seeded at 50
// %D = previous %D * (m2-1)/m2 + %K/m2, seeded at 50
// %J = 3*%K - 2*%D
// A flat window (HighestHigh == LowestLow) reads RSV as neutral 50.
// %K and %D stay within [0, 100]; %J can leave that range.
type KDJ struct {
	name      string
	rsvPeriod int
	m1        int
	m2        int
	highs     *rolling.Extrema
	lows      *rolling.Extrema
	k         float64
	d         float64
	ready     bool
	processed int
}

// NewKDJ creates a new KDJ calculator with the given RSV period and
// smoothing factors (typically 9, 3, 3)
func NewKDJ(rsvPeriod, m1, m2 int) (*KDJ, error) {
	if rsvPeriod < 1 {
		return nil, invalidParamf("KDJ", "RSV period must be at least 1, got %d", rsvPeriod)
	}
	if m1 < 1 || m2 < 1 {
		return nil, invalidParamf("KDJ", "smoothing factors must be at least 1, got %d/%d", m1, m2)
	}

	return &KDJ{
		name:      fmt.Sprintf("KDJ_%d_%d_%d", rsvPeriod, m1, m2),
		rsvPeriod: rsvPeriod,
		m1:        m1,
		m2:        m2,
		highs:     rolling.NewExtrema(rsvPeriod),
		lows:      rolling.NewExtrema(rsvPeriod),
		k:         50.0,
		d:         50.0,
	}, nil
}

// Name returns the indicator name
func (k *KDJ) Name() string {
	return k.name
}

// Update processes a new observation and returns the %K value
func (k *KDJ) Update(c Candle) (float64, error) {
	k.processed++
	k.highs.Push(c.High)
	k.lows.Push(c.Low)

	if !k.highs.Full() {
		return 0, ErrNotEnoughData
	}

	highest := k.highs.Max()
	lowest := k.lows.Min()

	rsv := 50.0
	if highest > lowest {
		rsv = 100.0 * (c.Close - lowest) / (highest - lowest)
	}

	k.k = k.k*float64(k.m1-1)/float64(k.m1) + rsv/float64(k.m1)
	k.d = k.d*float64(k.m2-1)/float64(k.m2) + k.k/float64(k.m2)
	k.ready = true
	return k.k, nil
}

// Value returns the current %K value
func (k *KDJ) Value() (float64, error) {
	if !k.ready {
		return 0, ErrNotEnoughData
	}
	return k.k, nil
}

// Lines returns the current %K, %D and %J values
func (k *KDJ) Lines() (KDJValue, error) {
	if !k.ready {
		return KDJValue{}, ErrNotEnoughData
	}
	return KDJValue{
		K: k.k,
		D: k.d,
		J: 3.0*k.k - 2.0*k.d,
	}, nil
}

// Collect adds the %K, %D and %J lines to dst once ready
func (k *KDJ) Collect(dst map[string]float64) {
	lines, err := k.Lines()
	if err != nil {
		return
	}
	dst[k.name+"_K"] = lines.K
	dst[k.name+"_D"] = lines.D
	dst[k.name+"_J"] = lines.J
}

// Reset clears the KDJ state
func (k *KDJ) Reset() {
	k.highs.Reset()
	k.lows.Reset()
	k.k = 50.0
	k.d = 50.0
	k.ready = false
	k.processed = 0
}

// IsReady returns true if the KDJ has enough data
func (k *KDJ) IsReady() bool {
	return k.ready
}

// WindowSize returns the RSV period (observations required)
func (k *KDJ) WindowSize() int {
	return k.rsvPeriod
}

// BarsProcessed returns the number of observations processed
func (k *KDJ) BarsProcessed() int {
	return k.processed
}
