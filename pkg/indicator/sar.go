package indicator

import (
	"fmt"
	"math"
)

// SAR calculates the Parabolic Stop and Reverse
// SAR = Previous SAR + AF * (EP - Previous SAR)
// where EP is the extreme point of the current trend and AF the acceleration
// factor, starting at step and growing by step (capped at max) each time a
// new extreme is made.
//
// The first two observations seed the state: the trend follows the midpoint
// move between them (ties read as uptrend), the seed SAR is the opposite
// extreme of the pair and the seed EP the trend-side extreme. On each later
// bar the candidate SAR is clamped to stay outside the prior two bars'
// range, then checked against the bar's range; a penetrated SAR reverses the
// trend, placing the new SAR at the old EP with the acceleration reset.
type SAR struct {
	name string
	step float64
	max  float64

	uptrend bool
	sar     float64
	ep      float64
	af      float64

	prev1High float64
	prev1Low  float64
	prev2High float64
	prev2Low  float64

	hasSeed   bool
	ready     bool
	processed int
}

// NewSAR creates a new Parabolic SAR calculator with the given acceleration
// step and maximum (typically 0.02, 0.2)
func NewSAR(step, max float64) (*SAR, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, invalidParamf("SAR", "step must be positive and finite, got %v", step)
	}
	if max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, invalidParamf("SAR", "max must be positive and finite, got %v", max)
	}
	if step > max {
		return nil, invalidParamf("SAR", "step %v must not exceed max %v", step, max)
	}

	return &SAR{
		name: fmt.Sprintf("SAR_%g_%g", step, max),
		step: step,
		max:  max,
	}, nil
}

// Name returns the indicator name
func (s *SAR) Name() string {
	return s.name
}

// Update processes a new observation and returns the SAR value
func (s *SAR) Update(c Candle) (float64, error) {
	s.processed++

	if !s.hasSeed {
		s.prev1High = c.High
		s.prev1Low = c.Low
		s.hasSeed = true
		return 0, ErrNotEnoughData
	}

	if !s.ready {
		s.seedPair(c)
		s.shiftBars(c)
		s.ready = true
		return s.sar, nil
	}

	sar := s.sar + s.af*(s.ep-s.sar)

	if s.uptrend {
		// The SAR may not enter the prior two bars' range.
		if sar > s.prev1Low {
			sar = s.prev1Low
		}
		if sar > s.prev2Low {
			sar = s.prev2Low
		}
		if c.Low < sar {
			// Price fell through the stop: reverse to a downtrend.
			s.uptrend = false
			sar = s.ep
			s.ep = c.Low
			s.af = s.step
		} else if c.High > s.ep {
			s.ep = c.High
			s.af = math.Min(s.af+s.step, s.max)
		}
	} else {
		if sar < s.prev1High {
			sar = s.prev1High
		}
		if sar < s.prev2High {
			sar = s.prev2High
		}
		if c.High > sar {
			s.uptrend = true
			sar = s.ep
			s.ep = c.High
			s.af = s.step
		} else if c.Low < s.ep {
			s.ep = c.Low
			s.af = math.Min(s.af+s.step, s.max)
		}
	}

	s.sar = sar
	s.shiftBars(c)
	return s.sar, nil
}

// seedPair derives the initial trend, SAR and EP from the first two bars.
func (s *SAR) seedPair(c Candle) {
	prevMid := (s.prev1High + s.prev1Low) / 2
	currMid := (c.High + c.Low) / 2
	s.uptrend = currMid >= prevMid

	if s.uptrend {
		s.sar = math.Min(s.prev1Low, c.Low)
		s.ep = math.Max(s.prev1High, c.High)
	} else {
		s.sar = math.Max(s.prev1High, c.High)
		s.ep = math.Min(s.prev1Low, c.Low)
	}
	s.af = s.step
}

func (s *SAR) shiftBars(c Candle) {
	s.prev2High, s.prev2Low = s.prev1High, s.prev1Low
	s.prev1High, s.prev1Low = c.High, c.Low
}

// Value returns the current SAR value
func (s *SAR) Value() (float64, error) {
	if !s.ready {
		return 0, ErrNotEnoughData
	}
	return s.sar, nil
}

// Uptrend reports the current trend direction; meaningful once IsReady
func (s *SAR) Uptrend() bool {
	return s.uptrend
}

// Collect adds the SAR value to dst once ready
func (s *SAR) Collect(dst map[string]float64) {
	if v, err := s.Value(); err == nil {
		dst[s.name] = v
	}
}

// Reset clears the SAR state
func (s *SAR) Reset() {
	s.uptrend = false
	s.sar = 0
	s.ep = 0
	s.af = 0
	s.prev1High = 0
	s.prev1Low = 0
	s.prev2High = 0
	s.prev2Low = 0
	s.hasSeed = false
	s.ready = false
	s.processed = 0
}

// IsReady returns true once the two-bar seed is complete
func (s *SAR) IsReady() bool {
	return s.ready
}

// WindowSize returns 2 (the seed requires two observations)
func (s *SAR) WindowSize() int {
	return 2
}

// BarsProcessed returns the number of observations processed
func (s *SAR) BarsProcessed() int {
	return s.processed
}
