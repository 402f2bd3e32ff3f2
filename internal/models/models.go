package models

import (
	"math"
	"time"

	"github.com/tickerlab/indicator-engine/pkg/indicator"
)

// Bar represents a finalized observation interval for one symbol
type Bar struct {
	Symbol    string    `json:"symbol"`
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Validate validates a Bar
func (b *Bar) Validate() error {
	if b.Symbol == "" {
		return ErrInvalidSymbol
	}
	if b.Timestamp.IsZero() {
		return ErrInvalidTimestamp
	}
	if !isFinite(b.Open) || !isFinite(b.High) || !isFinite(b.Low) || !isFinite(b.Close) {
		return ErrInvalidPrice
	}
	if b.High < b.Low {
		return ErrInvalidBar
	}
	if b.Volume < 0 || !isFinite(b.Volume) {
		return ErrInvalidVolume
	}
	return nil
}

// Candle converts the bar to the engine's observation type
func (b *Bar) Candle() indicator.Candle {
	return indicator.Candle{
		High:   b.High,
		Low:    b.Low,
		Close:  b.Close,
		Volume: b.Volume,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
