package models

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestBar_Validate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name    string
		bar     *Bar
		wantErr error
	}{
		{
			name: "valid bar",
			bar: &Bar{
				Symbol:    "AAPL",
				Timestamp: ts,
				Open:      150.0,
				High:      151.0,
				Low:       149.5,
				Close:     150.5,
				Volume:    10000,
			},
			wantErr: nil,
		},
		{
			name: "missing symbol",
			bar: &Bar{
				Timestamp: ts,
				Open:      150.0,
				High:      151.0,
				Low:       149.5,
				Close:     150.5,
			},
			wantErr: ErrInvalidSymbol,
		},
		{
			name: "zero timestamp",
			bar: &Bar{
				Symbol: "AAPL",
				Open:   150.0,
				High:   151.0,
				Low:    149.5,
				Close:  150.5,
			},
			wantErr: ErrInvalidTimestamp,
		},
		{
			name: "high below low",
			bar: &Bar{
				Symbol:    "AAPL",
				Timestamp: ts,
				Open:      150.0,
				High:      149.0,
				Low:       151.0,
				Close:     150.0,
			},
			wantErr: ErrInvalidBar,
		},
		{
			name: "negative volume",
			bar: &Bar{
				Symbol:    "AAPL",
				Timestamp: ts,
				Open:      150.0,
				High:      151.0,
				Low:       149.5,
				Close:     150.5,
				Volume:    -1,
			},
			wantErr: ErrInvalidVolume,
		},
		{
			name: "NaN close",
			bar: &Bar{
				Symbol:    "AAPL",
				Timestamp: ts,
				Open:      150.0,
				High:      151.0,
				Low:       149.5,
				Close:     math.NaN(),
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name: "infinite high",
			bar: &Bar{
				Symbol:    "AAPL",
				Timestamp: ts,
				Open:      150.0,
				High:      math.Inf(1),
				Low:       149.5,
				Close:     150.5,
			},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bar.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Bar.Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBar_Candle(t *testing.T) {
	bar := &Bar{
		Symbol:    "AAPL",
		Timestamp: time.Date(2024, 3, 1, 15, 4, 0, 0, time.UTC),
		Open:      150.0,
		High:      151.0,
		Low:       149.5,
		Close:     150.5,
		Volume:    10000,
	}

	c := bar.Candle()
	if c.High != bar.High || c.Low != bar.Low || c.Close != bar.Close || c.Volume != bar.Volume {
		t.Errorf("Candle() = %+v, want fields of %+v", c, bar)
	}
}
