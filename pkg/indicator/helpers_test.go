package indicator

import "math"

// testCloses returns a deterministic jagged price series with mixed gains
// and losses for exercising the calculators.
func testCloses(n int) []float64 {
	out := make([]float64, n)
	price := 100.0
	for i := 0; i < n; i++ {
		price += 3.0*math.Sin(float64(i)/4.0) + 0.1*float64(i%5) - 0.15
		out[i] = price
	}
	return out
}

// testCandles builds a full candle series around testCloses, with a varying
// high/low spread and a rotating volume.
func testCandles(n int) []Candle {
	closes := testCloses(n)
	out := make([]Candle, n)
	for i, c := range closes {
		spread := 0.5 + 0.25*float64(i%3)
		out[i] = Candle{
			High:   c + spread,
			Low:    c - spread,
			Close:  c,
			Volume: 1000.0 + 50.0*float64(i%11),
		}
	}
	return out
}
