package indicator

// Replay resets calc and drives it over candles in order, returning the
// primary-line values of the ready region. Used for historical backfill and
// as the cross-check for the streaming path: replaying a previously
// streamed sequence reproduces the live outputs exactly.
func Replay(calc Calculator, candles []Candle) []float64 {
	calc.Reset()
	out := make([]float64, 0, len(candles))
	for _, c := range candles {
		if v, err := calc.Update(c); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// ReplaySet resets every member of set and drives the set over candles in
// order, returning one snapshot per candle. Warm-up snapshots are present
// but empty, so the output aligns index-for-index with the input.
func ReplaySet(set *IndicatorSet, candles []Candle) []map[string]float64 {
	set.Reset()
	out := make([]map[string]float64, 0, len(candles))
	for _, c := range candles {
		out = append(out, set.Update(c))
	}
	return out
}
