package indicator

// The batch functions replay a fresh calculator over a historical array and
// collect only the ready outputs, so batch and streaming paths cannot drift
// apart. Outputs align to the last index of each valid window; callers
// needing alignment to the input array must pad with the indicator's known
// warm-up offset themselves.

// BatchSMA computes the Simple Moving Average over closes.
func BatchSMA(closes []float64, period int) ([]float64, error) {
	calc, err := NewSMA(period)
	if err != nil {
		return nil, err
	}
	return replayValues(calc, closes), nil
}

// BatchEMA computes the Exponential Moving Average over closes.
func BatchEMA(closes []float64, period int) ([]float64, error) {
	calc, err := NewEMA(period)
	if err != nil {
		return nil, err
	}
	return replayValues(calc, closes), nil
}

// BatchRSI computes the Relative Strength Index over closes.
func BatchRSI(closes []float64, period int) ([]float64, error) {
	calc, err := NewRSI(period)
	if err != nil {
		return nil, err
	}
	return replayValues(calc, closes), nil
}

// BatchMACD computes all three MACD lines over closes.
func BatchMACD(closes []float64, fastPeriod, slowPeriod, signalPeriod int) ([]MACDValue, error) {
	calc, err := NewMACD(fastPeriod, slowPeriod, signalPeriod)
	if err != nil {
		return nil, err
	}

	out := make([]MACDValue, 0, len(closes))
	for _, v := range closes {
		if _, err := calc.Update(ValueCandle(v)); err != nil {
			continue
		}
		lines, _ := calc.Lines()
		out = append(out, lines)
	}
	return out, nil
}

// BatchKDJ computes the %K, %D and %J lines over high/low/close arrays.
func BatchKDJ(highs, lows, closes []float64, rsvPeriod, m1, m2 int) ([]KDJValue, error) {
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return nil, invalidParamf("KDJ", "mismatched input lengths: highs %d, lows %d, closes %d",
			len(highs), len(lows), len(closes))
	}
	calc, err := NewKDJ(rsvPeriod, m1, m2)
	if err != nil {
		return nil, err
	}

	out := make([]KDJValue, 0, len(closes))
	for i := range closes {
		c := Candle{High: highs[i], Low: lows[i], Close: closes[i]}
		if _, err := calc.Update(c); err != nil {
			continue
		}
		lines, _ := calc.Lines()
		out = append(out, lines)
	}
	return out, nil
}

// BatchATR computes the Average True Range over high/low/close arrays.
func BatchATR(highs, lows, closes []float64, period int) ([]float64, error) {
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return nil, invalidParamf("ATR", "mismatched input lengths: highs %d, lows %d, closes %d",
			len(highs), len(lows), len(closes))
	}
	calc, err := NewATR(period)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(closes))
	for i := range closes {
		c := Candle{High: highs[i], Low: lows[i], Close: closes[i]}
		if v, err := calc.Update(c); err == nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// BatchBollinger computes the full band output over closes.
func BatchBollinger(closes []float64, period int, multiplier float64) ([]BollingerValue, error) {
	calc, err := NewBollinger(period, multiplier)
	if err != nil {
		return nil, err
	}

	out := make([]BollingerValue, 0, len(closes))
	for _, v := range closes {
		if _, err := calc.Update(ValueCandle(v)); err != nil {
			continue
		}
		bands, _ := calc.Bands()
		out = append(out, bands)
	}
	return out, nil
}

// BatchOBV computes On-Balance Volume over close/volume arrays.
func BatchOBV(closes, volumes []float64) ([]float64, error) {
	if len(closes) != len(volumes) {
		return nil, invalidParamf("OBV", "mismatched input lengths: closes %d, volumes %d",
			len(closes), len(volumes))
	}
	calc := NewOBV()

	out := make([]float64, 0, len(closes))
	for i := range closes {
		c := Candle{Close: closes[i], Volume: volumes[i]}
		if v, err := calc.Update(c); err == nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// BatchVWAP computes the Volume Weighted Average Price over aligned
// high/low/close/volume arrays.
func BatchVWAP(highs, lows, closes, volumes []float64, period int) ([]float64, error) {
	if len(highs) != len(lows) || len(lows) != len(closes) || len(closes) != len(volumes) {
		return nil, invalidParamf("VWAP", "mismatched input lengths: highs %d, lows %d, closes %d, volumes %d",
			len(highs), len(lows), len(closes), len(volumes))
	}
	calc, err := NewVWAP(period)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(closes))
	for i := range closes {
		c := Candle{High: highs[i], Low: lows[i], Close: closes[i], Volume: volumes[i]}
		if v, err := calc.Update(c); err == nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// BatchROC computes the Rate of Change over closes.
func BatchROC(closes []float64, period int) ([]float64, error) {
	calc, err := NewROC(period)
	if err != nil {
		return nil, err
	}
	return replayValues(calc, closes), nil
}

// BatchRVOL computes the relative volume over a volume array.
func BatchRVOL(volumes []float64, period int) ([]float64, error) {
	calc, err := NewRelativeVolume(period)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(volumes))
	for _, v := range volumes {
		c := Candle{Volume: v}
		if val, err := calc.Update(c); err == nil {
			out = append(out, val)
		}
	}
	return out, nil
}

// BatchVolumeSMA computes the simple moving average over a volume array.
func BatchVolumeSMA(volumes []float64, period int) ([]float64, error) {
	calc, err := NewVolumeSMA(period)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(volumes))
	for _, v := range volumes {
		c := Candle{Volume: v}
		if val, err := calc.Update(c); err == nil {
			out = append(out, val)
		}
	}
	return out, nil
}

// BatchSAR computes the Parabolic SAR over high/low arrays.
func BatchSAR(highs, lows []float64, step, max float64) ([]float64, error) {
	if len(highs) != len(lows) {
		return nil, invalidParamf("SAR", "mismatched input lengths: highs %d, lows %d",
			len(highs), len(lows))
	}
	calc, err := NewSAR(step, max)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(highs))
	for i := range highs {
		c := Candle{High: highs[i], Low: lows[i]}
		if v, err := calc.Update(c); err == nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// replayValues drives a calculator over a bare close series, keeping the
// ready region.
func replayValues(calc Calculator, closes []float64) []float64 {
	out := make([]float64, 0, len(closes))
	for _, v := range closes {
		if val, err := calc.Update(ValueCandle(v)); err == nil {
			out = append(out, val)
		}
	}
	return out
}
