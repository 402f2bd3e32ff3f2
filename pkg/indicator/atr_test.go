package indicator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestATR_Validation(t *testing.T) {
	_, err := NewATR(14)
	assert.NoError(t, err)

	_, err = NewATR(0)
	assert.Error(t, err)
}

func TestATR_KnownSequence(t *testing.T) {
	atr, err := NewATR(2)
	require.NoError(t, err)

	// TR1 = 2-1 = 1 (no previous close)
	_, err = atr.Update(Candle{High: 2, Low: 1, Close: 1.5})
	assert.True(t, errors.Is(err, ErrNotEnoughData))

	// TR2 = max(3-2, |3-1.5|, |2-1.5|) = 1.5, seed = (1+1.5)/2 = 1.25
	val, err := atr.Update(Candle{High: 3, Low: 2, Close: 2.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.25, val, 1e-9)

	// TR3 = max(4-1, |4-2.5|, |1-2.5|) = 3, ATR = (1.25 + 3)/2 = 2.125
	val, err = atr.Update(Candle{High: 4, Low: 1, Close: 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.125, val, 1e-9)
}

func TestATR_GapTrueRange(t *testing.T) {
	atr, err := NewATR(1)
	require.NoError(t, err)

	// With period 1 the ATR is the raw TR of each bar.
	val, err := atr.Update(Candle{High: 10, Low: 9, Close: 9.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, val, 1e-9)

	// Gap up: the high-to-previous-close distance dominates.
	val, err = atr.Update(Candle{High: 15, Low: 14, Close: 14.5})
	require.NoError(t, err)
	assert.InDelta(t, 5.5, val, 1e-9)

	// Gap down: the low-to-previous-close distance dominates.
	val, err = atr.Update(Candle{High: 11, Low: 10, Close: 10.5})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, val, 1e-9)
}

func TestATR_NonNegative(t *testing.T) {
	atr, err := NewATR(14)
	require.NoError(t, err)

	for i, c := range testCandles(300) {
		val, err := atr.Update(c)
		if err != nil {
			continue
		}
		assert.GreaterOrEqual(t, val, 0.0, "observation %d", i+1)
	}
}

func TestATR_FlatMarket(t *testing.T) {
	atr, err := NewATR(3)
	require.NoError(t, err)

	// Identical flat bars have zero true range everywhere.
	var val float64
	for i := 0; i < 10; i++ {
		val, _ = atr.Update(Candle{High: 50, Low: 50, Close: 50})
	}
	assert.InDelta(t, 0.0, val, 1e-9)
}

func TestATR_Reset(t *testing.T) {
	atr, err := NewATR(3)
	require.NoError(t, err)

	candles := testCandles(10)
	for _, c := range candles {
		atr.Update(c)
	}
	require.True(t, atr.IsReady())

	atr.Reset()
	assert.False(t, atr.IsReady())
	assert.Equal(t, 0, atr.BarsProcessed())

	first := Replay(atr, candles)
	second := Replay(atr, candles)
	assert.Equal(t, first, second)
}
