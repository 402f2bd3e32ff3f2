package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_MatchesLiveStream(t *testing.T) {
	candles := testCandles(120)

	live, err := NewKDJ(9, 3, 3)
	require.NoError(t, err)
	streamed := make([]float64, 0, len(candles))
	for _, c := range candles {
		if v, err := live.Update(c); err == nil {
			streamed = append(streamed, v)
		}
	}

	replayed, err := NewKDJ(9, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, streamed, Replay(replayed, candles))
}

func TestReplay_ResetsBeforeDriving(t *testing.T) {
	candles := testCandles(40)

	atr, err := NewATR(5)
	require.NoError(t, err)

	// Dirty the state first; Replay must not see it.
	for _, c := range testCandles(17) {
		atr.Update(c)
	}

	dirty := Replay(atr, candles)

	fresh, err := NewATR(5)
	require.NoError(t, err)
	assert.Equal(t, Replay(fresh, candles), dirty)
}

func TestReplaySet_AlignsWithInput(t *testing.T) {
	set, err := BuildSet([]Spec{
		{Kind: KindSMA, Period: 5},
		{Kind: KindOBV},
	})
	require.NoError(t, err)

	candles := testCandles(12)
	snapshots := ReplaySet(set, candles)

	require.Len(t, snapshots, len(candles), "one snapshot per observation")
	assert.Empty(t, snapshots[0], "nothing ready on the first observation")
	assert.Contains(t, snapshots[1], "OBV")
	assert.NotContains(t, snapshots[1], "SMA_5")
	assert.Contains(t, snapshots[4], "SMA_5")
	assert.Contains(t, snapshots[len(snapshots)-1], "SMA_5")
}

func TestReplaySet_Rehydration(t *testing.T) {
	// Rehydrating state by replaying history ends at exactly the same
	// snapshot the live path produced.
	specs := []Spec{
		{Kind: KindEMA, Period: 5},
		{Kind: KindMACD, Fast: 3, Slow: 6, Signal: 3},
		{Kind: KindBOLL, Period: 5, Multiplier: 2.0},
	}
	candles := testCandles(80)

	liveSet, err := BuildSet(specs)
	require.NoError(t, err)
	var liveLast map[string]float64
	for _, c := range candles {
		liveLast = liveSet.Update(c)
	}

	rehydrated, err := BuildSet(specs)
	require.NoError(t, err)
	snapshots := ReplaySet(rehydrated, candles)

	assert.Equal(t, liveLast, snapshots[len(snapshots)-1])
	assert.Equal(t, liveSet.Snapshot(), rehydrated.Snapshot())
}
