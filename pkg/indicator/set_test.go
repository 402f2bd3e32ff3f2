package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFullSet(t *testing.T) *IndicatorSet {
	t.Helper()
	set := NewSet()
	require.NoError(t, set.AddSMA(3))
	require.NoError(t, set.AddEMA(3))
	require.NoError(t, set.AddRSI(2))
	require.NoError(t, set.AddMACD(2, 4, 2))
	require.NoError(t, set.AddKDJ(3, 3, 3))
	require.NoError(t, set.AddATR(3))
	require.NoError(t, set.AddBollinger(3, 2.0))
	require.NoError(t, set.AddOBV())
	require.NoError(t, set.AddSAR(0.02, 0.2))
	require.NoError(t, set.AddVolumeSMA(3))
	require.NoError(t, set.AddVWAP(3))
	require.NoError(t, set.AddROC(2))
	require.NoError(t, set.AddRelativeVolume(3))
	return set
}

func TestSet_AddAndNames(t *testing.T) {
	set := buildFullSet(t)

	assert.Equal(t, 13, set.Size())
	assert.Equal(t, []string{
		"SMA_3", "EMA_3", "RSI_2", "MACD_2_4_2", "KDJ_3_3_3",
		"ATR_3", "BOLL_3_2", "OBV", "SAR_0.02_0.2", "VOLMA_3",
		"VWAP_3", "ROC_2", "RVOL_3",
	}, set.Names(), "names keep insertion order")

	calc, ok := set.Get("RSI_2")
	require.True(t, ok)
	assert.Equal(t, "RSI_2", calc.Name())

	_, ok = set.Get("RSI_99")
	assert.False(t, ok)
}

func TestSet_DuplicateRejected(t *testing.T) {
	set := NewSet()
	require.NoError(t, set.AddSMA(20))

	err := set.AddSMA(20)
	assert.Error(t, err, "re-adding a name must fail fast")

	assert.Error(t, set.Add(nil))
	assert.Equal(t, 1, set.Size())
}

func TestSet_InvalidMemberParameters(t *testing.T) {
	set := NewSet()
	assert.Error(t, set.AddSMA(0))
	assert.Error(t, set.AddMACD(26, 12, 9))
	assert.Error(t, set.AddBollinger(20, -1))
	assert.Error(t, set.AddSAR(0.5, 0.2))
	assert.Equal(t, 0, set.Size(), "failed adds leave the set untouched")
}

func TestSet_UpdateProducesPartialSnapshots(t *testing.T) {
	set := NewSet()
	require.NoError(t, set.AddSMA(2))
	require.NoError(t, set.AddSMA(5))

	// First observation: nothing is ready.
	snapshot := set.UpdateValue(10.0)
	assert.Empty(t, snapshot)

	// Second observation: only the short window is ready.
	snapshot = set.UpdateValue(20.0)
	assert.Len(t, snapshot, 1)
	assert.InDelta(t, 15.0, snapshot["SMA_2"], 1e-9)

	for _, v := range []float64{30, 40, 50} {
		snapshot = set.UpdateValue(v)
	}
	assert.Len(t, snapshot, 2)
	assert.InDelta(t, 45.0, snapshot["SMA_2"], 1e-9)
	assert.InDelta(t, 30.0, snapshot["SMA_5"], 1e-9)
}

func TestSet_MultiLineKeys(t *testing.T) {
	set := buildFullSet(t)

	var snapshot map[string]float64
	for _, c := range testCandles(30) {
		snapshot = set.Update(c)
	}

	// Single-line members publish under their bare name.
	assert.Contains(t, snapshot, "SMA_3")
	assert.Contains(t, snapshot, "EMA_3")
	assert.Contains(t, snapshot, "RSI_2")
	assert.Contains(t, snapshot, "ATR_3")
	assert.Contains(t, snapshot, "OBV")
	assert.Contains(t, snapshot, "SAR_0.02_0.2")
	assert.Contains(t, snapshot, "VOLMA_3")
	assert.Contains(t, snapshot, "VWAP_3")
	assert.Contains(t, snapshot, "ROC_2")
	assert.Contains(t, snapshot, "RVOL_3")

	// Multi-line members expand into suffixed keys.
	assert.Contains(t, snapshot, "MACD_2_4_2")
	assert.Contains(t, snapshot, "MACD_2_4_2_SIGNAL")
	assert.Contains(t, snapshot, "MACD_2_4_2_HIST")
	assert.Contains(t, snapshot, "KDJ_3_3_3_K")
	assert.Contains(t, snapshot, "KDJ_3_3_3_D")
	assert.Contains(t, snapshot, "KDJ_3_3_3_J")
	assert.NotContains(t, snapshot, "KDJ_3_3_3")
	assert.Contains(t, snapshot, "BOLL_3_2")
	assert.Contains(t, snapshot, "BOLL_3_2_UPPER")
	assert.Contains(t, snapshot, "BOLL_3_2_LOWER")
	assert.Contains(t, snapshot, "BOLL_3_2_PCTB")
	assert.Contains(t, snapshot, "BOLL_3_2_WIDTH")
}

func TestSet_SnapshotWithoutUpdate(t *testing.T) {
	set := NewSet()
	require.NoError(t, set.AddSMA(2))

	assert.Empty(t, set.Snapshot())

	set.UpdateValue(10)
	set.UpdateValue(20)

	snapshot := set.Snapshot()
	assert.InDelta(t, 15.0, snapshot["SMA_2"], 1e-9)

	// Snapshot is a copy; mutating it does not touch the set.
	snapshot["SMA_2"] = -1
	again := set.Snapshot()
	assert.InDelta(t, 15.0, again["SMA_2"], 1e-9)
}

func TestSet_Reset(t *testing.T) {
	set := buildFullSet(t)

	for _, c := range testCandles(30) {
		set.Update(c)
	}
	require.NotEmpty(t, set.Snapshot())

	set.Reset()
	assert.Empty(t, set.Snapshot())

	for _, name := range set.Names() {
		calc, ok := set.Get(name)
		require.True(t, ok)
		assert.False(t, calc.IsReady(), "%s should not be ready after reset", name)
	}
}
