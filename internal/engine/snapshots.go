package engine

import (
	"sync"
	"time"
)

// Snapshot is the published indicator state of one symbol after a bar.
// Values holds every ready component line keyed by indicator name; members
// still warming up are absent. Seq increases by one per publish for the
// symbol, so consumers can detect missed updates.
type Snapshot struct {
	Symbol    string
	Timestamp time.Time
	Seq       uint64
	Values    map[string]float64
}

// snapshotStore holds the latest snapshot per symbol. Workers publish,
// anyone may read. Published maps are owned by the store and never mutated
// again; reads hand out copies.
type snapshotStore struct {
	mu     sync.RWMutex
	latest map[string]Snapshot
}

func newSnapshotStore() *snapshotStore {
	return &snapshotStore{
		latest: make(map[string]Snapshot),
	}
}

// publish records values as the symbol's latest snapshot, taking ownership
// of the map.
func (s *snapshotStore) publish(symbol string, ts time.Time, values map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Symbol:    symbol,
		Timestamp: ts,
		Seq:       s.latest[symbol].Seq + 1,
		Values:    values,
	}
	s.latest[symbol] = snap
}

// get returns a copy of the symbol's latest snapshot.
func (s *snapshotStore) get(symbol string) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.latest[symbol]
	if !ok {
		return Snapshot{}, false
	}
	return snap.copy(), true
}

// all returns copies of every symbol's latest snapshot.
func (s *snapshotStore) all() map[string]Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Snapshot, len(s.latest))
	for symbol, snap := range s.latest {
		out[symbol] = snap.copy()
	}
	return out
}

func (s Snapshot) copy() Snapshot {
	values := make(map[string]float64, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	s.Values = values
	return s
}
