package engine

import "hash/fnv"

// partitioner assigns symbols to workers by consistent hashing, so every
// bar for a given symbol lands on the same worker and indicator state
// never needs a lock.
type partitioner struct {
	workers int
}

func newPartitioner(workers int) *partitioner {
	return &partitioner{workers: workers}
}

// partition returns the worker index owning the symbol.
// Uses FNV-1a: hash(symbol) % workers.
func (p *partitioner) partition(symbol string) int {
	if symbol == "" {
		return 0
	}

	h := fnv.New32a()
	h.Write([]byte(symbol))
	return int(h.Sum32() % uint32(p.workers))
}
