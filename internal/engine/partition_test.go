package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitioner_Stable(t *testing.T) {
	p := newPartitioner(4)

	first := p.partition("AAPL")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, p.partition("AAPL"))
	}
}

func TestPartitioner_InRange(t *testing.T) {
	p := newPartitioner(4)

	for i := 0; i < 500; i++ {
		idx := p.partition(fmt.Sprintf("SYM%d", i))
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}
}

func TestPartitioner_SpreadsSymbols(t *testing.T) {
	p := newPartitioner(4)

	seen := make(map[int]int)
	for i := 0; i < 200; i++ {
		seen[p.partition(fmt.Sprintf("SYM%d", i))]++
	}
	assert.Greater(t, len(seen), 1, "all symbols hashed to a single worker")
}

func TestPartitioner_SingleWorker(t *testing.T) {
	p := newPartitioner(1)

	for _, symbol := range []string{"AAPL", "MSFT", "TSLA"} {
		assert.Equal(t, 0, p.partition(symbol))
	}
}

func TestPartitioner_EmptySymbol(t *testing.T) {
	p := newPartitioner(4)
	assert.Equal(t, 0, p.partition(""))
}
