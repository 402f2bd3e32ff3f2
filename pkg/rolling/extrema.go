package rolling

// Extrema tracks the maximum and minimum over the last capacity values using
// monotonic deques, O(1) amortized per push.
type Extrema struct {
	capacity int
	pushed   int
	maxq     []extremaSample
	minq     []extremaSample
}

type extremaSample struct {
	seq int
	val float64
}

// NewExtrema creates an extrema tracker over the last capacity values.
// Panics if capacity < 1, same contract as NewWindow.
func NewExtrema(capacity int) *Extrema {
	if capacity < 1 {
		panic("rolling: extrema capacity must be at least 1")
	}
	return &Extrema{capacity: capacity}
}

// Push appends v and expires values that fell out of the window.
func (e *Extrema) Push(v float64) {
	seq := e.pushed
	e.pushed++

	// Entries dominated by v can never be the extremum again.
	for len(e.maxq) > 0 && e.maxq[len(e.maxq)-1].val <= v {
		e.maxq = e.maxq[:len(e.maxq)-1]
	}
	e.maxq = append(e.maxq, extremaSample{seq: seq, val: v})

	for len(e.minq) > 0 && e.minq[len(e.minq)-1].val >= v {
		e.minq = e.minq[:len(e.minq)-1]
	}
	e.minq = append(e.minq, extremaSample{seq: seq, val: v})

	for len(e.maxq) > 0 && e.maxq[0].seq <= e.pushed-e.capacity-1 {
		e.maxq = e.maxq[1:]
	}
	for len(e.minq) > 0 && e.minq[0].seq <= e.pushed-e.capacity-1 {
		e.minq = e.minq[1:]
	}
}

// Max returns the maximum over the current window, or 0 before any push.
func (e *Extrema) Max() float64 {
	if len(e.maxq) == 0 {
		return 0
	}
	return e.maxq[0].val
}

// Min returns the minimum over the current window, or 0 before any push.
func (e *Extrema) Min() float64 {
	if len(e.minq) == 0 {
		return 0
	}
	return e.minq[0].val
}

// Len returns the number of values inside the current window.
func (e *Extrema) Len() int {
	if e.pushed < e.capacity {
		return e.pushed
	}
	return e.capacity
}

// Full reports whether the window has seen at least capacity values.
func (e *Extrema) Full() bool {
	return e.pushed >= e.capacity
}

// Reset empties the tracker.
func (e *Extrema) Reset() {
	e.pushed = 0
	e.maxq = e.maxq[:0]
	e.minq = e.minq[:0]
}
