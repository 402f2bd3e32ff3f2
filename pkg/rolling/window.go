package rolling

import "math"

// Window is a fixed-capacity ring buffer of float64 values that maintains a
// running sum and sum of squares, so the mean and variance of the current
// window cost O(1) per push.
type Window struct {
	values []float64
	head   int
	count  int
	sum    float64
	sumSq  float64
}

// NewWindow creates a window over the last capacity values.
// Panics if capacity < 1: indicator constructors validate user input first,
// so a bad capacity here is a programming error.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		panic("rolling: window capacity must be at least 1")
	}
	return &Window{values: make([]float64, capacity)}
}

// Push appends v, evicting the oldest value once the window is full.
// The evicted value is subtracted exactly from both accumulators.
func (w *Window) Push(v float64) {
	if w.count == len(w.values) {
		old := w.values[w.head]
		w.sum -= old
		w.sumSq -= old * old
	} else {
		w.count++
	}
	w.values[w.head] = v
	w.head = (w.head + 1) % len(w.values)
	w.sum += v
	w.sumSq += v * v
}

// Len returns the number of values currently held.
func (w *Window) Len() int {
	return w.count
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return len(w.values)
}

// Full reports whether the window holds Cap() values.
func (w *Window) Full() bool {
	return w.count == len(w.values)
}

// Sum returns the sum of the values currently held.
func (w *Window) Sum() float64 {
	return w.sum
}

// Mean returns the arithmetic mean of the values currently held, or 0 for an
// empty window.
func (w *Window) Mean() float64 {
	if w.count == 0 {
		return 0
	}
	return w.sum / float64(w.count)
}

// Oldest returns the oldest value currently held, or 0 for an empty window.
func (w *Window) Oldest() float64 {
	if w.count == 0 {
		return 0
	}
	idx := (w.head - w.count + len(w.values)) % len(w.values)
	return w.values[idx]
}

// Variance returns the population variance of the values currently held, or
// 0 for an empty window. Tiny negative results from floating-point
// cancellation are clamped to 0.
func (w *Window) Variance() float64 {
	if w.count == 0 {
		return 0
	}
	n := float64(w.count)
	mean := w.sum / n
	v := w.sumSq/n - mean*mean
	if v < 0 {
		v = 0
	}
	return v
}

// StdDev returns the population standard deviation of the values held.
func (w *Window) StdDev() float64 {
	return math.Sqrt(w.Variance())
}

// Reset empties the window.
func (w *Window) Reset() {
	w.head = 0
	w.count = 0
	w.sum = 0
	w.sumSq = 0
}
