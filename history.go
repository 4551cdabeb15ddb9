package ui

// History is a short sliding window of timestamped samples. It backs
// velocity estimates (pointer flicks) and frame-time statistics: samples
// older than maxAge or beyond maxLen fall off the front.
type History[T any] struct {
	maxLen int
	maxAge float64

	times  []float64
	values []T
}

// NewHistory creates a history keeping at most maxLen samples no older
// than maxAge seconds.
func NewHistory[T any](maxLen int, maxAge float64) *History[T] {
	return &History[T]{
		maxLen: maxLen,
		maxAge: maxAge,
		times:  make([]float64, 0, maxLen),
		values: make([]T, 0, maxLen),
	}
}

// Add appends a sample and evicts expired ones.
func (h *History[T]) Add(now float64, value T) {
	h.times = append(h.times, now)
	h.values = append(h.values, value)
	h.Flush(now)
}

// Flush drops samples older than the window relative to now.
func (h *History[T]) Flush(now float64) {
	cut := 0
	for cut < len(h.times) && (now-h.times[cut] > h.maxAge || len(h.times)-cut > h.maxLen) {
		cut++
	}
	if cut > 0 {
		h.times = append(h.times[:0], h.times[cut:]...)
		h.values = append(h.values[:0], h.values[cut:]...)
	}
}

// Len returns the number of live samples.
func (h *History[T]) Len() int {
	return len(h.times)
}

// Clear drops all samples.
func (h *History[T]) Clear() {
	h.times = h.times[:0]
	h.values = h.values[:0]
}

// Latest returns the newest sample.
func (h *History[T]) Latest() (T, bool) {
	var zero T
	if len(h.values) == 0 {
		return zero, false
	}
	return h.values[len(h.values)-1], true
}

// Oldest returns the oldest live sample.
func (h *History[T]) Oldest() (T, bool) {
	var zero T
	if len(h.values) == 0 {
		return zero, false
	}
	return h.values[0], true
}

// TimeSpan returns the seconds between the oldest and newest samples.
func (h *History[T]) TimeSpan() float64 {
	if len(h.times) < 2 {
		return 0
	}
	return h.times[len(h.times)-1] - h.times[0]
}
