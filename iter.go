package lapper

// Iter yields the intervals matching a single Find or Seek query. It is not
// restartable.
type Iter[T any] struct {
	intervals   []Interval[T]
	start, stop int

	pos  int
	last int
	done bool
}

// Next returns the next overlapping interval, or false once there are no more.
func (it *Iter[T]) Next() (Interval[T], bool) {
	for !it.done && it.pos >= 0 && it.pos < len(it.intervals) {
		i := it.pos
		iv := it.intervals[i]
		if iv.Start >= it.stop {
			// Everything after this starts at or beyond the query stop.
			break
		}
		it.pos++
		if iv.OverlapRange(it.start, it.stop) {
			it.last = i
			return iv, true
		}
	}
	it.done = true
	var zero Interval[T]
	return zero, false
}

// Index returns the sorted position of the interval last returned by Next,
// or -1 if Next has not returned one.
func (it *Iter[T]) Index() int {
	return it.last
}

// Collect drains the iterator into a slice.
func (it *Iter[T]) Collect() []Interval[T] {
	var ivs []Interval[T]
	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
		ivs = append(ivs, iv)
	}
	return ivs
}

// Count drains the iterator, returning the number of intervals it yielded.
func (it *Iter[T]) Count() int {
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}
