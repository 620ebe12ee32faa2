package lapper

import (
	"math"
	"slices"
)

// Bit pattern of math.MinInt.
const signBit = ^uint(math.MaxInt)

// Lapper is an immutable set of intervals, sorted for overlap queries.
type Lapper[T any] struct {
	intervals []Interval[T]

	// Length of the longest interval. Bounds how far before a query start an
	// overlapping interval may begin. Unsigned, since an interval may span
	// more than math.MaxInt.
	maxLen uint
}

// New builds a Lapper from a copy of intervals. The input slice is not
// modified. Intervals with equal bounds may end up in either order.
func New[T any](intervals []Interval[T]) *Lapper[T] {
	ivs := slices.Clone(intervals)
	slices.SortFunc(ivs, Compare[T])

	l := &Lapper[T]{
		intervals: ivs,
		maxLen:    findMaxLen(ivs),
	}
	return l
}

func findMaxLen[T any](ivs []Interval[T]) uint {
	var maxLen uint
	for _, iv := range ivs {
		maxLen = max(maxLen, iv.span())
	}
	return maxLen
}

// LowerBound returns the smallest index i such that intervals[i].Start >=
// target, or len(intervals) if there is none. Only Start is compared.
// intervals must be sorted by Start.
func LowerBound[T any](target int, intervals []Interval[T]) int {
	size := len(intervals)
	low := 0
	for size > 0 {
		half := size / 2
		otherHalf := size - half
		if intervals[low+half].Start < target {
			low += otherHalf
		}
		size = half
	}
	return low
}

// Len returns the number of stored intervals.
func (l *Lapper[T]) Len() int {
	return len(l.intervals)
}

// MaxLen returns the length of the longest interval, clamped to math.MaxInt.
func (l *Lapper[T]) MaxLen() int {
	return int(min(l.maxLen, math.MaxInt))
}

// At returns the i'th interval in sorted order.
func (l *Lapper[T]) At(i int) Interval[T] {
	return l.intervals[i]
}

// Intervals returns a copy of the stored intervals in sorted order.
func (l *Lapper[T]) Intervals() []Interval[T] {
	return slices.Clone(l.intervals)
}

// Iterate calls iter for every stored interval, in sorted order, along with
// its index. Iteration stops when iter returns false.
func (l *Lapper[T]) Iterate(iter func(int, Interval[T]) bool) {
	for i, iv := range l.intervals {
		if !iter(i, iv) {
			return
		}
	}
}

// minStart returns start - maxLen, saturating at math.MinInt. No interval
// starting before it can overlap a query beginning at start.
func (l *Lapper[T]) minStart(start int) int {
	// Distance from math.MinInt up to start.
	headroom := uint(start) - signBit
	if l.maxLen > headroom {
		return math.MinInt
	}
	return int(uint(start) - l.maxLen)
}

func (l *Lapper[T]) searchStart(start int) int {
	return LowerBound(l.minStart(start), l.intervals)
}

// Find returns an iterator over all intervals overlapping [start, stop), in
// sorted order. Each call is independent of any other query.
func (l *Lapper[T]) Find(start, stop int) *Iter[T] {
	it := &Iter[T]{
		intervals: l.intervals,
		start:     start,
		stop:      stop,
		last:      -1,
	}
	if stop <= start {
		it.done = true
		return it
	}
	it.pos = l.searchStart(start)
	return it
}

// Seek is like Find, but resumes from cursor rather than binary searching.
// Successive calls sharing a cursor must have non-decreasing start values.
// Going backwards is detected on a best-effort basis, in which case the cursor
// is repositioned with a binary search.
//
// The cursor is moved to where this query's scan begins, which is the
// earliest position any later query with a start >= this start needs. It
// is not advanced while the returned iterator is consumed. A nil cursor
// behaves like a fresh one.
func (l *Lapper[T]) Seek(start, stop int, cursor *Cursor) *Iter[T] {
	if cursor == nil {
		cursor = new(Cursor)
	}
	it := &Iter[T]{
		intervals: l.intervals,
		start:     start,
		stop:      stop,
		last:      -1,
	}
	if stop <= start {
		it.done = true
		return it
	}

	n := len(l.intervals)
	c := cursor.Get()
	if c <= 0 || c >= n || l.intervals[c].Start > start {
		cursor.Set(l.searchStart(start))
	}

	// Skip intervals which end before this query could begin.
	minStart := l.minStart(start)
	for cursor.Get()+1 < n && l.intervals[cursor.Get()+1].Start < minStart {
		cursor.Inc()
	}
	it.pos = cursor.Get()
	return it
}
