package lapper

import (
	"fmt"
	"math"
)

// Interval is the half-open range [Start, Stop) carrying an arbitrary payload.
// Ordering and equality only consider Start and Stop.
type Interval[T any] struct {
	Start, Stop int
	Val         T
}

// Len returns Stop - Start, clamped to the range of int.
func (i Interval[T]) Len() int {
	switch {
	case i.Stop > i.Start && i.Start < 0 && i.Stop > math.MaxInt+i.Start:
		return math.MaxInt
	case i.Stop < i.Start && i.Start > 0 && i.Stop < math.MinInt+i.Start:
		return math.MinInt
	}
	return i.Stop - i.Start
}

// span is the exact length of a non-empty interval, and 0 for an empty one.
// Unlike Len, it cannot overflow.
func (i Interval[T]) span() uint {
	if i.empty() {
		return 0
	}
	return uint(i.Stop) - uint(i.Start)
}

func (i Interval[T]) empty() bool {
	return i.Stop <= i.Start
}

// Overlap reports whether i and other share at least one position. Touching
// endpoints do not overlap, and an empty interval overlaps nothing.
func (i Interval[T]) Overlap(other Interval[T]) bool {
	return i.OverlapRange(other.Start, other.Stop)
}

// OverlapRange is Overlap against the raw range [start, stop).
func (i Interval[T]) OverlapRange(start, stop int) bool {
	if i.empty() || stop <= start {
		return false
	}
	return i.Start < stop && i.Stop > start
}

// Less orders by Start, then Stop.
func (i Interval[T]) Less(other Interval[T]) bool {
	return i.Start < other.Start || (i.Start == other.Start && i.Stop < other.Stop)
}

// Equal compares bounds only. Payloads are ignored.
func (i Interval[T]) Equal(other Interval[T]) bool {
	return i.Start == other.Start && i.Stop == other.Stop
}

// Compare returns -1, 0 or 1 as i is before, equal to or after other.
func (i Interval[T]) Compare(other Interval[T]) int {
	return Compare(i, other)
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("Interval(%d, %d, %v)", i.Start, i.Stop, i.Val)
}

// Compare orders intervals by Start, then Stop. Suitable for slices.SortFunc.
func Compare[T any](a, b Interval[T]) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	case a.Stop < b.Stop:
		return -1
	case a.Stop > b.Stop:
		return 1
	}
	return 0
}
