package testutil

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"

	"github.com/akmistry/lapper"
)

// BruteForce checks every stored interval of l against [start, stop), and
// returns the sorted indexes of the overlapping ones.
func BruteForce[T any](l *lapper.Lapper[T], start, stop int) *bitset.BitSet {
	bs := bitset.New(uint(l.Len()))
	l.Iterate(func(i int, iv lapper.Interval[T]) bool {
		if iv.OverlapRange(start, stop) {
			bs.Set(uint(i))
		}
		return true
	})
	return bs
}

// MatchSet drains it, returning the sorted indexes of the yielded intervals
// and the number yielded. A correct iterator never yields an index twice, so
// count should always equal the set size.
func MatchSet[T any](it *lapper.Iter[T], size int) (bs *bitset.BitSet, count int) {
	bs = bitset.New(uint(size))
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		bs.Set(uint(it.Index()))
		count++
	}
	return bs, count
}

// CheckFind compares Find(start, stop) against a brute force scan.
func CheckFind[T any](t *testing.T, l *lapper.Lapper[T], start, stop int) {
	t.Helper()

	exp := BruteForce(l, start, stop)
	got, count := MatchSet(l.Find(start, stop), l.Len())
	if !got.Equal(exp) {
		t.Errorf("Find(%d, %d) matched %v != expected %v", start, stop, got, exp)
	}
	if uint(count) != got.Count() {
		t.Errorf("Find(%d, %d) yielded %d intervals, %d distinct", start, stop, count, got.Count())
	}
}

// CheckSeek compares Seek(start, stop, cursor) against a brute force scan.
func CheckSeek[T any](t *testing.T, l *lapper.Lapper[T], start, stop int, cursor *lapper.Cursor) {
	t.Helper()

	before := cursor.Get()
	exp := BruteForce(l, start, stop)
	got, count := MatchSet(l.Seek(start, stop, cursor), l.Len())
	if !got.Equal(exp) {
		t.Errorf("Seek(%d, %d, Cursor(%d)) matched %v != expected %v",
			start, stop, before, got, exp)
	}
	if uint(count) != got.Count() {
		t.Errorf("Seek(%d, %d, Cursor(%d)) yielded %d intervals, %d distinct",
			start, stop, before, count, got.Count())
	}
}

// RandomIntervals returns n intervals starting in [0, rangeMax) with lengths
// in [0, maxLen].
func RandomIntervals(rng *rand.Rand, n, rangeMax, maxLen int) []lapper.Interval[int] {
	ivs := make([]lapper.Interval[int], n)
	for i := range ivs {
		start := rng.Intn(rangeMax)
		ivs[i] = lapper.Interval[int]{
			Start: start,
			Stop:  start + rng.Intn(maxLen+1),
			Val:   i,
		}
	}
	return ivs
}
