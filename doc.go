// Package lapper answers "which intervals overlap [start, stop)?" over a
// fixed collection of half-open integer intervals.
//
// Intervals are kept in a sorted slice alongside the length of the longest
// interval. A query binary searches to start-maxLen, which is the furthest
// back an overlapping interval can begin, then scans forward until intervals
// start at or after the query stop. This is fast when interval lengths are
// similar, and degrades as a few very long intervals widen the search margin.
//
// Find answers queries in any order. Seek is for query streams whose starts
// never decrease: a caller-owned Cursor remembers where the previous query
// left off, so most queries skip the binary search entirely.
//
//	l := lapper.New([]lapper.Interval[string]{
//		{Start: 0, Stop: 5, Val: "a"},
//		{Start: 4, Stop: 8, Val: "b"},
//	})
//	it := l.Find(4, 7)
//	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
//		...
//	}
//
// A Lapper is immutable and safe for concurrent Find calls. A Cursor is not
// safe for concurrent use; give each sequential query stream its own.
package lapper

const Version = "0.9.5"
