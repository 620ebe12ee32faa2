package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/akmistry/lapper"
)

var (
	ErrResultMismatch = errors.New("bench: find and seek results differ")
)

type Result struct {
	Intervals int
	MaxLen    int

	// Total overlaps found over all queries.
	FindTotal int
	SeekTotal int

	// Number of stored intervals returned by at least one query.
	Distinct uint

	BuildTime time.Duration
	FindTime  time.Duration
	SeekTime  time.Duration
}

func perOp(d time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return d / time.Duration(n)
}

// Run builds a Lapper from ivs, and queries it with every interval in ivs.
// Queries are first answered with Find in input order, and then with Seek,
// walking the stored intervals in sorted order with a single cursor. Both
// passes ask the same questions, so their totals must match.
func Run(ivs []lapper.Interval[int]) (Result, error) {
	res := Result{Intervals: len(ivs)}

	buildStart := time.Now()
	l := lapper.New(ivs)
	res.BuildTime = time.Since(buildStart)
	res.MaxLen = l.MaxLen()
	slog.Info("bench.Run: build done",
		"intervals", res.Intervals,
		"maxLen", res.MaxLen,
		"buildTime", res.BuildTime)

	findStart := time.Now()
	for _, q := range ivs {
		res.FindTotal += l.Find(q.Start, q.Stop).Count()
	}
	res.FindTime = time.Since(findStart)
	slog.Info("bench.Run: find done",
		"total", res.FindTotal,
		"findTime", res.FindTime,
		"findTimePerQuery", perOp(res.FindTime, len(ivs)))

	hits := bitset.New(uint(l.Len()))
	var cursor lapper.Cursor
	seekStart := time.Now()
	l.Iterate(func(_ int, q lapper.Interval[int]) bool {
		it := l.Seek(q.Start, q.Stop, &cursor)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			hits.Set(uint(it.Index()))
			res.SeekTotal++
		}
		return true
	})
	res.SeekTime = time.Since(seekStart)
	res.Distinct = hits.Count()
	slog.Info("bench.Run: seek done",
		"total", res.SeekTotal,
		"distinct", res.Distinct,
		"seekTime", res.SeekTime,
		"seekTimePerQuery", perOp(res.SeekTime, l.Len()))

	if res.FindTotal != res.SeekTotal {
		return res, fmt.Errorf("%w: find %d, seek %d", ErrResultMismatch, res.FindTotal, res.SeekTotal)
	}
	return res, nil
}
