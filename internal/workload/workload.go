package workload

import (
	"math"
	"math/rand"

	"github.com/akmistry/lapper"
)

const (
	DefaultCount          = 200_000
	DefaultRangeMax       = 50_000_000
	DefaultMaxLengthPower = 3
)

type Params struct {
	// Number of intervals.
	N int
	// Interval starts are uniform in [0, RangeMax].
	RangeMax int
	// Interval lengths are uniform in [10^MaxLengthPower / 3, 10^MaxLengthPower].
	MaxLengthPower int
}

func (p *Params) setDefaults() {
	if p.N == 0 {
		p.N = DefaultCount
	}
	if p.RangeMax == 0 {
		p.RangeMax = DefaultRangeMax
	}
	if p.MaxLengthPower == 0 {
		p.MaxLengthPower = DefaultMaxLengthPower
	}
}

// Generate returns random intervals, all with value 0. Zero fields of p take
// their defaults.
func Generate(rng *rand.Rand, p Params) []lapper.Interval[int] {
	p.setDefaults()
	if p.N < 0 || p.RangeMax < 0 || p.MaxLengthPower < 0 {
		panic("workload.Generate: negative params")
	}

	sizeMax := int(math.Pow10(p.MaxLengthPower))
	sizeMin := sizeMax / 3

	ivs := make([]lapper.Interval[int], p.N)
	for i := range ivs {
		start := rng.Intn(p.RangeMax + 1)
		ivs[i] = lapper.Interval[int]{
			Start: start,
			Stop:  start + sizeMin + rng.Intn(sizeMax-sizeMin+1),
		}
	}
	return ivs
}
