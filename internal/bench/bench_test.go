package bench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akmistry/lapper"
	"github.com/akmistry/lapper/internal/workload"
)

func TestRun(t *testing.T) {
	r := require.New(t)
	ivs := workload.Generate(rand.New(rand.NewSource(5)),
		workload.Params{N: 20000, RangeMax: 5000000, MaxLengthPower: 3})

	res, err := Run(ivs)
	r.NoError(err)
	r.Equal(20000, res.Intervals)
	r.Equal(res.FindTotal, res.SeekTotal)
	// Every interval overlaps at least itself.
	r.GreaterOrEqual(res.FindTotal, len(ivs))
	r.EqualValues(len(ivs), res.Distinct)
	r.LessOrEqual(res.MaxLen, 1000)
	r.GreaterOrEqual(res.MaxLen, 333)
}

func TestRun_Small(t *testing.T) {
	r := require.New(t)
	ivs := []lapper.Interval[int]{
		{Start: 0, Stop: 10},
		{Start: 5, Stop: 15},
		{Start: 20, Stop: 30},
		// Empty intervals match nothing, not even themselves.
		{Start: 25, Stop: 25},
	}

	res, err := Run(ivs)
	r.NoError(err)
	// [0,10) and [5,15) match each other and themselves, [20,30) itself.
	r.Equal(5, res.FindTotal)
	r.Equal(5, res.SeekTotal)
	r.EqualValues(3, res.Distinct)
	r.Equal(10, res.MaxLen)
}

func TestRun_Empty(t *testing.T) {
	res, err := Run(nil)
	require.NoError(t, err)
	require.Equal(t, Result{BuildTime: res.BuildTime, FindTime: res.FindTime, SeekTime: res.SeekTime}, res)
}
