package lapper_test

import (
	"math"
	"slices"
	"testing"

	"github.com/akmistry/lapper"
)

type iv = lapper.Interval[int]

func TestInterval_Overlap(t *testing.T) {
	tests := []struct {
		a, b   iv
		expect bool
	}{
		{iv{Start: 10, Stop: 20}, iv{Start: 15, Stop: 25}, true},
		{iv{Start: 10, Stop: 20}, iv{Start: 0, Stop: 11}, true},
		{iv{Start: 10, Stop: 20}, iv{Start: 12, Stop: 13}, true},
		{iv{Start: 10, Stop: 20}, iv{Start: 0, Stop: 30}, true},
		{iv{Start: 10, Stop: 20}, iv{Start: 10, Stop: 20}, true},
		{iv{Start: -20, Stop: -10}, iv{Start: -15, Stop: 5}, true},
		// Touching endpoints.
		{iv{Start: 10, Stop: 20}, iv{Start: 20, Stop: 30}, false},
		{iv{Start: 10, Stop: 20}, iv{Start: 0, Stop: 10}, false},
		{iv{Start: 10, Stop: 20}, iv{Start: 30, Stop: 40}, false},
		// Empty and inverted intervals.
		{iv{Start: 15, Stop: 15}, iv{Start: 10, Stop: 20}, false},
		{iv{Start: 18, Stop: 12}, iv{Start: 10, Stop: 20}, false},
		{iv{Start: 10, Stop: 20}, iv{Start: 17, Stop: 13}, false},
	}
	for _, tc := range tests {
		if got := tc.a.Overlap(tc.b); got != tc.expect {
			t.Errorf("%v.Overlap(%v) %v != %v", tc.a, tc.b, got, tc.expect)
		}
		if got := tc.b.Overlap(tc.a); got != tc.expect {
			t.Errorf("%v.Overlap(%v) %v != %v", tc.b, tc.a, got, tc.expect)
		}
		if got := tc.a.OverlapRange(tc.b.Start, tc.b.Stop); got != tc.expect {
			t.Errorf("%v.OverlapRange(%d, %d) %v != %v", tc.a, tc.b.Start, tc.b.Stop, got, tc.expect)
		}
	}
}

func TestInterval_Order(t *testing.T) {
	a := iv{Start: 1, Stop: 5, Val: 1}
	b := iv{Start: 1, Stop: 7, Val: 2}
	c := iv{Start: 2, Stop: 3, Val: 3}
	d := iv{Start: 1, Stop: 5, Val: 4}

	if !a.Less(b) || !b.Less(c) || !a.Less(c) {
		t.Errorf("Unexpected order of %v, %v, %v", a, b, c)
	}
	if c.Less(a) || b.Less(a) || a.Less(d) || d.Less(a) {
		t.Errorf("Unexpected reverse order of %v, %v, %v, %v", a, b, c, d)
	}
	if !a.Equal(d) {
		t.Errorf("%v should equal %v, payloads are ignored", a, d)
	}
	if a.Equal(b) {
		t.Errorf("%v should not equal %v", a, b)
	}
	if a.Compare(d) != 0 || a.Compare(b) != -1 || c.Compare(b) != 1 {
		t.Errorf("Unexpected Compare results %d, %d, %d", a.Compare(d), a.Compare(b), c.Compare(b))
	}

	ivs := []iv{c, b, a}
	slices.SortFunc(ivs, lapper.Compare[int])
	if ivs[0] != a || ivs[1] != b || ivs[2] != c {
		t.Errorf("Unexpected sort result %v", ivs)
	}
}

func TestInterval_String(t *testing.T) {
	s := lapper.Interval[string]{Start: 3, Stop: 9, Val: "x"}.String()
	if s != "Interval(3, 9, x)" {
		t.Errorf("String() %q != %q", s, "Interval(3, 9, x)")
	}
}

func TestInterval_Len(t *testing.T) {
	tests := []struct {
		i   iv
		exp int
	}{
		{iv{Start: 3, Stop: 9}, 6},
		{iv{Start: 9, Stop: 3}, -6},
		{iv{Start: -5, Stop: math.MaxInt - 5}, math.MaxInt},
		{iv{Start: math.MinInt, Stop: math.MaxInt}, math.MaxInt},
		{iv{Start: math.MaxInt, Stop: math.MinInt}, math.MinInt},
		{iv{Start: math.MinInt, Stop: -1}, math.MaxInt},
	}
	for _, tc := range tests {
		if l := tc.i.Len(); l != tc.exp {
			t.Errorf("%v.Len() %d != %d", tc.i, l, tc.exp)
		}
	}
}

func TestCursor(t *testing.T) {
	var c lapper.Cursor
	if c.Get() != 0 {
		t.Errorf("zero Cursor %d != 0", c.Get())
	}
	c.Inc()
	c.Inc()
	if c.Get() != 2 {
		t.Errorf("Cursor after Inc() %d != 2", c.Get())
	}
	c.Set(17)
	if c.Get() != 17 || c.String() != "Cursor(17)" {
		t.Errorf("Cursor after Set(17) %v", &c)
	}
	if nc := lapper.NewCursor(5); nc.Get() != 5 {
		t.Errorf("NewCursor(5) %d != 5", nc.Get())
	}
}
