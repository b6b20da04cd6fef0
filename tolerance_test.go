package bde

import "testing"

func TestToleranceComparatorEqual(t *testing.T) {
	tc := DefaultTolerance()
	cases := []struct {
		a, b float64
		want bool
	}{
		{1.0, 1.0, true},
		{1.0, 1.0 + 1e-12, true},
		{1.0, 1.1, false},
		{0.0, 0.0, true},
		{1e10, 1e10 + 1e-3, true},
	}
	for _, c := range cases {
		if got := tc.Equal(c.a, c.b); got != c.want {
			t.Errorf("Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestToleranceComparatorLess(t *testing.T) {
	tc := DefaultTolerance()
	if tc.Less(1.0, 1.0+1e-12) {
		t.Error("values within tolerance should not be Less")
	}
	if !tc.Less(1.0, 2.0) {
		t.Error("1.0 should be Less than 2.0")
	}
}
