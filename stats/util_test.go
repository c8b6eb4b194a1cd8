// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqRel reports whether got is within relative tolerance tol of
// expect (absolute, if expect is 0).
func aeqRel(expect, got, tol float64) bool {
	if expect == got {
		return true
	}
	if expect == 0 {
		return math.Abs(got) < tol
	}
	return math.Abs((expect-got)/expect) < tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// testCDFShape checks that dist's CDF is monotonically non-decreasing
// and within [0, 1] across its bounds, and 0 below its support.
func testCDFShape(t *testing.T, name string, dist Dist) {
	t.Helper()
	lo, hi := dist.Bounds()
	if !(lo < hi) {
		t.Errorf("%s: bad bounds [%v, %v]", name, lo, hi)
		return
	}
	prev := 0.0
	const steps = 1000
	for i := 0; i <= steps; i++ {
		x := lo + (hi-lo)*float64(i)/steps
		y := dist.CDF(x)
		if y < 0 || y > 1 || math.IsNaN(y) {
			t.Errorf("%s.CDF(%v)=%v outside [0,1]", name, x, y)
		}
		if y < prev {
			t.Errorf("%s.CDF decreases at %v: %v < %v", name, x, y, prev)
		}
		prev = y
	}
}

// testInvCDF checks that dist.InvCDF inverts dist.CDF.
func testInvCDF(t *testing.T, name string, dist Dist, tol float64) {
	t.Helper()
	for _, y := range []float64{0.001, 0.05, 0.25, 0.5, 0.75, 0.95, 0.999} {
		x := dist.InvCDF(y)
		if got := dist.CDF(x); math.Abs(got-y) > tol {
			t.Errorf("%s.CDF(InvCDF(%v)=%v)=%v", name, y, x, got)
		}
	}
	for _, y := range []float64{-0.5, 1.5, nan} {
		if x := dist.InvCDF(y); !math.IsNaN(x) {
			t.Errorf("want %s.InvCDF(%v)=NaN, got %v", name, y, x)
		}
	}
}

func sname(d fmt.Stringer) string { return d.String() }
