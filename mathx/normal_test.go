// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormalCDF(t *testing.T) {
	if p := NormalCDF(0); math.Abs(p-0.5) > 1e-6 {
		t.Errorf("want NormalCDF(0)≅0.5, got %v", p)
	}
	if p := NormalCDF(math.Inf(1)); p != 1 {
		t.Errorf("want NormalCDF(+Inf)=1, got %v", p)
	}
	if p := NormalCDF(math.Inf(-1)); p != 0 {
		t.Errorf("want NormalCDF(-Inf)=0, got %v", p)
	}
	if !math.IsNaN(NormalCDF(math.NaN())) {
		t.Errorf("want NormalCDF(NaN)=NaN")
	}

	// Compare against the exact erfc form and gonum.
	for z := -10.0; z <= 10; z += 0.01 {
		want := 0.5 * math.Erfc(-z/math.Sqrt2)
		got := NormalCDF(z)
		if math.Abs(want-got) > 1e-7 {
			t.Errorf("want %s≅%v, got %v", label("NormalCDF", z), want, got)
		}
		if g := distuv.UnitNormal.CDF(z); math.Abs(g-got) > 1e-7 {
			t.Errorf("%s=%v differs from distuv %v", label("NormalCDF", z), got, g)
		}
	}
}

func TestNormalCDFShape(t *testing.T) {
	prev := 0.0
	for z := -40.0; z <= 40; z += 0.001 {
		p := NormalCDF(z)
		if p < 0 || p > 1 {
			t.Fatalf("%s=%v outside [0,1]", label("NormalCDF", z), p)
		}
		if p < prev {
			t.Fatalf("NormalCDF decreases at %v: %v < %v", z, p, prev)
		}
		prev = p

		if d := math.Abs(NormalCDF(-z) - (1 - p)); d > 1e-15 {
			t.Fatalf("NormalCDF not antisymmetric at %v: off by %g", z, d)
		}
	}
}
