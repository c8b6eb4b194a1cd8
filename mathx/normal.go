// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Coefficients of Abramowitz and Stegun formula 26.2.17.
const (
	asP  = 0.2316419
	asB1 = 0.319381530
	asB2 = -0.356563782
	asB3 = 1.781477937
	asB4 = -1.821255978
	asB5 = 1.330274429
)

// NormalCDF returns P(Z <= z) for a standard normal variable Z.
//
// It uses the rational approximation of Abramowitz and Stegun (1964)
// formula 26.2.17, which has an absolute error below 7.5e-8. The upper
// tail Q(|z|) is computed once and reflected, so NormalCDF(-z) and
// 1-NormalCDF(z) agree to rounding error. The result is clamped to
// [0, 1].
//
// NormalCDF(NaN) is NaN.
func NormalCDF(z float64) float64 {
	if math.IsNaN(z) {
		return nan
	}

	az := math.Abs(z)
	t := 1 / (1 + asP*az)
	poly := t * (asB1 + t*(asB2+t*(asB3+t*(asB4+t*asB5))))
	q := invSqrt2Pi * math.Exp(-az*az/2) * poly

	p := q
	if z >= 0 {
		p = 1 - q
	}
	return math.Max(0, math.Min(1, p))
}
