// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Lanczos approximation parameters for g=7, n=9. See Godfrey, P.
// (2001). "A note on the computation of the convergent Lanczos
// complex Gamma approximation".
const lanczosG = 7

var lanczosCoef = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// lanczos returns the Lanczos series A(x) and the shifted argument
// t = x + g - 1/2, such that
//
//	Γ(x) = sqrt(2π) t^(x-1/2) e^-t A(x)
//
// x must be >= 0.5.
func lanczos(x float64) (a, t float64) {
	x -= 1
	a = lanczosCoef[0]
	for i := 1; i < len(lanczosCoef); i++ {
		a += lanczosCoef[i] / (x + float64(i))
	}
	t = x + lanczosG + 0.5
	return
}

// Gamma returns the gamma function Γ(x).
//
// For x >= 0.5, Gamma uses the Lanczos approximation. For x < 0.5, it
// uses the reflection formula
//
//	Γ(x) = π / (sin(πx) Γ(1-x))
//
// Γ has poles at zero and the negative integers. At those points,
// and at -Inf, Gamma returns NaN rather than dividing by zero.
// Gamma(+Inf) is +Inf and Gamma(NaN) is NaN. Gamma overflows to +Inf
// for x above about 171.6.
func Gamma(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1):
		return nan
	case math.IsInf(x, 1):
		return inf
	case x < 0.5:
		if x == math.Floor(x) {
			return nan
		}
		return math.Pi / (math.Sin(math.Pi*x) * Gamma(1-x))
	}

	a, t := lanczos(x)
	// Split t^(x-1/2) in two so the power doesn't overflow before
	// e^-t brings it back down.
	p := math.Pow(t, (x-0.5)/2)
	return sqrt2Pi * p * (p * math.Exp(-t)) * a
}

// LogGamma returns ln|Γ(x)|.
//
// It uses the same Lanczos series as Gamma, evaluated in log space,
// so it stays finite well beyond the point where Gamma overflows. At
// the poles of Γ (zero and the negative integers) it returns +Inf.
func LogGamma(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case math.IsInf(x, 0):
		return inf
	case x < 0.5:
		if x == math.Floor(x) {
			return inf
		}
		return math.Log(math.Pi/math.Abs(math.Sin(math.Pi*x))) - LogGamma(1-x)
	}

	a, t := lanczos(x)
	return logSqrt2Pi + (x-0.5)*math.Log(t) - t + math.Log(a)
}
