// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with rate parameter
// Rate (λ). Its mean is 1/Rate.
type ExponentialDist struct {
	Rate float64
}

func (d ExponentialDist) Family() Family { return Exponential }

func (d ExponentialDist) Params() map[string]float64 {
	return map[string]float64{ParamRate: d.Rate}
}

func (d ExponentialDist) Validate() error {
	return checkPositive(Exponential, ParamRate, d.Rate)
}

func (d ExponentialDist) String() string { return paramString(d) }

func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Rate * math.Exp(-d.Rate*x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.Rate * x)
}

func (d ExponentialDist) InvCDF(y float64) float64 {
	if !(y >= 0 && y <= 1) {
		return nan
	} else if y == 1 {
		return inf
	}
	return -math.Log1p(-y) / d.Rate
}

// Bounds returns [0, 5/Rate].
func (d ExponentialDist) Bounds() (float64, float64) {
	return 0, 5 / d.Rate
}

func (d ExponentialDist) PDFEach(xs []float64) []float64    { return each(d.PDF, xs) }
func (d ExponentialDist) CDFEach(xs []float64) []float64    { return each(d.CDF, xs) }
func (d ExponentialDist) InvCDFEach(ys []float64) []float64 { return each(d.InvCDF, ys) }

func (d ExponentialDist) Mean() float64     { return 1 / d.Rate }
func (d ExponentialDist) Median() float64   { return math.Ln2 / d.Rate }
func (d ExponentialDist) Mode() float64     { return 0 }
func (d ExponentialDist) Variance() float64 { return 1 / (d.Rate * d.Rate) }
func (d ExponentialDist) StdDev() float64   { return 1 / d.Rate }
