// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the support.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. If y is outside [0, 1], InvCDF returns
	// NaN.
	InvCDF(y float64) float64

	// InvCDFEach returns InvCDF(ys[i]) for each i.
	InvCDFEach(ys []float64) []float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A Model is a distribution from one of the supported families,
// together with that family's parameters.
//
// The concrete types are NormalDist, ExponentialDist, WeibullDist and
// GammaDist. Evaluating a Model whose parameters fail Validate yields
// unspecified (typically NaN) results.
type Model interface {
	Dist

	// Family returns the family this model belongs to.
	Family() Family

	// Params returns the model's parameters keyed by the names in
	// Family().ParamNames().
	Params() map[string]float64

	// Validate returns an *InvalidParameterError if any
	// parameter is out of its domain.
	Validate() error

	Mean() float64
	Median() float64
	Mode() float64
	Variance() float64
	StdDev() float64
}

// each returns f(xs[i]) for each i.
func each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
