// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/devicereg/distengine/mathx"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

func (n NormalDist) Family() Family { return Normal }

func (n NormalDist) Params() map[string]float64 {
	return map[string]float64{ParamMean: n.Mu, ParamStdDev: n.Sigma}
}

func (n NormalDist) Validate() error {
	if err := checkFinite(Normal, ParamMean, n.Mu); err != nil {
		return err
	}
	return checkPositive(Normal, ParamStdDev, n.Sigma)
}

func (n NormalDist) String() string { return paramString(n) }

func (n NormalDist) PDF(x float64) float64 {
	z := (x - n.Mu) / n.Sigma
	return math.Exp(-z*z/2) * (invSqrt2Pi / n.Sigma)
}

func (n NormalDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	c := invSqrt2Pi / n.Sigma
	for i, x := range xs {
		z := (x - n.Mu) / n.Sigma
		res[i] = math.Exp(-z*z/2) * c
	}
	return res
}

// CDF uses the mathx.NormalCDF approximation, so it is accurate to
// about 1e-7.
func (n NormalDist) CDF(x float64) float64 {
	return mathx.NormalCDF((x - n.Mu) / n.Sigma)
}

func (n NormalDist) InvCDF(y float64) float64 {
	if !(y >= 0 && y <= 1) {
		return nan
	}
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.Quantile(y)
}

// Bounds returns Mu ± 4 Sigma.
func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 4
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

func (n NormalDist) CDFEach(xs []float64) []float64    { return each(n.CDF, xs) }
func (n NormalDist) InvCDFEach(ys []float64) []float64 { return each(n.InvCDF, ys) }

func (n NormalDist) Mean() float64     { return n.Mu }
func (n NormalDist) Median() float64   { return n.Mu }
func (n NormalDist) Mode() float64     { return n.Mu }
func (n NormalDist) Variance() float64 { return n.Sigma * n.Sigma }
func (n NormalDist) StdDev() float64   { return n.Sigma }
