// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/devicereg/distengine/mathx"
)

// WeibullDist is a Weibull distribution with shape K and scale
// Lambda.
//
// With K = 1 this is the exponential distribution with rate 1/Lambda.
type WeibullDist struct {
	K, Lambda float64
}

func (w WeibullDist) Family() Family { return Weibull }

func (w WeibullDist) Params() map[string]float64 {
	return map[string]float64{ParamShape: w.K, ParamScale: w.Lambda}
}

func (w WeibullDist) Validate() error {
	if err := checkPositive(Weibull, ParamShape, w.K); err != nil {
		return err
	}
	return checkPositive(Weibull, ParamScale, w.Lambda)
}

func (w WeibullDist) String() string { return paramString(w) }

// PDF returns the Weibull density at x. For K < 1 the density is
// unbounded at 0. PDF reports 0 at that point, like GammaDist does.
func (w WeibullDist) PDF(x float64) float64 {
	if x < 0 || x == 0 && w.K < 1 || math.IsInf(x, 1) {
		return 0
	}
	z := x / w.Lambda
	zk := math.Pow(z, w.K)
	if math.IsInf(zk, 1) {
		// z^(K-1) may overflow too, while exp(-z^K) is 0.
		return 0
	}
	return w.K / w.Lambda * (math.Pow(z, w.K-1) * math.Exp(-zk))
}

func (w WeibullDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/w.Lambda, w.K))
}

func (w WeibullDist) InvCDF(y float64) float64 {
	if !(y >= 0 && y <= 1) {
		return nan
	} else if y == 1 {
		return inf
	}
	return w.Lambda * math.Pow(-math.Log1p(-y), 1/w.K)
}

// Bounds returns [0, Lambda·5^(1/K)]. The upper bound is the point
// whose CDF is 1-e^-5, which for K = 1 matches the bounds of the
// equivalent ExponentialDist.
func (w WeibullDist) Bounds() (float64, float64) {
	return 0, w.Lambda * math.Pow(5, 1/w.K)
}

func (w WeibullDist) PDFEach(xs []float64) []float64    { return each(w.PDF, xs) }
func (w WeibullDist) CDFEach(xs []float64) []float64    { return each(w.CDF, xs) }
func (w WeibullDist) InvCDFEach(ys []float64) []float64 { return each(w.InvCDF, ys) }

func (w WeibullDist) Mean() float64 {
	return w.Lambda * mathx.Gamma(1+1/w.K)
}

func (w WeibullDist) Median() float64 {
	return w.Lambda * math.Pow(math.Ln2, 1/w.K)
}

func (w WeibullDist) Mode() float64 {
	if w.K <= 1 {
		return 0
	}
	return w.Lambda * math.Pow((w.K-1)/w.K, 1/w.K)
}

// Variance returns Lambda²·[Γ(1+2/K) - Γ(1+1/K)²], written as
// Lambda²·Γ(1+2/K)·(1 - exp(d)) with d = 2lnΓ(1+1/K) - lnΓ(1+2/K).
// For small K this avoids Inf-Inf. For large K, d is of order 1/K²
// and is taken from its series rather than from a difference of
// LogGamma values.
func (w WeibullDist) Variance() float64 {
	eps := 1 / w.K
	g2 := mathx.LogGamma(1 + 2*eps)
	var d float64
	if eps <= weibullSeriesEps {
		d = lnGammaGap(eps)
	} else {
		d = 2*mathx.LogGamma(1+eps) - g2
	}
	v := w.Lambda * w.Lambda * math.Exp(g2) * -math.Expm1(d)
	if v < 0 {
		return 0
	}
	return v
}

func (w WeibullDist) StdDev() float64 {
	return math.Sqrt(w.Variance())
}

// weibullSeriesEps is the largest 1/K for which Variance uses
// lnGammaGap. At that point the series' omitted terms are below 1e-25
// relative.
const weibullSeriesEps = 0.01

// zeta holds ζ(n) for n = 2, 3, ...
var zeta = [...]float64{
	1.6449340668482264,
	1.2020569031595942,
	1.0823232337111382,
	1.0369277551433699,
	1.0173430619844491,
	1.0083492773819228,
	1.0040773561979443,
	1.0020083928260822,
	1.0009945751278181,
	1.0004941886041195,
	1.0002460865533080,
	1.0001227133475785,
}

// lnGammaGap returns 2lnΓ(1+e) - lnΓ(1+2e) for small e, from
//
//	lnΓ(1+e) = -γe + Σ_{n≥2} (-1)^n ζ(n) e^n / n
//
// The γ terms cancel, leaving Σ_{n≥2} (-1)^n ζ(n) (2-2^n) e^n / n.
func lnGammaGap(e float64) float64 {
	var sum float64
	for i := len(zeta) - 1; i >= 0; i-- {
		n := float64(i + 2)
		c := zeta[i] * (2 - math.Exp2(n)) / n
		if i%2 == 1 {
			c = -c
		}
		sum = sum*e + c
	}
	return sum * e * e
}
