// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series samples a distribution's PDF and CDF over its
// plotting bounds and exports the result as CSV.
package series // import "github.com/devicereg/distengine/series"

import (
	"errors"
	"fmt"
	"math"

	"github.com/devicereg/distengine/stats"
	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the number of points Generate is typically asked
// for.
const DefaultSamples = 101

var (
	// ErrSampleCount is returned by Generate for fewer than two
	// samples, since a series always includes both endpoints.
	ErrSampleCount = errors.New("series: need at least 2 samples")

	// ErrDegenerateDomain is returned by Generate when the model's
	// bounds are not finite, or are too close together to hold the
	// requested number of distinct points, or the model is not
	// finite somewhere in them.
	ErrDegenerateDomain = errors.New("series: degenerate domain")
)

// A Point is one sample of a distribution.
type Point struct {
	X   float64
	PDF float64
	CDF float64
}

// A Series is a sequence of points evenly spaced across the bounds of
// a distribution, in increasing order of X.
type Series struct {
	Family stats.Family
	Points []Point
}

// Domain returns the X values of the first and last points.
func (s *Series) Domain() (lo, hi float64) {
	if len(s.Points) == 0 {
		return math.NaN(), math.NaN()
	}
	return s.Points[0].X, s.Points[len(s.Points)-1].X
}

// Generate samples m's PDF and CDF at n evenly spaced points spanning
// m.Bounds(), including both bounds.
//
// The result has exactly n points, strictly increasing X, and only
// finite values. If that cannot be achieved, Generate returns an error
// wrapping ErrDegenerateDomain rather than a partial series. If m is
// invalid, Generate returns its *stats.InvalidParameterError. A nil m
// is a degenerate domain.
func Generate(m stats.Model, n int) (*Series, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrDegenerateDomain)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrSampleCount, n)
	}

	lo, hi := m.Bounds()
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: %v has bounds [%v, %v]", ErrDegenerateDomain, m, lo, hi)
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	// Span can round the last point; pin it.
	xs[n-1] = hi
	for i := 1; i < n; i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: bounds [%v, %v] of %v too narrow for %d samples", ErrDegenerateDomain, lo, hi, m, n)
		}
	}

	pdfs, cdfs := m.PDFEach(xs), m.CDFEach(xs)
	pts := make([]Point, n)
	for i, x := range xs {
		p := Point{X: x, PDF: pdfs[i], CDF: cdfs[i]}
		if !finite(p.PDF) || !finite(p.CDF) {
			return nil, fmt.Errorf("%w: %v is not finite at x=%v", ErrDegenerateDomain, m, x)
		}
		pts[i] = p
	}
	return &Series{Family: m.Family(), Points: pts}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// A Result is a sampled series together with the descriptive
// statistics of the model it was sampled from.
type Result struct {
	Series  *Series
	Summary stats.Summary
}

// Evaluate returns the series of n samples of m and m's summary
// statistics. Nothing is cached: each call recomputes both.
func Evaluate(m stats.Model, n int) (Result, error) {
	s, err := Generate(m, n)
	if err != nil {
		return Result{}, err
	}
	return Result{Series: s, Summary: stats.Describe(m)}, nil
}
