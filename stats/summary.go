// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Summary holds the descriptive statistics of a distribution,
// computed in closed form from its parameters.
type Summary struct {
	Mean     float64
	Median   float64
	Mode     float64
	Variance float64
	StdDev   float64
}

// Describe returns the descriptive statistics of m.
func Describe(m Model) Summary {
	return Summary{
		Mean:     m.Mean(),
		Median:   m.Median(),
		Mode:     m.Mode(),
		Variance: m.Variance(),
		StdDev:   m.StdDev(),
	}
}
