// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Family identifies a parametric distribution family.
type Family int

const (
	Normal Family = iota
	Exponential
	Weibull
	Gamma

	numFamilies
)

// Parameter names, as used by Family.New and Model.Params.
const (
	ParamMean   = "mean"
	ParamStdDev = "stddev"
	ParamRate   = "rate"
	ParamShape  = "shape"
	ParamScale  = "scale"
)

var familyNames = [...]string{
	Normal:      "normal",
	Exponential: "exponential",
	Weibull:     "weibull",
	Gamma:       "gamma",
}

// Families returns all supported families in declaration order.
func Families() []Family {
	fs := make([]Family, numFamilies)
	for i := range fs {
		fs[i] = Family(i)
	}
	return fs
}

// ParseFamily returns the family with the given name. Matching is
// case-insensitive.
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range Families() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFamily, name)
}

func (f Family) valid() bool {
	return f >= 0 && f < numFamilies
}

func (f Family) String() string {
	if !f.valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParamNames returns the names of f's parameters in display order.
func (f Family) ParamNames() []string {
	switch f {
	case Normal:
		return []string{ParamMean, ParamStdDev}
	case Exponential:
		return []string{ParamRate}
	case Weibull, Gamma:
		return []string{ParamShape, ParamScale}
	}
	return nil
}

// Default returns f with its default parameters. Selecting a new
// family starts from these.
func (f Family) Default() Model {
	switch f {
	case Normal:
		return NormalDist{Mu: 100, Sigma: 15}
	case Exponential:
		return ExponentialDist{Rate: 0.05}
	case Weibull:
		return WeibullDist{K: 1.5, Lambda: 100}
	case Gamma:
		return GammaDist{Alpha: 2, Theta: 10}
	}
	panic(fmt.Sprint("unknown family ", f))
}

// New returns a validated model of family f. It starts from
// f.Default() and overrides each parameter named in params.
//
// It returns an error wrapping ErrUnknownParam if params names a
// parameter f does not have, and an *InvalidParameterError if the
// resulting parameters are out of their domain.
func (f Family) New(params map[string]float64) (Model, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w %v", ErrUnknownFamily, f)
	}
	p := f.Default().Params()
	for _, name := range slices.Sorted(maps.Keys(params)) {
		if _, ok := p[name]; !ok {
			return nil, fmt.Errorf("%w %q for %v (want one of %s)",
				ErrUnknownParam, name, f, strings.Join(f.ParamNames(), ", "))
		}
		p[name] = params[name]
	}

	var m Model
	switch f {
	case Normal:
		m = NormalDist{Mu: p[ParamMean], Sigma: p[ParamStdDev]}
	case Exponential:
		m = ExponentialDist{Rate: p[ParamRate]}
	case Weibull:
		m = WeibullDist{K: p[ParamShape], Lambda: p[ParamScale]}
	case Gamma:
		m = GammaDist{Alpha: p[ParamShape], Theta: p[ParamScale]}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// paramString formats m as "family(name=value, ...)".
func paramString(m Model) string {
	var b strings.Builder
	b.WriteString(m.Family().String())
	b.WriteByte('(')
	p := m.Params()
	for i, name := range m.Family().ParamNames() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", name, p[name])
	}
	b.WriteByte(')')
	return b.String()
}
