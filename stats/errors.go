// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownFamily is returned when a family name or value
	// does not denote a supported family.
	ErrUnknownFamily = errors.New("stats: unknown distribution family")

	// ErrUnknownParam is returned when a parameter name does not
	// belong to the family it is applied to.
	ErrUnknownParam = errors.New("stats: unknown parameter")
)

// An InvalidParameterError reports a distribution parameter outside
// its domain, such as a non-positive scale.
type InvalidParameterError struct {
	Family Family
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("stats: invalid %v parameter %s=%v: %s", e.Family, e.Param, e.Value, e.Reason)
}

// checkPositive returns an error unless 0 < v < inf.
func checkPositive(f Family, name string, v float64) error {
	if v > 0 && !math.IsInf(v, 1) {
		return nil
	}
	return &InvalidParameterError{f, name, v, "must be positive and finite"}
}

func checkFinite(f Family, name string, v float64) error {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		return nil
	}
	return &InvalidParameterError{f, name, v, "must be finite"}
}
