// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/devicereg/distengine/series"
)

const (
	plotRows  = 21
	plotWidth = 60
)

// FprintPDF prints s's PDF as a horizontal bar chart, one row per
// point, scaled so the largest density fills plotWidth columns.
func FprintPDF(w io.Writer, s *series.Series) error {
	var peak float64
	for _, p := range s.Points {
		if p.PDF > peak {
			peak = p.PDF
		}
	}
	for _, p := range s.Points {
		n := 0
		if peak > 0 {
			n = int(p.PDF/peak*plotWidth + 0.5)
		}
		if _, err := fmt.Fprintf(w, "%10.4g %s\n", p.X, strings.Repeat("*", n)); err != nil {
			return err
		}
	}
	return nil
}
