// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/devicereg/distengine/stats"
)

// ErrMalformedCSV is returned by ReadCSV for input that is not a
// series export.
var ErrMalformedCSV = errors.New("series: malformed CSV")

var csvHeader = []string{"x", "PDF", "CDF"}

// formatFloat returns the shortest representation of v that parses
// back to exactly v. It may use exponent notation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes s to w as CSV: a header line "x,PDF,CDF" followed
// by one line per point.
func (s *Series) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	row := make([]string, len(csvHeader))
	for _, p := range s.Points {
		row[0], row[1], row[2] = formatFloat(p.X), formatFloat(p.PDF), formatFloat(p.CDF)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV returns s in the format written by WriteCSV.
func (s *Series) ExportCSV() string {
	var b strings.Builder
	// Writes to a strings.Builder don't fail.
	s.WriteCSV(&b)
	return b.String()
}

// ReadCSV parses points written by WriteCSV.
func ReadCSV(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.ReuseRecord = true

	rec, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedCSV)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	if !slices.Equal(rec, csvHeader) {
		return nil, fmt.Errorf("%w: header %q, want %q", ErrMalformedCSV, rec, csvHeader)
	}

	var pts []Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}
		var vals [3]float64
		for i, field := range rec {
			vals[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line, err)
			}
		}
		pts = append(pts, Point{X: vals[0], PDF: vals[1], CDF: vals[2]})
	}
	return pts, nil
}

// FileName returns the conventional export file name for a series of
// family f exported at time t, such as
// "weibull-distribution-2026-03-01.csv".
func FileName(f stats.Family, t time.Time) string {
	return fmt.Sprintf("%v-distribution-%s.csv", f, t.Format(time.DateOnly))
}
