// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devicereg/distengine/series"
	"github.com/devicereg/distengine/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// now is the clock used to name exported files.
var now = time.Now

func (a *app) familiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List distribution families and their effective defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, f := range stats.Families() {
				m, err := a.cfg.Model(f, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-12s %-14s %v\n", f, strings.Join(f.ParamNames(), ","), m)
			}
			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	var (
		family string
		params map[string]string
		plot   bool
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print summary statistics and percentiles of a distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.model(family, params)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			s := stats.Describe(m)
			lo, hi := m.Bounds()

			fmt.Fprintf(w, "%v\n", m)
			fmt.Fprintf(w, "mean %.6g  median %.6g  mode %.6g\n", s.Mean, s.Median, s.Mode)
			fmt.Fprintf(w, "variance %.6g  std dev %.6g\n", s.Variance, s.StdDev)
			fmt.Fprintf(w, "domain [%.6g, %.6g]\n", lo, hi)
			fmt.Fprintln(w)

			// Quartiles and tails.
			labels := map[int]string{50: "median"}
			ps := []int{1, 5, 25, 50, 75, 95, 99}
			ys := make([]float64, len(ps))
			for i, p := range ps {
				ys[i] = float64(p) / 100
			}
			for i, x := range m.InvCDFEach(ys) {
				label, ok := labels[ps[i]]
				if !ok {
					label = fmt.Sprintf("%d%%ile", ps[i])
				}
				fmt.Fprintf(w, "%8s %.6g\n", label, x)
			}

			if !plot {
				return nil
			}
			fmt.Fprintln(w)
			ser, err := series.Generate(m, plotRows)
			if err != nil {
				return err
			}
			return FprintPDF(w, ser)
		},
	}
	addModelFlags(cmd, &family, &params)
	cmd.Flags().BoolVar(&plot, "plot", true, "draw the PDF")
	return cmd
}

func (a *app) seriesCmd() *cobra.Command {
	var (
		family  string
		params  map[string]string
		samples int
		output  string
		export  bool
	)
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Sample a distribution's PDF and CDF as CSV",
		Long: `series samples the PDF and CDF at evenly spaced points across the
distribution's plotting domain and writes them as CSV with the header
x,PDF,CDF. Output goes to stdout unless -o or --export is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.model(family, params)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("samples") {
				samples = a.cfg.Samples
			}
			res, err := series.Evaluate(m, samples)
			if err != nil {
				return err
			}
			lo, hi := res.Series.Domain()
			a.log.Info("generated series",
				zap.String("model", fmt.Sprint(m)),
				zap.Int("samples", samples),
				zap.Float64("lo", lo),
				zap.Float64("hi", hi),
				zap.Float64("mean", res.Summary.Mean),
				zap.Float64("stddev", res.Summary.StdDev))

			if export {
				output = filepath.Join(a.cfg.OutputDir, series.FileName(m.Family(), now()))
			}
			if output == "" {
				return res.Series.WriteCSV(cmd.OutOrStdout())
			}
			if err := writeFile(output, res.Series); err != nil {
				return err
			}
			a.log.Info("exported series", zap.String("path", output))
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	addModelFlags(cmd, &family, &params)
	cmd.Flags().IntVarP(&samples, "samples", "n", series.DefaultSamples, "number of `points` (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to `file`")
	cmd.Flags().BoolVar(&export, "export", false, "write CSV to the conventionally named file in the output directory")
	cmd.MarkFlagsMutuallyExclusive("output", "export")
	return cmd
}

func writeFile(path string, s *series.Series) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.WriteCSV(f)
}
