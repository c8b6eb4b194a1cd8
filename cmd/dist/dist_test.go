// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devicereg/distengine/series"
	"github.com/devicereg/distengine/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFamilies(t *testing.T) {
	out, _, err := run(t, "families")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "normal(mean=100, stddev=15)")
	assert.Contains(t, lines[1], "exponential(rate=0.05)")
	assert.Contains(t, lines[2], "weibull(shape=1.5, scale=100)")
	assert.Contains(t, lines[3], "gamma(shape=2, scale=10)")

	path := writeConfig(t, "presets:\n  weibull:\n    shape: 2\n")
	out, _, err = run(t, "--config", path, "families")
	require.NoError(t, err)
	assert.Contains(t, out, "weibull(shape=2, scale=100)")
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", "-f", "normal", "--plot=false")
	require.NoError(t, err)
	assert.Contains(t, out, "normal(mean=100, stddev=15)\n")
	assert.Contains(t, out, "mean 100  median 100  mode 100\n")
	assert.Contains(t, out, "variance 225  std dev 15\n")
	assert.Contains(t, out, "domain [40, 160]\n")
	assert.Contains(t, out, "  median 100\n")
	assert.Contains(t, out, "  25%ile 89.8827\n")
	assert.NotContains(t, out, "*")

	out, _, err = run(t, "stats", "-f", "exponential", "-p", "rate=0.05", "--plot=false")
	require.NoError(t, err)
	assert.Contains(t, out, "mean 20  median 13.8629  mode 0\n")
	assert.Contains(t, out, "domain [0, 100]\n")
}

func TestStatsPlot(t *testing.T) {
	out, _, err := run(t, "stats", "-f", "normal")
	require.NoError(t, err)
	sections := strings.Split(strings.TrimSuffix(out, "\n"), "\n\n")
	rows := strings.Split(sections[len(sections)-1], "\n")
	require.Len(t, rows, plotRows)
	assert.Equal(t, "        40 ", rows[0])
	assert.Contains(t, out, "       100 "+strings.Repeat("*", plotWidth)+"\n")
}

func TestStatsErrors(t *testing.T) {
	_, _, err := run(t, "stats", "-f", "cauchy")
	assert.ErrorIs(t, err, stats.ErrUnknownFamily)

	_, _, err = run(t, "stats", "-f", "normal", "-p", "mean=abc")
	assert.Error(t, err)

	_, _, err = run(t, "stats", "-f", "normal", "-p", "rate=1")
	assert.ErrorIs(t, err, stats.ErrUnknownParam)

	_, _, err = run(t, "stats", "-f", "gamma", "-p", "shape=-1")
	var perr *stats.InvalidParameterError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, stats.ParamShape, perr.Param)
}

func TestSeriesStdout(t *testing.T) {
	out, stderr, err := run(t, "series", "-f", "normal", "-p", "mean=100,stddev=15", "-n", "5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "x,PDF,CDF\n"))

	pts, err := series.ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.Equal(t, 40.0, pts[0].X)
	assert.Equal(t, 100.0, pts[2].X)
	assert.Equal(t, 160.0, pts[4].X)
	assert.InDelta(t, 0.5, pts[2].CDF, 1e-6)

	assert.Contains(t, stderr, "generated series")
}

func TestSeriesSamplesFromConfig(t *testing.T) {
	path := writeConfig(t, "samples: 7\n")
	out, _, err := run(t, "--config", path, "series", "-f", "weibull")
	require.NoError(t, err)
	pts, err := series.ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, pts, 7)

	out, _, err = run(t, "--config", path, "series", "-f", "weibull", "-n", "3")
	require.NoError(t, err)
	pts, err = series.ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, pts, 3)
}

func TestSeriesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamma.csv")
	out, _, err := run(t, "series", "-f", "gamma", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	pts, err := series.ReadCSV(f)
	require.NoError(t, err)
	assert.Len(t, pts, series.DefaultSamples)
	assert.Equal(t, 0.0, pts[0].X)
}

func TestSeriesExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DISTCALC_OUTPUT_DIR", dir)
	saved := now
	now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = saved })

	out, _, err := run(t, "series", "-f", "exponential", "--export")
	require.NoError(t, err)
	want := filepath.Join(dir, "exponential-distribution-2026-03-01.csv")
	assert.Equal(t, want+"\n", out)
	assert.FileExists(t, want)
}

func TestSeriesErrors(t *testing.T) {
	_, _, err := run(t, "series", "-n", "1")
	assert.ErrorIs(t, err, series.ErrSampleCount)

	_, _, err = run(t, "series", "-o", "x.csv", "--export")
	assert.Error(t, err)

	_, _, err = run(t, "series", "-o", filepath.Join(t.TempDir(), "missing", "x.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dist.log")
	path := writeConfig(t, "log:\n  output: ["+logPath+"]\n")

	_, stderr, err := run(t, "--config", path, "series", "-n", "3")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "generated series")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"generated series"`)
}

func TestFprintPDF(t *testing.T) {
	s := &series.Series{Family: stats.Normal, Points: []series.Point{
		{X: 0, PDF: 0},
		{X: 1, PDF: 2},
		{X: 2, PDF: 1},
	}}
	var buf bytes.Buffer
	require.NoError(t, FprintPDF(&buf, s))
	want := "         0 \n" +
		"         1 " + strings.Repeat("*", plotWidth) + "\n" +
		"         2 " + strings.Repeat("*", plotWidth/2) + "\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	flat := &series.Series{Points: []series.Point{{X: 0}, {X: 1}}}
	require.NoError(t, FprintPDF(&buf, flat))
	assert.Equal(t, "         0 \n         1 \n", buf.String())
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "families")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded config")

	_, stderr, err = run(t, "--log-level", "error", "series", "-n", "3")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "generated series")

	_, _, err = run(t, "--log-level", "chatty", "families")
	assert.Error(t, err)
}
