// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the Normal, Exponential, Weibull and Gamma
// distribution families: their density, cumulative and quantile
// functions, the plotting bounds of each, and closed-form descriptive
// statistics.
//
// Each family is a small value type (NormalDist, ExponentialDist,
// WeibullDist, GammaDist) holding only that family's parameters.
// Together they form the Model union. Values are immutable and safe
// for concurrent use.
package stats // import "github.com/devicereg/distengine/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// upperTail is the CDF value at the upper plotting bound of the
// families with support [0, inf). It is the point 5/λ of an
// exponential distribution with rate λ.
var upperTail = -math.Expm1(-5)
