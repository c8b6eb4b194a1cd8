// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions that have no elementary
// closed form: the standard normal CDF and the gamma function.
//
// These are approximations. NormalCDF is accurate to about 1e-7
// absolute and Gamma and LogGamma to about 1e-13 relative.
package mathx // import "github.com/devicereg/distengine/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

const sqrt2Pi = 2.50662827463100050241576528481104525300698674060993831662992357

// log(sqrt(2 * pi))
const logSqrt2Pi = 0.91893853320467274178032973640561763986139747363778341281715154
