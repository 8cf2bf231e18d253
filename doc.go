// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package branchless computes magnitudes of fixed-width integers
// without conditional jumps.
//
// The sign of v is smeared over all bits by an arithmetic shift,
//  m := v >> (bits - 1)
// which is 0 for v ≥ 0 and all ones (-1) otherwise. Then
//  (v + m) ^ m
// is v for m = 0, and ^(v - 1) = -v for m = -1.
//
// Results are unsigned, therefore the magnitude of the most negative value
// (for example, 2³¹ for math.MinInt32) is representable and returned as is.
package branchless // import "blitznote.com/src/branchless"
