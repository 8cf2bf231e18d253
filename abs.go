// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package branchless // import "blitznote.com/src/branchless"

// Abs32 returns the absolute value of v.
//
// Branchless, constant time. Abs32(math.MinInt32) is 1<<31.
func Abs32(v int32) uint32 {
	m := v >> (32 - 1)
	return uint32((v + m) ^ m)
}

// Abs64 returns the absolute value of v.
//
// Branchless, constant time. Abs64(math.MinInt64) is 1<<63.
func Abs64(v int64) uint64 {
	m := v >> (64 - 1)
	return uint64((v + m) ^ m)
}
