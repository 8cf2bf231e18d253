// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package branchless

// Diff32 is the distance between a and b,
// taking the shorter way around the 2³² ring.
func Diff32(a, b uint32) uint32 {
	return Abs32(int32(a - b))
}

// Diff64 is the distance between a and b,
// taking the shorter way around the 2⁶⁴ ring.
//
// Use this with timestamps or sequence numbers that might have wrapped.
func Diff64(a, b uint64) uint64 {
	return Abs64(int64(a - b))
}

// Within64 is true if a and b are at most 'tolerance' apart.
//
// For example, with Unix timestamps:
//  Within64(timestampRecv, timestampThen, 5)
func Within64(a, b, tolerance uint64) bool {
	return Diff64(a, b) <= tolerance
}
