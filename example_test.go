// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package branchless_test

import (
	"fmt"
	"math"

	"blitznote.com/src/branchless"
)

func ExampleAbs32() {
	fmt.Println(branchless.Abs32(5))
	fmt.Println(branchless.Abs32(0))
	fmt.Println(branchless.Abs32(-5))
	fmt.Println(branchless.Abs32(math.MinInt32))
	// Output:
	// 5
	// 0
	// 5
	// 2147483648
}

func ExampleWithin64() {
	var timestampRecv, timestampThen uint64 = 1458508457, 1458508452
	fmt.Println(branchless.Within64(timestampRecv, timestampThen, 1<<2))
	// Output: false
}
