// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// U+2212, not the hyphen-minus.
const runeMinusSign = '−'

// demoOperands are used if none have been given.
var demoOperands = []int64{5, 0, -5}

// parseOperand reads s as decimal integer that fits into bitSize bits.
//
// Compatibility forms such as full-width digits are folded first,
// with NFKC, and the minus sign is accepted in place of '-'.
func parseOperand(s string, bitSize int) (int64, error) {
	s = norm.NFKC.String(s)
	s = strings.Replace(s, string(runeMinusSign), "-", -1)
	s = strings.TrimSpace(s)

	n, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errOperandRange
		}
		return 0, errOperandSyntax
	}
	return n, nil
}

// parseOperands either returns all of args as integers, or the first error.
func parseOperands(args []string, bitSize int) ([]int64, error) {
	if len(args) == 0 {
		return demoOperands, nil
	}

	operands := make([]int64, 0, len(args))
	for idx := range args {
		n, err := parseOperand(args[idx], bitSize)
		if err != nil {
			return nil, errors.Wrapf(err, "operand %d %q", idx+1, args[idx])
		}
		operands = append(operands, n)
	}
	return operands, nil
}
