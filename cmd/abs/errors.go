// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// operandError is returned for operands that cannot be used.
type operandError string

// Error implements the error interface.
func (e operandError) Error() string { return string(e) }

// Errors returned by parseOperand.
// parseOperands wraps them with the operand's position.
const (
	errOperandSyntax operandError = "not a decimal integer"
	errOperandRange  operandError = "value out of range"
)

// errUsage is returned by run on malformed flags, after printing the usage.
const errUsage operandError = "usage"
