// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command abs prints the absolute values of its operands, one per line.
//
// Without operands it prints those of 5, 0, and -5:
//  $ abs
//  5
//  0
//  5
//  $ abs -- -2147483648
//  2147483648
//  $ abs -64 -- -9223372036854775808
//  9223372036854775808
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"blitznote.com/src/branchless"
)

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("abs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: abs [-64] [integer ...]")
		fs.PrintDefaults()
	}
	wide := fs.Bool("64", false, "read operands as 64-bit integers")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}

	bitSize := 32
	if *wide {
		bitSize = 64
	}
	operands, err := parseOperands(fs.Args(), bitSize)
	if err != nil {
		return err
	}

	for _, n := range operands {
		var magnitude uint64
		if *wide {
			magnitude = branchless.Abs64(n)
		} else {
			magnitude = uint64(branchless.Abs32(int32(n)))
		}
		if _, err := fmt.Fprintln(stdout, strconv.FormatUint(magnitude, 10)); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("abs: ")

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
		return
	case errors.Cause(err) == errUsage:
		os.Exit(2)
	}
	log.Fatalln(err)
}
