package main

import (
	. "github.com/spf13/pflag"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pLimit, pNoCodesDefault = uint32(0), false
var pHelp, pFile, pFind, pNoCodes, pQuiet, pTime bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pFile, "file", "f", false,
		purp+"treat arguments instead as paths to be checksummed"+zero+
			n+"(`-` is a reference to STDIN)")

	BoolVarP(&pFind, "find", "F", false,
		purp+"brute-force a printable string colliding with the target"+zero)

	Uint32Var(&pLimit, "limit", 1<<24,
		purp+"bound the byte sums enumerated by --find"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY outcomes"+zero+
			n+"(enables --no-codes)")

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. Parsing is left to
	main so that the test binary never feeds its own flags through pflag. */
	CommandLine.SortFlags = false
}
