package main

import (
	. "fmt"
	"github.com/p7r0x7/vainpath"
	"github.com/p7r0x7/weaksum/payload"
	"github.com/p7r0x7/weaksum/weakhash"
	. "github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"
	"unsafe"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This program is a command-line interface for weakhash: It checks candidate strings or files
// against the hash of the compiled-in target string, reveals the secret payload on a collision,
// and can brute-force a colliding string itself.

const n = "\n"
const success, failure, invalid = 0, 1, 2

// target is the fixed string every candidate is measured against.
const target = "...."

var warnings = 0

func main() { Parse(); os.Exit(program()) }

// help prints the target hash to STDOUT and a usage menu to STDERR. To consistently correctly
// render this menu in most terminal windows, its content should be no wider than 80 columns.
func help(targetHash uint32) {
	origin, err := os.Executable()
	if err != nil {
		origin = "weaksum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	Printf("Target hash: "+yell+"0x%08x"+zero+n, targetHash)
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, n+"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-t] [--quiet|no-codes] STRING..."+n,
		spaces, "[-t] [--quiet|no-codes] -f -|PATH..."+n,
		spaces, "[-t] [--quiet|no-codes] [--limit <uint32>] -F"+n+n+
			"Options:"+n)
	PrintDefaults()
	Fprint(os.Stderr, n+"Find a string that produces the same hash!"+n)
}

// This function contains the program's core logic: It resolves each non-flag argument to a
// candidate message, hashes it, and compares the digest against the target hash.
func program() int {
	targetHash := weakhash.Sum32([]byte(target))

	if pHelp || (NArg() == 0 && !pFind) {
		help(targetHash)
		if pHelp {
			return success
		}
		return failure
	}
	if pFind {
		return find(targetHash)
	}

	digest := weakhash.New()
	for i, arg := range Args() {
		if i > 0 {
			digest.Reset()
			Print(n)
		}
		start, delta, name := time.Now(), "", arg

		if !pFile {
			/* hash.Hash does not implement (*Writer).WriteString. */
			digest.Write(strToBytes(arg))
		} else if arg == "-" || arg == os.Stdin.Name() {
			if _, err := io.Copy(digest, os.Stdin); err != nil {
				warn()
				continue
			}
			go os.Stdin.Close() /* STDIN should not be reused. */
			name = os.Stdin.Name()
		} else {
			file, err := os.Open(arg)
			if err != nil {
				warn()
				continue
			}
			_, err = io.Copy(digest, file)
			go file.Close()
			if err != nil {
				warn()
				continue
			}
			name = vainpath.Simplify(arg)
		}
		sum := digest.Sum32()

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}
		if !pQuiet {
			Printf("Your input: "+und+"%s"+zero+delta+n, name)
			Printf("Your hash: "+yell+"0x%08x"+zero+n, sum)
			Printf("Target hash: "+yell+"0x%08x"+zero+n, targetHash)
		}
		if sum == targetHash {
			payload.Secret.WriteTo(os.Stdout)
			Print(n)
		} else {
			Print(n + "No collision yet." + n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 "+purp+"target is a directory or is otherwise inaccessible."+zero+n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " "+purp+"targets are directories or are otherwise inaccessible."+zero+n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// find brute-forces a printable string whose hash equals the target hash, bounded by --limit.
func find(targetHash uint32) int {
	if pLimit == 0 {
		Fprint(os.Stderr, purp+"Search limit must be at least 1."+zero+n)
		return invalid
	}
	start, delta := time.Now(), ""
	msg, ok := weakhash.Preimage(targetHash, pLimit)
	if !ok {
		Fprintf(os.Stderr, purp+"No printable string hashes to "+zero+yell+"0x%08x"+zero+purp+
			" within the first %d byte sums."+zero+n, targetHash, pLimit)
		return failure
	}
	if pTime {
		delta = " (" + time.Since(start).String() + ")"
	}
	if pQuiet {
		Println(string(msg))
	} else {
		Printf(yell+"%q"+zero+" hashes to "+yell+"0x%08x"+zero+delta+n, msg, targetHash)
	}
	return success
}

// strToBytes converts any string into a byte slice without allocating memory; as discussed in
// https://stackoverflow.com/a/69231355, this practice is safe so long as the underlying memory is
// not modified during its lifetime.
func strToBytes(s string) []byte {
	if len(s) == 0 {
		return nil /* The data pointer of an empty string may be nil. */
	}
	const MaxInt32 = 1<<31 - 1
	return (*[MaxInt32]byte)(unsafe.Pointer((*reflect.StringHeader)(
		unsafe.Pointer(&s)).Data))[: len(s)&MaxInt32 : len(s)&MaxInt32]
}

func warn() { warnings++ }
