package main

import (
	. "fmt"
	"github.com/aead/chacha20/chacha"
	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/weaksum/weakhash"
	"github.com/zeebo/blake3"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* This file is the benchmarking suite for weakhash: It races the checksum against real hash
functions across several input sizes, reporting throughput and, where the TSC is usable, rough
cycles-per-byte figures. */

var sizes = [...]int{64, 512 << 10, 64 << 20, 1 << 30}
var bytes, calltime = []byte(nil), gotsc.TSCOverhead()

/* Corpora come from a fixed ChaCha keystream so that runs are reproducible across machines. */
func makeBytes(size int) {
	bytes = make([]byte, size)
	stream, _ := chacha.NewCipher(make([]byte, chacha.NonceSize), make([]byte, chacha.KeySize), 8)
	stream.XORKeyStream(bytes, bytes)
}

func BenchmarkWeakHash(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		weakhash.Sum32(bytes)
	}
}

func BenchmarkSHA256(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(bytes)
	}
}

func BenchmarkBlake3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(bytes)
	}
}

func benchAlg(alg func(b *testing.B)) {
	const s = len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		makeBytes(v)

		totalHz, polls, mut := uint64(0), uint64(0), &sync.Mutex{}
		if calltime > 0 {
			go func(i int) {
				/* The sampler retires itself once this size's result lands. */
				for {
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					if throughputs[i] != 0 {
						mut.Unlock()
						return
					}
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}(i)
		}
		r := testing.Benchmark(alg)
		mut.Lock()
		totalHz *= 1000

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
		mut.Unlock()
	}

	Println("Speed " + fmtFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		Println("      " + fmtFloats(speeds...) + "   cpb")
	}
	Println("Usage " + fmtFloats(usages...) + "   B/op\n")
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func main() {
	Printf("Racing weakhash on %d CPUs!\n%s/%s\n\n"+
		"           64B      512K       64M       1G\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	Println("github.com/p7r0x7/weaksum/weakhash")
	benchAlg(BenchmarkWeakHash)

	Println("github.com/minio/sha256-simd")
	benchAlg(BenchmarkSHA256)

	Println("github.com/zeebo/blake3")
	benchAlg(BenchmarkBlake3)

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
