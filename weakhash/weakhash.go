package weakhash

import (
	"hash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* This file is the reference Go implementation of the weaksum checksum: a 32-bit byte-sum digest
that is trivially reversible on purpose. It makes no attempt at preimage resistance — the entire
point of the program built around it is that colliding inputs can be found by hand. */

// Size of a digest in bytes.
const Size = 4

const shiftBase = 2

// Finalize is the final transform applied to the accumulated byte sum: a left shift of the sum by
// sum+2 positions. Shift amounts are reduced modulo 32 the way x86 SHL reduces them, so amounts of
// 32 or more wrap around instead of zeroing the digest as Go's own shift semantics would.
func Finalize(sum uint32) uint32 {
	return sum << ((sum + shiftBase) & 31)
}

// Sum32 returns the checksum of msg: the 32-bit wraparound sum of its unsigned byte values, passed
// through Finalize. The digest depends only on the byte sum, never on byte order.
func Sum32(msg []byte) uint32 {
	var sum uint32
	for i := range msg {
		sum += uint32(msg[i])
	}
	return Finalize(sum)
}

// Digest holds a running byte sum so that file and stream targets can be fed with io.Copy.
type Digest struct {
	sum uint32
}

var _ hash.Hash32 = (*Digest)(nil)

// New returns a fresh Digest implementing the standard hash.Hash32 interface.
func New() *Digest { return &Digest{} }

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return 1 }

func (d *Digest) Reset() { d.sum = 0 }

func (d *Digest) Write(buf []byte) (int, error) {
	for i := range buf {
		d.sum += uint32(buf[i])
	}
	return len(buf), nil
}

func (d *Digest) Sum32() uint32 { return Finalize(d.sum) }

// Sum appends the big-endian bytes of the current digest to buf without consuming the running sum.
func (d *Digest) Sum(buf []byte) []byte {
	sum := d.Sum32()
	return append(buf, byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum))
}

// Preimage searches for a printable ASCII string whose checksum equals target. The checksum
// depends only on the byte sum, so the search enumerates candidate sums from 0 through limit and
// decomposes the first finalizable match into bytes in the range [0x20, 0x7e]. Sums between 1 and
// 0x1f are skipped: no printable string can reach them. The second return is false once limit is
// exhausted.
func Preimage(target, limit uint32) ([]byte, bool) {
	for sum := uint32(0); ; sum++ {
		switch {
		case Finalize(sum) != target || (sum > 0 && sum < 0x20):
		case sum == 0:
			return []byte{}, true
		default:
			return decompose(sum), true
		}
		if sum == limit {
			return nil, false
		}
	}
}

/* decompose splits sum into printable bytes, greedily emitting '~' while keeping the remainder
reachable; it requires sum == 0 or sum >= 0x20. */
func decompose(sum uint32) []byte {
	msg := make([]byte, 0, sum/0x7e+1)
	for sum > 0x7e {
		c := byte(0x7e)
		if sum-0x7e < 0x20 {
			c = byte(sum - 0x20)
		}
		msg = append(msg, c)
		sum -= uint32(c)
	}
	if sum > 0 {
		msg = append(msg, byte(sum))
	}
	return msg
}
