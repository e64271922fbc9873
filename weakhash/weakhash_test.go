package weakhash

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestDeterminism(t *testing.T) {
	msg := make([]byte, 4096)
	_, err := rand.Read(msg)
	require.NoError(t, err)
	assert.Equal(t, Sum32(msg), Sum32(msg))
}

func TestEmptyMessage(t *testing.T) {
	/* An empty message leaves the accumulator at 0, and Finalize(0) shifts 0 by 2. */
	assert.Equal(t, Finalize(0), Sum32(nil))
	assert.Equal(t, uint32(0), Sum32([]byte{}))
	assert.Equal(t, uint32(0), New().Sum32())
}

func TestSingleByte(t *testing.T) {
	assert.Equal(t, Finalize(5), Sum32([]byte{5}))
}

func TestOrderInsensitivity(t *testing.T) {
	assert.Equal(t, Sum32([]byte("ab")), Sum32([]byte("ba")))
	assert.Equal(t, Sum32([]byte{1, 2, 3}), Sum32([]byte{3, 3}))
}

func TestFinalizeShiftPolicy(t *testing.T) {
	/* sum 30 lands on shift amount 32, which wraps to 0 under the modulo-32 policy. */
	assert.Equal(t, uint32(30), Finalize(30))
	/* sum 184 ("....") lands on shift amount 186, which wraps to 26. */
	assert.Equal(t, uint32(0xe0000000), Finalize(184))
	assert.Equal(t, uint32(5)<<7, Finalize(5))
}

func TestKnownColliders(t *testing.T) {
	target := Sum32([]byte("...."))
	assert.Equal(t, uint32(0xe0000000), target)
	/* Any byte sum of 184 collides with "....": 0x7b+0x3d and 0x5c+0x5c both reach it. */
	assert.Equal(t, target, Sum32([]byte("{=")))
	assert.Equal(t, target, Sum32([]byte(`\\`)))
}

func TestStreamingMatchesOneShot(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	d := New()
	for i := range msg {
		written, err := d.Write(msg[i : i+1])
		require.NoError(t, err)
		require.Equal(t, 1, written)
	}
	assert.Equal(t, Sum32(msg), d.Sum32())
	assert.Equal(t, []byte{0xca, 0xfe}, d.Sum([]byte{0xca, 0xfe})[:2])

	d.Reset()
	assert.Equal(t, uint32(0), d.Sum32())
}

func TestSumAppendsBigEndian(t *testing.T) {
	d := New()
	_, err := d.Write([]byte("...."))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe0, 0x00, 0x00, 0x00}, d.Sum(nil))
}

func TestPreimage(t *testing.T) {
	target := Sum32([]byte("...."))
	msg, ok := Preimage(target, 1<<16)
	require.True(t, ok)
	assert.Equal(t, target, Sum32(msg))
	for _, c := range msg {
		assert.GreaterOrEqual(t, c, byte(0x20))
		assert.LessOrEqual(t, c, byte(0x7e))
	}
}

func TestPreimageOfZero(t *testing.T) {
	msg, ok := Preimage(0, 16)
	require.True(t, ok)
	assert.Empty(t, msg)
}

func TestPreimageExhaustion(t *testing.T) {
	/* A digest of 1 needs a shift amount of 0, which only sums of the form 32k+30 produce; those
	sums are even and can never shift down to 1. */
	_, ok := Preimage(1, 1<<16)
	assert.False(t, ok)
}

func BenchmarkWeakHash(b *testing.B) {
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum32(msg)
	}
}

func BenchmarkXXH3(b *testing.B) {
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}

func BenchmarkBlake3(b *testing.B) {
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blake3.Sum256(msg)
	}
}
