// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package blake2b

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	xblake2b "golang.org/x/crypto/blake2b"

	"github.com/hrissan/blake2hmac/uint128"
)

func TestSum512Vectors(t *testing.T) {
	vectors := []struct {
		input string
		hex   string
	}{
		{"", "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"},
		{"abc", "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
	}
	for _, v := range vectors {
		sum := Sum512([]byte(v.input))
		require.Equal(t, v.hex, hex.EncodeToString(sum[:]), "input %q", v.input)
	}
}

func TestSum512MatchesReference(t *testing.T) {
	data := make([]byte, 3*BlockSize+17)
	for i := range data {
		data[i] = byte(i * 7)
	}
	for n := 0; n <= len(data); n++ {
		require.Equal(t, xblake2b.Sum512(data[:n]), Sum512(data[:n]), "length %d", n)
	}
}

// Every way to put leading whole blocks through UpdateMulti must give the same digest
func TestUpdateMultiSplits(t *testing.T) {
	data := make([]byte, 4*BlockSize)
	for i := range data {
		data[i] = byte(i)
	}
	for _, n := range []int{BlockSize, BlockSize + 1, 2 * BlockSize, 4 * BlockSize} {
		want := xblake2b.Sum512(data[:n])
		for blocks := 0; blocks*BlockSize < n; blocks++ {
			var s State
			s.Init()
			c := s.UpdateMulti(uint128.Uint128{}, data, blocks)
			require.Equal(t, uint64(blocks*BlockSize), c.Lo())
			total := s.UpdateLast(c, data[blocks*BlockSize:n])
			require.Equal(t, uint128.From64(uint64(n)), total)
			var got [Size]byte
			s.Finish(total, got[:])
			require.Equal(t, want, got, "length %d, %d blocks via UpdateMulti", n, blocks)
		}
	}
}

func TestCounterCarry(t *testing.T) {
	var block [BlockSize]byte
	var s State
	s.Init()
	c := s.UpdateMulti(uint128.From64(math.MaxUint64-BlockSize+1), block[:], 1)
	require.Equal(t, uint128.New(1, 0), c)
	total := s.UpdateLast(c, block[:10])
	require.Equal(t, uint128.New(1, 10), total)

	var low State
	low.Init()
	lowTotal := low.UpdateLast(low.UpdateMulti(uint128.Uint128{}, block[:], 1), block[:10])
	var a, b [Size]byte
	s.Finish(total, a[:])
	low.Finish(lowTotal, b[:])
	require.NotEqual(t, a, b, "high counter word must take part in compression")
}

func TestFinishIsRepeatable(t *testing.T) {
	var s State
	s.Init()
	total := s.UpdateLast(uint128.Uint128{}, []byte("repeat"))
	var a, b [Size]byte
	s.Finish(total, a[:])
	s.Finish(total, b[:])
	require.Equal(t, a, b)
}

func TestLifecyclePanics(t *testing.T) {
	var block [BlockSize]byte
	var s State
	require.Panics(t, func() { s.UpdateMulti(uint128.Uint128{}, block[:], 1) })
	s.Init()
	require.Panics(t, func() { s.UpdateMulti(uint128.Uint128{}, block[:], 2) })
	require.Panics(t, func() { s.Finish(uint128.Uint128{}, make([]byte, Size)) })
	total := s.UpdateLast(uint128.Uint128{}, nil)
	require.Panics(t, func() { s.UpdateLast(total, nil) })
	require.Panics(t, func() { s.Finish(total, make([]byte, Size-1)) })
}

func BenchmarkSum512_1K(b *testing.B) {
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = Sum512(data)
	}
}
