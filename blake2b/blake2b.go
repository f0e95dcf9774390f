// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package blake2b is a scalar BLAKE2b-512 engine [rfc7693] exposing the
// incremental init/update_multi/update_last/finish lifecycle directly,
// with the caller threading the 128-bit byte counter between calls.
// No keying, salt or personalization.
package blake2b

import (
	"encoding/binary"

	"github.com/hrissan/blake2hmac/uint128"
)

const (
	BlockSize = 128
	Size      = 64
)

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// digest length, key length 0, fanout 1, depth 1
const paramWord0 = Size | 1<<16 | 1<<24

type phase byte

const (
	phaseNone phase = iota
	phaseUpdating
	phaseFinal
)

// State is small enough to live on the caller's stack, and copying it
// forks the hash.
type State struct {
	h     [8]uint64
	phase phase
}

func (s *State) Init() {
	*s = State{h: iv, phase: phaseUpdating}
	s.h[0] ^= paramWord0
}

// UpdateMulti compresses exactly nBlocks full blocks from the start of blocks.
// Returns prev advanced by nBlocks*BlockSize.
func (s *State) UpdateMulti(prev uint128.Uint128, blocks []byte, nBlocks int) uint128.Uint128 {
	if s.phase != phaseUpdating {
		panic("blake2b: UpdateMulti on state which is not initialized or already finalized")
	}
	if nBlocks < 0 || len(blocks)/BlockSize < nBlocks {
		panic("blake2b: UpdateMulti buffer is shorter than declared number of blocks")
	}
	counter := prev
	for i := 0; i < nBlocks; i++ {
		counter = counter.Add64(BlockSize)
		compress(&s.h, blocks[i*BlockSize:(i+1)*BlockSize], counter, false)
	}
	return counter
}

// UpdateLast consumes the final chunk and applies the last-block flag.
// A chunk longer than BlockSize is accepted, its leading blocks are compressed
// as ordinary blocks. A chunk of exactly BlockSize is a single final block.
// Returns prev advanced by len(last).
func (s *State) UpdateLast(prev uint128.Uint128, last []byte) uint128.Uint128 {
	nBlocks := len(last) / BlockSize
	rem := len(last) % BlockSize
	if rem == 0 && nBlocks > 0 {
		nBlocks--
		rem = BlockSize
	}
	counter := s.UpdateMulti(prev, last, nBlocks)

	var block [BlockSize]byte // zero padding
	copy(block[:], last[nBlocks*BlockSize:])
	total := counter.Add64(uint64(rem)) // widening
	compress(&s.h, block[:], total, true)
	s.phase = phaseFinal
	return total
}

// Finish writes the digest into dst. BLAKE2b has already folded the counter
// into the state in UpdateLast, so total is not needed here. State is not
// changed, Finish may be called again.
func (s *State) Finish(total uint128.Uint128, dst []byte) {
	if s.phase != phaseFinal {
		panic("blake2b: Finish before UpdateLast")
	}
	if len(dst) < Size {
		panic("blake2b: Finish destination is shorter than digest size")
	}
	for i, w := range s.h {
		binary.LittleEndian.PutUint64(dst[i*8:], w)
	}
}

func Sum512(data []byte) (sum [Size]byte) {
	var s State
	s.Init()
	total := s.UpdateLast(uint128.Uint128{}, data)
	s.Finish(total, sum[:])
	return
}
