// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package hashengine

import (
	"hash"

	"github.com/hrissan/blake2hmac/uint128"
)

// streamEngine adapts a BLAKE2b-512 hash.Hash to Engine. The library keeps its
// own counter and decides the last block at Sum, so the threaded counter is
// only accounted here and the lifecycle must start from a zero counter.
type streamEngine struct {
	newHash func() hash.Hash
	h       hash.Hash
	final   bool
}

func newStreamEngine(newHash func() hash.Hash) *streamEngine {
	return &streamEngine{newHash: newHash}
}

func (e *streamEngine) Init() {
	if e.h == nil {
		e.h = e.newHash()
		if e.h.Size() != DigestLen || e.h.BlockSize() != BlockLen {
			panic("stream engine hash is not BLAKE2b-512")
		}
	} else {
		e.h.Reset()
	}
	e.final = false
}

func (e *streamEngine) UpdateMulti(prev uint128.Uint128, blocks []byte, nBlocks int) uint128.Uint128 {
	if e.h == nil || e.final {
		panic("stream engine: UpdateMulti on state which is not initialized or already finalized")
	}
	if nBlocks < 0 || len(blocks)/BlockLen < nBlocks {
		panic("stream engine: UpdateMulti buffer is shorter than declared number of blocks")
	}
	_, _ = e.h.Write(blocks[:nBlocks*BlockLen]) // never fails
	return prev.Add64(uint64(nBlocks) * BlockLen)
}

func (e *streamEngine) UpdateLast(prev uint128.Uint128, last []byte) uint128.Uint128 {
	if e.h == nil || e.final {
		panic("stream engine: UpdateLast on state which is not initialized or already finalized")
	}
	_, _ = e.h.Write(last)
	e.final = true
	return prev.Add64(uint64(len(last)))
}

func (e *streamEngine) Finish(total uint128.Uint128, dst []byte) {
	if !e.final {
		panic("stream engine: Finish before UpdateLast")
	}
	if len(dst) < DigestLen {
		panic("stream engine: Finish destination is shorter than digest size")
	}
	var sum [DigestLen]byte
	e.h.Sum(sum[:0])
	copy(dst, sum[:])
}
