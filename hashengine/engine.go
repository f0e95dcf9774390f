// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package hashengine

import (
	"github.com/hrissan/blake2hmac/uint128"
)

const (
	BlockLen  = 128
	DigestLen = 64
)

// Engine is an incremental BLAKE2b-512 hash split into the four calls the
// HMAC construction drives. The caller threads the byte counter.
//
// Lifecycle: Init, any number of UpdateMulti, exactly one UpdateLast, Finish.
// Engines panic when the lifecycle or buffer sizes are violated.
type Engine interface {
	// Init seeds the state for an unkeyed 64-byte digest, discarding any previous state.
	Init()
	// UpdateMulti consumes exactly nBlocks full blocks and returns prev + nBlocks*BlockLen.
	UpdateMulti(prev uint128.Uint128, blocks []byte, nBlocks int) uint128.Uint128
	// UpdateLast consumes the final chunk, of any length including 0 and exactly BlockLen,
	// and returns prev + len(last).
	UpdateLast(prev uint128.Uint128, last []byte) uint128.Uint128
	// Finish writes DigestLen bytes into dst without changing the state.
	Finish(total uint128.Uint128, dst []byte)
}

// Hash is the single-shot hash of data expressed through the Engine calls.
// Trailing whole block goes to UpdateLast, so it gets the last-block flag.
func Hash(e Engine, dst []byte, data []byte) {
	e.Init()
	var counter uint128.Uint128
	if n := len(data) / BlockLen; n > 0 {
		if len(data)%BlockLen == 0 {
			n--
		}
		counter = e.UpdateMulti(counter, data, n)
		data = data[n*BlockLen:]
	}
	total := e.UpdateLast(counter, data)
	e.Finish(total, dst)
}
