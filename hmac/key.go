// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package hmac

import (
	"github.com/hrissan/blake2hmac/hashengine"
)

const (
	BlockSize = hashengine.BlockLen
	Size      = hashengine.DigestLen
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// KeyBlock is the key normalized to exactly one hash block.
type KeyBlock [BlockSize]byte

type Pad [BlockSize]byte

// NormalizeKey zero-pads keys of up to BlockSize bytes, longer keys are
// replaced by their hash, zero-padded. Engine e is used for that hash.
func NormalizeKey(e hashengine.Engine, key []byte) (block KeyBlock) {
	if len(key) <= BlockSize {
		copy(block[:], key)
		return
	}
	hashengine.Hash(e, block[:Size], key)
	return
}

func DerivePads(block *KeyBlock) (inner Pad, outer Pad) {
	for i, b := range block {
		inner[i] = ipadByte ^ b
		outer[i] = opadByte ^ b
	}
	return
}
