// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package hmac implements HMAC [rfc2104] over BLAKE2b-512 [rfc7693],
// driving an incremental hashengine.Engine in two passes.
package hmac

import (
	"crypto/subtle"

	"github.com/hrissan/blake2hmac/blake2b"
	"github.com/hrissan/blake2hmac/hashengine"
	"github.com/hrissan/blake2hmac/hmacerrors"
	"github.com/hrissan/blake2hmac/safecast"
	"github.com/hrissan/blake2hmac/uint128"
)

type Tag [Size]byte

type Options struct {
	Engine hashengine.ID
}

func DefaultOptions() *Options {
	return &Options{
		Engine: hashengine.Native,
	}
}

// Composer holds only configuration, safe for concurrent use.
// Each computation owns its engine state.
type Composer struct {
	engine hashengine.ID
}

var defaultComposer = Composer{engine: hashengine.Native}

func NewComposer(opts *Options) (*Composer, error) {
	if _, err := hashengine.New(opts.Engine); err != nil {
		return nil, err
	}
	return &Composer{engine: opts.Engine}, nil
}

func (c *Composer) Engine() hashengine.ID {
	return c.engine
}

// Compute writes the tag of data under key into dst.
func (c *Composer) Compute(dst *[Size]byte, key []byte, data []byte) {
	if c.engine == hashengine.Native {
		var st blake2b.State // no allocation for the default engine
		compose(&st, dst, key, data)
		return
	}
	e, err := hashengine.New(c.engine)
	if err != nil {
		panic("engine ID was validated in NewComposer")
	}
	compose(e, dst, key, data)
}

// ComputeChecked is Compute for untyped buffers and the 32-bit length contract.
// On error nothing is written to dst.
func (c *Composer) ComputeChecked(dst []byte, key []byte, data []byte) error {
	if len(dst) < Size {
		return hmacerrors.ErrOutputTooShort
	}
	if !safecast.Fits[uint32](len(key)) {
		return hmacerrors.ErrKeyTooLong
	}
	if !safecast.Fits[uint32](len(data)) {
		return hmacerrors.ErrDataTooLong
	}
	c.Compute((*[Size]byte)(dst[:Size]), key, data)
	return nil
}

func (c *Composer) Sum(key []byte, data []byte) (tag Tag) {
	c.Compute((*[Size]byte)(&tag), key, data)
	return
}

func (c *Composer) Verify(key []byte, data []byte, tag []byte) error {
	if len(tag) != Size {
		return hmacerrors.ErrTagLength
	}
	actual := c.Sum(key, data)
	if subtle.ConstantTimeCompare(actual[:], tag) != 1 {
		return hmacerrors.ErrTagMismatch
	}
	return nil
}

func Compute(dst *[Size]byte, key []byte, data []byte) {
	defaultComposer.Compute(dst, key, data)
}

func ComputeChecked(dst []byte, key []byte, data []byte) error {
	return defaultComposer.ComputeChecked(dst, key, data)
}

func Sum(key []byte, data []byte) Tag {
	return defaultComposer.Sum(key, data)
}

func Verify(key []byte, data []byte, tag []byte) error {
	return defaultComposer.Verify(key, data, tag)
}

func compose(e hashengine.Engine, dst *[Size]byte, key []byte, data []byte) {
	block := NormalizeKey(e, key)
	ipad, opad := DerivePads(&block)

	var zero uint128.Uint128
	var innerDigest [Size]byte
	var total uint128.Uint128
	e.Init()
	if len(data) == 0 {
		// ipad is the final block, UpdateMulti would leave nothing for UpdateLast
		total = e.UpdateLast(zero, ipad[:])
	} else {
		c1 := e.UpdateMulti(zero, ipad[:], 1)
		total = e.UpdateLast(c1, data)
	}
	e.Finish(total, innerDigest[:])

	e.Init()
	c1 := e.UpdateMulti(zero, opad[:], 1)
	total = e.UpdateLast(c1, innerDigest[:])
	e.Finish(total, dst[:])
}
