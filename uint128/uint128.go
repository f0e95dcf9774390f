// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package uint128

import (
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 is the byte counter threaded through hash engine calls.
// BLAKE2b defines its offset counter as 128 bits wide.
type Uint128 struct {
	lo uint64
	hi uint64
}

func From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

func New(hi uint64, lo uint64) Uint128 {
	return Uint128{lo: lo, hi: hi}
}

func (u Uint128) Lo() uint64 { return u.lo }
func (u Uint128) Hi() uint64 { return u.hi }

func (u Uint128) IsZero() bool {
	return u.lo == 0 && u.hi == 0
}

// Add64 wraps around on overflow of all 128 bits, as the counter in RFC 7693 does.
func (u Uint128) Add64(v uint64) Uint128 {
	lo, carry := bits.Add64(u.lo, v, 0)
	return Uint128{lo: lo, hi: u.hi + carry}
}

func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return Uint128{lo: lo, hi: hi}
}

func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.Big().String()
}
