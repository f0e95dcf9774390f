// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package hmac

import (
	"github.com/hrissan/blake2hmac/blake2b"
	"github.com/hrissan/blake2hmac/uint128"
)

// MAC is the streaming form of Compute, implementing hash.Hash.
// Not safe for concurrent use.
type MAC struct {
	ipad Pad
	opad Pad

	inner   blake2b.State
	counter uint128.Uint128
	// Last written bytes, always 1..BlockSize of them, so that
	// the final chunk can go to UpdateLast. Starts holding ipad.
	pending    [BlockSize]byte
	pendingLen int
}

func New(key []byte) *MAC {
	var st blake2b.State
	block := NormalizeKey(&st, key)
	m := &MAC{}
	m.ipad, m.opad = DerivePads(&block)
	m.Reset()
	return m
}

func (m *MAC) Reset() {
	m.inner.Init()
	m.counter = uint128.Uint128{}
	m.pending = m.ipad
	m.pendingLen = BlockSize
}

func (m *MAC) Size() int      { return Size }
func (m *MAC) BlockSize() int { return BlockSize }

func (m *MAC) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if m.pendingLen == BlockSize {
			m.counter = m.inner.UpdateMulti(m.counter, m.pending[:], 1)
			m.pendingLen = 0
		}
		if m.pendingLen == 0 && len(p) > BlockSize {
			blocks := (len(p) - 1) / BlockSize // keep at least 1 byte pending
			m.counter = m.inner.UpdateMulti(m.counter, p, blocks)
			p = p[blocks*BlockSize:]
		}
		copied := copy(m.pending[m.pendingLen:], p)
		m.pendingLen += copied
		p = p[copied:]
	}
	return n, nil
}

// Sum appends the tag to b, MAC can continue to be written after.
func (m *MAC) Sum(b []byte) []byte {
	st := m.inner
	total := st.UpdateLast(m.counter, m.pending[:m.pendingLen])
	var innerDigest [Size]byte
	st.Finish(total, innerDigest[:])

	st.Init()
	c1 := st.UpdateMulti(uint128.Uint128{}, m.opad[:], 1)
	total = st.UpdateLast(c1, innerDigest[:])
	var tag Tag
	st.Finish(total, tag[:])
	return append(b, tag[:]...)
}
