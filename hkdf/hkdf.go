// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package hkdf is RFC 5869 over HMAC-BLAKE2b-512.
package hkdf

import (
	"github.com/hrissan/blake2hmac/hmac"
	"github.com/hrissan/blake2hmac/hmacerrors"
	"github.com/hrissan/blake2hmac/safecast"
)

const MaxExpandLength = 255 * hmac.Size

// Extract returns the pseudorandom key. Nil salt is the same as a zero-filled
// salt of hash length.
func Extract(salt []byte, keymaterial []byte) (prk hmac.Tag) {
	hmac.Compute((*[hmac.Size]byte)(&prk), salt, keymaterial)
	return
}

// Expand fills dst. dst longer than MaxExpandLength is an error, dst is left untouched.
func Expand(dst []byte, prk []byte, info []byte) error {
	if len(dst) > MaxExpandLength {
		return hmacerrors.ErrExpandTooLong
	}
	mac := hmac.New(prk)
	var t hmac.Tag
	offset := 0
	for i := 1; offset < len(dst); i++ {
		mac.Reset()
		if i > 1 {
			mac.Write(t[:])
		}
		mac.Write(info)
		mac.Write([]byte{safecast.Cast[byte](i)}) // safe due to check above
		mac.Sum(t[:0])
		offset += copy(dst[offset:], t[:])
	}
	return nil
}

// Key combines Extract and Expand.
func Key(dst []byte, secret []byte, salt []byte, info []byte) error {
	prk := Extract(salt, secret)
	return Expand(dst, prk[:], info)
}
