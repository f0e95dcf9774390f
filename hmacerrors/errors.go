// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package hmacerrors

import (
	"fmt"
)

// we do not allocate on error returning path,
// so all errors are completely static

type Error struct {
	code int
	text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("blake2hmac: %d %s", e.code, e.text)
}

func (e *Error) Code() int {
	return e.code
}

func New(code int, text string) error {
	return &Error{
		code: code,
		text: text,
	}
}

var ErrOutputTooShort = New(-100, "output buffer is shorter than 64 bytes")
var ErrKeyTooLong = New(-101, "key length exceeds 2^32-1 bytes")
var ErrDataTooLong = New(-102, "data length exceeds 2^32-1 bytes")

var ErrUnknownEngine = New(-200, "unknown hash engine ID")

var ErrTagMismatch = New(-300, "authentication tag mismatch")
var ErrTagLength = New(-301, "authentication tag must be 64 bytes")

var ErrExpandTooLong = New(-400, "HKDF expand output exceeds 255 hash lengths")
