// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package safecast

import (
	"errors"
)

// Based on https://github.com/fortio/safecast
// Narrowing of lengths crossing the API boundary must be checked,
// the rest of the code works with fixed-size values.

type Integer interface {
	~uintptr |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

var ErrIntegerOverflowSign = errors.New("integer overflow - loss of sign")
var ErrIntegerOverflow = errors.New("integer overflow")

func TryCast[Result Integer, Arg Integer](arg Arg) (Result, error) {
	converted := Result(arg)
	if (arg > 0) != (converted > 0) {
		return converted, ErrIntegerOverflowSign // return converted to examine
	}
	if Arg(converted) != arg {
		return converted, ErrIntegerOverflow // return converted to examine
	}
	return converted, nil
}

// Cast is for values whose range is an invariant of the caller.
func Cast[Result Integer, Arg Integer](arg Arg) Result {
	converted, err := TryCast[Result](arg)
	if err != nil {
		panic(err.Error())
	}
	return converted
}

// Fits reports whether length n can be declared as Result without loss.
func Fits[Result Integer](n int) bool {
	_, err := TryCast[Result](n)
	return err == nil
}
