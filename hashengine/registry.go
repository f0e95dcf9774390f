// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package hashengine

import (
	"hash"

	simd "github.com/minio/blake2b-simd"
	"golang.org/x/crypto/blake2b"

	native "github.com/hrissan/blake2hmac/blake2b"
	"github.com/hrissan/blake2hmac/hmacerrors"
	"github.com/hrissan/blake2hmac/safecast"
)

type ID uint8

const (
	Native    ID = iota // scalar engine from this module
	XCrypto             // golang.org/x/crypto/blake2b, assembly on amd64
	MinioSIMD           // github.com/minio/blake2b-simd, AVX2/AVX/SSE
)

var names = [...]string{
	Native:    "native",
	XCrypto:   "xcrypto",
	MinioSIMD: "minio-simd",
}

func (id ID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	return "unknown"
}

func ParseID(name string) (ID, error) {
	for id, n := range names {
		if n == name {
			return safecast.Cast[ID](id), nil
		}
	}
	return 0, hmacerrors.ErrUnknownEngine
}

func IDs() []ID {
	return []ID{Native, XCrypto, MinioSIMD}
}

// New allocates, callers who care compute with native engine on the stack.
func New(id ID) (Engine, error) {
	switch id {
	case Native:
		return &native.State{}, nil
	case XCrypto:
		return newStreamEngine(newXCrypto512), nil
	case MinioSIMD:
		return newStreamEngine(simd.New512), nil
	}
	return nil, hmacerrors.ErrUnknownEngine
}

func newXCrypto512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic("x/crypto blake2b rejected nil key: " + err.Error())
	}
	return h
}
