// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package hashengine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/hrissan/blake2hmac/hmacerrors"
	"github.com/hrissan/blake2hmac/uint128"
)

func TestHashAllEngines(t *testing.T) {
	data := make([]byte, 3*BlockLen+1)
	for i := range data {
		data[i] = byte(255 - i%251)
	}
	lengths := []int{0, 1, 63, 64, 127, BlockLen, BlockLen + 1, 2 * BlockLen, 3 * BlockLen, len(data)}
	for _, id := range IDs() {
		e, err := New(id)
		require.NoError(t, err)
		for _, n := range lengths {
			var got [DigestLen]byte
			Hash(e, got[:], data[:n]) // engines are reused, Init must reset
			require.Equal(t, blake2b.Sum512(data[:n]), got, "engine %s, length %d", id, n)
		}
	}
}

func TestCounterAccounting(t *testing.T) {
	var blocks [2 * BlockLen]byte
	for _, id := range IDs() {
		e, err := New(id)
		require.NoError(t, err)
		e.Init()
		c := e.UpdateMulti(uint128.Uint128{}, blocks[:], 2)
		require.Equal(t, uint128.From64(2*BlockLen), c, "engine %s", id)
		total := e.UpdateLast(c, blocks[:5])
		require.Equal(t, uint128.From64(2*BlockLen+5), total, "engine %s", id)
	}
}

func TestEngineLifecyclePanics(t *testing.T) {
	for _, id := range IDs() {
		e, err := New(id)
		require.NoError(t, err)
		var block [BlockLen]byte
		e.Init()
		require.Panics(t, func() { e.UpdateMulti(uint128.Uint128{}, block[:], 2) }, "engine %s", id)
		require.Panics(t, func() { e.Finish(uint128.Uint128{}, make([]byte, DigestLen)) }, "engine %s", id)
		total := e.UpdateLast(uint128.Uint128{}, block[:])
		require.Panics(t, func() { e.UpdateMulti(total, block[:], 1) }, "engine %s", id)
		require.Panics(t, func() { e.Finish(total, make([]byte, DigestLen-1)) }, "engine %s", id)
	}
}

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	}
	_, err := ParseID("sha256")
	require.True(t, errors.Is(err, hmacerrors.ErrUnknownEngine))
	_, err = New(ID(200))
	require.ErrorIs(t, err, hmacerrors.ErrUnknownEngine)
	require.Equal(t, "unknown", ID(200).String())
}
