// Package fingerprint turns cache keys into the 64-bit fingerprints consumed by
// tinysketch. The sketch never sees keys, only these integers.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package fingerprint

import (
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// String returns the xxhash64 of s without allocating.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes returns the xxhash64 of b.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// XXH3String returns the XXH3 64-bit hash of s. It is faster than String for
// long keys such as URLs or serialized requests.
func XXH3String(s string) uint64 {
	return xxh3.HashString(s)
}

// XXH3Bytes returns the XXH3 64-bit hash of b.
func XXH3Bytes(b []byte) uint64 {
	return xxh3.Hash(b)
}

// Uint64 returns v unchanged. Integer keys are already fingerprints; the
// sketch mixes them itself.
func Uint64(v uint64) uint64 {
	return v
}

// Float64 returns the IEEE 754 bit pattern of v, so that 0.0 and -0.0 differ
// and every NaN payload is kept.
func Float64(v float64) uint64 {
	return math.Float64bits(v)
}
