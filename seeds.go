// seeds.go: per-instance probe seeds
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tinysketch

import "math/rand/v2"

// SeedSource supplies the four probe seeds of a sketch. It is consulted each
// time the table is (re)allocated. The sketch forces every returned seed odd.
type SeedSource interface {
	Seeds() [4]uint64
}

// RandomSeeds draws seeds from the process-wide pseudo-random source so that
// two sketches never share a probe layout. It is the default SeedSource.
type RandomSeeds struct{}

// Seeds returns four random odd seeds.
func (RandomSeeds) Seeds() [4]uint64 {
	var seeds [4]uint64
	for i := range seeds {
		seeds[i] = rand.Uint64() | 1
	}
	return seeds
}

// FixedSeeds always returns the same seeds, forced odd. Use it to make the
// probe layout, and therefore every estimate, reproducible in tests.
type FixedSeeds [4]uint64

// Seeds returns the fixed seeds with their low bit set.
func (f FixedSeeds) Seeds() [4]uint64 {
	seeds := [4]uint64(f)
	for i := range seeds {
		seeds[i] |= 1
	}
	return seeds
}

// DefaultFixedSeeds is a well-mixed FixedSeeds for deterministic setups.
var DefaultFixedSeeds = FixedSeeds{
	0xc3a5c85c97cb3127,
	0xb492b66fbe98f273,
	0x9ae16a3b2f90404f,
	0xcbf29ce484222325,
}
