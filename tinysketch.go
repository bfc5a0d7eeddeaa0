// Package tinysketch provides a compact, self-aging frequency sketch used as the
// admission and eviction signal of a bounded in-memory cache.
//
// The sketch stores sixteen 4-bit saturating counters per 64-bit word, probes
// four counters per fingerprint, raises only the smallest of them on every
// access and periodically halves the whole table so that recent popularity
// dominates stale popularity.
//
// Example usage:
//
//	sketch, err := tinysketch.New(tinysketch.Config{MaximumSize: 10_000})
//	if err != nil {
//		return err
//	}
//
//	sketch.Increment(fingerprint.String("user:42"))
//	hot := sketch.Frequency(fingerprint.String("user:42"))
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package tinysketch

const (
	// Version of the tinysketch library
	Version = "v0.1.0-dev"

	// DefaultMaximumSize is the capacity hint used by DefaultConfig
	DefaultMaximumSize = 10_000

	// MaxFrequency is the largest value a 4-bit counter can hold
	MaxFrequency = 15

	// SampleFactor is the number of increments tolerated per table word
	// before the sketch ages its counters.
	SampleFactor = 10
)
