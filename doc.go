// Package tinysketch provides the frequency sketch that backs TinyLFU style
// admission and eviction in a bounded in-memory cache.
//
// # Overview
//
// A cache that has to choose between a newcomer and a resident entry needs to
// know which one has been requested more often lately. Keeping an exact
// counter per key costs as much memory as the cache itself, so tinysketch
// answers the question approximately:
//   - Memory: 4 bits per counter, 16 counters per 64-bit word, one word per
//     expected entry (rounded up to a power of two, minimum 8 words)
//   - Time: O(1) Increment and Frequency, four probes each
//   - Error: estimates never undercount between two aging passes and are
//     capped at MaxFrequency (15)
//   - Recency: after 10 × table length increments every counter is halved
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/tinysketch"
//	    "github.com/agilira/tinysketch/fingerprint"
//	)
//
//	sketch, err := tinysketch.New(tinysketch.Config{MaximumSize: 10_000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// On every cache access
//	sketch.Increment(fingerprint.String(key))
//
//	// When the cache is full
//	if sketch.Frequency(fingerprint.String(candidate)) > sketch.Frequency(fingerprint.String(victim)) {
//	    evict(victim)
//	}
//
// # Sizing
//
// EnsureCapacity only ever grows the table. Asking for the same or a smaller
// capacity is a no-op that keeps the collected history; asking for more
// allocates a fresh table, which discards it. A negative capacity fails with
// an error whose code is ErrCodeInvalidArgument. The zero FrequencySketch is
// unsized: Increment does nothing and Frequency returns 0.
//
// # Conservative Increment
//
// Each fingerprint is mixed and mapped to four counters, one per probe, each
// in its own nibble position of the word chosen by that probe's seed. An
// increment raises only the counters that currently hold the minimum of the
// four, which keeps unrelated collisions from inflating popular estimates.
//
// # Seeds
//
// Probe seeds come from a SeedSource. RandomSeeds, the default, gives every
// sketch its own layout so that a key pattern that collides in one process
// does not collide everywhere. FixedSeeds makes estimates reproducible:
//
//	sketch, _ := tinysketch.New(tinysketch.Config{
//	    MaximumSize: 512,
//	    Seeds:       tinysketch.DefaultFixedSeeds,
//	})
//
// # Thread Safety
//
// FrequencySketch has no internal locking. Call it under the lock that already
// guards the cache's eviction path. Aging runs inline inside the Increment that
// crosses the sample size and costs O(table length).
//
// # Hot Reload
//
// HotCapacity watches a configuration file with Argus and forwards changes of
// maximum_size to EnsureCapacity while holding a caller supplied sync.Locker:
//
//	var mu sync.Mutex
//	hc, err := tinysketch.NewHotCapacity(sketch, tinysketch.HotCapacityOptions{
//	    ConfigPath: "sketch.yaml",
//	    Locker:     &mu,
//	})
//
// # Observability
//
// Config.Logger receives resize, aging and reload events. Config.MetricsCollector
// receives the same events as numbers; the github.com/agilira/tinysketch/otel
// module implements it with OpenTelemetry.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tinysketch
