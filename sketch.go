// sketch.go: self-aging 4-bit frequency sketch
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tinysketch

import (
	"math/bits"
	"time"
)

const (
	// minTableLength is the smallest table ever allocated (in 64-bit words)
	minTableLength = 8

	// maxTableLength bounds the table so that 10 × length stays well inside int64
	maxTableLength = 1 << 30

	counterMask = 0xF
	resetMask   = 0x7777777777777777
	oneMask     = 0x1111111111111111
)

// sketchTable is the sized state of a FrequencySketch. A nil *sketchTable is
// the unsized state.
type sketchTable struct {
	// words stores 4-bit counters packed into uint64 values
	// Each uint64 holds 16 counters (64 bits / 4 bits per counter)
	words []uint64

	// mask is len(words)-1, the table length is always a power of 2
	mask uint64

	// sampleSize is the number of increments that triggers aging
	sampleSize int64

	// size counts increments since the last reset
	size int64

	// seeds for the four probes, all odd
	seeds [4]uint64
}

// FrequencySketch is a probabilistic multiset estimating how often a fingerprint
// was seen within a recent window of accesses. Estimates are capped at
// MaxFrequency and never undercount between two resets.
//
// The zero value is a valid, unsized sketch: Increment is a no-op and Frequency
// returns 0 until EnsureCapacity is called.
//
// FrequencySketch is not safe for concurrent use. Callers must hold their own
// lock around every method, typically the one already guarding the cache's
// eviction path.
type FrequencySketch struct {
	table *sketchTable

	seeds        SeedSource
	logger       Logger
	timeProvider TimeProvider
	metrics      MetricsCollector

	stats Stats
}

// EnsureCapacity sizes the sketch for roughly maximumSize distinct entries.
//
// The table only ever grows: a request that maps to a table no larger than the
// current one leaves every field, including the counts, untouched. Growing
// discards the previous counts and draws fresh seeds.
func (s *FrequencySketch) EnsureCapacity(maximumSize int64) error {
	if maximumSize < 0 {
		return NewErrInvalidArgument(maximumSize)
	}

	length := tableLengthFor(maximumSize)
	oldLength := 0
	if s.table != nil {
		oldLength = len(s.table.words)
		if length <= oldLength {
			return nil
		}
	}

	// An even seed can collapse every probe onto word 0.
	seeds := s.seedSource().Seeds()
	for i := range seeds {
		seeds[i] |= 1
	}

	s.table = &sketchTable{
		words:      make([]uint64, length),
		mask:       uint64(length - 1), // #nosec G115 - length is a positive power of 2
		sampleSize: SampleFactor * int64(length),
		seeds:      seeds,
	}
	s.stats.Resizes++

	s.log().Debug("frequency sketch resized",
		"maximum_size", maximumSize,
		"old_length", oldLength,
		"new_length", length,
		"sample_size", s.table.sampleSize)
	s.collector().RecordResize(oldLength, length)

	return nil
}

// tableLengthFor maps a capacity hint to a power-of-2 table length.
func tableLengthFor(maximumSize int64) int {
	if maximumSize >= maxTableLength {
		return maxTableLength
	}
	length := nextPowerOf2(int(maximumSize))
	if length < minTableLength {
		length = minTableLength
	}
	return length
}

// nextPowerOf2 returns the next power of 2 greater than or equal to n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// Frequency returns the estimated number of occurrences of fingerprint, in
// [0, MaxFrequency]. It never mutates the sketch.
func (s *FrequencySketch) Frequency(fingerprint uint64) int {
	t := s.table
	if t == nil {
		return 0
	}

	hash := spread(fingerprint)
	start := (hash & 3) << 2

	frequency := uint64(MaxFrequency)
	for i := uint64(0); i < 4; i++ {
		index := t.indexOf(hash, i)
		count := (t.words[index] >> ((start + i) << 2)) & counterMask
		frequency = min(frequency, count)
	}
	return int(frequency) // #nosec G115 - bounded by MaxFrequency
}

// Increment records one occurrence of fingerprint.
//
// Only the probed counters holding the current minimum are raised, so
// unrelated collisions inflate an estimate as little as possible. When the
// number of increments reaches the sample size every counter is halved before
// Increment returns.
func (s *FrequencySketch) Increment(fingerprint uint64) {
	t := s.table
	if t == nil {
		return
	}

	hash := spread(fingerprint)
	start := (hash & 3) << 2

	var (
		indexes [4]uint64
		counts  [4]uint64
	)
	minimum := uint64(MaxFrequency)
	for i := uint64(0); i < 4; i++ {
		indexes[i] = t.indexOf(hash, i)
		counts[i] = (t.words[indexes[i]] >> ((start + i) << 2)) & counterMask
		minimum = min(minimum, counts[i])
	}

	if minimum == MaxFrequency {
		s.stats.Saturated++
		s.collector().RecordSaturated()
		return
	}

	for i := uint64(0); i < 4; i++ {
		if counts[i] == minimum {
			t.words[indexes[i]] += uint64(1) << ((start + i) << 2)
		}
	}

	s.stats.Increments++
	t.size++
	if t.size == t.sampleSize {
		s.reset()
	}
}

// reset halves every counter and shrinks size accordingly. The remainder lost
// by the integer halving is subtracted so size keeps tracking the counters.
func (s *FrequencySketch) reset() {
	t := s.table
	if t == nil {
		return
	}

	started := time.Now()
	before := t.size

	var odd int64
	for i, word := range t.words {
		odd += int64(bits.OnesCount64(word & oneMask))
		t.words[i] = (word >> 1) & resetMask
	}
	t.size = (t.size - (odd >> 2)) >> 1
	if t.size < 0 {
		t.size = 0
	}

	// The cached clock ticks every 500µs, far coarser than a pass.
	latency := time.Since(started).Nanoseconds()
	s.stats.Resets++
	s.stats.LastResetNano = s.now()

	s.log().Debug("frequency sketch aged",
		"size_before", before,
		"size_after", t.size,
		"sample_size", t.sampleSize)
	s.collector().RecordReset(latency, before, t.size)
}

// indexOf returns the word probed by the i-th hash function.
func (t *sketchTable) indexOf(hash, i uint64) uint64 {
	h := (hash + t.seeds[i]) * t.seeds[i]
	h += h >> 32
	return h & t.mask
}

// spread applies a 64-bit finalizer so every bit of the fingerprint
// influences every probe.
func spread(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// IsSized reports whether EnsureCapacity has allocated a table.
func (s *FrequencySketch) IsSized() bool {
	return s.table != nil
}

// TableLength returns the number of 64-bit words in the table, 0 when unsized.
func (s *FrequencySketch) TableLength() int {
	if s.table == nil {
		return 0
	}
	return len(s.table.words)
}

// TableMask returns TableLength()-1, 0 when unsized.
func (s *FrequencySketch) TableMask() uint64 {
	if s.table == nil {
		return 0
	}
	return s.table.mask
}

// SampleSize returns the number of increments after which counters are halved.
func (s *FrequencySketch) SampleSize() int64 {
	if s.table == nil {
		return 0
	}
	return s.table.sampleSize
}

// Size returns the number of increments recorded since the last reset.
func (s *FrequencySketch) Size() int64 {
	if s.table == nil {
		return 0
	}
	return s.table.size
}

// Stats returns a snapshot of the sketch counters.
func (s *FrequencySketch) Stats() Stats {
	stats := s.stats
	stats.TableLength = s.TableLength()
	stats.SampleSize = s.SampleSize()
	stats.Size = s.Size()
	return stats
}

func (s *FrequencySketch) seedSource() SeedSource {
	if s.seeds == nil {
		return RandomSeeds{}
	}
	return s.seeds
}

func (s *FrequencySketch) log() Logger {
	if s.logger == nil {
		return NoOpLogger{}
	}
	return s.logger
}

func (s *FrequencySketch) now() int64 {
	if s.timeProvider == nil {
		return systemTimeProvider{}.Now()
	}
	return s.timeProvider.Now()
}

func (s *FrequencySketch) collector() MetricsCollector {
	if s.metrics == nil {
		return NoOpMetricsCollector{}
	}
	return s.metrics
}
