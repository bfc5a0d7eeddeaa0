// interfaces.go: public interfaces for tinysketch
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tinysketch

// Resizer is anything that can be grown to a new capacity hint.
// *FrequencySketch implements it.
type Resizer interface {
	EnsureCapacity(maximumSize int64) error
}

// Stats provides counters describing the sketch's activity.
type Stats struct {
	// Increments is the number of increments that raised at least one counter
	Increments uint64

	// Saturated is the number of increments dropped because every probed
	// counter was already at MaxFrequency
	Saturated uint64

	// Resets is the number of aging passes performed
	Resets uint64

	// Resizes is the number of table allocations, including the first one
	Resizes uint64

	// LastResetNano is the time of the last aging pass (0 = never)
	LastResetNano int64

	// TableLength is the current number of 64-bit words
	TableLength int

	// SampleSize is the aging threshold
	SampleSize int64

	// Size is the number of increments since the last reset
	Size int64
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	Now() int64
}

// MetricsCollector receives the sketch's low-frequency events.
// Increment and Frequency are never instrumented individually except for
// saturated increments, so an implementation sees at most one call per
// dropped increment and one per reset or resize.
type MetricsCollector interface {
	// RecordResize records a table allocation. oldLength is 0 for the first one.
	RecordResize(oldLength, newLength int)

	// RecordReset records an aging pass with its latency and the size it
	// started and ended with.
	RecordReset(latencyNs int64, sizeBefore, sizeAfter int64)

	// RecordSaturated records an increment dropped because all four counters
	// were at MaxFrequency.
	RecordSaturated()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
type NoOpMetricsCollector struct{}

// RecordResize does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordResize(oldLength, newLength int) {}

// RecordReset does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordReset(latencyNs int64, sizeBefore, sizeAfter int64) {}

// RecordSaturated does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordSaturated() {}
