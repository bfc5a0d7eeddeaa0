// collector.go: OpenTelemetry implementation of tinysketch.MetricsCollector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/tinysketch"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements tinysketch.MetricsCollector using OpenTelemetry.
//
// Thread-safety: Safe for concurrent use by multiple goroutines.
type OTelMetricsCollector struct {
	resetLatency metric.Int64Histogram     // aging pass latency
	resets       metric.Int64Counter       // aging passes
	forgotten    metric.Int64Counter       // size dropped by aging
	resizes      metric.Int64Counter       // table allocations
	saturated    metric.Int64Counter       // increments dropped at MaxFrequency
	tableWords   metric.Int64UpDownCounter // current table length
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/tinysketch"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name.
// This is useful for distinguishing the sketches of several caches.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// ErrNilMeterProvider is returned by NewOTelMetricsCollector for a nil provider.
var ErrNilMeterProvider = errors.New("meter provider cannot be nil")

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// Example:
//
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, err := NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, ErrNilMeterProvider
	}

	options := Options{
		MeterName: "github.com/agilira/tinysketch",
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.resetLatency, err = meter.Int64Histogram(
		"tinysketch_reset_latency_ns",
		metric.WithDescription("Latency of sketch aging passes in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.resets, err = meter.Int64Counter(
		"tinysketch_resets_total",
		metric.WithDescription("Total number of sketch aging passes"),
	)
	if err != nil {
		return nil, err
	}

	collector.forgotten, err = meter.Int64Counter(
		"tinysketch_reset_size_delta_total",
		metric.WithDescription("Total number of increments forgotten by aging"),
	)
	if err != nil {
		return nil, err
	}

	collector.resizes, err = meter.Int64Counter(
		"tinysketch_resizes_total",
		metric.WithDescription("Total number of sketch table allocations"),
	)
	if err != nil {
		return nil, err
	}

	collector.saturated, err = meter.Int64Counter(
		"tinysketch_saturated_increments_total",
		metric.WithDescription("Total number of increments dropped because all counters were saturated"),
	)
	if err != nil {
		return nil, err
	}

	collector.tableWords, err = meter.Int64UpDownCounter(
		"tinysketch_table_words",
		metric.WithDescription("Current sketch table length in 64-bit words"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordResize records a table allocation and moves the table length gauge.
func (c *OTelMetricsCollector) RecordResize(oldLength, newLength int) {
	ctx := context.Background()
	c.resizes.Add(ctx, 1)
	c.tableWords.Add(ctx, int64(newLength-oldLength))
}

// RecordReset records an aging pass.
func (c *OTelMetricsCollector) RecordReset(latencyNs int64, sizeBefore, sizeAfter int64) {
	ctx := context.Background()
	c.resetLatency.Record(ctx, latencyNs)
	c.resets.Add(ctx, 1)
	if delta := sizeBefore - sizeAfter; delta > 0 {
		c.forgotten.Add(ctx, delta)
	}
}

// RecordSaturated records an increment dropped at MaxFrequency.
func (c *OTelMetricsCollector) RecordSaturated() {
	c.saturated.Add(context.Background(), 1)
}

// Compile-time interface check
var _ tinysketch.MetricsCollector = (*OTelMetricsCollector)(nil)
