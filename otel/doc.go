// Package otel provides OpenTelemetry integration for tinysketch metrics.
//
// # Overview
//
// This package implements the tinysketch.MetricsCollector interface using
// OpenTelemetry. It is a separate module so that the sketch itself carries no
// OTEL dependencies.
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/tinysketch"
//	    sketchotel "github.com/agilira/tinysketch/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := sketchotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sketch, err := tinysketch.New(tinysketch.Config{
//	    MaximumSize:      10_000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
// Histograms:
//   - tinysketch_reset_latency_ns: duration of each aging pass
//
// Counters:
//   - tinysketch_resets_total: aging passes
//   - tinysketch_resizes_total: table allocations
//   - tinysketch_saturated_increments_total: increments dropped at MaxFrequency
//   - tinysketch_reset_size_delta_total: increments forgotten by aging
//
// Up/down counters:
//   - tinysketch_table_words: current table length in 64-bit words
//
// # Prometheus Queries
//
// Aging passes per minute:
//
//	rate(tinysketch_resets_total[1m]) * 60
//
// Share of increments lost to saturation, a sign the sketch is too small:
//
//	rate(tinysketch_saturated_increments_total[5m])
//
// # Thread Safety
//
// OTEL instruments are safe for concurrent use, so one collector can be shared
// by several sketches (each under its own lock).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
