// config.go: configuration for tinysketch
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tinysketch

import (
	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for a FrequencySketch.
type Config struct {
	// MaximumSize is the capacity hint, usually the owning cache's maximum
	// number of entries. Must be >= 0. If 0 the sketch starts unsized.
	MaximumSize int64

	// Seeds supplies the probe seeds on every table allocation.
	// If nil, RandomSeeds is used.
	Seeds SeedSource

	// Logger is used for resize, aging and reload events.
	// If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider timestamps aging passes.
	// If nil, a go-timecache backed clock is used.
	TimeProvider TimeProvider

	// MetricsCollector receives resize, reset and saturation events.
	// If nil, NoOpMetricsCollector is used (zero overhead).
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies defaults.
//
// This method is automatically called by New. Defaults applied:
//   - Seeds: RandomSeeds{} if nil
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
//
// A negative MaximumSize is the only rejected value.
func (c *Config) Validate() error {
	if c.MaximumSize < 0 {
		return NewErrInvalidArgument(c.MaximumSize)
	}

	if c.Seeds == nil {
		c.Seeds = RandomSeeds{}
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaximumSize:      DefaultMaximumSize,
		Seeds:            RandomSeeds{},
		Logger:           NoOpLogger{},
		TimeProvider:     systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// New creates a FrequencySketch from config. When MaximumSize is positive the
// table is allocated immediately, otherwise the sketch stays unsized until
// EnsureCapacity is called.
func New(config Config) (*FrequencySketch, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &FrequencySketch{
		seeds:        config.Seeds,
		logger:       config.Logger,
		timeProvider: config.TimeProvider,
		metrics:      config.MetricsCollector,
	}
	if config.MaximumSize > 0 {
		if err := s.EnsureCapacity(config.MaximumSize); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// systemTimeProvider is the default time provider using go-timecache.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
