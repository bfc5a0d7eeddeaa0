// hot-reload.go: dynamic sketch capacity with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tinysketch

import (
	"math"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotCapacity watches a configuration file and grows a sketch whenever the
// configured maximum size increases. Decreases are forwarded too; the sketch
// ignores them because it never shrinks.
type HotCapacity struct {
	target  Resizer
	locker  sync.Locker
	logger  Logger
	path    string
	watcher *argus.Watcher

	mu      sync.RWMutex
	current int64

	onReload func(oldSize, newSize int64)
	onError  func(err error)
}

// HotCapacityOptions configures hot reload behavior.
type HotCapacityOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// Locker is held around every EnsureCapacity call. The sketch has no
	// locks of its own, so pass the mutex that guards it.
	// If nil, the target is called unguarded.
	Locker sync.Locker

	// OnReload is called after a capacity has been applied.
	OnReload func(oldSize, newSize int64)

	// OnError is called when a capacity from the file is rejected.
	OnError func(err error)

	// Logger for hot reload operations. If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotCapacity creates a capacity watcher for target.
// It starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	sketch:
//	  maximum_size: 10000
//
// A top-level maximum_size key is accepted as well.
func NewHotCapacity(target Resizer, opts HotCapacityOptions) (*HotCapacity, error) {
	if target == nil {
		return nil, NewErrInvalidConfig("target", "resizer cannot be nil")
	}
	if opts.ConfigPath == "" {
		return nil, NewErrInvalidConfig("config_path", "config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotCapacity{
		target:   target,
		locker:   opts.Locker,
		logger:   opts.Logger,
		path:     opts.ConfigPath,
		onReload: opts.OnReload,
		onError:  opts.OnError,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotCapacity) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotCapacity) Stop() error {
	return hc.watcher.Stop()
}

// Current returns the last maximum size accepted from the file (0 = none yet).
// Sizes below the sketch's current table are accepted but leave the table as
// is, so Current can be smaller than the capacity the sketch is sized for.
func (hc *HotCapacity) Current() int64 {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.current
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotCapacity) handleConfigChange(configData map[string]interface{}) {
	size, ok := parseMaximumSize(configData)
	if !ok {
		hc.logger.Warn("sketch config has no usable maximum_size", "config_path", hc.path)
		return
	}

	if err := hc.apply(size); err != nil {
		err = NewErrReloadFailed(hc.path, err)
		hc.logger.Error("sketch capacity reload failed", "config_path", hc.path, "maximum_size", size, "error", err)
		if hc.onError != nil {
			hc.onError(err)
		}
		return
	}

	hc.mu.Lock()
	old := hc.current
	hc.current = size
	hc.mu.Unlock()

	hc.logger.Info("sketch capacity reloaded", "config_path", hc.path, "old_size", old, "new_size", size)
	if hc.onReload != nil {
		hc.onReload(old, size)
	}
}

func (hc *HotCapacity) apply(size int64) error {
	if hc.locker != nil {
		hc.locker.Lock()
		defer hc.locker.Unlock()
	}
	return hc.target.EnsureCapacity(size)
}

// parseMaximumSize extracts maximum_size from the sketch section, or from the
// top level when there is no section. YAML and JSON decoders disagree on
// number types, so int, int64 and float64 are all accepted. A float must hold
// an integral value within the int64 range.
func parseMaximumSize(data map[string]interface{}) (int64, bool) {
	section, ok := data["sketch"].(map[string]interface{})
	if !ok {
		section = data
	}

	switch v := section["maximum_size"].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}
