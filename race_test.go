// race_test.go: data race tests for sketch access under an external lock
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tinysketch

import (
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/agilira/tinysketch/fingerprint"
)

// TestRaceConditions_LockedIncrementFrequency drives the sketch from many
// goroutines through one mutex, the way an owning cache does.
func TestRaceConditions_LockedIncrementFrequency(t *testing.T) {
	s := makeSketch(t, 256)
	var mu sync.Mutex

	const numGoroutines = 50
	const numOperations = 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				fp := fingerprint.String(strconv.Itoa((id*numOperations + j) % 1000))
				mu.Lock()
				if j%2 == 0 {
					s.Increment(fp)
				} else {
					_ = s.Frequency(fp)
				}
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if s.Size() < 0 || s.Size() >= s.SampleSize() {
		t.Errorf("Size corrupted: %d (sample size %d)", s.Size(), s.SampleSize())
	}
	if s.Stats().Resets == 0 {
		t.Errorf("expected at least one aging pass after %d increments", numGoroutines*numOperations/2)
	}
}

// TestRaceConditions_ReloadDuringIncrements grows the sketch through
// HotCapacity's locker while other goroutines keep incrementing.
func TestRaceConditions_ReloadDuringIncrements(t *testing.T) {
	s := makeSketch(t, 16)
	var mu sync.Mutex
	hc := newTestHotCapacity(s, NoOpLogger{})
	hc.locker = &mu

	const numWorkers = 8
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; ; j++ {
				select {
				case <-stop:
					return
				default:
				}
				mu.Lock()
				s.Increment(fingerprint.Uint64(uint64(id<<20 | j)))
				mu.Unlock()
				if j%64 == 0 {
					runtime.Gosched()
				}
			}
		}(i)
	}

	for size := int64(32); size <= 4096; size *= 2 {
		hc.handleConfigChange(map[string]interface{}{"maximum_size": size})
	}
	close(stop)
	wg.Wait()

	if hc.Current() != 4096 {
		t.Errorf("Current = %d, want 4096", hc.Current())
	}
	mu.Lock()
	defer mu.Unlock()
	if s.TableLength() != 4096 {
		t.Errorf("TableLength = %d, want 4096", s.TableLength())
	}
}
