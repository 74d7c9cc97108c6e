// main_test.go: Tests for the Daedalus profiler
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/agilira/daedalus"
)

// TestOpStat_Record tests the Record method of opStat
func TestOpStat_Record(t *testing.T) {
	stat := &opStat{}

	// Test first record
	duration1 := 100 * time.Millisecond
	stat.Record(duration1)

	if stat.Count != 1 {
		t.Errorf("Expected count 1, got %d", stat.Count)
	}
	if stat.Min != duration1 {
		t.Errorf("Expected min %v, got %v", duration1, stat.Min)
	}
	if stat.Max != duration1 {
		t.Errorf("Expected max %v, got %v", duration1, stat.Max)
	}

	// Test smaller and larger records
	stat.Record(50 * time.Millisecond)
	stat.Record(200 * time.Millisecond)

	if stat.Count != 3 {
		t.Errorf("Expected count 3, got %d", stat.Count)
	}
	if stat.Min != 50*time.Millisecond {
		t.Errorf("Expected min 50ms, got %v", stat.Min)
	}
	if stat.Max != 200*time.Millisecond {
		t.Errorf("Expected max 200ms, got %v", stat.Max)
	}
}

// TestOpStat_Avg tests the Avg method of opStat
func TestOpStat_Avg(t *testing.T) {
	stat := &opStat{}

	// Empty stat averages to zero
	if avg := stat.Avg(); avg != 0 {
		t.Errorf("Expected zero average for empty stat, got %v", avg)
	}

	stat.Record(100 * time.Millisecond)
	stat.Record(200 * time.Millisecond)

	if avg := stat.Avg(); avg != 150*time.Millisecond {
		t.Errorf("Expected average 150ms, got %v", avg)
	}
}

// TestOpStat_Merge tests folding worker-local stats into the aggregate
func TestOpStat_Merge(t *testing.T) {
	var aggregate opStat

	first := &opStat{}
	first.Record(100 * time.Millisecond)
	first.Record(300 * time.Millisecond)

	second := &opStat{}
	second.Record(50 * time.Millisecond)

	aggregate.Merge(first)
	aggregate.Merge(second)
	aggregate.Merge(&opStat{}) // empty merge is a no-op

	if aggregate.Count != 3 {
		t.Errorf("Expected merged count 3, got %d", aggregate.Count)
	}
	if aggregate.Min != 50*time.Millisecond {
		t.Errorf("Expected merged min 50ms, got %v", aggregate.Min)
	}
	if aggregate.Max != 300*time.Millisecond {
		t.Errorf("Expected merged max 300ms, got %v", aggregate.Max)
	}
	if aggregate.Avg() != 150*time.Millisecond {
		t.Errorf("Expected merged average 150ms, got %v", aggregate.Avg())
	}
}

func TestAssembleCached_MatchesFreshShape(t *testing.T) {
	var cache daedalus.BuilderCache
	r := rand.New(rand.NewSource(1))

	s := assembleCached(&cache, r, false)
	if !strings.HasPrefix(s, "out/release/") {
		t.Errorf("Unexpected assembled string: %q", s)
	}
	if strings.Count(s, "/") < segmentCount {
		t.Errorf("Expected %d path segments, got %q", segmentCount, s)
	}

	fresh := assembleFresh(rand.New(rand.NewSource(1)), false)
	if fresh != s {
		t.Errorf("Expected identical output for identical seeds, got %q and %q", s, fresh)
	}
}

func TestAssemble_OversizePath(t *testing.T) {
	var cache daedalus.BuilderCache
	r := rand.New(rand.NewSource(2))

	s := assembleCached(&cache, r, true)
	if len(s) <= daedalus.MaxBuilderSize {
		t.Errorf("Expected an oversize assembly longer than %d, got %d", daedalus.MaxBuilderSize, len(s))
	}
}
