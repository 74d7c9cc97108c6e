// strcache_checks_test.go: Release-assertion tests (build with -tags strcachechecks)
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build strcachechecks

package daedalus

import (
	"testing"
)

func TestBuilderCache_DoubleReleasePanics(t *testing.T) {
	var cache BuilderCache

	first := cache.Acquire(32)
	second := cache.Acquire(32)
	cache.Release(first)

	defer func() {
		if recover() == nil {
			t.Error("Expected a panic on Release while a builder is already parked")
		}
	}()
	cache.Release(second)
}

func TestBuilderCache_DisjointReleasesDoNotPanic(t *testing.T) {
	var cache BuilderCache

	b := cache.Acquire(32)
	cache.Release(b)

	// Acquire empties the slot, so the next release is legitimate.
	b = cache.Acquire(32)
	cache.Release(b)
}
