// pool_test.go: Tests for the shared buffer pool
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"strings"
	"sync"
	"testing"
)

func TestBufferPool_GetReturnsCleanBuffer(t *testing.T) {
	buf := getBuffer()
	if buf == nil {
		t.Fatal("Expected a buffer from the pool")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected a cleared buffer, got length %d", buf.Len())
	}

	buf.WriteString("leftover content")
	putBuffer(buf)

	// Whatever instance comes back next must be cleared. Pool identity is
	// not guaranteed, so only the reset contract is checked.
	again := getBuffer()
	if again.Len() != 0 {
		t.Errorf("Expected a cleared buffer after reuse, got length %d", again.Len())
	}
	putBuffer(again)
}

func TestBufferPool_OversizeDropped(t *testing.T) {
	buf := getBuffer()
	buf.WriteString(strings.Repeat("x", maxPooledBufferSize+1))
	if buf.Cap() <= maxPooledBufferSize {
		t.Fatalf("Expected capacity over %d, got %d", maxPooledBufferSize, buf.Cap())
	}

	// Must not panic; the buffer is dropped instead of pooled.
	putBuffer(buf)
}

func TestBufferPool_PutNil(t *testing.T) {
	putBuffer(nil) // no-op
}

func TestBufferPool_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				buf := getBuffer()
				buf.WriteString("pipe-name-assembly")
				if buf.Len() != 18 {
					t.Errorf("Expected length 18, got %d", buf.Len())
				}
				putBuffer(buf)
			}
		}()
	}
	wg.Wait()
}
