// strcache.go: Reusable string-builder cache for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"bytes"
)

const (
	// MaxBuilderSize is the largest builder capacity, in bytes, that a
	// BuilderCache will retain. Builders that grew beyond this are dropped
	// on Release and reclaimed by the garbage collector, so one unusually
	// large string cannot pin a large allocation for the life of a worker.
	// The value covers the large majority of assembled strings (paths,
	// resource messages, command-line fragments).
	MaxBuilderSize = 512

	// DefaultBuilderCapacity is the starting capacity used when Acquire is
	// called with a non-positive capacity hint. Sized for a typical
	// filesystem path.
	DefaultBuilderCapacity = 256
)

// BuilderCache is a single-slot cache of a reusable string builder.
//
// A BuilderCache parks at most one *bytes.Buffer between uses. Acquire hands
// the parked builder back out when its capacity satisfies the hint, and
// Release parks a finished builder for the next call site. The zero value is
// ready to use.
//
// A BuilderCache is NOT safe for concurrent use: it holds no locks by design,
// so each worker goroutine must own its own instance. A builder obtained from
// Acquire is exclusively owned by the caller until it is passed to Release;
// after Release the caller must not touch it again.
//
// Overlapping uses on one worker are a protocol violation: if an inner call
// site releases its builder before an outer one does, the outer Release
// silently replaces the parked builder and the inner one is lost to the
// garbage collector. That is a logic bug, not a safety issue; builds with the
// "strcachechecks" tag turn it into a panic.
type BuilderCache struct {
	slot *bytes.Buffer
}

// NewBuilderCache creates a new, empty BuilderCache.
//
// The zero value works just as well; the constructor exists for call sites
// that prefer pointer-typed fields.
func NewBuilderCache() *BuilderCache {
	return &BuilderCache{}
}

// Acquire returns an empty builder with capacity of at least the given hint.
//
// When a builder is parked and its capacity satisfies the hint, that exact
// instance is returned with its length reset to zero and its capacity intact.
// Otherwise a fresh builder is allocated: an under-sized parked builder is
// left parked rather than grown piecemeal, and hints above MaxBuilderSize
// never touch the slot at all. A hint of zero (or below) maps to
// DefaultBuilderCapacity.
func (c *BuilderCache) Acquire(capacity int) *bytes.Buffer {
	if capacity <= 0 {
		capacity = DefaultBuilderCapacity
	}

	if capacity <= MaxBuilderSize {
		if b := c.slot; b != nil && capacity <= b.Cap() {
			// Clear the slot first so the instance can never be handed
			// out twice.
			c.slot = nil
			b.Reset()
			return b
		}
	}

	b := new(bytes.Buffer)
	b.Grow(capacity)
	return b
}

// Release donates a builder back to the cache.
//
// Builders with capacity at or below MaxBuilderSize are parked for the next
// Acquire on this worker; larger builders are dropped and left to the garbage
// collector. Releasing while another builder is already parked overwrites the
// parked one (last release wins); see the BuilderCache protocol note.
// Release(nil) is a no-op.
func (c *BuilderCache) Release(b *bytes.Buffer) {
	if b == nil || b.Cap() > MaxBuilderSize {
		return
	}

	if builderCacheChecks && c.slot != nil {
		panic("daedalus: BuilderCache.Release called while a builder is already parked")
	}

	c.slot = b
}

// ReleaseToString snapshots the builder's contents into an immutable string,
// releases the builder, and returns the snapshot. The builder must not be
// used by the caller afterward.
func (c *BuilderCache) ReleaseToString(b *bytes.Buffer) string {
	if b == nil {
		return ""
	}

	s := b.String()
	c.Release(b)
	return s
}
