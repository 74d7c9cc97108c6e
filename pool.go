// pool.go: Shared buffer pool for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"bytes"
	"sync"
)

// maxPooledBufferSize is the largest buffer capacity, in bytes, allowed back
// into the shared pool. Buffers that grew beyond this are dropped to keep the
// pool from permanently holding the memory of one oversized assembly.
const maxPooledBufferSize = 64 << 10 // 64KB

// bufferPool provides pooled *bytes.Buffer instances for call sites that have
// no worker identity of their own (free functions assembling pipe names,
// resource messages, and the like). Worker loops should prefer a per-worker
// BuilderCache, which reuses a single instance deterministically.
var bufferPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// getBuffer retrieves a cleared *bytes.Buffer from the shared pool.
func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns a *bytes.Buffer to the shared pool, dropping buffers
// whose capacity exceeds maxPooledBufferSize.
func putBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
