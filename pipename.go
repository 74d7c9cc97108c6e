// pipename.go: Rendezvous pipe-name derivation for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"os"
)

// PipeName returns the rendezvous pipe name for the current process, using
// the configured pipe prefix.
func PipeName() string {
	return PipeNameForProcess(os.Getpid())
}

// PipeNameForProcess returns the rendezvous pipe name for the given process
// identifier. The result is deterministic for a given prefix and pid, so a
// tool host and its worker processes derive the same name independently.
//
// The shape is platform-specific: a named-pipe path on Windows, a Unix
// domain socket path under the temp directory elsewhere.
func PipeNameForProcess(pid int) string {
	config := loadConfig()
	return formatPipeName(config.PipePrefix, pid)
}
