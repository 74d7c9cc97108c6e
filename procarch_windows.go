// procarch_windows.go: Native architecture probe via environment
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build windows

package daedalus

import (
	"os"
)

// nativeArchitecture probes PROCESSOR_ARCHITEW6432 first: under WOW64 it
// carries the real machine architecture while PROCESSOR_ARCHITECTURE
// reports the emulated one.
func nativeArchitecture() Architecture {
	if w6432 := os.Getenv("PROCESSOR_ARCHITEW6432"); w6432 != "" {
		return normalizeArchitecture(w6432)
	}
	if arch := os.Getenv("PROCESSOR_ARCHITECTURE"); arch != "" {
		return normalizeArchitecture(arch)
	}
	return CurrentArchitecture()
}
