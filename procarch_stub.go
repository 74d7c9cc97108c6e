// procarch_stub.go: Native architecture fallback for unprobed platforms
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build !linux && !windows

package daedalus

// nativeArchitecture has no OS probe on this platform; the compiled
// architecture is the best available answer.
func nativeArchitecture() Architecture {
	return CurrentArchitecture()
}
