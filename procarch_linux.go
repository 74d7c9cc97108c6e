// procarch_linux.go: Native architecture probe via uname
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build linux

package daedalus

import (
	"golang.org/x/sys/unix"
)

// nativeArchitecture reads the machine field of uname(2), which reports the
// kernel's architecture regardless of what this binary was compiled for.
func nativeArchitecture() Architecture {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return CurrentArchitecture()
	}
	return normalizeArchitecture(unix.ByteSliceToString(uts.Machine[:]))
}
