// procarch.go: Processor architecture probe for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"runtime"
	"strings"
)

// Architecture identifies a processor architecture family.
type Architecture string

// Recognized processor architectures
const (
	ArchX86     Architecture = "x86"
	ArchAMD64   Architecture = "amd64"
	ArchARM     Architecture = "arm"
	ArchARM64   Architecture = "arm64"
	ArchRISCV64 Architecture = "riscv64"
	ArchUnknown Architecture = "unknown"
)

// String returns the canonical lowercase architecture name.
func (a Architecture) String() string {
	return string(a)
}

// CurrentArchitecture returns the architecture this binary was compiled for.
func CurrentArchitecture() Architecture {
	return normalizeArchitecture(runtime.GOARCH)
}

// NativeArchitecture returns the architecture of the underlying machine,
// which differs from CurrentArchitecture when the binary runs under
// emulation or a 32-bit binary runs on a 64-bit OS. Platforms without a
// probe fall back to CurrentArchitecture.
func NativeArchitecture() Architecture {
	return nativeArchitecture()
}

// normalizeArchitecture maps the names reported by compilers, kernels and
// environment probes onto the canonical Architecture values.
func normalizeArchitecture(name string) Architecture {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "amd64", "x86_64", "x64":
		return ArchAMD64
	case "386", "i386", "i486", "i586", "i686", "x86":
		return ArchX86
	case "arm64", "aarch64":
		return ArchARM64
	case "arm", "armv6l", "armv7l":
		return ArchARM
	case "riscv64":
		return ArchRISCV64
	default:
		return ArchUnknown
	}
}
