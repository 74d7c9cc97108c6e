// procarch_test.go: Tests for the processor architecture probe
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"runtime"
	"testing"
)

func TestNormalizeArchitecture(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Architecture
	}{
		{"go amd64", "amd64", ArchAMD64},
		{"kernel x86_64", "x86_64", ArchAMD64},
		{"windows env AMD64", "AMD64", ArchAMD64},
		{"msvc x64", "x64", ArchAMD64},
		{"go 386", "386", ArchX86},
		{"kernel i686", "i686", ArchX86},
		{"windows env x86", "x86", ArchX86},
		{"go arm64", "arm64", ArchARM64},
		{"kernel aarch64", "aarch64", ArchARM64},
		{"kernel armv7l", "armv7l", ArchARM},
		{"go arm", "arm", ArchARM},
		{"riscv64", "riscv64", ArchRISCV64},
		{"whitespace tolerated", "  x86_64\n", ArchAMD64},
		{"unknown machine", "s390x", ArchUnknown},
		{"empty", "", ArchUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeArchitecture(tt.in); got != tt.want {
				t.Errorf("normalizeArchitecture(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCurrentArchitecture(t *testing.T) {
	arch := CurrentArchitecture()
	if arch == "" {
		t.Fatal("Expected a non-empty architecture")
	}
	if arch != normalizeArchitecture(runtime.GOARCH) {
		t.Errorf("Expected CurrentArchitecture to follow GOARCH, got %s for %s", arch, runtime.GOARCH)
	}
	if arch.String() != string(arch) {
		t.Error("Expected String to return the canonical name")
	}
}

func TestNativeArchitecture(t *testing.T) {
	arch := NativeArchitecture()
	if arch == "" {
		t.Fatal("Expected a non-empty native architecture")
	}

	// On the common CI platforms the native machine is a superset of the
	// compiled architecture: a 64-bit kernel never reports a 32-bit machine
	// for a 64-bit binary.
	if CurrentArchitecture() == ArchAMD64 && arch == ArchX86 {
		t.Errorf("Unexpected 32-bit native report %s for an amd64 binary", arch)
	}
}
