// fsutil.go: File-system facade for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"os"

	"github.com/pkg/errors"
)

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirectoryExists reports whether path exists and is a directory.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectory creates path and any missing parents. It is a no-op when
// the directory already exists.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0750); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}
	return nil
}

// FileSize returns the size of the regular file at path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return 0, errors.Errorf("%s is not a regular file", path)
	}
	return info.Size(), nil
}

// RemoveQuiet removes path, ignoring any error. Used for best-effort cleanup
// of generated artifacts (profiles, result exports, stale pipes).
func RemoveQuiet(path string) {
	_ = os.Remove(path)
}
