// fsutil_test.go: Tests for the file-system facade
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("content"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(path) {
		t.Error("Expected FileExists true for an existing file")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("Expected FileExists false for a missing file")
	}
	if FileExists(dir) {
		t.Error("Expected FileExists false for a directory")
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	if !DirectoryExists(dir) {
		t.Error("Expected DirectoryExists true for an existing directory")
	}
	if DirectoryExists(filepath.Join(dir, "missing")) {
		t.Error("Expected DirectoryExists false for a missing directory")
	}

	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if DirectoryExists(path) {
		t.Error("Expected DirectoryExists false for a regular file")
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")

	if err := EnsureDirectory(nested); err != nil {
		t.Fatalf("Expected EnsureDirectory to succeed, got %v", err)
	}
	if !DirectoryExists(nested) {
		t.Error("Expected the nested directory to exist")
	}

	// Idempotent on an existing directory.
	if err := EnsureDirectory(nested); err != nil {
		t.Errorf("Expected EnsureDirectory to be a no-op, got %v", err)
	}
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sized.txt")
	if err := os.WriteFile(path, []byte("12345"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	size, err := FileSize(path)
	if err != nil {
		t.Fatalf("Expected FileSize to succeed, got %v", err)
	}
	if size != 5 {
		t.Errorf("Expected size 5, got %d", size)
	}

	if _, err := FileSize(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
	if _, err := FileSize(dir); err == nil {
		t.Error("Expected an error for a directory")
	}
}

func TestRemoveQuiet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.txt")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	RemoveQuiet(path)
	if FileExists(path) {
		t.Error("Expected the file to be removed")
	}

	// Removing a missing path must not panic.
	RemoveQuiet(path)
}
