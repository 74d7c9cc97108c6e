// strcache_nochecks.go: Default no-op release assertions for the builder cache
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build !strcachechecks

package daedalus

// In regular builds a repeated Release simply overwrites the parked builder
// (last release wins); the earlier builder becomes ordinary garbage.
const builderCacheChecks = false
