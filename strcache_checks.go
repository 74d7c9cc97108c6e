// strcache_checks.go: Debug-build release assertions for the builder cache
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build strcachechecks

package daedalus

// builderCacheChecks turns a double Release without an intervening Acquire
// into a panic instead of silently parking over the earlier builder.
const builderCacheChecks = true
