// types.go: Core types for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

// Logger interface for optional debug and monitoring logging
type Logger interface {
	// Debug logs debug-level messages (cache hits, catalog fallbacks, etc.)
	Debug(msg string, fields ...interface{})
	// Info logs informational messages (catalog loads, config changes)
	Info(msg string, fields ...interface{})
	// Warn logs warning messages (missing resource names, degraded lookups)
	Warn(msg string, fields ...interface{})
	// Error logs error messages (failed catalog loads, critical issues)
	Error(msg string, fields ...interface{})
}

// Config defines the configuration for the Daedalus utilities
type Config struct {
	// EnableResourceCache turns the otter-backed memoization of resolved
	// resource strings on or off. Default: true.
	EnableResourceCache bool `json:"enable_resource_cache"`
	// ResourceCacheSize controls the number of resolved resource strings the
	// memoization cache may hold. Default: 1024.
	ResourceCacheSize int `json:"resource_cache_size,omitempty"`
	// PrimaryResources is an optional path to a JSON file with the primary
	// resource catalog (looked up before the shared catalog).
	PrimaryResources string `json:"primary_resources,omitempty"`
	// SharedResources is an optional path to a JSON file with the shared
	// fallback catalog; entries there are shadowed by the primary catalog.
	SharedResources string `json:"shared_resources,omitempty"`
	// PipePrefix is the leading component of generated pipe names.
	// Default: "daedalus".
	PipePrefix string `json:"pipe_prefix,omitempty"`
	// Logger for debug and monitoring (optional, can be nil)
	Logger Logger `json:"-"`
}
