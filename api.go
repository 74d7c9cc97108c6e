// api.go: Simplified API layer for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"sync"
)

// Default catalog state
var (
	defaultCatalogMu sync.Mutex
	defaultCatalog   *ResourceCatalog
)

// DefaultCatalog returns the process-wide resource catalog, building it on
// first use with automatic configuration loading.
// Priority: Go config > JSON config > defaults
//
// A catalog built from a broken configuration (unreadable catalog file)
// falls back to the built-in shared catalog so lookups keep working.
func DefaultCatalog() *ResourceCatalog {
	defaultCatalogMu.Lock()
	defer defaultCatalogMu.Unlock()

	if defaultCatalog == nil {
		config := loadConfig()
		catalog, err := NewResourceCatalog(config)
		if err != nil {
			if config.Logger != nil {
				config.Logger.Error("failed to build resource catalog, using built-in strings", "error", err)
			}
			catalog, _ = NewResourceCatalog(getDefaultConfig())
		}
		defaultCatalog = catalog
	}

	return defaultCatalog
}

// GetString resolves a resource name through the default catalog.
func GetString(name string) (string, bool) {
	return DefaultCatalog().Lookup(name)
}

// FormatString resolves and formats a resource name through the default
// catalog.
func FormatString(name string, args ...interface{}) (string, error) {
	return DefaultCatalog().FormatString(name, args...)
}

// GetResourceStats returns lookup-cache statistics for the default catalog.
func GetResourceStats() ResourceStats {
	return DefaultCatalog().Stats()
}

// CloseDefaultCatalog releases the default catalog and its lookup cache.
// The next GetString rebuilds it from the current configuration, so this
// also serves as a reload after a configuration change.
func CloseDefaultCatalog() {
	defaultCatalogMu.Lock()
	defer defaultCatalogMu.Unlock()

	if defaultCatalog != nil {
		defaultCatalog.Close()
		defaultCatalog = nil
	}
}
