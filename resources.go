// resources.go: Two-tier resource string catalog for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maypok86/otter"
	"github.com/pkg/errors"
)

// builtinSharedResources is the stock shared catalog. It backs every lookup
// that neither the primary nor a configured shared catalog resolves, so the
// zero-configuration path always produces a usable string.
var builtinSharedResources = map[string]string{
	"build.started":           "Build started for target %s",
	"build.finished":          "Build finished for target %s in %s",
	"build.failed":            "Build failed for target %s: %s",
	"build.up_to_date":        "Target %s is up to date",
	"error.file_not_found":    "Cannot open file %s",
	"error.dir_not_found":     "Cannot open directory %s",
	"error.invalid_target":    "Invalid target name: %s",
	"error.pipe_unavailable":  "Cannot connect to pipe %s",
	"error.unsupported_arch":  "Unsupported processor architecture: %s",
	"tool.version":            "%s version %s (%s)",
	"tool.usage":              "Usage: %s [options] <target>",
	"worker.started":          "Worker %d started",
	"worker.finished":         "Worker %d finished after %d operations",
	"pipe.listening":          "Listening on pipe %s",
	"pipe.connected":          "Connected to pipe %s",
	"config.loaded":           "Configuration loaded from %s",
	"config.invalid":          "Invalid configuration: %s",
	"resource.catalog_loaded": "Resource catalog loaded: %d entries from %s",
}

// ResourceStats provides simplified lookup-cache statistics
type ResourceStats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	Enabled bool    `json:"enabled"`
}

// String returns a human-readable representation of catalog stats
func (s ResourceStats) String() string {
	if !s.Enabled {
		return "Resource Stats: cache disabled"
	}
	return fmt.Sprintf("Resource Stats: %d hits, %d misses, %.1f%% hit rate",
		s.Hits, s.Misses, s.HitRate)
}

// ResourceCatalog resolves resource names to display strings through a
// two-tier chain: the primary catalog is consulted first, then the shared
// catalog. Resolved names are memoized in an otter cache when enabled, so
// hot names skip the map chain entirely.
//
// A ResourceCatalog is safe for concurrent use after construction: the
// catalog maps are read-only once loaded and otter handles its own
// synchronization.
type ResourceCatalog struct {
	primary map[string]string
	shared  map[string]string
	cache   otter.Cache[string, string]
	cacheOn bool
	logger  Logger
}

// NewResourceCatalog builds a catalog from the given configuration.
//
// The shared tier starts from the built-in catalog; a configured shared
// catalog file overlays it, and the primary catalog file (if any) forms the
// first tier. Catalog files are flat JSON objects mapping names to strings.
func NewResourceCatalog(config Config) (*ResourceCatalog, error) {
	c := &ResourceCatalog{
		primary: map[string]string{},
		shared:  map[string]string{},
		logger:  config.Logger,
	}

	for name, value := range builtinSharedResources {
		c.shared[name] = value
	}

	if config.SharedResources != "" {
		entries, err := loadCatalogFile(config.SharedResources)
		if err != nil {
			return nil, err
		}
		for name, value := range entries {
			c.shared[name] = value
		}
		c.logf("shared resource catalog loaded", "path", config.SharedResources, "entries", len(entries))
	}

	if config.PrimaryResources != "" {
		entries, err := loadCatalogFile(config.PrimaryResources)
		if err != nil {
			return nil, err
		}
		c.primary = entries
		c.logf("primary resource catalog loaded", "path", config.PrimaryResources, "entries", len(entries))
	}

	if config.EnableResourceCache {
		size := config.ResourceCacheSize
		if size <= 0 {
			size = getDefaultConfig().ResourceCacheSize
		}
		cache, err := otter.MustBuilder[string, string](size).
			CollectStats().
			Build()
		if err != nil {
			return nil, errors.Wrap(err, "failed to build resource lookup cache")
		}
		c.cache = cache
		c.cacheOn = true
	}

	return c, nil
}

// loadCatalogFile reads a flat JSON object of resource names to strings.
func loadCatalogFile(path string) (map[string]string, error) {
	if !FileExists(path) {
		return nil, errors.Errorf("resource catalog %s does not exist", path)
	}

	data, err := os.ReadFile(path) // nosec G304 - catalog paths come from validated config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read resource catalog %s", path)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to parse resource catalog %s", path)
	}

	return entries, nil
}

// Lookup resolves a resource name through the primary/shared chain.
//
// The second return is false when neither tier knows the name. Misses are
// never memoized, so a name added by a later catalog reload stays reachable.
func (c *ResourceCatalog) Lookup(name string) (string, bool) {
	if c.cacheOn {
		if value, ok := c.cache.Get(name); ok {
			return value, true
		}
	}

	value, ok := c.primary[name]
	if !ok {
		value, ok = c.shared[name]
		if ok {
			c.logf("resource name resolved by shared catalog", "name", name)
		}
	}
	if !ok {
		if c.logger != nil {
			c.logger.Warn("resource name not found", "name", name)
		}
		return "", false
	}

	if c.cacheOn {
		c.cache.Set(name, value)
	}
	return value, true
}

// FormatString resolves a resource name and formats it with the given
// arguments. A missing name is an error; formatting itself cannot fail
// (fmt conventions apply for mismatched verbs).
func (c *ResourceCatalog) FormatString(name string, args ...interface{}) (string, error) {
	format, ok := c.Lookup(name)
	if !ok {
		return "", errors.Errorf("unknown resource name: %s", name)
	}
	if len(args) == 0 {
		return format, nil
	}

	buf := getBuffer()
	fmt.Fprintf(buf, format, args...)
	s := buf.String()
	putBuffer(buf)
	return s, nil
}

// Stats returns lookup-cache statistics. All counters are zero when the
// memoization cache is disabled.
func (c *ResourceCatalog) Stats() ResourceStats {
	if !c.cacheOn {
		return ResourceStats{}
	}

	s := c.cache.Stats()
	return ResourceStats{
		Hits:    s.Hits(),
		Misses:  s.Misses(),
		HitRate: s.Ratio() * 100.0,
		Enabled: true,
	}
}

// Close releases the memoization cache. The catalog maps stay readable, but
// callers are expected to discard the catalog after Close.
func (c *ResourceCatalog) Close() {
	if c.cacheOn {
		c.cache.Close()
		c.cacheOn = false
	}
}

// logf emits a debug event to the configured logger, if any.
func (c *ResourceCatalog) logf(msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields...)
	}
}
