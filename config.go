// config.go: Configuration system for Daedalus build utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// fileConfig mirrors the daedalus.json layout. EnableResourceCache is a
// pointer so an omitted key keeps the default instead of forcing false.
type fileConfig struct {
	EnableResourceCache *bool  `json:"enable_resource_cache"`
	ResourceCacheSize   int    `json:"resource_cache_size"`
	PrimaryResources    string `json:"primary_resources"`
	SharedResources     string `json:"shared_resources"`
	PipePrefix          string `json:"pipe_prefix"`
}

// Global configuration state
var (
	globalConfig *Config
	configMutex  sync.RWMutex
)

// SetGlobalConfig sets the global configuration for power users
// This should be called in init() function of a daedalus_config.go file
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = &config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// loadConfig loads configuration with priority: Go config > JSON config > defaults
func loadConfig() Config {
	// Check if power user has set global config via Go file
	if config := GetGlobalConfig(); config != nil {
		return *config
	}

	// Try to load from daedalus.json
	if config, err := loadJSONConfig(); err == nil {
		return config
	}

	// Return sensible defaults
	return getDefaultConfig()
}

// loadJSONConfig loads configuration from daedalus.json
func loadJSONConfig() (Config, error) {
	configPath := findConfigFile()
	if configPath == "" {
		return Config{}, errors.New("daedalus.json not found")
	}

	if filepath.Base(configPath) != "daedalus.json" || strings.Contains(configPath, "..") {
		return Config{}, errors.Errorf("invalid config file path: %s", configPath)
	}
	// nosec G304 - configPath is validated above to prevent path traversal
	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", configPath)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse %s", configPath)
	}

	// Apply file values over the defaults
	config := getDefaultConfig()

	if fc.EnableResourceCache != nil {
		config.EnableResourceCache = *fc.EnableResourceCache
	}

	if fc.ResourceCacheSize > 0 {
		config.ResourceCacheSize = fc.ResourceCacheSize
	}

	if fc.PrimaryResources != "" {
		config.PrimaryResources = fc.PrimaryResources
	}

	if fc.SharedResources != "" {
		config.SharedResources = fc.SharedResources
	}

	if fc.PipePrefix != "" {
		config.PipePrefix = fc.PipePrefix
	}

	return config, nil
}

// findConfigFile searches for daedalus.json in current and parent directories
func findConfigFile() string {
	// Start from current directory
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up to 5 parent directories
	for i := 0; i < 5; i++ {
		configPath := filepath.Join(dir, "daedalus.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}

// getDefaultConfig returns the zero-configuration defaults
func getDefaultConfig() Config {
	return Config{
		EnableResourceCache: true,
		ResourceCacheSize:   1024, // Resolved strings are small; 1K entries is plenty
		PrimaryResources:    "",   // Built-in shared catalog only
		SharedResources:     "",
		PipePrefix:          "daedalus",
	}
}

// LoadConfig loads the current configuration (for debugging/inspection)
func LoadConfig() Config {
	return loadConfig()
}

// GetConfigSource returns information about the configuration source
func GetConfigSource() string {
	if GetGlobalConfig() != nil {
		return "Go configuration (daedalus_config.go)"
	}

	if findConfigFile() != "" {
		return "JSON configuration (daedalus.json)"
	}

	return "Default configuration"
}

// GetConfigInfo returns information about the current configuration
func GetConfigInfo() string {
	config := LoadConfig()
	source := GetConfigSource()

	return fmt.Sprintf("Configuration Source: %s\nResource Cache: %v (size %d)\nPrimary Resources: %s\nShared Resources: %s\nPipe Prefix: %s",
		source, config.EnableResourceCache, config.ResourceCacheSize,
		orBuiltin(config.PrimaryResources), orBuiltin(config.SharedResources), config.PipePrefix)
}

// orBuiltin substitutes a readable marker for empty catalog path values
func orBuiltin(s string) string {
	if s == "" {
		return "(built-in)"
	}
	return s
}
