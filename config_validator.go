// config_validator.go: Configuration validation and recommendations
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package daedalus

import (
	"fmt"
)

// maxPipePrefixLength keeps generated pipe names comfortably inside the
// platform limits (Unix domain socket paths are capped near 104 bytes
// including the temp directory).
const maxPipePrefixLength = 64

// ConfigValidationResult contains validation results and suggestions
type ConfigValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	Warnings        []string `json:"warnings"`
	Suggestions     []string `json:"suggestions"`
	OptimizedConfig *Config  `json:"optimized_config,omitempty"`
}

// ValidateConfig validates a configuration and provides optimization suggestions
func ValidateConfig(config Config) ConfigValidationResult {
	result := ConfigValidationResult{
		IsValid:     true,
		Warnings:    []string{},
		Suggestions: []string{},
	}

	// Validate resource cache sizing
	if config.EnableResourceCache && config.ResourceCacheSize <= 0 {
		result.IsValid = false
		result.Warnings = append(result.Warnings, "Resource cache size must be greater than 0 when the cache is enabled")
	} else if config.ResourceCacheSize > 1000000 {
		estimated := estimateResourceCacheMemory(config)
		result.Warnings = append(result.Warnings, fmt.Sprintf("Large resource cache (%d entries) may use ~%.1f MB memory",
			config.ResourceCacheSize, float64(estimated)/(1024*1024)))
	}

	if !config.EnableResourceCache && config.ResourceCacheSize > 0 {
		result.Suggestions = append(result.Suggestions, "Resource cache size is set but the cache is disabled; the size is ignored")
	}

	// Validate pipe prefix
	if config.PipePrefix == "" {
		result.IsValid = false
		result.Warnings = append(result.Warnings, "Pipe prefix cannot be empty")
	} else if len(config.PipePrefix) > maxPipePrefixLength {
		result.IsValid = false
		result.Warnings = append(result.Warnings, fmt.Sprintf("Pipe prefix exceeds %d characters and may produce names over the platform limit", maxPipePrefixLength))
	} else if !isPipePrefixSafe(config.PipePrefix) {
		result.IsValid = false
		result.Warnings = append(result.Warnings, "Pipe prefix may only contain letters, digits, '.', '_' and '-'")
	}

	// Validate catalog paths (missing files degrade to the built-in catalog)
	if config.PrimaryResources != "" && !FileExists(config.PrimaryResources) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Primary resource catalog %s does not exist", config.PrimaryResources))
	}
	if config.SharedResources != "" && !FileExists(config.SharedResources) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Shared resource catalog %s does not exist", config.SharedResources))
	}

	// Generate optimized config
	if len(result.Warnings) > 0 || len(result.Suggestions) > 0 {
		result.OptimizedConfig = generateOptimizedConfig(config)
	}

	return result
}

// isPipePrefixSafe reports whether every prefix byte is path- and pipe-safe
func isPipePrefixSafe(prefix string) bool {
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// estimateResourceCacheMemory provides rough memory usage estimation
func estimateResourceCacheMemory(config Config) int64 {
	// Rough estimation: 128 bytes per entry (name + resolved string + metadata)
	const avgEntrySize = int64(128)
	return int64(config.ResourceCacheSize) * avgEntrySize
}

// generateOptimizedConfig creates a corrected version of the config
func generateOptimizedConfig(config Config) *Config {
	optimized := config

	if optimized.EnableResourceCache && optimized.ResourceCacheSize <= 0 {
		optimized.ResourceCacheSize = getDefaultConfig().ResourceCacheSize
	}
	if optimized.ResourceCacheSize > 1000000 {
		optimized.ResourceCacheSize = 1000000
	}

	if optimized.PipePrefix == "" || len(optimized.PipePrefix) > maxPipePrefixLength || !isPipePrefixSafe(optimized.PipePrefix) {
		optimized.PipePrefix = getDefaultConfig().PipePrefix
	}

	if optimized.PrimaryResources != "" && !FileExists(optimized.PrimaryResources) {
		optimized.PrimaryResources = ""
	}
	if optimized.SharedResources != "" && !FileExists(optimized.SharedResources) {
		optimized.SharedResources = ""
	}

	return &optimized
}

// GetConfigRecommendation provides configuration recommendations based on use case
func GetConfigRecommendation(useCase string) Config {
	switch useCase {
	case "development":
		return Config{
			EnableResourceCache: true,
			ResourceCacheSize:   128, // Small and easy to reason about
			PipePrefix:          "daedalus-dev",
		}
	case "build-server":
		return Config{
			EnableResourceCache: true,
			ResourceCacheSize:   8192, // Long-lived daemons resolve the same strings constantly
			PipePrefix:          "daedalus",
		}
	case "memory-constrained":
		return Config{
			EnableResourceCache: false,
			PipePrefix:          "daedalus",
		}
	default:
		return getDefaultConfig()
	}
}
