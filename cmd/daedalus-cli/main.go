// /cmd/daedalus-cli/main.go: CLI tool for easy Daedalus configuration generation
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SimpleConfig represents a basic daedalus.json configuration
type SimpleConfig struct {
	EnableResourceCache bool   `json:"enable_resource_cache"`
	ResourceCacheSize   int    `json:"resource_cache_size,omitempty"`
	PrimaryResources    string `json:"primary_resources,omitempty"`
	SharedResources     string `json:"shared_resources,omitempty"`
	PipePrefix          string `json:"pipe_prefix,omitempty"`
}

func main() {
	fmt.Println("🚀 Daedalus Configuration Generator")
	fmt.Println("===================================")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	// Ask about use case
	fmt.Println("What's your primary use case?")
	fmt.Println("1. Development/Testing (small, easy to reason about)")
	fmt.Println("2. Build Server (long-lived daemon, large lookup cache)")
	fmt.Println("3. Memory-Constrained (lookup cache disabled)")
	fmt.Println("4. Custom configuration")
	fmt.Println("5. Exit")
	fmt.Print("Choose (1-5): ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	if choice == "5" {
		fmt.Println("👋 Goodbye!")
		os.Exit(0)
	}

	var config SimpleConfig
	if choice == "4" {
		config = customConfig(reader)
	} else {
		config = presetConfig(choice)
	}

	if err := writeConfig("daedalus.json", config); err != nil {
		fmt.Printf("Error writing daedalus.json: %v\n", err)
		return
	}

	data, _ := json.MarshalIndent(config, "", "  ")
	fmt.Println("\n✅ Generated daedalus.json successfully!")
	fmt.Println("📝 Content:")
	fmt.Println(string(data))
	fmt.Println("\n🚀 You can now use daedalus.GetString() in your code!")
}

// presetConfig maps a menu choice onto a ready-made configuration.
func presetConfig(choice string) SimpleConfig {
	switch choice {
	case "1":
		return SimpleConfig{
			EnableResourceCache: true,
			ResourceCacheSize:   128,
			PipePrefix:          "daedalus-dev",
		}
	case "2":
		return SimpleConfig{
			EnableResourceCache: true,
			ResourceCacheSize:   8192,
			PipePrefix:          "daedalus",
		}
	case "3":
		return SimpleConfig{
			EnableResourceCache: false,
			PipePrefix:          "daedalus",
		}
	default:
		fmt.Println("Invalid choice, using development defaults")
		return SimpleConfig{
			EnableResourceCache: true,
			ResourceCacheSize:   128,
			PipePrefix:          "daedalus-dev",
		}
	}
}

func customConfig(reader *bufio.Reader) SimpleConfig {
	config := SimpleConfig{EnableResourceCache: true}

	fmt.Print("Resource cache size (number of resolved strings): ")
	if sizeStr, _ := reader.ReadString('\n'); sizeStr != "" {
		if size, err := strconv.Atoi(strings.TrimSpace(sizeStr)); err == nil {
			config.ResourceCacheSize = size
		}
	}

	fmt.Print("Pipe prefix (empty for 'daedalus'): ")
	if prefix, _ := reader.ReadString('\n'); prefix != "" {
		config.PipePrefix = strings.TrimSpace(prefix)
	}

	fmt.Print("Primary resource catalog path (empty for built-in): ")
	if path, _ := reader.ReadString('\n'); path != "" {
		config.PrimaryResources = strings.TrimSpace(path)
	}

	fmt.Print("Shared resource catalog path (empty for built-in): ")
	if path, _ := reader.ReadString('\n'); path != "" {
		config.SharedResources = strings.TrimSpace(path)
	}

	return config
}

// writeConfig marshals the configuration and writes it next to the caller.
func writeConfig(path string, config SimpleConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
