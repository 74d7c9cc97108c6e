// main_test.go: Tests for the Daedalus debug CLI
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/agilira/daedalus"
)

func TestBuildInspectReport_Sections(t *testing.T) {
	report := buildInspectReport(false)

	for _, section := range []string{"pipe", "architecture", "resources", "config", "memory", "runtime", "timestamp"} {
		if _, ok := report[section]; !ok {
			t.Errorf("Expected report section %q", section)
		}
	}

	pipe := report["pipe"].(map[string]interface{})
	if name, ok := pipe["name"].(string); !ok || name == "" {
		t.Error("Expected a non-empty pipe name in the report")
	}

	arch := report["architecture"].(map[string]interface{})
	if compiled, ok := arch["compiled"].(string); !ok || compiled == "" {
		t.Error("Expected a compiled architecture in the report")
	}
}

func TestBuildInspectReport_JSONEncodable(t *testing.T) {
	report := buildInspectReport(false)
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Expected the report to encode as JSON, got %v", err)
	}
	if !strings.Contains(string(data), "pipe") {
		t.Error("Expected pipe section in the encoded report")
	}
}

func TestWithFields_FoldsPairs(t *testing.T) {
	composer := withFields("catalog loaded", []interface{}{"path", "/tmp/x.json", "entries", 12})
	rendered := composer.String()
	if !strings.Contains(rendered, "catalog loaded") {
		t.Errorf("Expected the message in the rendered composer, got %q", rendered)
	}
}

func TestGripLogger_ImplementsLogger(t *testing.T) {
	var logger daedalus.Logger = gripLogger{}
	// The calls must not panic; output routing is grip's concern.
	logger.Debug("debug event", "k", "v")
	logger.Info("info event")
	logger.Warn("warn event", "odd-trailing-key")
	logger.Error("error event", 42, "non-string key ignored")
}
