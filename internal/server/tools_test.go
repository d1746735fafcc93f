package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_crop",
		"image_sample_color",
		"image_find",
		"image_highlight_matches",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
				}
				if _, ok := props[r]; !ok {
					t.Errorf("required %q has no property", r)
				}
			}
			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_SearchArguments(t *testing.T) {
	want := []string{
		"needle_path",
		"tolerance",
		"tolerance_r",
		"tolerance_g",
		"tolerance_b",
		"pattern_threshold",
		"max_matches",
		"parallel",
		"flush_edges",
	}

	for _, tool := range GetToolDefinitions() {
		if tool.Name != "image_find" && tool.Name != "image_highlight_matches" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		for _, name := range want {
			if _, ok := props[name]; !ok {
				t.Errorf("%s: missing property %s", tool.Name, name)
			}
		}
	}
}

func TestToolDefinitions_HighlightDoesNotLeakIntoFind(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "image_find" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		if _, ok := props["color"]; ok {
			t.Error("image_find should not accept a color")
		}
	}
}
