package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": desc,
	}
}

// searchProperties are the arguments shared by the tools that run a search.
func searchProperties() map[string]interface{} {
	return map[string]interface{}{
		"path":        pathProperty("Absolute path to the image to search in (the haystack)"),
		"needle_path": pathProperty("Absolute path to the image to look for (the needle). At most 480000 pixels."),
		"tolerance": map[string]interface{}{
			"type":        "integer",
			"description": "Allowed difference on every color channel, 0-255. Default 0 (exact).",
			"minimum":     0,
			"maximum":     255,
		},
		"tolerance_r": map[string]interface{}{
			"type":        "integer",
			"description": "Allowed red difference, overrides tolerance",
		},
		"tolerance_g": map[string]interface{}{
			"type":        "integer",
			"description": "Allowed green difference, overrides tolerance",
		},
		"tolerance_b": map[string]interface{}{
			"type":        "integer",
			"description": "Allowed blue difference, overrides tolerance",
		},
		"pattern_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Skip needle pixels whose brightness (r+g+b) is within this of the last sampled pixel. 0 samples every pixel. Larger is faster but more prone to false matches. 0-765, default 0.",
			"minimum":     0,
			"maximum":     765,
		},
		"max_matches": map[string]interface{}{
			"type":        "integer",
			"description": "Stop after this many matches. 0 (default) reports all.",
		},
		"parallel": map[string]interface{}{
			"type":        "boolean",
			"description": "Scan rows on all CPUs. Results are identical. Default false.",
		},
		"flush_edges": map[string]interface{}{
			"type":        "boolean",
			"description": "Also report needles touching the haystack's right or bottom edge. Default false, which matches the image-grep command's output.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	highlightProps := searchProperties()
	highlightProps["color"] = map[string]interface{}{
		"type":        "string",
		"description": "Outline color as #RRGGBB. Default #FF0000",
	}
	highlightProps["labels"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Write each match's x,y next to its outline. Default true",
	}

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file (BMP, PNG, JPEG, GIF) and return its dimensions, format and pixel count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Cut a rectangular region from an image, optionally saving it to a file for use as a needle. Returns the region as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"save_path": pathProperty("Optional file to write the region to. The extension picks the format (.bmp, .png, ...)."),
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color and brightness at a pixel, as the search sees it. Useful for choosing a tolerance or pattern threshold.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_find",
			Description: "Find every position where the needle image occurs inside the haystack image, pixel for pixel within a per-channel tolerance. Returns top-left coordinates in row-major order.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": searchProperties(),
				"required":   []string{"path", "needle_path"},
			},
		},
		{
			Name:        "image_highlight_matches",
			Description: "Run image_find and return the haystack with every match outlined, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": highlightProps,
				"required":   []string{"path", "needle_path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
