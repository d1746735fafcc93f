// Package server implements an MCP (Model Context Protocol) server for
// image search.
//
// It exposes package search to MCP clients so that an assistant can ask
// "where on this screenshot is this button?" and get exact pixel positions
// back, then check the answer visually.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Needle Preparation:
//   - image_crop: Cut a region out, optionally saving it as a needle file
//   - image_sample_color: Color and brightness at a pixel
//
// Search:
//   - image_find: Locate a needle in a haystack
//   - image_highlight_matches: Locate and return an outlined image
//
// # Image Caching
//
// Loaded images are cached by path for the lifetime of the process, so
// repeated searches against the same screenshot decode it only once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// A needle over search.MaxPatternPixels is reported this way; its data
// contains "pattern too large".
package server
