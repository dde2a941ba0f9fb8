// Package server implements the MCP (Model Context Protocol) server for the
// document scanner.
//
// This package provides a JSON-RPC 2.0 server that exposes the detection and
// extraction pipeline through the MCP protocol, so MCP-compatible clients can
// hand photo-to-scan work to a local tool.
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
// Image access:
//   - image_load: Load an image and return it as base64 PNG, optionally
//     scaled down to fit a bounding box
//   - image_dimensions: Get size, format, color depth, alpha, file size
//
// Document pipeline:
//   - document_detect: Find the dominant document, return corners and outline
//   - document_edges: The detector's binary edge map, or traced contours in
//     distinct colors (debugging aid)
//   - document_extract: Perspective-corrected page, optionally enhanced
//     (gray, mono, crisp)
//   - document_highlight: The photo with the detected outline drawn on it
//
// Detection tools accept the same tuning arguments (thresholds, minimum
// contour area, working-image cap); omitted values fall back to the
// environment-driven configuration from internal/config.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O
// and repeated EXIF correction. The cache persists for the lifetime of the
// server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A photo in which no document is found is not an error: document_detect
// reports it as a result with success=false and a message.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Load())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Logs go to stderr; stdout carries only protocol traffic.
package server
