// Package server implements the MCP (Model Context Protocol) server
// exposing the morphological analysis tools.
//
// This package is the host-integration layer: it owns all file I/O and
// wire formats, while the algorithm packages underneath it operate on
// grids only.
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
// Masks and metadata:
//   - chamfer_presets: List built-in chamfer masks
//   - image_info: Image dimensions, format, and bit depth
//
// Distance transforms:
//   - distance_transform: Chamfer distance transform
//   - geodesic_distance: Distance confined to a mask region
//
// Reconstruction and extrema:
//   - morphological_reconstruction: Reconstruction by dilation/erosion
//   - regional_extrema: Regional or extended minima/maxima
//
// Labeling:
//   - label_components: Connected-components labeling
//   - label_filter: Size filtering and label removal
//
// Watershed:
//   - watershed: Marker-controlled watershed
//   - segment: Smoothing + gradient + minima + watershed pipeline
//
// Filtering and morphology:
//   - attribute_opening: Area/box-diagonal openings
//   - morphology: Erode/dilate/open/close/gradient
//
// Measurement and rendering:
//   - region_measures: Per-region statistics table
//   - label_overlay: Color rendering of label maps
//
// # Grid Caching
//
// The server keeps an in-memory cache of decoded grids keyed by file
// path, so chains of tool calls against the same input decode it once.
// Tool outputs are written to the paths the caller names and are not
// cached.
//
// # Logging
//
// The server logs through an injected logrus logger, to stderr in the
// shipped binary; stdout carries nothing but protocol responses. Tool
// phase changes are logged at trace level.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
