package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProp is the schema fragment shared by every tool that reads an
// image from disk.
func pathProp(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": desc,
	}
}

// connProp is the schema fragment for a connectivity argument.
func connProp() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"enum":        []int{4, 8, 6, 26},
		"description": "Pixel connectivity: 4 or 8 for 2D images, 6 or 26 for 3D stacks. Default 4.",
	}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Masks and metadata
		{
			Name:        "chamfer_presets",
			Description: "List the built-in chamfer masks (city-block, chessboard, borgefors, chess-knight, ...) with their offsets and weights.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dims": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"2d", "3d"},
						"description": "Restrict the listing to planar or volumetric masks. Default: both.",
					},
				},
			},
		},
		{
			Name:        "image_info",
			Description: "Report the dimensions, format, and bit depth of an image file without processing it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},

		// Distance transforms
		{
			Name:        "distance_transform",
			Description: "Chamfer distance transform of a binary image: every foreground pixel receives the weighted distance to the nearest background pixel. Saves the distance map and returns its value range.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp("Absolute path to the binary input image (nonzero = foreground)"),
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "Chamfer mask preset name (see chamfer_presets). Default 'borgefors'.",
					},
					"normalize": map[string]interface{}{
						"type":        "boolean",
						"description": "Divide distances by the mask's shortest weight to approximate Euclidean units. Default false.",
					},
					"float": map[string]interface{}{
						"type":        "boolean",
						"description": "Compute in the float domain with exact weights instead of scaled 16-bit integers. Default false.",
					},
					"invert": map[string]interface{}{
						"type":        "boolean",
						"description": "Invert the input first, measuring distance away from the foreground instead of inside it. Default false.",
					},
					"out_path": pathProp("Where to save the distance map (16-bit PNG or TIFF)"),
				},
				"required": []string{"path", "out_path"},
			},
		},
		{
			Name:        "geodesic_distance",
			Description: "Geodesic distance transform: distance from marker pixels, following paths that never leave the mask region. Pixels outside the region or unreachable within it are reported as the maximum value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"marker_path": pathProp("Binary image of seed pixels (nonzero = seed)"),
					"mask_path":   pathProp("Binary image of the region distances may traverse"),
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "Chamfer mask preset name. Default 'borgefors'.",
					},
					"normalize": map[string]interface{}{
						"type":        "boolean",
						"description": "Divide distances by the mask's shortest weight. Default false.",
					},
					"float": map[string]interface{}{
						"type":        "boolean",
						"description": "Compute in the float domain. Default false.",
					},
					"out_path": pathProp("Where to save the distance map"),
				},
				"required": []string{"marker_path", "mask_path", "out_path"},
			},
		},

		// Reconstruction and extrema
		{
			Name:        "morphological_reconstruction",
			Description: "Morphological reconstruction of a marker image under a mask image, by dilation (marker grows up to the mask) or erosion (marker shrinks down to it). The result is idempotent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"marker_path": pathProp("Marker image"),
					"mask_path":   pathProp("Mask image"),
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"dilation", "erosion"},
						"description": "Reconstruction direction. Default 'dilation'.",
					},
					"connectivity": connProp(),
					"out_path":     pathProp("Where to save the reconstructed image"),
				},
				"required": []string{"marker_path", "mask_path", "out_path"},
			},
		},
		{
			Name:        "regional_extrema",
			Description: "Mark regional minima or maxima of a grayscale image as a binary image. With a positive 'dynamic', marks extended extrema instead: plateaus at least that many gray levels deeper (or higher) than their surroundings, the usual marker source for watershed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp("Grayscale input image"),
					"kind": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"minima", "maxima"},
						"description": "Which extrema to mark. Default 'minima'.",
					},
					"dynamic": map[string]interface{}{
						"type":        "number",
						"description": "Minimum depth/height of an extremum. 0 marks plain regional extrema. Default 0.",
					},
					"connectivity": connProp(),
					"out_path":     pathProp("Where to save the binary extrema image"),
				},
				"required": []string{"path", "out_path"},
			},
		},

		// Labeling
		{
			Name:        "label_components",
			Description: "Connected-components labeling of a binary image: every connected foreground region receives a distinct label, numbered in raster scan order. Returns the component count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProp("Binary input image (nonzero = foreground)"),
					"connectivity": connProp(),
					"bits": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{8, 16, 32},
						"description": "Label map width. Fails with a too-many-regions error when the count does not fit; retry wider. Default 16.",
					},
					"out_path": pathProp("Where to save the label map"),
				},
				"required": []string{"path", "out_path"},
			},
		},
		{
			Name:        "label_filter",
			Description: "Filter a label map: drop labels below a minimum pixel count, keep only the largest label, or remove an explicit label list. Returns how many labels survived.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"labels_path": pathProp("Label map image"),
					"min_size": map[string]interface{}{
						"type":        "integer",
						"description": "Remove labels covering fewer pixels than this. Default 0 (keep all).",
					},
					"keep_largest": map[string]interface{}{
						"type":        "boolean",
						"description": "Keep only the largest label. Applied after min_size. Default false.",
					},
					"remove": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Explicit labels to clear to background.",
					},
					"out_path": pathProp("Where to save the filtered label map"),
				},
				"required": []string{"labels_path", "out_path"},
			},
		},

		// Watershed
		{
			Name:        "watershed",
			Description: "Marker-controlled watershed: flood a grayscale relief from pre-labeled marker regions in order of increasing gray value. Optionally restricted to a mask and optionally building one-pixel watershed lines (label 0) where basins meet.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"relief_path":  pathProp("Grayscale relief image"),
					"markers_path": pathProp("Label map of marker regions (e.g. from label_components)"),
					"mask_path":    pathProp("Optional binary mask restricting the flood"),
					"connectivity": connProp(),
					"dams": map[string]interface{}{
						"type":        "boolean",
						"description": "Build watershed lines between basins. Default false.",
					},
					"out_path": pathProp("Where to save the basin label map"),
				},
				"required": []string{"relief_path", "markers_path", "out_path"},
			},
		},
		{
			Name:        "segment",
			Description: "Full segmentation pipeline: Gaussian smoothing, morphological gradient, extended-minima markers, labeling, and marker-controlled watershed. Returns the region count and per-region statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp("Grayscale input image"),
					"smooth_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian pre-smoothing radius in pixels. Default 2.",
					},
					"gradient_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Structuring element radius of the gradient relief. Default 1.",
					},
					"dynamic": map[string]interface{}{
						"type":        "number",
						"description": "Extended-minima dynamic for marker extraction. Larger values merge shallow basins. Default 10.",
					},
					"connectivity": connProp(),
					"dams": map[string]interface{}{
						"type":        "boolean",
						"description": "Build watershed lines between regions. Default true.",
					},
					"out_path":     pathProp("Where to save the basin label map"),
					"overlay_path": pathProp("Optional path for a color overlay of the regions on the input"),
				},
				"required": []string{"path", "out_path"},
			},
		},

		// Filtering and morphology
		{
			Name:        "attribute_opening",
			Description: "Attribute opening: suppress every bright structure whose attribute (pixel area or bounding-box diagonal) stays below a threshold, leveling it into its surroundings. Works on grayscale and binary images.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp("Input image"),
					"attribute": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"area", "box-diagonal"},
						"description": "Criterion to accumulate per structure. Default 'area'.",
					},
					"lambda": map[string]interface{}{
						"type":        "number",
						"description": "Threshold: structures below it are removed.",
					},
					"binary": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat the input as binary and drop whole components instead of leveling gray values. Default false.",
					},
					"connectivity": connProp(),
					"out_path":     pathProp("Where to save the filtered image"),
				},
				"required": []string{"path", "lambda", "out_path"},
			},
		},
		{
			Name:        "morphology",
			Description: "Basic structuring-element morphology: erode, dilate, open, close, or gradient with a square or cross element of integer radius.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp("Input image"),
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"erode", "dilate", "open", "close", "gradient"},
						"description": "Operation to apply.",
					},
					"shape": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"square", "cross"},
						"description": "Structuring element shape. Default 'square'.",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Structuring element radius in pixels. Default 1.",
					},
					"out_path": pathProp("Where to save the result"),
				},
				"required": []string{"path", "operation", "out_path"},
			},
		},

		// Measurement and rendering
		{
			Name:        "region_measures",
			Description: "Per-region statistics over a label map: pixel count, min/max/mean/stddev/median intensity, centroid, and bounding box. Intensities come from a second image, or from the label map itself when omitted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"labels_path":    pathProp("Label map image"),
					"intensity_path": pathProp("Optional intensity image of the same size"),
				},
				"required": []string{"labels_path"},
			},
		},
		{
			Name:        "label_overlay",
			Description: "Render a label map with a distinct color per label, optionally blended over a grayscale base image. Background and watershed lines stay black (or show the base).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"labels_path": pathProp("Label map image"),
					"base_path":   pathProp("Optional grayscale image to blend under the colors"),
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Label color opacity over the base, 0 to 1. Default 0.5; ignored without base_path.",
					},
					"out_path": pathProp("Where to save the rendered PNG"),
				},
				"required": []string{"labels_path", "out_path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
