package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Access
		{
			Name:        "image_load",
			Description: "Load an image file and return it as base64-encoded PNG, optionally scaled down to fit within max_width/max_height. Decodes PNG, JPEG, GIF, BMP, TIFF and WebP; JPEG EXIF orientation is applied. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Scale down to fit this width in pixels. 0 leaves the width unconstrained; the image is never scaled up.",
						"default":     0,
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Scale down to fit this height in pixels. 0 leaves the height unconstrained.",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the dimensions, format, color depth, alpha presence and file size of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Document Pipeline
		{
			Name:        "document_detect",
			Description: "Detect the dominant document (paper page, receipt, card) in a photo. Returns the four corner coordinates clockwise from top-left plus the traced outline, in original image coordinates. A photo with no document is a successful call with success=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"low_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis low threshold for edge detection (default 75, or DOCSCAN_LOW_THRESHOLD)",
						"default":     75,
					},
					"high_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis high threshold for edge detection (default 200, or DOCSCAN_HIGH_THRESHOLD)",
						"default":     200,
					},
					"min_area": map[string]interface{}{
						"type":        "number",
						"description": "Smallest contour area in working-image pixels still considered a document (default 1000)",
						"default":     1000,
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the detection working image (default 800). Negative disables downscaling.",
						"default":     800,
					},
					"dilation_kernel_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge dilation kernel size; closes small gaps in the outline. 1 disables dilation (default 3).",
						"default":     3,
					},
					"l2_gradient": map[string]interface{}{
						"type":        "boolean",
						"description": "Use the Euclidean gradient magnitude instead of |gx|+|gy|",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_edges",
			Description: "Return the binary edge map the detector works from, as base64-encoded PNG. With show_contours, each traced contour is rendered in a distinct color instead. Debugging aid for tuning thresholds on a problem photo.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"low_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis low threshold (default 75)",
						"default":     75,
					},
					"high_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis high threshold (default 200)",
						"default":     200,
					},
					"min_area": map[string]interface{}{
						"type":        "number",
						"description": "Smallest contour area to render; only used with show_contours (default 1000)",
						"default":     1000,
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the working image; the edge map comes back at this scale (default 800). Negative disables downscaling.",
						"default":     800,
					},
					"dilation_kernel_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge dilation kernel size; 1 disables dilation (default 3)",
						"default":     3,
					},
					"l2_gradient": map[string]interface{}{
						"type":        "boolean",
						"description": "Use the Euclidean gradient magnitude instead of |gx|+|gy|",
						"default":     false,
					},
					"show_contours": map[string]interface{}{
						"type":        "boolean",
						"description": "Render traced contours in distinct colors instead of the raw edge bitmap",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_extract",
			Description: "Extract the document as a perspective-corrected page, returned as base64-encoded PNG together with the corners it was cut from. Corners are auto-detected unless given explicitly.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"corners": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "number"},
								"y": map[string]interface{}{"type": "number"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Exactly 4 corner points, clockwise from top-left, in original image coordinates. Omit to auto-detect.",
					},
					"enhance": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"none", "gray", "mono", "crisp"},
						"description": "Post-processing for the extracted page (default none)",
						"default":     "none",
					},
					"low_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis low threshold for auto-detection (default 75)",
						"default":     75,
					},
					"high_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis high threshold for auto-detection (default 200)",
						"default":     200,
					},
					"min_area": map[string]interface{}{
						"type":        "number",
						"description": "Smallest contour area considered a document (default 1000)",
						"default":     1000,
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the detection working image (default 800)",
						"default":     800,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_highlight",
			Description: "Return the photo with the document outline drawn on it as base64-encoded PNG: the four edges in the given color, a contrasting marker on each corner. Corners are auto-detected unless given explicitly.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"corners": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "number"},
								"y": map[string]interface{}{"type": "number"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Exactly 4 corner points, clockwise from top-left. Omit to auto-detect.",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color as #rrggbb or #rrggbbaa (default #00ff00)",
						"default":     "#00ff00",
					},
					"thickness": map[string]interface{}{
						"type":        "integer",
						"description": "Outline thickness in pixels (default 3)",
						"default":     3,
					},
					"low_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis low threshold for auto-detection (default 75)",
						"default":     75,
					},
					"high_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Hysteresis high threshold for auto-detection (default 200)",
						"default":     200,
					},
					"min_area": map[string]interface{}{
						"type":        "number",
						"description": "Smallest contour area considered a document (default 1000)",
						"default":     1000,
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the detection working image (default 800)",
						"default":     800,
					},
				},
				"required": []string{"path"},
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
