package server

import (
	"encoding/json"
	"fmt"

	"github.com/pagefold/docscan-mcp/internal/contour"
	"github.com/pagefold/docscan-mcp/internal/geom"
	"github.com/pagefold/docscan-mcp/internal/imaging"
	"github.com/pagefold/docscan-mcp/internal/scan"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "document_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills optional parameters from the server configuration
//  3. Loads the image through the cache
//  4. Calls into the scan/imaging packages
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	s.debugf("executing tool %s", name)

	switch name {
	// Image Access
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Document Pipeline
	case "document_detect":
		return s.handleDocumentDetect(args)
	case "document_edges":
		return s.handleDocumentEdges(args)
	case "document_extract":
		return s.handleDocumentExtract(args)
	case "document_highlight":
		return s.handleDocumentHighlight(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// scanOptions builds detection options from the server configuration plus
// per-call overrides. Zero-valued overrides keep the configured values; a
// negative maxDimension disables working-image downscaling.
func (s *Server) scanOptions(low, high int, minArea float64, maxDimension int) scan.Options {
	opts := scan.DefaultOptions()
	opts.LowThreshold = s.cfg.LowThreshold
	opts.HighThreshold = s.cfg.HighThreshold
	opts.MinArea = s.cfg.MinArea
	opts.MaxProcessingDimension = s.cfg.MaxDimension
	opts.Accelerator = s.pool

	if low > 0 {
		opts.LowThreshold = low
	}
	if high > 0 {
		opts.HighThreshold = high
	}
	if minArea > 0 {
		opts.MinArea = minArea
	}
	if maxDimension != 0 {
		opts.MaxProcessingDimension = maxDimension
	}
	return opts
}

// === Image Access Handlers ===

type imageLoadArgs struct {
	Path      string `json:"path"`
	MaxWidth  int    `json:"max_width"`
	MaxHeight int    `json:"max_height"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImage(s.cache, a.Path, a.MaxWidth, a.MaxHeight)
}

type imageDimensionsArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageDimensionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Document Pipeline Handlers ===

// cornerPoint is the JSON shape of one manually supplied corner.
type cornerPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// parseCorners converts a 4-element corner array, clockwise from top-left,
// into a corner set. A nil slice returns nil, which means auto-detect.
func parseCorners(pts []cornerPoint) (*geom.Corners, error) {
	if pts == nil {
		return nil, nil
	}
	if len(pts) != 4 {
		return nil, fmt.Errorf("corners must hold exactly 4 points, got %d", len(pts))
	}
	return &geom.Corners{
		TopLeft:     geom.Point{X: pts[0].X, Y: pts[0].Y},
		TopRight:    geom.Point{X: pts[1].X, Y: pts[1].Y},
		BottomRight: geom.Point{X: pts[2].X, Y: pts[2].Y},
		BottomLeft:  geom.Point{X: pts[3].X, Y: pts[3].Y},
	}, nil
}

type documentDetectArgs struct {
	Path               string  `json:"path"`
	LowThreshold       int     `json:"low_threshold"`
	HighThreshold      int     `json:"high_threshold"`
	MinArea            float64 `json:"min_area"`
	MaxDimension       int     `json:"max_dimension"`
	DilationKernelSize int     `json:"dilation_kernel_size"`
	L2Gradient         bool    `json:"l2_gradient"`
}

// detectResult is the document_detect payload: the detection outcome plus
// the pixel size of the inspected image.
type detectResult struct {
	scan.Result
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleDocumentDetect(args json.RawMessage) (interface{}, error) {
	var a documentDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := s.scanOptions(a.LowThreshold, a.HighThreshold, a.MinArea, a.MaxDimension)
	if a.DilationKernelSize > 0 {
		opts.DilationKernelSize = a.DilationKernelSize
	}
	opts.L2Gradient = a.L2Gradient

	res, err := scan.Detect(img, opts)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &detectResult{Result: *res, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

type documentEdgesArgs struct {
	Path               string  `json:"path"`
	LowThreshold       int     `json:"low_threshold"`
	HighThreshold      int     `json:"high_threshold"`
	MinArea            float64 `json:"min_area"`
	MaxDimension       int     `json:"max_dimension"`
	DilationKernelSize int     `json:"dilation_kernel_size"`
	L2Gradient         bool    `json:"l2_gradient"`
	ShowContours       bool    `json:"show_contours"`
}

func (s *Server) handleDocumentEdges(args json.RawMessage) (interface{}, error) {
	var a documentEdgesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := s.scanOptions(a.LowThreshold, a.HighThreshold, a.MinArea, a.MaxDimension)
	if a.DilationKernelSize > 0 {
		opts.DilationKernelSize = a.DilationKernelSize
	}
	opts.L2Gradient = a.L2Gradient

	edges, err := scan.EdgeMap(img, opts)
	if err != nil {
		return nil, err
	}
	if !a.ShowContours {
		return imaging.Render(edges.ToImage())
	}

	traced := contour.Trace(edges, contour.TraceOptions{
		Mode:    contour.ModeExternal,
		Approx:  contour.ApproxNone,
		MinArea: opts.MinArea,
	})
	chains := make([][]geom.Point, len(traced))
	for i, c := range traced {
		chains[i] = c.Points
	}
	return imaging.DrawContours(edges.Width, edges.Height, chains, 1)
}

type documentExtractArgs struct {
	Path          string        `json:"path"`
	Corners       []cornerPoint `json:"corners"`
	Enhance       string        `json:"enhance"`
	LowThreshold  int           `json:"low_threshold"`
	HighThreshold int           `json:"high_threshold"`
	MinArea       float64       `json:"min_area"`
	MaxDimension  int           `json:"max_dimension"`
}

// pageResult pairs a rendered image with the corner set that produced it.
// Returned by document_extract and document_highlight.
type pageResult struct {
	imaging.RenderResult
	Corners geom.Corners `json:"corners"`
}

func (s *Server) handleDocumentExtract(args json.RawMessage) (interface{}, error) {
	var a documentExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	corners, err := parseCorners(a.Corners)
	if err != nil {
		return nil, err
	}

	opts := s.scanOptions(a.LowThreshold, a.HighThreshold, a.MinArea, a.MaxDimension)
	page, used, err := scan.Extract(img, corners, opts)
	if err != nil {
		return nil, err
	}

	enhanced, err := imaging.Enhance(page, a.Enhance)
	if err != nil {
		return nil, err
	}
	rendered, err := imaging.Render(enhanced)
	if err != nil {
		return nil, err
	}
	return &pageResult{RenderResult: *rendered, Corners: used}, nil
}

type documentHighlightArgs struct {
	Path          string        `json:"path"`
	Corners       []cornerPoint `json:"corners"`
	Color         string        `json:"color"`
	Thickness     int           `json:"thickness"`
	LowThreshold  int           `json:"low_threshold"`
	HighThreshold int           `json:"high_threshold"`
	MinArea       float64       `json:"min_area"`
	MaxDimension  int           `json:"max_dimension"`
}

func (s *Server) handleDocumentHighlight(args json.RawMessage) (interface{}, error) {
	var a documentHighlightArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	corners, err := parseCorners(a.Corners)
	if err != nil {
		return nil, err
	}

	if corners == nil {
		opts := s.scanOptions(a.LowThreshold, a.HighThreshold, a.MinArea, a.MaxDimension)
		res, err := scan.Detect(img, opts)
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return nil, fmt.Errorf("nothing to highlight: %s", res.Message)
		}
		corners = res.Corners
	}

	rendered, err := imaging.Highlight(img, *corners, a.Color, a.Thickness)
	if err != nil {
		return nil, err
	}
	return &pageResult{RenderResult: *rendered, Corners: *corners}, nil
}
