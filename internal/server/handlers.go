package server

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/image-grep/internal/imaging"
	"github.com/ironsheep/image-grep/internal/search"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_find").
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
// Tool execution errors, including an oversized needle, return a JSON-RPC
// error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.debug {
		log.Printf("tool %s took %v (err=%v)", params.Name, time.Since(start), err)
	}
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_find":
		return s.handleImageFind(args)
	case "image_highlight_matches":
		return s.handleImageHighlightMatches(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Needle Preparation Handlers ===

type imageCropArgs struct {
	Path     string `json:"path"`
	X1       int    `json:"x1"`
	Y1       int    `json:"y1"`
	X2       int    `json:"x2"`
	Y2       int    `json:"y2"`
	SavePath string `json:"save_path"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	result, err := imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.SavePath)
	if err != nil {
		return nil, err
	}
	// A re-saved needle must be decoded again on its next use.
	if a.SavePath != "" {
		s.cache.Evict(a.SavePath)
	}
	return result, nil
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := s.cache.Raster(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(r, a.X, a.Y)
}

// === Search Handlers ===

type imageFindArgs struct {
	Path             string `json:"path"`
	NeedlePath       string `json:"needle_path"`
	Tolerance        int    `json:"tolerance"`
	ToleranceR       *int   `json:"tolerance_r"`
	ToleranceG       *int   `json:"tolerance_g"`
	ToleranceB       *int   `json:"tolerance_b"`
	PatternThreshold int    `json:"pattern_threshold"`
	MaxMatches       int    `json:"max_matches"`
	Parallel         bool   `json:"parallel"`
	FlushEdges       bool   `json:"flush_edges"`
}

// options converts the arguments to search options, checking the tolerance
// range that search.Tolerance cannot represent.
func (a *imageFindArgs) options() (search.Options, error) {
	tol := [3]int{a.Tolerance, a.Tolerance, a.Tolerance}
	for i, override := range []*int{a.ToleranceR, a.ToleranceG, a.ToleranceB} {
		if override != nil {
			tol[i] = *override
		}
	}
	for _, v := range tol {
		if v < 0 || v > 255 {
			return search.Options{}, fmt.Errorf("tolerance %d outside range 0-255", v)
		}
	}

	opts := search.Options{
		Tolerance:        search.Tolerance{R: uint8(tol[0]), G: uint8(tol[1]), B: uint8(tol[2])},
		PatternThreshold: a.PatternThreshold,
		MaxMatches:       a.MaxMatches,
		Parallel:         a.Parallel,
		FlushEdges:       a.FlushEdges,
	}
	return opts, opts.Validate()
}

// findResult is search.Result plus the needle's size, which callers need to
// turn a top-left corner into a box.
type findResult struct {
	*search.Result
	NeedleWidth  int `json:"needle_width"`
	NeedleHeight int `json:"needle_height"`
}

// find loads both images and runs the search.
func (s *Server) find(a *imageFindArgs) (*imaging.Raster, *findResult, error) {
	if a.Path == "" || a.NeedlePath == "" {
		return nil, nil, fmt.Errorf("path and needle_path are required")
	}
	opts, err := a.options()
	if err != nil {
		return nil, nil, err
	}

	big, err := s.cache.Raster(a.Path)
	if err != nil {
		return nil, nil, err
	}
	small, err := s.cache.Raster(a.NeedlePath)
	if err != nil {
		return nil, nil, err
	}

	res, err := search.Find(big, small, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("search %s in %s: %w", a.NeedlePath, a.Path, err)
	}
	if s.debug {
		log.Printf("find: %d samples, %d windows, %d matches", res.PatternSamples, res.Windows, res.Count)
	}

	return big, &findResult{
		Result:       res,
		NeedleWidth:  small.Width(),
		NeedleHeight: small.Height(),
	}, nil
}

func (s *Server) handleImageFind(args json.RawMessage) (interface{}, error) {
	var a imageFindArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, res, err := s.find(&a)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type imageHighlightMatchesArgs struct {
	imageFindArgs
	Color  string `json:"color"`
	Labels *bool  `json:"labels"`
}

// highlightResult combines the matches with the outlined image.
type highlightResult struct {
	*findResult
	Image *imaging.HighlightResult `json:"image"`
}

func (s *Server) handleImageHighlightMatches(args json.RawMessage) (interface{}, error) {
	var a imageHighlightMatchesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = imaging.DefaultHighlightColor
	}
	labels := true
	if a.Labels != nil {
		labels = *a.Labels
	}

	big, res, err := s.find(&a.imageFindArgs)
	if err != nil {
		return nil, err
	}

	img, err := imaging.HighlightMatches(big.Image(), res.Matches, res.NeedleWidth, res.NeedleHeight, a.Color, labels)
	if err != nil {
		return nil, err
	}
	return &highlightResult{findResult: res, Image: img}, nil
}
