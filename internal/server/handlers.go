package server

import (
	"encoding/json"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/morph-tools-mcp/internal/attrfilter"
	"github.com/ironsheep/morph-tools-mcp/internal/chamfer"
	"github.com/ironsheep/morph-tools-mcp/internal/distance"
	"github.com/ironsheep/morph-tools-mcp/internal/grid"
	"github.com/ironsheep/morph-tools-mcp/internal/imgio"
	"github.com/ironsheep/morph-tools-mcp/internal/label"
	"github.com/ironsheep/morph-tools-mcp/internal/measure"
	"github.com/ironsheep/morph-tools-mcp/internal/morph"
	"github.com/ironsheep/morph-tools-mcp/internal/reconstruct"
	"github.com/ironsheep/morph-tools-mcp/internal/watershed"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "distance_transform").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the
// specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code
// -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithField("tool", params.Name).WithError(err).Warn("tool failed")
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

// executeTool dispatches tool execution to the appropriate handler.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads grids from the cache as needed
//  4. Calls into the algorithm packages
//  5. Saves result images and returns a JSON-able result struct
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "chamfer_presets":
		return s.handleChamferPresets(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "distance_transform":
		return s.handleDistanceTransform(args)
	case "geodesic_distance":
		return s.handleGeodesicDistance(args)
	case "morphological_reconstruction":
		return s.handleReconstruction(args)
	case "regional_extrema":
		return s.handleRegionalExtrema(args)
	case "label_components":
		return s.handleLabelComponents(args)
	case "label_filter":
		return s.handleLabelFilter(args)
	case "watershed":
		return s.handleWatershed(args)
	case "segment":
		return s.handleSegment(args)
	case "attribute_opening":
		return s.handleAttributeOpening(args)
	case "morphology":
		return s.handleMorphology(args)
	case "region_measures":
		return s.handleRegionMeasures(args)
	case "label_overlay":
		return s.handleLabelOverlay(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given
// details.
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

// connectivity resolves a wire connectivity value against the grid
// dimensions, with 0 selecting the minimal connectivity.
func connectivity(c int, s grid.Size) (grid.Connectivity, error) {
	if c == 0 {
		return grid.ForDims(s), nil
	}
	conn := grid.Connectivity(c)
	if err := conn.Validate(s); err != nil {
		return 0, err
	}
	return conn, nil
}

// chamferMask resolves a preset name, defaulting to borgefors.
func chamferMask(name string, is3D bool) (*chamfer.Mask, error) {
	if name == "" {
		name = "borgefors"
	}
	return chamfer.ByName(name, is3D)
}

// GrayResult reports a saved grayscale output and its value range.
type GrayResult struct {
	OutPath string  `json:"out_path"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

func grayResult(g grid.Grid, path string) (*GrayResult, error) {
	if err := imgio.SaveGray(g, path); err != nil {
		return nil, err
	}
	lo, hi := grid.MinMax(g)
	s := g.Dims()
	return &GrayResult{OutPath: path, Width: s.X, Height: s.Y, Min: lo, Max: hi}, nil
}

// === Masks and metadata ===

type chamferPresetsArgs struct {
	Dims string `json:"dims"`
}

// PresetOffset is one weighted offset of a preset listing.
type PresetOffset struct {
	DX          int     `json:"dx"`
	DY          int     `json:"dy"`
	DZ          int     `json:"dz"`
	WeightShort uint16  `json:"weight_short"`
	Weight      float64 `json:"weight"`
}

// PresetInfo describes one built-in chamfer mask.
type PresetInfo struct {
	Name          string         `json:"name"`
	Dims          string         `json:"dims"`
	Normalization float64        `json:"normalization"`
	Offsets       []PresetOffset `json:"offsets"`
}

func (s *Server) handleChamferPresets(args json.RawMessage) (interface{}, error) {
	var a chamferPresetsArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	var out []PresetInfo
	for _, dims := range []string{"2d", "3d"} {
		if a.Dims != "" && a.Dims != dims {
			continue
		}
		is3D := dims == "3d"
		for _, name := range chamfer.PresetNames(is3D) {
			m, err := chamfer.ByName(name, is3D)
			if err != nil {
				return nil, err
			}
			info := PresetInfo{Name: name, Dims: dims, Normalization: m.NormalizationFactor()}
			for _, o := range m.Offsets() {
				info.Offsets = append(info.Offsets, PresetOffset{
					DX: o.DX, DY: o.DY, DZ: o.DZ,
					WeightShort: o.WeightShort, Weight: o.Weight,
				})
			}
			out = append(out, info)
		}
	}
	return map[string]interface{}{"presets": out}, nil
}

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imgio.Stat(a.Path)
}

// === Distance transforms ===

type distanceTransformArgs struct {
	Path      string `json:"path"`
	Mask      string `json:"mask"`
	Normalize bool   `json:"normalize"`
	Float     bool   `json:"float"`
	Invert    bool   `json:"invert"`
	OutPath   string `json:"out_path"`
}

func (s *Server) handleDistanceTransform(args json.RawMessage) (interface{}, error) {
	var a distanceTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Invert {
		u8, err := grid.ToUint8(img, false)
		if err != nil {
			return nil, err
		}
		img = grid.Invert(u8)
	}
	mask, err := chamferMask(a.Mask, img.Dims().Is3D())
	if err != nil {
		return nil, err
	}

	mon := progressLogger{log: s.log, tool: "distance_transform"}
	var out grid.Grid
	if a.Float {
		out, err = distance.TransformFloat(img, mask, a.Normalize, mon)
	} else {
		out, err = distance.TransformShort(img, mask, a.Normalize, mon)
	}
	if err != nil {
		return nil, err
	}
	return grayResult(out, a.OutPath)
}

type geodesicDistanceArgs struct {
	MarkerPath string `json:"marker_path"`
	MaskPath   string `json:"mask_path"`
	Mask       string `json:"mask"`
	Normalize  bool   `json:"normalize"`
	Float      bool   `json:"float"`
	OutPath    string `json:"out_path"`
}

func (s *Server) handleGeodesicDistance(args json.RawMessage) (interface{}, error) {
	var a geodesicDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	marker, err := s.cache.Load(a.MarkerPath)
	if err != nil {
		return nil, err
	}
	region, err := s.cache.Load(a.MaskPath)
	if err != nil {
		return nil, err
	}
	mask, err := chamferMask(a.Mask, marker.Dims().Is3D())
	if err != nil {
		return nil, err
	}

	mon := progressLogger{log: s.log, tool: "geodesic_distance"}
	var out grid.Grid
	if a.Float {
		out, err = distance.GeodesicFloat(marker, region, mask, a.Normalize, mon)
	} else {
		out, err = distance.GeodesicShort(marker, region, mask, a.Normalize, mon)
	}
	if err != nil {
		return nil, err
	}
	return grayResult(out, a.OutPath)
}

// === Reconstruction and extrema ===

type reconstructionArgs struct {
	MarkerPath   string `json:"marker_path"`
	MaskPath     string `json:"mask_path"`
	Method       string `json:"method"`
	Connectivity int    `json:"connectivity"`
	OutPath      string `json:"out_path"`
}

func (s *Server) handleReconstruction(args json.RawMessage) (interface{}, error) {
	var a reconstructionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	marker, err := s.cache.Load(a.MarkerPath)
	if err != nil {
		return nil, err
	}
	mask, err := s.cache.Load(a.MaskPath)
	if err != nil {
		return nil, err
	}
	conn, err := connectivity(a.Connectivity, marker.Dims())
	if err != nil {
		return nil, err
	}

	mon := progressLogger{log: s.log, tool: "morphological_reconstruction"}
	var out grid.Grid
	switch a.Method {
	case "dilation", "":
		out, err = reconstruct.ByDilation(marker, mask, conn, mon)
	case "erosion":
		out, err = reconstruct.ByErosion(marker, mask, conn, mon)
	default:
		return nil, fmt.Errorf("unknown reconstruction method %q (want dilation or erosion)", a.Method)
	}
	if err != nil {
		return nil, err
	}
	return grayResult(out, a.OutPath)
}

type regionalExtremaArgs struct {
	Path         string  `json:"path"`
	Kind         string  `json:"kind"`
	Dynamic      float64 `json:"dynamic"`
	Connectivity int     `json:"connectivity"`
	OutPath      string  `json:"out_path"`
}

func (s *Server) handleRegionalExtrema(args json.RawMessage) (interface{}, error) {
	var a regionalExtremaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	conn, err := connectivity(a.Connectivity, img.Dims())
	if err != nil {
		return nil, err
	}

	mon := progressLogger{log: s.log, tool: "regional_extrema"}
	var out *grid.Uint8
	switch {
	case a.Kind == "maxima" && a.Dynamic > 0:
		out, err = reconstruct.ExtendedMaxima(img, a.Dynamic, conn, mon)
	case a.Kind == "maxima":
		out, err = reconstruct.RegionalMaxima(img, conn, mon)
	case (a.Kind == "minima" || a.Kind == "") && a.Dynamic > 0:
		out, err = reconstruct.ExtendedMinima(img, a.Dynamic, conn, mon)
	case a.Kind == "minima" || a.Kind == "":
		out, err = reconstruct.RegionalMinima(img, conn, mon)
	default:
		return nil, fmt.Errorf("unknown extrema kind %q (want minima or maxima)", a.Kind)
	}
	if err != nil {
		return nil, err
	}
	return grayResult(out, a.OutPath)
}

// === Labeling ===

type labelComponentsArgs struct {
	Path         string `json:"path"`
	Connectivity int    `json:"connectivity"`
	Bits         int    `json:"bits"`
	OutPath      string `json:"out_path"`
}

// LabelResult reports a saved label map and its label count.
type LabelResult struct {
	OutPath    string `json:"out_path"`
	LabelCount int    `json:"label_count"`
}

func (s *Server) handleLabelComponents(args json.RawMessage) (interface{}, error) {
	var a labelComponentsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	conn, err := connectivity(a.Connectivity, img.Dims())
	if err != nil {
		return nil, err
	}
	if a.Bits == 0 {
		a.Bits = 16
	}

	labels, count, err := label.Label(img, conn, a.Bits, progressLogger{log: s.log, tool: "label_components"})
	if err != nil {
		return nil, err
	}
	if err := saveLabels(labels, a.OutPath); err != nil {
		return nil, err
	}
	return &LabelResult{OutPath: a.OutPath, LabelCount: count}, nil
}

// saveLabels writes a label map as a grayscale image. 32-bit maps are
// narrowed to 16 bits first; a map with labels above 65535 cannot be
// stored losslessly as an image and is rejected.
func saveLabels(labels grid.Grid, path string) error {
	if i32, ok := labels.(*grid.Int32); ok {
		u16, err := grid.ToUint16(i32, true)
		if err != nil {
			return fmt.Errorf("label map does not fit a 16-bit image file: %w", err)
		}
		return imgio.SaveGray(u16, path)
	}
	return imgio.SaveGray(labels, path)
}

type labelFilterArgs struct {
	LabelsPath  string `json:"labels_path"`
	MinSize     int    `json:"min_size"`
	KeepLargest bool   `json:"keep_largest"`
	Remove      []int  `json:"remove"`
	OutPath     string `json:"out_path"`
}

func (s *Server) handleLabelFilter(args json.RawMessage) (interface{}, error) {
	var a labelFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	labels, err := s.cache.Load(a.LabelsPath)
	if err != nil {
		return nil, err
	}

	out := labels
	if len(a.Remove) > 0 {
		out = label.Remove(out, a.Remove...)
	}
	if a.MinSize > 0 {
		out = label.AreaFilter(out, a.MinSize)
	}
	if a.KeepLargest {
		out = label.KeepLargest(out)
	}

	if err := saveLabels(out, a.OutPath); err != nil {
		return nil, err
	}
	return &LabelResult{OutPath: a.OutPath, LabelCount: len(label.Sizes(out))}, nil
}

// === Watershed ===

type watershedArgs struct {
	ReliefPath   string `json:"relief_path"`
	MarkersPath  string `json:"markers_path"`
	MaskPath     string `json:"mask_path"`
	Connectivity int    `json:"connectivity"`
	Dams         bool   `json:"dams"`
	OutPath      string `json:"out_path"`
}

func (s *Server) handleWatershed(args json.RawMessage) (interface{}, error) {
	var a watershedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	relief, err := s.cache.Load(a.ReliefPath)
	if err != nil {
		return nil, err
	}
	markers, err := s.cache.Load(a.MarkersPath)
	if err != nil {
		return nil, err
	}
	var mask grid.Grid
	if a.MaskPath != "" {
		if mask, err = s.cache.Load(a.MaskPath); err != nil {
			return nil, err
		}
	}
	conn, err := connectivity(a.Connectivity, relief.Dims())
	if err != nil {
		return nil, err
	}

	basins, err := watershed.Run(relief, markers, watershed.Options{
		Mask:         mask,
		Connectivity: conn,
		ComputeDams:  a.Dams,
		Monitor:      progressLogger{log: s.log, tool: "watershed"},
	})
	if err != nil {
		return nil, err
	}
	if err := saveLabels(basins, a.OutPath); err != nil {
		return nil, err
	}
	return &LabelResult{OutPath: a.OutPath, LabelCount: len(label.Sizes(basins))}, nil
}

type segmentArgs struct {
	Path           string  `json:"path"`
	SmoothRadius   float64 `json:"smooth_radius"`
	GradientRadius int     `json:"gradient_radius"`
	Dynamic        float64 `json:"dynamic"`
	Connectivity   int     `json:"connectivity"`
	Dams           *bool   `json:"dams"`
	OutPath        string  `json:"out_path"`
	OverlayPath    string  `json:"overlay_path"`
}

// SegmentResult reports the outputs of the full segmentation pipeline.
type SegmentResult struct {
	OutPath     string                `json:"out_path"`
	OverlayPath string                `json:"overlay_path,omitempty"`
	RegionCount int                   `json:"region_count"`
	Regions     []measure.RegionStats `json:"regions"`
}

func (s *Server) handleSegment(args json.RawMessage) (interface{}, error) {
	var a segmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SmoothRadius == 0 {
		a.SmoothRadius = 2
	}
	if a.GradientRadius == 0 {
		a.GradientRadius = 1
	}
	if a.Dynamic == 0 {
		a.Dynamic = 10
	}
	dams := true
	if a.Dams != nil {
		dams = *a.Dams
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	conn, err := connectivity(a.Connectivity, img.Dims())
	if err != nil {
		return nil, err
	}
	mon := progressLogger{log: s.log, tool: "segment"}

	smoothed, err := imgio.Smooth(img, a.SmoothRadius)
	if err != nil {
		return nil, err
	}
	relief, err := morph.Gradient(smoothed, morph.Square, a.GradientRadius, mon)
	if err != nil {
		return nil, err
	}
	minima, err := reconstruct.ExtendedMinima(relief, a.Dynamic, conn, mon)
	if err != nil {
		return nil, err
	}
	markers, _, err := label.Label(minima, conn, 16, mon)
	if err != nil {
		return nil, err
	}
	basins, err := watershed.Run(relief, markers, watershed.Options{
		Connectivity: conn,
		ComputeDams:  dams,
		Monitor:      mon,
	})
	if err != nil {
		return nil, err
	}

	if err := saveLabels(basins, a.OutPath); err != nil {
		return nil, err
	}
	result := &SegmentResult{OutPath: a.OutPath}
	if a.OverlayPath != "" {
		overlay, err := imgio.Overlay(img, basins, 0, 0.5)
		if err != nil {
			return nil, err
		}
		if err := imaging.Save(overlay, a.OverlayPath); err != nil {
			return nil, fmt.Errorf("failed to save overlay: %w", err)
		}
		result.OverlayPath = a.OverlayPath
	}

	stats, err := measure.Regions(basins, img, mon)
	if err != nil {
		return nil, err
	}
	result.Regions = stats
	result.RegionCount = len(stats)
	return result, nil
}

// === Filtering and morphology ===

type attributeOpeningArgs struct {
	Path         string  `json:"path"`
	Attribute    string  `json:"attribute"`
	Lambda       float64 `json:"lambda"`
	Binary       bool    `json:"binary"`
	Connectivity int     `json:"connectivity"`
	OutPath      string  `json:"out_path"`
}

func (s *Server) handleAttributeOpening(args json.RawMessage) (interface{}, error) {
	var a attributeOpeningArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	conn, err := connectivity(a.Connectivity, img.Dims())
	if err != nil {
		return nil, err
	}

	mon := progressLogger{log: s.log, tool: "attribute_opening"}
	var out grid.Grid
	if a.Binary {
		if a.Attribute != "" && a.Attribute != "area" {
			return nil, fmt.Errorf("binary filtering supports the area attribute only")
		}
		out, err = attrfilter.BinaryAreaOpening(img, int(a.Lambda), conn, mon)
	} else {
		attr, aerr := attrfilter.ByName(a.Attribute)
		if aerr != nil {
			return nil, aerr
		}
		out, err = attrfilter.Opening(img, attr, a.Lambda, conn, mon)
	}
	if err != nil {
		return nil, err
	}
	return grayResult(out, a.OutPath)
}

type morphologyArgs struct {
	Path      string `json:"path"`
	Operation string `json:"operation"`
	Shape     string `json:"shape"`
	Radius    int    `json:"radius"`
	OutPath   string `json:"out_path"`
}

func (s *Server) handleMorphology(args json.RawMessage) (interface{}, error) {
	var a morphologyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	shape, err := morph.ShapeByName(a.Shape)
	if err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = 1
	}

	mon := progressLogger{log: s.log, tool: "morphology"}
	var out grid.Grid
	switch a.Operation {
	case "erode":
		out, err = morph.Erode(img, shape, a.Radius, mon)
	case "dilate":
		out, err = morph.Dilate(img, shape, a.Radius, mon)
	case "open":
		out, err = morph.Open(img, shape, a.Radius, mon)
	case "close":
		out, err = morph.Close(img, shape, a.Radius, mon)
	case "gradient":
		out, err = morph.Gradient(img, shape, a.Radius, mon)
	default:
		return nil, fmt.Errorf("unknown morphology operation %q", a.Operation)
	}
	if err != nil {
		return nil, err
	}
	return grayResult(out, a.OutPath)
}

// === Measurement and rendering ===

type regionMeasuresArgs struct {
	LabelsPath    string `json:"labels_path"`
	IntensityPath string `json:"intensity_path"`
}

// MeasuresResult is the per-region statistics table.
type MeasuresResult struct {
	RegionCount int                   `json:"region_count"`
	Regions     []measure.RegionStats `json:"regions"`
}

func (s *Server) handleRegionMeasures(args json.RawMessage) (interface{}, error) {
	var a regionMeasuresArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	labels, err := s.cache.Load(a.LabelsPath)
	if err != nil {
		return nil, err
	}
	intensity := labels
	if a.IntensityPath != "" {
		if intensity, err = s.cache.Load(a.IntensityPath); err != nil {
			return nil, err
		}
	}

	stats, err := measure.Regions(labels, intensity, progressLogger{log: s.log, tool: "region_measures"})
	if err != nil {
		return nil, err
	}
	return &MeasuresResult{RegionCount: len(stats), Regions: stats}, nil
}

type labelOverlayArgs struct {
	LabelsPath string  `json:"labels_path"`
	BasePath   string  `json:"base_path"`
	Opacity    float64 `json:"opacity"`
	OutPath    string  `json:"out_path"`
}

// OverlayResult reports a saved rendering.
type OverlayResult struct {
	OutPath    string `json:"out_path"`
	LabelCount int    `json:"label_count"`
}

func (s *Server) handleLabelOverlay(args json.RawMessage) (interface{}, error) {
	var a labelOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	labels, err := s.cache.Load(a.LabelsPath)
	if err != nil {
		return nil, err
	}

	if a.Opacity == 0 {
		a.Opacity = 0.5
	}

	if a.BasePath != "" {
		base, err := s.cache.Load(a.BasePath)
		if err != nil {
			return nil, err
		}
		img, err := imgio.Overlay(base, labels, 0, a.Opacity)
		if err != nil {
			return nil, err
		}
		if err := imaging.Save(img, a.OutPath); err != nil {
			return nil, fmt.Errorf("failed to save overlay: %w", err)
		}
	} else {
		img, err := imgio.RenderLabels(labels, 0)
		if err != nil {
			return nil, err
		}
		if err := imaging.Save(img, a.OutPath); err != nil {
			return nil, fmt.Errorf("failed to save rendering: %w", err)
		}
	}
	return &OverlayResult{OutPath: a.OutPath, LabelCount: len(label.Sizes(labels))}, nil
}
