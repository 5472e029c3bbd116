package drawing

import "slices"

// Tool is the active editing tool.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolFill
	ToolPicker
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	case ToolFill:
		return "fill"
	case ToolPicker:
		return "picker"
	}
	return "unknown"
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// Defaults for a new document.
const (
	DefaultCellSize   = 8
	DefaultLayerID    = "layer-1"
	DefaultLayerName  = "Слой"
	DefaultCanvasSide = 64
)

// state is everything a history snapshot captures.
type state struct {
	canvasSize   Size
	cellSize     int
	zoom         float64
	pan          Point
	color        string
	brush        Brush
	layers       []*Layer
	activeLayer  string
	tool         Tool
	showGrid     bool
	recentColors []string
}

func (s state) clone() state {
	c := s
	c.layers = make([]*Layer, len(s.layers))
	for i, l := range s.layers {
		c.layers[i] = l.clone()
	}
	c.recentColors = slices.Clone(s.recentColors)
	return c
}

// Document is the editable drawing: layers, tool state, view transform and
// history. It is not safe for concurrent use.
type Document struct {
	state
	history *History

	// dirty records artwork changes since the last commit, undo or redo.
	dirty bool
}

// Option configures a Document created by New.
type Option func(*options)

type options struct {
	cellSize     int
	historyLimit int
	showGrid     bool
	canvasSize   Size
}

// WithCellSize sets the base cell size in screen pixels.
func WithCellSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.cellSize = px
		}
	}
}

// WithHistoryLimit sets how many snapshots history keeps.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.historyLimit = n
		}
	}
}

// WithGrid sets the initial grid visibility.
func WithGrid(show bool) Option {
	return func(o *options) { o.showGrid = show }
}

// WithCanvasSize sets the informational canvas size.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.canvasSize = Size{width, height}
		}
	}
}

// New creates a document with one empty layer and a single history entry.
func New(opts ...Option) *Document {
	o := options{
		cellSize:     DefaultCellSize,
		historyLimit: DefaultHistoryLimit,
		showGrid:     true,
		canvasSize:   Size{DefaultCanvasSide, DefaultCanvasSide},
	}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Document{
		state: state{
			canvasSize:   o.canvasSize,
			cellSize:     o.cellSize,
			zoom:         1,
			color:        Palette[0],
			brush:        Brushes[0],
			layers:       []*Layer{newLayer(DefaultLayerID, DefaultLayerName+" 1")},
			activeLayer:  DefaultLayerID,
			tool:         ToolBrush,
			showGrid:     o.showGrid,
			recentColors: slices.Clone(Palette[:8]),
		},
	}
	d.history = newHistory(d.state, o.historyLimit)
	return d
}

func (d *Document) CanvasSize() Size      { return d.canvasSize }
func (d *Document) CellSize() int         { return d.cellSize }
func (d *Document) Zoom() float64         { return d.zoom }
func (d *Document) Pan() Point            { return d.pan }
func (d *Document) Color() string         { return d.color }
func (d *Document) Brush() Brush          { return d.brush }
func (d *Document) Tool() Tool            { return d.tool }
func (d *Document) ShowGrid() bool        { return d.showGrid }
func (d *Document) ActiveLayerID() string { return d.activeLayer }
func (d *Document) History() *History     { return d.history }

// RecentColors returns the most recently used colors, newest first.
func (d *Document) RecentColors() []string {
	return slices.Clone(d.recentColors)
}

// Layers returns the layers in paint order, bottom first.
func (d *Document) Layers() []*Layer {
	return slices.Clone(d.layers)
}

// Layer returns the layer with the given id.
func (d *Document) Layer(id string) (*Layer, bool) {
	i := d.layerIndex(id)
	if i < 0 {
		return nil, false
	}
	return d.layers[i], true
}

// ActiveLayer returns the layer edits apply to.
func (d *Document) ActiveLayer() *Layer {
	l, _ := d.Layer(d.activeLayer)
	return l
}

// CellColor returns the color seen at (x, y): the topmost visible layer
// holding a cell there wins.
func (d *Document) CellColor(x, y int) (string, bool) {
	for i := len(d.layers) - 1; i >= 0; i-- {
		l := d.layers[i]
		if !l.visible {
			continue
		}
		if c, ok := l.Color(x, y); ok {
			return c, true
		}
	}
	return "", false
}

// VisibleBounds returns the bounding box of every cell on a visible layer.
func (d *Document) VisibleBounds() (Rect, bool) {
	var (
		r     Rect
		found bool
	)
	for _, l := range d.layers {
		if !l.visible {
			continue
		}
		lo, hi, ok := l.Bounds()
		if !ok {
			continue
		}
		if !found {
			r, found = Rect{lo, hi}, true
			continue
		}
		r = r.Union(Rect{lo, hi})
	}
	return r, found
}

func (d *Document) layerIndex(id string) int {
	return slices.IndexFunc(d.layers, func(l *Layer) bool { return l.id == id })
}

func (d *Document) target(id string) *Layer {
	if id == "" {
		id = d.activeLayer
	}
	l, _ := d.Layer(id)
	return l
}

// restore replaces the live state with s, keeping recent colors.
func (d *Document) restore(s state) {
	recent := d.recentColors
	d.state = s.clone()
	d.recentColors = recent
	d.dirty = false
}
