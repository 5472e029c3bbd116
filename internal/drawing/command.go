package drawing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/google/uuid"
)

// Command is one state transition of a Document. The set of commands is
// closed: only types in this package implement it.
type Command interface {
	apply(d *Document)
}

// Dispatch applies cmd to the document. Invalid requests, such as unknown
// layer ids, leave the document unchanged.
func (d *Document) Dispatch(cmd Command) {
	if logger := Logger(); logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("dispatch", "command", fmt.Sprintf("%T", cmd), "args", fmt.Sprintf("%+v", cmd))
	}
	cmd.apply(d)
}

// SetCell paints one cell. Layer "" means the active layer; the color
// Transparent removes the cell.
type SetCell struct {
	Layer string
	X, Y  int
	Color string
}

func (c SetCell) apply(d *Document) {
	l := d.target(c.Layer)
	if l == nil {
		return
	}
	if old, ok := l.Color(c.X, c.Y); (ok && old == c.Color) || (!ok && c.Color == Transparent) {
		return
	}
	l.set(c.X, c.Y, c.Color)
	d.dirty = true
}

// ClearCell removes one cell. Layer "" means the active layer.
type ClearCell struct {
	Layer string
	X, Y  int
}

func (c ClearCell) apply(d *Document) {
	l := d.target(c.Layer)
	if l == nil {
		return
	}
	if _, ok := l.Color(c.X, c.Y); !ok {
		return
	}
	l.clear(c.X, c.Y)
	d.dirty = true
}

// SetColor selects the drawing color and records it as recently used.
// The token is not validated.
type SetColor struct{ Color string }

func (c SetColor) apply(d *Document) {
	d.color = c.Color
	d.recentColors = pushRecent(d.recentColors, c.Color)
}

// AddRecentColor records a color as recently used without selecting it.
type AddRecentColor struct{ Color string }

func (c AddRecentColor) apply(d *Document) {
	d.recentColors = pushRecent(d.recentColors, c.Color)
}

// SetBrush selects the brush.
type SetBrush struct{ Brush Brush }

func (c SetBrush) apply(d *Document) {
	if c.Brush.Size < 1 {
		return
	}
	d.brush = c.Brush
}

// SetCellSize changes the base cell size in screen pixels.
type SetCellSize struct{ Size int }

func (c SetCellSize) apply(d *Document) {
	if c.Size < 1 {
		return
	}
	d.cellSize = c.Size
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
type SetZoom struct{ Zoom float64 }

func (c SetZoom) apply(d *Document) {
	if math.IsNaN(c.Zoom) {
		return
	}
	d.zoom = ClampZoom(c.Zoom)
}

// SetPan sets the pan offset.
type SetPan struct{ Pan Point }

func (c SetPan) apply(d *Document) {
	d.pan = c.Pan
}

// SetZoomAndPan sets both parts of the view transform at once.
type SetZoomAndPan struct {
	Zoom float64
	Pan  Point
}

func (c SetZoomAndPan) apply(d *Document) {
	if math.IsNaN(c.Zoom) {
		return
	}
	d.zoom = ClampZoom(c.Zoom)
	d.pan = c.Pan
}

// SetTool selects the editing tool.
type SetTool struct{ Tool Tool }

func (c SetTool) apply(d *Document) {
	if c.Tool < ToolBrush || c.Tool > ToolPicker {
		return
	}
	d.tool = c.Tool
}

// ToggleGrid flips grid visibility.
type ToggleGrid struct{}

func (ToggleGrid) apply(d *Document) {
	d.showGrid = !d.showGrid
}

// AddLayer inserts a new empty layer directly above the bottom layer and
// makes it active. An empty Name becomes "Слой N" with N = count+1.
type AddLayer struct{ Name string }

func (c AddLayer) apply(d *Document) {
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("%s %d", DefaultLayerName, len(d.layers)+1)
	}
	l := newLayer("layer-"+uuid.NewString(), name)
	d.layers = slices.Insert(d.layers, 1, l)
	d.activeLayer = l.id
	d.dirty = true
}

// RemoveLayer deletes a layer. The last remaining layer cannot be removed.
// When the active layer goes, the new bottom layer becomes active.
type RemoveLayer struct{ ID string }

func (c RemoveLayer) apply(d *Document) {
	if len(d.layers) <= 1 {
		return
	}
	i := d.layerIndex(c.ID)
	if i < 0 {
		return
	}
	d.layers = append(d.layers[:i:i], d.layers[i+1:]...)
	if d.activeLayer == c.ID {
		d.activeLayer = d.layers[0].id
	}
	d.dirty = true
}

// SetActiveLayer selects the layer edits apply to.
type SetActiveLayer struct{ ID string }

func (c SetActiveLayer) apply(d *Document) {
	if d.layerIndex(c.ID) < 0 {
		return
	}
	d.activeLayer = c.ID
}

// ToggleLayerVisibility shows or hides a layer.
type ToggleLayerVisibility struct{ ID string }

func (c ToggleLayerVisibility) apply(d *Document) {
	l, ok := d.Layer(c.ID)
	if !ok {
		return
	}
	l.visible = !l.visible
	d.dirty = true
}

// SetLayerOpacity sets a layer's opacity, clamped to [0, 1].
type SetLayerOpacity struct {
	ID      string
	Opacity float64
}

func (c SetLayerOpacity) apply(d *Document) {
	l, ok := d.Layer(c.ID)
	if !ok || math.IsNaN(c.Opacity) {
		return
	}
	l.opacity = math.Max(0, math.Min(1, c.Opacity))
	d.dirty = true
}

// Commit records the current state as a new history entry. It is issued
// once per gesture, before the gesture changes anything. Right after an undo
// or redo the entry under the cursor already holds the live artwork, so only
// the redo branch is dropped.
type Commit struct{}

func (Commit) apply(d *Document) {
	if !d.dirty && !d.history.atTip() {
		d.history.truncate()
	} else {
		d.history.push(d.state)
	}
	d.dirty = false
	Logger().Debug("history commit", "len", d.history.Len(), "index", d.history.Index())
}

// Undo restores the most recent history entry whose artwork differs from the
// live artwork. If the artwork changed since the newest entry was recorded, the
// live state is committed first so that Redo can return to it.
type Undo struct{}

func (Undo) apply(d *Document) {
	if d.dirty && d.history.atTip() {
		Commit{}.apply(d)
	}
	s, ok := d.history.back(d.layers)
	if !ok {
		return
	}
	d.restore(s)
	Logger().Debug("history undo", "index", d.history.Index())
}

// Redo restores the next history entry whose artwork differs from the live
// artwork.
type Redo struct{}

func (Redo) apply(d *Document) {
	s, ok := d.history.forward(d.layers)
	if !ok {
		return
	}
	d.restore(s)
	Logger().Debug("history redo", "index", d.history.Index())
}
