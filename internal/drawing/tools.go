package drawing

// FillPadding is how far past the drawn area and canvas a fill may reach.
const FillPadding = 1

// Convenience wrappers around Dispatch.

func (d *Document) SetCell(x, y int, color string)  { d.Dispatch(SetCell{X: x, Y: y, Color: color}) }
func (d *Document) ClearCell(x, y int)              { d.Dispatch(ClearCell{X: x, Y: y}) }
func (d *Document) SetColor(color string)           { d.Dispatch(SetColor{Color: color}) }
func (d *Document) SetTool(t Tool)                  { d.Dispatch(SetTool{Tool: t}) }
func (d *Document) SetBrush(b Brush)                { d.Dispatch(SetBrush{Brush: b}) }
func (d *Document) AddLayer(name string)            { d.Dispatch(AddLayer{Name: name}) }
func (d *Document) RemoveLayer(id string)           { d.Dispatch(RemoveLayer{ID: id}) }
func (d *Document) SetActiveLayer(id string)        { d.Dispatch(SetActiveLayer{ID: id}) }
func (d *Document) ToggleLayerVisibility(id string) { d.Dispatch(ToggleLayerVisibility{ID: id}) }
func (d *Document) ToggleGrid()                     { d.Dispatch(ToggleGrid{}) }
func (d *Document) Commit()                         { d.Dispatch(Commit{}) }
func (d *Document) Undo()                           { d.Dispatch(Undo{}) }
func (d *Document) Redo()                           { d.Dispatch(Redo{}) }

func (d *Document) SetLayerOpacity(id string, opacity float64) {
	d.Dispatch(SetLayerOpacity{ID: id, Opacity: opacity})
}

// ZoomIn steps zoom up by KeyZoomStep, keeping the pan offset.
func (d *Document) ZoomIn() { d.Dispatch(SetZoom{Zoom: d.zoom * KeyZoomStep}) }

// ZoomOut steps zoom down by KeyZoomStep, keeping the pan offset.
func (d *Document) ZoomOut() { d.Dispatch(SetZoom{Zoom: d.zoom / KeyZoomStep}) }

// WheelZoom zooms by one wheel step anchored at pointer.
func (d *Document) WheelZoom(pointer Point, deltaY float64) {
	zoom, pan := ZoomAt(pointer, d.zoom, d.pan, d.zoom*WheelFactor(deltaY))
	if zoom == d.zoom {
		return
	}
	d.Dispatch(SetZoomAndPan{Zoom: zoom, Pan: pan})
}

// PanBy moves the view by a screen-space delta.
func (d *Document) PanBy(dx, dy float64) {
	d.Dispatch(SetPan{Pan: Point{d.pan.X + dx, d.pan.Y + dy}})
}

// ScreenToGrid maps a screen position through the document's view transform.
func (d *Document) ScreenToGrid(p Point) GridPoint {
	return ScreenToGrid(p, d.zoom, d.pan, float64(d.cellSize))
}

// Stamp applies the current brush at center on the active layer. With the
// eraser tool every covered cell is cleared, otherwise painted.
func (d *Document) Stamp(center GridPoint) {
	for _, p := range Expand(center, d.brush) {
		if d.tool == ToolEraser {
			d.Dispatch(ClearCell{X: p.X, Y: p.Y})
			continue
		}
		d.Dispatch(SetCell{X: p.X, Y: p.Y, Color: d.color})
	}
}

// FillAt flood fills the region of the visible composite containing start
// with the current color, writing to the active layer. It returns the number
// of cells written.
func (d *Document) FillAt(start GridPoint) int {
	bounds := d.FillBounds()
	cells := Fill(start, d.color, d.CellColor, bounds)
	for _, c := range cells {
		d.Dispatch(SetCell{X: c.X, Y: c.Y, Color: c.Color})
	}
	Logger().Debug("flood fill", "start", start, "cells", len(cells), "bounds", bounds)
	return len(cells)
}

// FillBounds is the rectangle a fill is confined to: the canvas and every
// visible cell, grown by FillPadding.
func (d *Document) FillBounds() Rect {
	r := Rect{Max: GridPoint{d.canvasSize.Width - 1, d.canvasSize.Height - 1}}
	if drawn, ok := d.VisibleBounds(); ok {
		r = r.Union(drawn)
	}
	return r.Grow(FillPadding)
}

// Pick selects the visible color at p. It reports false, leaving the current
// color alone, when nothing is drawn there.
func (d *Document) Pick(p GridPoint) bool {
	c, ok := d.CellColor(p.X, p.Y)
	if !ok {
		return false
	}
	d.Dispatch(SetColor{Color: c})
	return true
}
