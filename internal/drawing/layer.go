package drawing

import (
	"cmp"
	"maps"
	"slices"
)

// Transparent is the color token that removes a cell when set.
const Transparent = "transparent"

// Cell is one colored square of a layer.
type Cell struct {
	X, Y  int
	Color string
}

// Layer is a sparse collection of cells. Absent coordinates are transparent.
// Layers are owned by a Document and only mutated through it.
type Layer struct {
	id      string
	name    string
	visible bool
	opacity float64
	cells   map[GridPoint]string
}

func newLayer(id, name string) *Layer {
	return &Layer{
		id:      id,
		name:    name,
		visible: true,
		opacity: 1,
		cells:   make(map[GridPoint]string),
	}
}

func (l *Layer) ID() string       { return l.id }
func (l *Layer) Name() string     { return l.name }
func (l *Layer) Visible() bool    { return l.visible }
func (l *Layer) Opacity() float64 { return l.opacity }
func (l *Layer) Len() int         { return len(l.cells) }

// Color returns the color stored at (x, y) on this layer.
func (l *Layer) Color(x, y int) (string, bool) {
	c, ok := l.cells[GridPoint{x, y}]
	return c, ok
}

// Cells returns the layer's cells ordered by row, then column.
func (l *Layer) Cells() []Cell {
	cells := make([]Cell, 0, len(l.cells))
	for p, c := range l.cells {
		cells = append(cells, Cell{X: p.X, Y: p.Y, Color: c})
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return cells
}

// Bounds returns the inclusive bounding box of the layer's cells.
func (l *Layer) Bounds() (lo, hi GridPoint, ok bool) {
	for p := range l.cells {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo = GridPoint{min(lo.X, p.X), min(lo.Y, p.Y)}
		hi = GridPoint{max(hi.X, p.X), max(hi.Y, p.Y)}
	}
	return lo, hi, ok
}

func (l *Layer) set(x, y int, color string) {
	if color == Transparent {
		l.clear(x, y)
		return
	}
	l.cells[GridPoint{x, y}] = color
}

func (l *Layer) clear(x, y int) {
	delete(l.cells, GridPoint{x, y})
}

func (l *Layer) clone() *Layer {
	c := *l
	c.cells = make(map[GridPoint]string, len(l.cells))
	for p, color := range l.cells {
		c.cells[p] = color
	}
	return &c
}

// sameLayers reports whether a and b hold the same artwork: identical layer
// order, properties and cells.
func sameLayers(a, b []*Layer) bool {
	return slices.EqualFunc(a, b, func(x, y *Layer) bool {
		return x.id == y.id && x.name == y.name && x.visible == y.visible &&
			x.opacity == y.opacity && maps.Equal(x.cells, y.cells)
	})
}
