package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridColors(cells map[GridPoint]string) ColorFunc {
	return func(x, y int) (string, bool) {
		c, ok := cells[GridPoint{x, y}]
		return c, ok
	}
}

var wide = Rect{Min: GridPoint{-100, -100}, Max: GridPoint{100, 100}}

func TestFillStopsAtDifferentColor(t *testing.T) {
	cells := map[GridPoint]string{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cells[GridPoint{x, y}] = "A"
		}
	}
	cells[GridPoint{1, 1}] = "B"

	got := Fill(GridPoint{0, 0}, "C", gridColors(cells), wide)
	require.Len(t, got, 8)
	for _, c := range got {
		assert.Equal(t, "C", c.Color)
		assert.NotEqual(t, GridPoint{1, 1}, GridPoint{c.X, c.Y})
	}
}

func TestFillSameColorIsNoop(t *testing.T) {
	cells := map[GridPoint]string{{0, 0}: "A", {1, 0}: "A"}
	assert.Empty(t, Fill(GridPoint{0, 0}, "A", gridColors(cells), wide))
}

func TestFillIgnoresDiagonals(t *testing.T) {
	cells := map[GridPoint]string{
		{0, 0}: "A", {1, 1}: "A",
		{1, 0}: "X", {0, 1}: "X",
	}
	got := Fill(GridPoint{0, 0}, "C", gridColors(cells), wide)
	assert.Equal(t, []Cell{{0, 0, "C"}}, got)
}

func TestFillEmptyRegionStaysInBounds(t *testing.T) {
	bounds := Rect{Min: GridPoint{0, 0}, Max: GridPoint{3, 2}}
	got := Fill(GridPoint{1, 1}, "C", gridColors(nil), bounds)
	assert.Len(t, got, 12)
	for _, c := range got {
		assert.True(t, bounds.Contains(GridPoint{c.X, c.Y}))
	}

	assert.Empty(t, Fill(GridPoint{9, 9}, "C", gridColors(nil), bounds), "start outside bounds")
	assert.Empty(t, Fill(GridPoint{1, 1}, Transparent, gridColors(nil), bounds))
}

func TestDocumentFillAt(t *testing.T) {
	d := New(WithCanvasSize(4, 4))
	// A closed ring of X around (1,1).
	for _, p := range []GridPoint{{1, 0}, {0, 1}, {2, 1}, {1, 2}} {
		d.SetCell(p.X, p.Y, "X")
	}
	d.SetColor("F")

	n := d.FillAt(GridPoint{1, 1})
	assert.Equal(t, 1, n)
	c, _ := d.CellColor(1, 1)
	assert.Equal(t, "F", c)

	// The open background is confined to the canvas grown by FillPadding.
	d.SetColor("G")
	n = d.FillAt(GridPoint{3, 3})
	assert.Equal(t, 6*6-4-1, n)
	_, ok := d.CellColor(5, 5)
	assert.False(t, ok)
	c, _ = d.CellColor(4, 4)
	assert.Equal(t, "G", c)
}

func TestFillReadsCompositeWritesActive(t *testing.T) {
	d := New(WithCanvasSize(1, 1))
	d.SetCell(0, 0, "A")
	d.SetCell(1, 0, "A")
	d.AddLayer("top")
	d.SetColor("B")

	d.FillAt(GridPoint{0, 0})
	assert.Equal(t, 2, d.ActiveLayer().Len())
	bottom, _ := d.Layer(DefaultLayerID)
	c, _ := bottom.Color(0, 0)
	assert.Equal(t, "A", c, "lower layer untouched")
}

func TestFillBounds(t *testing.T) {
	d := New(WithCanvasSize(10, 5))
	assert.Equal(t, Rect{GridPoint{-1, -1}, GridPoint{10, 5}}, d.FillBounds())

	d.SetCell(30, -20, "A")
	assert.Equal(t, Rect{GridPoint{-1, -21}, GridPoint{31, 5}}, d.FillBounds())
}
