package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offsets(center GridPoint, b Brush) map[GridPoint]bool {
	out := make(map[GridPoint]bool)
	for _, p := range Expand(center, b) {
		out[GridPoint{p.X - center.X, p.Y - center.Y}] = true
	}
	return out
}

func TestExpandShapes(t *testing.T) {
	tests := []struct {
		name     string
		brush    Brush
		count    int
		included []GridPoint
		excluded []GridPoint
	}{
		{
			name:     "pixel",
			brush:    Brush{Size: 1, Shape: ShapeSquare},
			count:    1,
			included: []GridPoint{{0, 0}},
		},
		{
			name:     "square size 2 spans -1..1",
			brush:    Brush{Size: 2, Shape: ShapeSquare},
			count:    9,
			included: []GridPoint{{-1, -1}, {1, 1}},
		},
		{
			name:     "circle size 4",
			brush:    Brush{Size: 4, Shape: ShapeCircle},
			count:    13,
			included: []GridPoint{{2, 0}, {0, -2}, {1, 1}},
			excluded: []GridPoint{{2, 2}, {-2, 1}},
		},
		{
			name:     "diamond size 4",
			brush:    Brush{Size: 4, Shape: ShapeDiamond},
			count:    13,
			included: []GridPoint{{2, 0}, {1, 1}},
			excluded: []GridPoint{{2, 2}, {2, 1}},
		},
		{
			name:     "diamond size 3",
			brush:    Brush{Size: 3, Shape: ShapeDiamond},
			count:    5,
			included: []GridPoint{{1, 0}, {0, 1}, {0, 0}},
			excluded: []GridPoint{{1, 1}, {-1, -1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offsets(GridPoint{10, -3}, tt.brush)
			assert.Len(t, got, tt.count)
			for _, p := range tt.included {
				assert.True(t, got[p], "expected %v", p)
			}
			for _, p := range tt.excluded {
				assert.False(t, got[p], "unexpected %v", p)
			}
		})
	}
}

func TestExpandIsNotClipped(t *testing.T) {
	cells := Expand(GridPoint{-1000, 5000}, Brush{Size: 2, Shape: ShapeSquare})
	assert.Contains(t, cells, GridPoint{-1001, 4999})
}

func TestBrushCatalog(t *testing.T) {
	require.Len(t, Brushes, 9)
	b, ok := BrushByID("circle-large")
	require.True(t, ok)
	assert.Equal(t, 6, b.Size)
	assert.Equal(t, ShapeCircle, b.Shape)

	_, ok = BrushByID("spray")
	assert.False(t, ok)
}

func TestStamp(t *testing.T) {
	d := New()
	d.SetColor("#123456")
	d.SetBrush(Brush{Size: 3, Shape: ShapeDiamond})
	d.Stamp(GridPoint{0, 0})
	assert.Equal(t, 5, d.ActiveLayer().Len())

	d.SetTool(ToolEraser)
	d.SetBrush(Brush{Size: 1, Shape: ShapeSquare})
	d.Stamp(GridPoint{1, 0})
	assert.Equal(t, 4, d.ActiveLayer().Len())
	_, ok := d.ActiveLayer().Color(1, 0)
	assert.False(t, ok)
}

func TestSetBrushRejectsEmptySize(t *testing.T) {
	d := New()
	d.SetBrush(Brush{Size: 0})
	assert.Equal(t, "pixel", d.Brush().ID)
}
