package drawing

import "math"

// Shape is the footprint of a brush.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeDiamond
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeDiamond:
		return "diamond"
	}
	return "unknown"
}

// Brush describes what a single stamp covers.
type Brush struct {
	ID    string
	Name  string
	Size  int
	Shape Shape
}

// Brushes is the preset catalog offered to the view layer.
var Brushes = []Brush{
	{ID: "pixel", Name: "Пиксель", Size: 1, Shape: ShapeSquare},
	{ID: "small-square", Name: "Маленький квадрат", Size: 2, Shape: ShapeSquare},
	{ID: "medium-square", Name: "Средний квадрат", Size: 4, Shape: ShapeSquare},
	{ID: "large-square", Name: "Большой квадрат", Size: 6, Shape: ShapeSquare},
	{ID: "circle-small", Name: "Маленький круг", Size: 2, Shape: ShapeCircle},
	{ID: "circle", Name: "Круг", Size: 4, Shape: ShapeCircle},
	{ID: "circle-large", Name: "Большой круг", Size: 6, Shape: ShapeCircle},
	{ID: "diamond", Name: "Ромб", Size: 3, Shape: ShapeDiamond},
	{ID: "diamond-large", Name: "Большой ромб", Size: 5, Shape: ShapeDiamond},
}

// BrushByID looks up a preset.
func BrushByID(id string) (Brush, bool) {
	for _, b := range Brushes {
		if b.ID == id {
			return b, true
		}
	}
	return Brush{}, false
}

// Expand returns the cells covered by brush when stamped at center, in row
// order. Nothing is clipped.
func Expand(center GridPoint, brush Brush) []GridPoint {
	half := brush.Size / 2
	radius := float64(brush.Size) / 2
	cells := make([]GridPoint, 0, (2*half+1)*(2*half+1))
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			if !brush.covers(dx, dy, radius) {
				continue
			}
			cells = append(cells, GridPoint{center.X + dx, center.Y + dy})
		}
	}
	return cells
}

func (b Brush) covers(dx, dy int, radius float64) bool {
	switch b.Shape {
	case ShapeCircle:
		return math.Sqrt(float64(dx*dx+dy*dy)) <= radius
	case ShapeDiamond:
		return float64(absInt(dx)+absInt(dy)) <= radius
	default:
		return true
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
