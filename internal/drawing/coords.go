package drawing

import "math"

// Zoom limits and step factors.
const (
	MinZoom = 0.25
	MaxZoom = 4.0

	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9
	KeyZoomStep  = 1.2
)

// Point is a position in screen space (pixels, fractional).
type Point struct {
	X, Y float64
}

// GridPoint is an integer cell coordinate in grid space.
type GridPoint struct {
	X, Y int
}

// ScreenToGrid converts a screen position into the cell under it.
// The grid is unbounded, so the result may be any integer.
func ScreenToGrid(screen Point, zoom float64, pan Point, baseCellSize float64) GridPoint {
	scaled := baseCellSize * zoom
	return GridPoint{
		X: int(math.Floor((screen.X - pan.X) / scaled)),
		Y: int(math.Floor((screen.Y - pan.Y) / scaled)),
	}
}

// GridToScreen returns the screen position of the top-left corner of a cell.
func GridToScreen(cell GridPoint, zoom float64, pan Point, baseCellSize float64) Point {
	scaled := baseCellSize * zoom
	return Point{
		X: float64(cell.X)*scaled + pan.X,
		Y: float64(cell.Y)*scaled + pan.Y,
	}
}

// ClampZoom limits zoom to [MinZoom, MaxZoom].
func ClampZoom(zoom float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, zoom))
}

// ZoomAt rescales around pointer: the world point under the pointer before
// the change stays under it afterwards. newZoom is clamped first; the
// returned pan is unchanged when the clamped zoom equals zoom.
func ZoomAt(pointer Point, zoom float64, pan Point, newZoom float64) (float64, Point) {
	newZoom = ClampZoom(newZoom)
	if newZoom == zoom {
		return zoom, pan
	}
	worldX := (pointer.X - pan.X) / zoom
	worldY := (pointer.Y - pan.Y) / zoom
	return newZoom, Point{
		X: pointer.X - worldX*newZoom,
		Y: pointer.Y - worldY*newZoom,
	}
}

// WheelFactor returns the zoom multiplier for a wheel event. Positive deltaY
// means scrolling down, which zooms out.
func WheelFactor(deltaY float64) float64 {
	if deltaY > 0 {
		return WheelZoomOut
	}
	return WheelZoomIn
}
