package drawing

// Rect is an inclusive rectangle of cells.
type Rect struct {
	Min, Max GridPoint
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p GridPoint) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: GridPoint{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: GridPoint{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

// Grow extends r by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{
		Min: GridPoint{r.Min.X - n, r.Min.Y - n},
		Max: GridPoint{r.Max.X + n, r.Max.Y + n},
	}
}

// ColorFunc reports the composite color at a cell, or false for none.
type ColorFunc func(x, y int) (string, bool)

// Fill computes a 4-connected flood fill from start. Every reachable cell
// whose color equals the start color becomes newColor. Cells outside bounds
// are treated as boundaries. The result is empty when the start color already
// equals newColor or start lies outside bounds.
func Fill(start GridPoint, newColor string, colorAt ColorFunc, bounds Rect) []Cell {
	target, hasTarget := colorAt(start.X, start.Y)
	if hasTarget && target == newColor {
		return nil
	}
	if !hasTarget && newColor == Transparent {
		return nil
	}

	var out []Cell
	stack := []GridPoint{start}
	visited := make(map[GridPoint]struct{})
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[p]; seen {
			continue
		}
		visited[p] = struct{}{}

		if !bounds.Contains(p) {
			continue
		}
		if c, ok := colorAt(p.X, p.Y); ok != hasTarget || c != target {
			continue
		}
		out = append(out, Cell{X: p.X, Y: p.Y, Color: newColor})

		for _, n := range [4]GridPoint{
			{p.X + 1, p.Y},
			{p.X - 1, p.Y},
			{p.X, p.Y + 1},
			{p.X, p.Y - 1},
		} {
			if _, seen := visited[n]; !seen {
				stack = append(stack, n)
			}
		}
	}
	return out
}
