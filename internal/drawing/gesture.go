package drawing

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Modifiers are the keyboard modifiers that change what a press does. Alt
// turns a left press into a pan.
type Modifiers struct {
	Alt bool
}

type gestureMode int

const (
	gestureIdle gestureMode = iota
	gestureDraw
	gesturePan
)

// Gesture turns pointer events into document edits. One press-drag-release
// is one gesture: drawing gestures commit history once, at the press.
// Whether a gesture draws or pans is decided at the press and never changes
// until release.
type Gesture struct {
	doc        *Document
	mode       gestureMode
	lastCell   GridPoint
	lastScreen Point
}

// NewGesture returns an idle gesture tracker for d.
func NewGesture(d *Document) *Gesture {
	return &Gesture{doc: d}
}

// Drawing reports whether a drawing gesture is in progress.
func (g *Gesture) Drawing() bool { return g.mode == gestureDraw }

// Panning reports whether a pan gesture is in progress.
func (g *Gesture) Panning() bool { return g.mode == gesturePan }

// Down starts a gesture at screen position p. Middle, right and alt+left
// pan; plain left applies the current tool.
func (g *Gesture) Down(p Point, b Button, mods Modifiers) {
	g.Up()
	if b == ButtonMiddle || b == ButtonRight || (b == ButtonLeft && mods.Alt) {
		g.mode = gesturePan
		g.lastScreen = p
		return
	}

	cell := g.doc.ScreenToGrid(p)
	g.mode = gestureDraw
	g.lastCell = cell
	g.doc.Commit()

	switch g.doc.Tool() {
	case ToolPicker:
		g.doc.Pick(cell)
	case ToolFill:
		g.doc.FillAt(cell)
	default:
		g.doc.Stamp(cell)
	}
}

// Move continues the gesture. Drawing only acts when the pointer enters a
// new cell; fills happen once per gesture.
func (g *Gesture) Move(p Point) {
	switch g.mode {
	case gesturePan:
		g.doc.PanBy(p.X-g.lastScreen.X, p.Y-g.lastScreen.Y)
		g.lastScreen = p
	case gestureDraw:
		cell := g.doc.ScreenToGrid(p)
		if cell == g.lastCell {
			return
		}
		g.lastCell = cell
		switch g.doc.Tool() {
		case ToolPicker:
			g.doc.Pick(cell)
		case ToolBrush, ToolEraser:
			g.doc.Stamp(cell)
		}
	}
}

// Up ends the current gesture, if any.
func (g *Gesture) Up() {
	g.mode = gestureIdle
	g.lastCell = GridPoint{}
	g.lastScreen = Point{}
}
