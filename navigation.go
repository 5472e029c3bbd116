package main

// handlePan moves the view so the artwork appears to move opposite to the
// arrow, like scrolling.
func (m *model) handlePan(key string) {
	switch key {
	case "left":
		m.doc.PanBy(panStep, 0)
	case "right":
		m.doc.PanBy(-panStep, 0)
	case "up":
		m.doc.PanBy(0, panStep)
	case "down":
		m.doc.PanBy(0, -panStep)
	}
}
