// Package drawing is the document engine of the editor: layered sparse
// pixel grids, brush stamping, flood fill, the screen/grid transform under
// pan and zoom, and snapshot-based undo/redo.
//
// A Document is changed only through commands:
//
//	d := drawing.New()
//	d.Commit() // once per gesture
//	d.Dispatch(drawing.SetCell{X: 1, Y: 2, Color: "#FF0000"})
//	d.Undo()
//
// Requests that make no sense, like touching an unknown layer or undoing
// past the oldest snapshot, are ignored rather than reported.
package drawing
