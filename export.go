package main

import (
	"fmt"

	"pixl/internal/drawing"
	"pixl/internal/export"
)

func (m *model) export(format ExportFormat) {
	path, err := m.exportTo(format)
	if err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		drawing.Logger().Error("export failed", "err", err)
		return
	}
	m.successMessage = fmt.Sprintf("Exported %s", path)
	drawing.Logger().Info("exported", "path", path)
}

func (m *model) exportTo(format ExportFormat) (string, error) {
	layers := m.doc.Layers()
	cellSize := m.doc.CellSize()

	switch format {
	case ExportPDF:
		path := m.config.GetSavePath(export.Filename(m.now(), "pdf"))
		return path, export.SavePDF(path, layers, cellSize)
	default:
		path := m.config.GetSavePath(export.Filename(m.now(), "png"))
		return path, export.SavePNG(path, layers, cellSize)
	}
}
