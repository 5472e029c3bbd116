package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"pixl/internal/drawing"
)

const pdfImageName = "pixel-art"

// newPDF lays the composited image out on a single page of exactly its size,
// one point per pixel.
func newPDF(layers []*drawing.Layer, cellSize int) (*gofpdf.Fpdf, error) {
	dc := rasterContext(layers, cellSize)
	var png bytes.Buffer
	if err := dc.EncodePNG(&png); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	w, h := float64(dc.Width()), float64(dc.Height())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfImageName, opts, &png)
	pdf.ImageOptions(pdfImageName, 0, 0, w, h, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return pdf, nil
}

// WritePDF writes a one-page PDF containing the composited layers to w.
func WritePDF(w io.Writer, layers []*drawing.Layer, cellSize int) error {
	pdf, err := newPDF(layers, cellSize)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// SavePDF writes a one-page PDF containing the composited layers to path.
func SavePDF(path string, layers []*drawing.Layer, cellSize int) error {
	pdf, err := newPDF(layers, cellSize)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("save pdf %s: %w", path, err)
	}
	return nil
}
