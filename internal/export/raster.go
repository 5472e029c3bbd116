// Package export composites the visible layers of a drawing into a raster
// image and encodes it as PNG or PDF.
package export

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/fogleman/gg"

	"pixl/internal/drawing"
)

const (
	// Padding is the number of empty cells kept around the drawn area.
	Padding = 1
	// EmptySize is the side of the image produced when nothing is drawn.
	EmptySize = 64
)

// Filename returns the conventional export name for t.
func Filename(t time.Time, ext string) string {
	return fmt.Sprintf("pixel-art-%d.%s", t.UnixMilli(), ext)
}

// Raster paints every visible layer, bottom first, onto a transparent image
// cropped to the drawn cells plus Padding. Each cell becomes a solid
// cellSize×cellSize block drawn with the layer's opacity as alpha; blocks are
// composited source-over. Cells whose color cannot be parsed are skipped.
func Raster(layers []*drawing.Layer, cellSize int) image.Image {
	return rasterContext(layers, cellSize).Image()
}

func rasterContext(layers []*drawing.Layer, cellSize int) *gg.Context {
	if cellSize < 1 {
		cellSize = drawing.DefaultCellSize
	}
	lo, hi, ok := visibleBounds(layers)
	if !ok {
		return gg.NewContext(EmptySize, EmptySize)
	}
	lo.X, lo.Y = lo.X-Padding, lo.Y-Padding
	hi.X, hi.Y = hi.X+Padding, hi.Y+Padding

	size := float64(cellSize)
	dc := gg.NewContext((hi.X-lo.X+1)*cellSize, (hi.Y-lo.Y+1)*cellSize)
	for _, l := range layers {
		if !l.Visible() {
			continue
		}
		for _, c := range l.Cells() {
			col, ok := ParseColor(c.Color)
			if !ok {
				continue
			}
			dc.SetColor(withOpacity(col, l.Opacity()))
			dc.DrawRectangle(float64(c.X-lo.X)*size, float64(c.Y-lo.Y)*size, size, size)
			dc.Fill()
		}
	}
	return dc
}

func visibleBounds(layers []*drawing.Layer) (lo, hi drawing.GridPoint, ok bool) {
	for _, l := range layers {
		if !l.Visible() {
			continue
		}
		llo, lhi, lok := l.Bounds()
		if !lok {
			continue
		}
		if !ok {
			lo, hi, ok = llo, lhi, true
			continue
		}
		lo = drawing.GridPoint{X: min(lo.X, llo.X), Y: min(lo.Y, llo.Y)}
		hi = drawing.GridPoint{X: max(hi.X, lhi.X), Y: max(hi.Y, lhi.Y)}
	}
	return lo, hi, ok
}

// WritePNG encodes the composited layers as PNG to w.
func WritePNG(w io.Writer, layers []*drawing.Layer, cellSize int) error {
	if err := rasterContext(layers, cellSize).EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the composited layers to a PNG file.
func SavePNG(path string, layers []*drawing.Layer, cellSize int) error {
	if err := gg.SavePNG(path, Raster(layers, cellSize)); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
