package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var gridColor = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

// drawDebugGrid returns a copy of the canvas with 1px grid lines and slot
// index labels, for eyeballing slot assignments. Labels need roughly 14px of
// cell height to be legible with Face7x13; smaller cells still get the grid.
func (b *Builder) drawDebugGrid(canvas *image.NRGBA) *image.NRGBA {
	overlay := image.NewNRGBA(canvas.Bounds())
	draw.Draw(overlay, overlay.Bounds(), canvas, image.Point{}, draw.Src)

	size := b.cfg.AtlasSize
	for i := 0; i <= b.tilesPerRow; i++ {
		p := i * b.cfg.TileSize
		if p >= size {
			p = size - 1
		}
		for q := 0; q < size; q++ {
			overlay.SetNRGBA(p, q, gridColor)
			overlay.SetNRGBA(q, p, gridColor)
		}
	}

	if b.cfg.TileSize < basicfont.Face7x13.Height+1 {
		return overlay
	}

	drawer := &font.Drawer{
		Dst:  overlay,
		Src:  image.NewUniform(gridColor),
		Face: basicfont.Face7x13,
	}
	for _, slot := range b.cfg.Table {
		cell := CellForIndex(slot.Index, b.tilesPerRow)
		off := cell.Offset(b.cfg.TileSize)
		drawer.Dot = fixed.P(off.X+2, off.Y+basicfont.Face7x13.Ascent+1)
		drawer.DrawString(fmt.Sprintf("%d", slot.Index))
	}

	return overlay
}
