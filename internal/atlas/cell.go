package atlas

import (
	"fmt"
	"image"
)

// Cell is a grid position in the atlas (row-major, top-left origin).
type Cell struct {
	Row int
	Col int
}

// CellForIndex maps a slot index to its grid cell.
func CellForIndex(index, tilesPerRow int) Cell {
	return Cell{
		Row: index / tilesPerRow,
		Col: index % tilesPerRow,
	}
}

// Index recovers the slot index from the cell position.
func (c Cell) Index(tilesPerRow int) int {
	return c.Row*tilesPerRow + c.Col
}

// Offset returns the top-left pixel of the cell on the atlas canvas.
func (c Cell) Offset(tileSize int) image.Point {
	return image.Point{X: c.Col * tileSize, Y: c.Row * tileSize}
}

// Bounds returns the pixel rectangle the cell occupies on the atlas canvas.
func (c Cell) Bounds(tileSize int) image.Rectangle {
	off := c.Offset(tileSize)
	return image.Rect(off.X, off.Y, off.X+tileSize, off.Y+tileSize)
}

// String returns the cell as "r{row}_c{col}".
func (c Cell) String() string {
	return fmt.Sprintf("r%d_c%d", c.Row, c.Col)
}
