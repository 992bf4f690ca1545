package atlas

// BleedPadding is the UV inset applied on every cell edge to keep adjacent
// tiles from bleeding into each other when the atlas is sampled with
// filtering.
const BleedPadding = 0.001

// UVRect is a texture-coordinate rectangle in [0,1] atlas space.
// V grows downward, matching the row-major cell layout.
type UVRect struct {
	U0, V0 float64 // top-left
	U1, V1 float64 // bottom-right
}

// UVForIndex returns the padded UV rectangle for a slot index on an atlas
// with the given grid width.
func UVForIndex(index, tilesPerRow int) UVRect {
	cell := CellForIndex(index, tilesPerRow)
	texel := 1.0 / float64(tilesPerRow)

	return UVRect{
		U0: float64(cell.Col)*texel + BleedPadding,
		V0: float64(cell.Row)*texel + BleedPadding,
		U1: float64(cell.Col+1)*texel - BleedPadding,
		V1: float64(cell.Row+1)*texel - BleedPadding,
	}
}
