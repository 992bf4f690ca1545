package atlas

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUVForIndexMatchesCellMath(t *testing.T) {
	const tilesPerRow = 16
	texel := 1.0 / float64(tilesPerRow)

	for _, index := range []int{0, 2, 15, 16, 255} {
		cell := CellForIndex(index, tilesPerRow)
		uv := UVForIndex(index, tilesPerRow)

		if !almostEqual(uv.U0, float64(cell.Col)*texel+BleedPadding) {
			t.Errorf("index %d: U0 = %f", index, uv.U0)
		}
		if !almostEqual(uv.V0, float64(cell.Row)*texel+BleedPadding) {
			t.Errorf("index %d: V0 = %f", index, uv.V0)
		}
		if !almostEqual(uv.U1, float64(cell.Col+1)*texel-BleedPadding) {
			t.Errorf("index %d: U1 = %f", index, uv.U1)
		}
		if !almostEqual(uv.V1, float64(cell.Row+1)*texel-BleedPadding) {
			t.Errorf("index %d: V1 = %f", index, uv.V1)
		}
	}
}

func TestUVForIndexStaysInUnitSquare(t *testing.T) {
	const tilesPerRow = 16
	for index := 0; index < tilesPerRow*tilesPerRow; index++ {
		uv := UVForIndex(index, tilesPerRow)
		if uv.U0 < 0 || uv.V0 < 0 || uv.U1 > 1 || uv.V1 > 1 {
			t.Fatalf("index %d: uv %+v escapes [0,1]", index, uv)
		}
		if uv.U0 >= uv.U1 || uv.V0 >= uv.V1 {
			t.Fatalf("index %d: degenerate uv %+v", index, uv)
		}
	}
}
