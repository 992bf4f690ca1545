package texture

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/aquilax/go-perlin"
)

// TileParams defines a generated sample tile.
type TileParams struct {
	Size      int
	BaseColor color.NRGBA
	Seed      int64
}

// TileWriteResult reports which sample tiles were written or skipped.
type TileWriteResult struct {
	Written []string
	Skipped []string
}

// sampleTileColors approximates the Kenney voxel pack palette so generated
// fixtures read roughly like the real assets.
var sampleTileColors = map[string]color.NRGBA{
	"greystone":    {R: 130, G: 130, B: 134, A: 255},
	"dirt":         {R: 134, G: 96, B: 67, A: 255},
	"grass_top":    {R: 98, G: 157, B: 68, A: 255},
	"dirt_grass":   {R: 117, G: 128, B: 66, A: 255},
	"sand":         {R: 218, G: 206, B: 160, A: 255},
	"water":        {R: 64, G: 120, B: 200, A: 200},
	"trunk_top":    {R: 166, G: 133, B: 94, A: 255},
	"trunk_side":   {R: 116, G: 88, B: 58, A: 255},
	"leaves":       {R: 60, G: 110, B: 48, A: 255},
	"glass":        {R: 200, G: 224, B: 232, A: 120},
	"stone":        {R: 112, G: 112, B: 112, A: 255},
	"wood":         {R: 158, G: 120, B: 76, A: 255},
	"rock":         {R: 90, G: 86, B: 82, A: 255},
	"gravel_stone": {R: 140, G: 134, B: 126, A: 255},
	"brick_red":    {R: 166, G: 68, B: 58, A: 255},
	"snow":         {R: 238, G: 242, B: 246, A: 255},
	"ice":          {R: 160, G: 200, B: 236, A: 255},
}

// ColorForName returns the palette color for a texture name, or a
// hash-derived midrange color for names outside the palette.
func ColorForName(name string) color.NRGBA {
	if c, ok := sampleTileColors[name]; ok {
		return c
	}

	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	return color.NRGBA{
		R: uint8(64 + (sum>>16)&0x7F),
		G: uint8(64 + (sum>>8)&0x7F),
		B: uint8(64 + sum&0x7F),
		A: 255,
	}
}

// GenerateTile creates a flat-color tile shaded with seeded Perlin noise.
// The same params always produce the same pixels.
func GenerateTile(p TileParams) (*image.NRGBA, error) {
	if p.Size <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", p.Size)
	}

	// alpha = persistence, beta = lacunarity, 3 octaves
	noise := perlin.NewPerlin(2.0, 2.0, 3, p.Seed)
	scale := float64(p.Size) / 4.0

	img := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			// Noise2D returns roughly [-1, 1]; shade the base color by up to 25%.
			n := noise.Noise2D(float64(x)/scale, float64(y)/scale)
			img.SetNRGBA(x, y, color.NRGBA{
				R: shade(p.BaseColor.R, n),
				G: shade(p.BaseColor.G, n),
				B: shade(p.BaseColor.B, n),
				A: p.BaseColor.A,
			})
		}
	}

	return img, nil
}

func shade(c uint8, noise float64) uint8 {
	v := float64(c) * (1.0 + 0.25*noise)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// WriteSampleTiles writes one generated tile per name into dir, skipping
// files that already exist unless force is set. Names are processed in the
// given order; each gets a distinct seed derived from the base seed.
func WriteSampleTiles(dir string, names []string, size int, seed int64, force bool) (TileWriteResult, error) {
	var result TileWriteResult

	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, fmt.Errorf("failed to create tiles dir: %w", err)
	}

	for i, name := range names {
		path := filepath.Join(dir, name+".png")

		if !force {
			if _, err := os.Stat(path); err == nil {
				result.Skipped = append(result.Skipped, path)
				continue
			}
		}

		img, err := GenerateTile(TileParams{
			Size:      size,
			BaseColor: ColorForName(name),
			Seed:      seed + int64(i)*1000,
		})
		if err != nil {
			return result, err
		}

		if err := writePNG(path, img); err != nil {
			return result, err
		}
		result.Written = append(result.Written, path)
	}

	return result, nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tile %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode tile %s: %w", path, err)
	}
	return nil
}
