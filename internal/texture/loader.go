package texture

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/gift"

	_ "image/png" // Register PNG decoder
)

// LoadTile loads a source tile from disk and resizes it to size x size.
// Sources of arbitrary resolution are accepted; the result is always NRGBA.
func LoadTile(path string, size int) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tile %s: %w", path, err)
	}

	img, _, err := image.Decode(file)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to decode tile %s: %w", path, err)
	}

	return Resize(img, size), nil
}

// Resize scales an image to size x size using Lanczos resampling and converts
// it to NRGBA in the same pass.
func Resize(src image.Image, size int) *image.NRGBA {
	g := gift.New(gift.Resize(size, size, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}
