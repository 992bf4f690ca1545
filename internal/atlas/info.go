package atlas

import (
	"fmt"
	"image/png"
	"os"
)

// Info describes an existing atlas image on disk.
type Info struct {
	Path        string
	Width       int
	Height      int
	TileSize    int
	TilesPerRow int
	Cells       int
}

// ReadInfo reads only the PNG header of an atlas file and derives its grid
// parameters for the given tile size. The atlas must be square with a side
// that is an exact multiple of the tile size.
func ReadInfo(path string, tileSize int) (Info, error) {
	if tileSize <= 0 {
		return Info{}, fmt.Errorf("tile size must be positive, got %d", tileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open atlas %s: %w", path, err)
	}
	defer file.Close() // nolint:errcheck

	cfg, err := png.DecodeConfig(file)
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode atlas %s: %w", path, err)
	}

	if cfg.Width != cfg.Height {
		return Info{}, fmt.Errorf("atlas %s is not square: %dx%d", path, cfg.Width, cfg.Height)
	}
	if cfg.Width%tileSize != 0 {
		return Info{}, fmt.Errorf("atlas side %d is not a multiple of tile size %d", cfg.Width, tileSize)
	}

	tilesPerRow := cfg.Width / tileSize
	return Info{
		Path:        path,
		Width:       cfg.Width,
		Height:      cfg.Height,
		TileSize:    tileSize,
		TilesPerRow: tilesPerRow,
		Cells:       tilesPerRow * tilesPerRow,
	}, nil
}
