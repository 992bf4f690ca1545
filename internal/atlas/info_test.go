package atlas

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeBlankPNG(t *testing.T, path string, w, h int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))))
}

func TestReadInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	writeBlankPNG(t, path, 256, 256)

	info, err := ReadInfo(path, 16)
	require.NoError(t, err)

	require.Equal(t, 256, info.Width)
	require.Equal(t, 256, info.Height)
	require.Equal(t, 16, info.TilesPerRow)
	require.Equal(t, 256, info.Cells)
}

func TestReadInfoRejectsNonSquareAtlas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	writeBlankPNG(t, path, 256, 128)

	_, err := ReadInfo(path, 16)
	require.Error(t, err)
}

func TestReadInfoRejectsNonMultipleTileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	writeBlankPNG(t, path, 250, 250)

	_, err := ReadInfo(path, 16)
	require.Error(t, err)
}

func TestReadInfoMissingFile(t *testing.T) {
	_, err := ReadInfo(filepath.Join(t.TempDir(), "nope.png"), 16)
	require.Error(t, err)
}

func TestReadInfoRejectsBadTileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	writeBlankPNG(t, path, 256, 256)

	_, err := ReadInfo(path, 0)
	require.Error(t, err)
}
