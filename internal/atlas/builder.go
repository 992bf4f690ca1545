package atlas

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/voxelkit/atlasgen/internal/texture"
)

// Config configures a Builder. TilesDir holds the source PNGs, one per
// non-sentinel table entry, named "<name>.png".
type Config struct {
	TilesDir    string
	OutputPath  string
	TileSize    int
	AtlasSize   int
	Table       Table
	Sentinel    string
	Compression png.CompressionLevel
	DebugGrid   bool
	Logger      *slog.Logger
}

// PlacedTile records one tile composited into the atlas.
type PlacedTile struct {
	Name  string
	Index int
	Cell  Cell
}

// Result summarizes one build run.
type Result struct {
	OutputPath string
	Placed     []PlacedTile
	Missing    []string
}

// Builder composites named source tiles into a fixed-size atlas image.
// It owns the canvas for the duration of one Build call and runs strictly
// sequentially; each tile writes a disjoint region of the canvas.
type Builder struct {
	cfg         Config
	tilesPerRow int
	logger      *slog.Logger
}

// NewBuilder validates the configuration and prepares a builder.
// The atlas size must be an exact multiple of the tile size, and the slot
// table must fit the resulting grid.
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", cfg.TileSize)
	}
	if cfg.AtlasSize <= 0 {
		return nil, fmt.Errorf("atlas size must be positive, got %d", cfg.AtlasSize)
	}
	if cfg.AtlasSize%cfg.TileSize != 0 {
		return nil, fmt.Errorf("atlas size %d is not a multiple of tile size %d", cfg.AtlasSize, cfg.TileSize)
	}
	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("output path must not be empty")
	}
	if cfg.Sentinel == "" {
		cfg.Sentinel = SentinelName
	}

	tilesPerRow := cfg.AtlasSize / cfg.TileSize
	if err := cfg.Table.Validate(tilesPerRow); err != nil {
		return nil, fmt.Errorf("invalid slot table: %w", err)
	}

	return &Builder{
		cfg:         cfg,
		tilesPerRow: tilesPerRow,
		logger:      cfg.Logger,
	}, nil
}

// TilesPerRow returns the grid width of the configured atlas.
func (b *Builder) TilesPerRow() int {
	return b.tilesPerRow
}

// Build composites every table entry into a fresh transparent canvas and
// writes it to the configured output path. A missing source file is logged
// and skipped, leaving its cell transparent; any other failure aborts the
// run.
func (b *Builder) Build() (Result, error) {
	result := Result{OutputPath: b.cfg.OutputPath}

	canvas := image.NewNRGBA(image.Rect(0, 0, b.cfg.AtlasSize, b.cfg.AtlasSize))

	for _, slot := range b.cfg.Table {
		if slot.Name == b.cfg.Sentinel {
			// Reserved "no texture" slot; its cell stays transparent.
			continue
		}

		path := filepath.Join(b.cfg.TilesDir, slot.Name+".png")
		if _, err := os.Stat(path); err != nil {
			b.log().Warn("Missing texture", "name", slot.Name)
			result.Missing = append(result.Missing, slot.Name)
			continue
		}

		tile, err := texture.LoadTile(path, b.cfg.TileSize)
		if err != nil {
			return result, err
		}

		cell := CellForIndex(slot.Index, b.tilesPerRow)
		// Source alpha replaces the destination outright; no blending.
		draw.Draw(canvas, cell.Bounds(b.cfg.TileSize), tile, image.Point{}, draw.Src)

		b.log().Info("Added texture", "name", slot.Name, "index", slot.Index, "cell", cell.String())
		result.Placed = append(result.Placed, PlacedTile{Name: slot.Name, Index: slot.Index, Cell: cell})
	}

	if err := b.writePNG(b.cfg.OutputPath, canvas); err != nil {
		return result, err
	}

	if b.cfg.DebugGrid {
		gridPath := debugGridPath(b.cfg.OutputPath)
		overlay := b.drawDebugGrid(canvas)
		if err := b.writePNG(gridPath, overlay); err != nil {
			return result, err
		}
		b.log().Info("Debug grid written", "path", gridPath)
	}

	b.log().Info("Atlas written",
		"path", b.cfg.OutputPath,
		"size", fmt.Sprintf("%dx%d", b.cfg.AtlasSize, b.cfg.AtlasSize),
		"placed", len(result.Placed),
		"missing", len(result.Missing),
	)

	return result, nil
}

func (b *Builder) writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create atlas file %s: %w", path, err)
	}
	defer file.Close() // nolint:errcheck

	enc := png.Encoder{CompressionLevel: b.cfg.Compression}
	if err := enc.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode atlas %s: %w", path, err)
	}
	return nil
}

func debugGridPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return outputPath[:len(outputPath)-len(ext)] + ".grid" + ext
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return slog.Default()
}
