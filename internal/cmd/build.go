package cmd

import (
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxelkit/atlasgen/internal/atlas"
	"github.com/voxelkit/atlasgen/internal/watch"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the texture atlas",
	Long:  `Compose the slot table's source tiles into a single atlas PNG.`,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "o", "atlas.png", "Output atlas path")
	buildCmd.Flags().Int("tile-size", 16, "Tile size in pixels")
	buildCmd.Flags().Int("atlas-size", 256, "Atlas size in pixels (must be a multiple of tile size)")
	buildCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")
	buildCmd.Flags().Bool("debug-grid", false, "Also write a copy with grid lines and slot index labels")
	buildCmd.Flags().Bool("watch", false, "Rebuild whenever a source tile changes")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"build.output", "output"},
		{"build.tile_size", "tile-size"},
		{"build.atlas_size", "atlas-size"},
		{"build.png_compression", "png-compression"},
		{"build.debug_grid", "debug-grid"},
		{"build.watch", "watch"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, buildCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	tilesDir := viper.GetString("tiles-dir")
	output := viper.GetString("build.output")
	tileSize := viper.GetInt("build.tile_size")
	atlasSize := viper.GetInt("build.atlas_size")
	debugGrid := viper.GetBool("build.debug_grid")
	watchMode := viper.GetBool("build.watch")

	compression, err := parseCompression(viper.GetString("build.png_compression"))
	if err != nil {
		return err
	}

	table, err := slotTable()
	if err != nil {
		return err
	}

	builder, err := atlas.NewBuilder(atlas.Config{
		TilesDir:    tilesDir,
		OutputPath:  output,
		TileSize:    tileSize,
		AtlasSize:   atlasSize,
		Table:       table,
		Sentinel:    sentinelName(),
		Compression: compression,
		DebugGrid:   debugGrid,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	logger.Info("Building atlas",
		"tiles_dir", tilesDir,
		"output", output,
		"tile_size", tileSize,
		"atlas_size", atlasSize,
		"slots", len(table),
	)

	if _, err := builder.Build(); err != nil {
		return err
	}

	if !watchMode {
		return nil
	}
	return watchAndRebuild(builder, tilesDir)
}

// watchAndRebuild re-runs the builder whenever a source tile changes, until
// the process is interrupted. Builds stay sequential; at most one rebuild is
// queued while another is running.
func watchAndRebuild(builder *atlas.Builder, tilesDir string) error {
	w, err := watch.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop() // nolint:errcheck

	rebuild := make(chan string, 1)
	if err := w.Watch(tilesDir, func(path string) {
		select {
		case rebuild <- path:
		default: // a rebuild is already queued
		}
	}); err != nil {
		return fmt.Errorf("failed to watch %s: %w", tilesDir, err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	logger.Info("Watching for tile changes", "dir", tilesDir)
	for {
		select {
		case path := <-rebuild:
			logger.Info("Tile changed; rebuilding", "path", path)
			if _, err := builder.Build(); err != nil {
				logger.Error("Rebuild failed", "error", err)
			}
		case <-sig:
			logger.Info("Stopping watch mode")
			return nil
		}
	}
}

// parseCompression maps the --png-compression flag to a png.CompressionLevel.
func parseCompression(s string) (png.CompressionLevel, error) {
	switch s {
	case "", "default":
		return png.DefaultCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	case "none":
		return png.NoCompression, nil
	}
	return 0, fmt.Errorf("invalid png compression %q: must be default, speed, best, or none", s)
}

// slotTable returns the slot table from the config's "slots" mapping, or the
// compiled-in default. Config mappings carry no order, so loaded tables are
// ordered by index.
func slotTable() (atlas.Table, error) {
	if !viper.IsSet("slots") {
		return atlas.DefaultTable, nil
	}

	raw := viper.GetStringMap("slots")
	m := make(map[string]int, len(raw))
	for name, v := range raw {
		index, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid slot index for %q: %v", name, v)
		}
		m[name] = index
	}

	return atlas.TableFromMap(m), nil
}

// sentinelName returns the configured reserved slot name.
func sentinelName() string {
	if s := viper.GetString("sentinel"); s != "" {
		return s
	}
	return atlas.SentinelName
}
