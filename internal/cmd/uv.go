package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxelkit/atlasgen/internal/atlas"
)

var uvCmd = &cobra.Command{
	Use:   "uv <name|index>",
	Short: "Print the grid cell and UV rectangle for a slot",
	Long: `Resolve a slot by texture name or numeric index and print its grid cell,
pixel offset, and padded UV rectangle as the renderer samples it.`,
	Args: cobra.ExactArgs(1),
	RunE: runUV,
}

func init() {
	rootCmd.AddCommand(uvCmd)

	uvCmd.Flags().Int("tile-size", 16, "Tile size in pixels")
	uvCmd.Flags().Int("atlas-size", 256, "Atlas size in pixels")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"uv.tile_size", "tile-size"},
		{"uv.atlas_size", "atlas-size"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, uvCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runUV(cmd *cobra.Command, args []string) error {
	tileSize := viper.GetInt("uv.tile_size")
	atlasSize := viper.GetInt("uv.atlas_size")

	if tileSize <= 0 || atlasSize <= 0 {
		return fmt.Errorf("tile size and atlas size must be positive")
	}
	if atlasSize%tileSize != 0 {
		return fmt.Errorf("atlas size %d is not a multiple of tile size %d", atlasSize, tileSize)
	}
	tilesPerRow := atlasSize / tileSize

	table, err := slotTable()
	if err != nil {
		return err
	}
	if err := table.Validate(tilesPerRow); err != nil {
		return fmt.Errorf("invalid slot table: %w", err)
	}

	slot, err := resolveSlot(table, args[0], tilesPerRow)
	if err != nil {
		return err
	}

	cell := atlas.CellForIndex(slot.Index, tilesPerRow)
	off := cell.Offset(tileSize)
	uv := atlas.UVForIndex(slot.Index, tilesPerRow)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:   %s\n", slot.Name)
	fmt.Fprintf(out, "index:  %d\n", slot.Index)
	fmt.Fprintf(out, "cell:   row %d, col %d\n", cell.Row, cell.Col)
	fmt.Fprintf(out, "pixels: (%d, %d) .. (%d, %d)\n", off.X, off.Y, off.X+tileSize, off.Y+tileSize)
	fmt.Fprintf(out, "uv:     [%.6f, %.6f] .. [%.6f, %.6f]\n", uv.U0, uv.V0, uv.U1, uv.V1)
	return nil
}

// resolveSlot interprets the argument as a table name first, then as a
// numeric index. Unknown names are an error; a bare index merely has to be in
// range, so unassigned cells can still be inspected.
func resolveSlot(table atlas.Table, arg string, tilesPerRow int) (atlas.Slot, error) {
	if slot, ok := table.Lookup(arg); ok {
		return slot, nil
	}

	index, err := strconv.Atoi(arg)
	if err != nil {
		return atlas.Slot{}, fmt.Errorf("unknown texture %q", arg)
	}
	if index < 0 || index >= tilesPerRow*tilesPerRow {
		return atlas.Slot{}, fmt.Errorf("index %d out of range [0, %d)", index, tilesPerRow*tilesPerRow)
	}

	if slot, ok := table.LookupIndex(index); ok {
		return slot, nil
	}
	return atlas.Slot{Name: "(unassigned)", Index: index}, nil
}
