package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxelkit/atlasgen/internal/atlas"
)

var infoCmd = &cobra.Command{
	Use:   "info <atlas.png>",
	Short: "Inspect an existing atlas image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Int("tile-size", 16, "Tile size in pixels")

	if err := viper.BindPFlag("info.tile_size", infoCmd.Flags().Lookup("tile-size")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	tileSize := viper.GetInt("info.tile_size")

	info, err := atlas.ReadInfo(args[0], tileSize)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "atlas:         %s\n", info.Path)
	fmt.Fprintf(out, "size:          %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(out, "tile size:     %d\n", info.TileSize)
	fmt.Fprintf(out, "tiles per row: %d\n", info.TilesPerRow)
	fmt.Fprintf(out, "cells:         %d\n", info.Cells)
	return nil
}
