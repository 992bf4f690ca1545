package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxelkit/atlasgen/internal/texture"
)

var gentilesCmd = &cobra.Command{
	Use:   "gentiles",
	Short: "Generate sample source tiles",
	Long:  "Generate deterministic sample tiles for every slot table entry, for trying the builder without real assets.",
	RunE:  runGentiles,
}

func init() {
	rootCmd.AddCommand(gentilesCmd)

	gentilesCmd.Flags().Int("size", 128, "Generated tile size in pixels (square)")
	gentilesCmd.Flags().Int64("seed", 1337, "Deterministic seed for tile generation")
	gentilesCmd.Flags().Bool("force", false, "Overwrite tiles that already exist")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"gentiles.size", "size"},
		{"gentiles.seed", "seed"},
		{"gentiles.force", "force"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, gentilesCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGentiles(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	dir := viper.GetString("tiles-dir")
	size := viper.GetInt("gentiles.size")
	seed := viper.GetInt64("gentiles.seed")
	force := viper.GetBool("gentiles.force")

	if size <= 0 {
		return fmt.Errorf("size must be positive")
	}

	table, err := slotTable()
	if err != nil {
		return err
	}

	sentinel := sentinelName()
	names := make([]string, 0, len(table))
	for _, s := range table {
		if s.Name == sentinel {
			continue
		}
		names = append(names, s.Name)
	}

	result, err := texture.WriteSampleTiles(dir, names, size, seed, force)
	if err != nil {
		return err
	}

	logger.Info("Sample tile generation complete",
		"dir", dir,
		"written", len(result.Written),
		"skipped", len(result.Skipped),
	)
	return nil
}
