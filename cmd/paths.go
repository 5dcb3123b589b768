package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pathsCmd represents the paths command
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show paths used by the application",
	Example: `  # Show all application paths
  tubequiz paths`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Config directory: %s\n", config.ConfigDir)
		fmt.Printf("Cache directory: %s\n", config.CacheDir)
		fmt.Printf("Subtitle scratch directory: %s\n", config.TempDir)
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
