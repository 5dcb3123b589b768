package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtzll/tubequiz/internal"
)

// typesCmd lists the supported question types
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported question types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, qt := range internal.QuestionTypes() {
			fmt.Println(qt)
		}
	},
}

// modelsCmd lists the models accepted by --model
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List configured completion models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range config.Models {
			if m == config.Model {
				fmt.Printf("%s (default)\n", m)
				continue
			}
			fmt.Println(m)
		}
	},
}

// presetsCmd lists sample videos to try
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List sample videos to generate quizzes from",
	Example: `  # Pick a sample and generate a quiz from it
  tubequiz presets
  tubequiz "https://www.youtube.com/watch?v=SkVDfaHQwRU"`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range internal.Presets {
			fmt.Printf("%-12s %s\n", p.Topic, p.URL)
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(presetsCmd)
}
