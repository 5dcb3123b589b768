package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtzll/tubequiz/internal"
)

// transcriptCmd represents the transcript command
var transcriptCmd = &cobra.Command{
	Use:   "transcript [YouTube URL or ID]",
	Short: "Print the transcript a quiz would be based on",
	Example: `  # Print the captions of a video
  tubequiz transcript "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  tubequiz transcript dQw4w9WgXcQ

  # Save transcript to file
  tubequiz transcript dQw4w9WgXcQ -o transcript.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newCLIApp()

		transcript, err := app.Transcript(cmd.Context(), args[0])
		if err != nil {
			return errors.New(internal.ErrorMessage(err))
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(transcript), 0644)
		}

		fmt.Println(transcript)
		return nil
	},
}

func init() {
	transcriptCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(transcriptCmd)
}
