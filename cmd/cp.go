package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/rtzll/tubequiz/internal"
)

// cpCmd copies the generated quiz to the system clipboard instead of printing to stdout.
var cpCmd = &cobra.Command{
	Use:   "cp [URL]",
	Short: "Generate a quiz and copy it to the clipboard",
	Example: `  # Copy four multiple-choice questions
  tubequiz cp "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

  # Copy five true-or-false questions
  tubequiz cp dQw4w9WgXcQ -t true-or-false -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quiz, err := generateQuiz(cmd, newCLIApp(), args[0])
		if err != nil {
			return err
		}

		if err := clipboard.WriteAll(quiz); err != nil {
			return fmt.Errorf("copying quiz to clipboard: %w", err)
		}

		if !config.Quiet {
			fmt.Println("Quiz copied to clipboard")
		}

		return nil
	},
}

func init() {
	internal.AddQuizFlags(cpCmd)
	rootCmd.AddCommand(cpCmd)
}
