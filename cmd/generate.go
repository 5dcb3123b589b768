package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtzll/tubequiz/internal"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [YouTube URL or ID]",
	Short: "Generate quiz questions from a YouTube video",
	Example: `  # Four multiple-choice questions
  tubequiz generate "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

  # Short answer questions saved to a file
  tubequiz generate dQw4w9WgXcQ -t short-answer -n 5 -o quiz.md

  # Fill-in-the-blanks with humor mode
  tubequiz generate dQw4w9WgXcQ -t fill-in-the-blanks --humor`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}

// generateQuiz runs the pipeline for a command argument and returns the quiz text
func generateQuiz(cmd *cobra.Command, app *internal.App, arg string) (string, error) {
	youtubeURL, videoID := internal.ParseArg(arg)
	if videoID == "" {
		return "", errors.New(internal.MsgInvalidURL)
	}

	req, err := internal.QuizRequestFromFlags(cmd, app, youtubeURL)
	if err != nil {
		return "", errors.New(internal.ErrorMessage(err))
	}

	if err := internal.ValidateCompletionRequirements(config, req); err != nil {
		return "", errors.New(internal.ErrorMessage(err))
	}

	result := app.Generate(cmd.Context(), req)
	if result.Err != nil {
		return "", errors.New(result.Message())
	}
	return result.Text, nil
}

// runGenerate generates a quiz and prints or saves it
func runGenerate(cmd *cobra.Command, arg string) error {
	app := newCLIApp()
	quiz, err := generateQuiz(cmd, app, arg)
	if err != nil {
		return err
	}

	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(quiz), 0644); err != nil {
			return fmt.Errorf("writing quiz: %w", err)
		}
		return nil
	}

	raw, _ := cmd.Flags().GetBool("raw")
	fmt.Println(app.Render(quiz, raw))
	return nil
}

// newCLIApp creates the application with the verbose-aware stderr logger
func newCLIApp() *internal.App {
	return internal.NewApp(config, internal.WithLogger(internal.NewLoggerOrNop(config, internal.LogCLI)))
}

func init() {
	internal.AddQuizFlags(generateCmd)
	internal.AddOutputFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
