package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddQuizFlags adds flags controlling quiz generation
func AddQuizFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Question type: MCQ, short-answer, true-or-false or fill-in-the-blanks")
	cmd.Flags().StringP("count", "n", "", "Number of questions to generate")
	cmd.Flags().StringP("model", "m", "", "Completion model to use")
	cmd.Flags().Bool("humor", false, "Sprinkle in a ridiculous choice or a funny final question")
}

// AddOutputFlags adds flags controlling how the quiz is printed
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("raw", false, "Print the model output without markdown rendering")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

// QuizRequestFromFlags builds a request for url from the configured defaults,
// overridden by any quiz flags set on the command line
func QuizRequestFromFlags(cmd *cobra.Command, app *App, url string) (Request, error) {
	req := app.NewRequest(url)

	if f := cmd.Flags().Lookup("type"); f != nil && f.Changed {
		req.QuestionType = f.Value.String()
	}

	if f := cmd.Flags().Lookup("count"); f != nil && f.Changed {
		count, err := ParseCount(f.Value.String())
		if err != nil {
			return req, err
		}
		req.Count = count
	}

	if f := cmd.Flags().Lookup("model"); f != nil && f.Changed {
		req.Model = f.Value.String()
	}

	if f := cmd.Flags().Lookup("humor"); f != nil && f.Changed {
		humor, err := cmd.Flags().GetBool("humor")
		if err != nil {
			return req, fmt.Errorf("failed to get humor flag: %w", err)
		}
		req.Humor = humor
	}

	return req, nil
}

// HandleVerboseFlag processes the --verbose and --quiet flags to update config
func HandleVerboseFlag(cmd *cobra.Command, config *Config) error {
	if f := cmd.Flags().Lookup("verbose"); f != nil && f.Changed {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("failed to get verbose flag: %w", err)
		}
		config.Verbose = verbose
	}
	if f := cmd.Flags().Lookup("quiet"); f != nil && f.Changed {
		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return fmt.Errorf("failed to get quiet flag: %w", err)
		}
		config.Quiet = quiet
	}
	return nil
}

// ValidateCompletionRequirements validates the request itself, then the API key
// and the requested model
func ValidateCompletionRequirements(config *Config, req Request) error {
	if err := ValidateRequest(req); err != nil {
		return err
	}
	if err := ValidateAPIKey(config.APIKey); err != nil {
		return err
	}
	if err := ValidateModel(req.Model, config.Models); err != nil {
		return err
	}
	return nil
}
