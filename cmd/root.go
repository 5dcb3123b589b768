package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rtzll/tubequiz/internal"
)

var (
	config *internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tubequiz [YouTube URL or ID]",
	Short: "Turn YouTube videos into quizzes",
	Long: `tubequiz writes quiz questions about a YouTube video.

It fetches the video's captions and asks a language model to write
multiple-choice, short-answer, true-or-false or fill-in-the-blank
questions about it, with an answer key at the bottom.

Any OpenAI-compatible endpoint works; Groq is the default.`,
	Example: `  # Four multiple-choice questions (the defaults)
  tubequiz "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  tubequiz dQw4w9WgXcQ

  # Ten true-or-false questions with a funny one at the end
  tubequiz "https://youtu.be/dQw4w9WgXcQ" --type true-or-false -n 10 --humor

  # Use a specific model
  tubequiz dQw4w9WgXcQ --model llama3-8b-8192`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		config = internal.InitConfig(configFile)

		if err := internal.EnsureDirs(config.ConfigDir, config.CacheDir); err != nil {
			return fmt.Errorf("creating XDG directories: %w", err)
		}

		if configFile == "" {
			if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default config: %v\n", err)
			}
		}

		return internal.HandleVerboseFlag(cmd, config)
	},
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := args[0]
		if internal.IsLikelyCommand(arg) && !internal.IsValidVideoID(arg) {
			var suggestions []string
			for _, c := range cmd.Commands() {
				if strings.HasPrefix(c.Name(), arg) || strings.Contains(c.Name(), arg) {
					suggestions = append(suggestions, c.Name())
				}
			}

			if len(suggestions) > 0 {
				return fmt.Errorf("'%s' doesn't look like a YouTube URL or video ID. Did you mean: %s?", arg, strings.Join(suggestions, ", "))
			}
			return fmt.Errorf("'%s' doesn't look like a YouTube URL or video ID. Use --help to see available commands", arg)
		}

		return runGenerate(cmd, arg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal. Cleaning up and shutting down...")

		cancel()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cleanupCancel()

		cleanupDone := make(chan struct{})
		go func() {
			if config != nil {
				if err := internal.CleanupTempDir(config.TempDir, os.Getpid()); err != nil {
					fmt.Fprintf(os.Stderr, "Error cleaning up temporary files: %v\n", err)
				}
			}
			close(cleanupDone)
		}()

		select {
		case <-cleanupDone:
		case <-cleanupCtx.Done():
			fmt.Fprintln(os.Stderr, "Warning: Cleanup timed out, forcing exit")
		}

		os.Exit(130)
	}()

	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

func init() {
	internal.AddQuizFlags(rootCmd)
	internal.AddOutputFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress status output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $XDG_CONFIG_HOME/tubequiz/config.toml)")
}
