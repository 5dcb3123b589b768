package internal

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// App holds the application state and dependencies
type App struct {
	fetcher   TranscriptFetcher
	completer CompletionClient
	config    *Config
	ui        UIManager
	log       *zap.SugaredLogger
}

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) *App {
	app := &App{
		config: config,
		ui:     NewUIManager(config.Quiet),
		log:    zap.NewNop().Sugar(),
	}

	// Apply any custom options
	for _, option := range options {
		option(app)
	}

	if app.fetcher == nil {
		app.fetcher = NewYouTube(config.TempDir, app.log)
	}
	if app.completer == nil {
		app.completer = &lazyCompletionClient{apiKey: config.APIKey, baseURL: config.BaseURL}
	}

	return app
}

// AppOption customizes App creation
type AppOption func(*App)

// WithFetcher sets a custom transcript fetcher
func WithFetcher(fetcher TranscriptFetcher) AppOption {
	return func(a *App) {
		a.fetcher = fetcher
	}
}

// WithCompletionClient sets a custom completion client
func WithCompletionClient(completer CompletionClient) AppOption {
	return func(a *App) {
		a.completer = completer
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(log *zap.SugaredLogger) AppOption {
	return func(a *App) {
		a.log = log
	}
}

// WithUI sets a custom UI manager
func WithUI(ui UIManager) AppOption {
	return func(a *App) {
		a.ui = ui
	}
}

// Config returns the application configuration
func (app *App) Config() *Config {
	return app.config
}

// NewRequest returns a request for url filled with the configured defaults
func (app *App) NewRequest(url string) Request {
	return Request{
		URL:          url,
		QuestionType: app.config.QuestionType,
		Count:        app.config.Count,
		Model:        app.config.Model,
		Humor:        app.config.Humor,
	}
}

var stageStatus = map[Stage]string{
	StageExtractID:       "Reading URL...",
	StageSelectTemplate:  "Preparing instructions...",
	StageFetchTranscript: "Fetching YouTube captions...",
	StageAssemblePrompt:  "Building prompt...",
	StageComplete:        "Generating questions...",
}

// Generate runs the question pipeline with a status spinner
func (app *App) Generate(ctx context.Context, req Request) Result {
	spinner := app.ui.NewSpinner("Starting...")
	defer spinner.Finish()

	log := app.log.With("url", req.URL, "type", req.QuestionType, "count", req.Count, "model", req.Model, "humor", req.Humor)

	generator := NewGenerator(app.fetcher, app.completer,
		WithTimeout(app.config.RequestTimeout),
		WithStageHook(func(s Stage) {
			log.Debugw("pipeline stage", "stage", s.String())
			spinner.Describe(stageStatus[s])
			spinner.Advance()
		}),
	)

	result := generator.Generate(ctx, req)
	if result.Err != nil {
		log.Infow("quiz generation failed", "error", result.Err)
	} else {
		log.Infow("quiz generated", "chars", len(result.Text))
	}
	return result
}

// Transcript returns the joined transcript text for a URL or video ID
func (app *App) Transcript(ctx context.Context, arg string) (string, error) {
	_, videoID := ParseArg(arg)
	if videoID == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, arg)
	}

	spinner := app.ui.NewSpinner("Fetching YouTube captions...")
	defer spinner.Finish()

	if app.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.config.RequestTimeout)
		defer cancel()
	}

	segments, err := app.fetcher.Fetch(ctx, videoID)
	if err != nil {
		return "", &FetchError{VideoID: videoID, Cause: err}
	}

	app.log.Debugw("transcript fetched", "video_id", videoID, "segments", len(segments))
	return JoinSegments(segments), nil
}

// Render formats quiz text for display. Markdown is rendered only for terminals.
func (app *App) Render(text string, raw bool) string {
	if raw || !StdoutIsTerminal() {
		return text
	}
	rendered, err := RenderMarkdown(text)
	if err != nil {
		app.log.Warnw("rendering markdown", "error", err)
		return text
	}
	return rendered
}
