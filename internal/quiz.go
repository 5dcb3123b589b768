package internal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Messages shown to users when a request cannot be served
const (
	MsgInvalidURL          = "Invalid YouTube URL. Please enter a valid URL."
	MsgInvalidQuestionType = "Invalid question type. Please choose either 'MCQ', 'short-answer', 'true-or-false' or 'fill-in-the-blanks'."
	MsgInvalidCount        = "Invalid number of questions. Please enter a whole number between 1 and 50."
)

// ErrInvalidURL means no video ID could be extracted from the input
var ErrInvalidURL = errors.New("invalid YouTube URL")

// FetchError wraps a transcript fetch failure
type FetchError struct {
	VideoID string
	Cause   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching transcript for %s: %v", e.VideoID, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// CompletionError wraps a completion model failure
type CompletionError struct {
	Model string
	Cause error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completing with %s: %v", e.Model, e.Cause)
}

func (e *CompletionError) Unwrap() error { return e.Cause }

// Request holds the parameters of one quiz generation
type Request struct {
	URL          string
	QuestionType string
	Count        int
	Model        string
	Humor        bool
}

// Result is either the generated quiz text or the error that stopped the pipeline
type Result struct {
	Text string
	Err  error
}

// Message returns the text to display for the result
func (r Result) Message() string {
	if r.Err == nil {
		return r.Text
	}
	return ErrorMessage(r.Err)
}

// ErrorMessage converts a pipeline error into the message shown to users
func ErrorMessage(err error) string {
	var fetchErr *FetchError
	var completionErr *CompletionError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidURL):
		return MsgInvalidURL
	case errors.Is(err, ErrInvalidQuestionType):
		return MsgInvalidQuestionType
	case errors.Is(err, ErrInvalidCount):
		return MsgInvalidCount
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("Failed to retrieve transcript: %v", fetchErr.Cause)
	case errors.As(err, &completionErr):
		return fmt.Sprintf("Failed to generate questions: %v", completionErr.Cause)
	default:
		return err.Error()
	}
}

// Generator runs the URL -> transcript -> prompt -> completion pipeline.
// It keeps no state between calls and is safe for concurrent use as long as
// its collaborators are.
type Generator struct {
	fetcher   TranscriptFetcher
	completer CompletionClient
	timeout   time.Duration
	onStage   func(Stage)
}

// GeneratorOption customizes Generator creation
type GeneratorOption func(*Generator)

// WithTimeout bounds each external call. Zero disables the bound.
func WithTimeout(d time.Duration) GeneratorOption {
	return func(g *Generator) {
		g.timeout = d
	}
}

// WithStageHook registers a callback invoked as each stage begins
func WithStageHook(fn func(Stage)) GeneratorOption {
	return func(g *Generator) {
		g.onStage = fn
	}
}

// NewGenerator creates a pipeline over the given collaborators
func NewGenerator(fetcher TranscriptFetcher, completer CompletionClient, options ...GeneratorOption) *Generator {
	g := &Generator{
		fetcher:   fetcher,
		completer: completer,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Generate runs every stage in order and stops at the first failure.
// The question type is checked before any external call is made.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	g.stage(StageExtractID)
	videoID, ok := ExtractVideoID(req.URL)
	if !ok {
		return Result{Err: fmt.Errorf("%w: %q", ErrInvalidURL, req.URL)}
	}

	g.stage(StageSelectTemplate)
	qt, err := ParseQuestionType(req.QuestionType)
	if err != nil {
		return Result{Err: err}
	}
	instructions, err := RenderInstructions(qt, req.Count, req.Humor)
	if err != nil {
		return Result{Err: err}
	}

	g.stage(StageFetchTranscript)
	segments, err := g.fetch(ctx, videoID)
	if err != nil {
		return Result{Err: &FetchError{VideoID: videoID, Cause: err}}
	}

	g.stage(StageAssemblePrompt)
	prompt := BuildPrompt(JoinSegments(segments), instructions)

	g.stage(StageComplete)
	text, err := g.complete(ctx, CompletionRequest{
		Model:       req.Model,
		Prompt:      prompt,
		Temperature: 0,
	})
	if err != nil {
		return Result{Err: &CompletionError{Model: req.Model, Cause: err}}
	}

	return Result{Text: text}
}

// ValidateRequest runs the checks that need no external call, in pipeline order
func ValidateRequest(req Request) error {
	if _, ok := ExtractVideoID(req.URL); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidURL, req.URL)
	}
	qt, err := ParseQuestionType(req.QuestionType)
	if err != nil {
		return err
	}
	_, err = RenderInstructions(qt, req.Count, req.Humor)
	return err
}

// GenerateQuestions runs the pipeline and returns the quiz or the error message
func (g *Generator) GenerateQuestions(ctx context.Context, url, questionType string, count int, model string, humor bool) string {
	return g.Generate(ctx, Request{
		URL:          url,
		QuestionType: questionType,
		Count:        count,
		Model:        model,
		Humor:        humor,
	}).Message()
}

func (g *Generator) fetch(ctx context.Context, videoID string) ([]TranscriptSegment, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	return g.fetcher.Fetch(ctx, videoID)
}

func (g *Generator) complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	return g.completer.Complete(ctx, req)
}

func (g *Generator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Generator) stage(s Stage) {
	if g.onStage != nil {
		g.onStage(s)
	}
}
