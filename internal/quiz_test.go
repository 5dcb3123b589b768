package internal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeFetcher struct {
	segments []TranscriptSegment
	err      error
	calls    []string
	wait     bool
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoID string) ([]TranscriptSegment, error) {
	f.calls = append(f.calls, videoID)
	if f.wait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.segments, f.err
}

type fakeCompleter struct {
	text  string
	err   error
	calls []CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.text, f.err
}

func rickrollSegments() []TranscriptSegment {
	return []TranscriptSegment{
		{Start: 0, End: 2 * time.Second, Text: "We're no strangers to love"},
		{Start: 2 * time.Second, End: 4 * time.Second, Text: "You know the rules"},
		{Start: 4 * time.Second, End: 6 * time.Second, Text: "and so do I"},
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	fetcher := &fakeFetcher{segments: rickrollSegments()}
	completer := &fakeCompleter{text: "1. What is never given up?\n\nAnswers: 1. B"}
	g := NewGenerator(fetcher, completer)

	got := g.GenerateQuestions(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "MCQ", 4, "llama3-70b-8192", false)

	if got != completer.text {
		t.Errorf("output = %q; want completion text unmodified", got)
	}

	if len(fetcher.calls) != 1 || fetcher.calls[0] != "dQw4w9WgXcQ" {
		t.Fatalf("fetch calls = %v; want [dQw4w9WgXcQ]", fetcher.calls)
	}
	if len(completer.calls) != 1 {
		t.Fatalf("completion calls = %d; want 1", len(completer.calls))
	}

	call := completer.calls[0]
	if call.Model != "llama3-70b-8192" {
		t.Errorf("model = %q; want llama3-70b-8192", call.Model)
	}
	if call.Temperature != 0 {
		t.Errorf("temperature = %v; want 0", call.Temperature)
	}
	if !strings.Contains(call.Prompt.System, "writes questions for students") {
		t.Errorf("system message = %q", call.Prompt.System)
	}
	if !strings.Contains(call.Prompt.Human, "We're no strangers to love You know the rules and so do I") {
		t.Errorf("human message missing joined transcript:\n%s", call.Prompt.Human)
	}

	mcq, _ := RenderInstructions(MCQ, 4, false)
	if !strings.Contains(call.Prompt.Human, mcq) {
		t.Errorf("human message missing MCQ instructions:\n%s", call.Prompt.Human)
	}
}

func TestGenerate_InvalidURL(t *testing.T) {
	fetcher := &fakeFetcher{segments: rickrollSegments()}
	completer := &fakeCompleter{text: "quiz"}
	g := NewGenerator(fetcher, completer)

	got := g.GenerateQuestions(context.Background(), "not a url", "MCQ", 4, "llama3-70b-8192", false)

	if got != "Invalid YouTube URL. Please enter a valid URL." {
		t.Errorf("output = %q", got)
	}
	if len(fetcher.calls) != 0 || len(completer.calls) != 0 {
		t.Errorf("external calls made: fetch=%d completion=%d", len(fetcher.calls), len(completer.calls))
	}
}

func TestGenerate_InvalidQuestionType(t *testing.T) {
	fetcher := &fakeFetcher{segments: rickrollSegments()}
	completer := &fakeCompleter{text: "quiz"}
	g := NewGenerator(fetcher, completer)

	res := g.Generate(context.Background(), Request{
		URL:          "https://youtu.be/dQw4w9WgXcQ",
		QuestionType: "essay",
		Count:        4,
		Model:        "llama3-70b-8192",
	})

	if !errors.Is(res.Err, ErrInvalidQuestionType) {
		t.Errorf("err = %v; want ErrInvalidQuestionType", res.Err)
	}
	if res.Message() != MsgInvalidQuestionType {
		t.Errorf("message = %q", res.Message())
	}
	if len(fetcher.calls) != 0 || len(completer.calls) != 0 {
		t.Errorf("external calls made: fetch=%d completion=%d", len(fetcher.calls), len(completer.calls))
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	fetcher := &fakeFetcher{segments: rickrollSegments()}
	g := NewGenerator(fetcher, &fakeCompleter{})

	res := g.Generate(context.Background(), Request{URL: "https://youtu.be/dQw4w9WgXcQ", QuestionType: "MCQ", Count: 0})

	if res.Message() != MsgInvalidCount {
		t.Errorf("message = %q; want %q", res.Message(), MsgInvalidCount)
	}
	if len(fetcher.calls) != 0 {
		t.Error("fetcher called for an invalid count")
	}
}

func TestGenerate_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("Subtitles are disabled for this video")}
	completer := &fakeCompleter{text: "quiz"}
	g := NewGenerator(fetcher, completer)

	res := g.Generate(context.Background(), Request{
		URL:          "https://youtu.be/dQw4w9WgXcQ",
		QuestionType: "true-or-false",
		Count:        4,
	})

	var fetchErr *FetchError
	if !errors.As(res.Err, &fetchErr) {
		t.Fatalf("err = %v; want *FetchError", res.Err)
	}
	if fetchErr.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", fetchErr.VideoID)
	}
	if want := "Failed to retrieve transcript: Subtitles are disabled for this video"; res.Message() != want {
		t.Errorf("message = %q; want %q", res.Message(), want)
	}
	if len(completer.calls) != 0 {
		t.Error("completion called after fetch failure")
	}
}

func TestGenerate_CompletionFailure(t *testing.T) {
	cause := errors.New("model decommissioned")
	completer := &fakeCompleter{err: cause}
	g := NewGenerator(&fakeFetcher{segments: rickrollSegments()}, completer)

	res := g.Generate(context.Background(), Request{
		URL:          "https://youtu.be/dQw4w9WgXcQ",
		QuestionType: "short-answer",
		Count:        3,
		Model:        "gemma-7b-it",
	})

	var completionErr *CompletionError
	if !errors.As(res.Err, &completionErr) {
		t.Fatalf("err = %v; want *CompletionError", res.Err)
	}
	if !errors.Is(res.Err, cause) {
		t.Error("completion error does not wrap its cause")
	}
	if completionErr.Model != "gemma-7b-it" {
		t.Errorf("Model = %q", completionErr.Model)
	}
	if want := "Failed to generate questions: model decommissioned"; res.Message() != want {
		t.Errorf("message = %q; want %q", res.Message(), want)
	}
}

func TestGenerate_HumorReachesPrompt(t *testing.T) {
	completer := &fakeCompleter{text: "quiz"}
	g := NewGenerator(&fakeFetcher{segments: rickrollSegments()}, completer)

	g.GenerateQuestions(context.Background(), "https://youtu.be/dQw4w9WgXcQ", "fill-in-the-blanks", 5, "m", true)

	if len(completer.calls) != 1 {
		t.Fatalf("completion calls = %d; want 1", len(completer.calls))
	}
	funny, _ := RenderInstructions(FillInTheBlanks, 5, true)
	if !strings.Contains(completer.calls[0].Prompt.Human, funny) {
		t.Errorf("human message missing humor instructions:\n%s", completer.calls[0].Prompt.Human)
	}
}

func TestGenerate_Timeout(t *testing.T) {
	fetcher := &fakeFetcher{wait: true}
	g := NewGenerator(fetcher, &fakeCompleter{}, WithTimeout(10*time.Millisecond))

	res := g.Generate(context.Background(), Request{URL: "https://youtu.be/dQw4w9WgXcQ", QuestionType: "MCQ", Count: 4})

	if !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Errorf("err = %v; want deadline exceeded", res.Err)
	}
	if !strings.HasPrefix(res.Message(), "Failed to retrieve transcript: ") {
		t.Errorf("message = %q", res.Message())
	}
}

func TestGenerate_StageOrder(t *testing.T) {
	var stages []Stage
	g := NewGenerator(&fakeFetcher{segments: rickrollSegments()}, &fakeCompleter{text: "quiz"},
		WithStageHook(func(s Stage) { stages = append(stages, s) }))

	g.Generate(context.Background(), Request{URL: "https://youtu.be/dQw4w9WgXcQ", QuestionType: "MCQ", Count: 4})

	want := []Stage{StageExtractID, StageSelectTemplate, StageFetchTranscript, StageAssemblePrompt, StageComplete}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v; want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("stage %d = %v; want %v", i, stages[i], want[i])
		}
	}
}

func TestErrorMessage_Passthrough(t *testing.T) {
	if got := ErrorMessage(nil); got != "" {
		t.Errorf("ErrorMessage(nil) = %q", got)
	}
	if got := ErrorMessage(errors.New("boom")); got != "boom" {
		t.Errorf("ErrorMessage(boom) = %q", got)
	}
}
