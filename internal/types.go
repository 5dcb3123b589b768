package internal

import (
	"fmt"
	"strings"
)

// QuestionType is the kind of quiz question to generate
type QuestionType int

const (
	MCQ QuestionType = iota + 1
	ShortAnswer
	TrueOrFalse
	FillInTheBlanks
)

// QuestionTypes returns every supported question type in display order
func QuestionTypes() []QuestionType {
	return []QuestionType{MCQ, ShortAnswer, TrueOrFalse, FillInTheBlanks}
}

// String returns the tag users type to select the question type
func (qt QuestionType) String() string {
	switch qt {
	case MCQ:
		return "MCQ"
	case ShortAnswer:
		return "short-answer"
	case TrueOrFalse:
		return "true-or-false"
	case FillInTheBlanks:
		return "fill-in-the-blanks"
	default:
		return fmt.Sprintf("QuestionType(%d)", int(qt))
	}
}

// ParseQuestionType maps a tag such as "MCQ" or "true-or-false" to its QuestionType.
// Matching ignores case and surrounding whitespace.
func ParseQuestionType(tag string) (QuestionType, error) {
	tag = strings.TrimSpace(tag)
	for _, qt := range QuestionTypes() {
		if strings.EqualFold(qt.String(), tag) {
			return qt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuestionType, tag)
}

// Stage identifies a step of the question generation pipeline
type Stage int

const (
	StageExtractID Stage = iota
	StageSelectTemplate
	StageFetchTranscript
	StageAssemblePrompt
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageExtractID:
		return "extract-id"
	case StageSelectTemplate:
		return "select-template"
	case StageFetchTranscript:
		return "fetch-transcript"
	case StageAssemblePrompt:
		return "assemble-prompt"
	case StageComplete:
		return "call-completion-model"
	default:
		return "unknown"
	}
}

// Preset is a sample video offered to users who don't have a URL at hand
type Preset struct {
	Topic string
	URL   string
}

// Presets lists the sample videos shown by the presets command
var Presets = []Preset{
	{Topic: "Music", URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
	{Topic: "Programming", URL: "https://www.youtube.com/watch?v=SkVDfaHQwRU"},
	{Topic: "Math", URL: "https://www.youtube.com/watch?v=50Bda5VKbqA&t=454s"},
	{Topic: "Pets", URL: "https://www.youtube.com/watch?v=Yzv0gXqoCkc"},
	{Topic: "Sports", URL: "https://www.youtube.com/watch?v=_0QTpylu1aE"},
}
