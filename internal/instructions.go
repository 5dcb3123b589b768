package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// MaxQuestions caps how many questions a single request may ask for
const MaxQuestions = 50

var (
	ErrInvalidQuestionType = errors.New("invalid question type")
	ErrInvalidCount        = errors.New("invalid number of questions")
)

var instructionTemplates = template.Must(template.ParseFS(defaultFS, "instructions.tmpl"))

// humorClause is appended to the rendered instructions when humor mode is on
func humorClause(qt QuestionType) string {
	switch qt {
	case MCQ:
		return "Please add one humorous and ridiculous choice per question."
	case ShortAnswer, TrueOrFalse, FillInTheBlanks:
		return "The final question needs to be a very strange and funny question that will make the student laugh."
	default:
		return ""
	}
}

// RenderInstructions returns the authoring instructions for count questions of the given type.
// With humor set, the type's humor clause follows the regular instructions.
func RenderInstructions(qt QuestionType, count int, humor bool) (string, error) {
	switch qt {
	case MCQ, ShortAnswer, TrueOrFalse, FillInTheBlanks:
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidQuestionType, qt)
	}
	if count < 1 || count > MaxQuestions {
		return "", fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	var sb strings.Builder
	data := struct{ Count int }{Count: count}
	if err := instructionTemplates.ExecuteTemplate(&sb, qt.String(), data); err != nil {
		return "", fmt.Errorf("executing instructions template: %w", err)
	}

	if humor {
		sb.WriteString("\n")
		sb.WriteString(humorClause(qt))
	}

	return sb.String(), nil
}

// ParseCount coerces user input such as " 4 " to a question count
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > MaxQuestions {
		return 0, fmt.Errorf("%w: %q (must be between 1 and %d)", ErrInvalidCount, s, MaxQuestions)
	}
	return n, nil
}
