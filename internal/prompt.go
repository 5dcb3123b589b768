package internal

import "fmt"

// SystemPrompt is the persona the completion model answers as
const SystemPrompt = "You are a helpful assistant that watches a video, transcribes all its contents, " +
	"and writes questions for students to verify that they understood the video"

// PromptRequest is the conversation sent to the completion model
type PromptRequest struct {
	System string
	Human  string
}

// BuildPrompt labels the transcript and the instructions and pairs them with the system prompt.
// The transcript is passed through whole; nothing is truncated.
func BuildPrompt(transcript, instructions string) PromptRequest {
	return PromptRequest{
		System: SystemPrompt,
		Human:  fmt.Sprintf("Audio Text: \n%s\n\nInstructions: \n%s", transcript, instructions),
	}
}
