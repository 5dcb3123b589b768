package internal

import (
	"regexp"
	"strings"
)

// videoIDPattern recognizes watch?v=, youtu.be/, /embed/, /v/ and /e/ URLs
// with an optional scheme and www. prefix. Group 1 is the 11 character ID.
var videoIDPattern = regexp.MustCompile(
	`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`,
)

var videoIDCharset = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID returns the video ID of the first recognized YouTube URL in input.
// It reports false when nothing matches.
func ExtractVideoID(input string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(input)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsValidVideoID checks if a string looks like a valid YouTube video ID
func IsValidVideoID(id string) bool {
	return videoIDCharset.MatchString(id)
}

// WatchURL returns the canonical watch URL for a video ID
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// ParseArg normalizes a command line argument that is either a YouTube URL or
// a bare video ID. Unrecognized input is returned unchanged with an empty ID so
// the pipeline can report it.
func ParseArg(arg string) (string, string) {
	arg = strings.TrimSpace(arg)
	if IsValidVideoID(arg) {
		return WatchURL(arg), arg
	}
	if id, ok := ExtractVideoID(arg); ok {
		return arg, id
	}
	return arg, ""
}

// IsLikelyCommand checks if a string looks like it might be a mistyped command
func IsLikelyCommand(arg string) bool {
	return len(arg) <= 10 && !strings.ContainsAny(arg, "/. ")
}
