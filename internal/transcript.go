package internal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TranscriptSegment is one timed caption of a video
type TranscriptSegment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// TranscriptFetcher retrieves the ordered transcript segments of a video
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]TranscriptSegment, error)
}

// JoinSegments concatenates segment texts with single spaces, skipping blank ones
func JoinSegments(segments []TranscriptSegment) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, " ")
}

// srtCue is one numbered SRT block with its text lines kept apart
type srtCue struct {
	start time.Duration
	end   time.Duration
	lines []string
}

// ParseSRT extracts timed segments from SRT subtitle content, one per cue.
// Blocks without a timing line are skipped.
func ParseSRT(content string) []TranscriptSegment {
	var segments []TranscriptSegment
	for _, cue := range parseSRTCues(content) {
		segments = append(segments, TranscriptSegment{
			Start: cue.start,
			End:   cue.end,
			Text:  strings.Join(cue.lines, " "),
		})
	}
	return segments
}

// ParseAutoCaptions extracts segments from auto-generated SRT captions.
// Those arrive as rolling cues where each line is repeated by the next cue
// ("A", "A\nB", "B", "B\nC"), so segments are built per line and a line
// equal to the one before it only extends that segment.
func ParseAutoCaptions(content string) []TranscriptSegment {
	var segments []TranscriptSegment
	for _, cue := range parseSRTCues(content) {
		for _, line := range cue.lines {
			if n := len(segments); n > 0 && segments[n-1].Text == line {
				segments[n-1].End = max(segments[n-1].End, cue.end)
				continue
			}
			segments = append(segments, TranscriptSegment{
				Start: cue.start,
				End:   cue.end,
				Text:  line,
			})
		}
	}
	return segments
}

func parseSRTCues(content string) []srtCue {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var cues []srtCue
	for block := range strings.SplitSeq(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")

		timing := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue
		}

		var text []string
		for _, line := range lines[timing+1:] {
			if line = strings.TrimSpace(line); line != "" {
				text = append(text, line)
			}
		}
		if len(text) == 0 {
			continue
		}

		start, end := parseSRTTiming(lines[timing])
		cues = append(cues, srtCue{start: start, end: end, lines: text})
	}

	return cues
}

// parseSRTTiming parses "00:00:01,000 --> 00:00:03,500". Malformed halves yield zero.
func parseSRTTiming(line string) (time.Duration, time.Duration) {
	parts := strings.SplitN(line, "-->", 2)
	start, _ := parseSRTTimestamp(parts[0])
	var end time.Duration
	if len(parts) == 2 {
		// yt-dlp may append position settings after the end timestamp
		fields := strings.Fields(parts[1])
		if len(fields) > 0 {
			end, _ = parseSRTTimestamp(fields[0])
		}
	}
	return start, end
}

func parseSRTTimestamp(ts string) (time.Duration, error) {
	ts = strings.ReplaceAll(strings.TrimSpace(ts), ",", ".")
	hms := strings.Split(ts, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("malformed timestamp %q", ts)
	}

	hours, err := strconv.Atoi(hms[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hours in %q: %w", ts, err)
	}
	minutes, err := strconv.Atoi(hms[1])
	if err != nil {
		return 0, fmt.Errorf("malformed minutes in %q: %w", ts, err)
	}
	seconds, err := strconv.ParseFloat(hms[2], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed seconds in %q: %w", ts, err)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second)), nil
}
