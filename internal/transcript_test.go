package internal

import (
	"testing"
	"time"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:03,500
We're no strangers

2
00:00:03,500 --> 00:00:06,000
to love
you know the rules

3
00:01:02,250 --> 00:01:04,000 align:start position:0%
and so do I
`

func TestParseSRT(t *testing.T) {
	segs := ParseSRT(sampleSRT)

	want := []TranscriptSegment{
		{Start: time.Second, End: 3500 * time.Millisecond, Text: "We're no strangers"},
		{Start: 3500 * time.Millisecond, End: 6 * time.Second, Text: "to love you know the rules"},
		{Start: time.Minute + 2250*time.Millisecond, End: time.Minute + 4*time.Second, Text: "and so do I"},
	}

	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d: %#v", len(segs), len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %#v; want %#v", i, segs[i], want[i])
		}
	}
}

func TestParseSRT_CRLFAndJunk(t *testing.T) {
	content := "WEBVTT junk\r\n\r\n1\r\n00:00:00,000 --> 00:00:01,000\r\nhello\r\n\r\n2\r\n00:00:01,000 --> 00:00:02,000\r\n\r\n"
	segs := ParseSRT(content)
	if len(segs) != 1 || segs[0].Text != "hello" {
		t.Fatalf("got %#v; want a single hello segment", segs)
	}
}

const rollingSRT = `1
00:00:00,000 --> 00:00:02,000
so today we

2
00:00:02,000 --> 00:00:02,010
so today we
talk about

3
00:00:02,010 --> 00:00:04,000
talk about

4
00:00:04,000 --> 00:00:06,000
talk about
prime numbers
`

func TestParseAutoCaptions(t *testing.T) {
	segs := ParseAutoCaptions(rollingSRT)

	want := []TranscriptSegment{
		{Start: 0, End: 2010 * time.Millisecond, Text: "so today we"},
		{Start: 2 * time.Second, End: 6 * time.Second, Text: "talk about"},
		{Start: 4 * time.Second, End: 6 * time.Second, Text: "prime numbers"},
	}
	if len(segs) != len(want) {
		t.Fatalf("got %#v; want %#v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %#v; want %#v", i, segs[i], want[i])
		}
	}
	if got := JoinSegments(segs); got != "so today we talk about prime numbers" {
		t.Errorf("joined = %q", got)
	}
}

func TestParseAutoCaptions_RollingLines(t *testing.T) {
	content := "1\n00:00:00,000 --> 00:00:01,000\nA\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nA\nB\n\n" +
		"3\n00:00:02,000 --> 00:00:03,000\nB\n\n" +
		"4\n00:00:03,000 --> 00:00:04,000\nB\nC\n"

	if got := JoinSegments(ParseAutoCaptions(content)); got != "A B C" {
		t.Errorf("joined = %q; want %q", got, "A B C")
	}
}

func TestParseSRT_KeepsRepeatedManualLines(t *testing.T) {
	content := "1\n00:00:00,000 --> 00:00:01,000\nNo.\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nNo.\n\n" +
		"3\n00:00:02,000 --> 00:00:03,000\nNo. Absolutely not.\n"

	segs := ParseSRT(content)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3: %#v", len(segs), segs)
	}
	if got := JoinSegments(segs); got != "No. No. No. Absolutely not." {
		t.Errorf("joined = %q", got)
	}
}

func TestJoinSegments(t *testing.T) {
	segs := []TranscriptSegment{
		{Text: "hello"},
		{Text: "  "},
		{Text: " world "},
		{Text: "again"},
	}
	if got := JoinSegments(segs); got != "hello world again" {
		t.Errorf("JoinSegments = %q; want %q", got, "hello world again")
	}
	if got := JoinSegments(nil); got != "" {
		t.Errorf("JoinSegments(nil) = %q; want empty", got)
	}
}
