package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"
)

// ErrNoSubtitles is returned when yt-dlp finishes without writing any subtitles
var ErrNoSubtitles = errors.New("no subtitles available for this video")

// YouTube fetches transcripts through yt-dlp
type YouTube struct {
	cacheDir    string
	log         *zap.SugaredLogger
	installOnce sync.Once
	installErr  error
}

// NewYouTube creates a transcript fetcher writing scratch files below cacheDir
func NewYouTube(cacheDir string, log *zap.SugaredLogger) *YouTube {
	return &YouTube{
		cacheDir: cacheDir,
		log:      log,
	}
}

// ensureInstalled downloads yt-dlp on first use if it isn't on the PATH
func (yt *YouTube) ensureInstalled(ctx context.Context) error {
	yt.installOnce.Do(func() {
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			yt.installErr = fmt.Errorf("installing yt-dlp: %w", err)
		}
	})
	return yt.installErr
}

// Fetch downloads the English subtitles of a video and returns them as segments.
// Manual subtitles are used as written; auto-generated captions are only
// requested when none exist. Subtitle files live in a per-call directory that
// is removed before returning.
func (yt *YouTube) Fetch(ctx context.Context, videoID string) ([]TranscriptSegment, error) {
	if err := yt.ensureInstalled(ctx); err != nil {
		return nil, err
	}

	if err := EnsureDirs(yt.cacheDir); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	workDir, err := os.MkdirTemp(yt.cacheDir, scratchPattern(videoID, os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("creating subtitle directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			yt.log.Warnw("removing subtitle directory", "dir", workDir, "error", err)
		}
	}()

	segments, err := yt.download(ctx, videoID, workDir, false)
	if errors.Is(err, ErrNoSubtitles) {
		yt.log.Debugw("no manual subtitles, trying auto-generated captions", "video_id", videoID)
		segments, err = yt.download(ctx, videoID, workDir, true)
	}
	return segments, err
}

// download runs yt-dlp for one kind of subtitles and parses the result
func (yt *YouTube) download(ctx context.Context, videoID, workDir string, auto bool) ([]TranscriptSegment, error) {
	yt.log.Debugw("downloading subtitles", "video_id", videoID, "auto", auto, "dir", workDir)

	dl := ytdlp.New().
		SubLangs("en.*").   // all English variants
		ConvertSubs("srt"). // normalize to SRT
		SkipDownload().
		NoPlaylist().
		Output(filepath.Join(workDir, "%(id)s"))
	if auto {
		dl = dl.WriteAutoSubs()
	} else {
		dl = dl.WriteSubs()
	}

	result, err := dl.Run(ctx, WatchURL(videoID))
	if err != nil {
		if result != nil {
			yt.log.Debugw("yt-dlp failed", "video_id", videoID, "stderr", result.Stderr)
			if msg := lastErrorLine(result.Stderr); msg != "" {
				return nil, fmt.Errorf("yt-dlp: %s", msg)
			}
		}
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	path, err := pickSubtitleFile(workDir)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading subtitle file: %w", err)
	}

	var segments []TranscriptSegment
	if auto {
		segments = ParseAutoCaptions(string(content))
	} else {
		segments = ParseSRT(string(content))
	}
	if len(segments) == 0 {
		return nil, ErrNoSubtitles
	}

	yt.log.Debugw("parsed subtitles", "video_id", videoID, "file", filepath.Base(path), "segments", len(segments))
	return segments, nil
}

// scratchPattern names per-call subtitle directories after the video and the owning process.
// Video IDs never contain dots.
func scratchPattern(videoID string, pid int) string {
	return fmt.Sprintf("%s.%d.", videoID, pid)
}

// ownedByProcess reports whether a scratch directory name was created by pid
func ownedByProcess(name string, pid int) bool {
	parts := strings.Split(name, ".")
	return len(parts) == 3 && parts[1] == strconv.Itoa(pid)
}

// pickSubtitleFile prefers manual "en" subtitles over other English variants
func pickSubtitleFile(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.srt"))
	if err != nil {
		return "", fmt.Errorf("searching subtitle files: %w", err)
	}
	if len(files) == 0 {
		return "", ErrNoSubtitles
	}

	for _, f := range files {
		if strings.HasSuffix(f, ".en.srt") {
			return f, nil
		}
	}
	return files[0], nil
}

// lastErrorLine returns the last "ERROR:" line yt-dlp printed, if any
func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); strings.HasPrefix(line, "ERROR:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
	}
	return ""
}
