// Package ytdl wraps the yt-dlp command line tool for downloading video,
// audio and subtitles, and for fetching metadata.
package ytdl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	"go.uber.org/zap"
)

// Binary is the subprocess invoked for all operations.
const Binary = "yt-dlp"

// Options select what to download. All false means metadata only.
type Options struct {
	Video    bool // best mp4 video with audio
	Audio    bool // best audio, converted to mp3
	Subtitle bool // English subtitles, manual and automatic
}

// outputTemplate names downloads after the video title.
const outputTemplate = "%(title)s.%(ext)s"

// Args builds the yt-dlp argument list for a download run.
func Args(url string, opts Options) []string {
	args := []string{"-o", outputTemplate}

	if opts.Subtitle {
		args = append(args,
			"--write-subs",
			"--write-auto-subs",
			"--sub-langs", "en",
		)
	}

	switch {
	case opts.Subtitle && !opts.Video && !opts.Audio:
		args = append(args, "--skip-download")
	case opts.Audio && !opts.Video:
		args = append(args,
			"-f", "bestaudio/best",
			"-x",
			"--audio-format", "mp3",
			"--audio-quality", "192K",
		)
	case opts.Video:
		args = append(args, "-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best")
	}

	return append(args, url)
}

// Download runs yt-dlp for url with the given options, streaming its
// output to out.
func Download(ctx context.Context, url string, opts Options, out io.Writer, logger *zap.Logger) error {
	if _, err := exec.LookPath(Binary); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", Binary, err)
	}

	args := Args(url, opts)
	logger.Debug("running yt-dlp", zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, Binary, args...)
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("yt-dlp: %w", err)
	}
	return nil
}

// Metadata is the subset of yt-dlp's JSON output shown to the user.
type Metadata struct {
	Title                string `json:"title"`
	DurationString       string `json:"duration_string"`
	Resolution           string `json:"resolution"`
	ViewCount            int64  `json:"view_count"`
	CommentCount         int64  `json:"comment_count"`
	LikeCount            int64  `json:"like_count"`
	Channel              string `json:"channel"`
	ChannelFollowerCount int64  `json:"channel_follower_count"`
	WebpageURL           string `json:"webpage_url"`
	Uploader             string `json:"uploader"`
	UploadDate           string `json:"upload_date"`
}

// FetchMetadata runs yt-dlp -J and parses the metadata without
// downloading anything.
func FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	if _, err := exec.LookPath(Binary); err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", Binary, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, Binary, "-J", "--no-warnings", url)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp -J: %w: %s", err, stderr.String())
	}
	return parseMetadata(stdout.Bytes())
}

func parseMetadata(raw []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return &m, nil
}

// Summary renders the metadata as the aligned key/value block printed
// after fetches and downloads.
func (m *Metadata) Summary() string {
	var b bytes.Buffer
	row := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, ">> %-20s: %s\n", key, value)
		}
	}
	num := func(key string, value int64) {
		if value != 0 {
			fmt.Fprintf(&b, ">> %-20s: %d\n", key, value)
		}
	}

	row("Title", m.Title)
	row("Duration", m.DurationString)
	row("Resolution", m.Resolution)
	num("Views", m.ViewCount)
	num("Comments", m.CommentCount)
	num("Likes", m.LikeCount)
	row("Channel", m.Channel)
	num("Followers", m.ChannelFollowerCount)
	row("Uploader", m.Uploader)
	row("Upload date", m.UploadDate)
	row("URL", m.WebpageURL)
	return b.String()
}
