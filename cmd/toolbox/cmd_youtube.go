package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/o0fung/toolbox/internal/ytdl"
)

var (
	ytVideo    bool
	ytAudio    bool
	ytSubtitle bool
)

// youtubeCmd wraps yt-dlp
var youtubeCmd = &cobra.Command{
	Use:   "youtube <url>",
	Short: "Download YouTube content with yt-dlp",
	Long: `Downloads YouTube content using yt-dlp.

Without flags, only the video metadata is fetched and shown. Downloads
are saved with the video title as the filename.`,
	Args: cobra.ExactArgs(1),
	RunE: runYoutube,
}

func init() {
	youtubeCmd.Flags().BoolVarP(&ytVideo, "video", "v", false, "download best video in mp4 (includes audio)")
	youtubeCmd.Flags().BoolVarP(&ytAudio, "audio", "a", false, "download best audio as mp3")
	youtubeCmd.Flags().BoolVarP(&ytSubtitle, "subtitle", "s", false, "download English subtitles (manual and automatic)")
}

func runYoutube(cmd *cobra.Command, args []string) error {
	url := args[0]
	out := cmd.OutOrStdout()

	if !ytVideo && !ytAudio && !ytSubtitle {
		meta, err := ytdl.FetchMetadata(cmd.Context(), url)
		if err != nil {
			return err
		}
		fmt.Fprint(out, meta.Summary())
		return nil
	}

	opts := ytdl.Options{Video: ytVideo, Audio: ytAudio, Subtitle: ytSubtitle}
	if err := ytdl.Download(cmd.Context(), url, opts, out, logger); err != nil {
		return err
	}

	status := func(ok bool) string {
		if ok {
			return "OK"
		}
		return "None"
	}
	fmt.Fprintln(out, ">> Downloaded Video    : ", status(ytVideo))
	fmt.Fprintln(out, ">> Downloaded Audio    : ", status(ytAudio))
	fmt.Fprintln(out, ">> Downloaded Subtitle : ", status(ytSubtitle))
	return nil
}
