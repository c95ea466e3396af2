package ytdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://youtu.be/abc123"

func TestArgsMetadataOnlyModes(t *testing.T) {
	args := Args(testURL, Options{})
	assert.Equal(t, []string{"-o", outputTemplate, testURL}, args)
}

func TestArgsVideo(t *testing.T) {
	args := Args(testURL, Options{Video: true})
	assert.Contains(t, args, "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best")
	assert.NotContains(t, args, "--skip-download")
	assert.Equal(t, testURL, args[len(args)-1])
}

func TestArgsAudio(t *testing.T) {
	args := Args(testURL, Options{Audio: true})
	assert.Contains(t, args, "-x")
	assert.Contains(t, args, "mp3")
	assert.NotContains(t, args, "--write-subs")
}

func TestArgsSubtitleOnly(t *testing.T) {
	args := Args(testURL, Options{Subtitle: true})
	assert.Contains(t, args, "--write-subs")
	assert.Contains(t, args, "--write-auto-subs")
	assert.Contains(t, args, "--skip-download")
}

func TestArgsVideoWithSubtitles(t *testing.T) {
	args := Args(testURL, Options{Video: true, Subtitle: true})
	assert.Contains(t, args, "--write-subs")
	assert.NotContains(t, args, "--skip-download")
}

func TestParseMetadata(t *testing.T) {
	raw := []byte(`{
		"title": "A Video",
		"duration_string": "3:25",
		"resolution": "1920x1080",
		"view_count": 1000,
		"like_count": 42,
		"channel": "Chan",
		"uploader": "Someone",
		"upload_date": "20240102",
		"webpage_url": "https://example.com/watch"
	}`)
	m, err := parseMetadata(raw)
	require.NoError(t, err)
	assert.Equal(t, "A Video", m.Title)
	assert.Equal(t, int64(1000), m.ViewCount)

	summary := m.Summary()
	assert.Contains(t, summary, "A Video")
	assert.Contains(t, summary, "1920x1080")
	assert.Contains(t, summary, "20240102")
	// comment_count was absent and must not be rendered
	assert.NotContains(t, summary, "Comments")
}

func TestParseMetadataInvalid(t *testing.T) {
	_, err := parseMetadata([]byte("not json"))
	assert.Error(t, err)
}
