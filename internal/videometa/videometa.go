// Package videometa looks up titles and thumbnails for the video gallery
// with yt-dlp, so the content file can name a video by URL alone.
package videometa

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/content"
	"hypnosis-landing/internal/ui"
)

// DefaultTimeout bounds a single yt-dlp lookup
const DefaultTimeout = 30 * time.Second

// ErrNotAVideo is returned for links that do not name a single video
var ErrNotAVideo = errors.New("not a single-video link")

// Metadata is what a lookup returns for one video
type Metadata struct {
	Title     string
	Thumbnail string
}

// Resolver looks up the metadata of one video URL
type Resolver interface {
	Resolve(ctx context.Context, url string) (Metadata, error)
}

// Ytdlp resolves metadata by running yt-dlp in simulate mode
type Ytdlp struct {
	Timeout time.Duration
}

// Resolve implements Resolver
func (y Ytdlp) Resolve(ctx context.Context, url string) (Metadata, error) {
	timeout := y.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := ytdlp.New().
		GetTitle().
		GetThumbnail().
		NoPlaylist().
		Run(ctx, url)
	if err != nil {
		return Metadata{}, fmt.Errorf("yt-dlp %s: %w", url, err)
	}
	return parseOutput(result.Stdout)
}

// parseOutput reads the title line followed by the thumbnail line
func parseOutput(stdout string) (Metadata, error) {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return Metadata{}, errors.New("yt-dlp returned no title")
	}
	md := Metadata{Title: strings.TrimSpace(lines[0])}
	if len(lines) > 1 {
		md.Thumbnail = strings.TrimSpace(lines[1])
	}
	return md, nil
}

// Result reports what happened to one video
type Result struct {
	ID      string
	Updated bool
	Err     error
}

// Enrich returns a copy of videos with missing titles and thumbnails filled
// in. Fields already set are kept unless overwrite is true. Links that are
// not single videos, such as channel pages, are skipped.
func Enrich(ctx context.Context, r Resolver, videos []content.VideoReference, overwrite bool) ([]content.VideoReference, []Result) {
	out := make([]content.VideoReference, len(videos))
	copy(out, videos)
	results := make([]Result, 0, len(videos))

	for i := range out {
		v := &out[i]
		log := logrus.WithFields(logrus.Fields{"video": v.ID, "url": v.URL})

		if !overwrite && v.Title != "" && v.Thumbnail != "" {
			results = append(results, Result{ID: v.ID})
			continue
		}
		if ui.YouTubeID(v.URL) == "" {
			log.Debug("Skipping link that is not a single video")
			results = append(results, Result{ID: v.ID, Err: ErrNotAVideo})
			continue
		}

		md, err := r.Resolve(ctx, v.URL)
		if err != nil {
			log.WithError(err).Warn("Video lookup failed")
			results = append(results, Result{ID: v.ID, Err: err})
			continue
		}

		updated := false
		if md.Title != "" && (overwrite || v.Title == "") {
			v.Title = md.Title
			updated = true
		}
		if md.Thumbnail != "" && (overwrite || v.Thumbnail == "") {
			v.Thumbnail = md.Thumbnail
			updated = true
		}
		log.WithField("updated", updated).Info("Video resolved")
		results = append(results, Result{ID: v.ID, Updated: updated})
	}
	return out, results
}
