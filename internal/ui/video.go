package ui

import (
	"net/url"
	"strings"
)

// EmbedURL turns a YouTube watch or short link into its embeddable player
// URL. Links that do not name a single video are returned unchanged.
func EmbedURL(raw string) string {
	id := YouTubeID(raw)
	if id == "" {
		return raw
	}
	return "https://www.youtube-nocookie.com/embed/" + id
}

// YouTubeID extracts the video id from a watch, short or embed link
func YouTubeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		if u.Path == "/watch" {
			return u.Query().Get("v")
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			return strings.Trim(rest, "/")
		}
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	}
	return ""
}
