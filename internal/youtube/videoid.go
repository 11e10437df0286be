// Package youtube extracts video identifiers from share links and fetches
// caption transcripts from the public timedtext endpoints.
package youtube

import (
	"net/url"
	"strings"
)

// VideoID extracts the video identifier from a YouTube link. Exactly two
// shapes are recognized: short links (youtu.be/<id>) where the identifier is
// the sole path segment, and watch pages (youtube.com/watch?v=<id>). Any
// other host or path yields ok=false.
func VideoID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}
	switch u.Hostname() {
	case "youtu.be":
		id := strings.TrimPrefix(u.EscapedPath(), "/")
		if id == "" || strings.Contains(id, "/") {
			return "", false
		}
		return id, true
	case "youtube.com", "www.youtube.com":
		if u.EscapedPath() != "/watch" {
			return "", false
		}
		id := u.Query().Get("v")
		if id == "" {
			return "", false
		}
		return id, true
	}
	return "", false
}
