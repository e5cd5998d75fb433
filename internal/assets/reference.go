// Package assets talks to the remote image host and parses the URLs it hands out.
package assets

import (
	"net/url"
	"regexp"
	"strings"
)

const uploadMarker = "/upload/"

var versionPrefix = regexp.MustCompile(`^v\d+/`)

// ResolvePublicID derives the host-side identifier from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/avatars/abc.jpg, which
// yields "avatars/abc". It reports false when the URL has no upload segment.
func ResolvePublicID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		rawURL = parsed.Path
	}

	idx := strings.Index(rawURL, uploadMarker)
	if idx < 0 {
		return "", false
	}
	rest := rawURL[idx+len(uploadMarker):]
	rest = versionPrefix.ReplaceAllString(rest, "")

	if dot := strings.LastIndex(rest, "."); dot > strings.LastIndex(rest, "/") {
		rest = rest[:dot]
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", false
	}
	return rest, true
}
