package captions

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// SpotifyRef identifies a Spotify resource extracted from a share link.
type SpotifyRef struct {
	Type string // track | album | playlist | artist | show | episode
	ID   string
}

// Share links sometimes carry a locale segment, e.g. /intl-pt/track/...
var intlPrefixRe = regexp.MustCompile(`(?i)^/intl-[a-z-]+`)

// ParseSpotifyURL recognizes open.spotify.com share links. Anything else,
// including malformed URLs and other hostnames, reports false and is rendered
// as plain text.
func ParseSpotifyURL(text string) (SpotifyRef, bool) {
	u, err := url.Parse(strings.TrimSpace(text))
	if err != nil || u.Host == "" {
		return SpotifyRef{}, false
	}
	if !strings.HasSuffix(u.Hostname(), "open.spotify.com") {
		return SpotifyRef{}, false
	}

	path := intlPrefixRe.ReplaceAllString(u.Path, "")
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return SpotifyRef{}, false
	}
	return SpotifyRef{Type: parts[0], ID: parts[1]}, true
}

// scannableWidth is the pixel width requested from the scannables service.
const scannableWidth = 750

// ScannableURL builds the scannables.scdn.co request for a parsed reference.
// The foreground renders black unless explicitly "white"; the background keeps
// whatever hex the caller configured, hash stripped.
func ScannableURL(ref SpotifyRef, bg, fg string) string {
	cleanBg := strings.ReplaceAll(bg, "#", "")
	color := "black"
	if strings.ToLower(fg) == "white" {
		color = "white"
	}
	return fmt.Sprintf("https://scannables.scdn.co/uri/plain/jpeg/%s/%s/%d/spotify:%s:%s",
		cleanBg, color, scannableWidth, ref.Type, ref.ID)
}
