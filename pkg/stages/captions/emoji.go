package captions

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// emojiAssets maps the literal emoji the editor offers to bundled image
// files, resolved against the configured asset base URL.
var emojiAssets = map[string]string{
	"❤️": "red-heart.png",
	"✨":  "sparkles.png",
	"🎶":  "musical-notes.png",
	"🌸":  "cherry-blossom.png",
	"🔥":  "fire.png",
	"😊":  "smiling-face.png",
	"⭐":  "star.png",
	"💙":  "blue-heart.png",
	"✌️": "victory-hand.png",
	"☀️": "sun.png",
	"🌙":  "crescent-moon.png",
	"☕":  "hot-beverage.png",
}

// emojiKeys holds the map keys longest first, so multi-codepoint emoji
// (heart + variation selector) are matched before their prefixes.
var emojiKeys = func() []string {
	keys := make([]string, 0, len(emojiAssets))
	for k := range emojiAssets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

var markerRe = regexp.MustCompile(`\[\[EMOJI:([^\]]+)\]\]`)

// twemojiCDN serves vector emoji by unicode codepoint.
const twemojiCDN = "https://cdnjs.cloudflare.com/ajax/libs/twemoji/14.0.2/svg"

// SegmentKind tags a run segment as text or an inline emoji image.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentEmoji
)

// Segment is one piece of a mixed text/emoji run.
type Segment struct {
	Kind SegmentKind
	Text string // literal text, or the emoji characters for fallbacks
	URL  string // image source for emoji segments; empty when unresolved
}

// HasEmojiRun reports whether the string needs mixed-run layout: either an
// explicit [[EMOJI:url]] marker or a literal emoji from the fixed map.
func HasEmojiRun(text string) bool {
	if markerRe.MatchString(text) {
		return true
	}
	for _, key := range emojiKeys {
		if strings.Contains(text, key) {
			return true
		}
	}
	return false
}

// SplitRun splits a string into ordered text/emoji segments. Marker tokens
// take precedence: when present, literal emoji detection is skipped entirely
// so editors working with image markers stay authoritative.
func SplitRun(text, assetBase string) []Segment {
	if markerRe.MatchString(text) {
		return splitMarkers(text)
	}
	return splitLiterals(text, assetBase)
}

func splitMarkers(text string) []Segment {
	var segs []Segment
	last := 0
	for _, loc := range markerRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Kind: SegmentText, Text: text[last:loc[0]]})
		}
		segs = append(segs, Segment{Kind: SegmentEmoji, URL: text[loc[2]:loc[3]]})
		last = loc[1]
	}
	if last < len(text) {
		segs = append(segs, Segment{Kind: SegmentText, Text: text[last:]})
	}
	return segs
}

func splitLiterals(text, assetBase string) []Segment {
	var segs []Segment
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			segs = append(segs, classifyText(buf.String()))
			buf.Reset()
		}
	}

	for i := 0; i < len(text); {
		matched := false
		for _, key := range emojiKeys {
			if strings.HasPrefix(text[i:], key) {
				flush()
				segs = append(segs, Segment{
					Kind: SegmentEmoji,
					Text: key,
					URL:  assetURL(assetBase, emojiAssets[key]),
				})
				i += len(key)
				matched = true
				break
			}
		}
		if !matched {
			buf.WriteByte(text[i])
			i++
		}
	}
	flush()
	return segs
}

// classifyText turns a pure-emoji text part into an emoji segment backed by a
// Twemoji image; everything else stays literal text.
func classifyText(part string) Segment {
	if url := twemojiURL(part); url != "" {
		return Segment{Kind: SegmentEmoji, Text: part, URL: url}
	}
	return Segment{Kind: SegmentText, Text: part}
}

// twemojiURL resolves a vector emoji image by codepoint, or "" when the part
// is not a standalone emoji. Variation selectors are dropped from the code,
// matching Twemoji's file naming.
func twemojiURL(part string) string {
	runes := []rune(strings.TrimSpace(part))
	if len(runes) == 0 || len(runes) > 4 {
		return ""
	}
	var codes []string
	for _, r := range runes {
		if r == 0xFE0F {
			continue
		}
		if !isEmojiRune(r) {
			return ""
		}
		codes = append(codes, fmt.Sprintf("%x", r))
	}
	if len(codes) == 0 {
		return ""
	}
	return fmt.Sprintf("%s/%s.svg", twemojiCDN, strings.Join(codes, "-"))
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // pictographs, symbols, flags
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // stars, arrows
		return true
	case r == 0x203C || r == 0x2049 || r == 0x2122 || r == 0x2139:
		return true
	default:
		return false
	}
}

func assetURL(base, file string) string {
	return strings.TrimRight(base, "/") + "/" + file
}
