package captions

import (
	"testing"
)

func TestHasEmojiRun(t *testing.T) {
	if HasEmojiRun("te amo") {
		t.Error("plain text must not need run layout")
	}
	if !HasEmojiRun("te amo ❤️") {
		t.Error("literal emoji must need run layout")
	}
	if !HasEmojiRun("foo [[EMOJI:https://x/y.png]] bar") {
		t.Error("marker must need run layout")
	}
}

func TestSplitRun_Markers(t *testing.T) {
	segs := SplitRun("hi [[EMOJI:https://x/a.png]] there", "/assets/emoji")

	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].Kind != SegmentText || segs[0].Text != "hi " {
		t.Errorf("unexpected first segment %+v", segs[0])
	}
	if segs[1].Kind != SegmentEmoji || segs[1].URL != "https://x/a.png" {
		t.Errorf("unexpected emoji segment %+v", segs[1])
	}
	if segs[2].Kind != SegmentText || segs[2].Text != " there" {
		t.Errorf("unexpected last segment %+v", segs[2])
	}
}

func TestSplitRun_MarkersSuppressLiterals(t *testing.T) {
	// With a marker present, literal emoji stay as text: the editor's image
	// markers are authoritative.
	segs := SplitRun("⭐ [[EMOJI:https://x/a.png]]", "/assets/emoji")

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Kind != SegmentText || segs[0].Text != "⭐ " {
		t.Errorf("expected literal star to stay text, got %+v", segs[0])
	}
}

func TestSplitRun_Literals(t *testing.T) {
	segs := SplitRun("te amo ❤️ sempre", "/assets/emoji")

	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].Text != "te amo " {
		t.Errorf("unexpected leading text %q", segs[0].Text)
	}
	if segs[1].Kind != SegmentEmoji || segs[1].URL != "/assets/emoji/red-heart.png" {
		t.Errorf("unexpected emoji segment %+v", segs[1])
	}
	if segs[2].Text != " sempre" {
		t.Errorf("unexpected trailing text %q", segs[2].Text)
	}
}

func TestSplitRun_LongestMatchFirst(t *testing.T) {
	// "❤️" is heart + variation selector; the mapped key must win over any
	// shorter prefix interpretation.
	segs := SplitRun("❤️", "/assets/emoji")

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].URL != "/assets/emoji/red-heart.png" {
		t.Errorf("unexpected URL %q", segs[0].URL)
	}
}

func TestSplitRun_AdjacentEmoji(t *testing.T) {
	segs := SplitRun("⭐🔥", "https://cdn/emoji/")

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].URL != "https://cdn/emoji/star.png" || segs[1].URL != "https://cdn/emoji/fire.png" {
		t.Errorf("unexpected URLs %q, %q", segs[0].URL, segs[1].URL)
	}
}

func TestTwemojiURL(t *testing.T) {
	// Unmapped emoji resolve to the CDN by codepoint, with variation
	// selectors dropped.
	if got := twemojiURL("🦄"); got != "https://cdnjs.cloudflare.com/ajax/libs/twemoji/14.0.2/svg/1f984.svg" {
		t.Errorf("unexpected URL %q", got)
	}
	if got := twemojiURL("☂️"); got != "https://cdnjs.cloudflare.com/ajax/libs/twemoji/14.0.2/svg/2602.svg" {
		t.Errorf("unexpected URL %q", got)
	}
	if got := twemojiURL("abc"); got != "" {
		t.Errorf("expected no URL for plain text, got %q", got)
	}
	if got := twemojiURL(""); got != "" {
		t.Errorf("expected no URL for empty part, got %q", got)
	}
}

func TestClassifyText(t *testing.T) {
	seg := classifyText("🦄")
	if seg.Kind != SegmentEmoji || seg.URL == "" {
		t.Errorf("expected unmapped emoji to become a Twemoji segment, got %+v", seg)
	}

	seg = classifyText("sempre")
	if seg.Kind != SegmentText || seg.URL != "" {
		t.Errorf("expected text to stay literal, got %+v", seg)
	}
}
