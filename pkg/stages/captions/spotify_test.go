package captions

import (
	"testing"
)

func TestParseSpotifyURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType string
		wantID   string
		wantOK   bool
	}{
		{
			name:     "track link",
			input:    "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
			wantType: "track",
			wantID:   "4uLU6hMCjMI75M1A2tKUQC",
			wantOK:   true,
		},
		{
			name:     "locale prefix",
			input:    "https://open.spotify.com/intl-pt/track/4uLU6hMCjMI75M1A2tKUQC?si=abc",
			wantType: "track",
			wantID:   "4uLU6hMCjMI75M1A2tKUQC",
			wantOK:   true,
		},
		{
			name:     "playlist link",
			input:    "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M",
			wantType: "playlist",
			wantID:   "37i9dQZF1DXcBWIGoYBM5M",
			wantOK:   true,
		},
		{
			name:     "surrounding whitespace",
			input:    "  https://open.spotify.com/album/1ATL5GLyefJaxhQzSPVrLX  ",
			wantType: "album",
			wantID:   "1ATL5GLyefJaxhQzSPVrLX",
			wantOK:   true,
		},
		{
			name:   "wrong hostname",
			input:  "https://spotify.example.com/track/4uLU6hMCjMI75M1A2tKUQC",
			wantOK: false,
		},
		{
			name:   "missing id",
			input:  "https://open.spotify.com/track",
			wantOK: false,
		},
		{
			name:   "plain text",
			input:  "te amo",
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := ParseSpotifyURL(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if ref.Type != tt.wantType || ref.ID != tt.wantID {
				t.Errorf("expected %s:%s, got %s:%s", tt.wantType, tt.wantID, ref.Type, ref.ID)
			}
		})
	}
}

func TestScannableURL(t *testing.T) {
	ref := SpotifyRef{Type: "track", ID: "abc123"}

	got := ScannableURL(ref, "#ffffffff", "black")
	want := "https://scannables.scdn.co/uri/plain/jpeg/ffffffff/black/750/spotify:track:abc123"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestScannableURL_ForegroundDefaultsToBlack(t *testing.T) {
	ref := SpotifyRef{Type: "album", ID: "x"}

	if got := ScannableURL(ref, "000000", "blue"); got != "https://scannables.scdn.co/uri/plain/jpeg/000000/black/750/spotify:album:x" {
		t.Errorf("unexpected URL %s", got)
	}
	if got := ScannableURL(ref, "000000", "WHITE"); got != "https://scannables.scdn.co/uri/plain/jpeg/000000/white/750/spotify:album:x" {
		t.Errorf("unexpected URL %s", got)
	}
}
