package scene

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const minimalSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10000 15000">
  <rect class="slot s" x="100" y="100" width="3000" height="4000"/>
  <rect class="slot_text" x="100" y="12000" width="3000" height="2000"/>
  <image xlink:href="https://example.com/a.png" x="0" y="0" width="10" height="10"/>
</svg>`

func TestLoad_InsertsDefs(t *testing.T) {
	sc, err := Load([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defs := sc.Root().SelectElement("defs")
	if defs == nil {
		t.Fatal("expected defs to be created")
	}
	if sc.Root().ChildElements()[0] != defs {
		t.Error("expected defs to be the first child")
	}
	// Defs must not be duplicated on repeated access.
	if sc.Defs() != defs {
		t.Error("expected Defs to return the existing container")
	}
}

func TestLoad_RejectsMalformedMarkup(t *testing.T) {
	if _, err := Load([]byte("<svg><rect</svg>")); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	if _, err := Load([]byte("<g></g>")); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse for non-svg root, got %v", err)
	}
}

func TestViewBox(t *testing.T) {
	sc, err := Load([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, h := sc.ViewBox()
	if w != 10000 || h != 15000 {
		t.Errorf("unexpected viewBox %fx%f", w, h)
	}
}

func TestRectsWithClass_ExactTokenMatch(t *testing.T) {
	sc, err := Load([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "slot_text" must not match the "slot" token and vice versa.
	if got := len(sc.RectsWithClass("slot")); got != 1 {
		t.Errorf("expected 1 slot rect, got %d", got)
	}
	if got := len(sc.RectsWithClass("slot_text")); got != 1 {
		t.Errorf("expected 1 slot_text rect, got %d", got)
	}
}

func TestRemoveByAttr(t *testing.T) {
	sc, err := Load([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := sc.Root().CreateElement("image")
	img.CreateAttr("data-slot", "0")

	sc.RemoveByAttr("data-slot")

	for _, el := range sc.Images() {
		if el.SelectAttr("data-slot") != nil {
			t.Error("expected injected image to be removed")
		}
	}
	// The template's own image is untouched.
	if len(sc.Images()) != 1 {
		t.Errorf("expected 1 image, got %d", len(sc.Images()))
	}
}

func TestImageHref(t *testing.T) {
	sc, err := Load([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := sc.Images()[0]
	if href := ImageHref(img); href != "https://example.com/a.png" {
		t.Errorf("unexpected href %q", href)
	}

	SetImageHref(img, "data:image/png;base64,AAAA")
	if href := ImageHref(img); !strings.HasPrefix(href, "data:") {
		t.Errorf("expected data URL, got %q", href)
	}
}

func TestSerialize_RoundTrips(t *testing.T) {
	sc, err := Load([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := sc.Serialize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("slot_text")) {
		t.Error("expected serialized markup to contain template content")
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL("image/png", []byte{0x89, 0x50})
	if url != "data:image/png;base64,iVA=" {
		t.Errorf("unexpected data URL %q", url)
	}
}

func TestFtoa(t *testing.T) {
	if got := Ftoa(1500); got != "1500" {
		t.Errorf("expected 1500, got %q", got)
	}
	if got := Ftoa(496.195); got != "496.195" {
		t.Errorf("expected 496.195, got %q", got)
	}
}
