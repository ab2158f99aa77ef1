package render

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/solarlune/slideview"
)

func TestHUDLines(t *testing.T) {

	session := slideview.NewSession(slideview.DefaultConfig())

	lines := NewHUD().Lines(session)

	if len(lines) != len(session.Presets()) {
		t.Fatalf("got %d lines for %d presets", len(lines), len(session.Presets()))
	}

	if !strings.HasPrefix(lines[0], "  1: ") {
		t.Errorf("first line = %q", lines[0])
	}

}

func TestHUDCaptionFades(t *testing.T) {

	hud := NewHUD()
	hud.ShowCaption("First Drop", 1)

	hud.Update(0.1)
	if hud.CaptionAlpha() != 1 {
		t.Errorf("alpha early in the fade = %v, want 1", hud.CaptionAlpha())
	}

	hud.Update(0.5)
	if hud.CaptionAlpha() != 1 {
		t.Errorf("alpha at 60%% of the fade = %v, want 1", hud.CaptionAlpha())
	}

	hud.Update(0.3)
	if a := hud.CaptionAlpha(); a <= 0 || a >= 1 {
		t.Errorf("alpha at 90%% of the fade = %v, want it partly faded", a)
	}

	hud.Update(2)
	if hud.CaptionAlpha() != 0 {
		t.Errorf("alpha after the fade = %v, want 0", hud.CaptionAlpha())
	}

}

func TestEncodeWebP(t *testing.T) {

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.RGBA{255, 128, 0, 255})
	}

	buf := &bytes.Buffer{}
	if err := EncodeWebP(buf, img); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Fatalf("output isn't a WebP file: % x", data[:min(len(data), 12)])
	}

}

func TestScreenshotName(t *testing.T) {

	now := time.Date(2024, 7, 4, 15, 9, 26, 0, time.UTC)

	if got, want := ScreenshotName("shots", now), filepath.Join("shots", "screenshot_20240704_150926.webp"); got != want {
		t.Errorf("ScreenshotName() = %q, want %q", got, want)
	}

}
