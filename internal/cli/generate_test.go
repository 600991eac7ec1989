package cli

import (
	"strings"
	"testing"

	"tdtint/internal/colour"
)

func TestThemeNameFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain file", "wallpaper.jpg", "wallpaper"},
		{"nested path", "/home/user/Pictures/sunset.png", "sunset"},
		{"no extension", "/tmp/wallpaper", "wallpaper"},
		{"dotfile keeps its name", "/home/user/.hidden", ".hidden"},
		{"multiple dots", "photo.backup.jpeg", "photo.backup"},
		{"empty path falls back", "", "tdtint theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := themeNameFromPath(tt.path); got != tt.want {
				t.Errorf("themeNameFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatPalette(t *testing.T) {
	palette := colour.NewPalette([]colour.ExtractedColor{
		colour.NewExtractedColor(colour.RGB{R: 255}),
		colour.NewExtractedColor(colour.RGB{B: 255}),
	})

	hex, err := formatPalette(palette, "hex", false)
	if err != nil {
		t.Fatalf("hex format returned error: %v", err)
	}
	if hex != "#ff0000\n#0000ff\n" {
		t.Errorf("hex output = %q", hex)
	}

	rgb, err := formatPalette(palette, "rgb", false)
	if err != nil {
		t.Fatalf("rgb format returned error: %v", err)
	}
	if !strings.Contains(rgb, "rgb(255, 0, 0)") {
		t.Errorf("rgb output = %q", rgb)
	}

	jsonOut, err := formatPalette(palette, "json", false)
	if err != nil {
		t.Fatalf("json format returned error: %v", err)
	}
	if !strings.Contains(jsonOut, "\"count\": 2") {
		t.Errorf("json output missing count: %q", jsonOut)
	}

	if _, err := formatPalette(palette, "yaml", false); err == nil {
		t.Error("unsupported format should fail")
	}
}

func TestFormatHexWithPreview(t *testing.T) {
	palette := colour.NewPalette([]colour.ExtractedColor{
		colour.NewExtractedColor(colour.RGB{R: 255}),
	})

	out := formatHex(palette, true)
	if !strings.Contains(out, "\033[48;2;255;0;0m") {
		t.Errorf("preview output missing ANSI background sequence: %q", out)
	}
	if !strings.Contains(out, "#ff0000") {
		t.Errorf("preview output missing hex value: %q", out)
	}
}
