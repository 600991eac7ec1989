package theme

import (
	"testing"

	"tdtint/internal/colour"
)

func vibrantPalette() *colour.Palette {
	return colour.NewPalette([]colour.ExtractedColor{
		colour.NewExtractedColor(colour.RGB{R: 220, G: 60, B: 40}),
		colour.NewExtractedColor(colour.RGB{R: 40, G: 120, B: 200}),
	})
}

func grayPalette() *colour.Palette {
	return colour.NewPalette([]colour.ExtractedColor{
		colour.NewExtractedColor(colour.RGB{R: 128, G: 128, B: 128}),
		colour.NewExtractedColor(colour.RGB{R: 200, G: 200, B: 200}),
	})
}

func TestMapSemanticColorsFromPalette(t *testing.T) {
	roles := MapSemanticColors(vibrantPalette(), ModeLight)

	if roles.Primary != "dc3c28" {
		t.Errorf("Primary = %q, want the most vibrant palette colour", roles.Primary)
	}
	if roles.Accent != "2878c8" {
		t.Errorf("Accent = %q, want the second palette colour", roles.Accent)
	}

	// Variants must stay valid tokens and actually differ from the base.
	for name, v := range map[string]string{
		"PrimaryLight": roles.PrimaryLight,
		"PrimaryDark":  roles.PrimaryDark,
		"AccentLight":  roles.AccentLight,
	} {
		if !colour.IsHexToken(v) {
			t.Errorf("%s = %q is not a hex token", name, v)
		}
	}
	if roles.PrimaryLight == roles.Primary {
		t.Error("PrimaryLight equals Primary")
	}
	if roles.PrimaryDark == roles.Primary {
		t.Error("PrimaryDark equals Primary")
	}
}

func TestMapSemanticColorsFallsBackOnGray(t *testing.T) {
	roles := MapSemanticColors(grayPalette(), ModeLight)

	if roles.Primary != "419fd9" {
		t.Errorf("gray palette Primary = %q, want light default", roles.Primary)
	}
	if roles.Accent != "2481cc" {
		t.Errorf("gray palette Accent = %q, want light default", roles.Accent)
	}
}

func TestMapSemanticColorsFallsBackOnEmpty(t *testing.T) {
	tests := []struct {
		name    string
		palette *colour.Palette
	}{
		{"nil palette", nil},
		{"empty palette", colour.NewPalette(nil)},
		{"single colour palette", colour.NewPalette([]colour.ExtractedColor{
			colour.NewExtractedColor(colour.RGB{R: 220, G: 60, B: 40}),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := MapSemanticColors(tt.palette, ModeDark)
			if roles.Primary == "" || roles.Accent == "" {
				t.Error("roles must always be populated")
			}
			// A short palette cannot supply an accent, so the dark default
			// steps in.
			if roles.Accent != "5fa6e4" {
				t.Errorf("Accent = %q, want dark default 5fa6e4", roles.Accent)
			}
		})
	}
}

func TestMapSemanticColorsStructuralFixed(t *testing.T) {
	// Backgrounds and text never come from the image.
	light := MapSemanticColors(vibrantPalette(), ModeLight)
	if light.Background != "ffffff" || light.Text != "000000" {
		t.Errorf("light structural colours = %q/%q, want ffffff/000000", light.Background, light.Text)
	}

	dark := MapSemanticColors(vibrantPalette(), ModeDark)
	if dark.Background != "17212b" || dark.Text != "f5f5f5" {
		t.Errorf("dark structural colours = %q/%q, want 17212b/f5f5f5", dark.Background, dark.Text)
	}
}

func TestMapSemanticColorsPure(t *testing.T) {
	a := MapSemanticColors(vibrantPalette(), ModeLight)
	b := MapSemanticColors(vibrantPalette(), ModeLight)
	if a != b {
		t.Error("identical inputs produced different roles")
	}
}
