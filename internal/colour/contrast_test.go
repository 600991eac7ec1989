package colour

import (
	"testing"
)

func TestTargetRatio(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		size  TextSize
		want  float64
	}{
		{"AA normal", LevelAA, TextNormal, 4.5},
		{"AA large", LevelAA, TextLarge, 3.0},
		{"AAA normal", LevelAAA, TextNormal, 7.0},
		{"AAA large", LevelAAA, TextLarge, 4.5},
		{"unknown falls back to AA normal", Level("AAAA"), TextNormal, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetRatio(tt.level, tt.size); got != tt.want {
				t.Errorf("TargetRatio(%s, %s) = %.1f, want %.1f", tt.level, tt.size, got, tt.want)
			}
		})
	}
}

func TestMeetsStandard(t *testing.T) {
	ok, err := MeetsStandard("000000", "ffffff", LevelAAA, TextNormal)
	if err != nil {
		t.Fatalf("MeetsStandard returned error: %v", err)
	}
	if !ok {
		t.Error("black on white should meet AAA")
	}

	ok, err = MeetsStandard("cccccc", "ffffff", LevelAA, TextNormal)
	if err != nil {
		t.Fatalf("MeetsStandard returned error: %v", err)
	}
	if ok {
		t.Error("light gray on white should not meet AA")
	}

	if _, err := MeetsStandard("bad", "ffffff", LevelAA, TextNormal); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestEnsureContrastAlreadyCompliant(t *testing.T) {
	result, err := EnsureContrast("000000", "ffffff", DefaultAdjustConfig())
	if err != nil {
		t.Fatalf("EnsureContrast returned error: %v", err)
	}

	if result.WasAdjusted {
		t.Error("compliant pair should not be adjusted")
	}
	if !result.MeetsTarget {
		t.Error("compliant pair should meet target")
	}
	if result.Iterations != 0 {
		t.Errorf("compliant pair took %d iterations, want 0", result.Iterations)
	}
	if result.AdjustedFg != "000000" {
		t.Errorf("AdjustedFg = %q, want original", result.AdjustedFg)
	}
}

func TestEnsureContrastDarkensOnLightBackground(t *testing.T) {
	result, err := EnsureContrast("cccccc", "ffffff", DefaultAdjustConfig())
	if err != nil {
		t.Fatalf("EnsureContrast returned error: %v", err)
	}

	if !result.WasAdjusted {
		t.Fatal("low-contrast pair should be adjusted")
	}
	if !result.MeetsTarget {
		t.Errorf("adjusted pair should meet target, final ratio %.2f", result.FinalRatio)
	}
	if result.FinalRatio < 4.49 {
		t.Errorf("final ratio %.2f below AA target", result.FinalRatio)
	}
	if result.FinalRatio < result.OriginalRatio {
		t.Error("adjustment made contrast worse")
	}

	// A light background means the foreground must get darker.
	origRGB, _ := HexToRGB(result.OriginalFg)
	adjRGB, _ := HexToRGB(result.AdjustedFg)
	_, _, origL := RGBToHSL(origRGB)
	_, _, adjL := RGBToHSL(adjRGB)
	if adjL >= origL {
		t.Errorf("lightness went %.3f -> %.3f, expected darker", origL, adjL)
	}
}

func TestEnsureContrastLightensOnDarkBackground(t *testing.T) {
	result, err := EnsureContrast("333333", "000000", DefaultAdjustConfig())
	if err != nil {
		t.Fatalf("EnsureContrast returned error: %v", err)
	}

	if !result.WasAdjusted {
		t.Fatal("low-contrast pair should be adjusted")
	}
	if !result.MeetsTarget {
		t.Errorf("adjusted pair should meet target, final ratio %.2f", result.FinalRatio)
	}

	origRGB, _ := HexToRGB(result.OriginalFg)
	adjRGB, _ := HexToRGB(result.AdjustedFg)
	_, _, origL := RGBToHSL(origRGB)
	_, _, adjL := RGBToHSL(adjRGB)
	if adjL <= origL {
		t.Errorf("lightness went %.3f -> %.3f, expected lighter", origL, adjL)
	}
}

func TestEnsureContrastPreservesHue(t *testing.T) {
	result, err := EnsureContrast("7a9fc4", "ffffff", DefaultAdjustConfig())
	if err != nil {
		t.Fatalf("EnsureContrast returned error: %v", err)
	}
	if !result.WasAdjusted {
		t.Fatal("expected an adjustment")
	}

	origRGB, _ := HexToRGB(result.OriginalFg)
	adjRGB, _ := HexToRGB(result.AdjustedFg)
	origH, _, _ := RGBToHSL(origRGB)
	adjH, _, _ := RGBToHSL(adjRGB)

	// Lightness-only search: hue survives within rounding error.
	if absDiff(origH, adjH) > 2 {
		t.Errorf("hue changed %.2f -> %.2f", origH, adjH)
	}
}

func TestEnsureContrastNeverWorse(t *testing.T) {
	// Forcing lighten on a white background makes the target unreachable;
	// the original colour must survive untouched.
	cfg := DefaultAdjustConfig()
	cfg.ForceLighten = true

	result, err := EnsureContrast("888888", "ffffff", cfg)
	if err != nil {
		t.Fatalf("EnsureContrast returned error: %v", err)
	}

	if result.FinalRatio < result.OriginalRatio {
		t.Errorf("final ratio %.2f worse than original %.2f", result.FinalRatio, result.OriginalRatio)
	}
	if result.WasAdjusted {
		t.Errorf("unreachable target adjusted fg to %q, want original kept", result.AdjustedFg)
	}
	if result.MeetsTarget {
		t.Error("unreachable target reported as met")
	}
}

func TestEnsureContrastInvalidInput(t *testing.T) {
	if _, err := EnsureContrast("zzz", "ffffff", DefaultAdjustConfig()); err == nil {
		t.Error("expected error for invalid foreground")
	}
	if _, err := EnsureContrast("000000", "zzz", DefaultAdjustConfig()); err == nil {
		t.Error("expected error for invalid background")
	}
}

func TestEnsureContrastZeroConfigUsesDefaults(t *testing.T) {
	result, err := EnsureContrast("cccccc", "ffffff", AdjustConfig{})
	if err != nil {
		t.Fatalf("EnsureContrast returned error: %v", err)
	}
	if result.TargetRatio != 4.5 {
		t.Errorf("zero config target = %.1f, want 4.5", result.TargetRatio)
	}
	if !result.MeetsTarget {
		t.Errorf("zero config should still repair, final ratio %.2f", result.FinalRatio)
	}
}
