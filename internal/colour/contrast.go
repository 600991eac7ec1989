// Package colour provides colour extraction and analysis functionality.
package colour

import (
	"fmt"
	"math"
)

// Level is a WCAG conformance level.
type Level string

const (
	// LevelAA is the WCAG AA conformance level.
	LevelAA Level = "AA"
	// LevelAAA is the WCAG AAA conformance level.
	LevelAAA Level = "AAA"
)

// TextSize is the text size class used when selecting a contrast target.
type TextSize string

const (
	// TextNormal is regular body text.
	TextNormal TextSize = "normal"
	// TextLarge is large-scale text (18pt+, or 14pt+ bold).
	TextLarge TextSize = "large"
)

// TargetRatio returns the WCAG contrast target for a conformance level and
// text size. Unknown combinations fall back to AA normal (4.5).
func TargetRatio(level Level, size TextSize) float64 {
	switch {
	case level == LevelAA && size == TextLarge:
		return 3.0
	case level == LevelAAA && size == TextNormal:
		return 7.0
	case level == LevelAAA && size == TextLarge:
		return 4.5
	default:
		return 4.5
	}
}

// AdjustConfig configures contrast repair.
type AdjustConfig struct {
	// Target is the contrast ratio to reach. Zero means the default
	// AA-normal target of 4.5.
	Target float64

	// MaxIterations bounds the binary search. Zero means 20.
	MaxIterations int

	// Tolerance is how close to Target a candidate must be for the search
	// to stop early. Zero means 0.01.
	Tolerance float64

	// ForceLighten overrides the direction heuristic and always lightens
	// the foreground.
	ForceLighten bool
}

// DefaultAdjustConfig returns the default contrast repair configuration.
func DefaultAdjustConfig() AdjustConfig {
	return AdjustConfig{
		Target:        TargetRatio(LevelAA, TextNormal),
		MaxIterations: 20,
		Tolerance:     0.01,
	}
}

func (c AdjustConfig) withDefaults() AdjustConfig {
	if c.Target <= 0 {
		c.Target = TargetRatio(LevelAA, TextNormal)
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 20
	}
	if c.Tolerance <= 0 {
		c.Tolerance = 0.01
	}
	return c
}

// ContrastResult records one contrast check/repair of a foreground colour
// against a fixed background. All hex values are bare lowercase 6-digit.
type ContrastResult struct {
	OriginalFg    string  `json:"original_fg"`
	Background    string  `json:"background"`
	AdjustedFg    string  `json:"adjusted_fg"`
	OriginalRatio float64 `json:"original_ratio"`
	FinalRatio    float64 `json:"final_ratio"`
	TargetRatio   float64 `json:"target_ratio"`
	WasAdjusted   bool    `json:"was_adjusted"`
	MeetsTarget   bool    `json:"meets_target"`
	Iterations    int     `json:"iterations"`
}

// MeetsStandard reports whether a foreground/background pair satisfies the
// contrast target for the given conformance level and text size.
func MeetsStandard(fg, bg string, level Level, size TextSize) (bool, error) {
	ratio, err := ContrastRatioHex(fg, bg)
	if err != nil {
		return false, err
	}
	return ratio >= TargetRatio(level, size), nil
}

// EnsureContrast repairs a foreground colour to meet a contrast target
// against a fixed background. Hue and saturation are never altered: only
// the HSL lightness channel is searched, so the colour's identity is
// preserved while legibility improves.
//
// The search lightens when the background is dark (luminance < 0.5) or
// ForceLighten is set, and darkens otherwise. It binary-searches lightness
// between the current value and the relevant extreme, stopping early when a
// candidate lands within Tolerance of Target. When the target is
// unreachable the extreme endpoint is used if it beats the best candidate
// found; the result is then flagged via MeetsTarget=false rather than an
// error. Never fails for valid hex inputs.
func EnsureContrast(fg, bg string, cfg AdjustConfig) (ContrastResult, error) {
	cfg = cfg.withDefaults()

	fgHex, err := NormalizeHex(fg)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("invalid foreground: %w", err)
	}
	bgHex, err := NormalizeHex(bg)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("invalid background: %w", err)
	}

	fgRGB, _ := HexToRGB(fgHex)
	bgRGB, _ := HexToRGB(bgHex)

	originalRatio := ContrastRatio(fgRGB, bgRGB)
	result := ContrastResult{
		OriginalFg:    fgHex,
		Background:    bgHex,
		AdjustedFg:    fgHex,
		OriginalRatio: originalRatio,
		FinalRatio:    originalRatio,
		TargetRatio:   cfg.Target,
	}

	if originalRatio >= cfg.Target {
		result.MeetsTarget = true
		return result, nil
	}

	// Lightness is searched on a 0-100 scale; the interval is considered
	// exhausted once narrower than 0.1.
	h, s, l := RGBToHSL(fgRGB)
	current := l * 100

	lighten := cfg.ForceLighten || Luminance(bgRGB) < 0.5

	lo, hi := current, 100.0
	if !lighten {
		lo, hi = 0.0, current
	}

	ratioAt := func(lightness float64) (RGB, float64) {
		candidate := HSLToRGB(h, s, lightness/100)
		return candidate, ContrastRatio(candidate, bgRGB)
	}

	// bestMeeting is the candidate meeting the target closest to the
	// original lightness seen so far; bestAny is the highest ratio overall.
	bestMeeting := math.NaN()
	bestAny := current
	bestAnyRatio := originalRatio

	iterations := 0
	for iterations < cfg.MaxIterations && hi-lo > 0.1 {
		iterations++
		mid := (lo + hi) / 2
		_, ratio := ratioAt(mid)

		if ratio > bestAnyRatio {
			bestAny, bestAnyRatio = mid, ratio
		}

		if math.Abs(ratio-cfg.Target) <= cfg.Tolerance {
			bestMeeting = mid
			break
		}

		// Narrow towards the boundary, keeping the interval end closer to
		// the original colour when the candidate already meets the target.
		if ratio < cfg.Target {
			if lighten {
				lo = mid
			} else {
				hi = mid
			}
		} else {
			bestMeeting = mid
			if lighten {
				hi = mid
			} else {
				lo = mid
			}
		}
	}

	chosen := bestAny
	if !math.IsNaN(bestMeeting) {
		chosen = bestMeeting
	} else {
		// Target never met inside the interval: try the extreme endpoint.
		extreme := 100.0
		if !lighten {
			extreme = 0.0
		}
		if _, ratio := ratioAt(extreme); ratio > bestAnyRatio {
			chosen = extreme
		}
	}

	adjusted, finalRatio := ratioAt(chosen)
	if finalRatio < originalRatio {
		// Adjustment must never make things worse.
		adjusted, finalRatio = fgRGB, originalRatio
	}

	result.AdjustedFg = adjusted.Hex()
	result.FinalRatio = finalRatio
	result.WasAdjusted = result.AdjustedFg != fgHex
	result.MeetsTarget = finalRatio >= cfg.Target-cfg.Tolerance
	result.Iterations = iterations
	return result, nil
}
