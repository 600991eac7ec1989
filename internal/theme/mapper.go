package theme

import (
	"tdtint/internal/colour"
)

// SemanticColors is the fixed record of colour roles derived from an
// extracted palette. It is computed once per extraction as a pure function
// of palette and mode; recomputation replaces it wholesale.
type SemanticColors struct {
	Primary      string
	PrimaryLight string
	PrimaryDark  string
	Accent       string
	AccentLight  string

	// Structural colours are fixed per mode, never image-derived, so
	// legibility does not depend on image content.
	Background          string
	BackgroundSecondary string
	BackgroundTertiary  string
	Text                string
	TextSecondary       string
	TextMuted           string
	TextInverse         string
	Online              string
	Offline             string
}

// minUsableVibrancy is the vibrancy below which an extracted colour is too
// close to black, white or gray to serve as a primary or accent.
const minUsableVibrancy = 0.1

// Default accents used when the palette cannot supply usable colours.
var (
	defaultPrimary = map[Mode]string{ModeLight: "419fd9", ModeDark: "6ab3f3"}
	defaultAccent  = map[Mode]string{ModeLight: "2481cc", ModeDark: "5fa6e4"}
)

// structuralColors is the fixed light/dark palette for backgrounds, text
// tiers and presence colours.
var structuralColors = map[Mode]SemanticColors{
	ModeLight: {
		Background:          "ffffff",
		BackgroundSecondary: "f1f1f1",
		BackgroundTertiary:  "e7ebf0",
		Text:                "000000",
		TextSecondary:       "999999",
		TextMuted:           "a8a8a8",
		TextInverse:         "ffffff",
		Online:              "0f9d58",
		Offline:             "999999",
	},
	ModeDark: {
		Background:          "17212b",
		BackgroundSecondary: "232e3c",
		BackgroundTertiary:  "0e1621",
		Text:                "f5f5f5",
		TextSecondary:       "708499",
		TextMuted:           "586c7e",
		TextInverse:         "17212b",
		Online:              "4fae4e",
		Offline:             "6b7f94",
	},
}

// MapSemanticColors derives semantic colour roles from a ranked palette.
// Primary is the highest-vibrancy colour and accent the second; both fall
// back to fixed defaults when the palette is empty or too washed out.
// Background and text tiers come from the fixed per-mode palette only.
// Pure function: identical inputs always produce identical roles.
func MapSemanticColors(palette *colour.Palette, mode Mode) SemanticColors {
	roles := structuralColors[mode]

	roles.Primary = pickColor(palette, 0, defaultPrimary[mode])
	roles.Accent = pickColor(palette, 1, defaultAccent[mode])

	// Variant magnitude is mode-dependent: dark themes need a stronger
	// lighten step for the light variant to stay visible.
	lightStep, darkStep := 0.15, 0.15
	if mode == ModeDark {
		lightStep, darkStep = 0.20, 0.10
	}

	roles.PrimaryLight = shiftHex(roles.Primary, lightStep)
	roles.PrimaryDark = shiftHex(roles.Primary, -darkStep)
	roles.AccentLight = shiftHex(roles.Accent, lightStep)

	return roles
}

// pickColor returns the palette colour at index when it is vibrant enough
// to carry an accent role, and the fallback otherwise.
func pickColor(palette *colour.Palette, index int, fallback string) string {
	if palette == nil {
		return fallback
	}
	c, err := palette.Get(index)
	if err != nil {
		return fallback
	}
	if c.Vibrancy < minUsableVibrancy {
		return fallback
	}
	return c.Hex
}

// shiftHex lightens (positive) or darkens (negative) a hex colour by the
// given lightness amount, returning a bare 6-digit token.
func shiftHex(hex string, amount float64) string {
	rgb, err := colour.HexToRGB(hex)
	if err != nil {
		return hex
	}
	if amount >= 0 {
		return colour.Lighten(rgb, amount).Hex()
	}
	return colour.Darken(rgb, -amount).Hex()
}
