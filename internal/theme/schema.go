// Package theme turns a ranked colour palette into a complete, validated
// Telegram Desktop colour theme.
package theme

import (
	"fmt"
	"maps"
)

// Mode represents whether a theme is dark or light.
type Mode int

const (
	// ModeLight is a light theme (dark text on light background).
	ModeLight Mode = iota
	// ModeDark is a dark theme (light text on dark background).
	ModeDark
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeDark:
		return "dark"
	case ModeLight:
		return "light"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name. Valid values are "light" and "dark".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("invalid mode: %q (valid: light, dark)", s)
	}
}

// Category groups theme properties by the part of the UI they style.
type Category string

const (
	CategoryWindow   Category = "window"
	CategoryDialogs  Category = "dialogs"
	CategoryHistory  Category = "history"
	CategoryMenu     Category = "menu"
	CategoryTitleBar Category = "titlebar"
	CategoryCalls    Category = "calls"
	CategoryIntro    Category = "intro"
	CategoryMedia    Category = "media"
	CategoryMisc     Category = "misc"
)

// Categories returns all property categories in catalog order.
func Categories() []Category {
	return []Category{
		CategoryWindow,
		CategoryTitleBar,
		CategoryMenu,
		CategoryDialogs,
		CategoryHistory,
		CategoryCalls,
		CategoryIntro,
		CategoryMedia,
		CategoryMisc,
	}
}

// Property is one entry in the closed theme property catalog.
type Property struct {
	Key         string   `json:"key"`
	Category    Category `json:"category"`
	Required    bool     `json:"required"`
	Description string   `json:"description"`
}

// PropertyMap maps property keys to colour tokens: 6 lowercase hex digits,
// or 8 with a trailing alpha byte, never prefixed with #.
type PropertyMap map[string]string

// Clone returns a copy of the property map.
func (m PropertyMap) Clone() PropertyMap {
	return maps.Clone(m)
}

var propertyIndex = buildPropertyIndex()

func buildPropertyIndex() map[string]Property {
	idx := make(map[string]Property, len(catalog))
	for _, prop := range catalog {
		idx[prop.Key] = prop
	}
	return idx
}

// Properties returns the full property catalog in schema order.
func Properties() []Property {
	return catalog
}

// PropertyByKey looks up a catalog entry by key.
func PropertyByKey(key string) (Property, bool) {
	prop, ok := propertyIndex[key]
	return prop, ok
}

// RequiredKeys returns the keys of all required properties in schema order.
func RequiredKeys() []string {
	keys := make([]string, 0, 16)
	for _, prop := range catalog {
		if prop.Required {
			keys = append(keys, prop.Key)
		}
	}
	return keys
}

// DefaultColors returns a copy of the baseline property map for a mode.
// The baseline covers every catalog key.
func DefaultColors(mode Mode) PropertyMap {
	if mode == ModeDark {
		return maps.Clone(PropertyMap(defaultDarkColors))
	}
	return maps.Clone(PropertyMap(defaultLightColors))
}
