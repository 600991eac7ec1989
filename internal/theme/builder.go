package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"tdtint/internal/colour"
)

// generatorTag identifies this tool in serialized theme headers. Kept free
// of version information so identical input produces identical bytes.
const generatorTag = "tdtint"

// GeneratedTheme is the final artifact of a pipeline run. Created once,
// never mutated after construction; regeneration produces a new instance.
type GeneratedTheme struct {
	Name       string
	Mode       Mode
	Properties PropertyMap
	Content    string
	Validation ValidationResult
	Contrast   []colour.ContrastResult
}

// BuildConfig configures theme expansion.
type BuildConfig struct {
	// Name is the theme name written into the serialized header.
	Name string

	// Mode selects the light or dark derivation branch.
	Mode Mode

	// Contrast configures the accessibility repair post-pass.
	Contrast colour.AdjustConfig
}

// DefaultBuildConfig returns the default build configuration.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Name:     "tdtint theme",
		Mode:     ModeLight,
		Contrast: colour.DefaultAdjustConfig(),
	}
}

// Builder expands semantic colour roles into the full property map.
// Stateless with respect to builds; safe for concurrent use.
type Builder struct {
	log hclog.Logger
}

// NewBuilder creates a Builder. A nil logger defaults to a null logger.
func NewBuilder(log hclog.Logger) *Builder {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Builder{log: log.Named("builder")}
}

// Build expands semantic roles into a complete theme. It starts from the
// mode's baseline property map, overwrites every key reachable from the
// roles via the derivation rules, repairs text contrast and serializes.
// Never fails for well-formed roles: every property has a baseline value.
func (b *Builder) Build(roles SemanticColors, cfg BuildConfig) *GeneratedTheme {
	props := DefaultColors(cfg.Mode)

	for _, d := range derivations {
		props[d.key] = d.state.apply(roles.get(d.role), cfg.Mode)
	}
	for _, br := range modeBranches {
		if cfg.Mode == ModeDark {
			props[br.key] = shiftHex(roles.get(br.darkRole), br.darkShift)
		} else {
			props[br.key] = shiftHex(roles.get(br.lightRole), br.lightShift)
		}
	}

	contrast := b.repairContrast(props, cfg.Contrast)

	theme := &GeneratedTheme{
		Name:       cfg.Name,
		Mode:       cfg.Mode,
		Properties: props,
		Content:    Serialize(cfg.Name, cfg.Mode, props),
		Contrast:   contrast,
	}

	validator := NewValidator(DefaultValidatorConfig())
	theme.Validation = validator.Validate(props)

	b.log.Debug("theme built",
		"mode", cfg.Mode.String(),
		"properties", len(props),
		"score", theme.Validation.Score)
	return theme
}

// contrastPairs is the fixed list of foreground/background property pairs
// checked by the accessibility post-pass. Only the foreground is ever
// rewritten.
var contrastPairs = [][2]string{
	{"windowFg", "windowBg"},
	{"windowFgActive", "windowBgActive"},
	{"historyTextInFg", "msgInBg"},
	{"historyTextOutFg", "msgOutBg"},
	{"dialogsNameFg", "dialogsBg"},
	{"dialogsTextFg", "dialogsBg"},
	{"dialogsNameFgActive", "dialogsBgActive"},
	{"activeButtonFg", "activeButtonBg"},
	{"titleFgActive", "titleBgActive"},
	{"boxTextFg", "boxBg"},
	{"contactsNameFg", "contactsBg"},
	{"introTitleFg", "introBg"},
	{"callNameFg", "callBg"},
	{"mediaviewCaptionFg", "mediaviewCaptionBg"},
}

// repairContrast applies the contrast optimizer to the fixed pair list,
// overwriting a foreground only when it was actually adjusted.
func (b *Builder) repairContrast(props PropertyMap, cfg colour.AdjustConfig) []colour.ContrastResult {
	results := make([]colour.ContrastResult, 0, len(contrastPairs))
	for _, pair := range contrastPairs {
		fgKey, bgKey := pair[0], pair[1]
		fg, ok := props[fgKey]
		if !ok {
			continue
		}
		bg, ok := props[bgKey]
		if !ok {
			continue
		}

		result, err := colour.EnsureContrast(fg, bg, cfg)
		if err != nil {
			// Malformed tokens are the validator's concern, not ours.
			b.log.Debug("contrast check skipped", "fg", fgKey, "bg", bgKey, "error", err)
			continue
		}
		if result.WasAdjusted {
			props[fgKey] = result.AdjustedFg
			b.log.Debug("contrast repaired",
				"key", fgKey,
				"from", result.OriginalFg,
				"to", result.AdjustedFg,
				"ratio", fmt.Sprintf("%.2f", result.FinalRatio))
		}
		results = append(results, result)
	}
	return results
}

// Serialize renders a property map in the line-oriented theme format:
// a three-line comment header followed by one "key: #value;" line per
// property, sorted alphabetically by key. Byte-identical across runs for
// identical input.
func Serialize(name string, mode Mode, props PropertyMap) string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s\n", name)
	fmt.Fprintf(&sb, "// Generated by %s\n", generatorTag)
	fmt.Fprintf(&sb, "// Mode: %s\n", mode.String())
	for _, key := range keys {
		fmt.Fprintf(&sb, "%s: #%s;\n", key, props[key])
	}
	return sb.String()
}

// roleRef names a SemanticColors field for use in derivation tables.
type roleRef int

const (
	rPrimary roleRef = iota
	rPrimaryLight
	rPrimaryDark
	rAccent
	rAccentLight
	rBackground
	rBackgroundSecondary
	rBackgroundTertiary
	rText
	rTextSecondary
	rTextMuted
	rTextInverse
	rOnline
	rOffline
)

func (s SemanticColors) get(ref roleRef) string {
	switch ref {
	case rPrimary:
		return s.Primary
	case rPrimaryLight:
		return s.PrimaryLight
	case rPrimaryDark:
		return s.PrimaryDark
	case rAccent:
		return s.Accent
	case rAccentLight:
		return s.AccentLight
	case rBackground:
		return s.Background
	case rBackgroundSecondary:
		return s.BackgroundSecondary
	case rBackgroundTertiary:
		return s.BackgroundTertiary
	case rText:
		return s.Text
	case rTextSecondary:
		return s.TextSecondary
	case rTextMuted:
		return s.TextMuted
	case rTextInverse:
		return s.TextInverse
	case rOnline:
		return s.Online
	default:
		return s.Offline
	}
}

// stateRule is a consistent per-state transform: every hovered property is
// derived the same way, every ripple the same way, and so on.
type stateRule int

const (
	asIs stateRule = iota
	hover        // lighten 8%
	ripple       // darken 8%
	muted        // fixed desaturated gray per mode
	alphaSelect  // append 4c alpha suffix
	alphaOverlay // append 7f alpha suffix
)

const (
	hoverStep  = 0.08
	rippleStep = 0.08

	mutedGrayLight = "c8c8c8"
	mutedGrayDark  = "3e546a"

	selectAlpha  = "4c"
	overlayAlpha = "7f"
)

func (r stateRule) apply(hex string, mode Mode) string {
	switch r {
	case hover:
		return shiftHex(hex, hoverStep)
	case ripple:
		return shiftHex(hex, -rippleStep)
	case muted:
		if mode == ModeDark {
			return mutedGrayDark
		}
		return mutedGrayLight
	case alphaSelect:
		return hex + selectAlpha
	case alphaOverlay:
		return hex + overlayAlpha
	default:
		return hex
	}
}

// derivations lists every property overwritten from the semantic roles,
// independent of mode.
var derivations = []struct {
	key   string
	role  roleRef
	state stateRule
}{
	// Window and common controls.
	{"windowBg", rBackground, asIs},
	{"windowFg", rText, asIs},
	{"windowBgOver", rBackgroundSecondary, asIs},
	{"windowBgRipple", rBackgroundSecondary, ripple},
	{"windowSubTextFg", rTextSecondary, asIs},
	{"windowBoldFg", rText, asIs},
	{"windowBgActive", rPrimary, asIs},
	{"windowFgActive", rTextInverse, asIs},
	{"windowActiveTextFg", rAccent, asIs},
	{"activeButtonBg", rPrimary, asIs},
	{"activeButtonBgOver", rPrimary, hover},
	{"activeButtonBgRipple", rPrimary, ripple},
	{"activeButtonFg", rTextInverse, asIs},
	{"activeButtonSecondaryFg", rAccentLight, asIs},
	{"activeLineFg", rPrimary, asIs},
	{"lightButtonFg", rAccent, asIs},
	{"outlineButtonOutlineFg", rPrimary, asIs},
	{"filterInputBorderFg", rPrimary, asIs},
	{"sliderBgActive", rPrimary, asIs},
	{"checkboxFg", rTextMuted, asIs},
	{"menuFgDisabled", rTextMuted, muted},

	// Title bar.
	{"titleBg", rBackground, asIs},
	{"titleFg", rTextSecondary, asIs},
	{"titleFgActive", rText, asIs},

	// Popup menus.
	{"menuBg", rBackground, asIs},
	{"menuBgOver", rBackgroundSecondary, asIs},
	{"menuBgRipple", rBackgroundSecondary, ripple},
	{"menuIconFg", rTextMuted, asIs},
	{"menuIconFgOver", rTextSecondary, asIs},

	// Chat list.
	{"dialogsMenuIconFg", rTextMuted, asIs},
	{"dialogsMenuIconFgOver", rTextSecondary, asIs},
	{"dialogsBg", rBackground, asIs},
	{"dialogsNameFg", rText, asIs},
	{"dialogsChatIconFg", rText, asIs},
	{"dialogsDateFg", rTextSecondary, asIs},
	{"dialogsTextFg", rTextSecondary, asIs},
	{"dialogsTextFgService", rAccent, asIs},
	{"dialogsVerifiedIconBg", rPrimary, asIs},
	{"dialogsVerifiedIconFg", rBackground, asIs},
	{"dialogsSentIconFg", rOnline, asIs},
	{"dialogsUnreadBg", rPrimary, asIs},
	{"dialogsUnreadBgMuted", rTextMuted, muted},
	{"dialogsUnreadFg", rTextInverse, asIs},
	{"dialogsBgOver", rBackgroundSecondary, asIs},
	{"dialogsRippleBg", rBackgroundSecondary, ripple},
	{"dialogsRippleBgActive", rPrimary, ripple},
	{"dialogsForwardBg", rPrimary, asIs},
	{"dialogsForwardFg", rTextInverse, asIs},
	{"searchedBarBg", rBackgroundSecondary, asIs},

	// Message history.
	{"topBarBg", rBackground, asIs},
	{"historyTextInFg", rText, asIs},
	{"historyTextInFgSelected", rText, asIs},
	{"historyTextOutFg", rText, asIs},
	{"historyTextOutFgSelected", rText, asIs},
	{"historyLinkInFg", rAccent, asIs},
	{"historyLinkInFgSelected", rAccent, asIs},
	{"historyLinkOutFg", rAccent, asIs},
	{"historyLinkOutFgSelected", rAccent, asIs},
	{"historyOutIconFg", rOnline, asIs},
	{"historyUnreadBarFg", rAccent, asIs},
	{"msgSelectOverlay", rPrimary, alphaSelect},
	{"msgStickerOverlay", rPrimary, alphaOverlay},
	{"msgInServiceFg", rAccent, asIs},
	{"msgInReplyBarColor", rPrimary, asIs},
	{"msgOutReplyBarColor", rPrimary, asIs},
	{"msgFileThumbLinkInFg", rAccent, asIs},
	{"msgFileInBg", rPrimary, asIs},
	{"msgFileInBgOver", rPrimary, hover},
	{"msgFileOutBgOver", rPrimary, hover},
	{"msgWaveformInActive", rPrimary, asIs},
	{"msgWaveformInInactive", rTextMuted, muted},
	{"msgWaveformOutInactive", rTextMuted, muted},

	// Intro screens.
	{"introBg", rBackground, asIs},
	{"introTitleFg", rText, asIs},
	{"introDescriptionFg", rTextSecondary, asIs},

	// Boxes, contacts and panels.
	{"boxBg", rBackground, asIs},
	{"boxTextFg", rText, asIs},
	{"boxTitleFg", rText, asIs},
	{"boxSearchBg", rBackground, asIs},
	{"boxTitleAdditionalFg", rTextSecondary, asIs},
	{"boxTitleCloseFg", rTextMuted, asIs},
	{"cancelIconFg", rTextMuted, asIs},
	{"smallCloseIconFg", rTextMuted, asIs},
	{"contactsBg", rBackground, asIs},
	{"contactsBgOver", rBackgroundSecondary, asIs},
	{"contactsNameFg", rText, asIs},
	{"contactsStatusFg", rTextSecondary, asIs},
	{"contactsStatusFgOnline", rOnline, asIs},
	{"emojiPanBg", rBackground, asIs},
	{"emojiPanCategories", rBackgroundTertiary, asIs},
	{"emojiPanHeaderFg", rTextSecondary, asIs},
}

// modeBranches lists the properties whose derivation inverts between light
// and dark mode: an outgoing bubble is a pale tint of primary on light
// themes and a deep tint on dark ones.
var modeBranches = []struct {
	key        string
	lightRole  roleRef
	lightShift float64
	darkRole   roleRef
	darkShift  float64
}{
	{"msgOutBg", rPrimary, 0.42, rPrimary, -0.28},
	{"msgOutBgSelected", rPrimary, 0.34, rPrimary, -0.34},
	{"msgInBg", rBackground, 0, rBackgroundTertiary, 0.04},
	{"msgInBgSelected", rPrimary, 0.38, rPrimary, -0.30},
	{"msgOutServiceFg", rPrimaryDark, 0, rAccentLight, 0},
	{"msgFileOutBg", rPrimaryLight, 0, rPrimary, 0},
	{"msgFileThumbLinkOutFg", rPrimaryDark, 0, rAccentLight, 0},
	{"msgWaveformOutActive", rPrimaryLight, 0, rPrimary, 0},
	{"dialogsBgActive", rPrimary, 0, rPrimaryDark, 0},
	{"dialogsNameFgActive", rTextInverse, 0, rText, 0},
	{"dialogsUnreadBgActive", rBackground, 0, rPrimary, 0},
	{"dialogsUnreadFgActive", rPrimary, 0, rTextInverse, 0},
	{"callBarBg", rPrimary, 0, rPrimaryDark, 0},
	{"introCoverTopBg", rPrimary, 0, rPrimaryDark, 0},
	{"introCoverBottomBg", rPrimary, 0, rPrimaryDark, 0},
	{"notificationBg", rBackground, 0, rBackgroundSecondary, 0},
}
