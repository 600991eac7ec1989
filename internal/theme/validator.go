package theme

import (
	"fmt"
	"sort"
)

// Severity classifies a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IssueCode identifies the check that produced an issue.
type IssueCode string

const (
	// CodeMissingRequired means a required property is absent.
	CodeMissingRequired IssueCode = "MISSING_REQUIRED"
	// CodeInvalidFormat means a value is not a valid hex colour token.
	CodeInvalidFormat IssueCode = "INVALID_FORMAT"
	// CodeMissingOptional means an optional catalog property is absent.
	CodeMissingOptional IssueCode = "MISSING_OPTIONAL"
	// CodeUnknownProperty means a key is not part of the catalog.
	CodeUnknownProperty IssueCode = "UNKNOWN_PROPERTY"
	// CodeCustomRule is used by registered custom rules without a code.
	CodeCustomRule IssueCode = "CUSTOM_RULE"
)

// Issue is a single validation finding.
type Issue struct {
	Severity   Severity  `json:"severity"`
	Property   string    `json:"property"`
	Message    string    `json:"message"`
	Code       IssueCode `json:"code"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// CategoryCoverage reports how many catalog properties of one category are
// present in a property map.
type CategoryCoverage struct {
	Category Category `json:"category"`
	Present  int      `json:"present"`
	Total    int      `json:"total"`
}

// Percent returns the coverage as a percentage.
func (c CategoryCoverage) Percent() float64 {
	if c.Total == 0 {
		return 100
	}
	return float64(c.Present) / float64(c.Total) * 100
}

// ValidationResult is the structured outcome of validating a property map.
// Producing one never fails: "invalid" is a data value, not an error.
type ValidationResult struct {
	Valid    bool               `json:"valid"`
	Score    float64            `json:"score"`
	Issues   []Issue            `json:"issues"`
	Coverage []CategoryCoverage `json:"coverage"`
	Summary  string             `json:"summary"`
}

// CountBySeverity returns how many issues carry the given severity.
func (r ValidationResult) CountBySeverity(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// RuleFunc is a custom validation rule: a pure function from a property map
// to zero or more issues. Rules must not mutate the map.
type RuleFunc func(PropertyMap) []Issue

// ValidatorConfig configures validation scoring and reporting.
type ValidatorConfig struct {
	// MinScore is the score below which a theme is reported invalid even
	// with zero errors.
	MinScore float64

	// IgnoreUnknown suppresses UNKNOWN_PROPERTY info issues.
	IgnoreUnknown bool
}

// DefaultValidatorConfig returns the default validator configuration.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{MinScore: 70}
}

// Validator checks property maps against the schema and produces a quality
// score. Custom rules can be registered and removed by name at runtime.
type Validator struct {
	cfg   ValidatorConfig
	rules map[string]RuleFunc
}

// NewValidator creates a Validator with the given configuration.
func NewValidator(cfg ValidatorConfig) *Validator {
	if cfg.MinScore <= 0 {
		cfg.MinScore = 70
	}
	return &Validator{
		cfg:   cfg,
		rules: make(map[string]RuleFunc),
	}
}

// AddRule registers a named custom rule. Re-registering a name replaces the
// previous rule.
func (v *Validator) AddRule(name string, rule RuleFunc) {
	v.rules[name] = rule
}

// RemoveRule removes a custom rule by name. Unknown names are a no-op.
func (v *Validator) RemoveRule(name string) {
	delete(v.rules, name)
}

// Validate checks a property map against the schema. Always returns a
// structured result, even for an empty or nil map.
func (v *Validator) Validate(props PropertyMap) ValidationResult {
	var issues []Issue

	// Required and optional catalog keys.
	for _, prop := range catalog {
		if _, ok := props[prop.Key]; ok {
			continue
		}
		if prop.Required {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Property:   prop.Key,
				Message:    fmt.Sprintf("required property %q is missing", prop.Key),
				Code:       CodeMissingRequired,
				Suggestion: fmt.Sprintf("%s: #%s;", prop.Key, suggestedValue(prop.Key)),
			})
		} else {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Property: prop.Key,
				Message:  fmt.Sprintf("optional property %q is missing, the default will be used", prop.Key),
				Code:     CodeMissingOptional,
			})
		}
	}

	// Value format and unknown keys, in deterministic order.
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	known := 0
	for _, key := range keys {
		if _, ok := propertyIndex[key]; ok {
			known++
		} else if !v.cfg.IgnoreUnknown {
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Property: key,
				Message:  fmt.Sprintf("property %q is not part of the theme schema", key),
				Code:     CodeUnknownProperty,
			})
		}

		if !isHexToken(props[key]) {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Property:   key,
				Message:    fmt.Sprintf("value %q is not a valid colour token (want 6 or 8 hex digits, no #)", props[key]),
				Code:       CodeInvalidFormat,
				Suggestion: fmt.Sprintf("%s: #%s;", key, suggestedValue(key)),
			})
		}
	}

	// Custom rules, merged by severity; executed in name order for
	// deterministic output.
	ruleNames := make([]string, 0, len(v.rules))
	for name := range v.rules {
		ruleNames = append(ruleNames, name)
	}
	sort.Strings(ruleNames)
	for _, name := range ruleNames {
		issues = append(issues, v.rules[name](props)...)
	}

	coverage := coverageByCategory(props)
	score := computeScore(issues, known)

	errors := 0
	warnings := 0
	infos := 0
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		default:
			infos++
		}
	}

	return ValidationResult{
		Valid:    errors == 0 && score >= v.cfg.MinScore,
		Score:    score,
		Issues:   issues,
		Coverage: coverage,
		Summary: fmt.Sprintf("%d errors, %d warnings, %d notes; score %.1f/100",
			errors, warnings, infos, score),
	}
}

// computeScore derives the quality score: start at 100, subtract 10 per
// error, 0.5 per warning (capped at -20), then apply a coverage bonus or
// penalty and clamp to [0, 100].
func computeScore(issues []Issue, knownPresent int) float64 {
	score := 100.0

	warningPenalty := 0.0
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			score -= 10
		case SeverityWarning:
			warningPenalty += 0.5
		}
	}
	score -= min(warningPenalty, 20)

	coverage := float64(knownPresent) / float64(len(catalog))
	if coverage >= 0.95 {
		score += 5
	} else if coverage < 0.70 {
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// coverageByCategory counts present catalog keys per category.
func coverageByCategory(props PropertyMap) []CategoryCoverage {
	byCat := make(map[Category]*CategoryCoverage, len(Categories()))
	order := Categories()
	for _, cat := range order {
		byCat[cat] = &CategoryCoverage{Category: cat}
	}

	for _, prop := range catalog {
		cc := byCat[prop.Category]
		cc.Total++
		if _, ok := props[prop.Key]; ok {
			cc.Present++
		}
	}

	result := make([]CategoryCoverage, 0, len(order))
	for _, cat := range order {
		result = append(result, *byCat[cat])
	}
	return result
}

// suggestedValue returns the light-mode baseline for a key, or a safe
// neutral when the key is unknown.
func suggestedValue(key string) string {
	if v, ok := defaultLightColors[key]; ok {
		return v
	}
	return "ffffff"
}
