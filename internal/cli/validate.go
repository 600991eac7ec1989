package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tdtint/internal/theme"
	"tdtint/internal/themepack"
)

var (
	// Validate command flags
	validateMinScore      float64
	validateIgnoreUnknown bool
	validateFormat        string
	validateQuietIssues   bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <theme-file>",
	Short: "Validate a Telegram Desktop theme file",
	Long: `Validate a Telegram Desktop theme file against the property schema.

The validate command checks required properties, value formats and
schema coverage, then reports a quality score. Plain palettes, zip
theme packages and xz- or gzip-compressed palettes are all accepted;
the container is detected automatically.

The exit code is non-zero when the theme is invalid, so the command
can gate scripted theme pipelines.

Examples:
  # Validate a palette file
  tdtint validate mytheme.tdesktop-palette

  # Validate a packaged theme
  tdtint validate mytheme.tdesktop-theme

  # Machine-readable report
  tdtint validate --format json mytheme.tdesktop-palette

  # Ignore properties outside the schema
  tdtint validate --ignore-unknown mytheme.tdesktop-palette`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	// Define flags for the validate command
	validateCmd.Flags().Float64Var(&validateMinScore, "min-score", 70, "score below which the theme is reported invalid")
	validateCmd.Flags().BoolVar(&validateIgnoreUnknown, "ignore-unknown", false, "suppress notes about properties outside the schema")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "table", "report format (table, json)")
	validateCmd.Flags().BoolVar(&validateQuietIssues, "errors-only", false, "only list errors, not warnings and notes")
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, args []string) error {
	themePath := args[0]
	log := newLogger(cmd)

	content, err := themepack.ReadPalette(themePath)
	if err != nil {
		return err
	}
	log.Debug("theme loaded", "path", themePath, "bytes", len(content))

	props, err := theme.Parse(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}
	log.Debug("theme parsed", "properties", len(props))

	validator := theme.NewValidator(theme.ValidatorConfig{
		MinScore:      validateMinScore,
		IgnoreUnknown: validateIgnoreUnknown,
	})
	result := validator.Validate(props)

	switch validateFormat {
	case "table":
		fmt.Print(renderValidationReport(themePath, result))
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", validateFormat)
	}

	if !result.Valid {
		return fmt.Errorf("theme is invalid: %s", result.Summary)
	}
	return nil
}

// renderValidationReport formats a human-readable validation report.
func renderValidationReport(path string, result theme.ValidationResult) string {
	var sb bytes.Buffer

	status := "VALID"
	if !result.Valid {
		status = "INVALID"
	}
	fmt.Fprintf(&sb, "Theme:  %s\n", path)
	fmt.Fprintf(&sb, "Status: %s (score %.1f/100)\n", status, result.Score)
	fmt.Fprintf(&sb, "%s\n\n", result.Summary)

	issues := result.Issues
	if validateQuietIssues {
		issues = nil
		for _, issue := range result.Issues {
			if issue.Severity == theme.SeverityError {
				issues = append(issues, issue)
			}
		}
	}

	if len(issues) > 0 {
		issueTable := newTable("SEVERITY", "CODE", "PROPERTY", "MESSAGE")
		issueTable.wrapColumn(3, 60)
		for _, issue := range issues {
			issueTable.addRow(string(issue.Severity), string(issue.Code), issue.Property, issue.Message)
		}
		sb.WriteString(issueTable.render())
		sb.WriteString("\n")
	}

	coverageTable := newTable("CATEGORY", "PRESENT", "COVERAGE")
	for _, cc := range result.Coverage {
		coverageTable.addRow(
			string(cc.Category),
			fmt.Sprintf("%d/%d", cc.Present, cc.Total),
			fmt.Sprintf("%.0f%%", cc.Percent()),
		)
	}
	sb.WriteString(coverageTable.render())

	return sb.String()
}
