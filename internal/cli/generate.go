package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tdtint/internal/colour"
	"tdtint/internal/image"
	"tdtint/internal/theme"
	"tdtint/internal/themepack"
)

var (
	// Generate command flags
	generateMode     string
	generateName     string
	generateColours  int
	generateQuality  int
	generateMaxSize  int
	generateOutput   string
	generatePackage  bool
	generateCompress bool
	generateMinScore float64
	generatePreview  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <image>",
	Short: "Generate a Telegram Desktop theme from an image",
	Long: `Generate a complete Telegram Desktop colour theme from an image.

The generate command extracts the dominant colours from an image, maps
them to semantic theme roles, expands those roles across the full
property schema for the chosen mode, repairs text contrast to WCAG AA
and validates the result.

If the image path is a directory, a random image from it is used.

Examples:
  # Generate a light theme and print it to stdout
  tdtint generate wallpaper.jpg

  # Generate a dark theme and write the palette to a file
  tdtint generate --mode dark -o mytheme.tdesktop-palette wallpaper.jpg

  # Generate a packaged theme ready to share
  tdtint generate --package -o mytheme.tdesktop-theme wallpaper.jpg

  # Generate an xz-compressed palette
  tdtint generate --compress -o mytheme.tdesktop-palette.xz wallpaper.jpg

  # Pick a random wallpaper from a directory
  tdtint generate --name "Rotation" ~/Pictures/wallpapers`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	// Define flags for the generate command
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "light", "theme mode (light, dark)")
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "theme name (default: derived from the image file name)")
	generateCmd.Flags().IntVarP(&generateColours, "colours", "c", 10, "number of colours to extract (1-256)")
	generateCmd.Flags().IntVar(&generateQuality, "quality", 10, "pixel sampling step (1 = every pixel)")
	generateCmd.Flags().IntVar(&generateMaxSize, "max-size", 400, "downscale long image edge to this size before analysis")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().BoolVar(&generatePackage, "package", false, "write a zip theme package instead of a plain palette")
	generateCmd.Flags().BoolVar(&generateCompress, "compress", false, "xz-compress the palette output")
	generateCmd.Flags().Float64Var(&generateMinScore, "min-score", 70, "fail when the validation score is below this")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "show semantic colour previews in terminal")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	log := newLogger(cmd)

	mode, err := theme.ParseMode(generateMode)
	if err != nil {
		return err
	}

	if generatePackage && generateCompress {
		return fmt.Errorf("--package and --compress are mutually exclusive")
	}
	if (generatePackage || generateCompress) && generateOutput == "" {
		return fmt.Errorf("--package and --compress require --output")
	}

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	resolved, err := image.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}
	log.Debug("loading image", "path", resolved)

	loader := image.NewFileLoader()
	img, err := loader.Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	opts := theme.GenerateOptions{
		Name: generateName,
		Mode: mode,
		Extract: colour.ExtractOptions{
			Algorithm:  colour.AlgorithmMedianCut,
			ColorCount: generateColours,
			Quality:    generateQuality,
			MaxSize:    generateMaxSize,
		},
		Contrast: colour.DefaultAdjustConfig(),
	}
	if opts.Name == "" {
		opts.Name = themeNameFromPath(resolved)
	}

	generator, err := theme.NewGenerator(opts, log)
	if err != nil {
		return err
	}

	result, err := generator.Generate(img)
	if err != nil {
		return err
	}

	for _, adj := range result.Contrast {
		if adj.WasAdjusted {
			log.Debug("contrast repaired",
				"fg", adj.OriginalFg, "bg", adj.Background, "adjusted", adj.AdjustedFg,
				"ratio", fmt.Sprintf("%.2f", adj.FinalRatio))
		}
	}

	if generatePreview {
		printRolePreview(result)
	}

	// The generator validates its own output; a score below the floor means
	// the source image produced an unusable theme.
	fmt.Fprintf(os.Stderr, "Validation: %s\n", result.Validation.Summary)
	if result.Validation.Score < generateMinScore {
		return fmt.Errorf("theme quality score %.1f is below minimum %.1f",
			result.Validation.Score, generateMinScore)
	}

	content := []byte(result.Content)
	switch {
	case generatePackage:
		if err := themepack.WritePackage(generateOutput, content); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Theme package written to %s\n", generateOutput)
	case generateCompress:
		if err := themepack.WriteCompressed(generateOutput, content); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Compressed theme written to %s\n", generateOutput)
	case generateOutput != "":
		if err := os.WriteFile(generateOutput, content, 0o644); err != nil {
			return fmt.Errorf("failed to write theme: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Theme written to %s\n", generateOutput)
	default:
		fmt.Print(result.Content)
	}

	return nil
}

// themeNameFromPath derives a theme name from an image file name.
func themeNameFromPath(path string) string {
	base := path
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}
	if base == "" {
		return "tdtint theme"
	}
	return base
}

// printRolePreview shows the key generated properties with colour blocks.
func printRolePreview(t *theme.GeneratedTheme) {
	keys := []string{
		"windowBg", "windowFg", "windowBgActive", "windowActiveTextFg",
		"msgInBg", "msgOutBg", "historyTextInFg", "historyTextOutFg",
		"dialogsBg", "titleBg",
	}

	useAnsi := os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout)
	for _, key := range keys {
		value, ok := t.Properties[key]
		if !ok {
			continue
		}
		if useAnsi {
			rgb, err := colour.HexToRGB(value)
			if err == nil {
				fmt.Printf("%s  %-20s #%s\n", colour.Preview(rgb, 8), key, value)
				continue
			}
		}
		fmt.Printf("%-20s #%s\n", key, value)
	}
}
