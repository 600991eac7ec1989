package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tdtint/internal/colour"
	"tdtint/internal/image"
)

var (
	// Extract command flags
	extractColours     int
	extractAlgorithm   string
	extractQuality     int
	extractMaxSize     int
	extractFormat      string
	extractOutput      string
	extractShowPreview bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract the dominant colour palette from an image.

The extract command analyses an image and reports its dominant colours
ranked by vibrancy, the same ranking the generate command uses to pick
theme colours. You can control the number of colours, the sampling
quality and the output format.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 10 colours (default) from an image
  tdtint extract wallpaper.jpg

  # Extract 5 colours with terminal previews
  tdtint extract --preview --colours 5 wallpaper.png

  # Extract colours and output as JSON
  tdtint extract --format json wallpaper.jpg

  # Extract colours and save to a file
  tdtint extract --output palette.txt wallpaper.jpg

  # Extract 16 colours in RGB format
  tdtint extract -c 16 -f rgb wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	// Define flags for the extract command
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 10, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "mediancut", "extraction algorithm (mediancut)")
	extractCmd.Flags().IntVar(&extractQuality, "quality", 10, "pixel sampling step (1 = every pixel)")
	extractCmd.Flags().IntVar(&extractMaxSize, "max-size", 400, "downscale long image edge to this size before analysis")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	log := newLogger(cmd)

	// Validate the image path
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	opts := colour.ExtractOptions{
		Algorithm:  colour.Algorithm(extractAlgorithm),
		ColorCount: extractColours,
		Quality:    extractQuality,
		MaxSize:    extractMaxSize,
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// A directory path means: pick a random image from it.
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

	bounds := img.Bounds()
	log.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor, err := colour.NewExtractor(opts, log)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(img)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	log.Debug("extraction complete", "colours", palette.Len())

	output, err := formatPalette(palette, extractFormat, showPreviews())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Write output to file or stdout
	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Debug("palette written", "path", extractOutput)
	} else {
		fmt.Print(output)
	}

	return nil
}

// showPreviews reports whether ANSI previews were requested and stdout is a
// terminal that can display them.
func showPreviews() bool {
	return extractShowPreview && isTerminal(os.Stdout)
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, preview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, preview), nil
	case "rgb":
		return formatRGB(palette, preview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes, one per line.
func formatHex(palette *colour.Palette, preview bool) string {
	var sb strings.Builder
	for _, c := range palette.Colors {
		if preview {
			sb.WriteString(colour.Preview(c.RGB, 8))
			sb.WriteString("  ")
		}
		sb.WriteString("#")
		sb.WriteString(c.Hex)
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatRGB formats the palette as RGB values, one per line.
func formatRGB(palette *colour.Palette, preview bool) string {
	var sb strings.Builder
	for _, c := range palette.Colors {
		if preview {
			sb.WriteString(colour.Preview(c.RGB, 8))
			sb.WriteString("  ")
		}
		sb.WriteString(c.RGB.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
