// Package themepack reads and writes packaged theme files. A packaged theme
// is a zip archive holding the palette under a fixed entry name; standalone
// palettes may additionally be xz- or gzip-compressed for sharing.
package themepack

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// PaletteEntryName is the palette file name inside a theme package.
const PaletteEntryName = "colors.tdesktop-theme"

// maxPaletteSize bounds decompressed palette reads. Palettes are a few
// kilobytes of text; anything near this limit is not a palette.
const maxPaletteSize = 10 * 1024 * 1024

// Magic byte prefixes for container detection.
var (
	zipMagic  = []byte{'P', 'K', 0x03, 0x04}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	gzipMagic = []byte{0x1f, 0x8b}
)

// WritePackage writes serialized theme content as a zip theme package.
func WritePackage(path string, content []byte) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entry, err := zw.Create(PaletteEntryName)
	if err != nil {
		return fmt.Errorf("failed to create package entry: %w", err)
	}
	if _, err := entry.Write(content); err != nil {
		return fmt.Errorf("failed to write package entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write theme package: %w", err)
	}
	return nil
}

// WriteCompressed writes serialized theme content as an xz-compressed
// standalone palette.
func WriteCompressed(path string, content []byte) error {
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := xw.Write(content); err != nil {
		return fmt.Errorf("failed to compress theme: %w", err)
	}
	if err := xw.Close(); err != nil {
		return fmt.Errorf("failed to finalize compressed theme: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write compressed theme: %w", err)
	}
	return nil
}

// ReadPalette loads palette text from a path, transparently unwrapping zip
// theme packages and xz/gzip compressed palettes. Plain text files are
// returned as-is.
func ReadPalette(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified theme path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return UnwrapPalette(data)
}

// UnwrapPalette extracts palette text from raw file bytes, detecting the
// container by magic bytes.
func UnwrapPalette(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return unwrapZip(data)
	case bytes.HasPrefix(data, xzMagic):
		xr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return readLimited(xr)
	case bytes.HasPrefix(data, gzipMagic):
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gr.Close()
		return readLimited(gr)
	default:
		return data, nil
	}
}

// unwrapZip extracts the palette entry from a zip theme package. The fixed
// entry name is preferred; a package with a single file falls back to that
// file.
func unwrapZip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open theme package: %w", err)
	}

	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == PaletteEntryName {
			entry = f
			break
		}
	}
	if entry == nil && len(zr.File) == 1 {
		entry = zr.File[0]
	}
	if entry == nil {
		return nil, fmt.Errorf("theme package has no %s entry", PaletteEntryName)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open package entry: %w", err)
	}
	defer rc.Close()
	return readLimited(rc)
}

// readLimited reads from r, refusing input larger than maxPaletteSize.
// Guards against decompression bombs.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPaletteSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress theme: %w", err)
	}
	if len(data) > maxPaletteSize {
		return nil, fmt.Errorf("theme content exceeds %d byte limit", maxPaletteSize)
	}
	return data, nil
}
