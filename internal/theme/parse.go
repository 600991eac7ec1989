package theme

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tdtint/internal/colour"
)

func isHexToken(value string) bool {
	return colour.IsHexToken(value)
}

// Parse reads the line-oriented theme format back into a property map.
// Comment lines start with //; data lines are "key: #hexvalue;". Values are
// kept verbatim (minus # and ;) so the validator can flag malformed tokens
// instead of this parser rejecting them. Only structurally unreadable lines
// produce an error.
func Parse(r io.Reader) (PropertyMap, error) {
	props := make(PropertyMap)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"key: #value;\", got %q", lineNo, line)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty property key", lineNo)
		}

		value = strings.TrimSpace(value)
		value = strings.TrimSuffix(value, ";")
		value = strings.TrimPrefix(strings.TrimSpace(value), "#")

		props[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}

	return props, nil
}

// ParseString is a convenience wrapper around Parse for in-memory content.
func ParseString(content string) (PropertyMap, error) {
	return Parse(strings.NewReader(content))
}
