// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the on-disk encoding of a partition document.
type Format int

const (
	// FormatYAML is the default, human-editable encoding.
	FormatYAML Format = iota
	// FormatJSON is the machine-oriented encoding.
	FormatJSON
)

// String returns the canonical lower-case name ("yaml" or "json").
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps a case-insensitive name ("yaml", "yml", "json") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatFromPath detects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}
