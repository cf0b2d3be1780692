package pipeline

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Format identifies an export file format.
type Format int

const (
	FormatTSV Format = iota
	FormatJSON
	FormatHTML
)

// LineSeparator terminates every TSV line. It follows the platform convention.
var LineSeparator = platformLineSeparator(runtime.GOOS)

func platformLineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

func (f Format) String() string {
	switch f {
	case FormatTSV:
		return "TSV"
	case FormatJSON:
		return "JSON"
	case FormatHTML:
		return "HTML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the file extension written for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatTSV:
		return ".txt"
	case FormatJSON:
		return ".json"
	case FormatHTML:
		return ".html"
	default:
		return ""
	}
}

// Formats lists the selectable format labels in display order.
func Formats() []string {
	return []string{FormatTSV.String(), FormatJSON.String(), FormatHTML.String()}
}

// ParseFormat accepts TSV, JSON or HTML in any case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TSV":
		return FormatTSV, nil
	case "JSON":
		return FormatJSON, nil
	case "HTML":
		return FormatHTML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath infers the format of a previously exported file.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".tsv":
		return FormatTSV, nil
	case ".json":
		return FormatJSON, nil
	case ".html", ".htm":
		return FormatHTML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// ImportExtensions lists the file extensions FormatFromPath recognizes.
func ImportExtensions() []string {
	return []string{".txt", ".tsv", ".json", ".html", ".htm"}
}
