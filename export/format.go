package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/examtable/model"
)

var (
	// ErrUnknownFormat is returned for an output format name that is not
	// csv, json or html.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrNoInput is returned when a merge is given no tables.
	ErrNoInput = errors.New("export: no input")
)

// Format is an output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// CSV is comma separated values with a UTF-8 byte order mark.
	CSV
	// JSON is an array of row objects.
	JSON
	// HTML is a standalone page holding one table.
	HTML
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case CSV:
		return ".csv"
	case JSON:
		return ".json"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// ParseFormat maps a format name such as "csv" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "html", "htm":
		return HTML, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Detect determines the format from a file name's extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV
	case ".json":
		return JSON
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// Write encodes rows to w in the given format.
func Write(w io.Writer, f Format, rows []model.Row) error {
	switch f {
	case CSV:
		return WriteCSV(w, rows)
	case JSON:
		return WriteJSON(w, rows)
	case HTML:
		return WriteHTML(w, rows)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
