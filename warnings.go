package examtable

import (
	"fmt"
	"strings"

	"github.com/tsawler/examtable/layout"
	"github.com/tsawler/examtable/schedule"
)

// WarningCode identifies the kind of non-fatal degradation.
type WarningCode string

const (
	// HeaderFallback means fewer than the required column headers were
	// found and the page was split into equal-width columns.
	HeaderFallback WarningCode = "header_fallback"

	// DateRecovered means the DATE header was missing and its column edge
	// was taken from the date values instead.
	DateRecovered WarningCode = "date_recovered"

	// NoOuterRect means no table border was found, so words outside the
	// table may have been read as rows.
	NoOuterRect WarningCode = "no_outer_rect"

	// NoSemester means the page text names no semester.
	NoSemester WarningCode = "no_semester"
)

// Warning reports a page whose rows were extracted with reduced
// confidence.
type Warning struct {
	// Page is the 1-indexed page number
	Page    int
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s: %s", w.Page, w.Code, w.Message)
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// pageWarnings derives the warnings of one page result
func pageWarnings(r schedule.PageResult) []Warning {
	page := r.Index + 1
	var out []Warning

	switch r.BoundarySource {
	case layout.BoundariesFallback:
		out = append(out, Warning{
			Page:    page,
			Code:    HeaderFallback,
			Message: fmt.Sprintf("found %d column headers, using equal-width columns", r.HeaderCount),
		})
	case layout.BoundariesRecoveredDate:
		out = append(out, Warning{
			Page:    page,
			Code:    DateRecovered,
			Message: "date column edge taken from date values",
		})
	}

	if r.Boundaries != nil && !r.HasOutline {
		out = append(out, Warning{
			Page:    page,
			Code:    NoOuterRect,
			Message: "no table border found, reading all words below the headers",
		})
	}

	if r.Semester == "" {
		out = append(out, Warning{
			Page:    page,
			Code:    NoSemester,
			Message: "no semester found in page text",
		})
	}
	return out
}
