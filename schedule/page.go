package schedule

import (
	"log/slog"

	"github.com/tsawler/examtable/config"
	"github.com/tsawler/examtable/layout"
	"github.com/tsawler/examtable/logging"
	"github.com/tsawler/examtable/model"
)

// PageResult holds the records of one page and how they were obtained
type PageResult struct {
	// Index is the 0-based page index
	Index int

	// Semester is the semester number found in the page text, or ""
	Semester string

	// Rows are the page's records, top to bottom
	Rows []model.Row

	// Boundaries are the column cut points used for the page
	Boundaries []float64

	// BoundarySource tells whether Boundaries came from headers or the
	// equal-width fallback
	BoundarySource layout.BoundarySource

	// HeaderCount is the number of distinct header labels found
	HeaderCount int

	// HasOutline reports whether a table rectangle restricted the words
	HasOutline bool

	// Lines is the number of visual lines left after header rows were removed
	Lines int

	// Dropped is the number of those lines that produced no change
	Dropped int
}

// ParsePage rebuilds the schedule records of a single page. It never
// fails: pages without a usable layout simply produce fewer or no rows.
func ParsePage(page model.PageContent, cfg config.Config) PageResult {
	res := PageResult{
		Index:    page.Index,
		Semester: ExtractSemester(page.PlainText()),
	}

	headers := layout.LocateHeaders(page.Tokens)
	res.HeaderCount = len(headers)

	res.Boundaries, res.BoundarySource = layout.ResolveBoundaries(headers, page.Tokens, cfg)
	if res.Boundaries == nil {
		return res
	}

	var outline *model.BBox
	if r, ok := layout.OuterRect(page.Rects, cfg.MinRectWidth, cfg.MinRectHeight); ok {
		outline = &r
		res.HasOutline = true
	}

	tokens := layout.TableTokens(page.Tokens, headers, outline, cfg.RectSlack)
	lines := NormalizeLines(layout.BuildLines(tokens, res.Boundaries, cfg.RowTolerance))
	res.Lines = len(lines)

	m := NewMerger(res.Semester)
	for _, l := range lines {
		if m.Add(l) == Drop {
			res.Dropped++
		}
	}
	res.Rows = m.Rows()

	logging.Logger().Debug("page parsed",
		slog.Int("page", page.Index+1),
		slog.String("boundaries", res.BoundarySource.String()),
		slog.Int("headers", res.HeaderCount),
		slog.Bool("outline", res.HasOutline),
		slog.Int("lines", res.Lines),
		slog.Int("dropped", res.Dropped),
		slog.Int("rows", len(res.Rows)),
	)

	return res
}
