package examtable

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tsawler/examtable/config"
	"github.com/tsawler/examtable/logging"
	"github.com/tsawler/examtable/model"
	"github.com/tsawler/examtable/schedule"
)

// Extractor provides a fluent interface for extracting schedule rows.
// Each configuration method returns a new Extractor, so a base Extractor
// can be shared and specialised.
type Extractor struct {
	filename string

	source     Source
	ownsSource bool // true if the source should be closed by the Extractor
	opened     bool

	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:   e.filename,
		source:     e.source,
		ownsSource: e.ownsSource,
		opened:     e.opened,
		options:    e.options.clone(),
		err:        e.err,
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.opened {
		return nil
	}
	if e.filename == "" {
		return errors.New("no filename specified")
	}

	src, err := openSource(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.source = src
	e.ownsSource = true
	e.opened = true
	return nil
}

// Close releases the underlying source. It is safe to call Close multiple
// times.
func (e *Extractor) Close() error {
	if !e.ownsSource || e.source == nil {
		return nil
	}
	err := e.source.Close()
	e.source = nil
	e.ownsSource = false
	return err
}

// Pages specifies which pages to extract from (1-indexed). Multiple calls
// are cumulative.
//
// Example:
//
//	rows, _, err := examtable.Open("exams.pdf").Pages(1, 3).Rows(ctx)
func (e *Extractor) Pages(pages ...int) *Extractor {
	n := e.clone()
	n.options.pages = append(n.options.pages, pages...)
	return n
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	n := e.clone()
	for i := start; i <= end; i++ {
		n.options.pages = append(n.options.pages, i)
	}
	return n
}

// Workers sets how many pages are parsed concurrently. Values below 1
// keep the configured default.
func (e *Extractor) Workers(workers int) *Extractor {
	n := e.clone()
	n.options.workers = workers
	return n
}

// WithConfig replaces the layout tunables. An invalid configuration is
// reported by the next terminal operation.
//
// Example:
//
//	cfg, err := config.Load("examtable.yaml")
//	rows, _, err := examtable.Open("exams.pdf").WithConfig(cfg).Rows(ctx)
func (e *Extractor) WithConfig(cfg config.Config) *Extractor {
	n := e.clone()
	if err := cfg.Validate(); err != nil {
		n.err = err
		return n
	}
	n.options.cfg = cfg
	return n
}

// PageCount returns the number of pages in the document. It does not
// close the source, so further operations can follow.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	return e.source.PageCount(), nil
}

// Results parses the configured pages and returns the per-page results in
// page order. This is a terminal operation that closes the source.
func (e *Extractor) Results(ctx context.Context) ([]schedule.PageResult, []Warning, error) {
	defer e.Close()

	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}

	pages, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	cfg := e.options.effectiveConfig()
	logging.Logger().Debug("extracting schedule",
		slog.String("file", e.filename),
		slog.Int("pages", len(pages)),
		slog.Int("workers", cfg.Workers),
	)

	results, err := schedule.Aggregate(ctx, e.source, pages, cfg)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, r := range results {
		warnings = append(warnings, pageWarnings(r)...)
	}
	return results, warnings, nil
}

// Rows extracts the schedule records of the configured pages in page
// order. This is a terminal operation that closes the source.
//
// Returns the rows, warnings about pages parsed with reduced confidence,
// and an error if the document could not be read.
//
// Example:
//
//	rows, warnings, err := examtable.Open("exams.pdf").Rows(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", examtable.FormatWarnings(warnings))
//	}
func (e *Extractor) Rows(ctx context.Context) ([]model.Row, []Warning, error) {
	results, warnings, err := e.Results(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := schedule.Concat(results)

	logging.Logger().Info("schedule extracted",
		slog.String("file", e.filename),
		slog.Int("rows", len(rows)),
		slog.Int("warnings", len(warnings)),
	)
	return rows, warnings, nil
}

// resolvePages converts the 1-indexed page selection to sorted, unique
// 0-indexed pages.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.source.PageCount()

	if len(e.options.pages) == 0 {
		indices := make([]int, pageCount)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	seen := make(map[int]bool)
	var indices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p-1] {
			seen[p-1] = true
			indices = append(indices, p-1)
		}
	}

	sort.Ints(indices)
	return indices, nil
}
