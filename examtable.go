// Package examtable rebuilds exam schedule tables from PDF files.
//
// Exam schedules are published as PDFs whose text layer carries only
// positioned words. examtable finds the column headers, clusters words into
// visual rows and merges wrapped or grouped lines into one record per exam.
//
// Basic usage:
//
//	rows, warnings, err := examtable.Open("exams.pdf").Rows(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", examtable.FormatWarnings(warnings))
//	}
//
// With options:
//
//	rows, _, err := examtable.Open("exams.pdf").
//	    Pages(1, 2).
//	    Workers(4).
//	    Rows(ctx)
//
// The lower-level reader, layout and schedule packages are also available.
package examtable

import (
	"github.com/tsawler/examtable/model"
	"github.com/tsawler/examtable/reader"
)

// Source supplies the positioned words of a document, one page at a time.
// *reader.Reader implements it.
type Source interface {
	PageCount() int
	Page(index int) (model.PageContent, error)
	Close() error
}

var _ Source = (*reader.Reader)(nil)

// openSource opens a PDF by file name
var openSource = func(filename string) (Source, error) {
	return reader.Open(filename)
}

// Open returns an Extractor for the PDF at filename. The file is opened
// lazily and closed by terminal operations such as Rows, or by Close.
//
// Example:
//
//	rows, warnings, err := examtable.Open("exams.pdf").Rows(ctx)
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor from an already opened Source. The
// Extractor closes the source when a terminal operation finishes.
func FromSource(src Source) *Extractor {
	return &Extractor{
		source:     src,
		ownsSource: true,
		opened:     true,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	count := examtable.Must(examtable.Open("exams.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRows wraps a call to Rows and panics if the error is non-nil. It
// discards warnings.
//
// Example:
//
//	rows := examtable.MustRows(examtable.Open("exams.pdf").Rows(ctx))
func MustRows[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
