// Package export writes schedule rows to CSV, JSON and HTML and merges
// previously exported CSV or HTML tables.
//
// CSV output starts with a UTF-8 byte order mark so that spreadsheet
// applications pick the right encoding for Greek text. Readers accept input
// with or without the mark.
//
// Basic usage:
//
//	f, _ := os.Create("exams.csv")
//	defer f.Close()
//	err := export.Write(f, export.CSV, rows)
package export
