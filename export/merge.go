package export

import (
	"fmt"
	"io"
	"os"
)

// Merge concatenates tables. Every table's columns are arranged to match
// the header of the first one.
func Merge(tables ...Table) (Table, error) {
	if len(tables) == 0 {
		return Table{}, ErrNoInput
	}

	out := Table{Header: append([]string(nil), tables[0].Header...)}
	for _, t := range tables {
		out.Records = append(out.Records, t.Reorder(out.Header).Records...)
	}
	return out, nil
}

// MergeFiles reads the CSV or HTML tables at paths, merges them and writes
// the result to w in format f. CSV output keeps the first file's header;
// JSON and HTML output carry the schedule row fields only. It returns the
// number of records written.
func MergeFiles(w io.Writer, f Format, paths ...string) (int, error) {
	if len(paths) == 0 {
		return 0, ErrNoInput
	}

	tables := make([]Table, 0, len(paths))
	for _, p := range paths {
		t, err := readTableFile(p)
		if err != nil {
			return 0, err
		}
		tables = append(tables, t)
	}

	merged, err := Merge(tables...)
	if err != nil {
		return 0, err
	}

	if f == CSV {
		err = WriteTable(w, merged)
	} else {
		err = Write(w, f, merged.Rows())
	}
	if err != nil {
		return 0, err
	}
	return len(merged.Records), nil
}

// readTableFile reads an HTML table when the name says so and CSV
// otherwise.
func readTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	read := ReadTable
	if Detect(path) == HTML {
		read = ReadHTMLTable
	}
	t, err := read(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
