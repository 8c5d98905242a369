package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/examtable/model"
)

// Table is a CSV table: a header and its records.
type Table struct {
	Header  []string
	Records [][]string
}

// WriteCSV writes rows as CSV with a byte order mark and the header
// Semester,Date,Day,Time,Room,Course.
func WriteCSV(w io.Writer, rows []model.Row) error {
	t := Table{Header: model.RowFields, Records: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Records = append(t.Records, r.Values())
	}
	return WriteTable(w, t)
}

// WriteTable writes a header and records as CSV with a byte order mark
func WriteTable(w io.Writer, t Table) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Records); err != nil {
		return fmt.Errorf("write csv records: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadTable reads a CSV table, dropping a leading byte order mark.
// Records shorter than the header are padded with empty fields.
func ReadTable(r io.Reader) (Table, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1

	all, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return Table{}, nil
	}

	t := Table{Header: all[0]}
	for _, rec := range all[1:] {
		for len(rec) < len(t.Header) {
			rec = append(rec, "")
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// Rows converts the table into schedule rows. Columns are matched by
// header name, so their order may differ from RowFields.
func (t Table) Rows() []model.Row {
	t = t.Reorder(model.RowFields)

	rows := make([]model.Row, 0, len(t.Records))
	for _, rec := range t.Records {
		rows = append(rows, model.Row{
			Semester: rec[0],
			Date:     rec[1],
			Day:      rec[2],
			Time:     rec[3],
			Room:     rec[4],
			Course:   rec[5],
		})
	}
	return rows
}

// Reorder returns the table with its columns arranged as header. Columns
// missing from t become empty, columns not named in header are dropped.
func (t Table) Reorder(header []string) Table {
	pos := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		if _, seen := pos[h]; !seen {
			pos[h] = i
		}
	}

	out := Table{
		Header:  append([]string(nil), header...),
		Records: make([][]string, 0, len(t.Records)),
	}
	for _, rec := range t.Records {
		row := make([]string, len(header))
		for i, h := range header {
			if j, ok := pos[h]; ok && j < len(rec) {
				row[i] = rec[j]
			}
		}
		out.Records = append(out.Records, row)
	}
	return out
}
