package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsawler/examtable/model"
)

const bom = "\xef\xbb\xbf"

var sampleRows = []model.Row{
	{Semester: "3", Date: "12/6/2024", Day: "Τετάρτη", Time: "9-12", Room: "ΗΛ1", Course: "Ψηφιακά Συστήματα"},
	{Semester: "3", Date: "12/6/2024", Day: "Τετάρτη", Time: "9-12", Room: "ΗΛ1", Course: ""},
	{Semester: "5", Date: "13/6/2024", Day: "Πέμπτη", Time: "12-3", Room: "", Course: "Δίκτυα, Εργαστήριο"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"csv", CSV},
		{"JSON", JSON},
		{" html ", HTML},
		{"htm", HTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("xlsx")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDetect(t *testing.T) {
	require.Equal(t, CSV, Detect("out/exams.CSV"))
	require.Equal(t, JSON, Detect("exams.json"))
	require.Equal(t, HTML, Detect("exams.htm"))
	require.Equal(t, Unknown, Detect("exams"))
	require.Equal(t, ".html", HTML.Extension())
	require.Equal(t, "unknown", Unknown.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, bom), "expected a byte order mark")
	require.Equal(t, 1, strings.Count(out, bom))

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, bom), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "Semester,Date,Day,Time,Room,Course", lines[0])
	require.Equal(t, "3,12/6/2024,Τετάρτη,9-12,ΗΛ1,Ψηφιακά Συστήματα", lines[1])
	require.Equal(t, `5,13/6/2024,Πέμπτη,12-3,,"Δίκτυα, Εργαστήριο"`, lines[3])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	require.Equal(t, bom+"Semester,Date,Day,Time,Room,Course\n", buf.String())
}

func TestTableRows_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows))

	tbl, err := ReadTable(&buf)
	require.NoError(t, err)
	require.Equal(t, sampleRows, tbl.Rows())
}

func TestReadTable_WithoutBOM(t *testing.T) {
	in := "Course,Semester\nΦυσική,1\nΧημεία\n"
	tbl, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"Course", "Semester"}, tbl.Header)
	require.Equal(t, [][]string{{"Φυσική", "1"}, {"Χημεία", ""}}, tbl.Records)
}

func TestReadTable_Empty(t *testing.T) {
	tbl, err := ReadTable(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, tbl.Header)
	require.Empty(t, tbl.Records)
}

func TestReorder(t *testing.T) {
	tbl := Table{
		Header:  []string{"Course", "Extra", "Semester"},
		Records: [][]string{{"Φυσική", "x", "1"}},
	}
	got := tbl.Reorder([]string{"Semester", "Date", "Course"})
	require.Equal(t, []string{"Semester", "Date", "Course"}, got.Header)
	require.Equal(t, [][]string{{"1", "", "Φυσική"}}, got.Records)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows[:1]))

	out := buf.String()
	require.Contains(t, out, `"Course": "Ψηφιακά Συστήματα"`)
	require.NotContains(t, out, `\u`)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	for _, k := range model.RowFields {
		require.Contains(t, decoded[0], k)
	}
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestWriteHTML(t *testing.T) {
	rows := append([]model.Row{}, sampleRows...)
	rows[0].Course = "C & <D>"

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, rows))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, `<meta charset="utf-8"/>`)
	require.Contains(t, out, "C &amp; &lt;D&gt;")

	tbl, err := ReadHTMLTable(&buf)
	require.NoError(t, err)
	require.Equal(t, model.RowFields, tbl.Header)
	require.Len(t, tbl.Records, len(rows))
	require.Equal(t, rows[0].Values(), tbl.Records[0])
}

func TestReadHTMLTable_HeaderFromTH(t *testing.T) {
	in := `<table><tr><th>A</th><th>B</th></tr><tr><td> 1 </td><td><b>2</b></td></tr></table>`
	tbl, err := ReadHTMLTable(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, tbl.Header)
	require.Equal(t, [][]string{{"1", "2"}}, tbl.Records)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Unknown, sampleRows)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMerge(t *testing.T) {
	a := Table{Header: []string{"Semester", "Course"}, Records: [][]string{{"1", "Α"}}}
	b := Table{Header: []string{"Course", "Semester"}, Records: [][]string{{"Β", "2"}, {"Γ", "3"}}}

	got, err := Merge(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"Semester", "Course"}, got.Header)
	require.Equal(t, [][]string{{"1", "Α"}, {"2", "Β"}, {"3", "Γ"}}, got.Records)

	_, err = Merge()
	require.ErrorIs(t, err, ErrNoInput)
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "winter.csv")
	second := filepath.Join(dir, "summer.csv")

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows[:2]))
	require.NoError(t, os.WriteFile(first, buf.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("Course,Time,Semester,Date,Day,Room\nΦυσική,9-12,2,1/7/2024,Δευτέρα,ΚΥΠΕΣ\n"), 0o644))

	var out bytes.Buffer
	n, err := MergeFiles(&out, CSV, first, second)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	tbl, err := ReadTable(&out)
	require.NoError(t, err)
	rows := tbl.Rows()
	require.Len(t, rows, 3)
	require.Equal(t, model.Row{Semester: "2", Date: "1/7/2024", Day: "Δευτέρα", Time: "9-12", Room: "ΚΥΠΕΣ", Course: "Φυσική"}, rows[2])
}

func TestMergeFiles_Errors(t *testing.T) {
	_, err := MergeFiles(&bytes.Buffer{}, CSV)
	require.ErrorIs(t, err, ErrNoInput)

	_, err = MergeFiles(&bytes.Buffer{}, CSV, filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "one.csv")
	require.NoError(t, os.WriteFile(path, []byte("Semester\n1\n"), 0o644))
	_, err = MergeFiles(&bytes.Buffer{}, Unknown, path)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMergeFiles_HTMLInputJSONOutput(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "winter.html")
	sheet := filepath.Join(dir, "summer.csv")

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sampleRows[:1]))
	require.NoError(t, os.WriteFile(page, buf.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(sheet, []byte(bom+"Semester,Course\n4,Φυσική\n"), 0o644))

	var out bytes.Buffer
	n, err := MergeFiles(&out, JSON, page, sheet)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var rows []model.Row
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Equal(t, []model.Row{sampleRows[0], {Semester: "4", Course: "Φυσική"}}, rows)
}
