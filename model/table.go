package model

import "strings"

// Column identifies one of the six physical columns of an exam schedule.
type Column int

const (
	ColDate Column = iota
	ColDay
	ColTime
	ColRoom
	ColCourse
	ColExaminer
)

// NumColumns is the number of physical columns in a schedule table
const NumColumns = 6

// String returns a string representation of the column
func (c Column) String() string {
	switch c {
	case ColDate:
		return "date"
	case ColDay:
		return "day"
	case ColTime:
		return "time"
	case ColRoom:
		return "room"
	case ColCourse:
		return "course"
	case ColExaminer:
		return "examiner"
	default:
		return "unknown"
	}
}

// Line is one visual row of the table split into the six physical columns.
type Line [NumColumns]string

// Get returns the trimmed text of a column
func (l Line) Get(c Column) string {
	if c < 0 || int(c) >= NumColumns {
		return ""
	}
	return strings.TrimSpace(l[c])
}

// Text returns the columns joined with single spaces
func (l Line) Text() string {
	return strings.Join(l[:], " ")
}

// Row is a finished schedule record. Field names are part of the output
// contract consumed downstream and must not change.
type Row struct {
	Semester string `json:"Semester"`
	Date     string `json:"Date"`
	Day      string `json:"Day"`
	Time     string `json:"Time"`
	Room     string `json:"Room"`
	Course   string `json:"Course"`
}

// RowFields lists the output field names in column order
var RowFields = []string{"Semester", "Date", "Day", "Time", "Room", "Course"}

// Values returns the row's fields in RowFields order
func (r Row) Values() []string {
	return []string{r.Semester, r.Date, r.Day, r.Time, r.Room, r.Course}
}

// Table is a growable list of rows. Rows are addressed by index so that the
// most recently opened row can be extended without sharing pointers into
// the slice.
type Table struct {
	Rows []Row
}

// Append adds a row and returns its index
func (t *Table) Append(r Row) int {
	t.Rows = append(t.Rows, r)
	return len(t.Rows) - 1
}

// AppendCourse appends text to the Course of the row at index i, separated
// by a single space. Out-of-range indexes are ignored.
func (t *Table) AppendCourse(i int, text string) {
	if i < 0 || i >= len(t.Rows) {
		return
	}
	t.Rows[i].Course = strings.TrimSpace(t.Rows[i].Course + " " + text)
}

// Get returns the row at index i
func (t *Table) Get(i int) (Row, bool) {
	if i < 0 || i >= len(t.Rows) {
		return Row{}, false
	}
	return t.Rows[i], true
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Extend appends all rows of other, preserving their order
func (t *Table) Extend(other []Row) {
	t.Rows = append(t.Rows, other...)
}
