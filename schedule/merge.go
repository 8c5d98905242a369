package schedule

import "github.com/tsawler/examtable/model"

// pageState is the merge state of one page. It never outlives the page.
type pageState struct {
	carryDate string
	carryDay  string
	open      int // index of the open record, -1 when none
}

// Merger folds the normalised lines of one page, top to bottom, into
// schedule records.
type Merger struct {
	semester string
	table    model.Table
	state    pageState
}

// NewMerger creates a merger for a page whose records carry semester
func NewMerger(semester string) *Merger {
	return &Merger{
		semester: semester,
		state:    pageState{open: -1},
	}
}

// Add processes the next line and reports how it was classified.
//
// Date and Day are carried forward before the line is classified, so a
// line that is dropped can still set them for the lines below it.
func (m *Merger) Add(line model.Line) Kind {
	if d := line.Get(model.ColDate); d != "" {
		m.state.carryDate = d
	}
	if d := line.Get(model.ColDay); d != "" {
		m.state.carryDay = d
	}

	open, hasOpen := m.table.Get(m.state.open)
	kind := Classify(line, hasOpen)

	switch kind {
	case FullRow:
		room, course := SplitRoomCourse(line.Get(model.ColRoom), line.Get(model.ColCourse))
		m.state.open = m.table.Append(model.Row{
			Semester: m.semester,
			Date:     m.state.carryDate,
			Day:      m.state.carryDay,
			Time:     line.Get(model.ColTime),
			Room:     room,
			Course:   course,
		})
	case GroupedCourse:
		m.state.open = m.table.Append(model.Row{
			Semester: m.semester,
			Date:     m.state.carryDate,
			Day:      m.state.carryDay,
			Time:     open.Time,
			Room:     open.Room,
			Course:   line.Get(model.ColCourse),
		})
	case Continuation:
		m.table.AppendCourse(m.state.open, line.Get(model.ColCourse))
	}

	return kind
}

// Rows returns the records produced so far
func (m *Merger) Rows() []model.Row {
	return m.table.Rows
}

// MergeLines folds the lines of one page into records
func MergeLines(lines []model.Line, semester string) []model.Row {
	m := NewMerger(semester)
	for _, l := range lines {
		m.Add(l)
	}
	return m.Rows()
}
