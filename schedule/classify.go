package schedule

import "github.com/tsawler/examtable/model"

// Kind is the classification of a normalised line
type Kind int

const (
	// Drop lines contribute nothing
	Drop Kind = iota
	// FullRow lines carry a time slot and a course and open a new record
	FullRow
	// GroupedCourse lines add another course under the open record's slot
	GroupedCourse
	// Continuation lines extend the open record's course text
	Continuation
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case FullRow:
		return "full"
	case GroupedCourse:
		return "grouped"
	case Continuation:
		return "continuation"
	default:
		return "drop"
	}
}

// Classify decides what a line does. hasOpen reports whether a record is
// open on the current page.
//
// A line without time and room that names an examiner is another exam in
// the open record's slot, even when its course cell is empty. Without an
// examiner, course text alone is the wrapped tail of the open course.
func Classify(line model.Line, hasOpen bool) Kind {
	var (
		timeSlot = line.Get(model.ColTime)
		room     = line.Get(model.ColRoom)
		course   = line.Get(model.ColCourse)
		examiner = line.Get(model.ColExaminer)
	)

	switch {
	case timeSlot != "" && course != "":
		return FullRow
	case !hasOpen || timeSlot != "" || room != "":
		return Drop
	case examiner != "":
		return GroupedCourse
	case course != "":
		return Continuation
	default:
		return Drop
	}
}
