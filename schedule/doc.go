// Package schedule turns the visual lines of a schedule page into finished
// records and aggregates them across pages.
//
// A page goes through [ParsePage]: layout analysis yields column text per
// visual line, [NormalizeLine] drops repeated header rows and pads lines to
// six fields, and a [Merger] classifies each line (see [Classify]) to
// either start a record, add a course under the current time slot, extend
// the current course, or drop the line.
//
// [Aggregate] runs ParsePage over many pages with a bounded number of
// workers and returns the results in page order. Pages share no state.
package schedule
