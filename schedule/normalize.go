package schedule

import (
	"regexp"
	"strings"

	"github.com/tsawler/examtable/layout"
	"github.com/tsawler/examtable/model"
)

// roomRE matches a single room code: the ΗΛ lecture halls, the computer
// centre and the amphitheatre.
var roomRE = regexp.MustCompile(`^(ΗΛ\p{Nd}{0,2}|ΚΥΠΕΣ|Α\.Φ\.Ε\.)$`)

// headerEchoThreshold is the number of header spellings that mark a line as
// a repeated header row.
const headerEchoThreshold = 2

var headerSpellings = layout.HeaderSpellings()

// IsRoomCode reports whether s is a single room code
func IsRoomCode(s string) bool {
	return roomRE.MatchString(s)
}

// IsHeaderEcho reports whether the joined line text contains at least two
// header spellings, as happens when the header row repeats on a page.
func IsHeaderEcho(cols []string) bool {
	joined := strings.Join(cols, " ")
	n := 0
	for _, h := range headerSpellings {
		if strings.Contains(joined, h) {
			n++
			if n >= headerEchoThreshold {
				return true
			}
		}
	}
	return false
}

// NormalizeLine pads or truncates column text to the six schedule columns
// and trims each field. ok is false for repeated header rows.
func NormalizeLine(cols []string) (line model.Line, ok bool) {
	if IsHeaderEcho(cols) {
		return model.Line{}, false
	}
	for i := 0; i < model.NumColumns && i < len(cols); i++ {
		line[i] = strings.TrimSpace(cols[i])
	}
	return line, true
}

// NormalizeLines applies NormalizeLine to every line, dropping header rows
func NormalizeLines(lines [][]string) []model.Line {
	out := make([]model.Line, 0, len(lines))
	for _, cols := range lines {
		if line, ok := NormalizeLine(cols); ok {
			out = append(out, line)
		}
	}
	return out
}

// SplitRoomCourse keeps only room codes in room. Every other word of the
// room field is moved, in order, to the front of course.
func SplitRoomCourse(room, course string) (string, string) {
	var keep, spill []string
	for _, w := range strings.Fields(room) {
		if IsRoomCode(w) {
			keep = append(keep, w)
		} else {
			spill = append(spill, w)
		}
	}

	newRoom := strings.Join(keep, " ")
	if len(spill) == 0 {
		return newRoom, course
	}
	if course == "" {
		return newRoom, strings.Join(spill, " ")
	}
	return newRoom, strings.TrimSpace(strings.Join(spill, " ") + " " + course)
}
