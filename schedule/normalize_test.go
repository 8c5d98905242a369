package schedule

import (
	"strings"
	"testing"

	"github.com/tsawler/examtable/model"
)

func TestIsRoomCode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ΗΛ", true},
		{"ΗΛ1", true},
		{"ΗΛ12", true},
		{"ΗΛ123", false},
		{"ΗΛ\u0662", true},
		{"ΚΥΠΕΣ", true},
		{"Α.Φ.Ε.", true},
		{"ΑΦΕ", false},
		{"Ψηφιακά", false},
		{"ηλ1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRoomCode(tt.in); got != tt.want {
			t.Errorf("IsRoomCode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitRoomCourse(t *testing.T) {
	tests := []struct {
		name       string
		room       string
		course     string
		wantRoom   string
		wantCourse string
	}{
		{"clean", "ΗΛ1", "Ψηφιακά Συστήματα", "ΗΛ1", "Ψηφιακά Συστήματα"},
		{"several rooms", "ΗΛ1 ΗΛ2 ΚΥΠΕΣ", "Φυσική", "ΗΛ1 ΗΛ2 ΚΥΠΕΣ", "Φυσική"},
		{"spill in order", "ΗΛ3 Εισαγωγή στην", "Πληροφορική", "ΗΛ3", "Εισαγωγή στην Πληροφορική"},
		{"spill into empty course", "Ανάλυση", "", "", "Ανάλυση"},
		{"empty room", "", "Μαθηματικά", "", "Μαθηματικά"},
		{"extra spaces", "  ΗΛ1   Α.Φ.Ε.  ", "Χημεία", "ΗΛ1 Α.Φ.Ε.", "Χημεία"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, course := SplitRoomCourse(tt.room, tt.course)
			if room != tt.wantRoom || course != tt.wantCourse {
				t.Errorf("SplitRoomCourse(%q, %q) = %q, %q; want %q, %q",
					tt.room, tt.course, room, course, tt.wantRoom, tt.wantCourse)
			}
			for _, w := range strings.Fields(room) {
				if !IsRoomCode(w) {
					t.Errorf("room keeps non-room word %q", w)
				}
			}
		})
	}
}

func TestIsHeaderEcho(t *testing.T) {
	tests := []struct {
		name string
		cols []string
		want bool
	}{
		{"full header", []string{"ΗΜΕΡ/ΝΙΑ", "ΗΜΕΡΑ", "ΩΡΑ", "ΑΙΘΟΥΣΑ", "ΜΑΘΗΜΑ", "ΕΞΕΤΑΣΤΗΣ"}, true},
		{"two labels", []string{"", "", "ΩΡΑ", "ΑΙΘΟΥΣΑ", "", ""}, true},
		{"labels inside one cell", []string{"", "", "", "", "ΜΑΘΗΜΑ ΕΞΕΤΑΣΤΗΣ", ""}, true},
		{"one label", []string{"", "", "", "", "ΜΑΘΗΜΑ", ""}, false},
		{"data", []string{"12/6/2024", "Τετάρτη", "9-12", "ΗΛ1", "Ψηφιακά", "Παπαδόπουλος"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		if got := IsHeaderEcho(tt.cols); got != tt.want {
			t.Errorf("%s: IsHeaderEcho() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeLine(t *testing.T) {
	line, ok := NormalizeLine([]string{" 12/6/2024 ", "Τετάρτη"})
	if !ok {
		t.Fatal("Expected data line to be kept")
	}
	want := model.Line{"12/6/2024", "Τετάρτη", "", "", "", ""}
	if line != want {
		t.Errorf("NormalizeLine() = %q, want %q", line, want)
	}

	line, ok = NormalizeLine([]string{"a", "b", "c", "d", "e", "f", "g", "h"})
	if !ok || line[5] != "f" {
		t.Errorf("Expected truncation to six fields, got %q", line)
	}

	if _, ok := NormalizeLine([]string{"ΗΜΕΡΟΜΗΝΙΑ", "ΗΜΕΡΑ"}); ok {
		t.Error("Expected header row to be dropped")
	}
}

func TestNormalizeLines(t *testing.T) {
	got := NormalizeLines([][]string{
		{"ΗΜΕΡΟΜΗΝΙΑ", "ΗΜΕΡΑ", "ΩΡΑ", "ΑΙΘΟΥΣΑ", "ΜΑΘΗΜΑ", "ΕΞΕΤΑΣΤΗΣ"},
		{"", "", "9-12", "ΗΛ1", "Φυσική", ""},
	})
	if len(got) != 1 || got[0].Get(model.ColCourse) != "Φυσική" {
		t.Errorf("Unexpected lines %q", got)
	}
}
