package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/examtable/model"
)

func TestClusterLines_Empty(t *testing.T) {
	if lines := ClusterLines(nil, 4); lines != nil {
		t.Errorf("Expected nil, got %v", lines)
	}
}

func TestClusterLines_Jitter(t *testing.T) {
	tokens := []model.Token{
		tok("b", 100, 201, 120, 211), // ymid 206
		tok("a", 10, 200, 30, 210),   // ymid 205
		tok("c", 200, 202.5, 220, 212.5),
		tok("d", 10, 230, 30, 240),
	}

	lines := ClusterLines(tokens, 4)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if len(lines[0].Tokens) != 3 || len(lines[1].Tokens) != 1 {
		t.Errorf("Unexpected line sizes %d, %d", len(lines[0].Tokens), len(lines[1].Tokens))
	}
	// ymids 205, 206, 207.5: upper median is 206
	if lines[0].Y != 206 {
		t.Errorf("Expected representative 206, got %.2f", lines[0].Y)
	}
	if lines[1].Y != 235 {
		t.Errorf("Expected second line at 235, got %.2f", lines[1].Y)
	}
}

func TestClusterLines_ChainIsTransitive(t *testing.T) {
	// Consecutive midpoints are 3.5pt apart; first and last are 10.5pt apart.
	tokens := []model.Token{
		tok("a", 10, 100, 20, 110),     // 105
		tok("b", 30, 103.5, 40, 113.5), // 108.5
		tok("c", 50, 107, 60, 117),     // 112
		tok("d", 70, 110.5, 80, 120.5), // 115.5
	}

	lines := ClusterLines(tokens, 4)
	if len(lines) != 1 {
		t.Fatalf("Expected one chained line, got %d", len(lines))
	}
	if len(lines[0].Tokens) != 4 {
		t.Errorf("Expected all 4 tokens on the line, got %d", len(lines[0].Tokens))
	}
}

func TestClusterLines_ExactTolerance(t *testing.T) {
	tokens := []model.Token{
		tok("a", 10, 100, 20, 110), // 105
		tok("b", 30, 104, 40, 114), // 109: exactly 4 apart
		tok("c", 50, 118.5, 60, 128.5),
	}
	lines := ClusterLines(tokens, 4)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if len(lines[0].Tokens) != 2 {
		t.Errorf("Expected tokens 4pt apart to share a line")
	}
}

func TestTableTokens(t *testing.T) {
	headers := LocateHeaders(scheduleHeaders())
	outline := model.BBox{X0: 40, Top: 90, X1: 560, Bottom: 700}

	tokens := []model.Token{
		tok("ΕΞΑΜΗΝΟ 3", 40, 40, 120, 50),  // title above headers
		tok("ΩΡΑ", 220, 100, 240, 110),      // header itself
		tok("9-12", 220, 105, 240, 115),     // ymid 110 < 111
		tok("ok", 220, 130, 240, 140),       // body
		tok("edge", 36, 130, 50, 140),       // within 5pt slack
		tok("outside", 30, 130, 50, 140),    // left of slack
		tok("footer", 100, 720, 200, 730),   // below outline
		tok("Σελίδα 1", 300, 702, 340, 712), // top within slack
	}

	got := TableTokens(tokens, headers, &outline, 5)
	var names []string
	for _, t := range got {
		names = append(names, t.Text)
	}
	want := []string{"ok", "edge", "Σελίδα 1"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("TableTokens() mismatch (-want +got):\n%s", diff)
	}

	if n := len(TableTokens(tokens, headers, nil, 5)); n != 5 {
		t.Errorf("Expected 5 tokens without an outline, got %d", n)
	}
}

func TestAssignColumns(t *testing.T) {
	bounds := []float64{40, 130, 202.5, 260, 345, 440, 550}
	line := VisualLine{Tokens: []model.Token{
		tok("Συστήματα", 405, 130, 450, 140),
		tok("12/6/2024", 50, 130, 95, 140),
		tok("Ψηφιακά", 360, 130, 400, 140),
		tok("far-left", 0, 130, 20, 140),
		tok("far-right", 600, 130, 640, 140),
		tok("ΗΛ1", 280, 130, 300, 140),
	}}

	got := AssignColumns(line, bounds)
	want := []string{"far-left 12/6/2024", "", "", "ΗΛ1", "Ψηφιακά Συστήματα", "far-right"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AssignColumns() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignColumns_BoundaryGoesLeft(t *testing.T) {
	bounds := []float64{0, 100, 200}
	line := VisualLine{Tokens: []model.Token{tok("mid", 90, 0, 110, 10)}}
	got := AssignColumns(line, bounds)
	if got[0] != "mid" {
		t.Errorf("Expected token on a boundary to take the left column, got %v", got)
	}
}

func TestBuildLines(t *testing.T) {
	bounds := []float64{0, 100, 200}
	tokens := []model.Token{
		tok("b1", 110, 220, 130, 230),
		tok("a1", 10, 200, 30, 210),
		tok("a2", 120, 201, 140, 211),
	}
	got := BuildLines(tokens, bounds, 4)
	want := [][]string{{"a1", "a2"}, {"", "b1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildLines() mismatch (-want +got):\n%s", diff)
	}
}
