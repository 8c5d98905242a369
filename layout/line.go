package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/examtable/model"
)

// VisualLine is a set of tokens judged to share one table row
type VisualLine struct {
	// Y is the representative vertical midpoint (median of the chain)
	Y float64

	// Tokens are the member tokens in input order
	Tokens []model.Token
}

// TableTokens keeps the tokens that can belong to table body rows: those
// whose vertical midpoint is at least one point below the header row and,
// when an outline is known, whose top-left corner lies inside it expanded
// by slack.
func TableTokens(tokens []model.Token, headers HeaderBoxes, outline *model.BBox, slack float64) []model.Token {
	topData := headers.Bottom() + 1

	var region model.BBox
	if outline != nil {
		region = outline.Expand(slack)
	}

	kept := make([]model.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.YMid() < topData {
			continue
		}
		if outline != nil && !region.Contains(model.Point{X: t.X0, Y: t.Top}) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// ClusterLines groups tokens into visual lines. Distinct vertical midpoints
// are sorted and chained while consecutive values differ by at most
// tolerance, so two tokens within tolerance always share a line even when
// the chain as a whole spans more. Lines are returned top to bottom.
func ClusterLines(tokens []model.Token, tolerance float64) []VisualLine {
	if len(tokens) == 0 {
		return nil
	}

	ys := make([]float64, 0, len(tokens))
	seen := make(map[float64]bool, len(tokens))
	for _, t := range tokens {
		y := t.YMid()
		if !seen[y] {
			seen[y] = true
			ys = append(ys, y)
		}
	}
	sort.Float64s(ys)

	chainOf := make(map[float64]int, len(ys))
	var chains [][]float64
	for i, y := range ys {
		if i == 0 || y-ys[i-1] > tolerance {
			chains = append(chains, nil)
		}
		last := len(chains) - 1
		chains[last] = append(chains[last], y)
		chainOf[y] = last
	}

	lines := make([]VisualLine, len(chains))
	for i, c := range chains {
		// c is already sorted; take the upper median
		lines[i].Y = c[len(c)/2]
	}
	for _, t := range tokens {
		i := chainOf[t.YMid()]
		lines[i].Tokens = append(lines[i].Tokens, t)
	}
	return lines
}

// columnIndex returns the column whose boundaries enclose x. Positions left
// of the first boundary clamp to column 0, positions right of the last to
// the last column.
func columnIndex(bounds []float64, x float64) int {
	for i := 0; i < len(bounds)-1; i++ {
		if bounds[i] <= x && x <= bounds[i+1] {
			return i
		}
	}
	if x < bounds[0] {
		return 0
	}
	return len(bounds) - 2
}

// AssignColumns splits a visual line into per-column text. Tokens are
// placed by horizontal midpoint, visited left to right, and joined with
// single spaces. The result has len(bounds)-1 entries.
func AssignColumns(line VisualLine, bounds []float64) []string {
	if len(bounds) < 2 {
		return nil
	}

	sorted := make([]model.Token, len(line.Tokens))
	copy(sorted, line.Tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].XMid() < sorted[j].XMid()
	})

	parts := make([][]string, len(bounds)-1)
	for _, t := range sorted {
		col := columnIndex(bounds, t.XMid())
		parts[col] = append(parts[col], t.Text)
	}

	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(strings.Join(p, " "))
	}
	return out
}

// BuildLines clusters tokens into visual lines and splits each into column
// text, top to bottom.
func BuildLines(tokens []model.Token, bounds []float64, tolerance float64) [][]string {
	visual := ClusterLines(tokens, tolerance)
	out := make([][]string, 0, len(visual))
	for _, vl := range visual {
		out = append(out, AssignColumns(vl, bounds))
	}
	return out
}
