package reader

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/examtable/model"
)

// Glyph box proportions relative to the font size, measured from the
// baseline.
const (
	ascentRatio  = 0.8
	descentRatio = 0.2
)

// WordConfig holds the tolerances used to join glyphs into words
type WordConfig struct {
	// XTolerance is the largest horizontal gap between two glyphs of the
	// same word (default: 3 points)
	XTolerance float64

	// YTolerance is the largest baseline shift between two glyphs of the
	// same word (default: 3 points)
	YTolerance float64
}

// DefaultWordConfig returns the tolerances used by Open
func DefaultWordConfig() WordConfig {
	return WordConfig{
		XTolerance: 3,
		YTolerance: 3,
	}
}

// wordBuilder accumulates glyphs for the word being assembled
type wordBuilder struct {
	text     strings.Builder
	x0, x1   float64
	baseline float64
	top      float64 // highest glyph top, bottom-up coordinates
	bottom   float64 // lowest glyph bottom, bottom-up coordinates
	open     bool
}

func (w *wordBuilder) add(g pdf.Text) {
	top := g.Y + g.FontSize*ascentRatio
	bottom := g.Y - g.FontSize*descentRatio
	if !w.open {
		w.x0, w.x1 = g.X, g.X+g.W
		w.baseline = g.Y
		w.top, w.bottom = top, bottom
		w.open = true
	} else {
		w.x0 = min(w.x0, g.X)
		w.x1 = max(w.x1, g.X+g.W)
		w.top = max(w.top, top)
		w.bottom = min(w.bottom, bottom)
	}
	w.text.WriteString(g.S)
}

// continues reports whether g belongs to the open word
func (w *wordBuilder) continues(g pdf.Text, cfg WordConfig) bool {
	if !w.open {
		return false
	}
	if abs(g.Y-w.baseline) > cfg.YTolerance {
		return false
	}
	gap := g.X - w.x1
	return gap <= cfg.XTolerance && g.X >= w.x0-cfg.XTolerance
}

func (w *wordBuilder) flush(height float64, page int) (model.Token, bool) {
	if !w.open {
		return model.Token{}, false
	}
	txt := norm.NFC.String(strings.TrimSpace(w.text.String()))
	tok := model.Token{
		Text: txt,
		BBox: model.BBox{
			X0:     w.x0,
			Top:    height - w.top,
			X1:     w.x1,
			Bottom: height - w.bottom,
		},
		Page: page,
	}
	w.text.Reset()
	w.open = false
	return tok, txt != ""
}

// AssembleWords joins glyphs, in content-stream order, into words. height
// is the page height used to flip coordinates to top-down.
func AssembleWords(glyphs []pdf.Text, height float64, page int, cfg WordConfig) []model.Token {
	var (
		tokens []model.Token
		w      wordBuilder
	)

	emit := func() {
		if tok, ok := w.flush(height, page); ok {
			tokens = append(tokens, tok)
		}
	}

	for _, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			emit()
			continue
		}
		// Glyph strings that carry inner spaces are split into words that
		// share the glyph's box proportionally.
		if strings.ContainsAny(strings.TrimSpace(g.S), " \t") {
			emit()
			for _, part := range splitGlyph(g) {
				w.add(part)
				emit()
			}
			continue
		}
		if !w.continues(g, cfg) {
			emit()
		}
		w.add(g)
	}
	emit()

	return tokens
}

// splitGlyph breaks a multi-word glyph run into one pseudo glyph per word
func splitGlyph(g pdf.Text) []pdf.Text {
	runes := []rune(g.S)
	if len(runes) == 0 {
		return nil
	}
	perRune := g.W / float64(len(runes))

	var (
		parts []pdf.Text
		start = -1
	)
	for i := 0; i <= len(runes); i++ {
		space := i == len(runes) || runes[i] == ' ' || runes[i] == '\t'
		if !space && start < 0 {
			start = i
		}
		if space && start >= 0 {
			part := g
			part.S = string(runes[start:i])
			part.X = g.X + float64(start)*perRune
			part.W = float64(i-start) * perRune
			parts = append(parts, part)
			start = -1
		}
	}
	return parts
}

// PageText renders tokens as plain text: tokens whose vertical midpoints
// lie within yTolerance share a line, lines run top to bottom and words
// left to right.
func PageText(tokens []model.Token, yTolerance float64) string {
	if len(tokens) == 0 {
		return ""
	}

	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].YMid() < sorted[j].YMid()
	})

	var lines [][]model.Token
	current := []model.Token{sorted[0]}
	lineY := sorted[0].YMid()
	for _, t := range sorted[1:] {
		if t.YMid()-lineY <= yTolerance {
			current = append(current, t)
			continue
		}
		lines = append(lines, current)
		current = []model.Token{t}
		lineY = t.YMid()
	}
	lines = append(lines, current)

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sort.SliceStable(line, func(a, b int) bool {
			return line[a].X0 < line[b].X0
		})
		for j, t := range line {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}
