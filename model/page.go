package model

import "strings"

// Token is a positioned word extracted from a page.
type Token struct {
	Text string
	BBox
	Page int // 0-based page index
}

// Rect is a vector rectangle drawn on a page.
type Rect struct {
	BBox
}

// PageContent holds the words, rectangles and plain text of one page.
type PageContent struct {
	// Index is the 0-based page index within the document
	Index int

	// Width and Height are the page dimensions in points
	Width  float64
	Height float64

	// Tokens are the words on the page in content-stream order
	Tokens []Token

	// Rects are the vector rectangles drawn on the page
	Rects []Rect

	// Text is the page's plain text, one visual line per text line
	Text string
}

// PlainText returns Text, or the tokens joined with spaces when the
// extractor did not supply page text.
func (p PageContent) PlainText() string {
	if p.Text != "" {
		return p.Text
	}
	words := make([]string, 0, len(p.Tokens))
	for _, t := range p.Tokens {
		words = append(words, t.Text)
	}
	return strings.Join(words, " ")
}

// TokenExtent returns the horizontal range covered by the page's tokens.
// ok is false when the page has no tokens.
func (p PageContent) TokenExtent() (left, right float64, ok bool) {
	if len(p.Tokens) == 0 {
		return 0, 0, false
	}
	box := p.Tokens[0].BBox
	for _, t := range p.Tokens[1:] {
		box = box.Union(t.BBox)
	}
	return box.X0, box.X1, true
}
