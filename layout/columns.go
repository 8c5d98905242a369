package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/examtable/config"
	"github.com/tsawler/examtable/model"
)

// dateRE matches a complete D/M/YYYY date token. Digits are any Unicode
// decimal digit; Go's \d would match ASCII only.
var dateRE = regexp.MustCompile(`^\p{Nd}{1,2}/\p{Nd}{1,2}/\p{Nd}{4}$`)

// BoundarySource tells how a page's column boundaries were obtained
type BoundarySource int

const (
	// BoundariesNone means the page had no words to split
	BoundariesNone BoundarySource = iota
	// BoundariesHeaders means boundaries were derived from header positions
	BoundariesHeaders
	// BoundariesRecoveredDate means header boundaries plus a recovered date column
	BoundariesRecoveredDate
	// BoundariesFallback means the equal-width split was used
	BoundariesFallback
)

// String returns a string representation of the boundary source
func (s BoundarySource) String() string {
	switch s {
	case BoundariesHeaders:
		return "headers"
	case BoundariesRecoveredDate:
		return "headers+date"
	case BoundariesFallback:
		return "fallback"
	default:
		return "none"
	}
}

// InferBoundaries derives column cut points from header positions. It
// returns nil when fewer than cfg.MinHeaders labels were found.
//
// The first cut sits HeaderMargin left of the leftmost header, the last one
// HeaderMargin right of the rightmost header, and every inner cut halfway
// between one header's right edge and the next header's left edge. When the
// date header is missing, the left edge of the leftmost date-looking word
// at or below the header row adds one more cut.
func InferBoundaries(headers HeaderBoxes, tokens []model.Token, cfg config.Config) (bounds []float64, recovered bool) {
	if len(headers) < cfg.MinHeaders {
		return nil, false
	}

	cols := headers.sortedByLeft()
	bounds = make([]float64, 0, len(cols)+2)
	bounds = append(bounds, cols[0].X0-cfg.HeaderMargin)
	for i := 0; i < len(cols)-1; i++ {
		bounds = append(bounds, (cols[i].X1+cols[i+1].X0)/2)
	}
	bounds = append(bounds, cols[len(cols)-1].X1+cfg.HeaderMargin)

	if !headers.Has(LabelDate) {
		if x0, ok := leftmostDate(tokens, headers.Top()-cfg.DateSlack); ok {
			bounds = append(bounds, x0-cfg.HeaderMargin)
			recovered = true
		}
	}

	sort.Float64s(bounds)
	return bounds, recovered
}

// leftmostDate returns the smallest left edge among date words whose top
// lies below minTop.
func leftmostDate(tokens []model.Token, minTop float64) (float64, bool) {
	var (
		x0    float64
		found bool
	)
	for _, t := range tokens {
		if t.Top <= minTop || !dateRE.MatchString(strings.TrimSpace(t.Text)) {
			continue
		}
		if !found || t.X0 < x0 {
			x0, found = t.X0, true
		}
	}
	return x0, found
}

// EqualWidthBoundaries splits the horizontal extent of the tokens, padded
// by padding on both sides, into n equal columns. It returns nil when there
// are no tokens.
func EqualWidthBoundaries(tokens []model.Token, padding float64, n int) []float64 {
	page := model.PageContent{Tokens: tokens}
	left, right, ok := page.TokenExtent()
	if !ok || n < 1 {
		return nil
	}
	left -= padding
	right += padding

	step := (right - left) / float64(n)
	bounds := make([]float64, n+1)
	for i := range bounds {
		bounds[i] = left + float64(i)*step
	}
	return bounds
}

// ResolveBoundaries returns the schedule's column cut points for a page:
// header-derived when they yield exactly the expected column count,
// otherwise the equal-width split over all page tokens.
func ResolveBoundaries(headers HeaderBoxes, tokens []model.Token, cfg config.Config) ([]float64, BoundarySource) {
	bounds, recovered := InferBoundaries(headers, tokens, cfg)
	if len(bounds) >= model.NumColumns+1 {
		if recovered {
			return bounds, BoundariesRecoveredDate
		}
		return bounds, BoundariesHeaders
	}

	bounds = EqualWidthBoundaries(tokens, cfg.FallbackPadding, model.NumColumns)
	if bounds == nil {
		return nil, BoundariesNone
	}
	return bounds, BoundariesFallback
}
