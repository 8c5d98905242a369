package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/examtable/model"
)

// Label is a canonical header label
type Label string

const (
	LabelDate     Label = "DATE"
	LabelDay      Label = "DAY"
	LabelTime     Label = "TIME"
	LabelRoom     Label = "ROOM"
	LabelCourse   Label = "COURSE"
	LabelExaminer Label = "EXAMINER"
)

// headerAliases maps every header spelling found in the schedules to its
// canonical label.
var headerAliases = map[string]Label{
	"ΗΜΕΡΟΜΗΝΙΑ": LabelDate,
	"ΗΜΕΡ/ΝΙΑ":   LabelDate,
	"ΗΜΕΡΑ":      LabelDay,
	"ΩΡΑ":        LabelTime,
	"ΑΙΘΟΥΣΑ":    LabelRoom,
	"ΜΑΘΗΜΑ":     LabelCourse,
	"ΕΞΕΤΑΣΤΗΣ":  LabelExaminer,
}

// labelColumns maps labels to the physical column they head
var labelColumns = map[Label]model.Column{
	LabelDate:     model.ColDate,
	LabelDay:      model.ColDay,
	LabelTime:     model.ColTime,
	LabelRoom:     model.ColRoom,
	LabelCourse:   model.ColCourse,
	LabelExaminer: model.ColExaminer,
}

// CanonicalLabel returns the label a header spelling stands for
func CanonicalLabel(s string) (Label, bool) {
	l, ok := headerAliases[strings.TrimSpace(s)]
	return l, ok
}

// Column returns the physical column headed by the label
func (l Label) Column() (model.Column, bool) {
	c, ok := labelColumns[l]
	return c, ok
}

// HeaderSpellings returns every known header spelling in a stable order
func HeaderSpellings() []string {
	out := make([]string, 0, len(headerAliases))
	for s := range headerAliases {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// HeaderBoxes maps each header label found on a page to the box of its
// first occurrence.
type HeaderBoxes map[Label]model.BBox

// LocateHeaders records the box of the first token carrying each header
// label. Tokens are visited in the order given.
func LocateHeaders(tokens []model.Token) HeaderBoxes {
	boxes := make(HeaderBoxes)
	for _, t := range tokens {
		label, ok := CanonicalLabel(t.Text)
		if !ok {
			continue
		}
		if _, seen := boxes[label]; !seen {
			boxes[label] = t.BBox
		}
	}
	return boxes
}

// Has reports whether the label was found
func (h HeaderBoxes) Has(l Label) bool {
	_, ok := h[l]
	return ok
}

// Top returns the smallest top edge among the headers, 0 when empty
func (h HeaderBoxes) Top() float64 {
	first := true
	var top float64
	for _, b := range h {
		if first || b.Top < top {
			top = b.Top
			first = false
		}
	}
	return top
}

// Bottom returns the largest bottom edge among the headers, 0 when empty
func (h HeaderBoxes) Bottom() float64 {
	var bottom float64
	for _, b := range h {
		if b.Bottom > bottom {
			bottom = b.Bottom
		}
	}
	return bottom
}

// sortedByLeft returns the header boxes ordered by their left edge, ties
// broken by the column each label heads.
func (h HeaderBoxes) sortedByLeft() []model.BBox {
	labels := make([]Label, 0, len(h))
	for l := range h {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		bi, bj := h[labels[i]], h[labels[j]]
		if bi.X0 != bj.X0 {
			return bi.X0 < bj.X0
		}
		ci, _ := labels[i].Column()
		cj, _ := labels[j].Column()
		return ci < cj
	})

	boxes := make([]model.BBox, len(labels))
	for i, l := range labels {
		boxes[i] = h[l]
	}
	return boxes
}
