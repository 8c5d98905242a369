package layout

import "github.com/tsawler/examtable/model"

// OuterRect returns the largest rectangle wider than minWidth and taller
// than minHeight. ok is false when no rectangle qualifies, which callers
// treat as "do not filter by position".
func OuterRect(rects []model.Rect, minWidth, minHeight float64) (best model.BBox, ok bool) {
	var bestArea float64
	for _, r := range rects {
		if r.IsEmpty() || r.Width() <= minWidth || r.Height() <= minHeight {
			continue
		}
		if area := r.Area(); area > bestArea {
			best, bestArea, ok = r.BBox, area, true
		}
	}
	return best, ok
}
