package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/examtable/model"
)

// ErrPageRange is returned when a page index is outside the document.
var ErrPageRange = errors.New("reader: page index out of range")

// Reader reads pages from a PDF file. Page is safe for concurrent use;
// calls are serialised because the underlying decoder is not.
type Reader struct {
	file  *os.File
	pdf   *pdf.Reader
	words WordConfig

	mu sync.Mutex
}

// Open opens a PDF file and returns a Reader
func Open(filename string) (*Reader, error) {
	return OpenWithConfig(filename, DefaultWordConfig())
}

// OpenWithConfig opens a PDF file using custom word assembly settings. The
// file is closed again on every failure path.
func OpenWithConfig(filename string, cfg WordConfig) (r *Reader, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer func() {
		if err != nil {
			f.Close()
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}

	pr, err := newPDFReader(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}

	return &Reader{
		file:  f,
		pdf:   pr,
		words: cfg,
	}, nil
}

// newPDFReader wraps pdf.NewReader, which panics on some malformed files
// instead of returning an error.
func newPDFReader(f io.ReaderAt, size int64) (pr *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pr, err = nil, fmt.Errorf("malformed PDF: %v", rec)
		}
	}()
	return pdf.NewReader(f, size)
}

// Close closes the PDF file. It is safe to call Close multiple times.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.pdf = nil
	return err
}

// PageCount returns the number of pages in the PDF
func (r *Reader) PageCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pdf == nil {
		return 0
	}
	return r.pdf.NumPage()
}

// Page extracts the words, rectangles and text of the page at the given
// index (0-based).
func (r *Reader) Page(index int) (content model.PageContent, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pdf == nil {
		return model.PageContent{}, errors.New("reader: closed")
	}
	if index < 0 || index >= r.pdf.NumPage() {
		return model.PageContent{}, fmt.Errorf("%w: %d", ErrPageRange, index+1)
	}

	defer func() {
		if rec := recover(); rec != nil {
			content, err = model.PageContent{}, fmt.Errorf("page %d: malformed content: %v", index+1, rec)
		}
	}()

	p := r.pdf.Page(index + 1)
	if p.V.IsNull() {
		return model.PageContent{}, fmt.Errorf("page %d: missing page object", index+1)
	}

	c := p.Content()
	width, height, ok := mediaBox(p.V)
	if !ok {
		width, height = contentExtent(c)
	}

	tokens := AssembleWords(c.Text, height, index, r.words)
	return model.PageContent{
		Index:  index,
		Width:  width,
		Height: height,
		Tokens: tokens,
		Rects:  convertRects(c.Rect, height),
		Text:   PageText(tokens, r.words.YTolerance),
	}, nil
}

// mediaBox returns the page size, following inherited attributes up the
// page tree.
func mediaBox(v pdf.Value) (width, height float64, ok bool) {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			x0, y0 := box.Index(0).Float64(), box.Index(1).Float64()
			x1, y1 := box.Index(2).Float64(), box.Index(3).Float64()
			return abs(x1 - x0), abs(y1 - y0), true
		}
		v = v.Key("Parent")
	}
	return 0, 0, false
}

// contentExtent estimates the page size from what is drawn on it
func contentExtent(c pdf.Content) (width, height float64) {
	for _, t := range c.Text {
		width = max(width, t.X+t.W)
		height = max(height, t.Y+t.FontSize)
	}
	for _, r := range c.Rect {
		width = max(width, r.Max.X, r.Min.X)
		height = max(height, r.Max.Y, r.Min.Y)
	}
	return width, height
}

// convertRects flips rectangles into top-down coordinates
func convertRects(rects []pdf.Rect, height float64) []model.Rect {
	if len(rects) == 0 {
		return nil
	}
	out := make([]model.Rect, 0, len(rects))
	for _, r := range rects {
		out = append(out, model.Rect{BBox: model.NewBBoxFromPoints(
			model.Point{X: r.Min.X, Y: height - r.Min.Y},
			model.Point{X: r.Max.X, Y: height - r.Max.Y},
		)})
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
