// Package pdftest writes small single-font PDF files for tests.
//
// Text may use ASCII and upper-case Greek letters. Greek letters are mapped
// into the upper half of a Type1 font through an /Encoding /Differences
// array, so readers decode them back to Unicode by glyph name. Every
// glyph is 600/1000 em wide.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GlyphWidth is the advance of every glyph in text space units per em
const GlyphWidth = 600

// Text is a run of text drawn with its baseline at (X, Y) in PDF user
// space (origin bottom-left).
type Text struct {
	X, Y float64
	Size float64
	S    string
}

// Rect is a stroked rectangle in PDF user space.
type Rect struct {
	X, Y, W, H float64
}

// Page is one page to draw. Zero Width and Height mean A4 portrait.
type Page struct {
	Width, Height float64
	Texts         []Text
	Rects         []Rect
}

// greek lists the glyph names of the capital letters in code order from 128
var greek = []struct {
	r    rune
	name string
}{
	{'Α', "Alpha"}, {'Β', "Beta"}, {'Γ', "Gamma"}, {'Δ', "Deltagreek"},
	{'Ε', "Epsilon"}, {'Ζ', "Zeta"}, {'Η', "Eta"}, {'Θ', "Theta"},
	{'Ι', "Iota"}, {'Κ', "Kappa"}, {'Λ', "Lambda"}, {'Μ', "Mu"},
	{'Ν', "Nu"}, {'Ξ', "Xi"}, {'Ο', "Omicron"}, {'Π', "Pi"},
	{'Ρ', "Rho"}, {'Σ', "Sigma"}, {'Τ', "Tau"}, {'Υ', "Upsilon"},
	{'Φ', "Phi"}, {'Χ', "Chi"}, {'Ψ', "Psi"}, {'Ω', "Omegagreek"},
}

// encode converts s to font codes written as a PDF literal string
func encode(s string) (string, error) {
	var b strings.Builder
	b.WriteByte('(')
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r >= 32 && r < 127:
			b.WriteRune(r)
		default:
			code := -1
			for i, g := range greek {
				if g.r == r {
					code = 128 + i
					break
				}
			}
			if code < 0 {
				return "", fmt.Errorf("pdftest: cannot encode %q", r)
			}
			fmt.Fprintf(&b, "\\%03o", code)
		}
	}
	b.WriteByte(')')
	return b.String(), nil
}

func contentStream(p Page) ([]byte, error) {
	var b bytes.Buffer
	for _, r := range p.Rects {
		fmt.Fprintf(&b, "%.2f %.2f %.2f %.2f re S\n", r.X, r.Y, r.W, r.H)
	}
	for _, t := range p.Texts {
		s, err := encode(t.S)
		if err != nil {
			return nil, err
		}
		size := t.Size
		if size == 0 {
			size = 10
		}
		fmt.Fprintf(&b, "BT /F1 %.2f Tf %.2f %.2f Td %s Tj ET\n", size, t.X, t.Y, s)
	}
	return b.Bytes(), nil
}

func fontObject() string {
	widths := strings.TrimSpace(strings.Repeat(fmt.Sprintf("%d ", GlyphWidth), 256-32))
	names := make([]string, len(greek))
	for i, g := range greek {
		names[i] = "/" + g.name
	}
	return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica "+
		"/FirstChar 32 /LastChar 255 /Widths [%s] "+
		"/Encoding << /Type /Encoding /Differences [128 %s] >> >>",
		widths, strings.Join(names, " "))
}

// Build renders pages into a complete PDF file.
func Build(pages ...Page) ([]byte, error) {
	// objects: 1 catalog, 2 page tree, 3 font, then a page and its
	// content stream per page
	var objects []string
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		fontObject(),
	)

	for i, p := range pages {
		w, h := p.Width, p.Height
		if w == 0 || h == 0 {
			w, h = 595, 842
		}
		content, err := contentStream(p)
		if err != nil {
			return nil, err
		}
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", w, h, 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return b.Bytes(), nil
}

// WriteFile builds pages and writes them to name inside a temporary
// directory of t, returning the path.
func WriteFile(t testing.TB, name string, pages ...Page) string {
	t.Helper()
	data, err := Build(pages...)
	if err != nil {
		t.Fatalf("building PDF: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing PDF: %v", err)
	}
	return path
}

// Width returns the drawn width of s at the given font size
func Width(s string, size float64) float64 {
	return float64(len([]rune(s))) * GlyphWidth / 1000 * size
}
