// Package reader turns a PDF file into positioned words, vector rectangles
// and plain page text.
//
// Glyph decoding is delegated to github.com/ledongthuc/pdf. This package
// converts its bottom-up glyph stream into words in top-down page
// coordinates, the form the layout package works with.
//
// # Opening PDF Files
//
//	r, err := reader.Open("exams.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for i := 0; i < r.PageCount(); i++ {
//	    page, err := r.Page(i) // 0-based
//	    ...
//	}
//
// # Word Assembly
//
// Consecutive glyphs in content-stream order are joined into one word while
// they share a baseline (within [WordConfig].YTolerance) and the horizontal
// gap stays within [WordConfig].XTolerance. Whitespace glyphs always end a
// word. Word text is normalised to Unicode NFC so that accented header
// labels compare equal regardless of how the PDF encoded them.
package reader
