package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/examtable/model"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// WriteHTML writes rows as a standalone HTML page with a single table
func WriteHTML(w io.Writer, rows []model.Row) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, html.Attribute{Key: "lang", Val: "el"})
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(textElement(atom.Title, "Exam schedule"))
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	table := element(atom.Table)
	body.AppendChild(table)

	thead := element(atom.Thead)
	tr := element(atom.Tr)
	for _, name := range model.RowFields {
		tr.AppendChild(textElement(atom.Th, name))
	}
	thead.AppendChild(tr)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, r := range rows {
		tr := element(atom.Tr)
		for _, v := range r.Values() {
			tr.AppendChild(textElement(atom.Td, v))
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// ReadHTMLTable parses the first table of an HTML document. The first row
// made of th cells, or the rows of thead, becomes the header.
func ReadHTMLTable(r io.Reader) (Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Table{}, fmt.Errorf("parse html: %w", err)
	}

	tableNode := findElement(doc, atom.Table)
	if tableNode == nil {
		return Table{}, nil
	}

	var t Table
	var addRow func(tr *html.Node, header bool)
	addRow = func(tr *html.Node, header bool) {
		var cells []string
		allTH := true
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
				continue
			}
			if c.DataAtom != atom.Th {
				allTH = false
			}
			cells = append(cells, textContent(c))
		}
		if len(cells) == 0 {
			return
		}
		if t.Header == nil && (header || allTH) {
			t.Header = cells
			return
		}
		t.Records = append(t.Records, cells)
	}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.DataAtom == atom.Tr {
					addRow(tr, c.DataAtom == atom.Thead)
				}
			}
		case atom.Tr:
			addRow(c, false)
		}
	}
	return t, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
