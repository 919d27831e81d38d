// Package htmltable locates the coordinate table in a parsed HTML
// document, validates it, and extracts its (x, character, y) rows into
// coordinate records.
package htmltable

import (
	"strings"

	"golang.org/x/net/html"
)

// FindTable returns the first <table> element in the document, or nil
// when the document has none.
func FindTable(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	return findElement(n, "table")
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// findAll collects every descendant element with the given tag name, in
// document order.
func findAll(n *html.Node, tagName string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == tagName {
			found = append(found, c)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return found
}

// CellText extracts the trimmed text content of a node and its
// descendants.
func CellText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
