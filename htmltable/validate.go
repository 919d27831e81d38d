package htmltable

import (
	"golang.org/x/net/html"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
)

// Validate confirms that n is a well-formed coordinate table: an element
// node, a <table>, with at least one <tr>. It has no side effects.
func Validate(n *html.Node) error {
	const op = "htmltable.Validate"

	if n == nil || n.Type != html.ElementNode {
		return errkind.New(errkind.Type, op, "expected an HTML element node")
	}
	if n.Data != "table" {
		return errkind.Newf(errkind.Value, op, "expected a <table> element, got <%s>", n.Data)
	}
	if len(findAll(n, "tr")) == 0 {
		return errkind.New(errkind.Value, op, "table has no rows")
	}
	return nil
}
