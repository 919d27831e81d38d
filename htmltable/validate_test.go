package htmltable

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
)

func TestValidate_WellFormedTable(t *testing.T) {
	table := parseTable(t, `<table><tr><td>0</td></tr></table>`)

	if err := Validate(table); err != nil {
		t.Errorf("Validate() failed for well-formed table: %v", err)
	}
}

func TestValidate_NotAnElement(t *testing.T) {
	tests := []struct {
		name string
		node *html.Node
	}{
		{"nil node", nil},
		{"text node", &html.Node{Type: html.TextNode, Data: "plain text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.node)
			if !errkind.Is(err, errkind.Type) {
				t.Errorf("Validate() error = %v, want type error", err)
			}
		})
	}
}

func TestValidate_WrongElement(t *testing.T) {
	div := &html.Node{Type: html.ElementNode, Data: "div"}

	err := Validate(div)
	if !errkind.Is(err, errkind.Value) {
		t.Errorf("Validate() error = %v, want value error", err)
	}
}

func TestValidate_NoRows(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<table></table>`))
	if err != nil {
		t.Fatalf("html.Parse() failed: %v", err)
	}
	table := FindTable(doc)
	if table == nil {
		t.Fatal("FindTable() found no table")
	}

	verr := Validate(table)
	if !errkind.Is(verr, errkind.Value) {
		t.Errorf("Validate() error = %v, want value error for rowless table", verr)
	}
}

func TestFindTable_Absent(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><p>no table here</p></body></html>`))
	if err != nil {
		t.Fatalf("html.Parse() failed: %v", err)
	}

	if FindTable(doc) != nil {
		t.Error("FindTable() returned a node for a document without tables")
	}
}

func TestFindTable_First(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<body>
		<table id="first"><tr><td>1</td></tr></table>
		<table id="second"><tr><td>2</td></tr></table>
	</body>`))
	if err != nil {
		t.Fatalf("html.Parse() failed: %v", err)
	}

	table := FindTable(doc)
	if table == nil {
		t.Fatal("FindTable() found no table")
	}
	for _, attr := range table.Attr {
		if attr.Key == "id" && attr.Val != "first" {
			t.Errorf("FindTable() returned table %q, want the first", attr.Val)
		}
	}
}

func TestCellText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<td>  <span>a</span><b>b</b>  </td>`))
	if err != nil {
		t.Fatalf("html.Parse() failed: %v", err)
	}

	if got := CellText(doc); got != "ab" {
		t.Errorf("CellText() = %q, want %q", got, "ab")
	}
}
