package htmltable

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
	"github.com/EgbieAndersonUku1/render-hidden-word/grid"
)

// Extraction holds the ordered coordinate records of a table and MaxX,
// the largest x value observed, which drives grid sizing downstream.
type Extraction struct {
	Records []grid.Record
	MaxX    int
}

// rowOutcome classifies one table row under the extraction policy.
type rowOutcome int

const (
	// rowAccepted yields a coordinate record.
	rowAccepted rowOutcome = iota

	// rowSkipped is tolerated silently: spacer rows, rows with fewer
	// than three cells, rows with an empty cell among the first three.
	rowSkipped

	// rowMalformed aborts the extraction: a coordinate cell holds
	// non-integer text.
	rowMalformed
)

// Extract walks the data rows of table and returns the coordinate
// records in row encounter order. The first row is treated as a header
// and never produces a record. Irregular rows are skipped; a row whose
// coordinate cells do not parse as integers fails the whole extraction.
func Extract(table *html.Node) (*Extraction, error) {
	const op = "htmltable.Extract"

	if err := Validate(table); err != nil {
		return nil, err
	}

	ext := &Extraction{Records: make([]grid.Record, 0)}

	rows := findAll(table, "tr")
	for _, tr := range rows[1:] {
		rec, outcome, err := classifyRow(tr)
		switch outcome {
		case rowMalformed:
			return nil, errkind.Wrap(errkind.Value, op, err)
		case rowSkipped:
			continue
		}

		ext.Records = append(ext.Records, rec)
		if rec.X > ext.MaxX {
			ext.MaxX = rec.X
		}
	}

	return ext, nil
}

// classifyRow applies the per-row leniency policy. Cells 0, 1 and 2 are
// read as x, character and y respectively.
func classifyRow(tr *html.Node) (grid.Record, rowOutcome, error) {
	cells := findAll(tr, "td")
	if len(cells) < 3 {
		return grid.Record{}, rowSkipped, nil
	}

	xText := CellText(cells[0])
	character := CellText(cells[1])
	yText := CellText(cells[2])
	if xText == "" || character == "" || yText == "" {
		return grid.Record{}, rowSkipped, nil
	}

	x, err := strconv.Atoi(xText)
	if err != nil {
		return grid.Record{}, rowMalformed, fmt.Errorf("x coordinate %q is not an integer", xText)
	}
	y, err := strconv.Atoi(yText)
	if err != nil {
		return grid.Record{}, rowMalformed, fmt.Errorf("y coordinate %q is not an integer", yText)
	}

	return grid.Record{X: x, Y: y, Character: character}, rowAccepted, nil
}
