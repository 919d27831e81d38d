// Package grid implements the dense character grid that the sparse
// coordinate records are painted onto, and its rendering as text lines.
package grid

import (
	"strings"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
)

// Record describes one painted cell: the character to place and its
// position. X is the column index and Y the row index; both count from
// zero.
type Record struct {
	X         int
	Y         int
	Character string
}

// Grid is a rows×cols buffer of rendering units. Cells start blank and
// blanks render as a single space. Row 0 is conceptually the bottom of
// the message; rendering reverses row order so the output reads top-down.
type Grid struct {
	cells [][]string
}

// New allocates a grid of numRows rows, each holding numCols blank cells.
// Rows never share backing storage. Dimensions are not validated; sizing
// is the caller's responsibility.
func New(numRows, numCols int) *Grid {
	cells := make([][]string, numRows)
	for i := range cells {
		cells[i] = make([]string, numCols)
	}
	return &Grid{cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns in the first row.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Cell returns the content at (row, col), or the empty string when the
// position is out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.cells) {
		return ""
	}
	if col < 0 || col >= len(g.cells[row]) {
		return ""
	}
	return g.cells[row][col]
}

// Paint writes each record's character at (record.Y, record.X),
// overwriting any prior value there. Records are applied in order and
// the first out-of-bounds record aborts the operation with an index
// error, leaving earlier writes in place.
func (g *Grid) Paint(records []Record) error {
	const op = "grid.Paint"

	if err := g.check(op); err != nil {
		return err
	}

	cols := len(g.cells[0])
	for _, rec := range records {
		if rec.Y < 0 || rec.Y >= len(g.cells) || rec.X < 0 || rec.X >= cols {
			return errkind.Newf(errkind.Index, op, "coordinates out of bounds: x=%d, y=%d", rec.X, rec.Y)
		}
		g.cells[rec.Y][rec.X] = rec.Character
	}

	return nil
}

// Render emits the grid as text lines, last stored row first, joining
// each row's cells left to right with a single space for every blank
// cell. Rendering does not mutate the grid; any structural fault is
// reported as a single value-kind rendering error.
func (g *Grid) Render() ([]string, error) {
	const op = "grid.Render"

	if err := g.check(op); err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(g.cells))
	for i := len(g.cells) - 1; i >= 0; i-- {
		var sb strings.Builder
		for _, cell := range g.cells[i] {
			if cell == "" {
				sb.WriteString(" ")
			} else {
				sb.WriteString(cell)
			}
		}
		lines = append(lines, sb.String())
	}

	return lines, nil
}

// check confirms the grid is non-empty with no empty rows.
func (g *Grid) check(op string) error {
	if len(g.cells) == 0 {
		return errkind.New(errkind.Value, op, "grid must be a non-empty structure")
	}
	for _, row := range g.cells {
		if len(row) == 0 {
			return errkind.New(errkind.Value, op, "grid contains an empty row (no columns)")
		}
	}
	return nil
}
