// Package export renders a painted grid in the supported output formats.
// Every format emits rows in the same order as grid.Render: last stored
// row first, blank cells as single spaces.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
	"github.com/EgbieAndersonUku1/render-hidden-word/grid"
)

// Text returns the rendered message: the grid's lines joined by newlines.
func Text(g *grid.Grid) (string, error) {
	lines, err := g.Render()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Markdown returns the grid as a markdown pipe table. The first emitted
// row doubles as the table header.
func Markdown(g *grid.Grid) (string, error) {
	rows, err := renderedRows(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(escapeMarkdown(cell))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(rows[0])
	sb.WriteString("|")
	for range rows[0] {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String(), nil
}

// CSV returns the grid as comma-separated rows, quoting cells that carry
// commas, quotes or newlines.
func CSV(g *grid.Grid) (string, error) {
	rows, err := renderedRows(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, row := range rows {
		for j, cell := range row {
			if strings.ContainsAny(cell, ",\"\n") {
				cell = "\"" + strings.ReplaceAll(cell, "\"", "\"\"") + "\""
			}
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// XLSX writes the grid to an xlsx workbook at path, one sheet cell per
// grid cell.
func XLSX(g *grid.Grid, path string) error {
	const op = "export.XLSX"

	rows, err := renderedRows(g)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return errkind.Wrap(errkind.Index, op, err)
			}
			if err := f.SetCellStr(sheet, name, cell); err != nil {
				return errkind.Wrap(errkind.Value, op, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

// renderedRows returns the grid's cells row by row in render order, with
// blanks substituted, reusing the renderer's structural validation.
func renderedRows(g *grid.Grid) ([][]string, error) {
	if _, err := g.Render(); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, g.Rows())
	for i := g.Rows() - 1; i >= 0; i-- {
		row := make([]string, g.Cols())
		for j := range row {
			cell := g.Cell(i, j)
			if cell == "" {
				cell = " "
			}
			row[j] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// escapeMarkdown neutralizes characters that break pipe tables.
func escapeMarkdown(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '|':
			sb.WriteString("\\|")
		case '\n':
			sb.WriteString(" ")
		case '\r':
			// skip
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
