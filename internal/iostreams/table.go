package iostreams

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/novezhyttia/sanctuary/internal/text"
)

// TablePrinter renders tabular data to IOStreams.Out. Styled output with a
// header divider goes to color terminals; everything else gets plain
// tab-aligned columns that are safe to pipe.
type TablePrinter struct {
	ios     *IOStreams
	headers []string
	rows    [][]string
}

// NewTablePrinter creates a new table printer with the given column headers.
func (s *IOStreams) NewTablePrinter(headers ...string) *TablePrinter {
	return &TablePrinter{ios: s, headers: headers}
}

// AddRow adds a data row. Missing columns render empty; extras are dropped.
func (tp *TablePrinter) AddRow(cols ...string) {
	tp.rows = append(tp.rows, tp.normalizeRow(cols))
}

// Len returns the number of data rows.
func (tp *TablePrinter) Len() int {
	return len(tp.rows)
}

// Render writes the table to the IOStreams output.
func (tp *TablePrinter) Render() error {
	if len(tp.headers) == 0 {
		return nil
	}
	if tp.ios.IsOutputTTY() && tp.ios.ColorEnabled() {
		return tp.renderStyled()
	}
	return tp.renderPlain()
}

func (tp *TablePrinter) renderPlain() error {
	w := tabwriter.NewWriter(tp.ios.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(tp.headers, "\t"))
	for _, row := range tp.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

// renderStyled sizes each column to its widest cell, shrinking the last
// column when the terminal is too narrow.
func (tp *TablePrinter) renderStyled() error {
	const gap = 2
	widths := make([]int, len(tp.headers))
	for i, h := range tp.headers {
		widths[i] = text.CountVisibleWidth(h)
	}
	for _, row := range tp.rows {
		for i, c := range row {
			widths[i] = max(widths[i], text.CountVisibleWidth(c))
		}
	}

	total := gap * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	if over := total - tp.ios.TerminalWidth(); over > 0 {
		last := len(widths) - 1
		widths[last] = max(widths[last]-over, 1)
	}

	spacing := strings.Repeat(" ", gap)
	line := func(cells []string, style *Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			cell := text.PadRight(text.Truncate(c, widths[i]), widths[i])
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell
		}
		return strings.TrimRight(strings.Join(parts, spacing), " ")
	}

	if _, err := fmt.Fprintln(tp.ios.Out, line(tp.headers, &TableHeaderStyle)); err != nil {
		return err
	}
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	if _, err := fmt.Fprintln(tp.ios.Out, DividerStyle.Render(strings.Join(rule, spacing))); err != nil {
		return err
	}
	for _, row := range tp.rows {
		if _, err := fmt.Fprintln(tp.ios.Out, line(row, nil)); err != nil {
			return err
		}
	}
	return nil
}

func (tp *TablePrinter) normalizeRow(row []string) []string {
	cols := make([]string, len(tp.headers))
	copy(cols, row)
	return cols
}
