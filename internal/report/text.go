package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwtruthtable "github.com/msto63/boolex/foundation/logic/truthtable"
	"github.com/msto63/boolex/internal/tui"
)

const (
	cellWidth   = 3
	outputWidth = 8
)

// writePlain prints each document as
//
//	Expression 1
//	Input: "A AND B"
//
//	| A | B | Output |
//	...
func writePlain(w io.Writer, docs []Document) error {
	bw := bufio.NewWriter(w)
	for _, d := range docs {
		fmt.Fprintf(bw, "Expression %d\n", d.Index)
		fmt.Fprintf(bw, "Input: \"%s\"\n", d.Input)
		if d.AST != "" {
			fmt.Fprintf(bw, "\nAST: %s\n", d.AST)
		}
		bw.WriteString("\n")
		if err := mdwtruthtable.Render(bw, d.Table()); err != nil {
			return err
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func writeStyled(w io.Writer, docs []Document) error {
	bw := bufio.NewWriter(w)
	for _, d := range docs {
		bw.WriteString(StyledDocument(d))
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}

// StyledDocument renders one document with lipgloss styles
func StyledDocument(d Document) string {
	parts := []string{
		tui.RenderTitle(fmt.Sprintf("Expression %d", d.Index)),
		tui.SubtitleStyle.Render("Input: ") + tui.SourceStyle.Render(d.Input),
	}
	if d.AST != "" {
		parts = append(parts, tui.SubtitleStyle.Render("AST:   ")+tui.ASTStyle.Render(d.AST))
	}
	parts = append(parts, StyledTable(d.Table()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// StyledTable renders a truth table inside a rounded box, highlighting the
// result column by value
func StyledTable(t *mdwtruthtable.Table) string {
	lines := make([]string, 0, len(t.Rows)+2)

	header := make([]string, 0, len(t.Variables)+1)
	for _, v := range t.Variables {
		header = append(header, tui.HeaderCellStyle.Width(cellWidth).Render(string(v)))
	}
	header = append(header, tui.HeaderCellStyle.Width(outputWidth).Render("Output"))
	lines = append(lines, strings.Join(header, " "))

	rule := strings.Repeat("─", len(t.Variables)*(cellWidth+1)+outputWidth)
	lines = append(lines, lipgloss.NewStyle().Foreground(tui.ColorDimmed).Render(rule))

	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		for _, v := range row.Values {
			cells = append(cells, tui.CellStyle.Width(cellWidth).Render(string(mdwtruthtable.Bit(v))))
		}
		result := tui.FalseCellStyle
		if row.Result {
			result = tui.TrueCellStyle
		}
		cells = append(cells, result.Width(outputWidth).Render(string(mdwtruthtable.Bit(row.Result))))
		lines = append(lines, strings.Join(cells, " "))
	}

	return tui.TableBoxStyle.Render(strings.Join(lines, "\n"))
}
