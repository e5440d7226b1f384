package truthtable

import (
	"bufio"
	"io"
	"strings"
)

// Render writes the table as pipe-delimited text:
//
//	| A | B | Output |
//	|---|---|--------|
//	| 0 | 0 |   0    |
func Render(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("|")
	for _, v := range t.Variables {
		bw.WriteString(" ")
		bw.WriteRune(v)
		bw.WriteString(" |")
	}
	bw.WriteString(" Output |\n")

	bw.WriteString("|")
	for range t.Variables {
		bw.WriteString("---|")
	}
	bw.WriteString("--------|\n")

	for _, r := range t.Rows {
		bw.WriteString("|")
		for _, v := range r.Values {
			bw.WriteString(" ")
			bw.WriteByte(Bit(v))
			bw.WriteString(" |")
		}
		bw.WriteString("   ")
		bw.WriteByte(Bit(r.Result))
		bw.WriteString("    |\n")
	}

	return bw.Flush()
}

// String returns the rendered table
func (t *Table) String() string {
	var b strings.Builder
	_ = Render(&b, t)
	return b.String()
}

// Bit returns '1' for true and '0' for false
func Bit(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}
