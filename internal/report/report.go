// ============================================================================
// boolex - Boolean logic toolkit
// ============================================================================
//
// Package:     report
// Description: Serializable reports of processed expressions and their
//              text, styled, YAML and JSON renderers
// Author:      msto63
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	"github.com/msto63/boolex/foundation/logic"
	mdwast "github.com/msto63/boolex/foundation/logic/ast"
	mdwtruthtable "github.com/msto63/boolex/foundation/logic/truthtable"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Text styles
const (
	StylePlain  = "plain"
	StyleStyled = "styled"
)

// Document is the serializable view of one processed expression
type Document struct {
	Index     int      `yaml:"index" json:"index"`
	Input     string   `yaml:"input" json:"input"`
	AST       string   `yaml:"ast,omitempty" json:"ast,omitempty"`
	Variables []string `yaml:"variables" json:"variables"`
	Rows      []Row    `yaml:"rows" json:"rows"`

	table *mdwtruthtable.Table
}

// Row is one truth table row with 0/1 values
type Row struct {
	Values []int `yaml:"values,flow" json:"values"`
	Result int   `yaml:"result" json:"result"`
}

// Options controls Write
type Options struct {
	Format string // text, yaml or json (default text)
	Style  string // plain or styled, text only (default plain)
}

// Build converts engine results into report documents. The AST field is
// filled only when showAST is set.
func Build(results []logic.Result, showAST bool) []Document {
	docs := make([]Document, 0, len(results))
	for _, r := range results {
		table := r.Table
		if table == nil {
			table = mdwtruthtable.From(r.Expression)
		}

		doc := Document{
			Index:     r.Index,
			Input:     r.Source,
			Variables: make([]string, len(table.Variables)),
			Rows:      make([]Row, len(table.Rows)),
			table:     table,
		}
		if showAST {
			doc.AST = mdwast.Debug(r.Expression)
		}
		for i, v := range table.Variables {
			doc.Variables[i] = string(v)
		}
		for i, row := range table.Rows {
			values := make([]int, len(row.Values))
			for j, v := range row.Values {
				values[j] = bit(v)
			}
			doc.Rows[i] = Row{Values: values, Result: bit(row.Result)}
		}
		docs = append(docs, doc)
	}
	return docs
}

// Table returns the truth table behind the document
func (d Document) Table() *mdwtruthtable.Table {
	if d.table != nil {
		return d.table
	}
	return d.rebuild()
}

// rebuild reconstructs a table from the serialized columns
func (d Document) rebuild() *mdwtruthtable.Table {
	t := &mdwtruthtable.Table{
		Variables: make([]rune, 0, len(d.Variables)),
		Rows:      make([]mdwtruthtable.Row, len(d.Rows)),
	}
	for _, v := range d.Variables {
		for _, r := range v {
			t.Variables = append(t.Variables, r)
			break
		}
	}
	for i, row := range d.Rows {
		values := make([]bool, len(row.Values))
		for j, v := range row.Values {
			values[j] = v != 0
		}
		t.Rows[i] = mdwtruthtable.Row{Values: values, Result: row.Result != 0}
	}
	return t
}

// Validate rejects unknown formats and styles
func (o Options) Validate() error {
	switch strings.ToLower(o.Format) {
	case "", FormatText, FormatYAML, FormatJSON:
	default:
		return invalidOption("format", o.Format)
	}
	switch strings.ToLower(o.Style) {
	case "", StylePlain, StyleStyled:
	default:
		return invalidOption("style", o.Style)
	}
	return nil
}

// IsText reports whether opts select the text renderer
func (o Options) IsText() bool {
	f := strings.ToLower(o.Format)
	return f == "" || f == FormatText
}

// Write renders docs to w in the requested format
func Write(w io.Writer, docs []Document, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	switch strings.ToLower(opts.Format) {
	case FormatYAML:
		return writeYAML(w, docs)
	case FormatJSON:
		return writeJSON(w, docs)
	}
	if strings.ToLower(opts.Style) == StyleStyled {
		return writeStyled(w, docs)
	}
	return writePlain(w, docs)
}

func invalidOption(name, value string) error {
	return mdwerror.New(fmt.Sprintf("unknown report %s %q", name, value)).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail(name, value).
		WithOperation("report.Write")
}

func writeYAML(w io.Writer, docs []Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return mdwerror.Wrap(err, "failed to encode yaml report").WithOperation("report.Write")
	}
	return enc.Close()
}

func writeJSON(w io.Writer, docs []Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return mdwerror.Wrap(err, "failed to encode json report").WithOperation("report.Write")
	}
	return nil
}

func bit(v bool) int {
	if v {
		return 1
	}
	return 0
}
