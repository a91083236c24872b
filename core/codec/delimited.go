// Package codec converts between delimited text and tables.
package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/value"
)

// ColumnName returns the positional name of the zero-based column i.
func ColumnName(i int) string {
	return fmt.Sprintf("Column%d", i+1)
}

// FromDelimited parses the string input as delimiter separated text into a
// table. format names the format in error messages (e.g. "TSV"). The result
// is a single list of records tagged with span.
func FromDelimited(headerless bool, delimiter rune, format string, input value.PipelineData, span diag.Span) (value.PipelineData, error) {
	var text strings.Builder
	for _, v := range input.Collect() {
		s, ok := v.(value.String)
		if !ok {
			return value.PipelineData{}, diag.Labeled(
				"Expected a string from pipeline",
				fmt.Sprintf("requires string input, got %s", v.TypeName()),
				v.Span())
		}
		text.WriteString(s.Val)
		if !strings.HasSuffix(s.Val, "\n") {
			text.WriteByte('\n')
		}
	}

	rows, err := readRows(text.String(), delimiter)
	if err != nil {
		return value.PipelineData{}, diag.Wrap(err,
			fmt.Sprintf("Could not parse as %s", format),
			fmt.Sprintf("input cannot be parsed as %s", format),
			span)
	}

	var cols columnNames
	if !headerless && len(rows) > 0 {
		cols = newColumnNames(rows[0])
		rows = rows[1:]
	} else {
		cols = newColumnNames(nil)
	}

	table := make([]value.Value, 0, len(rows))
	for _, row := range rows {
		rec := value.Record{Tag: span}
		for i := 0; i < len(row) || i < len(cols.names); i++ {
			col := cols.name(i)
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rec.Push(col, value.NewString(cell, span))
		}
		table = append(table, rec)
	}

	return value.One(value.NewList(table, span)), nil
}

func readRows(text string, delimiter rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	// Tab separated text rarely quotes, so a quote inside a field is kept.
	r.LazyQuotes = delimiter == '\t'

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// columnNames hands out unique column names. Header cells keep their text
// unless it is blank or repeated. Every other column gets the first
// positional name at or after its own index that no column uses yet.
type columnNames struct {
	names []string
	taken map[string]bool
}

func newColumnNames(header []string) columnNames {
	c := columnNames{
		names: make([]string, len(header)),
		taken: make(map[string]bool, len(header)),
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h != "" && !c.taken[h] {
			c.names[i] = h
			c.taken[h] = true
		}
	}
	for i := range c.names {
		if c.names[i] == "" {
			c.names[i] = c.positional(i)
		}
	}
	return c
}

// name returns the name of the zero-based column i, assigning names to
// columns past the header as needed.
func (c *columnNames) name(i int) string {
	for len(c.names) <= i {
		c.names = append(c.names, c.positional(len(c.names)))
	}
	return c.names[i]
}

func (c *columnNames) positional(i int) string {
	name := ColumnName(i)
	for n := i + 1; c.taken[name]; n++ {
		name = ColumnName(n)
	}
	c.taken[name] = true
	return name
}

// Columns returns the union of the record columns in order of first
// appearance.
func Columns(records []value.Record) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, c := range rec.Cols {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	return cols
}

// ToDelimited renders records as delimiter separated text. Cells missing
// from a record are left empty.
func ToDelimited(records []value.Record, delimiter rune, headers bool) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter

	cols := Columns(records)
	if headers && len(cols) > 0 {
		if err := w.Write(cols); err != nil {
			return "", err
		}
	}
	for _, rec := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			if v, ok := rec.Get(c); ok {
				row[i] = value.ToString(v)
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}
