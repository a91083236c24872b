package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/anomius/nushell/core/codec"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/value"
)

var (
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// Renderer prints pipeline output for humans.
type Renderer struct {
	// Color enables ANSI styling of table headers and errors.
	Color bool
}

func (r *Renderer) sprint(c *color.Color, s string) string {
	if !r.Color {
		return s
	}
	// The package level switch would otherwise disable color when stdout
	// isn't a terminal, even if the caller asked for it.
	c.EnableColor()
	return c.Sprint(s)
}

// Render collects data and writes it to w. Strings are printed as lines,
// lists one element per line, tables as aligned columns and records as
// key/value pairs.
func (r *Renderer) Render(w io.Writer, data value.PipelineData) error {
	return r.renderValue(w, data.IntoValue())
}

func (r *Renderer) renderValue(w io.Writer, v value.Value) error {
	switch v := v.(type) {
	case value.Nothing:
		return nil
	case value.String:
		_, err := fmt.Fprintln(w, v.Val)
		return err
	case value.Record:
		return r.renderRecord(w, v)
	case value.List:
		if len(v.Vals) > 0 && v.IsTable() {
			return r.renderTable(w, v)
		}
		for _, elem := range v.Vals {
			if _, err := fmt.Fprintln(w, value.ToString(elem)); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, value.ToString(v))
		return err
	}
}

func (r *Renderer) renderRecord(w io.Writer, rec value.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, col := range rec.Cols {
		fmt.Fprintf(tw, "%s:\t%s\n", r.sprint(ColorBoldGreen, col), value.ToString(rec.Vals[i]))
	}
	return tw.Flush()
}

func (r *Renderer) renderTable(w io.Writer, list value.List) error {
	records := make([]value.Record, len(list.Vals))
	for i, elem := range list.Vals {
		records[i] = elem.(value.Record)
	}
	cols := codec.Columns(records)

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(cols, "\t"))
	for i, rec := range records {
		cells := make([]string, len(cols))
		for j, c := range cols {
			if v, ok := rec.Get(c); ok {
				cells[j] = value.ToString(v)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Style the header after alignment so escape codes don't count as width.
	header, rest, _ := strings.Cut(buf.String(), "\n")
	_, err := fmt.Fprintf(w, "%s\n%s", r.sprint(ColorBoldGreen, header), rest)
	return err
}

// ShowError writes err with an excerpt of the source it points at, if it
// carries a span.
func (r *Renderer) ShowError(w io.Writer, err error, name, source string) {
	var labeled *diag.Error
	if !errors.As(err, &labeled) {
		fmt.Fprintf(w, "%s %v\n", r.sprint(ColorBoldRed, "Error:"), err)
		return
	}

	if !r.Color {
		begin, end := diag.CulpritBegin, diag.CulpritEnd
		diag.CulpritBegin, diag.CulpritEnd = "", ""
		defer func() { diag.CulpritBegin, diag.CulpritEnd = begin, end }()
	}
	fmt.Fprintf(w, "%s %s\n  %s\n  %s\n",
		r.sprint(ColorBoldRed, "Error:"),
		labeled.Title,
		labeled.Label,
		labeled.Span.Excerpt(name, source))
}
