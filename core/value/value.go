// Package value holds the values that flow between pipeline stages.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anomius/nushell/core/diag"
)

// Value is a single datum tagged with the span that produced it.
type Value interface {
	// Span returns the source location the value is attributed to.
	Span() diag.Span
	// TypeName returns a short lowercase name of the value's type.
	TypeName() string
}

// String is a text value.
type String struct {
	Val string
	Tag diag.Span
}

// List is an ordered sequence of values. A table is a List of Records.
type List struct {
	Vals []Value
	Tag  diag.Span
}

// Record is a row with ordered, named columns.
type Record struct {
	Cols []string
	Vals []Value
	Tag  diag.Span
}

// Nothing is the absence of a value.
type Nothing struct {
	Tag diag.Span
}

var (
	_ Value = String{}
	_ Value = List{}
	_ Value = Record{}
	_ Value = Nothing{}
)

// NewString creates a String value.
func NewString(s string, span diag.Span) String { return String{Val: s, Tag: span} }

// NewList creates a List value.
func NewList(vals []Value, span diag.Span) List { return List{Vals: vals, Tag: span} }

func (v String) Span() diag.Span  { return v.Tag }
func (v List) Span() diag.Span    { return v.Tag }
func (v Record) Span() diag.Span  { return v.Tag }
func (v Nothing) Span() diag.Span { return v.Tag }

func (String) TypeName() string  { return "string" }
func (List) TypeName() string    { return "list" }
func (Record) TypeName() string  { return "record" }
func (Nothing) TypeName() string { return "nothing" }

// Get returns the value of the named column.
func (r Record) Get(col string) (Value, bool) {
	for i, c := range r.Cols {
		if c == col {
			return r.Vals[i], true
		}
	}
	return nil, false
}

// Push appends a column to the record.
func (r *Record) Push(col string, v Value) {
	r.Cols = append(r.Cols, col)
	r.Vals = append(r.Vals, v)
}

// IsTable reports whether every element of the list is a record. An empty
// list is a table.
func (v List) IsTable() bool {
	for _, elem := range v.Vals {
		if _, ok := elem.(Record); !ok {
			return false
		}
	}
	return true
}

// ToString converts scalar values to their textual form.
func ToString(v Value) string {
	switch v := v.(type) {
	case String:
		return v.Val
	case Nothing:
		return ""
	case List:
		parts := make([]string, len(v.Vals))
		for i, elem := range v.Vals {
			parts[i] = ToString(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Record:
		parts := make([]string, len(v.Cols))
		for i, col := range v.Cols {
			parts[i] = col + ": " + ToString(v.Vals[i])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON encodes a string.
func (v String) MarshalJSON() ([]byte, error) { return json.Marshal(v.Val) }

// MarshalJSON encodes nothing as null.
func (Nothing) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON encodes the list as an array.
func (v List) MarshalJSON() ([]byte, error) {
	if v.Vals == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Vals)
}

// MarshalJSON encodes the record as an object, keeping column order.
func (v Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range v.Cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.Vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
