package value

import "github.com/anomius/nushell/core/diag"

// Stream is a lazy, finite, non-restartable sequence of values. Next returns
// false once the sequence is exhausted; it must not be called afterwards.
type Stream interface {
	Next() (Value, bool)
}

// StreamFunc adapts a generator function to a Stream.
type StreamFunc func() (Value, bool)

func (f StreamFunc) Next() (Value, bool) { return f() }

// FromSlice streams the given values in order.
func FromSlice(vals []Value) Stream {
	i := 0
	return StreamFunc(func() (Value, bool) {
		if i >= len(vals) {
			return nil, false
		}
		i++
		return vals[i-1], true
	})
}

// PipelineData is what a command receives from the previous stage and hands
// to the next one: nothing, a single value, or a stream.
type PipelineData struct {
	value  Value
	stream Stream
	// Span is the invocation that produced the data.
	Span diag.Span
}

// Empty is pipeline data carrying nothing.
func Empty() PipelineData {
	return PipelineData{Span: diag.Unknown}
}

// One wraps a single value.
func One(v Value) PipelineData {
	return PipelineData{value: v, Span: v.Span()}
}

// FromStream wraps a lazy stream produced by the invocation at span.
func FromStream(s Stream, span diag.Span) PipelineData {
	return PipelineData{stream: s, Span: span}
}

// IsEmpty reports whether the data carries neither a value nor a stream.
func (p PipelineData) IsEmpty() bool {
	return p.value == nil && p.stream == nil
}

// Value returns the single value, if the data holds one.
func (p PipelineData) Value() (Value, bool) {
	return p.value, p.value != nil
}

// Stream returns the data as a stream. A single list value is streamed
// element by element; any other single value is streamed on its own.
func (p PipelineData) Stream() Stream {
	switch {
	case p.stream != nil:
		return p.stream
	case p.value == nil:
		return FromSlice(nil)
	}
	if l, ok := p.value.(List); ok {
		return FromSlice(l.Vals)
	}
	return FromSlice([]Value{p.value})
}

// Collect drains the data into a slice.
func (p PipelineData) Collect() []Value {
	var out []Value
	s := p.Stream()
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}

// IntoValue collapses the data into a single value: streams become lists,
// empty data becomes Nothing.
func (p PipelineData) IntoValue() Value {
	switch {
	case p.value != nil:
		return p.value
	case p.stream != nil:
		return NewList(p.Collect(), p.Span)
	default:
		return Nothing{Tag: p.Span}
	}
}
