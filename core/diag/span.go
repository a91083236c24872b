// Package diag attributes values and errors to the source text that produced
// them.
package diag

import (
	"bytes"
	"fmt"
	"strings"
)

// Span is a range [From, To) of byte offsets within the source of a single
// invocation. It never owns the source text.
type Span struct {
	From int
	To   int
}

// Unknown is the span of values that cannot be attributed to any input.
var Unknown = Span{-1, -1}

// IsUnknown reports whether the span points at no source text.
func (s Span) IsUnknown() bool {
	return s.From < 0
}

// Merge returns a span covering both s and o. Unknown spans are ignored.
func (s Span) Merge(o Span) Span {
	switch {
	case s.IsUnknown():
		return o
	case o.IsUnknown():
		return s
	}
	out := s
	if o.From < out.From {
		out.From = o.From
	}
	if o.To > out.To {
		out.To = o.To
	}
	return out
}

func (s Span) String() string {
	if s.IsUnknown() {
		return "unknown"
	}
	return fmt.Sprintf("%d-%d", s.From, s.To)
}

// Variables controlling the style of the culprit.
var (
	CulpritBegin       = "\033[1;4m"
	CulpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

// Excerpt shows the line(s) of source covered by the span with the culprit
// highlighted, prefixed by the source name and line range.
func (s Span) Excerpt(name, source string) string {
	if s.IsUnknown() {
		return fmt.Sprintf("%s, unknown position", name)
	}
	if s.To > len(source) || s.From > s.To {
		return fmt.Sprintf("%s, invalid position %d-%d", name, s.From, s.To)
	}

	before := source[:s.From]
	culprit := source[s.From:s.To]
	after := source[s.To:]

	head := lastLine(before)
	beginLine := strings.Count(before, "\n") + 1

	// If the culprit ends with a newline, strip it. Otherwise, tail is nonempty.
	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(after)
	}
	endLine := beginLine + strings.Count(culprit, "\n")

	var buf bytes.Buffer
	if beginLine == endLine {
		fmt.Fprintf(&buf, "%s, line %d: ", name, beginLine)
	} else {
		fmt.Fprintf(&buf, "%s, line %d-%d: ", name, beginLine, endLine)
	}
	buf.WriteString(head)

	if culprit == "" {
		culprit = culpritPlaceHolder
	}
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(CulpritBegin)
		buf.WriteString(line)
		buf.WriteString(CulpritEnd)
	}

	buf.WriteString(tail)
	return buf.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
