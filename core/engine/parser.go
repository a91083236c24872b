package engine

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
)

const titleParse = "Parse error"

func spanOf(n syntax.Node) diag.Span {
	return diag.Span{From: int(n.Pos().Offset()), To: int(n.End().Offset())}
}

func unsupported(what string, n syntax.Node) error {
	return diag.Labeled(titleParse, fmt.Sprintf("%s is not supported", what), spanOf(n))
}

// Parse splits a line into the words of each pipeline stage. Only simple
// commands joined by | are accepted; words may mix literal, single-quoted
// and double-quoted text.
func Parse(name, source string) ([][]binder.Word, error) {
	f, err := syntax.NewParser().Parse(strings.NewReader(source), name)
	if err != nil {
		return nil, parseError(err)
	}

	switch len(f.Stmts) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, unsupported("more than one pipeline", f.Stmts[1])
	}

	var calls []*syntax.CallExpr
	if err := flatten(f.Stmts[0], &calls); err != nil {
		return nil, err
	}

	stages := make([][]binder.Word, 0, len(calls))
	for _, call := range calls {
		var words []binder.Word
		for _, w := range call.Args {
			word, err := convertWord(w)
			if err != nil {
				return nil, err
			}
			words = append(words, word)
		}
		stages = append(stages, words)
	}
	return stages, nil
}

func parseError(err error) error {
	var perr syntax.ParseError
	if errors.As(err, &perr) {
		off := int(perr.Pos.Offset())
		return diag.Wrap(err, titleParse, perr.Text, diag.Span{From: off, To: off})
	}
	return diag.Wrap(err, titleParse, "", diag.Unknown)
}

func flatten(stmt *syntax.Stmt, out *[]*syntax.CallExpr) error {
	switch {
	case stmt.Background, stmt.Coprocess:
		return unsupported("background execution", stmt)
	case stmt.Negated:
		return unsupported("negation", stmt)
	case len(stmt.Redirs) > 0:
		return unsupported("redirection", stmt.Redirs[0])
	}

	switch cmd := stmt.Cmd.(type) {
	case *syntax.CallExpr:
		if len(cmd.Assigns) > 0 {
			return unsupported("variable assignment", cmd.Assigns[0])
		}
		*out = append(*out, cmd)
		return nil
	case *syntax.BinaryCmd:
		if cmd.Op != syntax.Pipe {
			return unsupported(fmt.Sprintf("operator %s", cmd.Op), cmd)
		}
		if err := flatten(cmd.X, out); err != nil {
			return err
		}
		return flatten(cmd.Y, out)
	case nil:
		return unsupported("empty statement", stmt)
	default:
		return unsupported("compound command", cmd)
	}
}

func convertWord(w *syntax.Word) (binder.Word, error) {
	var b strings.Builder
	quoted := false
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			b.WriteString(unescape(p.Value, ""))
		case *syntax.SglQuoted:
			quoted = true
			b.WriteString(p.Value)
		case *syntax.DblQuoted:
			quoted = true
			for _, inner := range p.Parts {
				lit, ok := inner.(*syntax.Lit)
				if !ok {
					return binder.Word{}, unsupported("expansion", inner)
				}
				b.WriteString(unescape(lit.Value, "\"\\$`"))
			}
		default:
			return binder.Word{}, unsupported("expansion", part)
		}
	}
	return binder.Word{Text: b.String(), Span: spanOf(w), Quoted: quoted}, nil
}

// unescape removes backslashes. If only is non-empty, a backslash is removed
// only when it precedes one of those characters.
func unescape(s, only string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (only == "" || strings.IndexByte(only, s[i+1]) >= 0) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
