package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		source string
		want   [][]binder.Word
	}{
		"empty": {
			source: "   ",
			want:   nil,
		},
		"single stage": {
			source: "seq char a c",
			want: [][]binder.Word{{
				{Text: "seq", Span: diag.Span{From: 0, To: 3}},
				{Text: "char", Span: diag.Span{From: 4, To: 8}},
				{Text: "a", Span: diag.Span{From: 9, To: 10}},
				{Text: "c", Span: diag.Span{From: 11, To: 12}},
			}},
		},
		"pipeline": {
			source: "a | b x | c",
			want: [][]binder.Word{
				{{Text: "a", Span: diag.Span{From: 0, To: 1}}},
				{{Text: "b", Span: diag.Span{From: 4, To: 5}}, {Text: "x", Span: diag.Span{From: 6, To: 7}}},
				{{Text: "c", Span: diag.Span{From: 10, To: 11}}},
			},
		},
		"quoting": {
			source: `x 'a b' "c\"d" e\ f`,
			want: [][]binder.Word{{
				{Text: "x", Span: diag.Span{From: 0, To: 1}},
				{Text: "a b", Span: diag.Span{From: 2, To: 7}, Quoted: true},
				{Text: `c"d`, Span: diag.Span{From: 8, To: 14}, Quoted: true},
				{Text: "e f", Span: diag.Span{From: 15, To: 19}},
			}},
		},
		"mixed quoting": {
			source: `x pre'mid'"post"`,
			want: [][]binder.Word{{
				{Text: "x", Span: diag.Span{From: 0, To: 1}},
				{Text: "premidpost", Span: diag.Span{From: 2, To: 16}, Quoted: true},
			}},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := Parse("test", tc.source)
			assert.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_unsupported(t *testing.T) {
	cases := map[string]struct {
		source string
		label  string
	}{
		"sequence":   {source: "a; b", label: "more than one pipeline is not supported"},
		"and":        {source: "a && b", label: "operator && is not supported"},
		"redirect":   {source: "a > out", label: "redirection is not supported"},
		"assignment": {source: "X=1 a", label: "variable assignment is not supported"},
		"background": {source: "a &", label: "background execution is not supported"},
		"negation":   {source: "! a", label: "negation is not supported"},
		"expansion":  {source: "a $HOME", label: "expansion is not supported"},
		"dbl quoted": {source: `a "$HOME"`, label: "expansion is not supported"},
		"subshell":   {source: "(a)", label: "compound command is not supported"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := Parse("test", tc.source)

			var labeled *diag.Error
			if !errors.As(err, &labeled) {
				t.Fatalf("expected labeled error, got %v", err)
			}
			assert.Equal(t, "Parse error", labeled.Title)
			assert.Equal(t, tc.label, labeled.Label)
			assert.False(t, labeled.Span.IsUnknown())
		})
	}
}

func TestParse_syntaxError(t *testing.T) {
	_, err := Parse("test", "a 'unterminated")

	var labeled *diag.Error
	if !errors.As(err, &labeled) {
		t.Fatalf("expected labeled error, got %v", err)
	}
	assert.Equal(t, "Parse error", labeled.Title)
	assert.NotEmpty(t, labeled.Label)
	assert.NotNil(t, labeled.Cause)
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "plain", unescape("plain", ""))
	assert.Equal(t, "a b", unescape(`a\ b`, ""))
	assert.Equal(t, `a\nb"`, unescape(`a\nb\"`, `"`))
	assert.Equal(t, `trailing\`, unescape(`trailing\`, ""))
}
