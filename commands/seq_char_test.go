package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/value"
)

func ExampleCharRange() {
	fmt.Println(value.ToString(CharRange('a', 'e', false, diag.Unknown)))
	fmt.Println(value.ToString(CharRange('z', 'a', false, diag.Unknown)))
	fmt.Println(value.ToString(CharRange(' ', '#', true, diag.Unknown)))

	// Output: [a, b, c, d, e]
	// []
	// [!, ", #]
}

func chars(v value.Value) []string {
	var out []string
	for _, elem := range v.(value.List).Vals {
		out = append(out, value.ToString(elem))
	}
	return out
}

func TestSeqChar(t *testing.T) {
	cases := map[string]struct {
		source   string
		expected []string
	}{
		"range":        {"seq char a e", []string{"a", "b", "c", "d", "e"}},
		"single":       {"seq char A A", []string{"A"}},
		"reversed":     {"seq char z a", nil},
		"graphic":      {"seq char ' ' '#' --graphic", []string{"!", `"`, "#"}},
		"short flag":   {"seq char ' ' '#' -g", []string{"!", `"`, "#"}},
		"all filtered": {"seq char ' ' ' ' -g", nil},
		"unfiltered":   {"seq char ' ' '\"'", []string{" ", "!", `"`}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			out, err := eval(t, tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, chars(out.IntoValue()))
		})
	}
}

func TestSeqChar_spans(t *testing.T) {
	out, err := eval(t, "seq char a b")
	require.NoError(t, err)

	list := out.IntoValue().(value.List)
	head := diag.Span{From: 0, To: 8}
	assert.Equal(t, head, list.Span())
	for _, elem := range list.Vals {
		assert.Equal(t, head, elem.Span())
	}
}

func TestSeqChar_errors(t *testing.T) {
	cases := map[string]struct {
		source string
		span   diag.Span
	}{
		"multi-char start": {"seq char ab e", diag.Span{From: 9, To: 11}},
		"multi-char end":   {"seq char a ef", diag.Span{From: 11, To: 13}},
		"empty start":      {"seq char '' e", diag.Span{From: 9, To: 11}},
		"non-ascii end":    {"seq char a é", diag.Span{From: 11, To: 13}},
		"both bad":         {"seq char xy é", diag.Span{From: 9, To: 11}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := eval(t, tc.source)

			var labeled *diag.Error
			require.True(t, errors.As(err, &labeled), "got %v", err)
			assert.Equal(t, "seq char only accepts individual ASCII characters as parameters", labeled.Title)
			assert.Equal(t, "input should be a single ASCII character", labeled.Label)
			assert.Equal(t, tc.span, labeled.Span)
		})
	}
}

func TestSeqChar_missingArgument(t *testing.T) {
	_, err := eval(t, "seq char a")

	var labeled *diag.Error
	require.True(t, errors.As(err, &labeled))
	assert.Equal(t, "Missing required positional argument", labeled.Title)
	assert.Equal(t, diag.Span{From: 0, To: 8}, labeled.Span)
}

func TestCharRange_properties(t *testing.T) {
	for a := 0; a < 0x80; a++ {
		for b := 0; b < 0x80; b++ {
			all := CharRange(byte(a), byte(b), false, diag.Unknown).Vals
			graphic := CharRange(byte(a), byte(b), true, diag.Unknown).Vals

			if a > b {
				if len(all) != 0 || len(graphic) != 0 {
					t.Fatalf("%d > %d should give an empty range", a, b)
				}
				continue
			}
			if len(all) != b-a+1 {
				t.Fatalf("range %d-%d has %d elements", a, b, len(all))
			}

			// The filtered result is the unfiltered one minus the non-graphic
			// characters.
			var expected []value.Value
			for _, v := range all {
				if isASCIIGraphic(v.(value.String).Val[0]) {
					expected = append(expected, v)
				}
			}
			if len(expected) != len(graphic) {
				t.Fatalf("range %d-%d: graphic filter kept %d, want %d", a, b, len(graphic), len(expected))
			}
			for i := range expected {
				if expected[i] != graphic[i] {
					t.Fatalf("range %d-%d: element %d differs", a, b, i)
				}
			}
		}
	}
}

func TestIsSingleASCII(t *testing.T) {
	assert.True(t, isSingleASCII("a"))
	assert.True(t, isSingleASCII("\x00"), "control characters are valid bounds")
	assert.True(t, isSingleASCII("\x7f"))
	assert.False(t, isSingleASCII(""))
	assert.False(t, isSingleASCII("ab"))
	assert.False(t, isSingleASCII("é"))
	assert.False(t, isSingleASCII("\x80"))
}
