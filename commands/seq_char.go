package commands

import (
	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

type seqCharArgs struct {
	Start   binder.Spanned[string] `arg:"start"`
	End     binder.Spanned[string] `arg:"end"`
	Graphic bool                   `arg:"graphic"`
}

var seqCharSignature = signature.Build("seq char").
	Desc("Print a sequence of ASCII characters.").
	Req("start", signature.String, "Start of character sequence (inclusive).").
	Req("end", signature.String, "End of character sequence (inclusive).").
	Flag("graphic", 'g', "Only include ASCII graphic characters in the output").
	In(signature.CategoryGenerators).
	Ex("sequence a to e", "seq char a e", value.NewList([]value.Value{
		value.NewString("a", diag.Unknown),
		value.NewString("b", diag.Unknown),
		value.NewString("c", diag.Unknown),
		value.NewString("d", diag.Unknown),
		value.NewString("e", diag.Unknown),
	}, diag.Unknown)).
	Ex("sequence a to e, and put the characters in a pipe-separated string", "seq char a e | str join '|'", nil)

// SeqChar implements seq char.
var SeqChar = &SimpleCommand[seqCharArgs]{
	Sig: seqCharSignature,
	Callback: func(ctx *engine.Context, call *engine.Call, args *seqCharArgs, input value.PipelineData) (value.PipelineData, error) {
		// Both bounds are validated before anything is generated.
		for _, bound := range []binder.Spanned[string]{args.Start, args.End} {
			if !isSingleASCII(bound.Item) {
				return value.PipelineData{}, diag.Labeled(
					"seq char only accepts individual ASCII characters as parameters",
					"input should be a single ASCII character",
					bound.Span)
			}
		}

		return value.One(CharRange(args.Start.Item[0], args.End.Item[0], args.Graphic, call.Head)), nil
	},
}

// isSingleASCII reports whether s is exactly one ASCII character. Control
// characters are accepted.
func isSingleASCII(s string) bool {
	return len(s) == 1 && s[0] < 0x80
}

// isASCIIGraphic reports whether c is a printable ASCII character other
// than space.
func isASCIIGraphic(c byte) bool {
	return c >= '!' && c <= '~'
}

// CharRange lists the characters from start to end inclusive, each tagged
// with span. The list is empty if start > end.
func CharRange(start, end byte, graphic bool, span diag.Span) value.List {
	out := []value.Value{}
	for c := int(start); c <= int(end); c++ {
		if graphic && !isASCIIGraphic(byte(c)) {
			continue
		}
		out = append(out, value.NewString(string(rune(c)), span))
	}
	return value.NewList(out, span)
}

func init() {
	mustAddCmd(SeqChar)
}
