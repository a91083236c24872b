package commands

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 16)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 16)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

type echoArgs struct {
	Rest    []binder.Spanned[string] `arg:"rest"`
	Escapes bool                     `arg:"escapes"`
}

// Echo returns its arguments: nothing for none, a string for one and a list
// for several.
var Echo = &SimpleCommand[echoArgs]{
	Sig: signature.Build("echo").
		Desc("Returns its arguments, ignoring the piped-in value.").
		RestOf("rest", signature.String, "the values to echo").
		Flag("escapes", 'e', "interpret backslash escapes").
		In(signature.CategoryCore).
		Ex("Put a list of strings in the pipeline", "echo a b", value.NewList([]value.Value{
			value.NewString("a", diag.Unknown),
			value.NewString("b", diag.Unknown),
		}, diag.Unknown)).
		Ex("Parse tab separated text", `echo -e 'name\tsize\nfoo\t1' | from tsv`,
			table([]string{"name", "size"}, []string{"foo", "1"})),
	Callback: func(ctx *engine.Context, call *engine.Call, args *echoArgs, input value.PipelineData) (value.PipelineData, error) {
		vals := make([]value.Value, 0, len(args.Rest))
		for _, arg := range args.Rest {
			text := arg.Item
			if args.Escapes {
				text = unescape(text)
			}
			vals = append(vals, value.NewString(text, arg.Span))
		}

		switch len(vals) {
		case 0:
			return value.Empty(), nil
		case 1:
			return value.One(vals[0]), nil
		default:
			return value.One(value.NewList(vals, call.Head)), nil
		}
	},
}

func init() {
	mustAddCmd(Echo)
}
