package commands

import (
	"fmt"
	"strings"

	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/help"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

type helpArgs struct {
	Rest []binder.Spanned[string] `arg:"rest"`
}

// Help lists the commands in scope, or shows the help of one command.
var Help = &SimpleCommand[helpArgs]{
	Sig: signature.Build("help").
		Desc("Display help information about commands.").
		RestOf("rest", signature.String, "the name of command to get help on").
		In(signature.CategoryCore).
		Ex("show all commands and sub-commands", "help", nil).
		Ex("show help for single command", "help seq char", nil),
	Callback: func(ctx *engine.Context, call *engine.Call, args *helpArgs, input value.PipelineData) (value.PipelineData, error) {
		if len(args.Rest) == 0 {
			return value.One(commandTable(ctx.Scope)), nil
		}

		words := make([]string, len(args.Rest))
		span := diag.Unknown
		for i, w := range args.Rest {
			words[i] = w.Item
			span = span.Merge(w.Span)
		}
		name := strings.Join(words, " ")

		cmd, ok := ctx.Scope.Lookup(name)
		if !ok {
			return value.PipelineData{}, diag.Labeled(
				"Command not found",
				fmt.Sprintf("%s is not a builtin command", name),
				span)
		}
		return value.One(value.NewString(help.Full(cmd.Signature(), ctx.Scope), diag.Unknown)), nil
	},
}

// commandTable lists name, category and description of every command.
func commandTable(scope *engine.Scope) value.List {
	var rows [][]string
	for _, sig := range scope.Signatures() {
		rows = append(rows, []string{sig.Name, string(sig.Category), sig.Description})
	}
	return table([]string{"name", "category", "description"}, rows...)
}

func init() {
	mustAddCmd(Help)
}
