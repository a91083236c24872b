// Package commands holds the builtin commands of the shell.
package commands

import (
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

// builtins holds every registered command.
var builtins = engine.NewScope()

// mustAddCmd registers a builtin, it panics if the name is already taken.
func mustAddCmd(cmd engine.Command) {
	builtins.Register(cmd)
}

// Builtins returns the scope with all builtin commands.
func Builtins() *engine.Scope {
	return builtins
}

// RunFunc is the body of a SimpleCommand. args holds the decoded arguments.
type RunFunc[A any] func(ctx *engine.Context, call *engine.Call, args *A, input value.PipelineData) (value.PipelineData, error)

// SimpleCommand pairs a static signature with a run function taking
// arguments decoded into A.
type SimpleCommand[A any] struct {
	Sig      *signature.Signature
	Callback RunFunc[A]
}

var _ engine.Command = (*SimpleCommand[struct{}])(nil)

// Signature implements engine.Command.
func (s *SimpleCommand[A]) Signature() *signature.Signature {
	return s.Sig
}

// Run decodes the bound arguments and calls the callback.
func (s *SimpleCommand[A]) Run(ctx *engine.Context, call *engine.Call, input value.PipelineData) (value.PipelineData, error) {
	var args A
	if err := call.Args.Decode(&args); err != nil {
		return value.PipelineData{}, err
	}
	return s.Callback(ctx, call, &args, input)
}

// table builds a table of string cells with unknown spans.
func table(cols []string, rows ...[]string) value.List {
	out := make([]value.Value, 0, len(rows))
	for _, row := range rows {
		rec := value.Record{Tag: diag.Unknown}
		for i, col := range cols {
			rec.Push(col, value.NewString(row[i], diag.Unknown))
		}
		out = append(out, rec)
	}
	return value.NewList(out, diag.Unknown)
}
