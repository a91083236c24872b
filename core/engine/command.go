// Package engine threads pipeline data through builtin commands.
package engine

import (
	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

// Command is implemented by every builtin.
type Command interface {
	// Signature returns the command's descriptor. It must return the same,
	// unmodified descriptor for the life of the process.
	Signature() *signature.Signature

	// Run executes one invocation. It returns a single value, a lazy stream,
	// or a labeled error; it never logs.
	Run(ctx *Context, call *Call, input value.PipelineData) (value.PipelineData, error)
}

// Call is one invocation of a command.
type Call struct {
	// Head is the span of the command name.
	Head diag.Span
	Args *binder.Args
}

// Context is the part of the engine visible to a running command.
type Context struct {
	Scope *Scope

	engine *Engine
}

// RunExitHooks runs the engine's exit hooks. Commands that end the process
// call it first.
func (c *Context) RunExitHooks() {
	if c.engine != nil {
		c.engine.RunExitHooks()
	}
}
