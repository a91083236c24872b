package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/help"
	"github.com/anomius/nushell/core/logger"
	"github.com/anomius/nushell/core/value"
)

// ErrUnknownCommand is the cause of errors for stages naming no command.
var ErrUnknownCommand = errors.New("unknown command")

// EventRecorder receives an event for every stage the engine runs.
type EventRecorder interface {
	Record(event logger.LogType) error
}

type nopRecorder struct{}

func (nopRecorder) Record(logger.LogType) error { return nil }

// Engine evaluates pipelines against a scope of commands.
type Engine struct {
	// Name identifies the source in error excerpts.
	Name   string
	Scope  *Scope
	Events EventRecorder

	mu        sync.Mutex
	exitHooks []func()
	exited    bool
}

// New creates an engine. events may be nil.
func New(scope *Scope, events EventRecorder) *Engine {
	if events == nil {
		events = nopRecorder{}
	}
	return &Engine{Name: "[interactive]", Scope: scope, Events: events}
}

// AtExit registers a hook that runs before the process ends, including when
// it's replaced by exec.
func (e *Engine) AtExit(hook func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exitHooks = append(e.exitHooks, hook)
}

// RunExitHooks runs the registered hooks in reverse order of registration.
// Only the first call has an effect.
func (e *Engine) RunExitHooks() {
	e.mu.Lock()
	if e.exited {
		e.mu.Unlock()
		return
	}
	e.exited = true
	hooks := e.exitHooks
	e.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}

// Eval parses source and runs its stages in order, feeding the output of
// each stage into the next. The first stage receives no input.
func (e *Engine) Eval(source string) (value.PipelineData, error) {
	stages, err := Parse(e.Name, source)
	if err != nil {
		return value.PipelineData{}, err
	}

	data := value.Empty()
	for _, words := range stages {
		data, err = e.runStage(words, data)
		if err != nil {
			return value.PipelineData{}, err
		}
	}
	return data, nil
}

// Resolve finds the command named by the leading words of a stage. Two-word
// names take precedence over one-word names.
func (e *Engine) Resolve(words []binder.Word) (Command, binder.Call, error) {
	if len(words) >= 2 && !words[0].Quoted && !words[1].Quoted {
		if cmd, ok := e.Scope.Lookup(words[0].Text + " " + words[1].Text); ok {
			return cmd, binder.Call{Head: words[0].Span.Merge(words[1].Span), Words: words[2:]}, nil
		}
	}
	if cmd, ok := e.Scope.Lookup(words[0].Text); ok {
		return cmd, binder.Call{Head: words[0].Span, Words: words[1:]}, nil
	}

	err := diag.Wrap(ErrUnknownCommand,
		"Command not found",
		fmt.Sprintf("%s is not a builtin command", words[0].Text),
		words[0].Span)
	return nil, binder.Call{}, err
}

func (e *Engine) runStage(words []binder.Word, input value.PipelineData) (value.PipelineData, error) {
	cmd, rawCall, err := e.Resolve(words)
	if err != nil {
		e.record(&logger.UnknownCommand{Command: texts(words)})
		return value.PipelineData{}, err
	}

	sig := cmd.Signature()
	start := time.Now()
	out, err := e.invoke(cmd, rawCall, input)

	event := &logger.Invocation{
		Command:        sig.Name,
		Args:           texts(rawCall.Words),
		DurationMicros: time.Since(start).Microseconds(),
	}
	if err != nil {
		event.Error = err.Error()
		var labeled *diag.Error
		if errors.As(err, &labeled) {
			event.ErrorTitle = labeled.Title
		}
	}
	e.record(event)

	return out, err
}

func (e *Engine) invoke(cmd Command, rawCall binder.Call, input value.PipelineData) (value.PipelineData, error) {
	sig := cmd.Signature()
	args, err := binder.Bind(sig, rawCall)
	if err != nil {
		return value.PipelineData{}, err
	}
	if args.Help {
		return value.One(value.NewString(help.Full(sig, e.Scope), diag.Unknown)), nil
	}

	ctx := &Context{Scope: e.Scope, engine: e}
	return cmd.Run(ctx, &Call{Head: rawCall.Head, Args: args}, input)
}

func (e *Engine) record(event logger.LogType) {
	// Best effort.
	_ = e.Events.Record(event)
}

func texts(words []binder.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
