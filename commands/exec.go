package commands

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/anomius/nushell/core/binder"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

// ErrExecUnsupported is the cause of every exec failure on platforms that
// can't replace the running process.
var ErrExecUnsupported = errors.New("exec is not supported on your platform")

// ErrExecReturned is reported when a replacer returns without error.
var ErrExecReturned = errors.New("exec returned without replacing the process")

// ProcessReplacer replaces the running program with argv0. It only returns
// if the replacement failed.
type ProcessReplacer func(argv0 string, argv []string, envv []string) error

type execArgs struct {
	Command binder.Spanned[string]   `arg:"command"`
	Rest    []binder.Spanned[string] `arg:"rest"`
}

var execSignature = signature.Build("exec").
	Desc("Execute a command, replacing the current process.").
	Req("command", signature.FilePath, "the command to execute").
	RestOf("rest", signature.GlobPattern, "any additional arguments for the command").
	AllowUnknownArgs().
	In(signature.CategorySystem).
	Ex("Execute external 'ps aux' tool", "exec ps aux", nil).
	Ex("Execute 'nautilus'", "exec nautilus", nil)

// Exec implements exec. A nil Replace means the platform has no way to
// replace the running process.
type Exec struct {
	Replace ProcessReplacer
}

var _ engine.Command = (*Exec)(nil)

// NewExec creates the exec command for the current platform.
func NewExec() *Exec {
	return &Exec{Replace: platformReplacer}
}

func (*Exec) Signature() *signature.Signature {
	return execSignature
}

func (e *Exec) Run(ctx *engine.Context, call *engine.Call, input value.PipelineData) (value.PipelineData, error) {
	if e.Replace == nil {
		return value.PipelineData{}, execError(ErrExecUnsupported, call.Head)
	}

	var args execArgs
	if err := call.Args.Decode(&args); err != nil {
		return value.PipelineData{}, err
	}

	path, err := exec.LookPath(args.Command.Item)
	if err != nil {
		return value.PipelineData{}, execError(err, call.Head)
	}

	argv := []string{args.Command.Item}
	for _, arg := range args.Rest {
		argv = append(argv, arg.Item)
	}

	ctx.RunExitHooks()

	// Never retried: after this point the shell's state is gone.
	err = e.Replace(path, argv, decrementSHLVL(os.Environ()))
	if err == nil {
		err = ErrExecReturned
	}
	return value.PipelineData{}, execError(err, call.Head)
}

func execError(err error, span diag.Span) error {
	return diag.Wrap(err, "Error on exec", err.Error(), span)
}

// decrementSHLVL returns a copy of env with SHLVL lowered by one so the new
// program sees the level of the shell's parent. Non-numeric levels are kept.
func decrementSHLVL(env []string) []string {
	const prefix = "SHLVL="

	out := make([]string, len(env))
	copy(out, env)
	for i, kv := range out {
		if !strings.HasPrefix(kv, prefix) {
			continue
		}
		level, err := strconv.Atoi(strings.TrimPrefix(kv, prefix))
		if err != nil {
			continue
		}
		out[i] = prefix + strconv.Itoa(level-1)
	}
	return out
}

func init() {
	mustAddCmd(NewExec())
}
