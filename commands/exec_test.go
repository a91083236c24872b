package commands

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/engine"
)

type replaceCall struct {
	argv0 string
	argv  []string
	envv  []string
}

func execEngine(replace ProcessReplacer) *engine.Engine {
	scope := engine.NewScope()
	scope.Register(&Exec{Replace: replace})
	return engine.New(scope, nil)
}

func TestExec_unsupported(t *testing.T) {
	for _, source := range []string{
		"exec ls -la",
		"exec /does/not/exist",
		"exec",
	} {
		t.Run(source, func(t *testing.T) {
			_, err := execEngine(nil).Eval(source)
			if source == "exec" {
				// Binding fails before the command runs.
				assert.Error(t, err)
				return
			}

			assert.True(t, errors.Is(err, ErrExecUnsupported))
			var labeled *diag.Error
			require.True(t, errors.As(err, &labeled))
			assert.Equal(t, "Error on exec", labeled.Title)
			assert.Equal(t, "exec is not supported on your platform", labeled.Label)
			assert.Equal(t, diag.Span{From: 0, To: 4}, labeled.Span)
		})
	}
}

func TestExec_notFound(t *testing.T) {
	called := false
	e := execEngine(func(string, []string, []string) error {
		called = true
		return nil
	})
	hooksRan := false
	e.AtExit(func() { hooksRan = true })

	_, err := e.Eval("exec /does/not/exist/nushell-test-binary arg")

	var labeled *diag.Error
	require.True(t, errors.As(err, &labeled))
	assert.Equal(t, "Error on exec", labeled.Title)
	assert.Equal(t, diag.Span{From: 0, To: 4}, labeled.Span)
	assert.False(t, called, "replacement must not be attempted")
	assert.False(t, hooksRan, "exit hooks must not run when the program is missing")
}

func TestExec_replaces(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)
	t.Setenv("SHLVL", "3")

	var got []replaceCall
	e := execEngine(func(argv0 string, argv []string, envv []string) error {
		got = append(got, replaceCall{argv0, argv, envv})
		return errors.New("permission denied")
	})
	var order []string
	e.AtExit(func() { order = append(order, "hook") })

	_, err = e.Eval("exec '" + self + "' -la 'two words' --")

	var labeled *diag.Error
	require.True(t, errors.As(err, &labeled))
	assert.Equal(t, "permission denied", labeled.Label)

	require.Len(t, got, 1)
	assert.Equal(t, self, got[0].argv0)
	assert.Equal(t, []string{self, "-la", "two words", "--"}, got[0].argv)
	assert.Contains(t, got[0].envv, "SHLVL=2")
	assert.Equal(t, []string{"hook"}, order)
}

func TestExec_replacerReturns(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)

	e := execEngine(func(string, []string, []string) error { return nil })

	out, err := e.Eval("exec '" + self + "'")

	assert.True(t, out.IsEmpty())
	assert.True(t, errors.Is(err, ErrExecReturned))
	var labeled *diag.Error
	require.True(t, errors.As(err, &labeled))
	assert.Equal(t, "Error on exec", labeled.Title)
	assert.Equal(t, "exec returned without replacing the process", labeled.Label)
	assert.Equal(t, diag.Span{From: 0, To: 4}, labeled.Span)
}

func TestDecrementSHLVL(t *testing.T) {
	env := []string{"A=1", "SHLVL=5", "B=2"}
	assert.Equal(t, []string{"A=1", "SHLVL=4", "B=2"}, decrementSHLVL(env))
	assert.Equal(t, "SHLVL=5", env[1], "input is not modified")

	assert.Equal(t, []string{"SHLVL=x"}, decrementSHLVL([]string{"SHLVL=x"}))
	assert.Equal(t, []string{"A=1"}, decrementSHLVL([]string{"A=1"}))
}

func TestNewExec_platform(t *testing.T) {
	assert.Equal(t, platformReplacer == nil, NewExec().Replace == nil)
}
