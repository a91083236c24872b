// Package binder matches the raw words of an invocation against a command
// signature and decodes them into typed, span-tagged argument structs.
package binder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/signature"
)

// Word is one argument as it appeared in the source.
type Word struct {
	Text string
	Span diag.Span
	// Quoted words are never treated as switches.
	Quoted bool
}

// Call is the raw input of one invocation.
type Call struct {
	// Head covers the command name words.
	Head  diag.Span
	Words []Word
}

// Args are the arguments of a call after they matched the signature.
type Args struct {
	Head       diag.Span
	Positional []Word
	Rest       []Word
	Switches   map[string]bool
	// Help is set when --help was passed; arity isn't checked in that case.
	Help bool

	sig *signature.Signature
}

// Has reports whether the named switch was passed.
func (a *Args) Has(long string) bool {
	return a.Switches[long]
}

// switchError labels a getopt failure. Only unknown switches are reported
// as such; a known switch given a bad value keeps getopt's message.
func switchError(err error, name string, span diag.Span) error {
	var optErr *getopt.Error
	if errors.As(err, &optErr) && optErr.ErrorCode != getopt.UnknownOption {
		return diag.Wrap(err, "Invalid flag", err.Error(), span)
	}
	return diag.Wrap(err, "Unknown flag", fmt.Sprintf("unknown flag for %s", name), span)
}

func isSwitch(w Word) bool {
	return !w.Quoted && len(w.Text) > 1 && strings.HasPrefix(w.Text, "-")
}

// Bind checks the call against sig. It has no side effects.
func Bind(sig *signature.Signature, call Call) (*Args, error) {
	var positional, switchWords []Word
	endOfSwitches := false
	for _, w := range call.Words {
		switch {
		case endOfSwitches:
			positional = append(positional, w)
		case !w.Quoted && w.Text == "--":
			endOfSwitches = true
		case isSwitch(w):
			switchWords = append(switchWords, w)
		default:
			positional = append(positional, w)
			endOfSwitches = sig.AllowsUnknownArgs
		}
	}

	opts := getopt.New()
	opts.SetProgram(sig.Name)
	values := make(map[string]*bool)
	for _, sw := range sig.AllSwitches() {
		values[sw.Long] = opts.BoolLong(sw.Long, sw.Short, sw.Description)
	}

	// One word at a time so a bad switch is attributed to its own word.
	for _, w := range switchWords {
		if err := opts.Getopt([]string{sig.Name, w.Text}, nil); err != nil {
			return nil, switchError(err, sig.Name, w.Span)
		}
	}

	args := &Args{
		Head:     call.Head,
		Switches: make(map[string]bool, len(values)),
		sig:      sig,
	}
	for long, v := range values {
		if long == signature.HelpSwitch.Long {
			args.Help = *v
			continue
		}
		args.Switches[long] = *v
	}
	if args.Help {
		return args, nil
	}

	for i, p := range sig.Required {
		if i >= len(positional) {
			return nil, diag.Labeled(
				"Missing required positional argument",
				fmt.Sprintf("missing %s", p.Name),
				call.Head)
		}
		if err := checkShape(p, positional[i]); err != nil {
			return nil, err
		}
		args.Positional = append(args.Positional, positional[i])
	}

	extra := positional[len(sig.Required):]
	if len(extra) > 0 && sig.Rest == nil {
		return nil, diag.Labeled(
			"Extra positional argument",
			fmt.Sprintf("%s takes %d positional argument(s)", sig.Name, len(sig.Required)),
			extra[0].Span)
	}
	for _, w := range extra {
		if err := checkShape(*sig.Rest, w); err != nil {
			return nil, err
		}
		args.Rest = append(args.Rest, w)
	}

	return args, nil
}

func checkShape(p signature.Param, w Word) error {
	var ok bool
	switch p.Shape {
	case signature.String:
		ok = true
	case signature.FilePath:
		ok = w.Text != "" && !strings.ContainsRune(w.Text, 0)
	case signature.GlobPattern:
		ok = !strings.ContainsRune(w.Text, 0)
	case signature.Int:
		_, err := strconv.Atoi(w.Text)
		ok = err == nil
	}

	if !ok {
		return diag.Labeled("Type mismatch", fmt.Sprintf("expected %s for %s", p.Shape, p.Name), w.Span)
	}
	return nil
}
