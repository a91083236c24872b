// Package help renders the usage text of commands.
package help

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anomius/nushell/core/signature"
)

// Scope lists the signatures of the commands that are currently visible.
type Scope interface {
	Signatures() []*signature.Signature
}

// Usage returns the one line usage string, e.g. "seq char {flags} <start> <end>".
func Usage(sig *signature.Signature) string {
	parts := []string{sig.Name, "{flags}"}
	for _, p := range sig.Required {
		parts = append(parts, "<"+p.Name+">")
	}
	if sig.Rest != nil {
		parts = append(parts, "...("+sig.Rest.Name+")")
	}
	return strings.Join(parts, " ")
}

// Full renders the complete help of a command. scope may be nil, in which
// case subcommands are not listed.
func Full(sig *signature.Signature, scope Scope) string {
	var b strings.Builder

	if sig.Description != "" {
		b.WriteString(sig.Description)
		b.WriteString("\n\n")
	}

	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  > %s\n", Usage(sig))

	if subs := subcommands(sig, scope); len(subs) > 0 {
		b.WriteString("\nSubcommands:\n")
		for _, sub := range subs {
			fmt.Fprintf(&b, "  %s - %s\n", sub.Name, sub.Description)
		}
	}

	if len(sig.Required) > 0 || sig.Rest != nil {
		b.WriteString("\nParameters:\n")
		for _, p := range sig.Required {
			fmt.Fprintf(&b, "  %s <%s>: %s\n", p.Name, p.Shape, p.Description)
		}
		if sig.Rest != nil {
			fmt.Fprintf(&b, "  ...%s <%s>: %s\n", sig.Rest.Name, sig.Rest.Shape, sig.Rest.Description)
		}
	}

	b.WriteString("\nFlags:\n")
	for _, sw := range sig.AllSwitches() {
		if sw.Short != 0 {
			fmt.Fprintf(&b, "  -%c, --%s: %s\n", sw.Short, sw.Long, sw.Description)
		} else {
			fmt.Fprintf(&b, "  --%s: %s\n", sw.Long, sw.Description)
		}
	}

	if len(sig.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for i, ex := range sig.Examples {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  %s\n", ex.Description)
			fmt.Fprintf(&b, "  > %s\n", ex.Example)
		}
	}

	return b.String()
}

func subcommands(sig *signature.Signature, scope Scope) []*signature.Signature {
	if scope == nil {
		return nil
	}
	var out []*signature.Signature
	prefix := sig.Name + " "
	for _, s := range scope.Signatures() {
		if strings.HasPrefix(s.Name, prefix) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
