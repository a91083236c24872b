package engine

import (
	"fmt"
	"sort"

	"github.com/anomius/nushell/core/signature"
)

// Scope holds the registered commands keyed by name.
type Scope struct {
	commands map[string]Command
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{commands: make(map[string]Command)}
}

// Register adds a command. Registering a name twice is a programming error.
func (s *Scope) Register(cmd Command) {
	name := cmd.Signature().Name
	if _, exists := s.commands[name]; exists {
		panic(fmt.Sprintf("command with name %q already registered", name))
	}
	s.commands[name] = cmd
}

// Lookup finds a command by its full name.
func (s *Scope) Lookup(name string) (Command, bool) {
	cmd, ok := s.commands[name]
	return cmd, ok
}

// Signatures returns the signatures of all commands sorted by name.
func (s *Scope) Signatures() []*signature.Signature {
	out := make([]*signature.Signature, 0, len(s.commands))
	for _, cmd := range s.commands {
		out = append(out, cmd.Signature())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
