// Package signature describes commands: their name, parameters, switches and
// documented examples.
package signature

import (
	"github.com/anomius/nushell/core/value"
)

// Shape is the declared syntactic shape of a parameter.
type Shape int

const (
	String Shape = iota
	FilePath
	GlobPattern
	Int
)

func (s Shape) String() string {
	switch s {
	case String:
		return "string"
	case FilePath:
		return "path"
	case GlobPattern:
		return "pattern"
	case Int:
		return "int"
	default:
		return "unknown"
	}
}

// Category groups commands in listings.
type Category string

const (
	CategoryDefault    Category = "default"
	CategoryFormats    Category = "formats"
	CategoryGenerators Category = "generators"
	CategorySystem     Category = "system"
	CategoryCore       Category = "core"
)

// Param is a positional parameter.
type Param struct {
	Name        string
	Shape       Shape
	Description string
}

// Switch is a named boolean flag. Short is 0 when the switch has no alias.
type Switch struct {
	Long        string
	Short       rune
	Description string
}

// Example is a documented usage of a command. Result is nil when the
// example's output isn't checked.
type Example struct {
	Description string
	Example     string
	Result      value.Value
}

// Signature is the static descriptor of a command. It must not be modified
// after the command is registered.
type Signature struct {
	Name        string
	Description string
	Required    []Param
	Rest        *Param
	Switches    []Switch
	Category    Category
	Examples    []Example

	// AllowsUnknownArgs stops switch parsing at the first positional word so
	// the remaining words reach the command untouched.
	AllowsUnknownArgs bool
}

// Build starts a signature for the named command.
func Build(name string) *Signature {
	return &Signature{Name: name, Category: CategoryDefault}
}

// Desc sets the one line description.
func (s *Signature) Desc(description string) *Signature {
	s.Description = description
	return s
}

// Req appends a required positional parameter.
func (s *Signature) Req(name string, shape Shape, description string) *Signature {
	s.Required = append(s.Required, Param{Name: name, Shape: shape, Description: description})
	return s
}

// RestOf sets the variadic parameter that collects trailing arguments.
func (s *Signature) RestOf(name string, shape Shape, description string) *Signature {
	s.Rest = &Param{Name: name, Shape: shape, Description: description}
	return s
}

// Flag adds a boolean switch; short may be 0.
func (s *Signature) Flag(long string, short rune, description string) *Signature {
	s.Switches = append(s.Switches, Switch{Long: long, Short: short, Description: description})
	return s
}

// AllowUnknownArgs sets AllowsUnknownArgs.
func (s *Signature) AllowUnknownArgs() *Signature {
	s.AllowsUnknownArgs = true
	return s
}

// In sets the category.
func (s *Signature) In(c Category) *Signature {
	s.Category = c
	return s
}

// Ex appends an example.
func (s *Signature) Ex(description, example string, result value.Value) *Signature {
	s.Examples = append(s.Examples, Example{Description: description, Example: example, Result: result})
	return s
}

// LookupSwitch finds a switch by its long name.
func (s *Signature) LookupSwitch(long string) (Switch, bool) {
	for _, sw := range s.Switches {
		if sw.Long == long {
			return sw, true
		}
	}
	return Switch{}, false
}

// HelpSwitch is accepted by every command.
var HelpSwitch = Switch{Long: "help", Short: 'h', Description: "Display the help message for this command"}

// AllSwitches returns the declared switches preceded by the implicit help
// switch. The help switch loses its short alias if the command claims it.
func (s *Signature) AllSwitches() []Switch {
	help := HelpSwitch
	for _, sw := range s.Switches {
		if sw.Short == help.Short {
			help.Short = 0
		}
	}
	return append([]Switch{help}, s.Switches...)
}
