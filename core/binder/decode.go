package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/anomius/nushell/core/diag"
)

// ErrSignatureMismatch is returned when a typed argument struct doesn't agree
// with the signature it's decoded against.
var ErrSignatureMismatch = errors.New("binder: argument struct does not match signature")

// Spanned is an argument value together with the span it came from.
type Spanned[T string | int] struct {
	Item T
	Span diag.Span
}

type spannedSetter interface {
	set(w Word) error
}

func (s *Spanned[T]) set(w Word) error {
	s.Span = w.Span
	switch p := any(&s.Item).(type) {
	case *string:
		*p = w.Text
	case *int:
		i, err := strconv.Atoi(w.Text)
		if err != nil {
			return diag.Wrap(err, "Type mismatch", "expected int", w.Span)
		}
		*p = i
	}
	return nil
}

// Decode fills the struct pointed to by dst. Fields are matched by their
// `arg` tag against the parameter and switch names of the signature:
// required parameters decode into Spanned fields, the rest parameter into a
// slice of Spanned, and switches into bool fields.
//
// Every required and rest parameter must have a field, and every tagged
// field must name something in the signature; otherwise Decode fails with
// ErrSignatureMismatch.
func (a *Args) Decode(dst interface{}) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T is not a pointer to a struct", ErrSignatureMismatch, dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	required := make(map[string]int)
	for i, p := range a.sig.Required {
		required[p.Name] = i
	}
	bound := make(map[string]bool)

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name, ok := field.Tag.Lookup("arg")
		if !ok {
			continue
		}
		fv := rv.Field(i)

		switch {
		case hasKey(required, name):
			setter, ok := fv.Addr().Interface().(spannedSetter)
			if !ok {
				return fmt.Errorf("%w: field %s for %q is %s", ErrSignatureMismatch, field.Name, name, field.Type)
			}
			if idx := required[name]; idx < len(a.Positional) {
				if err := setter.set(a.Positional[idx]); err != nil {
					return err
				}
			}

		case a.sig.Rest != nil && a.sig.Rest.Name == name:
			if fv.Kind() != reflect.Slice {
				return fmt.Errorf("%w: field %s for rest %q is %s", ErrSignatureMismatch, field.Name, name, field.Type)
			}
			out := reflect.MakeSlice(fv.Type(), len(a.Rest), len(a.Rest))
			for j, w := range a.Rest {
				setter, ok := out.Index(j).Addr().Interface().(spannedSetter)
				if !ok {
					return fmt.Errorf("%w: field %s for rest %q is %s", ErrSignatureMismatch, field.Name, name, field.Type)
				}
				if err := setter.set(w); err != nil {
					return err
				}
			}
			fv.Set(out)

		default:
			if _, ok := a.sig.LookupSwitch(name); !ok {
				return fmt.Errorf("%w: field %s names unknown parameter %q", ErrSignatureMismatch, field.Name, name)
			}
			if fv.Kind() != reflect.Bool {
				return fmt.Errorf("%w: field %s for switch %q is %s", ErrSignatureMismatch, field.Name, name, field.Type)
			}
			fv.SetBool(a.Switches[name])
		}
		bound[name] = true
	}

	for _, p := range a.sig.Required {
		if !bound[p.Name] {
			return fmt.Errorf("%w: no field for required parameter %q", ErrSignatureMismatch, p.Name)
		}
	}
	if a.sig.Rest != nil && !bound[a.sig.Rest.Name] {
		return fmt.Errorf("%w: no field for rest parameter %q", ErrSignatureMismatch, a.sig.Rest.Name)
	}
	return nil
}

func hasKey(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}
