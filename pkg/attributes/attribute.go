// Package attributes models the typed key/value mapping that describes a
// selectable variant of a component.
package attributes

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch is returned when a value does not have the type declared by
// its attribute.
var ErrTypeMismatch = errors.New("attribute type mismatch")

// Attribute is a named, typed attribute key.  Two attributes with the same
// name must have the same type.  A value may be set if it is assignable to
// the type, so interface-typed keys accept any implementation.
type Attribute struct {
	Name string
	Type reflect.Type
}

// Of returns the attribute named name holding values of type T.
func Of[T any](name string) Attribute {
	return Attribute{Name: name, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s(%v)", a.Name, a.Type)
}

func (a Attribute) check(value any) error {
	if value == nil || !reflect.TypeOf(value).AssignableTo(a.Type) {
		return fmt.Errorf("%w: %s cannot hold %T", ErrTypeMismatch, a, value)
	}
	return nil
}

type entry struct {
	attr  Attribute
	value any
}
