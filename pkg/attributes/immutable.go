package attributes

import (
	"fmt"
	"strings"
)

var empty = &Immutable{}

// Immutable is a frozen, name-ordered attribute set.
type Immutable struct {
	entries []entry
}

// Empty returns the shared empty attribute set.
func Empty() *Immutable {
	return empty
}

// Get returns the value of attr.
func (a *Immutable) Get(attr Attribute) (any, bool) {
	for _, e := range a.entries {
		if e.attr.Name == attr.Name {
			if e.attr.Type != attr.Type {
				return nil, false
			}
			return e.value, true
		}
	}
	return nil, false
}

// Value returns the value of attr as T.
func Value[T any](a *Immutable, attr Attribute) (T, bool) {
	var zero T
	v, ok := a.Get(attr)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Keys returns the attributes in name order.
func (a *Immutable) Keys() []Attribute {
	keys := make([]Attribute, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.attr
	}
	return keys
}

// Len returns the number of attributes.
func (a *Immutable) Len() int {
	return len(a.entries)
}

// IsEmpty reports whether the set has no attributes.
func (a *Immutable) IsEmpty() bool {
	return len(a.entries) == 0
}

// AsMap returns a copy of the set keyed by attribute name.
func (a *Immutable) AsMap() map[string]any {
	m := make(map[string]any, len(a.entries))
	for _, e := range a.entries {
		m[e.attr.Name] = e.value
	}
	return m
}

// Mutable returns a mutable container holding the same attributes.
func (a *Immutable) Mutable() *Container {
	c := NewContainer()
	for _, e := range a.entries {
		c.entries[e.attr.Name] = e
	}
	return c
}

// String returns the set as {name=value, ...}.
func (a *Immutable) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range a.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", e.attr.Name, e.value)
	}
	sb.WriteByte('}')
	return sb.String()
}
