package attributes

import (
	"fmt"
	"sort"
)

// Container is a mutable attribute mapping.  The first failed Set is kept and
// reported by Err; subsequent writes still apply.
type Container struct {
	entries map[string]entry
	err     error
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{entries: make(map[string]entry)}
}

// Set assigns value to attr, replacing any previous value.
func (c *Container) Set(attr Attribute, value any) error {
	if err := attr.check(value); err != nil {
		if c.err == nil {
			c.err = err
		}
		return err
	}
	if prev, ok := c.entries[attr.Name]; ok && prev.attr.Type != attr.Type {
		err := fmt.Errorf("%w: %s already declared as %s", ErrTypeMismatch, attr.Name, prev.attr)
		if c.err == nil {
			c.err = err
		}
		return err
	}
	c.entries[attr.Name] = entry{attr: attr, value: value}
	return nil
}

// MustSet is like Set but panics on a type mismatch.
func (c *Container) MustSet(attr Attribute, value any) *Container {
	if err := c.Set(attr, value); err != nil {
		panic(err)
	}
	return c
}

// Get returns the value of attr.
func (c *Container) Get(attr Attribute) (any, bool) {
	e, ok := c.entries[attr.Name]
	if !ok || e.attr.Type != attr.Type {
		return nil, false
	}
	return e.value, true
}

// Remove deletes attr and reports whether it was present.
func (c *Container) Remove(attr Attribute) bool {
	if _, ok := c.entries[attr.Name]; !ok {
		return false
	}
	delete(c.entries, attr.Name)
	return true
}

// Keys returns the attributes in name order.
func (c *Container) Keys() []Attribute {
	keys := make([]Attribute, 0, len(c.entries))
	for _, e := range c.sorted() {
		keys = append(keys, e.attr)
	}
	return keys
}

// Len returns the number of attributes.
func (c *Container) Len() int {
	return len(c.entries)
}

// Err returns the first error recorded by Set.
func (c *Container) Err() error {
	return c.err
}

// Copy returns a container holding the same attributes, without the recorded
// error.
func (c *Container) Copy() *Container {
	dst := NewContainer()
	for k, e := range c.entries {
		dst.entries[k] = e
	}
	return dst
}

// AsImmutable returns a frozen copy of the container.  The result is not
// interned; use a Factory for that.
func (c *Container) AsImmutable() *Immutable {
	if c == nil || len(c.entries) == 0 {
		return Empty()
	}
	return &Immutable{entries: c.sorted()}
}

func (c *Container) sorted() []entry {
	entries := make([]entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].attr.Name < entries[j].attr.Name
	})
	return entries
}
