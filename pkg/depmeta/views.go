package depmeta

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/stackb/metadata-rules/pkg/collections"
)

// module is the part shared by the dependency and constraint views.
type module struct {
	desc   Descriptor
	origin int
	dirty  bool
}

// Group returns the module group.
func (m *module) Group() string { return m.desc.Group }

// Name returns the module name.
func (m *module) Name() string { return m.desc.Name }

// Module returns group:name.
func (m *module) Module() string { return m.desc.ModuleID() }

// VersionConstraint returns a copy of the requested version.
func (m *module) VersionConstraint() VersionConstraint {
	return m.desc.Clone().Version
}

// Version edits the requested version in place.
func (m *module) Version(configure func(*VersionConstraint)) {
	configure(&m.desc.Version)
	m.dirty = true
}

// Reason returns why the dependency is declared.
func (m *module) Reason() string { return m.desc.Reason }

// Because sets the reason.
func (m *module) Because(reason string) {
	m.desc.Reason = reason
	m.dirty = true
}

func (m *module) String() string { return m.desc.String() }

// DirectDependency is the view a rule gets of one dependency.
type DirectDependency struct {
	module
}

// Excludes returns a copy of the dependency's excludes.
func (d *DirectDependency) Excludes() []Exclude {
	return append([]Exclude(nil), d.desc.Excludes...)
}

// Exclude adds an exclude for group:name; either may be empty to match
// anything.
func (d *DirectDependency) Exclude(group, name string) {
	d.desc.Excludes = append(d.desc.Excludes, Exclude{Group: group, Module: name})
	d.dirty = true
}

// DependencyConstraint is the view a rule gets of one dependency constraint.
type DependencyConstraint struct {
	module
}

type element interface {
	*DirectDependency | *DependencyConstraint
	meta() *module
}

func (d *DirectDependency) meta() *module     { return &d.module }
func (c *DependencyConstraint) meta() *module { return &c.module }

// list is a mutable, ordered list of views.  Notation errors from Add are
// kept; the first one is reported by Err.
type list[E element] struct {
	parser NotationParser
	items  []E
	err    error
	wrap   func(module) E
}

// All returns the current elements in order.
func (l *list[E]) All() []E {
	return append([]E(nil), l.items...)
}

// Len returns the number of elements.
func (l *list[E]) Len() int {
	return len(l.items)
}

// Add parses notation, appends the result and applies configure to it.
func (l *list[E]) Add(notation any, configure ...func(E)) error {
	d, err := l.parser.ParseNotation(notation)
	if err != nil {
		l.record(err)
		return err
	}
	e := l.wrap(module{desc: d, origin: -1, dirty: true})
	for _, fn := range configure {
		fn(e)
	}
	l.items = append(l.items, e)
	return nil
}

// Remove removes e and reports whether it was present.
func (l *list[E]) Remove(e E) bool {
	i := collections.SliceIndex(l.items, e)
	if i < 0 {
		return false
	}
	l.items = collections.SliceRemoveIndex(l.items, i)
	return true
}

// RemoveIf removes every element matching pred and returns how many were
// removed.
func (l *list[E]) RemoveIf(pred func(E) bool) int {
	var n int
	l.items, n = collections.SliceRemoveFunc(l.items, pred)
	return n
}

// RemoveMatching removes every element whose group:name matches the
// doublestar pattern, such as "org.slf4j:*".
func (l *list[E]) RemoveMatching(pattern string) (int, error) {
	if !doublestar.ValidatePattern(pattern) {
		err := fmt.Errorf("invalid module pattern %q: %w", pattern, doublestar.ErrBadPattern)
		l.record(err)
		return 0, err
	}
	return l.RemoveIf(func(e E) bool {
		ok, _ := doublestar.Match(pattern, e.meta().desc.ModuleID())
		return ok
	}), nil
}

// Err returns the first error recorded by Add or RemoveMatching.
func (l *list[E]) Err() error {
	return l.err
}

func (l *list[E]) record(err error) {
	if l.err == nil {
		l.err = err
	}
}

// DirectDependencies is the view dependency rules mutate.
type DirectDependencies struct {
	list[*DirectDependency]
}

// DependencyConstraints is the view dependency constraint rules mutate.
type DependencyConstraints struct {
	list[*DependencyConstraint]
}

func newDirectDependencies(parser NotationParser, descs []module) *DirectDependencies {
	v := &DirectDependencies{list[*DirectDependency]{
		parser: parser,
		wrap:   func(m module) *DirectDependency { return &DirectDependency{m} },
	}}
	for _, m := range descs {
		v.items = append(v.items, v.wrap(m))
	}
	return v
}

func newDependencyConstraints(parser NotationParser, descs []module) *DependencyConstraints {
	v := &DependencyConstraints{list[*DependencyConstraint]{
		parser: parser,
		wrap:   func(m module) *DependencyConstraint { return &DependencyConstraint{m} },
	}}
	for _, m := range descs {
		v.items = append(v.items, v.wrap(m))
	}
	return v
}
