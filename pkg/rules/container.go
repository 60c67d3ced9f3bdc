// Package rules holds the component metadata rules declared for a module and
// applies them to its dependencies and variant attributes during resolution.
package rules

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/stackb/metadata-rules/pkg/attributes"
	"github.com/stackb/metadata-rules/pkg/depmeta"
)

type mode int

const (
	modeMutable mode = iota
	modeImmutable
)

// State describes which rule sets a container holds.
type State int

const (
	Empty State = iota
	DepsOnly
	AttrsOnly
	Both
	ImmutableNoOp
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case DepsOnly:
		return "DepsOnly"
	case AttrsOnly:
		return "AttrsOnly"
	case Both:
		return "Both"
	case ImmutableNoOp:
		return "ImmutableNoOp"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Container or Registry.
type Option func(*options) *options

type options struct {
	logger     zerolog.Logger
	repository string
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) *options {
		o.logger = logger
		return o
	}
}

// WithMavenRepository sets the external repository a Registry labels its
// modules in.
func WithMavenRepository(name string) Option {
	return func(o *options) *options {
		o.repository = name
		return o
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zerolog.Nop(), repository: DefaultMavenRepository}
	for _, opt := range opts {
		o = opt(o)
	}
	return o
}

var noOp = &Container{mode: modeImmutable, logger: zerolog.Nop()}

// NoOp returns the shared immutable container.  It holds no rules, passes
// everything through unchanged and rejects every add.
func NoOp() *Container {
	return noOp
}

// GetOrDefault returns c, or the shared no-op container if c is nil.
func GetOrDefault(c *Container) *Container {
	if c != nil {
		return c
	}
	return noOp
}

// Container holds the dependency metadata rules and variant attribute rules
// declared for one component.  Rule sets are created on first add.
//
// A mutable container is populated during configuration and applied during
// resolution; the two phases must not overlap, as nothing here locks.
type Container struct {
	mode            mode
	dependencyRules *depmeta.RuleSet
	attributeRules  *attributes.RuleSet
	applied         atomic.Bool
	logger          zerolog.Logger
}

// New returns an empty mutable container.
func New(opts ...Option) *Container {
	o := newOptions(opts)
	return &Container{mode: modeMutable, logger: o.logger}
}

// State reports which rule sets are present.
func (c *Container) State() State {
	if c.mode == modeImmutable {
		return ImmutableNoOp
	}
	switch {
	case c.dependencyRules != nil && c.attributeRules != nil:
		return Both
	case c.dependencyRules != nil:
		return DepsOnly
	case c.attributeRules != nil:
		return AttrsOnly
	default:
		return Empty
	}
}

// IsImmutable reports whether the container rejects new rules.
func (c *Container) IsImmutable() bool {
	return c.mode == modeImmutable
}

// ApplyVariantAttributeRules runs the attribute rules against source and
// returns the result.  Without attribute rules source is returned frozen and
// unchanged.
func (c *Container) ApplyVariantAttributeRules(source *attributes.Container) (*attributes.Immutable, error) {
	switch c.mode {
	case modeImmutable:
		return source.AsImmutable(), nil
	default:
		c.markApplied()
		if c.attributeRules == nil {
			return source.AsImmutable(), nil
		}
		return c.attributeRules.Execute(source)
	}
}

// ApplyDependencyMetadataRules runs the dependency rules of c against deps.
// Without dependency rules deps itself is returned.
func ApplyDependencyMetadataRules[T depmeta.Metadata[T]](c *Container, deps []T) ([]T, error) {
	switch c.mode {
	case modeImmutable:
		return deps, nil
	default:
		c.markApplied()
		if c.dependencyRules == nil {
			return deps, nil
		}
		return depmeta.Execute(c.dependencyRules, deps)
	}
}

// AddDependencyAction registers an action against the direct dependencies.
// The parsers are used only if this call creates the dependency rule set.
func (c *Container) AddDependencyAction(dependencyParser, constraintParser depmeta.NotationParser, action depmeta.DependenciesAction) error {
	if err := c.checkMutable("dependency rule"); err != nil {
		return err
	}
	c.dependencyRuleSet(dependencyParser, constraintParser).AddDependencyAction(action)
	return nil
}

// AddDependencyConstraintAction registers an action against the dependency
// constraints.  It shares the rule set created by AddDependencyAction.
func (c *Container) AddDependencyConstraintAction(dependencyParser, constraintParser depmeta.NotationParser, action depmeta.ConstraintsAction) error {
	if err := c.checkMutable("dependency constraint rule"); err != nil {
		return err
	}
	c.dependencyRuleSet(dependencyParser, constraintParser).AddDependencyConstraintAction(action)
	return nil
}

// AddAttributesAction registers an action against the variant attributes.
// The factory is used only if this call creates the attribute rule set.
func (c *Container) AddAttributesAction(factory *attributes.Factory, action attributes.Action) error {
	if err := c.checkMutable("variant attribute"); err != nil {
		return err
	}
	if c.attributeRules == nil {
		c.logger.Debug().Msg("creating variant attribute rules")
		c.attributeRules = attributes.NewRuleSet(factory)
	}
	c.attributeRules.AddAttributesAction(action)
	return nil
}

func (c *Container) dependencyRuleSet(dependencyParser, constraintParser depmeta.NotationParser) *depmeta.RuleSet {
	if c.dependencyRules == nil {
		c.logger.Debug().Msg("creating dependency metadata rules")
		c.dependencyRules = depmeta.NewRuleSet(dependencyParser, constraintParser, depmeta.WithLogger(c.logger))
	}
	return c.dependencyRules
}

func (c *Container) checkMutable(category string) error {
	switch c.mode {
	case modeImmutable:
		c.logger.Debug().Str("category", category).Msg("rejected rule on immutable container")
		return fmt.Errorf("cannot add a %s to a container that is not supposed to be mutable: %w", category, ErrMutationOnImmutable)
	default:
		if c.applied.Load() {
			return fmt.Errorf("cannot add a %s: %w", category, ErrRulesApplied)
		}
		return nil
	}
}

func (c *Container) markApplied() {
	if !c.applied.Load() {
		c.applied.Store(true)
	}
}
