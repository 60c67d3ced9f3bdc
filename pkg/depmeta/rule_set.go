package depmeta

import (
	"github.com/rs/zerolog"
)

// DependenciesAction mutates the direct dependencies of a variant.
type DependenciesAction func(*DirectDependencies)

// ConstraintsAction mutates the dependency constraints of a variant.
type ConstraintsAction func(*DependencyConstraints)

// RuleSetOption configures a RuleSet.
type RuleSetOption func(*RuleSet) *RuleSet

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) RuleSetOption {
	return func(r *RuleSet) *RuleSet {
		r.logger = logger
		return r
	}
}

// RuleSet holds the dependency and dependency constraint actions declared for
// a component and runs them against its dependency list.
type RuleSet struct {
	dependencyParser  NotationParser
	constraintParser  NotationParser
	dependencyActions []DependenciesAction
	constraintActions []ConstraintsAction
	logger            zerolog.Logger
}

// NewRuleSet returns an empty rule set.  The parsers convert notations passed
// to Add by the actions.
func NewRuleSet(dependencyParser, constraintParser NotationParser, options ...RuleSetOption) *RuleSet {
	r := &RuleSet{
		dependencyParser: dependencyParser,
		constraintParser: constraintParser,
		logger:           zerolog.Nop(),
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

// AddDependencyAction registers an action run against the direct
// dependencies.
func (r *RuleSet) AddDependencyAction(action DependenciesAction) {
	r.dependencyActions = append(r.dependencyActions, action)
}

// AddDependencyConstraintAction registers an action run against the
// dependency constraints.
func (r *RuleSet) AddDependencyConstraintAction(action ConstraintsAction) {
	r.constraintActions = append(r.constraintActions, action)
}

// Len returns the number of registered actions of both kinds.
func (r *RuleSet) Len() int {
	return len(r.dependencyActions) + len(r.constraintActions)
}

// Execute runs the registered actions against deps and returns the rewritten
// list: dependencies first, then constraints, each group in the order the
// actions left it.  Elements no action touched are returned as they were;
// edited ones go through WithDescriptor on the original element, and added
// ones through WithDescriptor on the zero T.  The first notation error
// recorded by a view is returned as-is.
func Execute[T Metadata[T]](r *RuleSet, deps []T) ([]T, error) {
	var dependencies, constraints []module
	for i, dep := range deps {
		m := module{desc: dep.Descriptor(), origin: i}
		if m.desc.Constraint {
			constraints = append(constraints, m)
		} else {
			dependencies = append(dependencies, m)
		}
	}

	r.logger.Debug().
		Int("dependencies", len(dependencies)).
		Int("constraints", len(constraints)).
		Int("dependency_actions", len(r.dependencyActions)).
		Int("constraint_actions", len(r.constraintActions)).
		Msg("executing dependency metadata rules")

	result := make([]T, 0, len(deps))

	depView := newDirectDependencies(r.dependencyParser, dependencies)
	for _, action := range r.dependencyActions {
		action(depView)
	}
	if err := depView.Err(); err != nil {
		return nil, err
	}
	for _, d := range depView.items {
		result = append(result, rebuild(deps, &d.module))
	}

	constraintView := newDependencyConstraints(r.constraintParser, constraints)
	for _, action := range r.constraintActions {
		action(constraintView)
	}
	if err := constraintView.Err(); err != nil {
		return nil, err
	}
	for _, c := range constraintView.items {
		result = append(result, rebuild(deps, &c.module))
	}

	return result, nil
}

func rebuild[T Metadata[T]](deps []T, m *module) T {
	if m.origin < 0 {
		var zero T
		return zero.WithDescriptor(m.desc)
	}
	if !m.dirty {
		return deps[m.origin]
	}
	return deps[m.origin].WithDescriptor(m.desc)
}
