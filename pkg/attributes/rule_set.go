package attributes

// Action mutates a variant's attributes in place.
type Action func(*Container)

// RuleSet runs attribute actions, in registration order, against a copy of a
// variant's attributes.
type RuleSet struct {
	factory *Factory
	actions []Action
}

// NewRuleSet returns an empty rule set producing results through factory.  A
// nil factory gets a private one.
func NewRuleSet(factory *Factory) *RuleSet {
	if factory == nil {
		factory = NewFactory()
	}
	return &RuleSet{factory: factory}
}

// AddAttributesAction registers action.
func (r *RuleSet) AddAttributesAction(action Action) {
	r.actions = append(r.actions, action)
}

// Len returns the number of registered actions.
func (r *RuleSet) Len() int {
	return len(r.actions)
}

// Execute runs every action against a mutable copy of source and returns the
// interned result.  source is not modified.  The first type error recorded
// while the actions ran is returned as-is.
func (r *RuleSet) Execute(source *Container) (*Immutable, error) {
	var c *Container
	if source == nil {
		c = NewContainer()
	} else {
		c = source.Copy()
	}
	for _, action := range r.actions {
		action(c)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return r.factory.Of(c), nil
}
