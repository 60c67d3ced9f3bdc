package rules

import "errors"

// ErrMutationOnImmutable is returned when a rule is added to the shared no-op
// container.  The wrapping error names the rule category.
var ErrMutationOnImmutable = errors.New("rules container is immutable")

// ErrRulesApplied is returned when a rule is added to a container whose rules
// have already been applied.
var ErrRulesApplied = errors.New("rules already applied")
