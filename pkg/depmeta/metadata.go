package depmeta

import "github.com/stackb/metadata-rules/pkg/maven"

// Metadata is implemented by the dependency types that rules can rewrite.
// WithDescriptor returns a copy of the receiver carrying d; it is also called
// on the zero value of T to build dependencies added by a rule, so it must not
// require a populated receiver.
type Metadata[T any] interface {
	Descriptor() Descriptor
	WithDescriptor(d Descriptor) T
}

// DependencyMetadata is the plain Metadata implementation.
type DependencyMetadata struct {
	desc Descriptor
}

// NewDependencyMetadata wraps d.
func NewDependencyMetadata(d Descriptor) DependencyMetadata {
	return DependencyMetadata{desc: d.Clone()}
}

// Descriptor implements Metadata.
func (m DependencyMetadata) Descriptor() Descriptor {
	return m.desc.Clone()
}

// WithDescriptor implements Metadata.
func (m DependencyMetadata) WithDescriptor(d Descriptor) DependencyMetadata {
	return NewDependencyMetadata(d)
}

func (m DependencyMetadata) String() string {
	return m.desc.String()
}

// FromCoordinates returns one dependency per coordinate, requiring the
// coordinate's version.
func FromCoordinates(coords []maven.Coordinate) []DependencyMetadata {
	deps := make([]DependencyMetadata, len(coords))
	for i, c := range coords {
		deps[i] = NewDependencyMetadata(Descriptor{
			Group:   c.GroupID,
			Name:    c.ArtifactID,
			Version: VersionConstraint{Requires: c.Version},
		})
	}
	return deps
}
