package depmeta

import (
	"errors"
	"fmt"

	"github.com/stackb/metadata-rules/pkg/maven"
)

// ErrUnsupportedNotation is returned for notations a parser does not accept.
var ErrUnsupportedNotation = errors.New("unsupported notation")

// NotationParser turns a loosely typed notation into a descriptor.
type NotationParser interface {
	ParseNotation(notation any) (Descriptor, error)
}

// NotationParserFunc adapts a function to the NotationParser interface.
type NotationParserFunc func(notation any) (Descriptor, error)

// ParseNotation implements NotationParser.
func (f NotationParserFunc) ParseNotation(notation any) (Descriptor, error) {
	return f(notation)
}

// NewDependencyNotationParser returns the default parser for dependencies.
// It accepts "group:name[:version]" strings (or any longer maven coordinate),
// maven.Coordinate, Descriptor, and map[string]string with "group", "name"
// and "version" keys.
func NewDependencyNotationParser() NotationParser {
	return NotationParserFunc(func(notation any) (Descriptor, error) {
		return parseNotation(notation, false)
	})
}

// NewConstraintNotationParser is like NewDependencyNotationParser but marks
// the result as a dependency constraint.
func NewConstraintNotationParser() NotationParser {
	return NotationParserFunc(func(notation any) (Descriptor, error) {
		return parseNotation(notation, true)
	})
}

func parseNotation(notation any, constraint bool) (Descriptor, error) {
	var d Descriptor
	switch n := notation.(type) {
	case string:
		c, err := maven.ParseCoordinate(n)
		if err != nil {
			return Descriptor{}, err
		}
		d = Descriptor{Group: c.GroupID, Name: c.ArtifactID, Version: VersionConstraint{Requires: c.Version}}
	case maven.Coordinate:
		d = Descriptor{Group: n.GroupID, Name: n.ArtifactID, Version: VersionConstraint{Requires: n.Version}}
	case Descriptor:
		d = n.Clone()
	case map[string]string:
		for k := range n {
			switch k {
			case "group", "name", "version":
			default:
				return Descriptor{}, fmt.Errorf("%w: unknown key %q", ErrUnsupportedNotation, k)
			}
		}
		d = Descriptor{Group: n["group"], Name: n["name"], Version: VersionConstraint{Requires: n["version"]}}
	default:
		return Descriptor{}, fmt.Errorf("%w: %T", ErrUnsupportedNotation, notation)
	}
	if d.Group == "" || d.Name == "" {
		return Descriptor{}, fmt.Errorf("%w: %v requires group and name", ErrUnsupportedNotation, notation)
	}
	d.Constraint = constraint
	return d, nil
}
