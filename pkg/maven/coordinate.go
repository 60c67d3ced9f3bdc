package maven

import (
	"fmt"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/label"

	"github.com/stackb/metadata-rules/pkg/bazel"
)

// Coordinate identifies a maven artifact.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Packaging  string
	Classifier string
	Version    string
}

// ParseCoordinate parses one of the forms
//
//	group:artifact:version
//	group:artifact:packaging:version
//	group:artifact:packaging:classifier:version
//
// The two-part form group:artifact is also accepted and names a module
// without a version.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	for i, part := range parts {
		if part == "" {
			return Coordinate{}, fmt.Errorf("invalid maven coordinate %q: empty segment %d", s, i)
		}
	}

	var c Coordinate
	switch len(parts) {
	case 2:
		c = Coordinate{GroupID: parts[0], ArtifactID: parts[1]}
	case 3:
		c = Coordinate{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}
	case 4:
		c = Coordinate{GroupID: parts[0], ArtifactID: parts[1], Packaging: parts[2], Version: parts[3]}
	case 5:
		c = Coordinate{GroupID: parts[0], ArtifactID: parts[1], Packaging: parts[2], Classifier: parts[3], Version: parts[4]}
	default:
		return Coordinate{}, fmt.Errorf("invalid maven coordinate %q: want 2-5 colon-separated segments, got %d", s, len(parts))
	}
	return c, nil
}

// ModuleID returns group:artifact.
func (c Coordinate) ModuleID() string {
	return c.GroupID + ":" + c.ArtifactID
}

// ArtifactString returns the coordinate without its version, in the form used
// by rules_jvm_external to name targets.
func (c Coordinate) ArtifactString() string {
	s := c.ModuleID()
	if c.Packaging != "" && c.Packaging != "jar" {
		s += ":" + c.Packaging
	}
	if c.Classifier != "" && c.Classifier != "jar" {
		s += ":" + c.Classifier
	}
	return s
}

// String returns the full coordinate.
func (c Coordinate) String() string {
	s := c.ModuleID()
	if c.Packaging != "" {
		s += ":" + c.Packaging
	}
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	if c.Version != "" {
		s += ":" + c.Version
	}
	return s
}

// Label returns the bazel label for the artifact in the given external
// repository.
func (c Coordinate) Label(repo string) label.Label {
	return label.New(repo, "", bazel.CleanupLabel(c.ArtifactString()))
}
