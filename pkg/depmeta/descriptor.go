// Package depmeta describes module dependencies and dependency constraints and
// runs the rules that rewrite them before resolution.
package depmeta

import (
	"strings"

	"github.com/stackb/metadata-rules/pkg/maven"
)

// VersionConstraint is the version requested for a module.
type VersionConstraint struct {
	// Requires is the minimum acceptable version, and the preferred one if
	// nothing else asks for more.
	Requires string
	// Prefers is used when nothing stronger is requested.
	Prefers string
	// Strictly pins the version; anything else is rejected.
	Strictly string
	// Rejects lists versions that must not be selected.
	Rejects []string
}

// Require sets the required version, clearing a strict pin.
func (v *VersionConstraint) Require(version string) {
	v.Requires = version
	v.Strictly = ""
}

// Prefer sets the preferred version.
func (v *VersionConstraint) Prefer(version string) {
	v.Prefers = version
}

// Strict pins version, which also becomes the required version.
func (v *VersionConstraint) Strict(version string) {
	v.Strictly = version
	v.Requires = version
}

// Reject adds versions to the rejected list.
func (v *VersionConstraint) Reject(versions ...string) {
	v.Rejects = append(v.Rejects, versions...)
}

// IsEmpty reports whether no version is requested.
func (v VersionConstraint) IsEmpty() bool {
	return v.Requires == "" && v.Prefers == "" && v.Strictly == "" && len(v.Rejects) == 0
}

func (v VersionConstraint) String() string {
	if v.Strictly != "" {
		return "{strictly " + v.Strictly + "}"
	}
	var parts []string
	if v.Requires != "" {
		parts = append(parts, v.Requires)
	}
	if v.Prefers != "" {
		parts = append(parts, "prefer "+v.Prefers)
	}
	if len(v.Rejects) > 0 {
		parts = append(parts, "reject "+strings.Join(v.Rejects, " & "))
	}
	if len(parts) == 1 && v.Requires != "" {
		return v.Requires
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// Exclude removes a transitive module from a dependency.  An empty field
// matches anything.
type Exclude struct {
	Group  string
	Module string
}

func (e Exclude) String() string {
	group, module := e.Group, e.Module
	if group == "" {
		group = "*"
	}
	if module == "" {
		module = "*"
	}
	return group + ":" + module
}

// Descriptor is the mutable part of a dependency or dependency constraint.
type Descriptor struct {
	Group      string
	Name       string
	Version    VersionConstraint
	Reason     string
	Constraint bool
	Excludes   []Exclude
}

// ModuleID returns group:name.
func (d Descriptor) ModuleID() string {
	return d.Group + ":" + d.Name
}

// Coordinate returns the maven coordinate of the required version.
func (d Descriptor) Coordinate() maven.Coordinate {
	return maven.Coordinate{GroupID: d.Group, ArtifactID: d.Name, Version: d.Version.Requires}
}

// Clone returns a copy that shares no slices with d.
func (d Descriptor) Clone() Descriptor {
	if d.Version.Rejects != nil {
		d.Version.Rejects = append([]string(nil), d.Version.Rejects...)
	}
	if d.Excludes != nil {
		d.Excludes = append([]Exclude(nil), d.Excludes...)
	}
	return d
}

func (d Descriptor) String() string {
	s := d.ModuleID()
	if !d.Version.IsEmpty() {
		s += ":" + d.Version.String()
	}
	if d.Constraint {
		s = "constraint " + s
	}
	return s
}
