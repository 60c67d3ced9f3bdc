package depmeta_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/stackb/metadata-rules/pkg/depmeta"
	"github.com/stackb/metadata-rules/pkg/depmeta/mocks"
	"github.com/stackb/metadata-rules/pkg/testutil"
)

// ivyDependency carries data the rules know nothing about, which must survive
// rule execution.
type ivyDependency struct {
	Desc          depmeta.Descriptor
	Configuration string
}

func (d ivyDependency) Descriptor() depmeta.Descriptor { return d.Desc.Clone() }

func (d ivyDependency) WithDescriptor(desc depmeta.Descriptor) ivyDependency {
	d.Desc = desc
	return d
}

func dep(module, version string) depmeta.Descriptor {
	d, err := depmeta.NewDependencyNotationParser().ParseNotation(module + ":" + version)
	if err != nil {
		panic(err)
	}
	return d
}

func constraint(module, version string) depmeta.Descriptor {
	d := dep(module, version)
	d.Constraint = true
	return d
}

func wrap(descs ...depmeta.Descriptor) []depmeta.DependencyMetadata {
	deps := make([]depmeta.DependencyMetadata, len(descs))
	for i, d := range descs {
		deps[i] = depmeta.NewDependencyMetadata(d)
	}
	return deps
}

func descriptors[T depmeta.Metadata[T]](deps []T) []depmeta.Descriptor {
	out := make([]depmeta.Descriptor, len(deps))
	for i, d := range deps {
		out[i] = d.Descriptor()
	}
	return out
}

func newRuleSet(t *testing.T) *depmeta.RuleSet {
	return depmeta.NewRuleSet(
		depmeta.NewDependencyNotationParser(),
		depmeta.NewConstraintNotationParser(),
		depmeta.WithLogger(testutil.NewTestLogger(t)),
	)
}

func TestExecute(t *testing.T) {
	for name, tc := range map[string]struct {
		deps              []depmeta.Descriptor
		dependencyActions []depmeta.DependenciesAction
		constraintActions []depmeta.ConstraintsAction
		want              []depmeta.Descriptor
	}{
		"degenerate": {
			want: []depmeta.Descriptor{},
		},
		"no actions keeps dependencies then constraints": {
			deps: []depmeta.Descriptor{
				constraint("org.slf4j:slf4j-api", "2.0.9"),
				dep("junit:junit", "4.13.2"),
			},
			want: []depmeta.Descriptor{
				dep("junit:junit", "4.13.2"),
				constraint("org.slf4j:slf4j-api", "2.0.9"),
			},
		},
		"edit version and reason": {
			deps: []depmeta.Descriptor{dep("junit:junit", "4.12")},
			dependencyActions: []depmeta.DependenciesAction{
				func(deps *depmeta.DirectDependencies) {
					for _, d := range deps.All() {
						d.Version(func(v *depmeta.VersionConstraint) { v.Require("4.13.2") })
						d.Because("CVE-2020-15250")
					}
				},
			},
			want: []depmeta.Descriptor{{
				Group:   "junit",
				Name:    "junit",
				Version: depmeta.VersionConstraint{Requires: "4.13.2"},
				Reason:  "CVE-2020-15250",
			}},
		},
		"add and exclude": {
			deps: []depmeta.Descriptor{dep("com.google.guava:guava", "32.1.2-jre")},
			dependencyActions: []depmeta.DependenciesAction{
				func(deps *depmeta.DirectDependencies) {
					deps.All()[0].Exclude("com.google.code.findbugs", "jsr305")
					deps.Add("com.google.code.findbugs:jsr305:3.0.2", func(d *depmeta.DirectDependency) {
						d.Because("moved")
					})
				},
			},
			want: []depmeta.Descriptor{
				{
					Group:    "com.google.guava",
					Name:     "guava",
					Version:  depmeta.VersionConstraint{Requires: "32.1.2-jre"},
					Excludes: []depmeta.Exclude{{Group: "com.google.code.findbugs", Module: "jsr305"}},
				},
				{
					Group:   "com.google.code.findbugs",
					Name:    "jsr305",
					Version: depmeta.VersionConstraint{Requires: "3.0.2"},
					Reason:  "moved",
				},
			},
		},
		"remove matching": {
			deps: []depmeta.Descriptor{
				dep("org.slf4j:slf4j-api", "2.0.9"),
				dep("junit:junit", "4.13.2"),
				dep("org.slf4j:slf4j-simple", "2.0.9"),
			},
			dependencyActions: []depmeta.DependenciesAction{
				func(deps *depmeta.DirectDependencies) {
					deps.RemoveMatching("org.slf4j:*")
				},
			},
			want: []depmeta.Descriptor{dep("junit:junit", "4.13.2")},
		},
		"constraint actions only see constraints": {
			deps: []depmeta.Descriptor{
				dep("junit:junit", "4.13.2"),
				constraint("org.slf4j:slf4j-api", "1.7.36"),
			},
			constraintActions: []depmeta.ConstraintsAction{
				func(cs *depmeta.DependencyConstraints) {
					if cs.Len() != 1 {
						panic(spew.Sdump(cs.All()))
					}
					cs.All()[0].Version(func(v *depmeta.VersionConstraint) { v.Require("2.0.9") })
					cs.Add("org.slf4j:slf4j-simple:2.0.9")
				},
			},
			want: []depmeta.Descriptor{
				dep("junit:junit", "4.13.2"),
				constraint("org.slf4j:slf4j-api", "2.0.9"),
				constraint("org.slf4j:slf4j-simple", "2.0.9"),
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			rs := newRuleSet(t)
			for _, a := range tc.dependencyActions {
				rs.AddDependencyAction(a)
			}
			for _, a := range tc.constraintActions {
				rs.AddDependencyConstraintAction(a)
			}
			got, err := depmeta.Execute(rs, wrap(tc.deps...))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, descriptors(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecuteRunsActionsInOrder(t *testing.T) {
	rs := newRuleSet(t)
	var calls []string
	var seen [][]string
	for _, name := range []string{"a1", "a2"} {
		rs.AddDependencyAction(func(deps *depmeta.DirectDependencies) {
			calls = append(calls, name)
			var modules []string
			for _, d := range deps.All() {
				modules = append(modules, d.Module())
			}
			seen = append(seen, modules)
		})
	}

	if _, err := depmeta.Execute(rs, wrap(dep("com.example:a", "1.0"))); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a1", "a2"}, calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"com.example:a"}, {"com.example:a"}}, seen); diff != "" {
		t.Errorf("views (-want +got):\n%s", diff)
	}
}

func TestExecutePreservesType(t *testing.T) {
	rs := newRuleSet(t)
	rs.AddDependencyAction(func(deps *depmeta.DirectDependencies) {
		deps.All()[1].Because("edited")
		deps.Add("com.example:added:1.0")
	})

	in := []ivyDependency{
		{Desc: dep("com.example:a", "1.0"), Configuration: "compile"},
		{Desc: dep("com.example:b", "1.0"), Configuration: "runtime"},
	}
	got, err := depmeta.Execute(rs, in)
	if err != nil {
		t.Fatal(err)
	}

	want := []ivyDependency{
		in[0],
		{Desc: depmeta.Descriptor{Group: "com.example", Name: "b", Version: depmeta.VersionConstraint{Requires: "1.0"}, Reason: "edited"}, Configuration: "runtime"},
		{Desc: dep("com.example:added", "1.0")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestExecuteDoesNotMutateInput(t *testing.T) {
	rs := newRuleSet(t)
	rs.AddDependencyAction(func(deps *depmeta.DirectDependencies) {
		for _, d := range deps.All() {
			d.Exclude("org.slf4j", "")
			d.Version(func(v *depmeta.VersionConstraint) { v.Reject("0.9") })
		}
	})
	in := wrap(dep("com.example:a", "1.0"))
	before := descriptors(in)
	if _, err := depmeta.Execute(rs, in); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, descriptors(in)); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func TestExecuteNotationError(t *testing.T) {
	errBoom := errors.New("boom")
	parser := mocks.NewNotationParser(t)
	parser.On("ParseNotation", mock.Anything).Return(depmeta.Descriptor{}, errBoom).Once()

	rs := depmeta.NewRuleSet(parser, depmeta.NewConstraintNotationParser())
	var addErr error
	rs.AddDependencyAction(func(deps *depmeta.DirectDependencies) {
		addErr = deps.Add("anything")
	})

	got, err := depmeta.Execute(rs, wrap(dep("com.example:a", "1.0")))
	if err != errBoom {
		t.Fatalf("want the parser error unmodified, got %v", err)
	}
	if addErr != errBoom {
		t.Errorf("Add: want %v, got %v", errBoom, addErr)
	}
	if got != nil {
		t.Errorf("want no result, got %v", got)
	}
}

func TestExecuteUsesSuppliedParser(t *testing.T) {
	parser := mocks.NewNotationParser(t)
	parser.On("ParseNotation", "alias:logging").Return(dep("org.slf4j:slf4j-api", "2.0.9"), nil).Once()

	rs := depmeta.NewRuleSet(parser, depmeta.NewConstraintNotationParser())
	rs.AddDependencyAction(func(deps *depmeta.DirectDependencies) {
		deps.Add("alias:logging")
	})

	got, err := depmeta.Execute(rs, []depmeta.DependencyMetadata{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]depmeta.Descriptor{dep("org.slf4j:slf4j-api", "2.0.9")}, descriptors(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestExecuteActionPanicPropagates(t *testing.T) {
	rs := newRuleSet(t)
	rs.AddDependencyAction(func(deps *depmeta.DirectDependencies) {
		panic("rule failed")
	})
	defer func() {
		if r := recover(); r != "rule failed" {
			t.Errorf("want the action's panic, got %v", r)
		}
	}()
	depmeta.Execute(rs, wrap(dep("com.example:a", "1.0")))
	t.Error("expected panic")
}

func TestViews(t *testing.T) {
	rs := newRuleSet(t)
	var badPattern error
	rs.AddDependencyAction(func(deps *depmeta.DirectDependencies) {
		all := deps.All()
		if !deps.Remove(all[0]) {
			panic("remove failed")
		}
		if deps.Remove(all[0]) {
			panic("removed twice")
		}
		n := deps.RemoveIf(func(d *depmeta.DirectDependency) bool {
			return d.Name() == "c"
		})
		if n != 1 {
			panic(spew.Sdump(deps.All()))
		}
		_, badPattern = deps.RemoveMatching("com.example:[")
	})

	_, err := depmeta.Execute(rs, wrap(
		dep("com.example:a", "1.0"),
		dep("com.example:b", "1.0"),
		dep("com.example:c", "1.0"),
	))
	if badPattern == nil {
		t.Fatal("expected a bad pattern error")
	}
	if err != badPattern {
		t.Errorf("want the pattern error from Execute, got %v", err)
	}
}

func TestFromCoordinates(t *testing.T) {
	got := depmeta.FromCoordinates(nil)
	if len(got) != 0 {
		t.Errorf("want empty, got %v", got)
	}
}
