package rules

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/stackb/metadata-rules/pkg/maven"
)

// DefaultMavenRepository is the external repository declared modules are
// labeled in unless WithMavenRepository says otherwise.
const DefaultMavenRepository = "maven"

var globalRegistry = NewRegistry()

// GlobalRegistry returns the process-wide registry.
func GlobalRegistry() *Registry {
	return globalRegistry
}

// Registry maps module ids (group:name) to the rules declared for them.
// Declare is meant for the configuration phase; Lookup may be called
// concurrently once configuration is done.
type Registry struct {
	containers map[string]*Container
	repository string
	logger     zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := newOptions(opts)
	return &Registry{
		containers: make(map[string]*Container),
		repository: o.repository,
		logger:     o.logger,
	}
}

// Declare returns the container for module, creating it on first use.
func (r *Registry) Declare(module string) *Container {
	if c, ok := r.containers[module]; ok {
		return c
	}
	ctx := r.logger.With().Str("module", module)
	if coord, err := maven.ParseCoordinate(module); err == nil {
		ctx = ctx.Stringer("label", coord.Label(r.repository))
	}
	logger := ctx.Logger()
	c := New(WithLogger(logger))
	r.containers[module] = c
	logger.Debug().Msg("declared component metadata rules")
	return c
}

// Lookup returns the container declared for module, or the shared no-op
// container.
func (r *Registry) Lookup(module string) *Container {
	return GetOrDefault(r.containers[module])
}

// Modules returns the declared module ids in sorted order.
func (r *Registry) Modules() []string {
	modules := make([]string, 0, len(r.containers))
	for m := range r.containers {
		modules = append(modules, m)
	}
	sort.Strings(modules)
	return modules
}
