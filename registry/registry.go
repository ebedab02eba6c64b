package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vk/microunit/unit"
)

// Order selects the iteration order a registry snapshot is produced in.
type Order string

const (
	// OrderByName iterates cases sorted lexicographically by name. This is
	// the default, so two runs of the same binary always report in the
	// same sequence.
	OrderByName Order = "name"

	// OrderByRegistration iterates cases in the order they were registered.
	OrderByRegistration Order = "registration"
)

// ParseOrder validates a user-supplied order string.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderByName, OrderByRegistration:
		return Order(s), nil
	default:
		return "", fmt.Errorf("invalid order %q: must be 'name' or 'registration'", s)
	}
}

// Case is one registered test case. It is immutable once registered.
type Case struct {
	Name string
	Fn   unit.Func
}

// Suite is the interface a package implements to register its test cases
// explicitly into a registry the caller owns, instead of relying on init
// time registration into the default registry.
type Suite interface {
	Register(r *Registry)
}

// Registry maps test case names to their bodies and remembers the order
// they arrived in. Writes are guarded by a mutex so explicit registration
// outside the package init phase stays safe; during a run the registry is
// only read.
type Registry struct {
	mu    sync.Mutex
	cases map[string]unit.Func
	names []string
}

// NewRegistry creates an empty, isolated registry.
func NewRegistry() *Registry {
	return &Registry{
		cases: make(map[string]unit.Func),
	}
}

// Register inserts a test case. The first registration under a given name
// wins; later ones are ignored with a warning, never an error. An empty
// name or a nil body is a programmer error and panics.
func (r *Registry) Register(name string, fn unit.Func) {
	if name == "" {
		panic("registry: test case name must not be empty")
	}
	if fn == nil {
		panic(fmt.Sprintf("registry: test case %q has a nil body", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cases[name]; exists {
		slog.Warn("Duplicate test case registration ignored.", "name", name)
		return
	}
	slog.Debug("Registering test case.", "name", name)
	r.cases[name] = fn
	r.names = append(r.names, name)
}

// Len returns the number of registered test cases.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cases)
}

// Cases returns a snapshot of the registered cases in the requested order.
// The snapshot is independent of the registry, so later registrations do
// not disturb an iteration already handed out.
func (r *Registry) Cases(order Order) []Case {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	if order != OrderByRegistration {
		sort.Strings(names)
	}

	out := make([]Case, 0, len(names))
	for _, name := range names {
		out = append(out, Case{Name: name, Fn: r.cases[name]})
	}
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared process-wide registry, constructing it on
// first use. Construction depends on no other global state, so Default is
// safe to call from package init functions.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register inserts a test case into the default registry. Calling it from
// a package init function is the declaration surface: importing the
// package is all it takes for its cases to be known to the runner.
func Register(name string, fn unit.Func) {
	Default().Register(name, fn)
}
