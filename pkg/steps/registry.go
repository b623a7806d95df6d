package steps

import (
	"strconv"

	"github.com/agnivade/levenshtein"
)

// Registry is the ordered, append-only catalog of step names.
// Insertion order is the only ordering used for navigation.
type Registry struct {
	names []string
	index map[string]int
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make([]string, 0),
		index: make(map[string]int),
	}
}

// Add appends a step to the registry and returns its name.
// An empty name is replaced by the step's zero-based position, rendered as a
// string. Registering a name twice returns a DuplicateStepError.
func (r *Registry) Add(name string) (string, error) {
	if name == "" {
		name = strconv.Itoa(len(r.names))
	}
	if _, exists := r.index[name]; exists {
		return "", &DuplicateStepError{Name: name}
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
	return name, nil
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	return len(r.names)
}

// Steps returns a copy of the registered names in insertion order.
func (r *Registry) Steps() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// IndexOf returns the position of name, or -1 if it is not registered.
func (r *Registry) IndexOf(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	return -1
}

// Contains reports whether name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// At returns the name at position i, or "" when i is out of range.
func (r *Registry) At(i int) string {
	if i < 0 || i >= len(r.names) {
		return ""
	}
	return r.names[i]
}

// Closest returns the registered name nearest to name by edit distance.
// Names further than half the length of name are not considered close.
func (r *Registry) Closest(name string) string {
	best := ""
	bestDistance := len(name)/2 + 1
	for _, candidate := range r.names {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
