package steps

import "sync"

// Navigation tracks the current step and derives next/previous steps from
// the registry's declared order. Navigation wraps around in both directions.
//
// Navigation is safe for concurrent use. Writes to the current step are
// expected to come only from a transition.Controller.
type Navigation struct {
	mu       sync.RWMutex
	registry *Registry
	current  string
}

// NewNavigation creates a Navigation with an optional explicit initial step.
// When initial is empty, the first step ever registered becomes current.
func NewNavigation(initial string) *Navigation {
	return &Navigation{
		registry: NewRegistry(),
		current:  initial,
	}
}

// AddStep registers a step and returns its name. If no current step has
// been set, the added step becomes current.
func (n *Navigation) AddStep(name string) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	added, err := n.registry.Add(name)
	if err != nil {
		return "", err
	}
	if n.current == "" {
		n.current = added
	}
	return added, nil
}

// Activate makes name the current step.
func (n *Navigation) Activate(name string) error {
	if name == "" {
		return &MissingArgumentError{Arg: "name"}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.registry.Contains(name) {
		return &InvalidStepError{Name: name, Suggestion: n.registry.Closest(name)}
	}
	n.current = name
	return nil
}

// PickNext returns the step after the current one without activating it.
// The last step wraps to the first. Returns "" when no steps are registered.
func (n *Navigation) PickNext() string {
	return n.pick(1)
}

// PickPrevious returns the step before the current one without activating
// it. The first step wraps to the last. Returns "" when no steps are
// registered.
func (n *Navigation) PickPrevious() string {
	return n.pick(-1)
}

func (n *Navigation) pick(delta int) string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	length := n.registry.Len()
	if length == 0 {
		return ""
	}
	i := (n.registry.IndexOf(n.current) + delta) % length
	if i < 0 {
		i += length
	}
	return n.registry.At(i)
}

// Current returns the current step, or "" when none has been resolved.
func (n *Navigation) Current() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// FirstStep returns the first registered step, or "" when none exist.
func (n *Navigation) FirstStep() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.registry.At(0)
}

// Len returns the number of registered steps.
func (n *Navigation) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.registry.Len()
}

// Steps returns a snapshot of the registered steps in insertion order.
func (n *Navigation) Steps() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.registry.Steps()
}
